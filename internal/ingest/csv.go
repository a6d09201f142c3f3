package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/usage-billing/app/models"
)

// ErrNoHeader is returned when a CSV export carries no recognizable header
// line. This is the structural failure class: the batch cannot proceed.
var ErrNoHeader = errors.New("unable to locate the header row starting with \"name;\"")

// ReadCSVFile reads a ;-delimited provider CSV export from disk.
func ReadCSVFile(path string) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv export: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV parses a provider CSV export. Exports carry a few summary lines
// before the real header, which is the first line starting with "name;";
// everything above it is skipped.
func ReadCSV(r io.Reader) (*models.Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv export: %w", err)
	}

	lines := strings.Split(string(raw), "\n")
	start := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.ToLower(line), "name;") {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, ErrNoHeader
	}

	cr := csv.NewReader(strings.NewReader(strings.Join(lines[start:], "\n")))
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv export: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoHeader
	}

	t := &models.Table{Headers: cleanHeaders(records[0])}
	for _, rec := range records[1:] {
		if isEmptyRow(rec) {
			continue
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
