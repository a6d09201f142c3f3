package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/usage-billing/app/models"
	"github.com/xuri/excelize/v2"
)

// ReadExcelFile reads a provider XLSX export from disk.
func ReadExcelFile(path string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel export: %w", err)
	}
	defer f.Close()
	return tableFromWorkbook(f)
}

// ReadExcel reads a provider XLSX export from a stream.
func ReadExcel(r io.Reader) (*models.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open excel export: %w", err)
	}
	defer f.Close()
	return tableFromWorkbook(f)
}

// tableFromWorkbook extracts the usage table from the first sheet. Exports
// put summary blocks above the data, so the header row is found by scanning
// column A for the cell "name"; when no such cell exists the first row is
// assumed to be the header.
func tableFromWorkbook(f *excelize.File) (*models.Table, error) {
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("excel export has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read excel rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("excel export sheet %q is empty", sheet)
	}

	header := 0
	for i, row := range rows {
		if len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "name") {
			header = i
			break
		}
	}

	t := &models.Table{Headers: cleanHeaders(rows[header])}
	for _, row := range rows[header+1:] {
		if isEmptyRow(row) {
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
