package ingest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/usage-billing/app/models"
)

// ReadReport loads a provider usage export from disk, picking the reader by
// file extension. Provider exports come as ;-delimited CSV or as XLSX.
func ReadReport(path string) (*models.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return ReadExcelFile(path)
	default:
		return ReadCSVFile(path)
	}
}

// cleanHeaders trims header cells and names blank ones Column_<i> so every
// column stays addressable.
func cleanHeaders(raw []string) []string {
	headers := make([]string, len(raw))
	for i, h := range raw {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Column_%d", i)
		}
		headers[i] = h
	}
	return headers
}
