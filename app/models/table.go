package models

import "strings"

// Table is a row-oriented view of a provider export, produced by the ingest
// adapters. Cells stay raw strings; numeric coercion belongs to consumers.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ColumnIndex returns the index of the first header equal (case-insensitive,
// trimmed) to any of names, or -1 when none is present.
func (t *Table) ColumnIndex(names ...string) int {
	for i, h := range t.Headers {
		h = strings.ToLower(strings.TrimSpace(h))
		for _, n := range names {
			if h == strings.ToLower(n) {
				return i
			}
		}
	}
	return -1
}

// Cell returns the cell at (row, col), or "" when the row is ragged and the
// column does not exist in it.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return ""
	}
	r := t.Rows[row]
	if col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}
