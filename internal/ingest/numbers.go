package ingest

import (
	"strconv"
	"strings"
)

// ParseMoney converts a cost cell to a float. Provider exports use the
// decimal comma ("1.234,56"); plain dotted decimals are accepted too. The
// second return value is false when the cell is not numeric, which callers
// coerce to zero rather than failing the row.
func ParseMoney(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	switch strings.ToLower(s) {
	case "nan", "none", "null", "-":
		return 0, false
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
