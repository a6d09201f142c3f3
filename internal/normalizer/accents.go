package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripDiacritics removes combining marks from a string without touching the
// base letters. Ordinal indicators (º, ª), hyphens and asterisks are not
// diacritics and pass through unchanged; later stages strip them where they
// are noise.
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	out, _, _ := transform.String(t, s)
	return out
}

// isMn reports whether r is a nonspacing combining mark.
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// NormalizeToken prepares one whitespace-delimited address token for
// structural analysis: diacritics stripped, upper-cased.
func NormalizeToken(s string) string {
	return strings.ToUpper(StripDiacritics(s))
}
