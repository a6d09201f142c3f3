package normalizer

import (
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// FoldKey renders s into the uppercase A-Z0-9 alphabet used for building
// keys. Diacritics are stripped first; letters without a Unicode
// decomposition (ç, ø, đ) are transliterated via unidecode; everything that
// is not a letter or digit is dropped. Two spellings of the same building
// name that differ only in spacing, case or accents fold to the same key.
func FoldKey(s string) string {
	folded := strings.ToUpper(unidecode.Unidecode(StripDiacritics(s)))
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
