package normalizer

import "testing"

func TestStripDiacritics(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Ático", "Atico"},
		{"Providència", "Providencia"},
		{"València", "Valencia"},
		{"no accents", "no accents"},
		{"", ""},
	}
	for _, c := range cases {
		if got := StripDiacritics(c.in); got != c.want {
			t.Errorf("StripDiacritics(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeTokenKeepsStructuralRunes(t *testing.T) {
	// Ordinal indicators, hyphens and asterisks carry floor structure and
	// must survive normalization.
	cases := []struct {
		in, want string
	}{
		{"1º", "1º"},
		{"2ª", "2ª"},
		{"126-128", "126-128"},
		{"1*2", "1*2"},
		{"Ático", "ATICO"},
		{"pral", "PRAL"},
	}
	for _, c := range cases {
		if got := NormalizeToken(c.in); got != c.want {
			t.Errorf("NormalizeToken(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFoldKey(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Blasco Garay", "BLASCOGARAY"},
		{"blasco  garay", "BLASCOGARAY"},
		{"Bisbe Laguarda", "BISBELAGUARDA"},
		{"Providència", "PROVIDENCIA"},
		{"Torrent de l'Olla", "TORRENTDELOLLA"},
		{"Aribau", "ARIBAU"},
		{"", ""},
	}
	for _, c := range cases {
		if got := FoldKey(c.in); got != c.want {
			t.Errorf("FoldKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFoldKeyIdempotent(t *testing.T) {
	for _, s := range []string{"Blasco de Garay", "Sardenya", "Pg Sant Joan"} {
		once := FoldKey(s)
		if twice := FoldKey(once); twice != once {
			t.Errorf("FoldKey not idempotent for %q: %q -> %q", s, once, twice)
		}
	}
}
