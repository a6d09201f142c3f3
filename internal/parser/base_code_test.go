package parser

import "testing"

func TestSplitBaseCode(t *testing.T) {
	cases := []struct {
		code, base, letter string
	}{
		{"4-1-B", "4-1", "B"},
		{"4-1", "4-1", ""},
		{"4-B", "4", "B"},
		{"PRAL-2", "PRAL-2", ""},
		{"PRAL-2-A", "PRAL-2", "A"},
		{"ATICO", "ATICO", ""},
		{"3", "3", ""},
		{"", "", ""},
	}
	for _, c := range cases {
		base, letter := SplitBaseCode(c.code)
		if base != c.base || letter != c.letter {
			t.Errorf("SplitBaseCode(%q) = (%q, %q), want (%q, %q)",
				c.code, base, letter, c.base, c.letter)
		}
	}
}

// A floor code must round-trip through the split: rejoining base and letter
// restores the original code.
func TestSplitBaseCodeRoundTrip(t *testing.T) {
	for _, code := range []string{"4-1-B", "4-1", "PRAL-2", "ATICO", "1-2A", "3"} {
		base, letter := SplitBaseCode(code)
		joined := base
		if letter != "" {
			joined += "-" + letter
		}
		if joined != code {
			t.Errorf("round trip of %q gave %q", code, joined)
		}
	}
}
