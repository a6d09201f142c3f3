package parser

import "strings"

// SplitBaseCode strips an optional trailing alphabetic apartment segment
// from a floor code. "4-1-B" yields ("4-1", "B"); codes without a trailing
// letter come back unchanged with an empty letter. Total on any input.
func SplitBaseCode(code string) (base, letter string) {
	if code == "" {
		return "", ""
	}
	parts := strings.Split(code, "-")
	last := parts[len(parts)-1]
	if len(parts) >= 2 && isAllLetters(last) {
		return strings.Join(parts[:len(parts)-1], "-"), last
	}
	return code, ""
}
