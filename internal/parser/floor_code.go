package parser

import (
	"regexp"
	"strings"
)

// The floor grammar is a priority-ordered set of token rules. Each rule
// returns a tagged result so the scan over the floor-token run stays
// auditable: rules are tried per token, a successful rule may consume one
// token of lookahead, and the last successful rule wins. The override makes
// a building-number fragment early in the run (the "126-128" in
// "Aribau 126-128 3-1") lose to the true floor/unit pair that follows it.

type ruleKind int

const (
	noMatch ruleKind = iota
	ruleSpecialWord
	ruleHyphenPair
	ruleOrdinalPair
)

type ruleResult struct {
	kind     ruleKind
	code     string
	consumed int
}

var (
	reHyphenPair  = regexp.MustCompile(`^([0-9]{1,2})-([0-9A-Z]{1,2})(?:-([A-Z]))?$`)
	reOrdinalOnly = regexp.MustCompile(`^([0-9]{1,2})[ºª]?$`)
)

// ParseFloorCode scans a floor-token run (already normalized by
// SplitAddress) and produces the canonical floor code, or "" when the run
// carries no recognizable floor information. Roster-style star patterns
// ("1*2") are read as hyphen pairs.
func ParseFloorCode(tokens []string) string {
	code := ""
	for i := 0; i < len(tokens); {
		t := strings.ReplaceAll(tokens[i], "*", "-")
		next := ""
		if i+1 < len(tokens) {
			next = strings.ReplaceAll(tokens[i+1], "*", "-")
		}

		// A bare letter arriving after a fully resolved floor/unit pair is
		// an apartment suffix separated by whitespace ("4º 1ª B").
		if l := bareLetter(t); l != "" && hasUnit(code) {
			code += "-" + l
			i++
			continue
		}

		res := matchSpecialWord(t, next)
		if res.kind == noMatch {
			res = matchHyphenPair(t)
		}
		if res.kind == noMatch {
			res = matchOrdinalPair(t, next)
		}
		if res.kind == noMatch {
			i++
			continue
		}
		code = res.code
		i += res.consumed
	}
	return code
}

// matchSpecialWord recognizes PRAL/ENTL/BAJO/ATICO spellings with an inline
// unit ("Pral-2", "Entl1") or a unit in the following token ("Pral 3").
func matchSpecialWord(t, next string) ruleResult {
	for _, w := range floorWords {
		if !strings.HasPrefix(t, w.prefix) {
			continue
		}
		rest := strings.TrimLeft(t[len(w.prefix):], "- ")
		unit := ""
		consumed := 1
		if rest != "" {
			unit = stripMarkers(rest)
		} else if u := unitToken(next); u != "" {
			unit = u
			consumed = 2
		}
		code := w.canon
		if unit != "" {
			code = w.canon + "-" + unit
		}
		return ruleResult{kind: ruleSpecialWord, code: code, consumed: consumed}
	}
	return ruleResult{kind: noMatch}
}

// matchHyphenPair recognizes one-token floor/unit pairs like "3-2" or
// "4-1A" once ordinal indicators are removed, with an optional trailing
// apartment letter segment ("4-1-B").
func matchHyphenPair(t string) ruleResult {
	m := reHyphenPair.FindStringSubmatch(stripMarkers(t))
	if m == nil {
		return ruleResult{kind: noMatch}
	}
	code := m[1] + "-" + m[2]
	if m[3] != "" {
		code += "-" + m[3]
	}
	return ruleResult{kind: ruleHyphenPair, code: code, consumed: 1}
}

// matchOrdinalPair recognizes "4º" / "12" style floor tokens, taking the
// unit from the next token when it is numeric or a single letter.
func matchOrdinalPair(t, next string) ruleResult {
	m := reOrdinalOnly.FindStringSubmatch(t)
	if m == nil {
		return ruleResult{kind: noMatch}
	}
	code := m[1]
	consumed := 1
	if u := unitToken(next); u != "" {
		code += "-" + u
		consumed = 2
	}
	return ruleResult{kind: ruleOrdinalPair, code: code, consumed: consumed}
}

// unitToken extracts a unit number or single letter from a lookahead token,
// or "" when the token cannot be a unit.
func unitToken(t string) string {
	c := stripMarkers(t)
	if c == "" {
		return ""
	}
	if isAllDigits(c) {
		return c
	}
	if len(c) == 1 && isAllLetters(c) {
		return c
	}
	return ""
}

// bareLetter returns the token as an apartment letter when it is exactly
// one alphabetic rune after marker stripping.
func bareLetter(t string) string {
	c := stripMarkers(t)
	if len(c) == 1 && isAllLetters(c) {
		return c
	}
	return ""
}

// hasUnit reports whether code already carries a resolved unit segment that
// a trailing letter could attach to.
func hasUnit(code string) bool {
	parts := strings.Split(code, "-")
	if len(parts) < 2 {
		return false
	}
	return !isAllLetters(parts[len(parts)-1])
}

// stripMarkers removes ordinal indicators and dots, which decorate floor
// tokens without carrying structure of their own.
func stripMarkers(t string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case 'º', 'ª', '.':
			return -1
		}
		return r
	}, t)
}
