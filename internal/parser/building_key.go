package parser

import (
	"strings"

	"github.com/usage-billing/internal/normalizer"
)

// Variant selects the token policy for one of the two address vocabularies
// the engine joins: provider export rows and curated roster entries.
type Variant int

const (
	// VariantDataset parses provider export rows. Street numbers embedded in
	// the address are not treated specially: a pure-digit token before the
	// floor trigger becomes a building token, after it a floor token.
	VariantDataset Variant = iota

	// VariantRoster parses curated roster entries, whose authors list the
	// street number right after the street name. A pure-digit token seen
	// before any floor trigger is dropped as a building street-number.
	VariantRoster
)

// connectors are particles dropped from building names before key rendering.
var connectors = map[string]bool{
	"DE": true, "DEL": true, "DA": true, "D": true, "Y": true,
	"LA": true, "LAS": true, "LOS": true, "AL": true, "EL": true,
}

// floorWord maps a recognized floor-word spelling to its canonical code.
// Longer spellings come first so prefix checks never shadow them.
type floorWord struct {
	prefix string
	canon  string
}

var floorWords = []floorWord{
	{"PRINCIPAL", "PRAL"},
	{"PRAL", "PRAL"},
	{"ENTRESUELO", "ENTL"},
	{"ENTL", "ENTL"},
	{"BAJO", "BAJO"},
	{"BJO", "BAJO"},
	{"ATICO", "ATICO"},
	{"ATIC", "ATICO"},
}

// SplitAddress partitions the normalized tokens of raw into building-name
// tokens and floor tokens. A token opens the floor section when it contains
// a digit, hyphen, asterisk or ordinal indicator, or starts with a floor
// word; every token from there on belongs to the floor section.
func SplitAddress(raw string, v Variant) (building, floor []string) {
	inFloor := false
	for _, tok := range strings.Fields(raw) {
		t := normalizer.NormalizeToken(tok)
		if inFloor {
			floor = append(floor, t)
			continue
		}
		if v == VariantRoster && isAllDigits(t) {
			// Roster street number, e.g. the 250 in "Llull 250 Pral 3".
			continue
		}
		switch {
		case isFloorTrigger(t):
			inFloor = true
			floor = append(floor, t)
		case !connectors[t]:
			building = append(building, t)
		}
	}
	return building, floor
}

// BuildingKey renders building tokens into the canonical alphanumeric key.
func BuildingKey(building []string) string {
	return normalizer.FoldKey(strings.Join(building, " "))
}

func isFloorTrigger(t string) bool {
	if strings.ContainsAny(t, "0123456789-*ºª") {
		return true
	}
	for _, w := range floorWords {
		if strings.HasPrefix(t, w.prefix) {
			return true
		}
	}
	return false
}

func isAllDigits(t string) bool {
	if t == "" {
		return false
	}
	for _, r := range t {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isAllLetters(t string) bool {
	if t == "" {
		return false
	}
	for _, r := range t {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
