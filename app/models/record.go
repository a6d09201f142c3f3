package models

// DatasetRecord is the canonical tuple parsed from one provider export row.
// Records are created once per row and never mutated.
type DatasetRecord struct {
	Raw         string `json:"raw"`
	BuildingKey string `json:"building_key"`
	FloorCode   string `json:"floor_code"`
	BaseCode    string `json:"base_code"`
	Letter      string `json:"letter,omitempty"`
}

// RosterSpec is the match criteria derived from one curated roster entry:
// the dataset building keys accepted for it (after synonym expansion), the
// letter-insensitive base code and an optional apartment letter. A spec with
// an empty BaseCode is a standing empty spec and can never match a record.
type RosterSpec struct {
	Raw      string   `json:"raw"`
	Keys     []string `json:"keys"`
	BaseCode string   `json:"base_code"`
	Letter   string   `json:"letter,omitempty"`
}

// Matches reports whether rec satisfies the spec: building key accepted,
// base codes equal, and the spec either letter-agnostic or letter-equal.
func (s RosterSpec) Matches(rec DatasetRecord) bool {
	if s.BaseCode == "" || rec.BaseCode != s.BaseCode {
		return false
	}
	if s.Letter != "" && s.Letter != rec.Letter {
		return false
	}
	for _, k := range s.Keys {
		if k == rec.BuildingKey {
			return true
		}
	}
	return false
}
