package matcher

// SynonymTable maps a roster building key to the dataset building keys it is
// accepted against. Roster authors shorten some building names ("Garay" for
// "Blasco de Garay"), so the roster key and the dataset key disagree even
// after canonicalization.
type SynonymTable map[string][]string

// Resolve returns the dataset keys accepted for a roster key. A key absent
// from the table resolves to itself.
func (t SynonymTable) Resolve(key string) []string {
	if keys, ok := t[key]; ok && len(keys) > 0 {
		return keys
	}
	return []string{key}
}

// DefaultSynonyms returns the production alias table for the managed
// buildings. Callers can replace or extend it through configuration.
func DefaultSynonyms() SynonymTable {
	return SynonymTable{
		"ARIBAU":      {"ARIBAU"},
		"BLASCO":      {"BLASCOGARAY"},
		"GARAY":       {"BLASCOGARAY"},
		"BORRELL":     {"COMTEBORRELL"},
		"COMTE":       {"COMTEBORRELL"},
		"TORRENT":     {"TORRENTOLLA"},
		"OLLA":        {"TORRENTOLLA"},
		"PROVIDENCIA": {"PROVIDENCIA"},
		"SARDENYA":    {"SARDENYA"},
		"PADILLA":     {"PADILLA"},
		"VALENCIA":    {"VALENCIA"},
	}
}
