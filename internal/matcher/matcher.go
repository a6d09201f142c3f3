package matcher

import (
	"github.com/usage-billing/app/models"
	"github.com/usage-billing/internal/parser"
	"go.uber.org/zap"
)

// Matcher joins provider export records with curated roster entries on
// their canonical (building key, floor code) tuples. Stateless: every run
// rebuilds specs and scans records in a single pass.
type Matcher struct {
	parser   *parser.AddressParser
	synonyms SynonymTable
	logger   *zap.Logger
}

// NewMatcher creates a Matcher with an explicit synonym table.
func NewMatcher(p *parser.AddressParser, synonyms SynonymTable, logger *zap.Logger) *Matcher {
	if synonyms == nil {
		synonyms = DefaultSynonyms()
	}
	return &Matcher{parser: p, synonyms: synonyms, logger: logger}
}

// BuildSpecs parses every roster entry into its match spec. Entries whose
// floor portion yields no code become standing empty specs: they are kept
// (order is preserved for deterministic reporting) but can never match.
func (m *Matcher) BuildSpecs(roster []string) []models.RosterSpec {
	specs := make([]models.RosterSpec, 0, len(roster))
	for _, addr := range roster {
		key, code := m.parser.ParseRoster(addr)
		base, letter := parser.SplitBaseCode(code)
		spec := models.RosterSpec{
			Raw:      addr,
			Keys:     m.synonyms.Resolve(key),
			BaseCode: base,
			Letter:   letter,
		}
		if spec.BaseCode == "" {
			m.logger.Warn("roster entry has no floor information and will never match",
				zap.String("address", addr),
				zap.String("building_key", key))
		}
		specs = append(specs, spec)
	}
	return specs
}

// Mask returns one boolean per record: true when any spec matches it.
// Records matching more than one spec are accepted, not deduplicated; they
// are logged so ambiguity stays visible.
func (m *Matcher) Mask(records []models.DatasetRecord, specs []models.RosterSpec) []bool {
	mask := make([]bool, len(records))
	for i, rec := range records {
		hits := 0
		for _, spec := range specs {
			if spec.Matches(rec) {
				hits++
			}
		}
		mask[i] = hits > 0
		if hits > 1 {
			m.logger.Warn("dataset row matches multiple roster entries",
				zap.String("raw", rec.Raw),
				zap.String("building_key", rec.BuildingKey),
				zap.String("base_code", rec.BaseCode),
				zap.Int("matches", hits))
		}
	}
	return mask
}
