package matcher

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/usage-billing/app/models"
	"github.com/xrash/smetrics"
	"go.uber.org/zap"
)

// Suggestion describes a roster entry that matched no dataset row, together
// with the closest building key seen in the dataset. Non-matches are
// otherwise silent, so this is the only trace a typo or missing synonym
// leaves.
type Suggestion struct {
	Spec       models.RosterSpec
	NearestKey string
	Similarity float64
	Distance   int
}

// UnmatchedSpecs returns a suggestion for every spec that matched zero
// records. Standing empty specs (no base code) are included with no nearest
// key: no dataset row can ever satisfy them.
func (m *Matcher) UnmatchedSpecs(records []models.DatasetRecord, specs []models.RosterSpec) []Suggestion {
	keys := distinctKeys(records)

	var out []Suggestion
	for _, spec := range specs {
		if matchesAny(spec, records) {
			continue
		}
		s := Suggestion{Spec: spec}
		if spec.BaseCode != "" {
			s.NearestKey, s.Similarity, s.Distance = nearestKey(spec.Keys, keys)
		}
		m.logger.Warn("roster entry matched no dataset row",
			zap.String("address", spec.Raw),
			zap.String("base_code", spec.BaseCode),
			zap.String("nearest_key", s.NearestKey),
			zap.Float64("similarity", s.Similarity))
		out = append(out, s)
	}
	return out
}

func matchesAny(spec models.RosterSpec, records []models.DatasetRecord) bool {
	for _, rec := range records {
		if spec.Matches(rec) {
			return true
		}
	}
	return false
}

func distinctKeys(records []models.DatasetRecord) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, rec := range records {
		if rec.BuildingKey != "" && !seen[rec.BuildingKey] {
			seen[rec.BuildingKey] = true
			keys = append(keys, rec.BuildingKey)
		}
	}
	return keys
}

// nearestKey scores every dataset key against the spec's accepted keys with
// Jaro-Winkler, breaking ties toward the smaller edit distance.
func nearestKey(specKeys, datasetKeys []string) (best string, sim float64, dist int) {
	dist = -1
	for _, dk := range datasetKeys {
		for _, sk := range specKeys {
			jw := smetrics.JaroWinkler(strings.ToLower(sk), strings.ToLower(dk), 0.7, 4)
			d := levenshtein.ComputeDistance(sk, dk)
			if jw > sim || (jw == sim && (dist == -1 || d < dist)) {
				best, sim, dist = dk, jw, d
			}
		}
	}
	return best, sim, dist
}
