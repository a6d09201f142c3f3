package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usage-billing/app/config"
	"github.com/usage-billing/app/models"
	"github.com/usage-billing/internal/matcher"
	"github.com/usage-billing/internal/parser"
	"go.uber.org/zap"
)

func newTestService(t *testing.T, roster []string, filter bool, allowance config.AllowanceCfg) *BillingService {
	t.Helper()
	logger := zap.NewNop()
	p := parser.NewAddressParser(logger)
	m := matcher.NewMatcher(p, nil, logger)
	return NewBillingService(p, m, NewAllowanceTable(allowance), roster, filter, logger)
}

func usageTable() *models.Table {
	return &models.Table{
		Headers: []string{"name", "electricityCost", "waterCost", "electricityServiceOwner"},
		Rows: [][]string{
			{"Padilla 2-2", "60,00", "20,00", "Polaroo"},
			{"Aribau 1º 1ª", "30,00", "10,00", "Client"},
			{"Valencia 9-9", "500,00", "500,00", "Polaroo"},
			{"Sardenya Pral 1ª", "no invoice", "15,50", ""},
		},
	}
}

func TestProcessUsage(t *testing.T) {
	roster := []string{"Padilla 2º 2ª", "Aribau 1º 1ª", "Sardenya Pral 1ª"}
	svc := newTestService(t, roster, true, config.AllowanceCfg{Default: 50})

	report, err := svc.ProcessUsage(usageTable())
	require.NoError(t, err)

	assert.NotEmpty(t, report.Summary.RunID)
	assert.Equal(t, 4, report.Summary.TotalRows)
	assert.Equal(t, 3, report.Summary.MatchedRows)

	// Valencia 9-9 is not on the roster and is filtered out; lines come
	// back sorted by property.
	require.Len(t, report.Lines, 3)
	assert.Equal(t, "Aribau 1º 1ª", report.Lines[0].Property)
	assert.Equal(t, "Padilla 2-2", report.Lines[1].Property)
	assert.Equal(t, "Sardenya Pral 1ª", report.Lines[2].Property)

	// Padilla: 80 total against the 50 default.
	padilla := report.Lines[1]
	assert.Equal(t, 60.0, padilla.ElectricityCost)
	assert.Equal(t, 20.0, padilla.WaterCost)
	assert.Equal(t, 50.0, padilla.Allowance)
	assert.Equal(t, 30.0, padilla.TotalExtra)
	assert.Equal(t, "Polaroo", padilla.ServiceOwner)
	assert.True(t, padilla.Matched)
	assert.Equal(t, "PADILLA", padilla.Record.BuildingKey)

	// Aribau: under allowance, extra clamps to zero.
	assert.Equal(t, 0.0, report.Lines[0].TotalExtra)

	// Sardenya: the non-numeric electricity cell coerces to zero.
	sardenya := report.Lines[2]
	assert.Equal(t, 0.0, sardenya.ElectricityCost)
	assert.Equal(t, 15.5, sardenya.WaterCost)

	assert.Equal(t, 30.0, report.Summary.TotalExtra)
	assert.Empty(t, report.Suggestions)
}

func TestProcessUsageUnfiltered(t *testing.T) {
	roster := []string{"Padilla 2º 2ª"}
	svc := newTestService(t, roster, false, config.AllowanceCfg{Default: 50})

	report, err := svc.ProcessUsage(usageTable())
	require.NoError(t, err)

	// Every row is billed; match state stays on the line.
	require.Len(t, report.Lines, 4)
	assert.Equal(t, 1, report.Summary.MatchedRows)
	for _, line := range report.Lines {
		assert.Equal(t, line.Property == "Padilla 2-2", line.Matched, line.Property)
	}
}

func TestProcessUsageNoAddressColumn(t *testing.T) {
	svc := newTestService(t, nil, true, config.AllowanceCfg{})

	table := &models.Table{
		Headers: []string{"electricityCost", "waterCost"},
		Rows:    [][]string{{"1,00", "2,00"}},
	}
	_, err := svc.ProcessUsage(table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no address column")
	assert.Contains(t, err.Error(), "electricityCost")
}

func TestProcessUsageUnitHeader(t *testing.T) {
	svc := newTestService(t, []string{"Aribau 1º 1ª"}, true, config.AllowanceCfg{})

	table := &models.Table{
		Headers: []string{"Unit", "electricityCost"},
		Rows:    [][]string{{"Aribau 1º 1ª", "10,00"}},
	}
	report, err := svc.ProcessUsage(table)
	require.NoError(t, err)
	require.Len(t, report.Lines, 1)
	assert.True(t, report.Lines[0].Matched)
}

func TestProcessUsageSuggestions(t *testing.T) {
	roster := []string{"Aribou 1º 1ª"} // typo, matches nothing
	svc := newTestService(t, roster, true, config.AllowanceCfg{})

	report, err := svc.ProcessUsage(usageTable())
	require.NoError(t, err)

	assert.Empty(t, report.Lines)
	require.Len(t, report.Suggestions, 1)
	assert.Equal(t, "Aribou 1º 1ª", report.Suggestions[0].Spec.Raw)
	assert.Equal(t, "ARIBAU", report.Suggestions[0].NearestKey)
	assert.Equal(t, 1, report.Summary.UnmatchedSpecs)
}
