package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/usage-billing/app/models"
	"github.com/usage-billing/internal/ingest"
	"github.com/usage-billing/internal/matcher"
	"github.com/usage-billing/internal/parser"
	"go.uber.org/zap"
)

// addressHeaders are the accepted spellings of the address column.
var addressHeaders = []string{"name", "unit"}

// UsageReport is the result of one processing run.
type UsageReport struct {
	Summary     models.RunSummary
	Lines       []models.BillingLine
	Suggestions []matcher.Suggestion
}

// BillingService runs the monthly batch: parse every export row into its
// canonical tuple, join it against the roster, apply allowances and compute
// over-usage charges. Each run is independent; nothing is cached between
// calls.
type BillingService struct {
	parser         *parser.AddressParser
	matcher        *matcher.Matcher
	allowance      *AllowanceTable
	roster         []string
	filterToRoster bool
	logger         *zap.Logger
}

// NewBillingService wires a BillingService from its collaborators.
func NewBillingService(p *parser.AddressParser, m *matcher.Matcher, allowance *AllowanceTable, roster []string, filterToRoster bool, logger *zap.Logger) *BillingService {
	return &BillingService{
		parser:         p,
		matcher:        m,
		allowance:      allowance,
		roster:         roster,
		filterToRoster: filterToRoster,
		logger:         logger,
	}
}

// ProcessUsage processes one provider export table. The only fatal error is
// structural: a table with no recognizable address column. Unparseable
// floors, non-numeric costs and roster entries matching nothing all resolve
// to a non-match or a zero, never an error.
func (s *BillingService) ProcessUsage(table *models.Table) (*UsageReport, error) {
	runID := uuid.NewString()

	addrCol := table.ColumnIndex(addressHeaders...)
	if addrCol < 0 {
		return nil, fmt.Errorf("no address column found (accepted headers: %s; got: %s)",
			strings.Join(addressHeaders, ", "), strings.Join(table.Headers, ", "))
	}

	records := make([]models.DatasetRecord, len(table.Rows))
	for i := range table.Rows {
		records[i] = s.parser.ParseDataset(table.Cell(i, addrCol))
	}

	specs := s.matcher.BuildSpecs(s.roster)
	mask := s.matcher.Mask(records, specs)

	cols := columnIndexes(table)
	report := &UsageReport{}
	matched := 0
	for i, rec := range records {
		if mask[i] {
			matched++
		}
		if s.filterToRoster && !mask[i] {
			continue
		}
		line := s.buildLine(table, i, rec, mask[i], cols)
		report.Summary.TotalExtra += line.TotalExtra
		report.Lines = append(report.Lines, line)
	}

	sort.Slice(report.Lines, func(i, j int) bool {
		return report.Lines[i].Property < report.Lines[j].Property
	})

	report.Suggestions = s.matcher.UnmatchedSpecs(records, specs)
	report.Summary.RunID = runID
	report.Summary.TotalRows = len(table.Rows)
	report.Summary.MatchedRows = matched
	report.Summary.Lines = len(report.Lines)
	report.Summary.UnmatchedSpecs = len(report.Suggestions)

	s.logger.Info("processed usage export",
		zap.String("run_id", runID),
		zap.Int("rows", report.Summary.TotalRows),
		zap.Int("matched", report.Summary.MatchedRows),
		zap.Int("lines", report.Summary.Lines),
		zap.Int("unmatched_roster_entries", report.Summary.UnmatchedSpecs),
		zap.Float64("total_extra", report.Summary.TotalExtra))

	return report, nil
}

// reportColumns holds the optional export column indexes (-1 when absent).
type reportColumns struct {
	elecCost, waterCost          int
	elecProvider, waterProvider  int
	elecCode, waterCode          int
	elecOwner, waterOwner        int
}

func columnIndexes(t *models.Table) reportColumns {
	return reportColumns{
		elecCost:      t.ColumnIndex("electricityCost"),
		waterCost:     t.ColumnIndex("waterCost"),
		elecProvider:  t.ColumnIndex("electricityProvider"),
		waterProvider: t.ColumnIndex("waterProvider"),
		elecCode:      t.ColumnIndex("electricityCode"),
		waterCode:     t.ColumnIndex("waterCode"),
		elecOwner:     t.ColumnIndex("electricityServiceOwner"),
		waterOwner:    t.ColumnIndex("waterServiceOwner"),
	}
}

func (s *BillingService) buildLine(table *models.Table, row int, rec models.DatasetRecord, matched bool, cols reportColumns) models.BillingLine {
	// Non-numeric cost cells coerce to zero, never fail the row.
	elec, ok := ingest.ParseMoney(table.Cell(row, cols.elecCost))
	if !ok && table.Cell(row, cols.elecCost) != "" {
		s.logger.Debug("non-numeric electricity cost coerced to zero",
			zap.String("property", rec.Raw),
			zap.String("cell", table.Cell(row, cols.elecCost)))
	}
	water, ok := ingest.ParseMoney(table.Cell(row, cols.waterCost))
	if !ok && table.Cell(row, cols.waterCost) != "" {
		s.logger.Debug("non-numeric water cost coerced to zero",
			zap.String("property", rec.Raw),
			zap.String("cell", table.Cell(row, cols.waterCost)))
	}

	allowance := s.allowance.ForAddress(rec.Raw)
	total := elec + water
	extra := total - allowance
	if extra < 0 {
		extra = 0
	}

	// Service owner prefers the electricity side when both are present.
	owner := table.Cell(row, cols.elecOwner)
	if owner == "" {
		owner = table.Cell(row, cols.waterOwner)
	}

	return models.BillingLine{
		Property:            rec.Raw,
		Allowance:           allowance,
		ElectricityCost:     elec,
		WaterCost:           water,
		TotalCost:           total,
		TotalExtra:          extra,
		ElectricityProvider: table.Cell(row, cols.elecProvider),
		WaterProvider:       table.Cell(row, cols.waterProvider),
		ElecCode:            table.Cell(row, cols.elecCode),
		WaterCode:           table.Cell(row, cols.waterCode),
		ServiceOwner:        owner,
		Record:              rec,
		Matched:             matched,
	}
}
