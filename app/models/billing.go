package models

// BillingLine is one row of the processed usage report: the provider's
// address string, its parsed canonical tuple, the allowance applied and the
// resulting over-usage charge.
type BillingLine struct {
	Property            string  `json:"property"`
	Allowance           float64 `json:"allowance"`
	ElectricityCost     float64 `json:"electricity_cost"`
	WaterCost           float64 `json:"water_cost"`
	TotalCost           float64 `json:"total_cost"`
	TotalExtra          float64 `json:"total_extra"`
	ElectricityProvider string  `json:"electricity_provider,omitempty"`
	WaterProvider       string  `json:"water_provider,omitempty"`
	ElecCode            string  `json:"elec_code,omitempty"`
	WaterCode           string  `json:"water_code,omitempty"`
	ServiceOwner        string  `json:"service_owner,omitempty"`

	Record  DatasetRecord `json:"record"`
	Matched bool          `json:"matched"`
}

// RunSummary aggregates one processing run for logging and export metadata.
type RunSummary struct {
	RunID          string  `json:"run_id"`
	TotalRows      int     `json:"total_rows"`
	MatchedRows    int     `json:"matched_rows"`
	Lines          int     `json:"lines"`
	UnmatchedSpecs int     `json:"unmatched_specs"`
	TotalExtra     float64 `json:"total_extra"`
}
