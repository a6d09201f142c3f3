package export

import (
	"fmt"

	"github.com/usage-billing/app/models"
	"github.com/xuri/excelize/v2"
)

// reportHeaders is the column order of the billing report.
var reportHeaders = []string{
	"Property",
	"Allowance",
	"Electricity Cost",
	"Water Cost",
	"Total Cost",
	"Total Extra",
}

// WriteExcel writes billing lines to an XLSX workbook. The run id lands in
// the workbook properties so a report can be traced back to its run.
func WriteExcel(path string, lines []models.BillingLine, runID string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, h := range reportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for i, line := range lines {
		values := []interface{}{
			line.Property,
			line.Allowance,
			line.ElectricityCost,
			line.WaterCost,
			line.TotalCost,
			line.TotalExtra,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", i+1, err)
			}
		}
	}

	if runID != "" {
		_ = f.SetDocProps(&excelize.DocProperties{Description: "run " + runID})
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}
