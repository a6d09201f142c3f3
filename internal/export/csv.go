package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/usage-billing/app/models"
)

// WriteCSV writes billing lines as a plain comma-separated report.
func WriteCSV(path string, lines []models.BillingLine) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(reportHeaders); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, line := range lines {
		rec := []string{
			line.Property,
			money(line.Allowance),
			money(line.ElectricityCost),
			money(line.WaterCost),
			money(line.TotalCost),
			money(line.TotalExtra),
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return w.Error()
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
