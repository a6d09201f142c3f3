package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/usage-billing/app/models"
	"github.com/xuri/excelize/v2"
)

func sampleLines() []models.BillingLine {
	return []models.BillingLine{
		{Property: "Aribau 1º 1ª", Allowance: 50, ElectricityCost: 30, WaterCost: 10, TotalCost: 40},
		{Property: "Padilla 2-2", Allowance: 50, ElectricityCost: 60, WaterCost: 20, TotalCost: 80, TotalExtra: 30},
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	if err := WriteCSV(path, sampleLines()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read report back: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("rows = %d", len(records))
	}
	if records[0][0] != "Property" || records[0][5] != "Total Extra" {
		t.Errorf("header = %v", records[0])
	}
	if records[2][0] != "Padilla 2-2" || records[2][5] != "30.00" {
		t.Errorf("row = %v", records[2])
	}
}

func TestWriteExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := WriteExcel(path, sampleLines(), "run-123"); err != nil {
		t.Fatalf("WriteExcel: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open report back: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d", len(rows))
	}
	if rows[0][0] != "Property" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "Aribau 1º 1ª" {
		t.Errorf("row = %v", rows[1])
	}

	props, err := f.GetDocProps()
	if err != nil {
		t.Fatal(err)
	}
	if props.Description != "run run-123" {
		t.Errorf("doc description = %q", props.Description)
	}
}
