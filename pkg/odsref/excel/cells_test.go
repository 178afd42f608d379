package excel

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/odsref-go/pkg/odsref/models"
)

// saveAndOpen writes f to a temporary file and reopens it.
func saveAndOpen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	t.Cleanup(func() { f2.Close() })
	return f2
}

func setStyled(t *testing.T, f *excelize.File, cell string, v any, style *excelize.Style) {
	t.Helper()
	if err := f.SetCellValue("Sheet1", cell, v); err != nil {
		t.Fatalf("SetCellValue(%s) failed: %v", cell, err)
	}
	id, err := f.NewStyle(style)
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	if err := f.SetCellStyle("Sheet1", cell, cell, id); err != nil {
		t.Fatalf("SetCellStyle(%s) failed: %v", cell, err)
	}
}

func TestExtractCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "C2", true)
	f.SetCellValue(sheetName, "D2", time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
	setStyled(t, f, "E2", 0.25, &excelize.Style{NumFmt: 10})
	currency := `[$AUD]\ #,##0.00`
	setStyled(t, f, "F2", 1234.5, &excelize.Style{CustomNumFmt: &currency})
	setStyled(t, f, "G2", 0.0625, &excelize.Style{NumFmt: 46})
	f.SetCellValue(sheetName, "A3", "Text")

	rows, err := ExtractCells(saveAndOpen(t, f), sheetName, false)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0].R != 1 {
		t.Errorf("Expected row 1, got %d", rows[0].R)
	}

	tests := []struct {
		row      int
		col      string
		expected models.Cell
	}{
		{0, "A", models.Cell{Type: "string", Value: "Header1"}},
		{1, "A", models.Cell{Type: "float", Value: "100"}},
		{1, "B", models.Cell{Type: "float", Value: "200.5"}},
		{1, "C", models.Cell{Type: "boolean", Value: "true"}},
		{1, "D", models.Cell{Type: "date", Value: "2024-01-15T12:00:00"}},
		{1, "E", models.Cell{Type: "percentage", Value: "0.25"}},
		{1, "F", models.Cell{Type: "currency", Value: "1234.5", Currency: "AUD"}},
		{1, "G", models.Cell{Type: "time", Value: "PT1H30M0S"}},
		{2, "A", models.Cell{Type: "string", Value: "Text"}},
	}

	for _, tt := range tests {
		got, ok := rows[tt.row].C[tt.col]
		if !ok {
			t.Errorf("Expected cell %s%d", tt.col, rows[tt.row].R)
			continue
		}
		if got != tt.expected {
			t.Errorf("Cell %s%d: expected %+v, got %+v", tt.col, rows[tt.row].R, tt.expected, got)
		}
	}
}

func TestExtractCellsFormulas(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", 1)
	f.SetCellValue("Sheet1", "A2", 2)
	f.SetCellValue("Sheet1", "A3", 3)
	if err := f.SetCellFormula("Sheet1", "A3", "SUM(A1:A2)"); err != nil {
		t.Fatalf("SetCellFormula failed: %v", err)
	}
	f2 := saveAndOpen(t, f)

	rows, err := ExtractCells(f2, "Sheet1", true)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if got := rows[2].C["A"].Formula; got != "of:=SUM([.A1:.A2])" {
		t.Errorf("Expected translated formula, got %q", got)
	}
	if got := rows[0].C["A"].Formula; got != "" {
		t.Errorf("Expected no formula on a value cell, got %q", got)
	}

	rows, err = ExtractCells(f2, "Sheet1", false)
	if err != nil {
		t.Fatalf("ExtractCells failed: %v", err)
	}
	if got := rows[2].C["A"].Formula; got != "" {
		t.Errorf("Expected formulas to be omitted, got %q", got)
	}
}

func TestExtractCellsMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := ExtractCells(f, "Nope", false); err == nil {
		t.Error("Expected error for a missing sheet")
	}
}

func TestNumberCell(t *testing.T) {
	tests := []struct {
		n        float64
		nf       numFormat
		expected models.Cell
	}{
		{1.5, numFormat{}, models.Cell{Type: "float", Value: "1.5"}},
		{45306, numFormat{class: classDate}, models.Cell{Type: "date", Value: "2024-01-15T00:00:00"}},
		{1.5, numFormat{class: classTime}, models.Cell{Type: "time", Value: "PT36H0M0S"}},
		{9.99, numFormat{class: classCurrency, currency: "EUR"}, models.Cell{Type: "currency", Value: "9.99", Currency: "EUR"}},
		{9.99, numFormat{class: classCurrency, currency: "€"}, models.Cell{Type: "currency", Value: "9.99"}},
		{0.5, numFormat{class: classPercent}, models.Cell{Type: "percentage", Value: "0.5"}},
	}

	for _, tt := range tests {
		got, err := numberCell(tt.n, tt.nf, false)
		if err != nil {
			t.Errorf("numberCell(%v, %+v) failed: %v", tt.n, tt.nf, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("numberCell(%v, %+v) = %+v, expected %+v", tt.n, tt.nf, got, tt.expected)
		}
	}

	if _, err := numberCell(-1, numFormat{class: classDate}, false); err == nil {
		t.Error("Expected error for a negative date serial")
	}
}
