// Package output serializes conversion results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/odsref-go/pkg/odsref/models"
)

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ToJSON serializes a whole workbook.
func ToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SheetToJSON serializes a single sheet.
func SheetToJSON(sheet *models.SheetData, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

// PrintAreaViewToJSON serializes a print area view.
func PrintAreaViewToJSON(view *models.PrintAreaView, pretty bool) ([]byte, error) {
	return marshal(view, pretty)
}

// FindingsToJSON serializes lint findings as an array, never null.
func FindingsToJSON[T any](findings []T, pretty bool) ([]byte, error) {
	if findings == nil {
		findings = []T{}
	}
	return marshal(findings, pretty)
}
