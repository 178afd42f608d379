// Package models defines the JSON data structures produced by workbook
// conversion.
package models

// Cell is one converted cell.
type Cell struct {
	// Type is the office:value-type (float, percentage, currency, date,
	// time, boolean or string).
	Type string `json:"type"`
	// Value is the canonical value text; the text content for strings.
	Value string `json:"value"`
	// Currency is the currency code of currency cells, when known.
	Currency string `json:"currency,omitempty"`
	// Formula is the OpenFormula text, e.g. "of:=SUM([.A1:.A3])".
	Formula string `json:"formula,omitempty"`
}

// CellRow represents a single row of converted cells.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column name (e.g. "A") to cell.
	C map[string]Cell `json:"c"`
}
