package models

// SheetData represents the converted content of a sheet.
type SheetData struct {
	// Rows is the list of rows with non-empty cells.
	Rows []CellRow `json:"rows,omitempty"`
	// Charts is the list of charts anchored on the sheet.
	Charts []Chart `json:"charts,omitempty"`
	// TableCandidates is the list of table range addresses.
	TableCandidates []string `json:"table_candidates,omitempty"`
	// PrintAreas is the list of print areas.
	PrintAreas []PrintArea `json:"print_areas,omitempty"`
}
