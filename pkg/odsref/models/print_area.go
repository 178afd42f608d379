package models

import "github.com/ukaji3/odsref-go/pkg/odsref/refs"

// PrintArea represents a print area as a range address plus its cell
// coordinate bounds.
type PrintArea struct {
	// Range is the range address, e.g. "Sheet1.$A$1:$D$10".
	Range string `json:"range"`
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// NewPrintArea returns the print area covering r.
func NewPrintArea(r refs.CellRange) PrintArea {
	return PrintArea{
		Range: r.String(),
		R1:    int(r.From.Row.Index) + 1,
		C1:    int(r.From.Col.Index) + 1,
		R2:    int(r.To.Row.Index) + 1,
		C2:    int(r.To.Col.Index) + 1,
	}
}

func (a PrintArea) bounds() refs.CellRange {
	return refs.CellRange{
		From: refs.NewCellRef(uint32(a.R1-1), uint32(a.C1-1)),
		To:   refs.NewCellRef(uint32(a.R2-1), uint32(a.C2-1)),
	}
}

// PrintAreaView represents a slice of a sheet restricted to a print area.
type PrintAreaView struct {
	// BookName is the workbook name owning the area.
	BookName string `json:"book_name"`
	// SheetName is the sheet name owning the area.
	SheetName string `json:"sheet_name"`
	// Area is the print area bounds.
	Area PrintArea `json:"area"`
	// Rows contains the cells within the area bounds.
	Rows []CellRow `json:"rows,omitempty"`
	// Charts contains charts with series values inside the area.
	Charts []Chart `json:"charts,omitempty"`
	// TableCandidates contains table candidates intersecting the area.
	TableCandidates []string `json:"table_candidates,omitempty"`
}

// NewPrintAreaView cuts the rows, charts and table candidates of sheet down to
// area.
func NewPrintAreaView(bookName, sheetName string, sheet SheetData, area PrintArea) PrintAreaView {
	view := PrintAreaView{
		BookName:  bookName,
		SheetName: sheetName,
		Area:      area,
	}
	bounds := area.bounds()

	for _, row := range sheet.Rows {
		if row.R < area.R1 || row.R > area.R2 {
			continue
		}
		cells := make(map[string]Cell)
		for name, cell := range row.C {
			col, err := refs.ParseColName(name)
			if err != nil || !bounds.Contains(uint32(row.R-1), col) {
				continue
			}
			cells[name] = cell
		}
		if len(cells) > 0 {
			view.Rows = append(view.Rows, CellRow{R: row.R, C: cells})
		}
	}

	for _, chart := range sheet.Charts {
		for _, series := range chart.Series {
			r, err := refs.ParseCellRange(series.Values)
			if err == nil && r.Intersects(bounds) {
				view.Charts = append(view.Charts, chart)
				break
			}
		}
	}

	for _, candidate := range sheet.TableCandidates {
		r, err := refs.ParseCellRange(candidate)
		if err == nil && r.Intersects(bounds) {
			view.TableCandidates = append(view.TableCandidates, candidate)
		}
	}

	return view
}
