// Package refs parses and formats cell, range, column and row references as
// they appear in spreadsheet documents and formulas.
//
// Examples of accepted text:
//   - "A1", "$A$1", "Sheet1.B2", "'My Sheet'.C3"
//   - "'file.ods'#Sheet1.A1"
//   - "A1:C10", "[.A1:.C10]", "Sheet1.A1:Sheet2.B2"
//   - "A:C", "Sheet1.$1:$3"
package refs

import "errors"

// ErrReversedRange is returned when a range is built with from > to.
var ErrReversedRange = errors.New("range start is after range end")

// Sheet qualifies a reference with a sheet. The zero value means no qualifier,
// i.e. the sheet of the context.
type Sheet struct {
	Abs  bool
	Name string
}

// IsSet reports whether the sheet qualifier is present.
func (s Sheet) IsSet() bool {
	return s.Name != ""
}

// Col is a zero-based column with its $ flag.
type Col struct {
	Abs   bool
	Index uint32
}

// Row is a zero-based row with its $ flag.
type Row struct {
	Abs   bool
	Index uint32
}

// Reference is one of CellRef, CellRange, ColRange or RowRange.
type Reference interface {
	// String returns the canonical text.
	String() string
	// Formula returns the bracketed form used inside formulas.
	Formula() string

	isReference()
}

// CellRef addresses a single cell.
type CellRef struct {
	// IRI names an external document. Empty for the current document.
	IRI   string
	Sheet Sheet
	Col   Col
	Row   Row
}

// CellRange addresses a rectangle of cells. To.IRI is not used, both endpoints
// live in the document named by From.IRI.
type CellRange struct {
	From CellRef
	To   CellRef
}

// ColRange addresses whole columns.
type ColRange struct {
	IRI     string
	Sheet   Sheet
	Col     Col
	ToSheet Sheet
	ToCol   Col
}

// RowRange addresses whole rows.
type RowRange struct {
	IRI     string
	Sheet   Sheet
	Row     Row
	ToSheet Sheet
	ToRow   Row
}

func (CellRef) isReference()   {}
func (CellRange) isReference() {}
func (ColRange) isReference()  {}
func (RowRange) isReference()  {}

// NewCellRef returns a relative reference to a cell of the current sheet.
func NewCellRef(row, col uint32) CellRef {
	return CellRef{Row: Row{Index: row}, Col: Col{Index: col}}
}

// RemoteCellRef returns a relative reference to a cell of another sheet.
func RemoteCellRef(sheet string, row, col uint32) CellRef {
	return CellRef{Sheet: Sheet{Name: sheet}, Row: Row{Index: row}, Col: Col{Index: col}}
}

// Absolute returns r with both row and column anchored.
func (r CellRef) Absolute() CellRef {
	r.Row.Abs = true
	r.Col.Abs = true
	return r
}

// AbsoluteRow returns r with the row anchored.
func (r CellRef) AbsoluteRow() CellRef {
	r.Row.Abs = true
	return r
}

// AbsoluteCol returns r with the column anchored.
func (r CellRef) AbsoluteCol() CellRef {
	r.Col.Abs = true
	return r
}

// NewCellRange returns a relative range on the current sheet.
func NewCellRange(row, col, toRow, toCol uint32) (CellRange, error) {
	return RemoteCellRange("", row, col, toRow, toCol)
}

// RemoteCellRange returns a relative range on another sheet. Only the first
// endpoint carries the sheet.
func RemoteCellRange(sheet string, row, col, toRow, toCol uint32) (CellRange, error) {
	if row > toRow || col > toCol {
		return CellRange{}, ErrReversedRange
	}
	return CellRange{
		From: RemoteCellRef(sheet, row, col),
		To:   NewCellRef(toRow, toCol),
	}, nil
}

// Absolute returns r with every row and column anchored.
func (r CellRange) Absolute() CellRange {
	r.From = r.From.Absolute()
	r.To = r.To.Absolute()
	return r
}

// AbsoluteRows returns r with both rows anchored.
func (r CellRange) AbsoluteRows() CellRange {
	r.From = r.From.AbsoluteRow()
	r.To = r.To.AbsoluteRow()
	return r
}

// AbsoluteCols returns r with both columns anchored.
func (r CellRange) AbsoluteCols() CellRange {
	r.From = r.From.AbsoluteCol()
	r.To = r.To.AbsoluteCol()
	return r
}

// Contains reports whether the cell (row, col) lies within r. Sheets are not
// compared.
func (r CellRange) Contains(row, col uint32) bool {
	return row >= r.From.Row.Index && row <= r.To.Row.Index &&
		col >= r.From.Col.Index && col <= r.To.Col.Index
}

// Intersects reports whether r and o share at least one cell. Sheets are not
// compared.
func (r CellRange) Intersects(o CellRange) bool {
	return r.From.Row.Index <= o.To.Row.Index && o.From.Row.Index <= r.To.Row.Index &&
		r.From.Col.Index <= o.To.Col.Index && o.From.Col.Index <= r.To.Col.Index
}

// NewColRange returns a relative column range on the current sheet.
func NewColRange(col, toCol uint32) (ColRange, error) {
	if col > toCol {
		return ColRange{}, ErrReversedRange
	}
	return ColRange{Col: Col{Index: col}, ToCol: Col{Index: toCol}}, nil
}

// NewRowRange returns a relative row range on the current sheet.
func NewRowRange(row, toRow uint32) (RowRange, error) {
	if row > toRow {
		return RowRange{}, ErrReversedRange
	}
	return RowRange{Row: Row{Index: row}, ToRow: Row{Index: toRow}}, nil
}
