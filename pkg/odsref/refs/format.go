package refs

import (
	"strings"
	"unicode"
)

// sheetSpecial lists the characters that force a sheet name to be quoted.
const sheetSpecial = "[]. #$':;"

func needsQuotes(name string) bool {
	if name == "" {
		return true
	}
	for _, c := range name {
		if strings.ContainsRune(sheetSpecial, c) || unicode.IsSpace(c) || unicode.IsControl(c) {
			return true
		}
	}
	return false
}

func appendAbs(buf []byte, abs bool) []byte {
	if abs {
		buf = append(buf, '$')
	}
	return buf
}

func appendIRI(buf []byte, iri string) []byte {
	if iri == "" {
		return buf
	}
	buf = append(buf, QuoteSingle(iri)...)
	return append(buf, '#')
}

// appendSheet writes "name." for a set sheet. With dot set, a missing sheet
// still writes the "." of the local form.
func appendSheet(buf []byte, s Sheet, dot bool) []byte {
	if !s.IsSet() {
		if dot {
			buf = append(buf, '.')
		}
		return buf
	}
	buf = appendAbs(buf, s.Abs)
	if needsQuotes(s.Name) {
		buf = append(buf, QuoteSingle(s.Name)...)
	} else {
		buf = append(buf, s.Name...)
	}
	return append(buf, '.')
}

func appendCol(buf []byte, c Col) []byte {
	return AppendColName(appendAbs(buf, c.Abs), c.Index)
}

func appendRow(buf []byte, r Row) []byte {
	return AppendRowName(appendAbs(buf, r.Abs), r.Index)
}

// String returns the sheet qualifier as written before a reference, with the
// trailing dot. Empty for a missing qualifier.
func (s Sheet) String() string {
	return string(appendSheet(nil, s, false))
}

func (c Col) String() string {
	return string(appendCol(nil, c))
}

func (r Row) String() string {
	return string(appendRow(nil, r))
}

func (r CellRef) appendTo(buf []byte, dot bool) []byte {
	buf = appendIRI(buf, r.IRI)
	buf = appendSheet(buf, r.Sheet, dot)
	buf = appendCol(buf, r.Col)
	return appendRow(buf, r.Row)
}

// String returns the canonical text, e.g. "Sheet1.$A$1".
func (r CellRef) String() string {
	return string(r.appendTo(nil, false))
}

// Formula returns the bracketed form, e.g. "[.A1]".
func (r CellRef) Formula() string {
	buf := append([]byte{'['}, r.appendTo(nil, true)...)
	return string(append(buf, ']'))
}

// toSheet returns the sheet to write for the second endpoint of a formula
// range. A repeated sheet is elided.
func toSheet(from, to Sheet) Sheet {
	if to == from {
		return Sheet{}
	}
	return to
}

func (r CellRange) appendTo(buf []byte, formula bool) []byte {
	buf = r.From.appendTo(buf, formula)
	buf = append(buf, ':')
	to := r.To.Sheet
	if formula {
		to = toSheet(r.From.Sheet, to)
	}
	buf = appendSheet(buf, to, formula)
	buf = appendCol(buf, r.To.Col)
	return appendRow(buf, r.To.Row)
}

// String returns the canonical text, e.g. "Sheet1.A1:B2".
func (r CellRange) String() string {
	return string(r.appendTo(nil, false))
}

// Formula returns the bracketed form, e.g. "[Sheet1.A1:.B2]".
func (r CellRange) Formula() string {
	buf := append([]byte{'['}, r.appendTo(nil, true)...)
	return string(append(buf, ']'))
}

func (r ColRange) appendTo(buf []byte, formula bool) []byte {
	buf = appendIRI(buf, r.IRI)
	buf = appendSheet(buf, r.Sheet, formula)
	buf = appendCol(buf, r.Col)
	buf = append(buf, ':')
	to := r.ToSheet
	if formula {
		to = toSheet(r.Sheet, to)
	}
	buf = appendSheet(buf, to, formula)
	return appendCol(buf, r.ToCol)
}

// String returns the canonical text, e.g. "A:C".
func (r ColRange) String() string {
	return string(r.appendTo(nil, false))
}

// Formula returns the bracketed form, e.g. "[.A:.C]".
func (r ColRange) Formula() string {
	buf := append([]byte{'['}, r.appendTo(nil, true)...)
	return string(append(buf, ']'))
}

func (r RowRange) appendTo(buf []byte, formula bool) []byte {
	buf = appendIRI(buf, r.IRI)
	buf = appendSheet(buf, r.Sheet, formula)
	buf = appendRow(buf, r.Row)
	buf = append(buf, ':')
	to := r.ToSheet
	if formula {
		to = toSheet(r.Sheet, to)
	}
	buf = appendSheet(buf, to, formula)
	return appendRow(buf, r.ToRow)
}

// String returns the canonical text, e.g. "1:3".
func (r RowRange) String() string {
	return string(r.appendTo(nil, false))
}

// Formula returns the bracketed form, e.g. "[.1:.3]".
func (r RowRange) Formula() string {
	buf := append([]byte{'['}, r.appendTo(nil, true)...)
	return string(append(buf, ']'))
}

// CellRangeListString joins list entries with single spaces, the form used by
// table:cell-range-address. Lone cells are written without a colon.
func CellRangeListString(list []Reference) string {
	var buf []byte
	for i, r := range list {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, r.String()...)
	}
	return string(buf)
}
