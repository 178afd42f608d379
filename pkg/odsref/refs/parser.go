package refs

import "github.com/ukaji3/odsref-go/pkg/odsref/source"

// ParseCellRef parses a single cell reference such as "Sheet1.$A$1".
func ParseCellRef(text string) (CellRef, error) {
	return parseText(text, source.CodeCellRef, (*parser).cellRef)
}

// ParseCellRange parses a cell range such as "A1:C10" or "[.A1:.C10]".
func ParseCellRange(text string) (CellRange, error) {
	return parseText(text, source.CodeCellRange, (*parser).cellRange)
}

// ParseColRange parses a column range such as "A:C".
func ParseColRange(text string) (ColRange, error) {
	return parseText(text, source.CodeColRange, (*parser).colRange)
}

// ParseRowRange parses a row range such as "$1:$3".
func ParseRowRange(text string) (RowRange, error) {
	return parseText(text, source.CodeRowRange, (*parser).rowRange)
}

// ParseReference parses any of the four reference shapes. The shape is picked
// by looking at the tokens after the sheet qualifier; once picked, a failure is
// reported against that shape and no other shape is tried.
func ParseReference(text string) (Reference, error) {
	return parseText(text, source.CodeReference, (*parser).reference)
}

// ParseCellRangeList parses space separated entries of
// table:cell-range-address. An entry is a cell range or a lone cell, so the
// result holds CellRange and CellRef values. Empty text yields an empty list.
func ParseCellRangeList(text string) ([]Reference, error) {
	p := &parser{text: text}
	var list []Reference

	for {
		p.space()
		if p.eof() {
			return list, nil
		}

		start := *p
		var entry Reference
		cell, err := p.cellRef()
		if err == nil {
			entry = cell
			if q := *p; q.hasColon() {
				*p = start
				var r CellRange
				r, err = p.cellRange()
				entry = r
			}
		}
		if err != nil {
			return nil, source.Recode(err, source.CodeCellRangeList)
		}
		if !p.eof() && !isSpace(p.peek()) {
			return nil, source.Incomplete(p.rest())
		}
		list = append(list, entry)
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// parseText runs fn over the whole of text, accepting an optional pair of
// formula brackets around it.
func parseText[T any](text string, code source.Code, fn func(*parser) (T, *source.Error)) (T, error) {
	var zero T
	p := &parser{text: text}

	p.space()
	bracket := p.peek() == '['
	if bracket {
		p.pos++
	}

	v, err := fn(p)
	if err != nil {
		return zero, err
	}

	p.space()
	if bracket {
		if err := p.char(']', source.CodeBracketsClose); err != nil {
			return zero, source.Recode(err, code)
		}
		p.space()
	}
	if !p.eof() {
		return zero, source.Incomplete(p.rest())
	}
	return v, nil
}

func (p *parser) cellRef() (CellRef, *source.Error) {
	var r CellRef
	var err *source.Error

	if r.IRI, r.Sheet, err = p.locator(); err != nil {
		return CellRef{}, source.Recode(err, source.CodeCellRef)
	}
	if r.Col, err = p.col(); err != nil {
		return CellRef{}, source.Recode(err, source.CodeCellRef)
	}
	if r.Row, err = p.row(); err != nil {
		return CellRef{}, source.Recode(err, source.CodeCellRef)
	}
	return r, nil
}

func (p *parser) cellRange() (CellRange, *source.Error) {
	var r CellRange
	var err *source.Error

	if r.From, err = p.cellRef(); err != nil {
		return CellRange{}, source.Recode(err, source.CodeCellRange)
	}
	if err = p.colon(); err != nil {
		return CellRange{}, source.Recode(err, source.CodeCellRange)
	}
	if r.To.Sheet, err = p.toLocator(); err != nil {
		return CellRange{}, source.Recode(err, source.CodeCellRange)
	}
	if r.To.Col, err = p.col(); err != nil {
		return CellRange{}, source.Recode(err, source.CodeCellRange)
	}
	if r.To.Row, err = p.row(); err != nil {
		return CellRange{}, source.Recode(err, source.CodeCellRange)
	}
	return r, nil
}

func (p *parser) colRange() (ColRange, *source.Error) {
	var r ColRange
	var err *source.Error

	if r.IRI, r.Sheet, err = p.locator(); err != nil {
		return ColRange{}, source.Recode(err, source.CodeColRange)
	}
	if r.Col, err = p.col(); err != nil {
		return ColRange{}, source.Recode(err, source.CodeColRange)
	}
	if err = p.colon(); err != nil {
		return ColRange{}, source.Recode(err, source.CodeColRange)
	}
	if r.ToSheet, err = p.toLocator(); err != nil {
		return ColRange{}, source.Recode(err, source.CodeColRange)
	}
	if r.ToCol, err = p.col(); err != nil {
		return ColRange{}, source.Recode(err, source.CodeColRange)
	}
	return r, nil
}

func (p *parser) rowRange() (RowRange, *source.Error) {
	var r RowRange
	var err *source.Error

	if r.IRI, r.Sheet, err = p.locator(); err != nil {
		return RowRange{}, source.Recode(err, source.CodeRowRange)
	}
	if r.Row, err = p.row(); err != nil {
		return RowRange{}, source.Recode(err, source.CodeRowRange)
	}
	if err = p.colon(); err != nil {
		return RowRange{}, source.Recode(err, source.CodeRowRange)
	}
	if r.ToSheet, err = p.toLocator(); err != nil {
		return RowRange{}, source.Recode(err, source.CodeRowRange)
	}
	if r.ToRow, err = p.row(); err != nil {
		return RowRange{}, source.Recode(err, source.CodeRowRange)
	}
	return r, nil
}

// alternative is one top-level reference shape. match runs on a copy of the
// parser positioned after the sheet qualifier.
type alternative struct {
	match func(q parser) bool
	parse func(p *parser) (Reference, *source.Error)
}

var alternatives = []alternative{
	{
		// A column not followed by a colon. A missing row is then an error of
		// the cell, not a reason to try the other shapes.
		match: func(q parser) bool {
			if !q.hasCol() {
				return false
			}
			r := q
			if r.hasRow() {
				return !r.hasColon()
			}
			return !q.hasColon()
		},
		parse: func(p *parser) (Reference, *source.Error) {
			r, err := p.cellRef()
			if err != nil {
				return nil, err
			}
			return r, nil
		},
	},
	{
		match: func(q parser) bool {
			return q.hasCol() && q.hasRow() && q.hasColon()
		},
		parse: func(p *parser) (Reference, *source.Error) {
			r, err := p.cellRange()
			if err != nil {
				return nil, err
			}
			return r, nil
		},
	},
	{
		match: func(q parser) bool {
			return q.hasCol() && q.hasColon()
		},
		parse: func(p *parser) (Reference, *source.Error) {
			r, err := p.colRange()
			if err != nil {
				return nil, err
			}
			return r, nil
		},
	},
	{
		match: func(q parser) bool {
			return q.hasRow() && q.hasColon()
		},
		parse: func(p *parser) (Reference, *source.Error) {
			r, err := p.rowRange()
			if err != nil {
				return nil, err
			}
			return r, nil
		},
	},
}

func (p *parser) reference() (Reference, *source.Error) {
	start := *p

	q := *p
	if _, _, err := q.locator(); err != nil {
		return nil, source.Recode(err, source.CodeReference)
	}

	for _, alt := range alternatives {
		if !alt.match(q) {
			continue
		}
		*p = start
		ref, err := alt.parse(p)
		if err != nil {
			return nil, err
		}
		return ref, nil
	}

	return nil, q.fail(source.CodeReference)
}
