// Package excel converts Excel workbook content into the reference, value and
// formula forms used by OpenDocument spreadsheets.
package excel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/odsref-go/pkg/odsref/refs"
)

// ErrA1Syntax is wrapped by every ParseA1 failure.
var ErrA1Syntax = errors.New("malformed A1 reference")

// a1Part is one endpoint of an A1 reference: a cell, a column or a row.
type a1Part struct {
	col            refs.Col
	row            refs.Row
	hasCol, hasRow bool
}

// ParseA1 reads an Excel A1 reference such as 'My Sheet'!$A$1:$D$10,
// Sheet1!A:A, 1:3 or [1]Data!B2. A bracketed workbook prefix becomes the IRI.
// Sheet spans such as Sheet1:Sheet3!A1 become a CellRange across sheets.
func ParseA1(ref string) (refs.Reference, error) {
	text := strings.TrimPrefix(strings.TrimSpace(ref), "=")
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w %q: %s", ErrA1Syntax, ref, fmt.Sprintf(format, args...))
	}

	iri, sheet, body, err := splitSheet(text)
	if err != nil {
		return nil, fail("%v", err)
	}
	sheet, toSheet, span := strings.Cut(sheet, ":")

	from, to, isRange := strings.Cut(body, ":")
	a, err := parsePart(from)
	if err != nil {
		return nil, fail("%v", err)
	}

	if !isRange {
		if !a.hasCol || !a.hasRow {
			return nil, fail("a single endpoint must name a cell")
		}
		cell := refs.CellRef{IRI: iri, Sheet: refs.Sheet{Name: sheet}, Col: a.col, Row: a.row}
		if span {
			return refs.CellRange{From: cell, To: refs.CellRef{Sheet: refs.Sheet{Name: toSheet}, Col: a.col, Row: a.row}}, nil
		}
		return cell, nil
	}
	if span {
		return nil, fail("sheet spans are only supported for single cells")
	}

	b, err := parsePart(to)
	if err != nil {
		return nil, fail("%v", err)
	}
	s := refs.Sheet{Name: sheet}

	switch {
	case a.hasCol && a.hasRow && b.hasCol && b.hasRow:
		return refs.CellRange{
			From: refs.CellRef{IRI: iri, Sheet: s, Col: a.col, Row: a.row},
			To:   refs.CellRef{Col: b.col, Row: b.row},
		}, nil
	case a.hasCol && !a.hasRow && b.hasCol && !b.hasRow:
		return refs.ColRange{IRI: iri, Sheet: s, Col: a.col, ToCol: b.col}, nil
	case !a.hasCol && a.hasRow && !b.hasCol && b.hasRow:
		return refs.RowRange{IRI: iri, Sheet: s, Row: a.row, ToRow: b.row}, nil
	}
	return nil, fail("endpoints %q and %q do not match", from, to)
}

// splitSheet separates "[book]Sheet!" from the cell part. The sheet may be
// quoted, with a doubled quote standing for one.
func splitSheet(text string) (iri, sheet, body string, err error) {
	if strings.HasPrefix(text, "'") {
		var sb strings.Builder
		closed := false
		for i := 1; i < len(text) && !closed; i++ {
			if text[i] != '\'' {
				sb.WriteByte(text[i])
				continue
			}
			if i+1 < len(text) && text[i+1] == '\'' {
				sb.WriteByte('\'')
				i++
				continue
			}
			if i+1 >= len(text) || text[i+1] != '!' {
				return "", "", "", errors.New("quoted sheet must be followed by '!'")
			}
			sheet, body, closed = sb.String(), text[i+2:], true
		}
		if !closed {
			return "", "", "", errors.New("unterminated sheet quote")
		}
	} else if i := strings.LastIndexByte(text, '!'); i >= 0 {
		sheet, body = text[:i], text[i+1:]
	} else {
		body = text
	}

	if strings.HasPrefix(sheet, "[") {
		end := strings.IndexByte(sheet, ']')
		if end < 0 {
			return "", "", "", errors.New("unterminated workbook bracket")
		}
		iri, sheet = sheet[1:end], sheet[end+1:]
	}
	return iri, sheet, body, nil
}

func parsePart(s string) (a1Part, error) {
	var p a1Part
	if s == "" {
		return p, errors.New("empty endpoint")
	}

	i := 0
	colAbs := s[0] == '$'
	if colAbs {
		i++
	}
	start := i
	for i < len(s) && isASCIILetter(s[i]) {
		i++
	}
	letters := s[start:i]

	rowAbs := false
	if i < len(s) && s[i] == '$' {
		rowAbs = true
		i++
	}
	digits := s[i:]

	if letters == "" && colAbs {
		// "$3" anchors the row, not a column.
		colAbs, rowAbs = false, true
	}

	if letters != "" && digits != "" {
		// excelize validates the cell name and the column limit.
		col, row, err := excelize.SplitCellName(s)
		if err != nil {
			return p, err
		}
		if row > excelize.TotalRows {
			return p, fmt.Errorf("row %d exceeds %d", row, excelize.TotalRows)
		}
		n, err := excelize.ColumnNameToNumber(col)
		if err != nil {
			return p, err
		}
		p.col = refs.Col{Abs: colAbs, Index: uint32(n - 1)}
		p.row = refs.Row{Abs: rowAbs, Index: uint32(row - 1)}
		p.hasCol, p.hasRow = true, true
		return p, nil
	}

	if letters != "" {
		if rowAbs {
			return p, fmt.Errorf("dangling '$' in %q", s)
		}
		n, err := excelize.ColumnNameToNumber(letters)
		if err != nil {
			return p, err
		}
		p.col = refs.Col{Abs: colAbs, Index: uint32(n - 1)}
		p.hasCol = true
		return p, nil
	}

	row, err := strconv.Atoi(digits)
	if err != nil || row < 1 || row > excelize.TotalRows {
		return p, fmt.Errorf("invalid row %q", digits)
	}
	p.row = refs.Row{Abs: rowAbs, Index: uint32(row - 1)}
	p.hasRow = true
	return p, nil
}

func isASCIILetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// FormatA1 writes a cell range in Excel form, e.g. 'My Sheet'!$A$1:$B$2.
func FormatA1(r refs.CellRange) string {
	var sb strings.Builder
	if name := r.From.Sheet.Name; name != "" {
		if strings.ContainsAny(name, " '!-+(),;") {
			sb.WriteString(refs.QuoteSingle(name))
		} else {
			sb.WriteString(name)
		}
		sb.WriteByte('!')
	}
	for i, c := range []refs.CellRef{r.From, r.To} {
		if i > 0 {
			sb.WriteByte(':')
		}
		if c.Col.Abs {
			sb.WriteByte('$')
		}
		sb.WriteString(refs.ColName(c.Col.Index))
		if c.Row.Abs {
			sb.WriteByte('$')
		}
		sb.WriteString(refs.RowName(c.Row.Index))
	}
	return sb.String()
}
