package refs

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ukaji3/odsref-go/pkg/odsref/source"
)

// parser is a cursor over the text of one parse call. It is copied by value
// to probe ahead and assigned back to roll back.
type parser struct {
	text string
	pos  int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.text)
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.text[p.pos]
}

func (p *parser) rest() source.Span {
	return source.Rest(p.text, p.pos)
}

func (p *parser) fail(code source.Code) *source.Error {
	return source.New(code, p.rest())
}

func (p *parser) space() {
	for !p.eof() {
		switch p.text[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) char(c byte, code source.Code) *source.Error {
	if p.peek() != c {
		return p.fail(code)
	}
	p.pos++
	return nil
}

func (p *parser) dollar() bool {
	if p.peek() == '$' {
		p.pos++
		return true
	}
	return false
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (p *parser) scan(class func(byte) bool) string {
	start := p.pos
	for !p.eof() && class(p.text[p.pos]) {
		p.pos++
	}
	return p.text[start:p.pos]
}

// quoted reads a delimited string where a doubled delimiter stands for one.
// It returns the raw token including the outer delimiters.
func (p *parser) quoted(delim byte, startCode, endCode source.Code) (string, *source.Error) {
	start := p.pos
	if err := p.char(delim, startCode); err != nil {
		return "", err
	}

	for {
		if p.eof() {
			return "", p.fail(endCode)
		}
		if p.text[p.pos] == delim {
			if p.pos+1 < len(p.text) && p.text[p.pos+1] == delim {
				p.pos += 2
				continue
			}
			break
		}
		p.pos++
	}

	if p.pos == start+1 {
		return "", p.fail(source.CodeString)
	}
	p.pos++
	return p.text[start:p.pos], nil
}

// iri reads an optional "'source'#". A quoted string without '#' is left for
// the sheet name.
func (p *parser) iri() (string, *source.Error) {
	if p.peek() != '\'' {
		return "", nil
	}

	save := *p
	raw, err := p.quoted('\'', source.CodeSingleQuoteStart, source.CodeSingleQuoteEnd)
	if err != nil {
		return "", source.Recode(err, source.CodeIri)
	}
	p.space()
	if p.peek() != '#' {
		*p = save
		return "", nil
	}
	p.pos++

	return UnquoteSingle(raw), nil
}

func isSheetChar(r rune) bool {
	return !strings.ContainsRune(sheetSpecial, r) && !unicode.IsSpace(r) && !unicode.IsControl(r)
}

// sheet reads an optional "$name." or "$'quoted name'.".
func (p *parser) sheet() (Sheet, *source.Error) {
	save := *p
	abs := p.dollar()
	p.space()

	if p.peek() == '\'' {
		raw, err := p.quoted('\'', source.CodeSingleQuoteStart, source.CodeSingleQuoteEnd)
		if err != nil {
			return Sheet{}, source.Recode(err, source.CodeSheetName)
		}
		p.space()
		if err := p.char('.', source.CodeDot); err != nil {
			return Sheet{}, source.Unexpected(err)
		}
		return Sheet{Abs: abs, Name: UnquoteSingle(raw)}, nil
	}

	start := p.pos
	for !p.eof() {
		r, size := utf8.DecodeRuneInString(p.text[p.pos:])
		if !isSheetChar(r) {
			break
		}
		p.pos += size
	}
	name := p.text[start:p.pos]
	p.space()
	if name == "" || p.peek() != '.' {
		*p = save
		return Sheet{}, nil
	}
	p.pos++

	return Sheet{Abs: abs, Name: name}, nil
}

// locator reads the optional source and sheet qualifiers of a reference,
// including the lone "." of the local form.
func (p *parser) locator() (string, Sheet, *source.Error) {
	p.space()
	iri, err := p.iri()
	if err != nil {
		return "", Sheet{}, err
	}
	sheet, err := p.toLocator()
	if err != nil {
		return "", Sheet{}, err
	}
	return iri, sheet, nil
}

// toLocator reads the sheet qualifier of a second endpoint, which never
// carries a source.
func (p *parser) toLocator() (Sheet, *source.Error) {
	p.space()
	sheet, err := p.sheet()
	if err != nil {
		return Sheet{}, err
	}
	if !sheet.IsSet() {
		p.space()
		if p.peek() == '.' {
			p.pos++
		}
	}
	p.space()
	return sheet, nil
}

func (p *parser) col() (Col, *source.Error) {
	abs := p.dollar()
	start := p.pos
	letters := p.scan(isLetter)
	if letters == "" {
		return Col{}, p.fail(source.CodeAlpha)
	}

	idx, err := ParseColName(letters)
	if err != nil {
		return Col{}, source.Wrap(source.CodeColname, source.Locate(p.text, start, p.pos), err)
	}
	return Col{Abs: abs, Index: idx}, nil
}

func (p *parser) row() (Row, *source.Error) {
	abs := p.dollar()
	start := p.pos
	digits := p.scan(isDigit)
	if digits == "" {
		return Row{}, p.fail(source.CodeDigit)
	}

	idx, err := ParseRowName(digits)
	if err != nil {
		return Row{}, source.Wrap(source.CodeRowname, source.Locate(p.text, start, p.pos), err)
	}
	return Row{Abs: abs, Index: idx}, nil
}

func (p *parser) colon() *source.Error {
	p.space()
	return p.char(':', source.CodeColon)
}

// The has* probes only look at token shapes and never convert.

func (p *parser) hasCol() bool {
	p.dollar()
	return p.scan(isLetter) != ""
}

func (p *parser) hasRow() bool {
	p.dollar()
	return p.scan(isDigit) != ""
}

func (p *parser) hasColon() bool {
	p.space()
	return p.peek() == ':'
}
