package excel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/efp"

	"github.com/ukaji3/odsref-go/pkg/odsref/refs"
)

// ErrFormula is wrapped by TranslateFormula failures.
var ErrFormula = errors.New("cannot translate formula")

// OpenFormula operators that differ from Excel.
const (
	unionOp        = "~"
	intersectionOp = "!"
)

// Array pseudo functions emitted by the tokenizer.
const (
	arrayFunc    = "ARRAY"
	arrayRowFunc = "ARRAYROW"
)

// TranslateFormula rewrites an Excel formula as OpenFormula text with the
// "of:=" prefix. References become bracketed range addresses, argument
// separators become ';', and array rows are separated by '|'. Names that are
// not A1 references, such as defined names, are kept as written.
func TranslateFormula(formula string) (string, error) {
	ps := efp.ExcelParser()
	tokens := ps.Parse(formula)
	if len(tokens) == 0 {
		return "", fmt.Errorf("%w %q: empty formula", ErrFormula, formula)
	}

	var sb strings.Builder
	sb.WriteString("of:=")
	var funcs []string

	for _, tok := range tokens {
		switch tok.TType {
		case efp.TokenTypeFunction:
			if tok.TSubType == efp.TokenSubTypeStart {
				funcs = append(funcs, tok.TValue)
				switch tok.TValue {
				case arrayFunc:
					sb.WriteByte('{')
				case arrayRowFunc:
				default:
					sb.WriteString(strings.TrimPrefix(tok.TValue, "_xlfn."))
					sb.WriteByte('(')
				}
				continue
			}
			if len(funcs) == 0 {
				return "", fmt.Errorf("%w %q: unbalanced ')'", ErrFormula, formula)
			}
			name := funcs[len(funcs)-1]
			funcs = funcs[:len(funcs)-1]
			switch name {
			case arrayFunc:
				sb.WriteByte('}')
			case arrayRowFunc:
			default:
				sb.WriteByte(')')
			}

		case efp.TokenTypeSubexpression:
			if tok.TSubType == efp.TokenSubTypeStart {
				funcs = append(funcs, "")
				sb.WriteByte('(')
				continue
			}
			if len(funcs) > 0 {
				funcs = funcs[:len(funcs)-1]
			}
			sb.WriteByte(')')

		case efp.TokenTypeArgument:
			if len(funcs) > 0 && funcs[len(funcs)-1] == arrayFunc {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(';')
			}

		case efp.TokenTypeOperand:
			writeOperand(&sb, tok)

		case efp.TokenTypeOperatorInfix:
			switch tok.TSubType {
			case efp.TokenSubTypeUnion:
				sb.WriteString(unionOp)
			case efp.TokenSubTypeIntersection:
				sb.WriteString(intersectionOp)
			default:
				sb.WriteString(tok.TValue)
			}

		case efp.TokenTypeOperatorPrefix, efp.TokenTypeOperatorPostfix:
			sb.WriteString(tok.TValue)

		default:
			return "", fmt.Errorf("%w %q: unexpected token %q", ErrFormula, formula, tok.TValue)
		}
	}

	return sb.String(), nil
}

func writeOperand(sb *strings.Builder, tok efp.Token) {
	switch tok.TSubType {
	case efp.TokenSubTypeText:
		sb.WriteString(refs.QuoteDouble(tok.TValue))
	case efp.TokenSubTypeLogical:
		sb.WriteString(strings.ToUpper(tok.TValue))
		sb.WriteString("()")
	case efp.TokenSubTypeRange:
		if r, err := ParseA1(tok.TValue); err == nil {
			sb.WriteString(r.Formula())
			return
		}
		sb.WriteString(tok.TValue)
	default:
		sb.WriteString(tok.TValue)
	}
}
