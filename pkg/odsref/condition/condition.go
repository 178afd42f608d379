// Package condition builds and reads the condition expressions used by cell
// validations and conditional styles, such as
//
//	cell-content()>=5
//	cell-content-is-between(1, 10)
//	of:cell-content-is-whole-number() and cell-content()>0
//	cell-content-is-in-list("a";"b")
//	is-true-formula(of:[.A1]>0)
package condition

import (
	"strconv"
	"strings"

	"github.com/ukaji3/odsref-go/pkg/odsref/refs"
	"github.com/ukaji3/odsref-go/pkg/odsref/value"
)

type argKind int

const (
	argString argKind = iota
	argNumber
	argRef
)

// Arg is one operand of a condition: a string literal, a number or a
// reference.
type Arg struct {
	kind argKind
	text string
	ref  refs.Reference
}

// Text returns a string literal operand.
func Text(s string) Arg { return Arg{kind: argString, text: s} }

// Int returns a numeric operand.
func Int(i int64) Arg { return Arg{kind: argNumber, text: strconv.FormatInt(i, 10)} }

// Float returns a numeric operand.
func Float(f float64) Arg { return Arg{kind: argNumber, text: value.FormatFloat64(f)} }

// Bool returns a boolean operand, written as true or false.
func Bool(b bool) Arg { return Arg{kind: argNumber, text: value.FormatBool(b)} }

// Ref returns a reference operand.
func Ref(r refs.Reference) Arg { return Arg{kind: argRef, ref: r} }

// IsString reports whether a is a string literal.
func (a Arg) IsString() bool { return a.kind == argString }

// IsRef reports whether a is a reference.
func (a Arg) IsRef() bool { return a.kind == argRef }

// Value returns the unquoted string or the number text. Empty for references.
func (a Arg) Value() string { return a.text }

// Reference returns the reference of a reference operand, nil otherwise.
func (a Arg) Reference() refs.Reference { return a.ref }

func (a Arg) String() string {
	switch a.kind {
	case argString:
		return refs.QuoteDouble(a.text)
	case argRef:
		return a.ref.Formula()
	}
	return a.text
}

// Function names.
const (
	FuncContent                = "cell-content"
	FuncContentIsBetween       = "cell-content-is-between"
	FuncContentIsNotBetween    = "cell-content-is-not-between"
	FuncTextLength             = "cell-content-text-length"
	FuncTextLengthIsBetween    = "cell-content-text-length-is-between"
	FuncTextLengthIsNotBetween = "cell-content-text-length-is-not-between"
	FuncContentIsInList        = "cell-content-is-in-list"
	FuncContentIsDate          = "cell-content-is-date"
	FuncContentIsTime          = "cell-content-is-time"
	FuncContentIsDecimalNumber = "cell-content-is-decimal-number"
	FuncContentIsWholeNumber   = "cell-content-is-whole-number"
	FuncIsTrueFormula          = "is-true-formula"
)

// Expr is a parsed or built condition. It is either a function call with an
// optional comparison, possibly chained with "and", or an is-true-formula
// wrapper around formula text.
type Expr struct {
	// Namespace is the prefix before ':', such as "of". Empty when absent.
	Namespace string
	Func      string
	Args      []Arg
	// Op is the comparison operator, empty when the call stands alone.
	Op      string
	Operand Arg
	And     *Expr
	// Formula is the argument of is-true-formula.
	Formula string
}

// String returns the canonical text of e.
func (e Expr) String() string {
	var sb strings.Builder
	e.write(&sb)
	return sb.String()
}

func (e Expr) write(sb *strings.Builder) {
	if e.Namespace != "" {
		sb.WriteString(e.Namespace)
		sb.WriteByte(':')
	}
	sb.WriteString(e.Func)
	sb.WriteByte('(')
	if e.Func == FuncIsTrueFormula {
		sb.WriteString(e.Formula)
	}
	sep := ", "
	if e.Func == FuncContentIsInList {
		sep = ";"
	}
	for i, a := range e.Args {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte(')')
	if e.Op != "" {
		sb.WriteString(e.Op)
		sb.WriteString(e.Operand.String())
	}
	if e.And != nil {
		sb.WriteString(" and ")
		e.And.write(sb)
	}
}

func compare(fn, op string, a Arg) Expr {
	return Expr{Func: fn, Op: op, Operand: a}
}

func ContentEq(a Arg) Expr  { return compare(FuncContent, "=", a) }
func ContentNe(a Arg) Expr  { return compare(FuncContent, "!=", a) }
func ContentLt(a Arg) Expr  { return compare(FuncContent, "<", a) }
func ContentGt(a Arg) Expr  { return compare(FuncContent, ">", a) }
func ContentLte(a Arg) Expr { return compare(FuncContent, "<=", a) }
func ContentGte(a Arg) Expr { return compare(FuncContent, ">=", a) }

// ContentIsBetween checks from <= content <= to.
func ContentIsBetween(from, to Arg) Expr {
	return Expr{Func: FuncContentIsBetween, Args: []Arg{from, to}}
}

// ContentIsNotBetween is the negation of ContentIsBetween.
func ContentIsNotBetween(from, to Arg) Expr {
	return Expr{Func: FuncContentIsNotBetween, Args: []Arg{from, to}}
}

func TextLengthEq(n uint32) Expr  { return compare(FuncTextLength, "=", lengthArg(n)) }
func TextLengthNe(n uint32) Expr  { return compare(FuncTextLength, "!=", lengthArg(n)) }
func TextLengthLt(n uint32) Expr  { return compare(FuncTextLength, "<", lengthArg(n)) }
func TextLengthGt(n uint32) Expr  { return compare(FuncTextLength, ">", lengthArg(n)) }
func TextLengthLte(n uint32) Expr { return compare(FuncTextLength, "<=", lengthArg(n)) }
func TextLengthGte(n uint32) Expr { return compare(FuncTextLength, ">=", lengthArg(n)) }

func lengthArg(n uint32) Arg {
	return Int(int64(n))
}

// TextLengthIsBetween checks from <= len(content) <= to.
func TextLengthIsBetween(from, to uint32) Expr {
	return Expr{Func: FuncTextLengthIsBetween, Args: []Arg{lengthArg(from), lengthArg(to)}}
}

// TextLengthIsNotBetween is the negation of TextLengthIsBetween.
func TextLengthIsNotBetween(from, to uint32) Expr {
	return Expr{Func: FuncTextLengthIsNotBetween, Args: []Arg{lengthArg(from), lengthArg(to)}}
}

// ContentIsInList restricts the content to the given choices. Every choice is
// written as a string literal.
func ContentIsInList(choices ...Arg) Expr {
	args := make([]Arg, len(choices))
	for i, c := range choices {
		if c.kind == argNumber {
			c = Text(c.text)
		}
		args[i] = c
	}
	return Expr{Func: FuncContentIsInList, Args: args}
}

// ContentIsInCellRange restricts the content to the values of a range. A
// relative range is resolved against the validated cell.
func ContentIsInCellRange(r refs.CellRange) Expr {
	return Expr{Func: FuncContentIsInList, Args: []Arg{Ref(r)}}
}

func typed(fn string, cond Expr) Expr {
	return Expr{Func: fn, And: &cond}
}

// IsDateAnd requires a date whose serial day number satisfies cond.
func IsDateAnd(cond Expr) Expr { return typed(FuncContentIsDate, cond) }

// IsTimeAnd requires a time whose fraction of a day satisfies cond.
func IsTimeAnd(cond Expr) Expr { return typed(FuncContentIsTime, cond) }

func IsDecimalNumberAnd(cond Expr) Expr { return typed(FuncContentIsDecimalNumber, cond) }
func IsWholeNumberAnd(cond Expr) Expr   { return typed(FuncContentIsWholeNumber, cond) }

// IsTrueFormula wraps formula text. The formula is not checked.
func IsTrueFormula(formula string) Expr {
	return Expr{Func: FuncIsTrueFormula, Formula: formula}
}

// WithNamespace returns e with the given prefix, e.g. "of" for validation
// conditions.
func (e Expr) WithNamespace(ns string) Expr {
	e.Namespace = ns
	return e
}
