package condition

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ukaji3/odsref-go/pkg/odsref/refs"
	"github.com/ukaji3/odsref-go/pkg/odsref/source"
)

//nolint:govet // participle grammar tags are not standard struct tags
type exprGrammar struct {
	Call    *callGrammar `parser:"@@"`
	Op      string       `parser:"( @Op"`
	Operand *argGrammar  `parser:"  @@ )?"`
	And     *exprGrammar `parser:"( \"and\" @@ )?"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type callGrammar struct {
	Pos  lexer.Position
	Name string        `parser:"@Ident \"(\""`
	Args []*argGrammar `parser:"( @@ ( ( \",\" | \";\" ) @@ )* )? \")\""`
}

//nolint:govet // participle grammar tags are not standard struct tags
type argGrammar struct {
	Pos    lexer.Position
	String *string `parser:"  @String"`
	Number *string `parser:"| @Number"`
	Ref    *string `parser:"| @Ref"`
}

var conditionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(?:[^"]|"")*"`},
	{Name: "Ref", Pattern: `\[[^\]]*\]`},
	{Name: "Number", Pattern: `-?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?`},
	{Name: "Ident", Pattern: `[a-z][a-z0-9-]*`},
	{Name: "Op", Pattern: `<=|>=|!=|<|>|=`},
	{Name: "Punct", Pattern: `[(),;]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var conditionParser = participle.MustBuild[exprGrammar](
	participle.Lexer(conditionLexer),
	participle.Elide("Whitespace"),
)

// signature describes the accepted shape of a call.
type signature struct {
	// args is the exact argument count, or -1 for one or more.
	args    int
	compare bool
}

var signatures = map[string]signature{
	FuncContent:                {0, true},
	FuncTextLength:             {0, true},
	FuncContentIsBetween:       {2, false},
	FuncContentIsNotBetween:    {2, false},
	FuncTextLengthIsBetween:    {2, false},
	FuncTextLengthIsNotBetween: {2, false},
	FuncContentIsInList:        {-1, false},
	FuncContentIsDate:          {0, false},
	FuncContentIsTime:          {0, false},
	FuncContentIsDecimalNumber: {0, false},
	FuncContentIsWholeNumber:   {0, false},
}

// Parse reads a condition expression. An "of:" style namespace prefix is kept
// on the returned Expr. Failures are *source.Error with source.CodeCondition,
// or source.CodeScan when the text holds a character no token starts with.
func Parse(text string) (Expr, error) {
	body, ns := text, ""
	if i := strings.IndexByte(text, ':'); i > 0 && isNamespace(text[:i]) {
		ns, body = text[:i], text[i+1:]
	}
	offset := len(text) - len(body)

	if f, ok := strings.CutPrefix(body, FuncIsTrueFormula+"("); ok {
		f, ok = strings.CutSuffix(f, ")")
		if !ok {
			return Expr{}, source.New(source.CodeCondition, source.Rest(text, len(text)))
		}
		return Expr{Namespace: ns, Func: FuncIsTrueFormula, Formula: f}, nil
	}

	g, err := conditionParser.ParseString("", body)
	if err != nil {
		var lerr *lexer.Error
		if errors.As(err, &lerr) {
			return Expr{}, source.Wrap(source.CodeScan, source.Rest(text, offset+lerr.Pos.Offset), err)
		}
		var perr participle.Error
		if errors.As(err, &perr) {
			return Expr{}, source.Wrap(source.CodeCondition, source.Rest(text, offset+perr.Position().Offset), err)
		}
		return Expr{}, source.Wrap(source.CodeScanFailure, source.Rest(text, len(text)), err)
	}

	e, serr := convert(text, offset, g)
	if serr != nil {
		return Expr{}, serr
	}
	e.Namespace = ns
	return e, nil
}

func isNamespace(s string) bool {
	for _, c := range s {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

func convert(text string, offset int, g *exprGrammar) (Expr, *source.Error) {
	call := g.Call
	at := func(pos lexer.Position, format string, args ...any) *source.Error {
		return source.Wrap(source.CodeCondition, source.Rest(text, offset+pos.Offset), fmt.Errorf(format, args...))
	}

	sig, ok := signatures[call.Name]
	if !ok {
		return Expr{}, at(call.Pos, "unknown function %q", call.Name)
	}
	if (sig.args >= 0 && len(call.Args) != sig.args) || (sig.args < 0 && len(call.Args) == 0) {
		return Expr{}, at(call.Pos, "%s: wrong number of arguments %d", call.Name, len(call.Args))
	}
	if sig.compare != (g.Op != "") {
		if sig.compare {
			return Expr{}, at(call.Pos, "%s: missing comparison", call.Name)
		}
		return Expr{}, at(call.Pos, "%s: unexpected comparison", call.Name)
	}

	e := Expr{Func: call.Name, Op: g.Op}
	for _, a := range call.Args {
		arg, err := convertArg(text, offset, a)
		if err != nil {
			return Expr{}, err
		}
		e.Args = append(e.Args, arg)
	}
	if g.Operand != nil {
		arg, err := convertArg(text, offset, g.Operand)
		if err != nil {
			return Expr{}, err
		}
		e.Operand = arg
	}
	if g.And != nil {
		and, err := convert(text, offset, g.And)
		if err != nil {
			return Expr{}, err
		}
		e.And = &and
	}
	return e, nil
}

func convertArg(text string, offset int, a *argGrammar) (Arg, *source.Error) {
	switch {
	case a.String != nil:
		return Text(refs.UnquoteDouble(*a.String)), nil
	case a.Number != nil:
		return Arg{kind: argNumber, text: *a.Number}, nil
	}

	r, err := refs.ParseReference(*a.Ref)
	if err != nil {
		perr := &source.Error{
			Code: source.CodeCondition,
			Span: source.Locate(text, offset+a.Pos.Offset, offset+a.Pos.Offset+len(*a.Ref)),
			Err:  err,
		}
		var cause *source.Error
		if errors.As(err, &cause) {
			perr.Cause = cause
		}
		return Arg{}, perr
	}
	return Ref(r), nil
}
