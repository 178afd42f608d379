package condition

import (
	"errors"
	"testing"

	"github.com/ukaji3/odsref-go/pkg/odsref/refs"
	"github.com/ukaji3/odsref-go/pkg/odsref/source"
)

func TestBuilders(t *testing.T) {
	other, err := refs.RemoteCellRange("other", 0, 0, 10, 0)
	if err != nil {
		t.Fatalf("RemoteCellRange failed: %v", err)
	}

	tests := []struct {
		expr     Expr
		expected string
	}{
		{ContentEq(Int(5)), "cell-content()=5"},
		{ContentNe(Int(5)), "cell-content()!=5"},
		{ContentLt(Int(5)), "cell-content()<5"},
		{ContentGt(Int(5)), "cell-content()>5"},
		{ContentLte(Int(5)), "cell-content()<=5"},
		{ContentGte(Float(1.5)), "cell-content()>=1.5"},
		{ContentEq(Text(`say "hi"`)), `cell-content()="say ""hi"""`},
		{ContentIsBetween(Int(1), Int(5)), "cell-content-is-between(1, 5)"},
		{ContentIsNotBetween(Int(1), Int(5)), "cell-content-is-not-between(1, 5)"},
		{TextLengthEq(7), "cell-content-text-length()=7"},
		{TextLengthGte(7), "cell-content-text-length()>=7"},
		{TextLengthIsBetween(5, 7), "cell-content-text-length-is-between(5, 7)"},
		{TextLengthIsNotBetween(5, 7), "cell-content-text-length-is-not-between(5, 7)"},
		{ContentIsInList(Int(1), Int(2), Int(3)), `cell-content-is-in-list("1";"2";"3")`},
		{ContentIsInList(Text("a"), Text("b"), Text("c")), `cell-content-is-in-list("a";"b";"c")`},
		{ContentIsInCellRange(other), "cell-content-is-in-list([other.A1:.A11])"},
		{IsDateAnd(ContentEq(Int(0))), "cell-content-is-date() and cell-content()=0"},
		{IsTimeAnd(ContentEq(Int(0))), "cell-content-is-time() and cell-content()=0"},
		{IsDecimalNumberAnd(ContentEq(Int(0))), "cell-content-is-decimal-number() and cell-content()=0"},
		{IsWholeNumberAnd(ContentGt(Int(0))).WithNamespace("of"), "of:cell-content-is-whole-number() and cell-content()>0"},
		{IsTrueFormula("formula"), "is-true-formula(formula)"},
	}

	for _, tt := range tests {
		if got := tt.expr.String(); got != tt.expected {
			t.Errorf("Expected %q, got %q", tt.expected, got)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	corpus := []string{
		"cell-content()=5",
		"cell-content()!=-2.5",
		`cell-content()="say ""hi"""`,
		"cell-content-is-between(1, 5)",
		"cell-content-is-not-between(1, 5)",
		"cell-content-text-length()<=10",
		"cell-content-text-length-is-between(5, 7)",
		`cell-content-is-in-list("a";"b";"c")`,
		"cell-content-is-in-list([other.A1:.A11])",
		"cell-content-is-in-list([.$A$1:.$A$5])",
		"cell-content-is-date() and cell-content()=0",
		"of:cell-content-is-whole-number() and cell-content()>0",
		"of:is-true-formula(of:[.A1]>0)",
		"is-true-formula(formula)",
	}

	for _, s := range corpus {
		e, err := Parse(s)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", s, err)
			continue
		}
		if got := e.String(); got != s {
			t.Errorf("Round trip of %q gave %q", s, got)
		}
	}
}

func TestParseNormalizes(t *testing.T) {
	e, err := Parse(`cell-content-is-between( 1 ;5 )`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := e.String(); got != "cell-content-is-between(1, 5)" {
		t.Errorf("Expected canonical text, got %q", got)
	}

	e, err = Parse("cell-content-is-in-list([other.A1:other.A11])")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !e.Args[0].IsRef() {
		t.Fatalf("Expected reference argument, got %+v", e.Args[0])
	}
	if _, ok := e.Args[0].Reference().(refs.CellRange); !ok {
		t.Errorf("Expected CellRange, got %T", e.Args[0].Reference())
	}
	if got := e.String(); got != "cell-content-is-in-list([other.A1:.A11])" {
		t.Errorf("Expected elided sheet, got %q", got)
	}
}

func TestParseStructure(t *testing.T) {
	e, err := Parse("of:cell-content-is-whole-number() and cell-content()>0")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if e.Namespace != "of" {
		t.Errorf("Expected namespace 'of', got %q", e.Namespace)
	}
	if e.Func != FuncContentIsWholeNumber {
		t.Errorf("Expected %s, got %s", FuncContentIsWholeNumber, e.Func)
	}
	if e.And == nil || e.And.Op != ">" || e.And.Operand.Value() != "0" {
		t.Errorf("Unexpected chained condition %+v", e.And)
	}

	e, err = Parse(`cell-content()="x"`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !e.Operand.IsString() || e.Operand.Value() != "x" {
		t.Errorf("Expected string operand 'x', got %+v", e.Operand)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input    string
		fragment string
	}{
		{"cell-contents()=5", "cell-contents()=5"},
		{"cell-content()", "cell-content()"},
		{"cell-content-is-between(1)", "cell-content-is-between(1)"},
		{"cell-content-is-between(1, 2)=3", "cell-content-is-between(1, 2)=3"},
		{"cell-content-is-in-list()", "cell-content-is-in-list()"},
		{"cell-content()=", ""},
		{"cell-content()=5 extra", "extra"},
		{"of:cell-content()=5 and", ""},
		{"cell-content-is-in-list([.A0])", "[.A0]"},
		{"is-true-formula(x", ""},
	}

	for _, tt := range tests {
		_, err := Parse(tt.input)
		if err == nil {
			t.Errorf("Parse(%q): expected error", tt.input)
			continue
		}
		var perr *source.Error
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q): expected *source.Error, got %T", tt.input, err)
			continue
		}
		if perr.Code != source.CodeCondition {
			t.Errorf("Parse(%q): expected Condition, got %s", tt.input, perr.Code)
		}
		if perr.Span.Fragment != tt.fragment {
			t.Errorf("Parse(%q): expected fragment %q, got %q", tt.input, tt.fragment, perr.Span.Fragment)
		}
	}
}

func TestParseScanError(t *testing.T) {
	_, err := Parse("of:cell-content()>5 @ 6")
	var perr *source.Error
	if !errors.As(err, &perr) {
		t.Fatalf("Expected *source.Error, got %v", err)
	}
	if perr.Code != source.CodeScan {
		t.Errorf("Expected Scan, got %s", perr.Code)
	}
	if perr.Span.Fragment != "@ 6" {
		t.Errorf("Expected fragment '@ 6', got %q", perr.Span.Fragment)
	}
	if got := source.Recode(perr, source.CodeCondition); got.Code != source.CodeScan {
		t.Errorf("Expected Scan to survive recoding, got %s", got.Code)
	}
}

func TestParseReferenceCause(t *testing.T) {
	_, err := Parse("cell-content-is-in-list([.A0])")
	var perr *source.Error
	if !errors.As(err, &perr) {
		t.Fatalf("Expected *source.Error, got %v", err)
	}
	if perr.Cause == nil || perr.Cause.Code != source.CodeCellRef {
		t.Errorf("Expected CellRef cause, got %+v", perr.Cause)
	}
}
