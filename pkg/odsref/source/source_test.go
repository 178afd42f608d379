package source

import (
	"errors"
	"strconv"
	"testing"
)

func TestLocate(t *testing.T) {
	text := "ab\ncd\nefg"
	tests := []struct {
		start, end int
		line, col  int
		fragment   string
	}{
		{0, 2, 1, 1, "ab"},
		{3, 5, 2, 1, "cd"},
		{7, 9, 3, 2, "fg"},
		{7, 100, 3, 2, "fg"},
		{-1, 1, 1, 1, "a"},
	}

	for _, tt := range tests {
		s := Locate(text, tt.start, tt.end)
		if s.Line != tt.line || s.Column != tt.col || s.Fragment != tt.fragment {
			t.Errorf("Locate(%d, %d) = %+v, expected line %d col %d %q",
				tt.start, tt.end, s, tt.line, tt.col, tt.fragment)
		}
	}
}

func TestUnion(t *testing.T) {
	text := "Sheet1.A1:B2"
	a := Locate(text, 7, 9)
	b := Locate(text, 10, 12)

	u := Union(text, b, a)
	if u.Fragment != "A1:B2" {
		t.Errorf("Expected 'A1:B2', got %q", u.Fragment)
	}
	if u.Len() != 5 {
		t.Errorf("Expected length 5, got %d", u.Len())
	}
}

func TestRecode(t *testing.T) {
	span := Rest("A1extra", 2)
	inner := New(CodeColname, span)

	outer := Recode(inner, CodeCellRange)
	if outer.Code != CodeCellRange {
		t.Errorf("Expected CellRange, got %s", outer.Code)
	}
	if outer.Span != span {
		t.Errorf("Expected span to be kept, got %+v", outer.Span)
	}
	if outer.Cause != inner || outer.Root() != inner {
		t.Error("Expected the original error as cause")
	}
	if inner.Code != CodeColname {
		t.Error("Recode must not modify its argument")
	}

	for _, code := range []Code{CodeScan, CodeScanFailure, CodeUnexpected, CodeParseIncomplete} {
		e := New(code, span)
		if got := Recode(e, CodeCellRef); got != e {
			t.Errorf("Expected structural code %s to survive, got %s", code, got.Code)
		}
	}

	if Recode(nil, CodeCellRef) != nil {
		t.Error("Expected nil for nil error")
	}
}

func TestErrorChain(t *testing.T) {
	_, numErr := strconv.ParseInt("99999999999", 10, 32)
	e := Wrap(CodeOverflow, Locate("99999999999", 0, 11), numErr)
	outer := Recode(e, CodeInteger)

	if !errors.Is(outer, strconv.ErrRange) {
		t.Error("Expected strconv.ErrRange in the chain")
	}
	code, ok := CodeOf(outer)
	if !ok || code != CodeInteger {
		t.Errorf("Expected Integer, got %s", code)
	}

	u := Unexpected(New(CodeDot, Rest("'a'b", 3)))
	if u.Code != CodeUnexpected || u.Cause.Code != CodeDot {
		t.Errorf("Unexpected wrapper is wrong: %+v", u)
	}
	if !errors.Is(u, u.Cause) {
		t.Error("Expected the cause to be reachable with errors.Is")
	}
}

func TestErrorMessage(t *testing.T) {
	e := New(CodeParseIncomplete, Rest("A1extra", 2))
	expected := "ParseIncomplete for span=2::1:3 'extra'"
	if e.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, e.Error())
	}
}

func TestCodeString(t *testing.T) {
	if CodeCellRange.String() != "CellRange" {
		t.Errorf("Expected CellRange, got %s", CodeCellRange)
	}
	if Code(9999).String() != "Code(9999)" {
		t.Errorf("Expected fallback name, got %s", Code(9999))
	}
	for c := CodeScan; c <= CodeCondition; c++ {
		if codeNames[c] == "" {
			t.Errorf("Code %d has no name", int(c))
		}
	}
}
