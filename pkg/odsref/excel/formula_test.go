package excel

import (
	"errors"
	"testing"
)

func TestTranslateFormula(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"=SUM(A1:A3)", "of:=SUM([.A1:.A3])"},
		{"SUM(A1:A3)", "of:=SUM([.A1:.A3])"},
		{"=A1+B1*2", "of:=[.A1]+[.B1]*2"},
		{`=IF(A1>0,"yes","no")`, `of:=IF([.A1]>0;"yes";"no")`},
		{"=Sheet2!$B$3*2", "of:=[Sheet2.$B$3]*2"},
		{"='My Sheet'!A1:B2", "of:=['My Sheet'.A1:.B2]"},
		{"=SUM(A:A)", "of:=SUM([.A:.A])"},
		{"={1,2;3,4}", "of:={1;2|3;4}"},
		{"=-A1%", "of:=-[.A1]%"},
		{`="say ""hi"""&B2`, `of:="say ""hi"""&[.B2]`},
		{"=TRUE", "of:=TRUE()"},
		{"=SUM(A1 B1)", "of:=SUM([.A1]![.B1])"},
		{"=SUM((A1,B1))", "of:=SUM(([.A1]~[.B1]))"},
		{"=MyRate*2", "of:=MyRate*2"},
		{"=#N/A", "of:=#N/A"},
		{"=_xlfn.STDEV.S(A1:A3)", "of:=STDEV.S([.A1:.A3])"},
		{"=A1<>B1", "of:=[.A1]<>[.B1]"},
	}

	for _, tt := range tests {
		got, err := TranslateFormula(tt.input)
		if err != nil {
			t.Errorf("TranslateFormula(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("TranslateFormula(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestTranslateFormulaErrors(t *testing.T) {
	inputs := []string{
		"",
		"=SUM(A1))",
		`=a"b"`,
	}

	for _, input := range inputs {
		_, err := TranslateFormula(input)
		if err == nil {
			t.Errorf("TranslateFormula(%q): expected error", input)
			continue
		}
		if !errors.Is(err, ErrFormula) {
			t.Errorf("TranslateFormula(%q): expected ErrFormula, got %v", input, err)
		}
	}
}
