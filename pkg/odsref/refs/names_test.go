package refs

import (
	"errors"
	"math"
	"testing"
)

func TestColNameRoundTrip(t *testing.T) {
	for i := uint32(0); i < 100000; i++ {
		got, err := ParseColName(ColName(i))
		if err != nil {
			t.Fatalf("ParseColName(ColName(%d)) failed: %v", i, err)
		}
		if got != i {
			t.Fatalf("Expected %d, got %d", i, got)
		}
	}
}

func TestRowNameRoundTrip(t *testing.T) {
	for i := uint32(0); i < 100000; i++ {
		got, err := ParseRowName(RowName(i))
		if err != nil {
			t.Fatalf("ParseRowName(RowName(%d)) failed: %v", i, err)
		}
		if got != i {
			t.Fatalf("Expected %d, got %d", i, got)
		}
	}
}

func TestColName(t *testing.T) {
	tests := []struct {
		index    uint32
		expected string
	}{
		{0, "A"},
		{25, "Z"},
		{26, "AA"},
		{51, "AZ"},
		{675, "YZ"},
		{676, "ZA"},
		{701, "ZZ"},
		{702, "AAA"},
		{16383, "XFD"},
		{math.MaxUint32, "MWLQKWV"},
	}

	for _, tt := range tests {
		if got := ColName(tt.index); got != tt.expected {
			t.Errorf("ColName(%d) = %q, expected %q", tt.index, got, tt.expected)
		}
	}
}

func TestRowName(t *testing.T) {
	tests := []struct {
		index    uint32
		expected string
	}{
		{0, "1"},
		{9, "10"},
		{926, "927"},
	}

	for _, tt := range tests {
		if got := RowName(tt.index); got != tt.expected {
			t.Errorf("RowName(%d) = %q, expected %q", tt.index, got, tt.expected)
		}
	}
}

func TestAppendColName(t *testing.T) {
	buf := AppendColName([]byte("x"), 27)
	if string(buf) != "xAB" {
		t.Errorf("Expected 'xAB', got %q", buf)
	}
}

func TestParseColNameErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  NameErrorKind
	}{
		{"", NameEmpty},
		{"a", NameInvalidChar},
		{"A1", NameInvalidChar},
		{"ZZZZZZZZZZ", NamePosOverflow},
		{"MWLQKWW", NamePosOverflow},
	}

	for _, tt := range tests {
		_, err := ParseColName(tt.input)
		var nerr *NameError
		if !errors.As(err, &nerr) {
			t.Errorf("ParseColName(%q): expected NameError, got %v", tt.input, err)
			continue
		}
		if nerr.Kind != tt.kind {
			t.Errorf("ParseColName(%q): expected kind %d, got %d", tt.input, tt.kind, nerr.Kind)
		}
	}
}

func TestParseRowNameErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  NameErrorKind
	}{
		{"", NameEmpty},
		{"0", NameZero},
		{"000", NameZero},
		{"-1", NameInvalidDigit},
		{"+1", NameInvalidDigit},
		{"1a", NameInvalidDigit},
		{"4294967296", NamePosOverflow},
	}

	for _, tt := range tests {
		_, err := ParseRowName(tt.input)
		var nerr *NameError
		if !errors.As(err, &nerr) {
			t.Errorf("ParseRowName(%q): expected NameError, got %v", tt.input, err)
			continue
		}
		if nerr.Kind != tt.kind {
			t.Errorf("ParseRowName(%q): expected kind %d, got %d", tt.input, tt.kind, nerr.Kind)
		}
	}
}

func TestNameErrorMessage(t *testing.T) {
	_, err := ParseRowName("1a")
	expected := `invalid digit 'a' in "1a"`
	if err == nil || err.Error() != expected {
		t.Errorf("Expected %q, got %v", expected, err)
	}
}
