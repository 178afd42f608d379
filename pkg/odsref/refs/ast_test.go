package refs

import (
	"errors"
	"testing"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		input    string
		delim    byte
		expected string
	}{
		{`a"b`, '"', `"a""b"`},
		{"plain", '"', `"plain"`},
		{"", '"', `""`},
		{"fa'le", '\'', "'fa''le'"},
	}

	for _, tt := range tests {
		got := Quote(tt.input, tt.delim)
		if got != tt.expected {
			t.Errorf("Quote(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
		if back := Unquote(got, tt.delim); back != tt.input {
			t.Errorf("Unquote(%q) = %q, expected %q", got, back, tt.input)
		}
	}
}

func TestUnquoteTolerant(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"abc", "abc"},
		{"'abc", "abc"},
		{"abc'", "abc"},
		{"''", ""},
		{"'a''''b'", "a''b"},
	}

	for _, tt := range tests {
		if got := UnquoteSingle(tt.input); got != tt.expected {
			t.Errorf("UnquoteSingle(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuilders(t *testing.T) {
	r, err := RemoteCellRange("Data", 0, 0, 9, 2)
	if err != nil {
		t.Fatalf("RemoteCellRange failed: %v", err)
	}
	if got := r.String(); got != "Data.A1:C10" {
		t.Errorf("Expected 'Data.A1:C10', got %q", got)
	}
	if got := r.Absolute().Formula(); got != "[Data.$A$1:.$C$10]" {
		t.Errorf("Expected '[Data.$A$1:.$C$10]', got %q", got)
	}
	if got := r.AbsoluteRows().String(); got != "Data.A$1:C$10" {
		t.Errorf("Expected 'Data.A$1:C$10', got %q", got)
	}
	if got := r.AbsoluteCols().String(); got != "Data.$A1:$C10" {
		t.Errorf("Expected 'Data.$A1:$C10', got %q", got)
	}

	if _, err := NewCellRange(5, 0, 1, 0); !errors.Is(err, ErrReversedRange) {
		t.Errorf("Expected ErrReversedRange, got %v", err)
	}
	if _, err := NewColRange(3, 1); !errors.Is(err, ErrReversedRange) {
		t.Errorf("Expected ErrReversedRange, got %v", err)
	}
	if _, err := NewRowRange(3, 1); !errors.Is(err, ErrReversedRange) {
		t.Errorf("Expected ErrReversedRange, got %v", err)
	}

	cols, err := NewColRange(0, 2)
	if err != nil || cols.String() != "A:C" {
		t.Errorf("Expected 'A:C', got %q (%v)", cols.String(), err)
	}
	rows, err := NewRowRange(0, 2)
	if err != nil || rows.String() != "1:3" {
		t.Errorf("Expected '1:3', got %q (%v)", rows.String(), err)
	}
}

func TestContainsIntersects(t *testing.T) {
	r, _ := NewCellRange(1, 1, 4, 4)

	tests := []struct {
		row, col uint32
		expected bool
	}{
		{1, 1, true},
		{4, 4, true},
		{2, 3, true},
		{0, 1, false},
		{1, 5, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.row, tt.col); got != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.row, tt.col, got, tt.expected)
		}
	}

	other, _ := NewCellRange(4, 4, 8, 8)
	if !r.Intersects(other) {
		t.Error("Expected ranges sharing a corner to intersect")
	}
	apart, _ := NewCellRange(5, 0, 8, 8)
	if r.Intersects(apart) {
		t.Error("Expected disjoint ranges not to intersect")
	}
}
