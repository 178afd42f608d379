package refs

import (
	"fmt"
	"math"
	"strconv"
)

// NameErrorKind classifies why a column or row name could not be converted.
type NameErrorKind int

const (
	// NameEmpty means the name was empty.
	NameEmpty NameErrorKind = iota
	// NameInvalidChar means a column name contained something other than A-Z.
	NameInvalidChar
	// NameInvalidDigit means a row name contained a non digit, including a sign.
	NameInvalidDigit
	// NamePosOverflow means the value does not fit into 32 bits.
	NamePosOverflow
	// NameZero means the row name was 0. Rows are 1-based in text.
	NameZero
)

var nameErrorText = [...]string{
	NameEmpty:        "input was empty",
	NameInvalidChar:  "invalid char",
	NameInvalidDigit: "invalid digit",
	NamePosOverflow:  "positive overflow",
	NameZero:         "zero",
}

// NameError is returned by ParseColName and ParseRowName.
type NameError struct {
	Kind  NameErrorKind
	Input string
	// Char is the offending character for NameInvalidChar and NameInvalidDigit.
	Char rune
}

func (e *NameError) Error() string {
	switch e.Kind {
	case NameInvalidChar, NameInvalidDigit:
		return fmt.Sprintf("%s %q in %q", nameErrorText[e.Kind], e.Char, e.Input)
	}
	return fmt.Sprintf("%s: %q", nameErrorText[e.Kind], e.Input)
}

// colNameBuf holds the letters of the largest uint32 column.
const colNameBuf = 7

// AppendColName appends the column letters for the zero-based index col.
func AppendColName(buf []byte, col uint32) []byte {
	var digits [colNameBuf]byte
	n := 0

	i := uint64(col) + 1
	for i > 0 {
		d := i % 26
		if d == 0 {
			digits[n] = 'Z'
			i = i/26 - 1
		} else {
			digits[n] = byte('A' + d - 1)
			i /= 26
		}
		n++
	}

	for n > 0 {
		n--
		buf = append(buf, digits[n])
	}
	return buf
}

// ColName returns the column letters for the zero-based index col.
// 0 is "A", 25 is "Z", 26 is "AA".
func ColName(col uint32) string {
	return string(AppendColName(make([]byte, 0, colNameBuf), col))
}

// AppendRowName appends the 1-based row number for the zero-based index row.
func AppendRowName(buf []byte, row uint32) []byte {
	return strconv.AppendUint(buf, uint64(row)+1, 10)
}

// RowName returns the 1-based row number for the zero-based index row.
func RowName(row uint32) string {
	return string(AppendRowName(make([]byte, 0, 10), row))
}

// ParseColName converts column letters to a zero-based index.
func ParseColName(s string) (uint32, error) {
	if s == "" {
		return 0, &NameError{Kind: NameEmpty, Input: s}
	}

	var col uint64
	for _, c := range s {
		if c < 'A' || c > 'Z' {
			return 0, &NameError{Kind: NameInvalidChar, Input: s, Char: c}
		}
		col = col*26 + uint64(c-'A'+1)
		if col > math.MaxUint32+1 {
			return 0, &NameError{Kind: NamePosOverflow, Input: s}
		}
	}

	return uint32(col - 1), nil
}

// ParseRowName converts a 1-based row number to a zero-based index.
func ParseRowName(s string) (uint32, error) {
	if s == "" {
		return 0, &NameError{Kind: NameEmpty, Input: s}
	}

	var row uint64
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, &NameError{Kind: NameInvalidDigit, Input: s, Char: c}
		}
		row = row*10 + uint64(c-'0')
		if row > math.MaxUint32 {
			return 0, &NameError{Kind: NamePosOverflow, Input: s}
		}
	}

	if row == 0 {
		return 0, &NameError{Kind: NameZero, Input: s}
	}
	return uint32(row - 1), nil
}
