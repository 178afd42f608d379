package value

import (
	"math"
	"strconv"

	"github.com/ukaji3/odsref-go/pkg/odsref/source"
)

// cursor walks a value text byte by byte.
type cursor struct {
	text string
	pos  int
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.text)
}

func (c *cursor) byte(b byte) bool {
	if c.pos < len(c.text) && c.text[c.pos] == b {
		c.pos++
		return true
	}
	return false
}

func (c *cursor) digits() string {
	start := c.pos
	for c.pos < len(c.text) && c.text[c.pos] >= '0' && c.text[c.pos] <= '9' {
		c.pos++
	}
	return c.text[start:c.pos]
}

func (c *cursor) fail(code source.Code) *source.Error {
	return source.New(code, source.Rest(c.text, c.pos))
}

func (c *cursor) span(start int) source.Span {
	return source.Locate(c.text, start, c.pos)
}

// ParseBool accepts exactly "true" or "false".
func ParseBool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, source.New(source.CodeBool, source.Rest(s, 0))
}

// FormatBool returns "true" or "false".
func FormatBool(b bool) string {
	return strconv.FormatBool(b)
}

// integer checks the lexis [-]DIGIT+ and converts with strconv.
func integer(s string, signed bool, bits int) (int64, uint64, error) {
	c := cursor{text: s}
	if signed {
		c.byte('-')
	}
	if c.digits() == "" || !c.eof() {
		return 0, 0, c.fail(source.CodeInteger)
	}

	var (
		i   int64
		u   uint64
		err error
	)
	if signed {
		i, err = strconv.ParseInt(s, 10, bits)
	} else {
		u, err = strconv.ParseUint(s, 10, bits)
	}
	if err != nil {
		return 0, 0, source.Wrap(source.CodeOverflow, source.Rest(s, 0), err)
	}
	return i, u, nil
}

// ParseInt16 parses a decimal int16 with an optional leading '-'.
func ParseInt16(s string) (int16, error) {
	i, _, err := integer(s, true, 16)
	return int16(i), err
}

// ParseInt32 parses a decimal int32 with an optional leading '-'.
func ParseInt32(s string) (int32, error) {
	i, _, err := integer(s, true, 32)
	return int32(i), err
}

// ParseInt64 parses a decimal int64 with an optional leading '-'.
func ParseInt64(s string) (int64, error) {
	i, _, err := integer(s, true, 64)
	return i, err
}

// ParseUint32 parses an unsigned decimal. A sign is malformed, not an
// overflow.
func ParseUint32(s string) (uint32, error) {
	_, u, err := integer(s, false, 32)
	return uint32(u), err
}

// floatEnd returns the offset where the float lexis
// [+-](DIGIT+[.DIGIT*]|.DIGIT+)[(e|E)[+-]DIGIT+] stops matching.
func floatEnd(s string) int {
	c := cursor{text: s}
	if !c.byte('-') {
		c.byte('+')
	}

	mantissa := c.digits()
	if c.byte('.') {
		mantissa += c.digits()
	}
	if mantissa == "" {
		return 0
	}

	save := c.pos
	if c.byte('e') || c.byte('E') {
		if !c.byte('-') {
			c.byte('+')
		}
		if c.digits() == "" {
			return save
		}
	}
	return c.pos
}

// ParseFloat64 parses a decimal or scientific float. NaN and Inf spellings are
// rejected.
func ParseFloat64(s string) (float64, error) {
	if end := floatEnd(s); end == 0 || end != len(s) {
		return 0, source.New(source.CodeFloat, source.Rest(s, end))
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, source.Wrap(source.CodeOverflow, source.Rest(s, 0), err)
	}
	return f, nil
}

// FormatFloat64 writes the shortest text that parses back to f. Magnitudes
// below 1e-6 or from 1e21 up use an exponent.
func FormatFloat64(f float64) string {
	if a := math.Abs(f); a != 0 && (a < 1e-6 || a >= 1e21) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Currency is a currency code padded with spaces to three bytes.
type Currency [3]byte

// ParseCurrency accepts up to three bytes.
func ParseCurrency(s string) (Currency, error) {
	cur := Currency{' ', ' ', ' '}
	if len(s) > len(cur) {
		return cur, source.New(source.CodeCurrency, source.Rest(s, len(cur)))
	}
	copy(cur[:], s)
	return cur, nil
}

// String returns the code without padding.
func (c Currency) String() string {
	n := len(c)
	for n > 0 && c[n-1] == ' ' {
		n--
	}
	return string(c[:n])
}
