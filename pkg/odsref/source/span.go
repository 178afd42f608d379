// Package source tracks where in a parsed text a failure happened and what
// kind of failure it was.
package source

import "strings"

// Span is a located substring of a parsed text.
type Span struct {
	// Offset is the byte offset of the first byte (0-based).
	Offset int
	// End is the byte offset after the last byte (exclusive).
	End int
	// Line is the line of Offset (1-based).
	Line int
	// Column is the byte column of Offset within its line (1-based).
	Column int
	// Fragment is text[Offset:End].
	Fragment string
}

// Locate builds the span text[start:end]. Out of range offsets are clamped.
func Locate(text string, start, end int) Span {
	start = clamp(start, 0, len(text))
	end = clamp(end, start, len(text))

	line := 1 + strings.Count(text[:start], "\n")
	column := start + 1
	if nl := strings.LastIndexByte(text[:start], '\n'); nl >= 0 {
		column = start - nl
	}

	return Span{
		Offset:   start,
		End:      end,
		Line:     line,
		Column:   column,
		Fragment: text[start:end],
	}
}

// Rest is the span from start to the end of text.
func Rest(text string, start int) Span {
	return Locate(text, start, len(text))
}

// Union returns the span reaching from the start of the earlier span to the
// end of the later one. Both spans must come from text.
func Union(text string, a, b Span) Span {
	return Locate(text, min(a.Offset, b.Offset), max(a.End, b.End))
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Offset
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
