package refs

import "strings"

// Quote doubles every delim in s and wraps the result in delim.
func Quote(s string, delim byte) string {
	d := string(delim)

	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte(delim)
	sb.WriteString(strings.ReplaceAll(s, d, d+d))
	sb.WriteByte(delim)
	return sb.String()
}

// Unquote strips at most one leading and one trailing delim and collapses
// doubled delims. Missing outer delimiters are tolerated.
func Unquote(s string, delim byte) string {
	d := string(delim)
	s = strings.TrimPrefix(s, d)
	s = strings.TrimSuffix(s, d)
	return strings.ReplaceAll(s, d+d, d)
}

// QuoteSingle quotes a sheet name or IRI.
func QuoteSingle(s string) string { return Quote(s, '\'') }

// UnquoteSingle reverses QuoteSingle.
func UnquoteSingle(s string) string { return Unquote(s, '\'') }

// QuoteDouble quotes a string literal.
func QuoteDouble(s string) string { return Quote(s, '"') }

// UnquoteDouble reverses QuoteDouble.
func UnquoteDouble(s string) string { return Unquote(s, '"') }
