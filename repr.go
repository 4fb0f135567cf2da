package adder

import "strings"

// Repr produces the quoted, escaped literal form of content. The delimiter
// is whichever of the two quote styles occurs strictly less often in the
// content, with single quote winning ties. Inside the delimiters, the chosen
// quote and backslash are escaped with a backslash, newline, tab, and
// carriage return become their two-character escapes, and every other
// character, including non-ASCII content, passes through unchanged. The
// encoding is reversible: decoding the escapes recovers the content exactly.
func Repr(s string) string {
	quote := chooseQuote(s)
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteRune(quote)
	for _, c := range s {
		switch {
		case c == quote || c == '\\':
			b.WriteByte('\\')
			b.WriteRune(c)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\t':
			b.WriteString(`\t`)
		case c == '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(c)
		}
	}
	b.WriteRune(quote)
	return b.String()
}

// chooseQuote picks the delimiter for Repr by counting occurrences of each
// quote style in s.
func chooseQuote(s string) rune {
	if strings.Count(s, "'") > strings.Count(s, `"`) {
		return '"'
	}
	return '\''
}
