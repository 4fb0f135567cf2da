package adder

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// exponentDigits is the allow-list of superscript digit codepoints that
// isdigit accepts in addition to ASCII decimal digits: superscript 0
// through 9.
var exponentDigits = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00b2, Hi: 0x00b3, Stride: 1}, // ² ³
		{Lo: 0x00b9, Hi: 0x00b9, Stride: 1}, // ¹
		{Lo: 0x2070, Hi: 0x2070, Stride: 1}, // ⁰
		{Lo: 0x2074, Hi: 0x2079, Stride: 1}, // ⁴ through ⁹
	},
	LatinOffset: 2,
}

// isDigitRune reports whether r is an ASCII decimal digit or a superscript
// digit.
func isDigitRune(r rune) bool {
	return '0' <= r && r <= '9' || unicode.Is(exponentDigits, r)
}

// isSpaceRune reports whether r is Unicode whitespace.
func isSpaceRune(r rune) bool {
	return unicode.IsSpace(r)
}

// isDigitString reports whether every decoded character of s satisfies
// isDigitRune. The empty string is vacuously true.
func isDigitString(s string) bool {
	for _, r := range s {
		if !isDigitRune(r) {
			return false
		}
	}
	return true
}

// isAlnumString reports whether every decoded character of s is a letter or
// a number. The empty string is vacuously true.
func isAlnumString(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// isAlphaString reports whether every decoded character of s is a letter.
// The empty string is vacuously true.
func isAlphaString(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// lowerString applies the full Unicode lowercase mapping to s.
func lowerString(s string) string {
	return cases.Lower(language.Und).String(s)
}

// upperString applies the full Unicode uppercase mapping to s. Full mappings
// may change the character count (ß becomes SS).
func upperString(s string) string {
	return cases.Upper(language.Und).String(s)
}

// capitalizeString upper-cases the first decoded character of s and leaves
// the remainder unchanged.
func capitalizeString(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// titleString upper-cases the first character of each space-separated word
// and lower-cases the rest of the word. Splitting on single spaces keeps
// empty words, so runs of spaces rejoin unchanged.
func titleString(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.Map(unicode.ToLower, w[size:])
	}
	return strings.Join(words, " ")
}

// swapCaseString exchanges the case of each character of s; caseless
// characters pass through unchanged.
func swapCaseString(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		}
		return r
	}, s)
}
