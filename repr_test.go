package adder

import (
	"strings"
	"testing"
)

// unrepr decodes the escapes produced by Repr, recovering the original
// content. It fails the test on malformed input.
func unrepr(t *testing.T, s string) string {
	t.Helper()
	if len(s) < 2 {
		t.Fatalf("representation too short: %q", s)
	}
	quote := rune(s[0])
	if quote != '\'' && quote != '"' {
		t.Fatalf("bad delimiter in %q", s)
	}
	if rune(s[len(s)-1]) != quote {
		t.Fatalf("mismatched delimiters in %q", s)
	}
	var b strings.Builder
	body := []rune(s[1 : len(s)-1])
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == quote {
			t.Fatalf("unescaped delimiter inside %q", s)
		}
		if c != '\\' {
			b.WriteRune(c)
			continue
		}
		i++
		if i >= len(body) {
			t.Fatalf("dangling escape in %q", s)
		}
		switch body[i] {
		case quote:
			b.WriteRune(quote)
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			t.Fatalf("unknown escape %q in %q", body[i], s)
		}
	}
	return b.String()
}

func TestReprQuoteChoice(t *testing.T) {
	cases := map[string]struct {
		in, want string
	}{
		"plain":        {"hello", `'hello'`},
		"empty":        {"", `''`},
		"singleInside": {"it's", `"it's"`},
		"doubleInside": {`He said "hi"`, `'He said "hi"'`},
		"tie":          {`'"`, `'\'"'`},
		"moreSingles":  {`''"`, `"''\""`},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if got := Repr(c.in); got != c.want {
				t.Errorf("Repr(%q): want %q, have %q", c.in, c.want, got)
			}
		})
	}
}

func TestReprEscapes(t *testing.T) {
	cases := map[string]struct {
		in, want string
	}{
		"newline":   {"a\nb", `'a\nb'`},
		"tab":       {"a\tb", `'a\tb'`},
		"carriage":  {"a\rb", `'a\rb'`},
		"backslash": {`a\b`, `'a\\b'`},
		"unicode":   {"héllo ⁹", `'héllo ⁹'`},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if got := Repr(c.in); got != c.want {
				t.Errorf("Repr(%q): want %q, have %q", c.in, c.want, got)
			}
		})
	}
}

// TestReprRoundTrip tests that decoding the escapes recovers the content
// exactly, including content holding both quote styles, backslashes, and
// the escaped control characters.
func TestReprRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"hello",
		"it's",
		`He said "hi"`,
		`both ' and " quotes`,
		`a\b\\c`,
		"line\nbreak\ttab\rreturn",
		`'"\` + "\n\t\r",
		"非ASCIIのテキスト",
		"mixed: 'x' \"y\" \\z\n",
	}
	for _, content := range cases {
		rep := Repr(content)
		if got := unrepr(t, rep); got != content {
			t.Errorf("round trip of %q through %q produced %q", content, rep, got)
		}
	}
}

// TestStrReprDispatch tests the bound __repr__ operation end to end.
func TestStrReprDispatch(t *testing.T) {
	rt := TestingRuntime()
	if got := mustStr(t, "__repr__", rt.NewStr("it's")); got != `"it's"` {
		t.Errorf(`want %q, have %q`, `"it's"`, got)
	}
}
