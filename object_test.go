package adder

import (
	"strings"
	"testing"
)

func TestDescribe(t *testing.T) {
	rt := TestingRuntime()
	cases := map[string]struct {
		value *Object
		want  string
	}{
		"str":   {rt.NewStr("foo"), `Str 'foo'`},
		"int":   {rt.NewInt(5), "Int 5"},
		"bool":  {rt.True, "Bool true"},
		"list":  {rt.NewList([]*Object{rt.NewInt(1)}), "List [1]"},
		"slice": {rt.NewSlice(nil, iptr(3), iptr(1)), "Slice slice(nil, 3, 1)"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if got := rt.Describe(c.value); got != c.want {
				t.Errorf("want %q, have %q", c.want, got)
			}
		})
	}
	if got := rt.Describe(nil); got != "nil" {
		t.Errorf("describing nil: want %q, have %q", "nil", got)
	}
}

// TestErrorMessagesNameOperands tests that a kind-mismatch message carries
// the textual forms of both operands.
func TestErrorMessagesNameOperands(t *testing.T) {
	rt := TestingRuntime()
	_, err := rt.Call("__add__", rt.NewStr("foo"), []*Object{rt.NewInt(5)}, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, part := range []string{"'foo'", "5", "Str", "Int"} {
		if !strings.Contains(msg, part) {
			t.Errorf("message %q missing %q", msg, part)
		}
	}
}

func TestSliceValueAccess(t *testing.T) {
	rt := TestingRuntime()
	o := rt.NewSlice(iptr(1), nil, iptr(2))
	if !o.IsSlice() {
		t.Fatal("wrong kind for slice descriptor")
	}
	v := o.Slice()
	if v.Start == nil || *v.Start != 1 || v.Stop != nil || v.Step == nil || *v.Step != 2 {
		t.Errorf("wrong descriptor contents: %+v", v)
	}
}
