package adder

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the discriminant identifying which variant a value is. Kinds for
// different variants are never equal.
type Kind int

// Value kinds known to this core. The surrounding runtime defines more; this
// package only ever constructs the kinds below.
const (
	KindStr Kind = iota
	KindInt
	KindBool
	KindList
	KindSlice
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindStr:
		return "Str"
	case KindInt:
		return "Int"
	case KindBool:
		return "Bool"
	case KindList:
		return "List"
	case KindSlice:
		return "Slice"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Object is a runtime value. Always use a Runtime constructor to obtain new
// objects; creating objects directly will result in arbitrary failures.
//
// An object's value is set at construction and never mutated afterward.
// Operations that "change" a value construct a new object instead, so
// objects may be shared freely, including between concurrent holders.
type Object struct {
	kind  Kind
	value interface{}
}

// Kind returns the object's kind tag.
func (o *Object) Kind() Kind {
	return o.kind
}

// IsStr reports whether the object is of the text kind.
func (o *Object) IsStr() bool { return o.kind == KindStr }

// IsInt reports whether the object is of the integer kind.
func (o *Object) IsInt() bool { return o.kind == KindInt }

// IsBool reports whether the object is of the boolean kind.
func (o *Object) IsBool() bool { return o.kind == KindBool }

// IsList reports whether the object is of the list kind.
func (o *Object) IsList() bool { return o.kind == KindList }

// IsSlice reports whether the object is a slice descriptor.
func (o *Object) IsSlice() bool { return o.kind == KindSlice }

// Str returns the object's text content. It is the caller's responsibility
// to ensure the object is of the text kind first.
func (o *Object) Str() string {
	return o.value.(string)
}

// Int returns the object's integer value. It is the caller's responsibility
// to ensure the object is of the integer kind first.
func (o *Object) Int() int64 {
	return o.value.(int64)
}

// Bool returns the object's boolean value. It is the caller's responsibility
// to ensure the object is of the boolean kind first.
func (o *Object) Bool() bool {
	return o.value.(bool)
}

// List returns the object's elements. It is the caller's responsibility to
// ensure the object is of the list kind first. The returned slice must not
// be modified.
func (o *Object) List() []*Object {
	return o.value.([]*Object)
}

// Slice returns the object's slice descriptor. It is the caller's
// responsibility to ensure the object is a slice descriptor first.
func (o *Object) Slice() SliceValue {
	return o.value.(SliceValue)
}

// SliceValue is the primitive value of a slice-descriptor object. Each bound
// is optional; a nil field takes its default during resolution. Bounds may
// be negative, in which case they are interpreted relative to the length of
// the sequence being sliced.
type SliceValue struct {
	Start *int64
	Stop  *int64
	Step  *int64
}

// ToText is the generic to-text conversion for every kind this core knows.
// Text values convert to themselves without copying; sharing is safe because
// they are immutable.
func (rt *Runtime) ToText(o *Object) *Object {
	if o.IsStr() {
		return o
	}
	return rt.NewStr(rt.textOf(o))
}

// textOf renders the canonical textual form of a value. List elements of the
// text kind render in their escaped representation so that the element
// boundaries stay readable.
func (rt *Runtime) textOf(o *Object) string {
	switch o.kind {
	case KindStr:
		return o.Str()
	case KindInt:
		return strconv.FormatInt(o.Int(), 10)
	case KindBool:
		if o.Bool() {
			return "true"
		}
		return "false"
	case KindList:
		elems := o.List()
		parts := make([]string, len(elems))
		for i, e := range elems {
			if e.IsStr() {
				parts[i] = Repr(e.Str())
			} else {
				parts[i] = rt.textOf(e)
			}
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindSlice:
		v := o.Slice()
		return fmt.Sprintf("slice(%s, %s, %s)", sliceBound(v.Start), sliceBound(v.Stop), sliceBound(v.Step))
	}
	panic(fmt.Sprintf("adder: invalid kind %v", o.kind))
}

func sliceBound(b *int64) string {
	if b == nil {
		return "nil"
	}
	return strconv.FormatInt(*b, 10)
}

// Describe renders an operand for use in error messages: the kind name
// followed by the value's textual form, with text values escaped.
func (rt *Runtime) Describe(o *Object) string {
	if o == nil {
		return "nil"
	}
	if o.IsStr() {
		return o.kind.String() + " " + Repr(o.Str())
	}
	return o.kind.String() + " " + rt.textOf(o)
}
