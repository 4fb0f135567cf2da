package adder

import (
	"hash/maphash"
	"strings"
)

// initStr builds the method table for the text kind. The table is consulted
// on every dispatch and never mutated after this returns.
func (rt *Runtime) initStr() {
	rt.strTable = map[string]Fn{
		"__add__":      StrAdd,
		"__contains__": StrContains,
		"__eq__":       StrEqual,
		"__getitem__":  StrGetItem,
		"__gt__":       StrGreaterThan,
		"__hash__":     StrHash,
		"__len__":      StrLen,
		"__mul__":      StrMul,
		"__new__":      StrNew,
		"__repr__":     StrRepr,
		"__str__":      StrAsText,
		"capitalize":   StrCapitalize,
		"endswith":     StrEndsWith,
		"isalnum":      StrIsAlnum,
		"isalpha":      StrIsAlpha,
		"isdigit":      StrIsDigit,
		"lower":        StrLower,
		"lstrip":       StrLstrip,
		"rstrip":       StrRstrip,
		"split":        StrSplit,
		"startswith":   StrStartsWith,
		"strip":        StrStrip,
		"swapcase":     StrSwapCase,
		"title":        StrTitle,
		"upper":        StrUpper,
	}
}

// argAt returns the nth ordered argument, or nil if there is none.
func argAt(args []*Object, n int) *Object {
	if n < len(args) {
		return args[n]
	}
	return nil
}

// StrAdd is a Str method.
//
// __add__ concatenates the receiver with another text value.
func StrAdd(rt *Runtime, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error) {
	other := argAt(args, 0)
	if other == nil || !other.IsStr() {
		return nil, NewTypeErrorf("cannot add %s and %s", rt.Describe(recv), rt.Describe(other))
	}
	return rt.NewStr(recv.Str() + other.Str()), nil
}

// StrEqual is a Str method.
//
// __eq__ reports whether the operand is a text value with identical content.
// An operand of any other kind compares unequal; this operation never fails.
func StrEqual(rt *Runtime, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error) {
	other := argAt(args, 0)
	ok := other != nil && other.IsStr() && recv.Str() == other.Str()
	return rt.NewBool(ok), nil
}

// StrGreaterThan is a Str method.
//
// __gt__ orders two text values lexicographically over their encoded
// content. The operand must be a text value.
func StrGreaterThan(rt *Runtime, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error) {
	other := argAt(args, 0)
	if other == nil || !other.IsStr() {
		return nil, NewTypeErrorf("argument to __gt__ must be Str, not %s", rt.Describe(other))
	}
	return rt.NewBool(recv.Str() > other.Str()), nil
}

// StrHash is a Str method.
//
// __hash__ computes an order-sensitive hash over the full content, widened
// to the runtime's integer kind. Equal content hashes equal for the lifetime
// of the runtime's process; there is no stability across runs. The 64-bit
// hash is reinterpreted as the signed integer value.
func StrHash(rt *Runtime, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error) {
	h := maphash.String(rt.hashSeed, recv.Str())
	return rt.NewInt(int64(h)), nil
}

// StrLen is a Str method.
//
// __len__ returns the count of storage units (encoded bytes) in the content,
// not the decoded character count.
func StrLen(rt *Runtime, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error) {
	return rt.NewInt(int64(len(recv.Str()))), nil
}

// StrMul is a Str method.
//
// __mul__ concatenates the content with itself n times for an integer
// operand n. Zero yields the empty text; a negative count behaves as zero.
func StrMul(rt *Runtime, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error) {
	other := argAt(args, 0)
	if other == nil || !other.IsInt() {
		return nil, NewTypeErrorf("cannot multiply %s and %s", rt.Describe(recv), rt.Describe(other))
	}
	n := other.Int()
	if n < 0 {
		n = 0
	}
	return rt.NewStr(strings.Repeat(recv.Str(), int(n))), nil
}

// StrNew is a Str method.
//
// __new__ constructs a text value. With no arguments it yields the canonical
// empty text; with one argument it yields the generic to-text conversion of
// that argument. More arguments fail with an ArityError. The receiver is
// ignored.
func StrNew(rt *Runtime, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error) {
	switch len(args) {
	case 0:
		return rt.NewStr(""), nil
	case 1:
		return rt.ToText(args[0]), nil
	}
	return nil, NewArityError("__new__", 1, len(args))
}

// StrAsText is a Str method.
//
// __str__ returns the receiver itself. No copy is needed; immutability makes
// sharing safe.
func StrAsText(rt *Runtime, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error) {
	return recv, nil
}

// StrRepr is a Str method.
//
// __repr__ returns the quoted, escaped literal form of the content.
func StrRepr(rt *Runtime, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error) {
	return rt.NewStr(Repr(recv.Str())), nil
}

// StrContains is a Str method.
//
// __contains__ reports whether the operand occurs as a substring of the
// content. The operand must be a text value.
func StrContains(rt *Runtime, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error) {
	needle := argAt(args, 0)
	if needle == nil || !needle.IsStr() {
		return nil, NewTypeErrorf("argument to __contains__ must be Str, not %s", rt.Describe(needle))
	}
	return rt.NewBool(strings.Contains(recv.Str(), needle.Str())), nil
}

// StrGetItem is a Str method.
//
// __getitem__ extracts a single storage unit by integer index or a sub-range
// by slice descriptor. Integer indices resolve through ResolveIndex and fail
// with an IndexError when out of range; slice descriptors resolve through
// ResolveSlice, which clamps out-of-range bounds instead. A key of any other
// kind fails with a TypeError.
func StrGetItem(rt *Runtime, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error) {
	key := argAt(args, 0)
	s := recv.Str()
	switch {
	case key != nil && key.IsInt():
		i, err := ResolveIndex(len(s), key.Int())
		if err != nil {
			return nil, err
		}
		return rt.NewStr(s[i : i+1]), nil
	case key != nil && key.IsSlice():
		out, err := ApplySlice(StrRange(s), key.Slice())
		if err != nil {
			return nil, err
		}
		return rt.NewStr(string(out.(StrRange))), nil
	}
	return nil, NewTypeErrorf("cannot index %s with %s", rt.Describe(recv), rt.Describe(key))
}

// StrLower is a Str method.
//
// lower returns the content with every character replaced by its full
// Unicode lowercase mapping.
func StrLower(rt *Runtime, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error) {
	return rt.NewStr(lowerString(recv.Str())), nil
}

// StrUpper is a Str method.
//
// upper returns the content with every character replaced by its full
// Unicode uppercase mapping.
func StrUpper(rt *Runtime, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error) {
	return rt.NewStr(upperString(recv.Str())), nil
}

// StrCapitalize is a Str method.
//
// capitalize upper-cases the first character and leaves the remainder
// unchanged.
func StrCapitalize(rt *Runtime, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error) {
	return rt.NewStr(capitalizeString(recv.Str())), nil
}

// StrTitle is a Str method.
//
// title upper-cases the first character of each space-separated word and
// lower-cases the rest of the word. Words are split on single spaces, so
// runs of spaces survive as empty words and the original spacing is
// preserved on rejoining.
func StrTitle(rt *Runtime, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error) {
	return rt.NewStr(titleString(recv.Str())), nil
}

// StrSwapCase is a Str method.
//
// swapcase replaces each lowercase character with its uppercase mapping and
// vice versa; characters with no case pass through unchanged.
func StrSwapCase(rt *Runtime, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error) {
	return rt.NewStr(swapCaseString(recv.Str())), nil
}

// StrSplit is a Str method.
//
// split cuts the content around every occurrence of a plain separator and
// returns the pieces as a list of text values. The separator must be a text
// value.
func StrSplit(rt *Runtime, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error) {
	sep := argAt(args, 0)
	if sep == nil || !sep.IsStr() {
		return nil, NewTypeErrorf("argument to split must be Str, not %s", rt.Describe(sep))
	}
	parts := strings.Split(recv.Str(), sep.Str())
	elems := make([]*Object, len(parts))
	for i, p := range parts {
		elems[i] = rt.NewStr(p)
	}
	return rt.NewList(elems), nil
}

// StrStrip is a Str method.
//
// strip returns the content with leading and trailing whitespace removed.
func StrStrip(rt *Runtime, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error) {
	return rt.NewStr(strings.TrimSpace(recv.Str())), nil
}

// StrLstrip is a Str method.
//
// lstrip returns the content with leading whitespace removed.
func StrLstrip(rt *Runtime, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error) {
	return rt.NewStr(strings.TrimLeftFunc(recv.Str(), isSpaceRune)), nil
}

// StrRstrip is a Str method.
//
// rstrip returns the content with trailing whitespace removed.
func StrRstrip(rt *Runtime, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error) {
	return rt.NewStr(strings.TrimRightFunc(recv.Str(), isSpaceRune)), nil
}

// StrEndsWith is a Str method.
//
// endswith reports whether the content ends with the operand. The operand
// must be a text value.
func StrEndsWith(rt *Runtime, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error) {
	pat := argAt(args, 0)
	if pat == nil || !pat.IsStr() {
		return nil, NewTypeErrorf("argument to endswith must be Str, not %s", rt.Describe(pat))
	}
	return rt.NewBool(strings.HasSuffix(recv.Str(), pat.Str())), nil
}

// StrStartsWith is a Str method.
//
// startswith reports whether the content begins with the operand. The
// operand must be a text value.
func StrStartsWith(rt *Runtime, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error) {
	pat := argAt(args, 0)
	if pat == nil || !pat.IsStr() {
		return nil, NewTypeErrorf("argument to startswith must be Str, not %s", rt.Describe(pat))
	}
	return rt.NewBool(strings.HasPrefix(recv.Str(), pat.Str())), nil
}

// StrIsAlnum is a Str method.
//
// isalnum reports whether every decoded character is alphanumeric.
// Vacuously true on empty content.
func StrIsAlnum(rt *Runtime, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error) {
	return rt.NewBool(isAlnumString(recv.Str())), nil
}

// StrIsAlpha is a Str method.
//
// isalpha reports whether every decoded character is alphabetic. Vacuously
// true on empty content.
func StrIsAlpha(rt *Runtime, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error) {
	return rt.NewBool(isAlphaString(recv.Str())), nil
}

// StrIsDigit is a Str method.
//
// isdigit reports whether every decoded character is an ASCII decimal digit
// or one of the superscript digits. Vacuously true on empty content.
func StrIsDigit(rt *Runtime, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error) {
	return rt.NewBool(isDigitString(recv.Str())), nil
}
