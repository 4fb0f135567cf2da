package adder

import (
	"hash/maphash"
)

// An Fn is a native Go function bound into a kind's method table. It
// receives the runtime, the receiver, the ordered arguments, and the keyword
// arguments, and produces a new value or an error. kwargs may be nil.
type Fn func(rt *Runtime, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error)

// Runtime holds the state shared by every value it creates: the frozen
// method tables, the memoized common values, and the per-process hash seed.
//
// A Runtime's tables are built once by NewRuntime and never mutated
// afterward, so any number of goroutines may dispatch through it without
// locking.
type Runtime struct {
	// True and False are the shared boolean singletons.
	True  *Object
	False *Object

	// Common values memoized to avoid needing new objects for each use.
	strMemo map[string]*Object
	intMemo map[int64]*Object

	// strTable maps canonical operation names to their implementations for
	// the text kind.
	strTable map[string]Fn

	// hashSeed keys content hashing. It is created with the runtime, so
	// hashes are deterministic within one run and unstable across runs.
	hashSeed maphash.Seed
}

// NewRuntime prepares a new Runtime. The Str method table is built here and
// frozen; the empty string, all one-byte strings, and integers in [-1, 255]
// are memoized.
func NewRuntime() *Runtime {
	rt := &Runtime{
		True:     &Object{kind: KindBool, value: true},
		False:    &Object{kind: KindBool, value: false},
		strMemo:  make(map[string]*Object, 129),
		intMemo:  make(map[int64]*Object, 257),
		hashSeed: maphash.MakeSeed(),
	}
	rt.memoizeStr("")
	for i := 0; i < 128; i++ {
		rt.memoizeStr(string(rune(i)))
	}
	for i := int64(-1); i <= 255; i++ {
		rt.memoizeInt(i)
	}
	rt.initStr()
	return rt
}

// memoizeStr creates a quick-access Str with the given content.
func (rt *Runtime) memoizeStr(v string) {
	rt.strMemo[v] = &Object{kind: KindStr, value: v}
}

// memoizeInt creates a quick-access Int with the given value.
func (rt *Runtime) memoizeInt(v int64) {
	rt.intMemo[v] = &Object{kind: KindInt, value: v}
}

// NewStr creates a text value with the given content. If the content is
// memoized by the runtime, that object is returned; otherwise, a new object
// is allocated.
func (rt *Runtime) NewStr(value string) *Object {
	if s, ok := rt.strMemo[value]; ok {
		return s
	}
	return &Object{kind: KindStr, value: value}
}

// NewInt creates an integer value. If the value is memoized by the runtime,
// that object is returned; otherwise, a new object is allocated.
func (rt *Runtime) NewInt(value int64) *Object {
	if x, ok := rt.intMemo[value]; ok {
		return x
	}
	return &Object{kind: KindInt, value: value}
}

// NewBool converts a bool to the corresponding boolean singleton.
func (rt *Runtime) NewBool(value bool) *Object {
	if value {
		return rt.True
	}
	return rt.False
}

// NewList creates a list value holding the given elements. The runtime takes
// ownership of the slice; the caller must not modify it afterward.
func (rt *Runtime) NewList(elems []*Object) *Object {
	return &Object{kind: KindList, value: elems}
}

// NewSlice creates a slice descriptor with the given optional bounds.
func (rt *Runtime) NewSlice(start, stop, step *int64) *Object {
	return &Object{kind: KindSlice, value: SliceValue{Start: start, Stop: stop, Step: step}}
}

// Lookup finds the implementation bound to a canonical operation name for
// the text kind.
func (rt *Runtime) Lookup(name string) (Fn, bool) {
	fn, ok := rt.strTable[name]
	return fn, ok
}

// StrOps returns the canonical operation names bound for the text kind.
func (rt *Runtime) StrOps() []string {
	names := make([]string, 0, len(rt.strTable))
	for name := range rt.strTable {
		names = append(names, name)
	}
	return names
}

// Call dispatches an operation by name on a receiver. The receiver must be
// of the text kind for every operation except __new__, which constructs a
// value rather than operating on one; a receiver of any other kind fails
// with a TypeError before the implementation is entered. Implementations
// assume this precondition and do not re-check their receiver.
func (rt *Runtime) Call(name string, recv *Object, args []*Object, kwargs map[string]*Object) (*Object, error) {
	fn, ok := rt.strTable[name]
	if !ok {
		return nil, NewTypeErrorf("Str does not respond to %q", name)
	}
	if name != "__new__" && (recv == nil || !recv.IsStr()) {
		return nil, NewTypeErrorf("receiver of %s must be Str, not %s", name, rt.Describe(recv))
	}
	return fn(rt, recv, args, kwargs)
}
