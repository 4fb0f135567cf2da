/*
Package adder implements the text value core of the Adder runtime.

Adder is a small, dynamically typed object runtime. Values are discriminated
objects carrying a kind tag and an immutable primitive value; operations on a
value are native Go functions bound to the value's kind through a method
table built once when the runtime is created and never mutated afterward.
This package provides the text ("Str") kind in full: construction, equality,
ordering, hashing, concatenation and repetition, indexing and slicing, the
textual methods (case transforms, stripping, splitting, affix tests), the
classification predicates, and the escaped literal representation.

The surrounding runtime — its instruction loop, attribute lookup, and numeric
tower — consumes this package through a narrow surface. To start, use
NewRuntime to build a Runtime, then use its constructors (NewStr, NewInt,
NewList, and so on) to create values and Call to dispatch an operation by its
canonical name:

	rt := adder.NewRuntime()
	s := rt.NewStr("hello")
	v, err := rt.Call("upper", s, nil, nil)

Every operation returns a newly constructed value or an error; text values
are never mutated after construction, so they may be freely shared between
any number of holders, including concurrent ones.

Indexing and slicing are not specific to text. The resolution of raw,
possibly negative indices and slice bounds lives in ResolveIndex and
ResolveSlice, and range extraction is written against the Sliceable
capability, which any ordered kind can implement; the List kind implements
it with the same code paths the Str kind uses.

Errors come in four catchable kinds, all plain Go error types usable with
errors.As: TypeError for an operand whose kind does not suit an operation,
IndexError for a failed index resolution, ValueError for a malformed slice
step, and ArityError for a construction call with too many arguments.
*/
package adder
