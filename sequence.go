package adder

// A Sliceable is an ordered value that can report its length and copy
// contiguous or stepped ranges of itself. Lengths and indices count storage
// units. Implementing this interface is all a kind needs to reuse
// ResolveIndex, ResolveSlice, and ApplySlice; the resolver is written once
// against the capability, not against any concrete kind.
type Sliceable interface {
	// Len returns the number of storage units.
	Len() int
	// CopyRange returns a new value of the same concrete kind holding the
	// units in [start, stop). Requires 0 <= start <= stop <= Len().
	CopyRange(start, stop int) Sliceable
	// CopyStepped returns a new value of the same concrete kind holding the
	// units at start, start+step, ... while less than stop, in order.
	// Requires 0 <= start <= stop <= Len() and step >= 1.
	CopyStepped(start, stop, step int) Sliceable
}

// ResolveIndex normalizes a raw, possibly negative index against a length.
// A negative index counts back from the end of the sequence. If the index
// falls outside the sequence in either direction, the result is an
// IndexError; direct indexing is strict where slicing is forgiving.
func ResolveIndex(length int, raw int64) (int, error) {
	i := raw
	if i < 0 {
		i += int64(length)
	}
	if i < 0 || i >= int64(length) {
		return 0, NewIndexError(raw, length)
	}
	return int(i), nil
}

// ResolveSlice normalizes a slice descriptor against a length. An absent
// start defaults to 0, an absent stop to the length, and an absent step to
// 1. Negative bounds are interpreted relative to the length and then
// clamped into [0, length]; out-of-range slice bounds clamp rather than
// error. After resolution, 0 <= start <= stop <= length and step >= 1.
//
// A zero step is a ValueError. Only positive steps are supported; a
// negative step is a ValueError as well, so the unsupported case cannot
// pass through silently.
func ResolveSlice(length int, desc SliceValue) (start, stop, step int, err error) {
	step = 1
	if desc.Step != nil {
		if *desc.Step == 0 {
			return 0, 0, 0, NewValueErrorf("slice step cannot be zero")
		}
		if *desc.Step < 0 {
			return 0, 0, 0, NewValueErrorf("negative slice step is not supported")
		}
		step = int(*desc.Step)
	}
	start = 0
	if desc.Start != nil {
		start = fixSliceIndex(*desc.Start, length)
	}
	stop = length
	if desc.Stop != nil {
		stop = fixSliceIndex(*desc.Stop, length)
	}
	if stop < start {
		stop = start
	}
	return start, stop, step, nil
}

// fixSliceIndex clamps a slice bound into [0, size], counting negative
// bounds back from the end.
func fixSliceIndex(k int64, size int) int {
	if k < 0 {
		k += int64(size)
		if k < 0 {
			return 0
		}
	} else if k > int64(size) {
		return size
	}
	return int(k)
}

// ApplySlice resolves a descriptor against a sequence and extracts the
// requested copy. The result has the same concrete kind as s.
func ApplySlice(s Sliceable, desc SliceValue) (Sliceable, error) {
	start, stop, step, err := ResolveSlice(s.Len(), desc)
	if err != nil {
		return nil, err
	}
	if step == 1 {
		return s.CopyRange(start, stop), nil
	}
	return s.CopyStepped(start, stop, step), nil
}

// StrRange adapts text content to the Sliceable capability. Its storage
// units are bytes.
type StrRange string

// Len returns the number of bytes.
func (s StrRange) Len() int { return len(s) }

// CopyRange returns the bytes in [start, stop).
func (s StrRange) CopyRange(start, stop int) Sliceable {
	return s[start:stop]
}

// CopyStepped returns every step-th byte in [start, stop).
func (s StrRange) CopyStepped(start, stop, step int) Sliceable {
	b := make([]byte, 0, (stop-start+step-1)/step)
	for i := start; i < stop; i += step {
		b = append(b, s[i])
	}
	return StrRange(b)
}

// ListRange adapts list elements to the Sliceable capability. Its storage
// units are elements.
type ListRange []*Object

// Len returns the number of elements.
func (l ListRange) Len() int { return len(l) }

// CopyRange returns a copy of the elements in [start, stop).
func (l ListRange) CopyRange(start, stop int) Sliceable {
	return ListRange(append([]*Object{}, l[start:stop]...))
}

// CopyStepped returns a copy of every step-th element in [start, stop).
func (l ListRange) CopyStepped(start, stop, step int) Sliceable {
	out := make(ListRange, 0, (stop-start+step-1)/step)
	for i := start; i < stop; i += step {
		out = append(out, l[i])
	}
	return out
}
