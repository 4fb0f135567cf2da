package adder

import "fmt"

// A TypeError reports that an operand's kind does not suit the operation it
// was given to. Its message names the operation and the textual forms of
// both operands.
type TypeError struct {
	msg string
}

// NewTypeErrorf creates a TypeError with a formatted message.
func NewTypeErrorf(format string, args ...interface{}) *TypeError {
	return &TypeError{msg: fmt.Sprintf(format, args...)}
}

// Error returns the error message.
func (e *TypeError) Error() string {
	return "type error: " + e.msg
}

// An IndexError reports that index resolution failed because the index falls
// outside the sequence.
type IndexError struct {
	// Index is the raw index as supplied, before normalization.
	Index int64
	// Len is the length of the sequence that was indexed.
	Len int
}

// NewIndexError creates an IndexError for a raw index into a sequence of the
// given length.
func NewIndexError(index int64, length int) *IndexError {
	return &IndexError{Index: index, Len: length}
}

// Error returns the error message.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index error: index %d out of range for length %d", e.Index, e.Len)
}

// A ValueError reports an argument of the right kind but an unusable value,
// such as a zero slice step.
type ValueError struct {
	msg string
}

// NewValueErrorf creates a ValueError with a formatted message.
func NewValueErrorf(format string, args ...interface{}) *ValueError {
	return &ValueError{msg: fmt.Sprintf(format, args...)}
}

// Error returns the error message.
func (e *ValueError) Error() string {
	return "value error: " + e.msg
}

// An ArityError reports a call with the wrong number of arguments.
type ArityError struct {
	// Name is the operation that was called.
	Name string
	// Want and Got are the acceptable and actual argument counts. Want
	// describes the maximum accepted.
	Want, Got int
}

// NewArityError creates an ArityError for the named operation.
func NewArityError(name string, want, got int) *ArityError {
	return &ArityError{Name: name, Want: want, Got: got}
}

// Error returns the error message.
func (e *ArityError) Error() string {
	return fmt.Sprintf("arity error: %s takes at most %d arguments (%d given)", e.Name, e.Want, e.Got)
}
