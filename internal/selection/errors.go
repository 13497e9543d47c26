package selection

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when an index falls outside the list bounds
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrLengthMismatch is returned when values and flags differ in length
	ErrLengthMismatch = errors.New("values and flags differ in length")
	// ErrUnknownMode is returned by ParseMode for unrecognised input
	ErrUnknownMode = errors.New("unknown selection mode")
)

// IndexError describes an out-of-range index
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d, length %d", ErrIndexOutOfRange, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// LengthError describes mismatched construction input
type LengthError struct {
	Values int
	Flags  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: %d values, %d flags", ErrLengthMismatch, e.Values, e.Flags)
}

func (e *LengthError) Unwrap() error { return ErrLengthMismatch }
