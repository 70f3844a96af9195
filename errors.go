package cursor

import (
	"errors"
	"fmt"
)

// ErrNotBuffer is returned by From when the passed value is not backed by bytes
var ErrNotBuffer = errors.New("cursor: value is not a byte buffer")

// RangeError is returned when an absolute position falls outside [0, Length],
// i.e. the caller asked to stand somewhere the buffer does not reach
type RangeError struct {
	Position int // the requested position
	Length   int // the buffer's total length
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("cursor: position %v out of range [0, %v]", e.Position, e.Length)
}

// OverflowError is returned when an access needs more bytes than remain
// between the current position and the end of the buffer
type OverflowError struct {
	Length   int // the buffer's total length
	Position int // the position at the time of failure
	Size     int // the requested access size in bytes
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("cursor: cannot access %v bytes at position %v of a %v byte buffer", e.Size, e.Position, e.Length)
}
