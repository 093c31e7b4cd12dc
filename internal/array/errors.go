package array

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape is returned when a shape descriptor cannot describe an array.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrSizeOverflow is returned when the element count of a shape does not fit in an int.
	ErrSizeOverflow = errors.New("element count overflows int")

	// ErrIndexOutOfRange is returned by checked accessors for indices outside [0, extent).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrReleased is raised when a view is used after its owning array was released.
	ErrReleased = errors.New("array released")
)

// RankMismatchError indicates a shape descriptor whose length differs
// from the rank of the array type being constructed.
type RankMismatchError struct {
	Want int
	Got  int
}

func (e *RankMismatchError) Error() string {
	return fmt.Sprintf("rank mismatch: array has %d dimensions, descriptor has %d", e.Want, e.Got)
}

func (e *RankMismatchError) Unwrap() error { return ErrInvalidShape }

// DimensionError indicates a non-positive extent in a shape descriptor.
type DimensionError struct {
	Axis   int
	Extent int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("invalid dimension at index %d: %d (must be > 0)", e.Axis, e.Extent)
}

func (e *DimensionError) Unwrap() error { return ErrInvalidShape }

// IndexError reports an index outside the extent of one axis.
type IndexError struct {
	Axis   int
	Index  int
	Extent int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", e.Index, e.Axis, e.Extent)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }
