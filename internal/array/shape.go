package array

import (
	"fmt"
	"log/slog"
	"math/bits"
	"strconv"
	"strings"
)

// Dims describes the extent of every dimension of an array.
// Any sequence-like type exposing a length and indexed access can be used
// as a shape descriptor.
type Dims interface {
	Len() int
	At(i int) int
}

// Shape represents the dimensions of an array.
type Shape []int

// Len returns the number of dimensions.
func (s Shape) Len() int { return len(s) }

// At returns the extent of dimension i.
func (s Shape) At(i int) int { return s[i] }

// ShapeOf copies a descriptor into a Shape.
func ShapeOf(d Dims) Shape {
	if s, ok := d.(Shape); ok {
		return s.Clone()
	}
	s := make(Shape, d.Len())
	for i := range s {
		s[i] = d.At(i)
	}
	return s
}

// NumElements returns the total number of elements described by the shape.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is positive and that the element
// count fits in an int.
func (s Shape) Validate() error {
	n := uint(1)
	for i, dim := range s {
		if dim <= 0 {
			return &DimensionError{Axis: i, Extent: dim}
		}
		hi, lo := bits.Mul(n, uint(dim))
		if hi != 0 || lo > uint(maxInt) {
			return fmt.Errorf("shape %v: %w", s, ErrSizeOverflow)
		}
		n = lo
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides calculates the row-major stride table for the shape.
// The table has len(s)-1 entries: strides[k] is the product of all
// dimensions after k. The last dimension always has an implicit stride
// of 1 which is not stored.
func (s Shape) Strides() []int {
	if len(s) < 2 {
		return []int{}
	}
	strides := make([]int, len(s)-1)
	n := 1
	for i := len(s) - 1; i > 0; i-- {
		n *= s[i]
		strides[i-1] = n
	}
	return strides
}

// String formats the shape as (d0, d1, ...).
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(d)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// LogValue implements slog.LogValuer.
func (s Shape) LogValue() slog.Value {
	return slog.StringValue(s.String())
}

// ParseShape parses a comma separated list of extents such as "2,3,4".
func ParseShape(text string) (Shape, error) {
	fields := strings.Split(text, ",")
	s := make(Shape, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		d, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parse shape %q: %w", text, err)
		}
		s = append(s, d)
	}
	if len(s) == 0 {
		return nil, fmt.Errorf("parse shape %q: %w", text, ErrInvalidShape)
	}
	return s, nil
}

const maxInt = int(^uint(0) >> 1)
