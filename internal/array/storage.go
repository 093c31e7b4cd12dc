package array

import (
	"fmt"
	"log/slog"
)

// storage owns the buffer, shape table and stride table of an array.
// All three share one lifetime and are dropped together by Release.
type storage[T any] struct {
	data     []T
	shape    Shape
	strides  []int
	size     int
	epoch    uint64
	released bool
	checked  bool
	logger   *slog.Logger
}

func newStorage[T any](rank int, dims Dims, opts []Option) (*storage[T], error) {
	got := 0
	if dims != nil {
		got = dims.Len()
	}
	if got != rank {
		return nil, &RankMismatchError{Want: rank, Got: got}
	}

	shape := ShapeOf(dims)
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("new array: %w", err)
	}

	o := applyOptions(opts)
	size := shape.NumElements()
	s := &storage[T]{
		data:    make([]T, size),
		shape:   shape,
		strides: shape.Strides(),
		size:    size,
		checked: o.boundsCheck,
		logger:  o.logger,
	}
	s.logger.Debug("array allocated", "rank", rank, "shape", shape, "size", size, "bounds_check", s.checked)
	return s, nil
}

// root returns the frame spanning the whole buffer.
func (s *storage[T]) root() frame[T] {
	return frame[T]{
		data:    s.data,
		strides: s.strides,
		shape:   s.shape,
		owner:   s,
		epoch:   s.epoch,
	}
}

func (s *storage[T]) live() error {
	if s.released {
		return ErrReleased
	}
	return nil
}

func (s *storage[T]) mustLive() {
	if s.released {
		panic(ErrReleased)
	}
}

// Data returns the contiguous row-major buffer.
//
// WARNING: the slice aliases the array. It is nil after Release.
func (s *storage[T]) Data() []T {
	return s.data
}

// Size returns the total number of elements.
func (s *storage[T]) Size() int {
	return s.size
}

// Dim returns the extent of dimension d.
func (s *storage[T]) Dim(d int) int {
	s.mustLive()
	return s.shape[d]
}

// Shape returns a copy of the shape table.
func (s *storage[T]) Shape() Shape {
	s.mustLive()
	return s.shape.Clone()
}

// Strides returns a copy of the stride table (rank-1 entries).
func (s *storage[T]) Strides() []int {
	s.mustLive()
	return append([]int{}, s.strides...)
}

// Offset returns the linear buffer offset of a full multi-index.
func (s *storage[T]) Offset(idx ...int) (int, error) {
	if err := s.live(); err != nil {
		return 0, err
	}
	if len(idx) != len(s.shape) {
		return 0, &RankMismatchError{Want: len(s.shape), Got: len(idx)}
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= s.shape[k] {
			return 0, &IndexError{Axis: k, Index: i, Extent: s.shape[k]}
		}
		if k < len(s.strides) {
			off += i * s.strides[k]
		} else {
			off += i
		}
	}
	return off, nil
}

// Fill sets every element to v.
func (s *storage[T]) Fill(v T) {
	s.mustLive()
	for i := range s.data {
		s.data[i] = v
	}
}

// Reshape reinterprets the buffer with a new shape of the same rank and
// element count. Views taken before the call are invalidated.
func (s *storage[T]) Reshape(dims Dims) error {
	if err := s.live(); err != nil {
		return err
	}
	if dims == nil || dims.Len() != len(s.shape) {
		got := 0
		if dims != nil {
			got = dims.Len()
		}
		return &RankMismatchError{Want: len(s.shape), Got: got}
	}
	shape := ShapeOf(dims)
	if err := shape.Validate(); err != nil {
		return fmt.Errorf("reshape: %w", err)
	}
	if shape.NumElements() != s.size {
		return fmt.Errorf("reshape %v to %v: element count %d != %d: %w",
			s.shape, shape, shape.NumElements(), s.size, ErrInvalidShape)
	}

	s.shape = shape
	s.strides = shape.Strides()
	s.epoch++
	s.logger.Debug("array reshaped", "shape", shape, "epoch", s.epoch)
	return nil
}

// Release drops the buffer, the shape table and the stride table.
// Every view derived from the array panics with ErrReleased on its next
// access. Calling Release more than once is a no-op.
func (s *storage[T]) Release() {
	if s.released {
		return
	}
	s.logger.Debug("array released", "rank", len(s.shape), "shape", s.shape, "size", s.size)
	s.data = nil
	s.shape = nil
	s.strides = nil
	s.size = 0
	s.released = true
	s.epoch++
}

// Released reports whether Release has been called.
func (s *storage[T]) Released() bool {
	return s.released
}

// clone deep-copies the storage into a new owner.
func (s *storage[T]) clone() *storage[T] {
	s.mustLive()
	c := &storage[T]{
		data:    append([]T(nil), s.data...),
		shape:   s.shape.Clone(),
		strides: append([]int{}, s.strides...),
		size:    s.size,
		checked: s.checked,
		logger:  s.logger,
	}
	c.logger.Debug("array cloned", "shape", c.shape, "size", c.size)
	return c
}
