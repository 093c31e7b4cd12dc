// Copyright 2025 The LAS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"log/slog"

	"github.com/cantwellc/LAS/internal/array"
)

// Dims is any shape descriptor exposing a length and indexed extents.
type Dims = array.Dims

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} describes a 3D array with 24 elements.
type Shape = array.Shape

// Option configures array construction.
type Option = array.Option

// Owning arrays.
type (
	Array1[T any] = array.Array1[T]
	Array2[T any] = array.Array2[T]
	Array3[T any] = array.Array3[T]
	Array4[T any] = array.Array4[T]
)

// Mutable views.
type (
	View1[T any] = array.View1[T]
	View2[T any] = array.View2[T]
	View3[T any] = array.View3[T]
	View4[T any] = array.View4[T]
)

// Read-only views.
type (
	ConstView1[T any] = array.ConstView1[T]
	ConstView2[T any] = array.ConstView2[T]
	ConstView3[T any] = array.ConstView3[T]
	ConstView4[T any] = array.ConstView4[T]
)

// Error types.
type (
	RankMismatchError = array.RankMismatchError
	DimensionError    = array.DimensionError
	IndexError        = array.IndexError
)

// Sentinel errors.
var (
	ErrInvalidShape    = array.ErrInvalidShape
	ErrSizeOverflow    = array.ErrSizeOverflow
	ErrIndexOutOfRange = array.ErrIndexOutOfRange
	ErrReleased        = array.ErrReleased
)

// New1 creates a one-dimensional array.
//
// Example:
//
//	v, err := array.New1[float32](array.Shape{5})
func New1[T any](dims Dims, opts ...Option) (*Array1[T], error) {
	return array.New1[T](dims, opts...)
}

// New2 creates a two-dimensional array.
func New2[T any](dims Dims, opts ...Option) (*Array2[T], error) {
	return array.New2[T](dims, opts...)
}

// New3 creates a three-dimensional array.
func New3[T any](dims Dims, opts ...Option) (*Array3[T], error) {
	return array.New3[T](dims, opts...)
}

// New4 creates a four-dimensional array.
func New4[T any](dims Dims, opts ...Option) (*Array4[T], error) {
	return array.New4[T](dims, opts...)
}

// MustNew1 is like New1 but panics on error.
func MustNew1[T any](dims Dims, opts ...Option) *Array1[T] {
	return array.MustNew1[T](dims, opts...)
}

// MustNew2 is like New2 but panics on error.
func MustNew2[T any](dims Dims, opts ...Option) *Array2[T] {
	return array.MustNew2[T](dims, opts...)
}

// MustNew3 is like New3 but panics on error.
func MustNew3[T any](dims Dims, opts ...Option) *Array3[T] {
	return array.MustNew3[T](dims, opts...)
}

// MustNew4 is like New4 but panics on error.
func MustNew4[T any](dims Dims, opts ...Option) *Array4[T] {
	return array.MustNew4[T](dims, opts...)
}

// WithBoundsCheck makes Index validate every index against its axis.
func WithBoundsCheck(enabled bool) Option {
	return array.WithBoundsCheck(enabled)
}

// WithLogger routes allocation and release events to l.
func WithLogger(l *slog.Logger) Option {
	return array.WithLogger(l)
}

// ShapeOf copies any descriptor into a Shape.
func ShapeOf(d Dims) Shape {
	return array.ShapeOf(d)
}

// ParseShape parses a comma separated list of extents such as "2,3,4".
func ParseShape(text string) (Shape, error) {
	return array.ParseShape(text)
}
