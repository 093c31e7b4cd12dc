// Copyright 2025 The LAS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg names the one- and two-dimensional arrays used by linear
// algebra routines. It adds no behaviour to package array.
//
// Example:
//
//	m, _ := linalg.NewMatrix[float64](3, 4)
//	*m.Index(2).Index(1) = 1
//	fmt.Println(linalg.Rows(m), linalg.Cols(m)) // 3 4
package linalg

import "github.com/cantwellc/LAS/array"

// Vector is a one-dimensional array.
type Vector[T any] = array.Array1[T]

// Matrix is a two-dimensional row-major array; Index selects a row.
type Matrix[T any] = array.Array2[T]

// NewVector creates a vector of n elements.
func NewVector[T any](n int, opts ...array.Option) (*Vector[T], error) {
	return array.New1[T](array.Shape{n}, opts...)
}

// NewMatrix creates a rows×cols matrix.
func NewMatrix[T any](rows, cols int, opts ...array.Option) (*Matrix[T], error) {
	return array.New2[T](array.Shape{rows, cols}, opts...)
}

// Rows returns the number of rows of m.
func Rows[T any](m *Matrix[T]) int { return m.Dim(0) }

// Cols returns the number of columns of m.
func Cols[T any](m *Matrix[T]) int { return m.Dim(1) }
