// Copyright 2025 The LAS Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides fixed-rank N-dimensional arrays for the LAS
// linear algebra library.
//
// # Overview
//
// An array owns one contiguous row-major buffer together with its shape
// and stride tables. Indexing descends one dimension per call and returns
// a lower-rank view that aliases the same buffer:
//
//	a, err := array.New3[float64](array.Shape{2, 3, 4})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plane := a.Index(1)            // View2[float64], shape (3, 4)
//	row := plane.Index(2)          // View1[float64], shape (4)
//	*row.Index(3) = 99             // element at linear offset 1*12 + 2*4 + 3 = 23
//
//	fmt.Println(a.Data()[23])      // 99
//
// # Ranks
//
// The rank is part of the type: Array1..Array4 own storage, View1..View4
// are mutable views and ConstView1..ConstView4 are read-only views. Rank
// one indexing yields *T on mutable paths and T on read-only ones, so
// assignment through a ConstView does not compile.
//
// # Bounds
//
// Index trusts the caller by default. Construct with WithBoundsCheck(true)
// to make Index panic on out-of-range indices, or use At, which always
// returns an *IndexError.
//
// # Lifetime
//
// Views borrow the owner's storage. After Release (or Reshape) every
// previously derived view panics with ErrReleased on its next access.
package array
