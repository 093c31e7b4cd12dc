// Package array implements fixed-rank N-dimensional arrays over a single
// contiguous row-major buffer.
//
// An owning array (Array1..Array4) allocates its buffer, shape table and
// stride table once. Index descends one dimension at a time: every step
// computes head + strides[0]*i and returns a view of rank N-1 that shares
// the owner's buffer and the stride table shifted by one entry. At rank 1
// indexing yields the element itself (*T for mutable views, T for
// read-only ones).
//
// The rank is part of the type. View[T, C, PC] is parameterised by its
// rank N-1 child C; View1 and ConstView1 terminate the recursion, so the
// whole chain a.Index(i).Index(j).Index(k) is resolved at compile time.
//
// Index is unchecked unless the array was built WithBoundsCheck(true);
// At is always checked and returns an *IndexError. Views detect use after
// Release or Reshape of their owner and panic with ErrReleased.
//
// Arrays and views are not safe for concurrent use.
package array
