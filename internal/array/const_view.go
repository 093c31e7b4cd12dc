package array

// ConstView is the read-only counterpart of View. Indexing it only yields
// further ConstViews and, at rank 1, element values, so nothing reachable
// from a ConstView can be assigned to.
type ConstView[T any, C any, PC binder[T, C]] struct {
	f frame[T]
}

// ConstView2 through ConstView4 are the read-only views of rank 2 to 4.
type (
	ConstView2[T any] = ConstView[T, ConstView1[T], *ConstView1[T]]
	ConstView3[T any] = ConstView[T, ConstView2[T], *ConstView2[T]]
	ConstView4[T any] = ConstView[T, ConstView3[T], *ConstView3[T]]
)

func (v *ConstView[T, C, PC]) bind(f frame[T]) { v.f = f }

func (*ConstView[T, C, PC]) rank() int { return PC(new(C)).rank() + 1 }

// Index returns the read-only rank N-1 sub-view at position i.
func (v ConstView[T, C, PC]) Index(i int) C {
	var c C
	PC(&c).bind(v.f.descend(i))
	return c
}

// At is the checked form of Index.
func (v ConstView[T, C, PC]) At(i int) (C, error) {
	var c C
	if err := v.f.check(i); err != nil {
		return c, err
	}
	PC(&c).bind(v.f.descend(i))
	return c, nil
}

// Rank returns the number of dimensions of the view.
func (ConstView[T, C, PC]) Rank() int { return PC(new(C)).rank() + 1 }

// Len returns the extent of the leading dimension.
func (v ConstView[T, C, PC]) Len() int {
	v.f.mustLive()
	return v.f.shape[0]
}

// Shape returns a copy of the remaining shape.
func (v ConstView[T, C, PC]) Shape() Shape {
	v.f.mustLive()
	return v.f.shape.Clone()
}

// Size returns the number of elements spanned by the view.
func (v ConstView[T, C, PC]) Size() int {
	v.f.mustLive()
	return v.f.size()
}

// Offset returns the position of the view's first element in the owner's buffer.
func (v ConstView[T, C, PC]) Offset() int { return v.f.head }

// Valid reports whether the owning array still backs the view.
func (v ConstView[T, C, PC]) Valid() bool { return v.f.live() == nil }

// Values returns a copy of the view's elements in row-major order.
func (v ConstView[T, C, PC]) Values() []T {
	return append([]T(nil), v.f.flat()...)
}

// ConstView1 is the terminal read-only view: indexing it yields element values.
type ConstView1[T any] struct {
	f frame[T]
}

func (v *ConstView1[T]) bind(f frame[T]) { v.f = f }

func (*ConstView1[T]) rank() int { return 1 }

// Index returns the value of element i.
func (v ConstView1[T]) Index(i int) T { return *v.f.elem(i) }

// At is the checked form of Index.
func (v ConstView1[T]) At(i int) (T, error) {
	if err := v.f.check(i); err != nil {
		var zero T
		return zero, err
	}
	return *v.f.elem(i), nil
}

// Rank returns 1.
func (ConstView1[T]) Rank() int { return 1 }

// Len returns the number of elements.
func (v ConstView1[T]) Len() int {
	v.f.mustLive()
	return v.f.shape[0]
}

// Shape returns a copy of the remaining shape.
func (v ConstView1[T]) Shape() Shape {
	v.f.mustLive()
	return v.f.shape.Clone()
}

// Size returns the number of elements.
func (v ConstView1[T]) Size() int { return v.Len() }

// Offset returns the position of the view's first element in the owner's buffer.
func (v ConstView1[T]) Offset() int { return v.f.head }

// Valid reports whether the owning array still backs the view.
func (v ConstView1[T]) Valid() bool { return v.f.live() == nil }

// Values returns a copy of the view's elements.
func (v ConstView1[T]) Values() []T {
	return append([]T(nil), v.f.flat()...)
}
