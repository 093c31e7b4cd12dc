package array

// binder is satisfied by pointers to view types. It lets a view of rank N
// build its rank N-1 child without knowing the child's concrete type.
type binder[T any, V any] interface {
	*V
	bind(f frame[T])
	rank() int
}

// View is a mutable, non-owning window of rank N into an array's buffer.
// C is the rank N-1 view produced by Index; View1 terminates the chain.
//
// A View never allocates. It shares the owner's buffer and stride table
// and is only valid while the owning array is neither released nor
// reshaped.
type View[T any, C any, PC binder[T, C]] struct {
	f frame[T]
}

// View2 through View4 are the mutable views of rank 2 to 4.
type (
	View2[T any] = View[T, View1[T], *View1[T]]
	View3[T any] = View[T, View2[T], *View2[T]]
	View4[T any] = View[T, View3[T], *View3[T]]
)

func (v *View[T, C, PC]) bind(f frame[T]) { v.f = f }

func (*View[T, C, PC]) rank() int { return PC(new(C)).rank() + 1 }

// Index returns the rank N-1 sub-view at position i of the leading dimension.
func (v View[T, C, PC]) Index(i int) C {
	var c C
	PC(&c).bind(v.f.descend(i))
	return c
}

// At is the checked form of Index.
func (v View[T, C, PC]) At(i int) (C, error) {
	var c C
	if err := v.f.check(i); err != nil {
		return c, err
	}
	PC(&c).bind(v.f.descend(i))
	return c, nil
}

// Rank returns the number of dimensions of the view.
func (View[T, C, PC]) Rank() int { return PC(new(C)).rank() + 1 }

// Len returns the extent of the leading dimension.
func (v View[T, C, PC]) Len() int {
	v.f.mustLive()
	return v.f.shape[0]
}

// Shape returns a copy of the remaining shape.
func (v View[T, C, PC]) Shape() Shape {
	v.f.mustLive()
	return v.f.shape.Clone()
}

// Size returns the number of elements spanned by the view.
func (v View[T, C, PC]) Size() int {
	v.f.mustLive()
	return v.f.size()
}

// Offset returns the position of the view's first element in the owner's buffer.
func (v View[T, C, PC]) Offset() int { return v.f.head }

// Valid reports whether the owning array still backs the view.
func (v View[T, C, PC]) Valid() bool { return v.f.live() == nil }

// Flat returns the view's elements as a slice aliasing the owner's buffer.
func (v View[T, C, PC]) Flat() []T { return v.f.flat() }

// Fill sets every element of the view to x.
func (v View[T, C, PC]) Fill(x T) {
	for i, s := 0, v.f.flat(); i < len(s); i++ {
		s[i] = x
	}
}

// View1 is the terminal mutable view: indexing it yields a pointer to the
// element itself.
type View1[T any] struct {
	f frame[T]
}

func (v *View1[T]) bind(f frame[T]) { v.f = f }

func (*View1[T]) rank() int { return 1 }

// Index returns a pointer to element i.
func (v View1[T]) Index(i int) *T { return v.f.elem(i) }

// At is the checked form of Index.
func (v View1[T]) At(i int) (*T, error) {
	if err := v.f.check(i); err != nil {
		return nil, err
	}
	return v.f.elem(i), nil
}

// Set stores x at position i.
func (v View1[T]) Set(i int, x T) { *v.f.elem(i) = x }

// Rank returns 1.
func (View1[T]) Rank() int { return 1 }

// Len returns the number of elements.
func (v View1[T]) Len() int {
	v.f.mustLive()
	return v.f.shape[0]
}

// Shape returns a copy of the remaining shape.
func (v View1[T]) Shape() Shape {
	v.f.mustLive()
	return v.f.shape.Clone()
}

// Size returns the number of elements.
func (v View1[T]) Size() int { return v.Len() }

// Offset returns the position of the view's first element in the owner's buffer.
func (v View1[T]) Offset() int { return v.f.head }

// Valid reports whether the owning array still backs the view.
func (v View1[T]) Valid() bool { return v.f.live() == nil }

// Flat returns the view's elements as a slice aliasing the owner's buffer.
func (v View1[T]) Flat() []T { return v.f.flat() }

// Fill sets every element of the view to x.
func (v View1[T]) Fill(x T) {
	for i, s := 0, v.f.flat(); i < len(s); i++ {
		s[i] = x
	}
}
