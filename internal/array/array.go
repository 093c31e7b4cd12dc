package array

// Array is an owning N-dimensional array of rank >= 2 with a single
// row-major buffer. C is the rank N-1 view returned by Index and K its
// read-only counterpart; use the Array2..Array4 aliases rather than
// instantiating Array directly.
//
// The array is the sole owner of its buffer, shape table and stride
// table. Views obtained from it share that storage (no copy-on-index)
// and must not be used after Release.
//
// Example:
//
//	a, _ := array.New3[float64](array.Shape{2, 3, 4})
//	*a.Index(1).Index(2).Index(3) = 99
//	v := a.Const().Index(1).Index(2).Index(3) // 99
type Array[T any, C any, PC binder[T, C], K any, PK binder[T, K]] struct {
	*storage[T]
}

// Array2 through Array4 are the owning arrays of rank 2 to 4.
type (
	Array2[T any] = Array[T, View1[T], *View1[T], ConstView1[T], *ConstView1[T]]
	Array3[T any] = Array[T, View2[T], *View2[T], ConstView2[T], *ConstView2[T]]
	Array4[T any] = Array[T, View3[T], *View3[T], ConstView3[T], *ConstView3[T]]
)

func newArray[T any, C any, PC binder[T, C], K any, PK binder[T, K]](dims Dims, opts []Option) (*Array[T, C, PC, K, PK], error) {
	s, err := newStorage[T](PC(new(C)).rank()+1, dims, opts)
	if err != nil {
		return nil, err
	}
	return &Array[T, C, PC, K, PK]{storage: s}, nil
}

// Rank returns the number of dimensions.
func (*Array[T, C, PC, K, PK]) Rank() int { return PC(new(C)).rank() + 1 }

// Index returns the rank N-1 view at position i of the first dimension.
func (a *Array[T, C, PC, K, PK]) Index(i int) C {
	var c C
	PC(&c).bind(a.root().descend(i))
	return c
}

// At is the checked form of Index.
func (a *Array[T, C, PC, K, PK]) At(i int) (C, error) {
	var c C
	f := a.root()
	if err := f.check(i); err != nil {
		return c, err
	}
	PC(&c).bind(f.descend(i))
	return c, nil
}

// View returns a mutable view of the whole array.
func (a *Array[T, C, PC, K, PK]) View() View[T, C, PC] {
	a.mustLive()
	return View[T, C, PC]{f: a.root()}
}

// Const returns a read-only view of the whole array.
func (a *Array[T, C, PC, K, PK]) Const() ConstView[T, K, PK] {
	a.mustLive()
	return ConstView[T, K, PK]{f: a.root()}
}

// Clone returns a deep copy owning its own storage.
func (a *Array[T, C, PC, K, PK]) Clone() *Array[T, C, PC, K, PK] {
	return &Array[T, C, PC, K, PK]{storage: a.clone()}
}

// Array1 is the owning one-dimensional array. Indexing it yields a
// pointer to the element rather than a view.
type Array1[T any] struct {
	*storage[T]
}

// Rank returns 1.
func (*Array1[T]) Rank() int { return 1 }

// Index returns a pointer to element i.
func (a *Array1[T]) Index(i int) *T {
	return a.root().elem(i)
}

// At is the checked form of Index.
func (a *Array1[T]) At(i int) (*T, error) {
	f := a.root()
	if err := f.check(i); err != nil {
		return nil, err
	}
	return f.elem(i), nil
}

// View returns a mutable view of the whole array.
func (a *Array1[T]) View() View1[T] {
	a.mustLive()
	return View1[T]{f: a.root()}
}

// Const returns a read-only view of the whole array.
func (a *Array1[T]) Const() ConstView1[T] {
	a.mustLive()
	return ConstView1[T]{f: a.root()}
}

// Clone returns a deep copy owning its own storage.
func (a *Array1[T]) Clone() *Array1[T] {
	return &Array1[T]{storage: a.clone()}
}

// New1 creates a one-dimensional array. dims must hold exactly one positive extent.
func New1[T any](dims Dims, opts ...Option) (*Array1[T], error) {
	s, err := newStorage[T](1, dims, opts)
	if err != nil {
		return nil, err
	}
	return &Array1[T]{storage: s}, nil
}

// New2 creates a two-dimensional array.
func New2[T any](dims Dims, opts ...Option) (*Array2[T], error) {
	return newArray[T, View1[T], *View1[T], ConstView1[T], *ConstView1[T]](dims, opts)
}

// New3 creates a three-dimensional array.
func New3[T any](dims Dims, opts ...Option) (*Array3[T], error) {
	return newArray[T, View2[T], *View2[T], ConstView2[T], *ConstView2[T]](dims, opts)
}

// New4 creates a four-dimensional array.
func New4[T any](dims Dims, opts ...Option) (*Array4[T], error) {
	return newArray[T, View3[T], *View3[T], ConstView3[T], *ConstView3[T]](dims, opts)
}

// MustNew1 is like New1 but panics on error.
func MustNew1[T any](dims Dims, opts ...Option) *Array1[T] {
	a, err := New1[T](dims, opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// MustNew2 is like New2 but panics on error.
func MustNew2[T any](dims Dims, opts ...Option) *Array2[T] {
	a, err := New2[T](dims, opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// MustNew3 is like New3 but panics on error.
func MustNew3[T any](dims Dims, opts ...Option) *Array3[T] {
	a, err := New3[T](dims, opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// MustNew4 is like New4 but panics on error.
func MustNew4[T any](dims Dims, opts ...Option) *Array4[T] {
	a, err := New4[T](dims, opts...)
	if err != nil {
		panic(err)
	}
	return a
}
