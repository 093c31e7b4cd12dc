package array

// frame locates a sub-array inside its owner's buffer.
//
// It is the whole state of a view: the owner's buffer, the offset of the
// view's first element, and the stride and shape sub-tables that remain
// after the indices applied so far. All slices are borrowed from the
// owning storage and are never copied or written through here.
type frame[T any] struct {
	data    []T
	head    int
	strides []int
	shape   Shape
	owner   *storage[T]
	epoch   uint64
}

// live reports whether the owner still backs this frame.
func (f frame[T]) live() error {
	if f.owner == nil || f.owner.released || f.owner.epoch != f.epoch {
		return ErrReleased
	}
	return nil
}

func (f frame[T]) mustLive() {
	if err := f.live(); err != nil {
		panic(err)
	}
}

// axis returns the owner dimension addressed by this frame's first index.
func (f frame[T]) axis() int {
	return len(f.owner.shape) - len(f.shape)
}

// check validates i against the extent of the frame's leading dimension.
func (f frame[T]) check(i int) error {
	if err := f.live(); err != nil {
		return err
	}
	if i < 0 || i >= f.shape[0] {
		return &IndexError{Axis: f.axis(), Index: i, Extent: f.shape[0]}
	}
	return nil
}

func (f frame[T]) guard(i int) {
	var err error
	if f.owner != nil && f.owner.checked {
		err = f.check(i)
	} else {
		err = f.live()
	}
	if err != nil {
		panic(err)
	}
}

// descend applies one index to a frame of rank > 1 and returns the frame
// of the rank N-1 sub-array it selects.
func (f frame[T]) descend(i int) frame[T] {
	f.guard(i)
	f.head += f.strides[0] * i
	f.strides = f.strides[1:]
	f.shape = f.shape[1:]
	return f
}

// elem applies the last index of a rank-1 frame.
func (f frame[T]) elem(i int) *T {
	f.guard(i)
	return &f.data[f.head+i]
}

// size returns the number of elements spanned by the frame.
func (f frame[T]) size() int {
	n := 1
	for _, d := range f.shape {
		n *= d
	}
	return n
}

// flat returns the frame's contiguous block of the owner's buffer.
func (f frame[T]) flat() []T {
	f.mustLive()
	end := f.head + f.size()
	return f.data[f.head:end:end]
}
