package vector

import "iter"

// At returns the element at index i, panicking with ErrIndexOutOfBounds when
// i is not in [0, Len).
func (v *Vector[T]) At(i int) T {
	return *v.Ptr(i)
}

// Get is At without the panic.
func (v *Vector[T]) Get(i int) (T, bool) {
	if i < 0 || i >= v.len {
		var zero T
		return zero, false
	}
	return v.buf.slots()[i], true
}

// Ptr returns a pointer to the element at index i. It stays valid until the
// next call that may reallocate or shift elements.
func (v *Vector[T]) Ptr(i int) *T {
	if i < 0 || i >= v.len {
		panicIndex("index", i, v.len)
	}
	return &v.buf.slots()[i]
}

// Set overwrites the element at index i. The previous value is dropped.
func (v *Vector[T]) Set(i int, elem T) {
	p := v.Ptr(i)
	if needsDrop[T]() {
		dropInPlace(p)
	}
	*p = elem
}

// Slice is a view of [start, end) sharing v's storage.
func (v *Vector[T]) Slice(start, end int) []T {
	checkRange("slice", start, end, v.len)
	return v.AsSlice()[start:end:end]
}

// All iterates index/element pairs in ascending order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.len; i++ {
			if !yield(i, v.buf.slots()[i]) {
				return
			}
		}
	}
}

// Values iterates the elements in ascending order without taking them.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.len; i++ {
			if !yield(v.buf.slots()[i]) {
				return
			}
		}
	}
}
