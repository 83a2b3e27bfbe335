package vector

import "iter"

// IntoIter owns a vector's whole buffer and yields its elements by value.
// Elements in [front, back) are still owned by the cursor; Close drops them
// and releases the buffer.
type IntoIter[T any] struct {
	buf   rawVec[T]
	front int
	back  int
}

var _ SizedIterator[int] = (*IntoIter[int])(nil)

// IntoIter moves every element and the buffer into a cursor. v is left
// empty and may be reused.
func (v *Vector[T]) IntoIter() *IntoIter[T] {
	v.mustOwn()
	it := &IntoIter[T]{buf: v.buf, back: v.len}
	v.buf, v.len = rawVec[T]{}, 0
	return it
}

// Next yields the lowest-index element left.
func (it *IntoIter[T]) Next() (T, bool) {
	var zero T
	if it.front == it.back {
		return zero, false
	}
	if zeroSized[T]() {
		it.front++
		return zero, true
	}
	s := it.buf.slots()
	e := s[it.front]
	s[it.front] = zero
	it.front++
	return e, true
}

// NextBack yields the highest-index element left.
func (it *IntoIter[T]) NextBack() (T, bool) {
	var zero T
	if it.front == it.back {
		return zero, false
	}
	it.back--
	if zeroSized[T]() {
		return zero, true
	}
	s := it.buf.slots()
	e := s[it.back]
	s[it.back] = zero
	return e, true
}

// Len is the number of elements not yet yielded.
func (it *IntoIter[T]) Len() int { return it.back - it.front }

// AsSlice views the elements not yet yielded.
func (it *IntoIter[T]) AsSlice() []T {
	if it.front == it.back {
		return nil
	}
	return it.buf.slots()[it.front:it.back:it.back]
}

// Close drops the elements not yet yielded and releases the buffer. It is
// safe to call more than once.
func (it *IntoIter[T]) Close() {
	if it.back > it.front {
		dropRange(it.buf.slots()[it.front:it.back])
	}
	it.front, it.back = 0, 0
	it.buf.release()
}

// Drop is Close, so a cursor stored in a vector is disposed with it.
func (it *IntoIter[T]) Drop() { it.Close() }

// All yields front to back and closes the cursor when the loop ends.
func (it *IntoIter[T]) All() iter.Seq[T] {
	return closingSeq(it.Next, it.Close)
}

// Backward yields back to front and closes the cursor when the loop ends.
func (it *IntoIter[T]) Backward() iter.Seq[T] {
	return closingSeq(it.NextBack, it.Close)
}
