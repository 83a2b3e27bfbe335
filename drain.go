package vector

import "iter"

// Drain moves the elements of [start, end) out of a vector. While it is
// open the vector's length is cut to start, so the drained range and the
// tail behind it are reachable only through the cursor, and every mutating
// call on the vector panics with ErrDrainActive.
//
// Close must be called, even after the cursor is exhausted: it drops what
// was not yielded, moves the tail down behind start and restores the length.
type Drain[T any] struct {
	vec       *Vector[T]
	tailStart int
	tailLen   int
	front     int
	back      int
	closed    bool
}

var _ SizedIterator[int] = (*Drain[int])(nil)

// Drain removes [start, end) lazily. It panics with ErrInvalidRange unless
// 0 <= start <= end <= Len.
func (v *Vector[T]) Drain(start, end int) *Drain[T] {
	v.mustOwn()
	checkRange("drain", start, end, v.len)
	d := &Drain[T]{
		vec:       v,
		tailStart: end,
		tailLen:   v.len - end,
		front:     start,
		back:      end,
	}
	v.len = start
	v.draining = true
	return d
}

// Next yields the lowest-index element left in the range.
func (d *Drain[T]) Next() (T, bool) {
	var zero T
	if d.front == d.back {
		return zero, false
	}
	s := d.vec.buf.slots()
	e := s[d.front]
	s[d.front] = zero
	d.front++
	return e, true
}

// NextBack yields the highest-index element left in the range.
func (d *Drain[T]) NextBack() (T, bool) {
	var zero T
	if d.front == d.back {
		return zero, false
	}
	d.back--
	s := d.vec.buf.slots()
	e := s[d.back]
	s[d.back] = zero
	return e, true
}

// Len is the number of elements not yet yielded.
func (d *Drain[T]) Len() int { return d.back - d.front }

// Close drops the elements not yet yielded and closes the gap. Only the
// first call has any effect.
func (d *Drain[T]) Close() {
	if d.closed {
		return
	}
	d.closed = true
	v := d.vec
	s := v.buf.slots()
	if d.back > d.front {
		dropRange(s[d.front:d.back])
	}
	d.front = d.back
	start := v.len
	if d.tailLen > 0 && d.tailStart != start {
		copy(s[start:start+d.tailLen], s[d.tailStart:d.tailStart+d.tailLen])
		// slots vacated by the move must not keep references alive
		clear(s[max(start+d.tailLen, d.tailStart) : d.tailStart+d.tailLen])
	}
	v.len = start + d.tailLen
	v.draining = false
}

// Drop is Close.
func (d *Drain[T]) Drop() { d.Close() }

// All yields front to back and closes the cursor when the loop ends.
func (d *Drain[T]) All() iter.Seq[T] {
	return closingSeq(d.Next, d.Close)
}

// Backward yields back to front and closes the cursor when the loop ends.
func (d *Drain[T]) Backward() iter.Seq[T] {
	return closingSeq(d.NextBack, d.Close)
}
