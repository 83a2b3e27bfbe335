package vector

import (
	"iter"

	"github.com/pkg/errors"
)

// Append moves every element of other onto the end of v, keeping their
// order. other is left empty with its capacity intact. Appending a vector
// to itself panics with ErrInvalidRange.
func (v *Vector[T]) Append(other *Vector[T]) {
	v.mustOwn()
	if other == v {
		panic(errors.Wrap(ErrInvalidRange, "append: vector appended to itself"))
	}
	other.mustOwn()
	n := other.len
	if n == 0 {
		return
	}
	v.buf.reserve(v.len, n)
	src := other.buf.slots()[:n]
	copy(v.buf.slots()[v.len:v.len+n], src)
	v.len += n
	// the elements now belong to v
	clear(src)
	other.len = 0
}

// SplitOff returns a new vector holding [at, Len); v keeps [0, at). The new
// vector's capacity is exactly the tail length.
func (v *Vector[T]) SplitOff(at int) *Vector[T] {
	v.mustOwn()
	if at < 0 || at > v.len {
		panicIndex("split_off", at, v.len)
	}
	n := v.len - at
	other := WithCapacity[T](n)
	tail := v.buf.slots()[at:v.len]
	copy(other.buf.slots()[:n], tail)
	other.len = n
	clear(tail)
	v.len = at
	return other
}

// Extend appends everything it yields. A SizedIterator is written through
// one reservation; anything else grows the buffer as it goes.
func (v *Vector[T]) Extend(it Iterator[T]) {
	v.mustOwn()
	if s, ok := it.(SizedIterator[T]); ok {
		v.extendExact(s)
		return
	}
	v.extendGeneric(it)
}

// ExtendSlice copies s onto the end of v.
func (v *Vector[T]) ExtendSlice(s []T) {
	v.Extend(&sliceIter[T]{s: s})
}

// ExtendSeq appends everything seq yields.
func (v *Vector[T]) ExtendSeq(seq iter.Seq[T]) {
	v.mustOwn()
	for e := range seq {
		v.pushGrow(e)
	}
}

// setLenOnDrop carries the length being built during an exact extend and
// writes it back to the vector however the extend ends.
type setLenOnDrop[T any] struct {
	vec   *Vector[T]
	local int
}

func (g *setLenOnDrop[T]) commit() { g.vec.len = g.local }

func (v *Vector[T]) extendExact(it SizedIterator[T]) {
	n := it.Len()
	v.buf.reserve(v.len, n)
	g := setLenOnDrop[T]{vec: v, local: v.len}
	func() {
		defer g.commit()
		s := v.buf.slots()
		for i := 0; i < n; i++ {
			e, ok := it.Next()
			if !ok {
				return
			}
			s[g.local] = e
			g.local++
		}
	}()
	// an iterator that undercounted is finished the slow way
	v.extendGeneric(it)
}

func (v *Vector[T]) extendGeneric(it Iterator[T]) {
	for {
		e, ok := it.Next()
		if !ok {
			return
		}
		v.pushGrow(e)
	}
}

// pushGrow appends through reserve rather than double, the policy for input
// of unknown length.
func (v *Vector[T]) pushGrow(e T) {
	if v.len == v.buf.capacity() {
		v.buf.reserve(v.len, 1)
	}
	v.buf.slots()[v.len] = e
	v.len++
}

// FromIter collects an iterator into a new vector.
func FromIter[T any](it Iterator[T]) *Vector[T] {
	v := New[T]()
	v.Extend(it)
	return v
}

// Collect collects a push iterator into a new vector.
func Collect[T any](seq iter.Seq[T]) *Vector[T] {
	v := New[T]()
	v.ExtendSeq(seq)
	return v
}
