package vector

import "github.com/rawbytedev/vector/internal/common"

// Cloner lets element types control how Repeat and Clone duplicate them.
// Without it elements are copied by assignment.
type Cloner[T any] interface {
	Clone() T
}

func cloneElem[T any](e T) T {
	if c, ok := any(e).(Cloner[T]); ok {
		return c.Clone()
	}
	return e
}

// Of builds a vector holding elems in order with capacity exactly
// len(elems), the same vector WithCapacity followed by pushing each element
// produces.
func Of[T any](elems ...T) *Vector[T] {
	v := WithCapacity[T](len(elems))
	copy(v.buf.slots(), elems)
	v.len = len(elems)
	return v
}

// Repeat builds a vector of n copies of elem. The last slot takes elem
// itself; the others receive clones.
func Repeat[T any](elem T, n int) *Vector[T] {
	if n < 0 {
		panicIndex("repeat", n, 0)
	}
	v := WithCapacity[T](n)
	if n == 0 {
		if needsDrop[T]() {
			dropInPlace(&elem)
		}
		return v
	}
	s := v.buf.slots()
	for i := 0; i < n-1; i++ {
		s[i] = cloneElem(elem)
	}
	s[n-1] = elem
	v.len = n
	return v
}

// FromSlice copies s into fresh storage whose capacity is len(s) rounded up
// to a power of two.
func FromSlice[T any](s []T) *Vector[T] {
	v := WithCapacity[T](common.NextPowerOfTwo(len(s)))
	copy(v.buf.slots(), s)
	v.len = len(s)
	return v
}
