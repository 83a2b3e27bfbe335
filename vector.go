// Package vector implements Vector, a growable contiguous sequence that
// manages its own backing buffer, element lifetimes and cursors.
//
// Vectors are not safe for concurrent use. A Vector may be handed to another
// goroutine wholesale; it adds no synchronization of its own.
package vector

import (
	"github.com/pkg/errors"
)

// Vector is a growable sequence. Slots [0, Len) hold live values owned by the
// vector; slots [Len, Capacity) are never read or exposed.
//
// The zero value is an empty vector ready to use.
type Vector[T any] struct {
	buf rawVec[T]
	len int

	// set while a Drain holds the hidden range
	draining bool
}

// New returns an empty vector. It does not allocate.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithCapacity returns an empty vector with room for n elements.
func WithCapacity[T any](n int) *Vector[T] {
	return &Vector[T]{buf: rawWithCapacity[T](n)}
}

// FromRawParts builds a vector directly from a base pointer. The caller
// guarantees ptr spans capacity slots of a single Go allocation and that
// [0, length) hold live values; nothing is checked.
func FromRawParts[T any](ptr *T, length, capacity int) *Vector[T] {
	return &Vector[T]{buf: rawFromParts(ptr, capacity), len: length}
}

// IntoRawParts hands the storage to the caller and leaves v empty.
func (v *Vector[T]) IntoRawParts() (ptr *T, length, capacity int) {
	v.mustOwn()
	ptr, length, capacity = v.buf.ptr, v.len, v.buf.capacity()
	v.buf, v.len = rawVec[T]{}, 0
	return ptr, length, capacity
}

// Len is the number of live elements.
func (v *Vector[T]) Len() int { return v.len }

// IsEmpty reports whether Len is zero.
func (v *Vector[T]) IsEmpty() bool { return v.len == 0 }

// Capacity is the number of slots the buffer holds.
func (v *Vector[T]) Capacity() int { return v.buf.capacity() }

// Reserve makes room for at least additional more elements, growing
// geometrically.
func (v *Vector[T]) Reserve(additional int) {
	v.mustOwn()
	v.buf.reserve(v.len, additional)
}

// ReserveExact makes room for exactly additional more elements.
func (v *Vector[T]) ReserveExact(additional int) {
	v.mustOwn()
	v.buf.reserveExact(v.len, additional)
}

// ShrinkToFit drops unused capacity.
func (v *Vector[T]) ShrinkToFit() {
	v.mustOwn()
	v.buf.shrinkToFit(v.len)
}

// IntoSlice shrinks v to its length and returns the storage as a slice;
// v is left empty and no longer owns the elements.
func (v *Vector[T]) IntoSlice() []T {
	v.ShrinkToFit()
	out := v.AsSlice()
	v.buf, v.len = rawVec[T]{}, 0
	return out
}

// AsSlice is a view of the live elements sharing v's storage. It is valid
// until the next call that may reallocate.
func (v *Vector[T]) AsSlice() []T {
	if v.len == 0 {
		return nil
	}
	return v.buf.slots()[:v.len:v.len]
}

// SetLen forces the length. The caller guarantees [0, n) are initialized and
// n does not exceed Capacity; nothing is checked.
func (v *Vector[T]) SetLen(n int) { v.len = n }

// Clear drops every element. Capacity is kept.
func (v *Vector[T]) Clear() { v.Truncate(0) }

// Drop drops every live element in index order, then releases the buffer.
func (v *Vector[T]) Drop() {
	v.mustOwn()
	if v.len > 0 {
		dropRange(v.buf.slots()[:v.len])
	}
	v.len = 0
	v.buf.release()
}

func (v *Vector[T]) mustOwn() {
	if v.draining {
		panic(errors.WithStack(ErrDrainActive))
	}
}
