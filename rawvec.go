package vector

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// zstAnchor gives zero-sized element types an address to hang slot views
// on without allocating.
var zstAnchor struct{}

func zeroSized[T any]() bool {
	var z T
	return unsafe.Sizeof(z) == 0
}

// rawVec owns the storage behind a Vector: a base pointer and the number of
// T-sized slots it spans. It knows nothing about which slots are live.
//
// cap == 0 implies ptr == nil: there is nothing to release.
type rawVec[T any] struct {
	ptr *T
	cap int
}

func rawWithCapacity[T any](n int) rawVec[T] {
	if n < 0 {
		panic(errors.Wrapf(ErrCapacityOverflow, "negative capacity %d", n))
	}
	var r rawVec[T]
	if n > 0 && !zeroSized[T]() {
		r.ptr, r.cap = allocate[T](n), n
	}
	return r
}

func rawFromParts[T any](ptr *T, capacity int) rawVec[T] {
	if ptr == nil || capacity <= 0 || zeroSized[T]() {
		return rawVec[T]{}
	}
	return rawVec[T]{ptr: ptr, cap: capacity}
}

func allocate[T any](n int) *T {
	return unsafe.SliceData(make([]T, n))
}

// capacity reports the slot count. Zero-sized types never need storage, so
// their capacity is unbounded.
func (r *rawVec[T]) capacity() int {
	if zeroSized[T]() {
		return math.MaxInt
	}
	return r.cap
}

// slots is the full [0, cap) view of the allocation.
func (r *rawVec[T]) slots() []T {
	if zeroSized[T]() {
		return unsafe.Slice((*T)(unsafe.Pointer(&zstAnchor)), math.MaxInt)
	}
	if r.ptr == nil {
		return nil
	}
	return unsafe.Slice(r.ptr, r.cap)
}

// reserve guarantees room for used+additional slots, at least doubling the
// allocation whenever it has to grow.
func (r *rawVec[T]) reserve(used, additional int) {
	required := requiredCap(used, additional)
	if required <= r.capacity() {
		return
	}
	r.realloc(used, max(required, 2*r.cap))
}

// reserveExact grows to exactly used+additional slots when that exceeds the
// current capacity.
func (r *rawVec[T]) reserveExact(used, additional int) {
	required := requiredCap(used, additional)
	if required <= r.capacity() {
		return
	}
	r.realloc(used, required)
}

// double unconditionally doubles the capacity; the first growth from empty
// goes straight to 4 slots (1 for elements too large to make 4 sensible).
func (r *rawVec[T]) double() {
	if zeroSized[T]() {
		panic(errors.Wrap(ErrCapacityOverflow, "zero-sized buffer is already unbounded"))
	}
	var newCap int
	switch {
	case r.cap == 0:
		var z T
		newCap = 4
		if unsafe.Sizeof(z) > math.MaxInt/8 {
			newCap = 1
		}
	case r.cap > math.MaxInt/2:
		panic(errors.Wrapf(ErrCapacityOverflow, "cannot double %d", r.cap))
	default:
		newCap = 2 * r.cap
	}
	r.realloc(r.cap, newCap)
}

// shrinkToFit reallocates down to exactly used slots.
func (r *rawVec[T]) shrinkToFit(used int) {
	if zeroSized[T]() || r.cap <= used {
		return
	}
	if used == 0 {
		r.logResize("buffer released", r.cap, 0)
		r.release()
		return
	}
	r.realloc(used, used)
}

// realloc moves the first used slots into a fresh allocation of newCap.
func (r *rawVec[T]) realloc(used, newCap int) {
	if zeroSized[T]() {
		return
	}
	ptr := allocate[T](newCap)
	if r.ptr != nil {
		copy(unsafe.Slice(ptr, newCap), unsafe.Slice(r.ptr, r.cap)[:used])
	}
	r.logResize("buffer resized", r.cap, newCap)
	r.ptr, r.cap = ptr, newCap
}

// release drops the allocation. It is a no-op when nothing was allocated.
func (r *rawVec[T]) release() {
	if r.cap == 0 {
		return
	}
	r.ptr, r.cap = nil, 0
}

func (r *rawVec[T]) logResize(msg string, from, to int) {
	if ce := lg().Check(zap.DebugLevel, msg); ce != nil {
		var z T
		ce.Write(zap.Int("from", from), zap.Int("to", to), zap.Uintptr("elem_size", unsafe.Sizeof(z)))
	}
}

func requiredCap(used, additional int) int {
	if additional < 0 || used > math.MaxInt-additional {
		panic(errors.Wrapf(ErrCapacityOverflow, "len %d + additional %d", used, additional))
	}
	return used + additional
}
