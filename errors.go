package vector

import (
	"github.com/pkg/errors"
)

// Contract violations are reported by panicking with an error wrapping one
// of these sentinels. They are programmer bugs, never returned.
var (
	ErrIndexOutOfBounds = errors.New("vector: index out of bounds")
	ErrInvalidRange     = errors.New("vector: invalid range")
	ErrCapacityOverflow = errors.New("vector: capacity overflow")
	ErrDrainActive      = errors.New("vector: mutated while a drain is active")
)

func panicIndex(op string, index, length int) {
	panic(errors.Wrapf(ErrIndexOutOfBounds, "%s: index %d, len %d", op, index, length))
}

func panicRange(op string, start, end, length int) {
	panic(errors.Wrapf(ErrInvalidRange, "%s: range [%d, %d), len %d", op, start, end, length))
}

func checkRange(op string, start, end, length int) {
	if start < 0 || start > end || end > length {
		panicRange(op, start, end, length)
	}
}
