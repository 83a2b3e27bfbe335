package vector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	var log []int
	v := Of(trackedRange(&log, 5)...)
	v.Truncate(5)
	require.Equal(t, 5, v.Len())
	require.Empty(t, log)

	v.Truncate(9)
	require.Equal(t, 5, v.Len())

	v.Truncate(2)
	require.Equal(t, 2, v.Len())
	require.Equal(t, []int{4, 3, 2}, log, "dropped from the highest index down")
	require.Equal(t, 5, v.Capacity())

	requirePanicErr(t, ErrIndexOutOfBounds, func() { v.Truncate(-1) })
}

func TestClear(t *testing.T) {
	v := Of(1, 2, 3)
	v.Clear()
	require.True(t, v.IsEmpty())
	require.Equal(t, 3, v.Capacity())
}

func TestRetain(t *testing.T) {
	var log []int
	v := Of(trackedRange(&log, 6)...)
	v.Retain(func(e tracked) bool { return e.id%2 == 0 })
	require.Equal(t, []int{0, 2, 4}, ids(v.AsSlice()))
	require.Equal(t, []int{5, 1, 3}, log, "rejected elements are dropped by the trailing truncate")
}

func TestRetainAll(t *testing.T) {
	v := Of(3, 1, 2)
	v.Retain(func(int) bool { return true })
	require.Equal(t, []int{3, 1, 2}, v.AsSlice())
	require.Equal(t, 3, v.Len())

	v.Retain(func(int) bool { return false })
	require.True(t, v.IsEmpty())
}

func TestInsert(t *testing.T) {
	v := New[int]()
	v.Insert(0, 2)
	v.Insert(0, 0)
	v.Insert(1, 1)
	v.Insert(3, 3)
	require.Equal(t, []int{0, 1, 2, 3}, v.AsSlice())
	require.Equal(t, 4, v.Capacity())

	v.Insert(2, 9)
	require.Equal(t, []int{0, 1, 9, 2, 3}, v.AsSlice())
	require.Equal(t, 8, v.Capacity())

	requirePanicErr(t, ErrIndexOutOfBounds, func() { v.Insert(6, 0) })
	requirePanicErr(t, ErrIndexOutOfBounds, func() { v.Insert(-1, 0) })
	require.Equal(t, 5, v.Len())
}

func TestRemove(t *testing.T) {
	v := Of(0, 1, 2, 3, 4)
	require.Equal(t, 2, v.Remove(2))
	require.Equal(t, []int{0, 1, 3, 4}, v.AsSlice())
	require.Equal(t, 4, v.Remove(3))
	require.Equal(t, 0, v.Remove(0))
	require.Equal(t, []int{1, 3}, v.AsSlice())

	requirePanicErr(t, ErrIndexOutOfBounds, func() { v.Remove(2) })
	requirePanicErr(t, ErrIndexOutOfBounds, func() { New[int]().Remove(0) })
}

func TestSwapRemove(t *testing.T) {
	v := Of(0, 1, 2, 3)
	require.Equal(t, 1, v.SwapRemove(1))
	require.Equal(t, []int{0, 3, 2}, v.AsSlice())
	require.Equal(t, 2, v.SwapRemove(2))
	require.Equal(t, []int{0, 3}, v.AsSlice())
	requirePanicErr(t, ErrIndexOutOfBounds, func() { v.SwapRemove(2) })
}

func TestIndexing(t *testing.T) {
	v := Of(10, 20, 30)
	require.Equal(t, 20, v.At(1))
	*v.Ptr(1) = 21
	require.Equal(t, 21, v.At(1))
	v.Set(2, 31)
	require.Equal(t, []int{10, 21, 31}, v.AsSlice())

	_, ok := v.Get(3)
	require.False(t, ok)
	_, ok = v.Get(-1)
	require.False(t, ok)

	requirePanicErr(t, ErrIndexOutOfBounds, func() { v.At(3) })
	requirePanicErr(t, ErrIndexOutOfBounds, func() { v.Ptr(-1) })
	requirePanicErr(t, ErrIndexOutOfBounds, func() { v.Set(3, 0) })
}

func TestSetDropsPrevious(t *testing.T) {
	var log []int
	v := Of(trackedRange(&log, 2)...)
	v.Set(0, tracked{id: 7, log: &log})
	require.Equal(t, []int{0}, log)
	require.Equal(t, 7, v.At(0).id)
}

func TestSlice(t *testing.T) {
	v := Of(0, 1, 2, 3, 4)
	require.Equal(t, []int{1, 2}, v.Slice(1, 3))
	require.Empty(t, v.Slice(5, 5))
	require.Equal(t, v.AsSlice(), v.Slice(0, 5))

	s := v.Slice(0, 2)
	s[0] = 100
	require.Equal(t, 100, v.At(0), "slices share storage")
	require.Equal(t, 2, cap(s), "slices cannot reach past their end")

	requirePanicErr(t, ErrInvalidRange, func() { v.Slice(3, 2) })
	requirePanicErr(t, ErrInvalidRange, func() { v.Slice(0, 6) })
	requirePanicErr(t, ErrInvalidRange, func() { v.Slice(-1, 2) })
}
