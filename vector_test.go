package vector

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

const size = 32

func TestVectorLiteral(t *testing.T) {
	v := Of(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11,
		12, 13, 14, 15, 16, 17, 18, 19, 20, 21,
		22, 23, 24, 25, 26, 27, 28, 29, 30, 31)

	for i := 0; i < size; i++ {
		got, ok := v.Get(i)
		require.True(t, ok)
		require.Equal(t, i, got)
	}
	for !v.IsEmpty() {
		v.Pop()
	}
	require.True(t, v.IsEmpty())

	one := Of(1)
	require.Equal(t, 1, one.Len())
}

func TestVectorLiteralMatchesPushes(t *testing.T) {
	lit := Of("a", "b", "c")
	pushed := WithCapacity[string](3)
	for _, s := range []string{"a", "b", "c"} {
		pushed.Push(s)
	}
	require.True(t, Equal(lit, pushed))
	require.Equal(t, pushed.Capacity(), lit.Capacity())
}

func TestVectorPushPop(t *testing.T) {
	v := New[int]()
	require.Zero(t, v.Capacity())
	for i := 0; i < size; i++ {
		v.Push(i)
	}
	for i := 0; i < size; i++ {
		got, ok := v.Get(i)
		require.True(t, ok)
		require.Equal(t, i, got)
	}
	for !v.IsEmpty() {
		v.Pop()
	}
	require.True(t, v.IsEmpty())
	_, ok := v.Pop()
	require.False(t, ok)
}

func TestVectorZeroValue(t *testing.T) {
	var v Vector[string]
	require.True(t, v.IsEmpty())
	require.Nil(t, v.AsSlice())
	v.Push("x")
	require.Equal(t, "x", v.At(0))
}

func TestVectorEqualsFixedSequence(t *testing.T) {
	var arr [size]int
	v := New[int]()
	for i := range arr {
		arr[i] = i
		v.Push(i)
	}
	require.True(t, EqualSlice(v, arr[:]))
	for !v.IsEmpty() {
		v.Pop()
	}
	require.True(t, v.IsEmpty())
	require.True(t, Equal(v, New[int]()))
}

func TestVectorSumOfValues(t *testing.T) {
	v := New[int]()
	for i := 0; i < size; i++ {
		v.Push(i)
	}
	sum := 0
	for e := range v.Values() {
		sum += e
	}
	require.Equal(t, 496, sum)

	for i, e := range v.All() {
		require.Equal(t, i, e)
	}
}

func TestVectorCapacityOps(t *testing.T) {
	v := WithCapacity[int](3)
	require.Equal(t, 3, v.Capacity())
	require.Zero(t, v.Len())

	v.ExtendSlice([]int{1, 2, 3})
	v.Reserve(1)
	require.Equal(t, 6, v.Capacity())
	v.ReserveExact(10)
	require.Equal(t, 13, v.Capacity())
	v.ShrinkToFit()
	require.Equal(t, 3, v.Capacity())
	require.Equal(t, []int{1, 2, 3}, v.AsSlice())
}

func TestVectorRawParts(t *testing.T) {
	v := Of(4, 5, 6)
	v.Reserve(10)
	ptr, n, c := v.IntoRawParts()
	require.True(t, v.IsEmpty())
	require.Zero(t, v.Capacity())
	require.Equal(t, 3, n)

	back := FromRawParts(ptr, n, c)
	require.Equal(t, c, back.Capacity())
	require.Equal(t, []int{4, 5, 6}, back.AsSlice())

	backing := make([]int, 2, 8)
	backing[0], backing[1] = 1, 2
	aliased := FromRawParts(unsafe.SliceData(backing), 2, cap(backing))
	aliased.Push(3)
	require.Equal(t, []int{1, 2, 3}, backing[:3], "no reallocation while capacity lasts")
}

func TestVectorIntoSlice(t *testing.T) {
	v := WithCapacity[int](16)
	v.ExtendSlice([]int{1, 2})
	s := v.IntoSlice()
	require.Equal(t, []int{1, 2}, s)
	require.Equal(t, 2, cap(s))
	require.True(t, v.IsEmpty())
	require.Zero(t, v.Capacity())
}

func TestVectorSetLen(t *testing.T) {
	v := WithCapacity[int](4)
	copy(v.buf.slots(), []int{9, 8, 7})
	v.SetLen(3)
	require.Equal(t, []int{9, 8, 7}, v.AsSlice())
}

func TestVectorDropOrder(t *testing.T) {
	var log []int
	v := Of(trackedRange(&log, 4)...)
	v.Drop()
	require.Equal(t, []int{0, 1, 2, 3}, log)
	require.Zero(t, v.Capacity())
	require.True(t, v.IsEmpty())
}

func TestVectorDropNested(t *testing.T) {
	var log []int
	inner := trackedRange(&log, 3)
	outer := Of(Of(inner[0], inner[1]), Of(inner[2]))
	outer.Drop()
	require.Equal(t, []int{0, 1, 2}, log)
}

func TestVectorDropInterfaceElements(t *testing.T) {
	var log []int
	v := Of[any](tracked{id: 1, log: &log}, "plain", nil, tracked{id: 2, log: &log})
	v.Clear()
	require.Equal(t, []int{2, 1}, log)
}

func TestVectorPopDoesNotDrop(t *testing.T) {
	var log []int
	v := Of(trackedRange(&log, 3)...)
	e, ok := v.Pop()
	require.True(t, ok)
	require.Equal(t, 2, e.id)
	e, _ = v.PopBack()
	require.Equal(t, 0, e.id)
	_ = v.Remove(0)
	require.Empty(t, log)
}

func TestVectorVacatedSlotsZeroed(t *testing.T) {
	x, y := new(int), new(int)
	v := Of(x, y)
	v.Pop()
	require.Nil(t, v.buf.slots()[1])
	v.Truncate(0)
	require.Nil(t, v.buf.slots()[0])
}
