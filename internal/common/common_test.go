package common

import (
	"reflect"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 2: 2, 3: 4, 5: 8, 8: 8, 9: 16, 31: 32, 32: 32, 33: 64}
	for in, want := range cases {
		require.Equal(t, want, NextPowerOfTwo(in), "input %d", in)
	}
}

func TestVarUintRoundTrip(t *testing.T) {
	condition := func(x uint64) bool {
		b := WriteVarUint(nil, x)
		got, n := ReadVarUint(b)
		return got == x && n == len(b)
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestReadVarUintTruncated(t *testing.T) {
	b := WriteVarUint(nil, 1<<40)
	_, n := ReadVarUint(b[:len(b)-1])
	require.Zero(t, n)
}

func TestFixedRoundTrip(t *testing.T) {
	values := []any{true, int8(-3), uint8(250), int16(-1200), uint16(65000),
		int32(-70000), uint32(1 << 31), int64(-1 << 40), uint64(1 << 63),
		float32(12.5), float64(-1236.25)}
	for _, in := range values {
		v := reflect.ValueOf(in)
		require.True(t, IsFixedKind(v.Kind()))
		b := AppendFixed(nil, v)
		require.Len(t, b, FixedSize(v.Kind()))
		out := reflect.New(v.Type()).Elem()
		SetFixed(out, b, v.Kind())
		require.Equal(t, in, out.Interface())
	}
}

func TestUnsupportedKinds(t *testing.T) {
	require.False(t, IsFixedKind(reflect.String))
	require.Equal(t, -1, FixedSize(reflect.Slice))
	require.Equal(t, 1, Alignment(reflect.String))
	require.Panics(t, func() { AppendFixed(nil, reflect.ValueOf("x")) })
}
