package vector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// tracked records its id in log when dropped.
type tracked struct {
	id  int
	log *[]int
}

func (t tracked) Drop() { *t.log = append(*t.log, t.id) }

func trackedRange(log *[]int, n int) []tracked {
	out := make([]tracked, n)
	for i := range out {
		out[i] = tracked{id: i, log: log}
	}
	return out
}

func ids(ts []tracked) []int {
	out := make([]int, len(ts))
	for i, t := range ts {
		out[i] = t.id
	}
	return out
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func requirePanicErr(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}
