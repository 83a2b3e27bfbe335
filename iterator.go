package vector

import "iter"

// Iterator yields elements until it reports false.
type Iterator[T any] interface {
	Next() (T, bool)
}

// SizedIterator knows exactly how many elements it has left.
type SizedIterator[T any] interface {
	Iterator[T]
	Len() int
}

// sliceIter yields a slice front to back without copying it.
type sliceIter[T any] struct {
	s []T
}

func (it *sliceIter[T]) Next() (T, bool) {
	if len(it.s) == 0 {
		var zero T
		return zero, false
	}
	e := it.s[0]
	it.s = it.s[1:]
	return e, true
}

func (it *sliceIter[T]) Len() int { return len(it.s) }

// closingSeq drives a cursor as a push iterator, closing it on every exit
// path including an early break from the consuming loop.
func closingSeq[T any](next func() (T, bool), closer func()) iter.Seq[T] {
	return func(yield func(T) bool) {
		defer closer()
		for {
			e, ok := next()
			if !ok || !yield(e) {
				return
			}
		}
	}
}
