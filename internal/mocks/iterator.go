// Package mocks holds generated test doubles.
package mocks

//go:generate mockgen -destination=iterator_mock.go -package=mocks . IntIterator

// IntIterator is vector.SizedIterator[int] spelled out for mockgen, which
// cannot instantiate generic interfaces.
type IntIterator interface {
	Next() (int, bool)
	Len() int
}
