package vector

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"slices"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.AsSlice(), b.AsSlice())
}

// EqualSlice compares a vector against any slice or array view.
func EqualSlice[T comparable](v *Vector[T], s []T) bool {
	return slices.Equal(v.AsSlice(), s)
}

// EqualFunc is Equal for element types related by eq.
func EqualFunc[A, B any](a *Vector[A], b *Vector[B], eq func(A, B) bool) bool {
	return slices.EqualFunc(a.AsSlice(), b.AsSlice(), eq)
}

// Compare orders vectors lexicographically; a shorter prefix sorts first.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.AsSlice(), b.AsSlice())
}

// CompareFunc is Compare with a custom element ordering.
func CompareFunc[T any](a, b *Vector[T], c func(T, T) int) int {
	return slices.CompareFunc(a.AsSlice(), b.AsSlice(), c)
}

// Hash digests the length followed by every element; write feeds one
// element's bytes to the digest. Equal vectors hash equally as long as write
// is deterministic.
func Hash[T any](v *Vector[T], write func(d *xxhash.Digest, elem T)) uint64 {
	d := xxhash.New()
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], uint64(v.len))
	_, _ = d.Write(n[:])
	for _, e := range v.AsSlice() {
		write(d, e)
	}
	return d.Sum64()
}

// Clone returns an independent vector with the same elements and capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	c := WithCapacity[T](v.buf.cap)
	dst := c.buf.slots()
	for i, e := range v.AsSlice() {
		dst[i] = cloneElem(e)
	}
	c.len = v.len
	return c
}

// String formats like the equivalent slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.AsSlice())
}

// Format applies any verb and flags to the element slice.
func (v *Vector[T]) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), v.AsSlice())
}

func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	s := v.AsSlice()
	if s == nil {
		s = []T{}
	}
	return json.Marshal(s)
}

// UnmarshalJSON replaces the contents of v, adopting the decoded storage.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	var s []T
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v.adopt(s)
	return nil
}

func (v *Vector[T]) MarshalYAML() (any, error) {
	s := v.AsSlice()
	if s == nil {
		s = []T{}
	}
	return s, nil
}

// UnmarshalYAML replaces the contents of v.
func (v *Vector[T]) UnmarshalYAML(node *yaml.Node) error {
	var s []T
	if err := node.Decode(&s); err != nil {
		return err
	}
	v.adopt(s)
	return nil
}

// adopt drops the current contents and takes ownership of s's storage.
func (v *Vector[T]) adopt(s []T) {
	v.Drop()
	v.buf = rawFromParts(unsafe.SliceData(s), cap(s))
	v.len = len(s)
}
