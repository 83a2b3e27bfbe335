package vector

// Truncate keeps the first n elements, dropping the rest from the highest
// index down. It is a no-op when n >= Len.
func (v *Vector[T]) Truncate(n int) {
	v.mustOwn()
	if n < 0 {
		panicIndex("truncate", n, v.len)
	}
	if n >= v.len {
		return
	}
	s := v.buf.slots()
	drop := needsDrop[T]()
	for v.len > n {
		v.len--
		if drop {
			dropInPlace(&s[v.len])
		} else {
			var zero T
			s[v.len] = zero
		}
	}
}

// Retain keeps only the elements for which keep returns true, preserving
// their order. Rejected elements are swapped past the retained run and
// dropped together by a final Truncate.
func (v *Vector[T]) Retain(keep func(T) bool) {
	v.mustOwn()
	n := v.len
	s := v.buf.slots()
	del := 0
	for i := 0; i < n; i++ {
		if !keep(s[i]) {
			del++
		} else if del > 0 {
			s[i-del], s[i] = s[i], s[i-del]
		}
	}
	if del > 0 {
		v.Truncate(n - del)
	}
}

// Insert places elem at index, shifting [index, Len) one slot up.
// index may equal Len.
func (v *Vector[T]) Insert(index int, elem T) {
	v.mustOwn()
	if index < 0 || index > v.len {
		panicIndex("insert", index, v.len)
	}
	if v.len == v.buf.capacity() {
		v.buf.double()
	}
	s := v.buf.slots()
	copy(s[index+1:v.len+1], s[index:v.len])
	s[index] = elem
	v.len++
}

// Remove takes the element at index out, shifting [index+1, Len) one slot
// down.
func (v *Vector[T]) Remove(index int) T {
	v.mustOwn()
	if index < 0 || index >= v.len {
		panicIndex("remove", index, v.len)
	}
	s := v.buf.slots()
	ret := s[index]
	copy(s[index:v.len-1], s[index+1:v.len])
	v.len--
	var zero T
	s[v.len] = zero
	return ret
}

// SwapRemove takes the element at index out and fills the hole with the
// element at the high-index end. O(1); order is not preserved.
func (v *Vector[T]) SwapRemove(index int) T {
	v.mustOwn()
	if index < 0 || index >= v.len {
		panicIndex("swap_remove", index, v.len)
	}
	s := v.buf.slots()
	ret := s[index]
	v.len--
	s[index] = s[v.len]
	var zero T
	s[v.len] = zero
	return ret
}
