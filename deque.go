package vector

// The front of a Vector is its high-index end, where growth is cheap; the
// back is index 0, where every operation shifts the whole sequence. Stack
// operations all run on the front. Queue enqueues at the back and dequeues
// from the front, so enqueue is O(n) and dequeue O(1).

// Collection is the minimal sized container.
type Collection interface {
	Len() int
	IsEmpty() bool
	Clear()
}

// Deque is a sequence with two named ends.
type Deque[T any] interface {
	Collection
	PushFront(elem T)
	PushBack(elem T)
	PopFront() (T, bool)
	PopBack() (T, bool)
	Front() (T, bool)
	Back() (T, bool)
	FrontPtr() *T
	BackPtr() *T
}

// Stack is LIFO access.
type Stack[T any] interface {
	Collection
	Push(elem T)
	Pop() (T, bool)
	Top() (T, bool)
	TopPtr() *T
}

// Queue is FIFO access.
type Queue[T any] interface {
	Collection
	Enqueue(elem T)
	Dequeue() (T, bool)
	Peek() (T, bool)
	PeekPtr() *T
}

var (
	_ Deque[int] = (*Vector[int])(nil)
	_ Stack[int] = (*Vector[int])(nil)
	_ Queue[int] = (*Vector[int])(nil)
)

// PushFront appends elem at index Len. O(1) amortized.
func (v *Vector[T]) PushFront(elem T) {
	v.mustOwn()
	if v.len == v.buf.capacity() {
		v.buf.double()
	}
	v.buf.slots()[v.len] = elem
	v.len++
}

// PushBack inserts elem at index 0. O(Len).
func (v *Vector[T]) PushBack(elem T) {
	v.Insert(0, elem)
}

// PopFront removes and returns the element at index Len-1.
func (v *Vector[T]) PopFront() (T, bool) {
	v.mustOwn()
	var zero T
	if v.len == 0 {
		return zero, false
	}
	v.len--
	s := v.buf.slots()
	ret := s[v.len]
	s[v.len] = zero
	return ret, true
}

// PopBack removes and returns the element at index 0. O(Len).
func (v *Vector[T]) PopBack() (T, bool) {
	v.mustOwn()
	if v.len == 0 {
		var zero T
		return zero, false
	}
	return v.Remove(0), true
}

// Front peeks at index Len-1.
func (v *Vector[T]) Front() (T, bool) {
	return v.Get(v.len - 1)
}

// Back peeks at index 0.
func (v *Vector[T]) Back() (T, bool) {
	return v.Get(0)
}

// FrontPtr is Front by reference; nil when empty.
func (v *Vector[T]) FrontPtr() *T {
	if v.len == 0 {
		return nil
	}
	return &v.buf.slots()[v.len-1]
}

// BackPtr is Back by reference; nil when empty.
func (v *Vector[T]) BackPtr() *T {
	if v.len == 0 {
		return nil
	}
	return &v.buf.slots()[0]
}

// Push is PushFront.
func (v *Vector[T]) Push(elem T) { v.PushFront(elem) }

// Pop is PopFront.
func (v *Vector[T]) Pop() (T, bool) { return v.PopFront() }

// Top is Front.
func (v *Vector[T]) Top() (T, bool) { return v.Front() }

// TopPtr is FrontPtr.
func (v *Vector[T]) TopPtr() *T { return v.FrontPtr() }

// Enqueue is PushBack.
func (v *Vector[T]) Enqueue(elem T) { v.PushBack(elem) }

// Dequeue is PopFront.
func (v *Vector[T]) Dequeue() (T, bool) { return v.PopFront() }

// Peek is Front.
func (v *Vector[T]) Peek() (T, bool) { return v.Front() }

// PeekPtr is FrontPtr.
func (v *Vector[T]) PeekPtr() *T { return v.FrontPtr() }
