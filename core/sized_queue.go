package core

// SizedQueue is a bounded FIFO buffer that evicts its oldest element when a
// push would exceed capacity. The queue therefore always holds at most the
// N most recently pushed items, oldest first.
//
// SizedQueue is not internally synchronized; concurrent use requires an
// external lock, which is the caller's responsibility.
type SizedQueue[T any] struct {
	buf  []T
	head int
	n    int
}

// NewSizedQueue creates an empty queue. Capacity must be greater than zero.
func NewSizedQueue[T any](capacity int) *SizedQueue[T] {
	if capacity <= 0 {
		panic(ErrQueueCapacity)
	}
	return &SizedQueue[T]{buf: make([]T, capacity)}
}

// PushBack appends item, dropping the front element first if the queue is
// already at capacity.
func (q *SizedQueue[T]) PushBack(item T) {
	if q.n == len(q.buf) {
		q.PopFront()
	}
	q.buf[(q.head+q.n)%len(q.buf)] = item
	q.n++
}

// Front returns the oldest element. ok is false when the queue is empty.
func (q *SizedQueue[T]) Front() (item T, ok bool) {
	if q.n == 0 {
		return item, false
	}
	return q.buf[q.head], true
}

// Back returns the newest element. ok is false when the queue is empty.
func (q *SizedQueue[T]) Back() (item T, ok bool) {
	if q.n == 0 {
		return item, false
	}
	return q.buf[(q.head+q.n-1)%len(q.buf)], true
}

// PopFront removes the oldest element. It reports false on an empty queue.
func (q *SizedQueue[T]) PopFront() bool {
	if q.n == 0 {
		return false
	}
	var zero T
	q.buf[q.head] = zero // release the reference held by the backing array
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return true
}

// Len returns the number of buffered elements.
func (q *SizedQueue[T]) Len() int {
	return q.n
}

// Empty reports whether the queue holds no elements.
func (q *SizedQueue[T]) Empty() bool {
	return q.n == 0
}

// Cap returns the fixed capacity.
func (q *SizedQueue[T]) Cap() int {
	return len(q.buf)
}
