package queue

import "go.llib.dev/datastruct"

// Ring is a fixed capacity ring buffer queue. The read and write cursors
// chase each other around a preallocated slice, so after construction the
// queue never allocates. Enqueue reports false when the ring is full.
//
// Make rings with NewRing; the zero value has no capacity and rejects
// every value.
type Ring[T any] struct {
	buf   []T
	read  int
	write int
	count int
}

var _ datastruct.Queue[any] = (*Ring[any])(nil)

// NewRing returns a Ring with room for capacity values.
// It panics when capacity is not positive.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		panic("queue: NewRing capacity must be positive")
	}
	return &Ring[T]{buf: make([]T, capacity)}
}

// Enqueue adds the value to the back of the queue,
// and reports false when the ring is full.
func (q *Ring[T]) Enqueue(v T) bool {
	if q.count == len(q.buf) {
		return false
	}
	q.buf[q.write] = v
	q.write = (q.write + 1) % len(q.buf)
	q.count++
	return true
}

// Dequeue removes and returns the value at the front of the queue.
// It reports false when the queue is empty.
func (q *Ring[T]) Dequeue() (T, bool) {
	if q.count == 0 {
		var zero T
		return zero, false
	}
	v := q.buf[q.read]
	q.buf[q.read] = *new(T) // drop the reference held by the slot
	q.read = (q.read + 1) % len(q.buf)
	q.count--
	return v, true
}

// Peek returns the value at the front of the queue without removing it.
func (q *Ring[T]) Peek() (T, bool) {
	if q.count == 0 {
		var zero T
		return zero, false
	}
	return q.buf[q.read], true
}

// Len returns the number of values in the queue.
func (q *Ring[T]) Len() int {
	return q.count
}

// IsEmpty reports whether the queue has no values.
func (q *Ring[T]) IsEmpty() bool {
	return q.count == 0
}

// Full reports whether the ring has run out of room.
func (q *Ring[T]) Full() bool {
	return q.count == len(q.buf)
}

// Cap returns the ring's fixed capacity.
func (q *Ring[T]) Cap() int {
	return len(q.buf)
}
