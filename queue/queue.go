// Package queue provides first-in first-out containers over four different
// backings: a growable slice, linked nodes, a fixed capacity ring buffer and
// a pair of stacks. They all satisfy the datastruct.Queue role; the choice
// between them is a trade-off between allocation pattern and memory bound.
package queue

import "go.llib.dev/datastruct"

// Slice is a growable slice backed queue.
// The zero value is an empty queue, ready to be used.
type Slice[T any] []T

var _ datastruct.Queue[any] = (*Slice[any])(nil)

// Enqueue adds the value to the back of the queue. It always reports true.
func (q *Slice[T]) Enqueue(v T) bool {
	*q = append(*q, v)
	return true
}

// Dequeue removes and returns the value at the front of the queue.
// It reports false when the queue is empty.
func (q *Slice[T]) Dequeue() (T, bool) {
	if len(*q) == 0 {
		return *new(T), false
	}
	v := (*q)[0]
	*q = (*q)[1:]
	return v, true
}

// Peek returns the value at the front of the queue without removing it.
func (q *Slice[T]) Peek() (T, bool) {
	if len(*q) == 0 {
		return *new(T), false
	}
	return (*q)[0], true
}

// Len returns the number of values in the queue.
func (q *Slice[T]) Len() int {
	return len(*q)
}

// IsEmpty reports whether the queue has no values.
func (q *Slice[T]) IsEmpty() bool {
	return len(*q) == 0
}
