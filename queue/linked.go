package queue

import "go.llib.dev/datastruct"

// Linked is a linked-node backed queue. Values enter at the tail and leave
// at the head, so neither operation ever moves the other values.
// The zero value is an empty queue, ready to be used.
type Linked[T any] struct {
	head   *node[T]
	tail   *node[T]
	length int
}

type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

var _ datastruct.Queue[any] = (*Linked[any])(nil)

// Enqueue adds the value to the back of the queue. It always reports true.
func (q *Linked[T]) Enqueue(v T) bool {
	n := &node[T]{value: v, prev: q.tail}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.length++
	return true
}

// Dequeue removes and returns the value at the front of the queue.
// It reports false when the queue is empty.
func (q *Linked[T]) Dequeue() (T, bool) {
	if q.head == nil {
		var zero T
		return zero, false
	}
	first := q.head
	q.head = first.next
	if q.head != nil {
		q.head.prev = nil
	} else {
		q.tail = nil
	}
	q.length--
	return first.value, true
}

// Peek returns the value at the front of the queue without removing it.
func (q *Linked[T]) Peek() (T, bool) {
	if q.head == nil {
		var zero T
		return zero, false
	}
	return q.head.value, true
}

// Len returns the number of values in the queue.
func (q *Linked[T]) Len() int {
	return q.length
}

// IsEmpty reports whether the queue has no values.
func (q *Linked[T]) IsEmpty() bool {
	return q.head == nil
}
