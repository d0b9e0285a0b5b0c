package queue

import "go.llib.dev/datastruct"

// TwoStacks is a queue built from two slice stacks: values pile up on the
// enqueue stack, and get reversed onto the dequeue stack only when that one
// runs out. Each value moves at most twice, which makes Dequeue amortized
// O(1) without the front-reslicing of Slice.
// The zero value is an empty queue, ready to be used.
type TwoStacks[T any] struct {
	in  []T
	out []T
}

var _ datastruct.Queue[any] = (*TwoStacks[any])(nil)

// Enqueue adds the value to the back of the queue. It always reports true.
func (q *TwoStacks[T]) Enqueue(v T) bool {
	q.in = append(q.in, v)
	return true
}

// Dequeue removes and returns the value at the front of the queue.
// It reports false when the queue is empty.
func (q *TwoStacks[T]) Dequeue() (T, bool) {
	q.shift()
	if len(q.out) == 0 {
		var zero T
		return zero, false
	}
	v := q.out[len(q.out)-1]
	q.out = q.out[:len(q.out)-1]
	return v, true
}

// Peek returns the value at the front of the queue without removing it.
func (q *TwoStacks[T]) Peek() (T, bool) {
	q.shift()
	if len(q.out) == 0 {
		var zero T
		return zero, false
	}
	return q.out[len(q.out)-1], true
}

// shift reverses the enqueue stack onto the dequeue stack,
// but only once the dequeue stack is empty.
func (q *TwoStacks[T]) shift() {
	if len(q.out) != 0 {
		return
	}
	for i := len(q.in) - 1; 0 <= i; i-- {
		q.out = append(q.out, q.in[i])
	}
	q.in = q.in[:0]
}

// Len returns the number of values in the queue.
func (q *TwoStacks[T]) Len() int {
	return len(q.in) + len(q.out)
}

// IsEmpty reports whether the queue has no values.
func (q *TwoStacks[T]) IsEmpty() bool {
	return q.Len() == 0
}
