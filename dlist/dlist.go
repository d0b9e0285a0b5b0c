// Package dlist implements a doubly linked list that is usable from both
// of its ends.
package dlist

import (
	"iter"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/internal/slicekit"
)

// List is a doubly linked list.
// The zero value is an empty list, ready to be used.
type List[T any] struct {
	head   *node[T]
	tail   *node[T]
	length int
}

type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

var (
	_ datastruct.Sequence[any] = (*List[any])(nil)
	_ datastruct.Deque[any]    = (*List[any])(nil)
)

// Append adds the values to the end of the list, in the received order.
func (l *List[T]) Append(vs ...T) {
	for _, v := range vs {
		l.append(v)
	}
}

func (l *List[T]) append(v T) {
	n := &node[T]{value: v, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.length++
}

// Prepend adds the values to the beginning of the list,
// keeping the received order.
func (l *List[T]) Prepend(vs ...T) {
	if len(vs) == 0 {
		return
	}
	for _, v := range slicekit.IterReverse(vs) {
		l.prepend(v)
	}
}

func (l *List[T]) prepend(v T) {
	n := &node[T]{value: v, next: l.head}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.length++
}

// Shift removes and returns the first value of the list.
func (l *List[T]) Shift() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	first := l.head
	l.head = first.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}
	l.length--
	return first.value, true
}

// Pop removes and returns the last value of the list.
func (l *List[T]) Pop() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	last := l.tail
	l.tail = last.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}
	l.length--
	return last.value, true
}

// Len returns the number of values in the list.
func (l *List[T]) Len() int {
	return l.length
}

// Lookup returns the value at the given index,
// and reports whether the index was within the list's range.
func (l *List[T]) Lookup(index int) (T, bool) {
	if index < 0 || l.length <= index {
		var zero T
		return zero, false
	}
	for i, v := range l.All() {
		if i == index {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Iter returns a lazy, restartable iterator over the list's values.
func (l *List[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// All iterates the index-value pairs of the list.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l == nil {
			return
		}
		var index int
		for n := l.head; n != nil; n = n.next {
			if !yield(index, n.value) {
				return
			}
			index++
		}
	}
}

// Backward iterates the list's values from the last to the first.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// ToSlice returns the list's values as a slice, in list order.
func (l *List[T]) ToSlice() []T {
	var vs []T
	for v := range l.Iter() {
		vs = append(vs, v)
	}
	return vs
}
