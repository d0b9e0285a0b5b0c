// Package stack provides a slice backed last-in first-out container.
package stack

import (
	"iter"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/internal/slicekit"
)

// Stack is a slice backed last-in first-out container.
// The zero value is an empty stack, ready to be used.
type Stack[T any] []T

var _ datastruct.Stack[any] = (*Stack[any])(nil)

// Of returns a stack of the received values, with the last one on top.
func Of[T any](vs ...T) Stack[T] {
	return Stack[T](vs)
}

// IsEmpty check if stack is empty
func (s *Stack[T]) IsEmpty() bool {
	return len(*s) == 0
}

// Push a new value onto the stack
func (s *Stack[T]) Push(v T) {
	*s = append(*s, v)
}

// Pop remove and return top element of stack. Return false if stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	if s.IsEmpty() {
		return *new(T), false
	}
	index := len(*s) - 1
	element := (*s)[index]
	*s = (*s)[:index]
	return element, true
}

// Last returns the top stack element without removing it.
func (s *Stack[T]) Last() (T, bool) {
	if s.IsEmpty() {
		return *new(T), false
	}
	return (*s)[len(*s)-1], true
}

// Len returns the number of elements in the stack.
func (s *Stack[T]) Len() int {
	return len(*s)
}

// Iter iterates the stack's elements in pop order, from the top down.
func (s *Stack[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range slicekit.IterReverse(*s) {
			if !yield(v) {
				return
			}
		}
	}
}

// ToSlice returns the stack's elements in pop order.
func (s *Stack[T]) ToSlice() []T {
	var out []T
	for v := range s.Iter() {
		out = append(out, v)
	}
	return out
}
