package set

import (
	"iter"

	"go.llib.dev/datastruct"
)

// Ordered is a set that keeps the order in which its values were first
// appended. The zero value is an empty set, ready to be used.
//
// Ordered satisfies the datastruct.List role;
// appending a value that is already a member changes nothing.
type Ordered[T comparable] struct {
	indexes map[T]int
}

var _ datastruct.List[any] = (*Ordered[any])(nil)

// Append adds the values as members, keeping their first-seen order.
func (s *Ordered[T]) Append(vs ...T) {
	for _, v := range vs {
		s.add(v)
	}
}

func (s *Ordered[T]) add(v T) {
	if s.indexes == nil {
		s.indexes = make(map[T]int)
	}
	if _, ok := s.indexes[v]; ok {
		return
	}
	s.indexes[v] = len(s.indexes)
}

// Has reports whether the value is a member of the set.
func (s Ordered[T]) Has(v T) bool {
	if s.indexes == nil {
		return false
	}
	_, ok := s.indexes[v]
	return ok
}

// FromSlice appends the slice's values and returns the set,
// for literal-style construction.
func (s Ordered[T]) FromSlice(vs []T) Ordered[T] {
	s.Append(vs...)
	return s
}

// ToSlice returns the set's values in their first-seen order.
func (s Ordered[T]) ToSlice() []T {
	var out []T = make([]T, len(s.indexes))
	for v, index := range s.indexes {
		out[index] = v
	}
	return out
}

// Len returns the number of values in the set.
func (s Ordered[T]) Len() int {
	return len(s.indexes)
}

// Iter iterates the set's values in their first-seen order.
func (s Ordered[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.ToSlice() {
			if !yield(v) {
				return
			}
		}
	}
}
