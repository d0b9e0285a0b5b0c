// Package set provides hash set containers:
// Set for plain membership, Ordered for membership with stable value order.
package set

import "iter"

// Set is an unordered collection of unique values.
// The zero value is an empty set, ready to be used.
type Set[T comparable] struct {
	vs map[T]struct{}
}

// Of returns a Set holding the received values.
func Of[T comparable](vs ...T) Set[T] {
	var set Set[T]
	for _, v := range vs {
		set.Add(v)
	}
	return set
}

// Add puts the value into the set.
// Adding an already present value changes nothing.
func (s *Set[T]) Add(v T) {
	if s.vs == nil {
		s.vs = make(map[T]struct{})
	}
	s.vs[v] = struct{}{}
}

// Has reports whether the value is a member of the set.
func (s Set[T]) Has(v T) bool {
	if s.vs == nil {
		return false
	}
	_, ok := s.vs[v]
	return ok
}

// Delete removes the value from the set.
// Deleting an absent value is a no-op.
func (s *Set[T]) Delete(v T) {
	delete(s.vs, v)
}

// Len returns the number of values in the set.
func (s Set[T]) Len() int {
	return len(s.vs)
}

// ToSlice returns the set's values in no particular order.
func (s Set[T]) ToSlice() []T {
	var out []T
	for v := range s.vs {
		out = append(out, v)
	}
	return out
}

// Iter iterates the set's values in no particular order.
func (s Set[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s.vs {
			if !yield(v) {
				return
			}
		}
	}
}
