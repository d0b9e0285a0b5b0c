// Package slicekit provides the small slice helpers shared by the datastruct
// packages and their test suites.
package slicekit

import "iter"

// Merge will merge every received list of element into a single slice.
func Merge[T any](slices ...[]T) []T {
	var out = make([]T, 0)
	for _, slice := range slices {
		out = append(out, slice...)
	}
	return out
}

// Lookup will return a slice element based on its index,
// and reports back if the index was usable.
func Lookup[T any](vs []T, index int) (T, bool) {
	if index < 0 || len(vs) <= index {
		var zero T
		return zero, false
	}
	return vs[index], true
}

// First returns the first element of the slice.
func First[T any](vs []T) (T, bool) {
	return Lookup(vs, 0)
}

// Last returns the last element of the slice.
func Last[T any](vs []T) (T, bool) {
	return Lookup(vs, len(vs)-1)
}

// IterReverse iterates the slice backwards, from the last to the first element.
func IterReverse[T any](vs []T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(vs) - 1; 0 <= i; i-- {
			if !yield(i, vs[i]) {
				return
			}
		}
	}
}
