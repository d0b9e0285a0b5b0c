// Package heap implements a binary min-heap.
//
// The heap keeps the smallest value according to its comparison function on
// top. Passing a reversed comparison turns it into a max-heap. Unlike the
// tree packages, a heap is free to hold duplicate values.
package heap

import "cmp"

// Heap is a binary heap ordered by the comparison function given at
// construction. The zero value has no comparison function and is not usable,
// construct heaps with New, NewOrdered or FromSlice.
type Heap[T any] struct {
	cmp func(T, T) int
	vs  []T
}

// New returns an empty heap ordered by cmp.
// The comparison function must return a negative number when a sorts before b,
// a positive number when a sorts after b, and zero when they are equal.
func New[T any](cmp func(a, b T) int) *Heap[T] {
	return &Heap[T]{cmp: cmp}
}

// NewOrdered returns an empty min-heap of an ordered element type.
func NewOrdered[T cmp.Ordered]() *Heap[T] {
	return New(cmp.Compare[T])
}

// FromSlice arranges vs into heap order in place, in linear time, and
// returns a heap backed by it. The caller should stop using the slice
// directly afterwards.
func FromSlice[T any](cmp func(a, b T) int, vs []T) *Heap[T] {
	h := &Heap[T]{cmp: cmp, vs: vs}
	for i := len(vs)/2 - 1; 0 <= i; i-- {
		h.siftDown(i)
	}
	return h
}

// Push adds the values to the heap.
func (h *Heap[T]) Push(vs ...T) {
	for _, v := range vs {
		h.vs = append(h.vs, v)
		h.siftUp(len(h.vs) - 1)
	}
}

// Pop removes and returns the top of the heap,
// the smallest value according to the heap's ordering.
func (h *Heap[T]) Pop() (T, bool) {
	return h.RemoveAt(0)
}

// Peek returns the top of the heap without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.vs) == 0 {
		var zero T
		return zero, false
	}
	return h.vs[0], true
}

// RemoveAt removes and returns the value stored at the given index of the
// heap's storage, as exposed by ToSlice. It reports false when the index
// falls outside the storage.
func (h *Heap[T]) RemoveAt(i int) (T, bool) {
	if i < 0 || len(h.vs) <= i {
		var zero T
		return zero, false
	}
	v := h.vs[i]
	last := len(h.vs) - 1
	h.vs[i] = h.vs[last]
	h.vs[last] = *new(T) // drop the reference held by the slot
	h.vs = h.vs[:last]
	if i < last {
		// the moved value may belong either above or below its new slot
		h.siftDown(i)
		h.siftUp(i)
	}
	return v, true
}

// Len returns how many values the heap holds.
func (h *Heap[T]) Len() int {
	return len(h.vs)
}

// IsEmpty reports whether the heap holds no values.
func (h *Heap[T]) IsEmpty() bool {
	return len(h.vs) == 0
}

// ToSlice returns a copy of the values in storage order,
// which is heap order rather than sorted order.
func (h *Heap[T]) ToSlice() []T {
	return append([]T{}, h.vs...)
}

func (h *Heap[T]) siftUp(i int) {
	for 0 < i {
		parent := (i - 1) / 2
		if 0 <= h.cmp(h.vs[i], h.vs[parent]) {
			return
		}
		h.vs[i], h.vs[parent] = h.vs[parent], h.vs[i]
		i = parent
	}
}

func (h *Heap[T]) siftDown(i int) {
	for {
		least := i
		if l := 2*i + 1; l < len(h.vs) && h.cmp(h.vs[l], h.vs[least]) < 0 {
			least = l
		}
		if r := 2*i + 2; r < len(h.vs) && h.cmp(h.vs[r], h.vs[least]) < 0 {
			least = r
		}
		if least == i {
			return
		}
		h.vs[i], h.vs[least] = h.vs[least], h.vs[i]
		i = least
	}
}
