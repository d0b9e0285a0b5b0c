// Package datastruct defines the role interfaces for the data structures of
// this module. Implementations live in their own packages (linkedlist, dlist,
// stack, queue, set, tree, binarytree, bst, avl, heap), and each role has a
// behavioural contract under datastructcontract.
package datastruct

import "iter"

// List is the role of finite collections that accept appended values and
// expose a lazy, nondestructive and restartable forward iteration.
type List[T any] interface {
	Append(vs ...T)
	ToSlice() []T
	Iter() iter.Seq[T]
	Sizer
}

// Sequence is a List whose elements can be addressed by their index.
type Sequence[T any] interface {
	List[T]
	Lookup(index int) (T, bool)
}

// Deque is the role of double-ended queues,
// where values can enter and leave on both ends.
type Deque[T any] interface {
	Append(vs ...T)
	Prepend(vs ...T)
	// Shift removes and returns the first element of the deque.
	Shift() (T, bool)
	// Pop removes and returns the last element of the deque.
	Pop() (T, bool)
	Sizer
}

// Queue is the role of first-in first-out containers.
//
// Enqueue reports whether the value was accepted;
// only capacity bounded implementations ever report false.
type Queue[T any] interface {
	Enqueue(v T) bool
	Dequeue() (T, bool)
	Peek() (T, bool)
	Sizer
}

// Stack is the role of last-in first-out containers.
type Stack[T any] interface {
	Push(v T)
	Pop() (T, bool)
	// Last returns the stack's top element without removing it.
	Last() (T, bool)
	Sizer
}

// SearchTree is the role of ordered containers that support value lookup,
// and iterate their values in nondecreasing order.
type SearchTree[T any] interface {
	Insert(vs ...T)
	Contains(v T) bool
	Remove(v T) bool
	Iter() iter.Seq[T]
	Sizer
}

type Sizer interface {
	Len() int
}
