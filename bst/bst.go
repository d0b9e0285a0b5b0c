// Package bst implements an unbalanced binary search tree.
//
// The tree keeps at most one copy of each value, so inserting an already
// present value is a no-op. Lookup cost depends on the insertion order;
// for guaranteed logarithmic operations use the avl package instead.
package bst

import (
	"cmp"
	"iter"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/internal/iterkit"
)

// Tree is a binary search tree ordered by the comparison function given at
// construction. The zero value has no comparison function and is not usable,
// construct trees with New or NewOrdered.
type Tree[T any] struct {
	cmp  func(T, T) int
	root *node[T]
	size int
}

type node[T any] struct {
	value T
	left  *node[T]
	right *node[T]
}

// New returns an empty tree ordered by cmp.
// The comparison function must return a negative number when a sorts before b,
// a positive number when a sorts after b, and zero when they are equal.
func New[T any](cmp func(a, b T) int) *Tree[T] {
	return &Tree[T]{cmp: cmp}
}

// NewOrdered returns an empty tree ordered by the natural order of T.
func NewOrdered[T cmp.Ordered]() *Tree[T] {
	return New(cmp.Compare[T])
}

var _ datastruct.SearchTree[any] = &Tree[any]{}

// Insert adds the values to the tree.
// Values the tree already holds are left in place.
func (t *Tree[T]) Insert(vs ...T) {
	for _, v := range vs {
		t.insert(v)
	}
}

func (t *Tree[T]) insert(v T) {
	n := &t.root
	for *n != nil {
		switch c := t.cmp(v, (*n).value); {
		case c < 0:
			n = &(*n).left
		case 0 < c:
			n = &(*n).right
		default:
			return
		}
	}
	*n = &node[T]{value: v}
	t.size++
}

// Contains reports whether the tree holds the value.
func (t *Tree[T]) Contains(v T) bool {
	n := t.root
	for n != nil {
		switch c := t.cmp(v, n.value); {
		case c < 0:
			n = n.left
		case 0 < c:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Remove takes the value out of the tree,
// and reports whether the tree held it.
func (t *Tree[T]) Remove(v T) bool {
	n := &t.root
	for *n != nil {
		switch c := t.cmp(v, (*n).value); {
		case c < 0:
			n = &(*n).left
		case 0 < c:
			n = &(*n).right
		default:
			removeNode(n)
			t.size--
			return true
		}
	}
	return false
}

func removeNode[T any](n **node[T]) {
	switch {
	case (*n).left == nil:
		*n = (*n).right
	case (*n).right == nil:
		*n = (*n).left
	default:
		// two children: take over the in-order successor's value,
		// then unlink the successor from the right subtree
		succ := &(*n).right
		for (*succ).left != nil {
			succ = &(*succ).left
		}
		(*n).value = (*succ).value
		*succ = (*succ).right
	}
}

// Min returns the smallest value of the tree.
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.value, true
}

// Max returns the greatest value of the tree.
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.value, true
}

// Len returns how many values the tree holds.
func (t *Tree[T]) Len() int {
	return t.size
}

// Iter yields the values of the tree in nondecreasing order.
// The iteration is lazy, and the returned iterator can be restarted.
func (t *Tree[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.root.inOrder(yield)
	}
}

func (n *node[T]) inOrder(yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return n.left.inOrder(yield) && yield(n.value) && n.right.inOrder(yield)
}

// ToSlice returns the values of the tree in nondecreasing order.
func (t *Tree[T]) ToSlice() []T {
	return iterkit.Collect(t.Iter())
}
