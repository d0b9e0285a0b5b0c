// Package avl implements a self-balancing binary search tree.
//
// The tree maintains the AVL shape: the subtree heights of every node differ
// by at most one, which keeps insertion, lookup and removal logarithmic no
// matter what order the values arrive in. Like bst, the tree keeps at most
// one copy of each value.
package avl

import (
	"cmp"
	"iter"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/internal/iterkit"
)

// Tree is an AVL tree ordered by the comparison function given at
// construction. The zero value has no comparison function and is not usable,
// construct trees with New or NewOrdered.
type Tree[T any] struct {
	cmp  func(T, T) int
	root *node[T]
	size int
}

type node[T any] struct {
	value  T
	left   *node[T]
	right  *node[T]
	height int
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
		var ok bool
		t.root, ok = t.insert(t.root, v)
		if ok {
			t.size++
		}
	}
}

func (t *Tree[T]) insert(n *node[T], v T) (*node[T], bool) {
	if n == nil {
		return &node[T]{value: v, height: 1}, true
	}
	var ok bool
	switch c := t.cmp(v, n.value); {
	case c < 0:
		n.left, ok = t.insert(n.left, v)
	case 0 < c:
		n.right, ok = t.insert(n.right, v)
	default:
		return n, false
	}
	if !ok {
		return n, false
	}
	return rebalance(n), true
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
	var ok bool
	t.root, ok = t.remove(t.root, v)
	if ok {
		t.size--
	}
	return ok
}

func (t *Tree[T]) remove(n *node[T], v T) (*node[T], bool) {
	if n == nil {
		return nil, false
	}
	var ok bool
	switch c := t.cmp(v, n.value); {
	case c < 0:
		n.left, ok = t.remove(n.left, v)
	case 0 < c:
		n.right, ok = t.remove(n.right, v)
	default:
		switch {
		case n.left == nil:
			return n.right, true
		case n.right == nil:
			return n.left, true
		default:
			// two children: take over the in-order successor's value,
			// then unlink the successor from the right subtree
			succ := n.right
			for succ.left != nil {
				succ = succ.left
			}
			n.value = succ.value
			n.right, _ = t.remove(n.right, succ.value)
			return rebalance(n), true
		}
	}
	if !ok {
		return n, false
	}
	return rebalance(n), true
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

// Height returns the number of nodes on the longest path from the root down
// to a leaf, zero for the empty tree.
func (t *Tree[T]) Height() int {
	return height(t.root)
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

func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node[T]) update() {
	n.height = 1 + max(height(n.left), height(n.right))
}

func (n *node[T]) balance() int {
	return height(n.left) - height(n.right)
}

// rebalance refreshes the node's height and restores the AVL shape with at
// most two rotations, returning the subtree's new root.
func rebalance[T any](n *node[T]) *node[T] {
	n.update()
	switch b := n.balance(); {
	case 1 < b:
		if n.left.balance() < 0 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	case b < -1:
		if 0 < n.right.balance() {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	default:
		return n
	}
}

func rotateLeft[T any](n *node[T]) *node[T] {
	pivot := n.right
	n.right = pivot.left
	pivot.left = n
	n.update()
	pivot.update()
	return pivot
}

func rotateRight[T any](n *node[T]) *node[T] {
	pivot := n.left
	n.left = pivot.right
	pivot.right = n
	n.update()
	pivot.update()
	return pivot
}
