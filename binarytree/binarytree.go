// Package binarytree provides the binary tree building block: nodes wired
// together directly through their exported fields, and walked in the three
// classic traversal orders. No ordering of the values is assumed;
// ordered trees live in the bst and avl packages.
package binarytree

import "iter"

// Node is one node of a binary tree. The fields are exported so trees can
// be composed by hand; each traversal method treats its receiver as the
// root of the subtree to walk, and a nil receiver as an empty subtree.
type Node[T any] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

// New returns a leaf node holding the value.
func New[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// InOrder yields the left subtree's values, then the node's, then the
// right subtree's.
func (n *Node[T]) InOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		n.inOrder(yield)
	}
}

func (n *Node[T]) inOrder(yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return n.Left.inOrder(yield) && yield(n.Value) && n.Right.inOrder(yield)
}

// PreOrder yields the node's value before either subtree's.
func (n *Node[T]) PreOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		n.preOrder(yield)
	}
}

func (n *Node[T]) preOrder(yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return yield(n.Value) && n.Left.preOrder(yield) && n.Right.preOrder(yield)
}

// PostOrder yields both subtrees' values before the node's.
func (n *Node[T]) PostOrder() iter.Seq[T] {
	return func(yield func(T) bool) {
		n.postOrder(yield)
	}
}

func (n *Node[T]) postOrder(yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return n.Left.postOrder(yield) && n.Right.postOrder(yield) && yield(n.Value)
}

// Height returns the number of nodes on the longest downward path from
// this node, so a leaf has height 1 and a nil subtree height 0.
func (n *Node[T]) Height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.Left.Height(), n.Right.Height())
}

// Len returns the number of nodes in the subtree.
func (n *Node[T]) Len() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.Len() + n.Right.Len()
}
