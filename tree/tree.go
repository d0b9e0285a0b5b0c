// Package tree implements a general tree, where every node can hold any
// number of children.
package tree

import "iter"

// Node is one node of a general tree, holding a value and its children.
// A Node doubles as the root handle of its subtree.
type Node[T any] struct {
	value    T
	children []*Node[T]
}

// New returns a standalone node holding the value.
func New[T any](v T) *Node[T] {
	return &Node[T]{value: v}
}

// Value returns the value stored in the node.
func (n *Node[T]) Value() T {
	return n.value
}

// Children returns the node's direct children, in the order they were added.
func (n *Node[T]) Children() []*Node[T] {
	return n.children
}

// Add attaches the child node under this node.
func (n *Node[T]) Add(child *Node[T]) {
	n.children = append(n.children, child)
}

// AddValue makes a node of the value, attaches it under this node and
// returns it, for fluent tree building.
func (n *Node[T]) AddValue(v T) *Node[T] {
	child := New(v)
	n.Add(child)
	return child
}

// Len returns the number of nodes in this node's subtree, itself included.
func (n *Node[T]) Len() int {
	count := 1
	for _, child := range n.children {
		count += child.Len()
	}
	return count
}

// DepthFirst yields the subtree's nodes in pre-order,
// each node right before its children.
func (n *Node[T]) DepthFirst() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		n.depthFirst(yield)
	}
}

func (n *Node[T]) depthFirst(yield func(*Node[T]) bool) bool {
	if !yield(n) {
		return false
	}
	for _, child := range n.children {
		if !child.depthFirst(yield) {
			return false
		}
	}
	return true
}

// LevelOrder yields the subtree's nodes level by level, from the top down.
func (n *Node[T]) LevelOrder() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		frontier := []*Node[T]{n}
		for len(frontier) != 0 {
			current := frontier[0]
			frontier = frontier[1:]
			if !yield(current) {
				return
			}
			frontier = append(frontier, current.children...)
		}
	}
}

// Search scans the subtree level by level for the first node holding the
// value. When the value occurs more than once, the match closest to the
// root wins.
func Search[T comparable](root *Node[T], value T) (*Node[T], bool) {
	for n := range root.LevelOrder() {
		if n.value == value {
			return n, true
		}
	}
	return nil, false
}
