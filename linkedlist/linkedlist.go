// Package linkedlist implements a singly linked list with copy-on-write
// value semantics.
//
// A List is a chain of nodes reachable from its head. Clone gives a second,
// independent handle to the same content: the two handles keep sharing the
// physical node chain until one of them mutates, at which point the mutating
// handle first duplicates the chain for itself. A handle that is never
// mutated therefore never pays for a copy, and mutating one handle is never
// observable through another.
package linkedlist

import (
	"fmt"
	"iter"
	"strings"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/internal/iterkit"
)

// Node is a single chain link, holding one value and the link to the next
// node. Nodes are created and wired exclusively by their owning List, so
// every structural change passes through the list's copy-on-write check.
type Node[T any] struct {
	value T
	next  *Node[T]
}

// Value returns the value stored in the node.
func (n *Node[T]) Value() T { return n.value }

// Next returns the node that follows this node in the chain,
// or nil when the node is the last link.
func (n *Node[T]) Next() *Node[T] { return n.next }

// String renders the chain from this node onwards,
// in the same format List.String uses.
func (n *Node[T]) String() string {
	var sb strings.Builder
	for cur := n; cur != nil; cur = cur.next {
		fmt.Fprintf(&sb, "%v -> ", cur.value)
	}
	sb.WriteString(endMark)
	return sb.String()
}

const endMark = "end"

// List is a singly linked list with copy-on-write value semantics.
// The zero value is an empty list, ready to be used.
//
// Copy a List with Clone. Copying the struct value by plain assignment
// creates two handles that alias the same chain without the bookkeeping
// that keeps them independent, and is not supported.
type List[T any] struct {
	head *Node[T]
	tail *Node[T]
	size int
	// owners points to the count of live handles sharing the node chain.
	// A nil owners means the chain belongs to this handle alone.
	// Invariant: owners != nil implies head != nil.
	owners *int
}

var (
	_ datastruct.List[any]     = (*List[any])(nil)
	_ datastruct.Sequence[any] = (*List[any])(nil)
)

// New returns a list holding the received values in order.
func New[T any](vs ...T) *List[T] {
	var l List[T]
	l.Append(vs...)
	return &l
}

// IsEmpty reports whether the list holds no values.
func (l *List[T]) IsEmpty() bool { return l.head == nil }

// Len returns the number of values in the list.
func (l *List[T]) Len() int { return l.size }

// Head returns the first node of the list, or nil when the list is empty.
//
// Two handles return the identical Head node exactly as long as they share
// their physical chain: after a Clone, and before either handle mutates.
func (l *List[T]) Head() *Node[T] { return l.head }

// Tail returns the last node of the list, or nil when the list is empty.
func (l *List[T]) Tail() *Node[T] { return l.tail }

// Clone returns a new handle to the same list content.
// The clone and the original initially share the same physical node chain;
// whichever handle mutates first rebinds itself to its own copy of the
// chain, so the other handle never observes the change.
func (l *List[T]) Clone() *List[T] {
	if l.head == nil {
		return &List[T]{}
	}
	if l.owners == nil {
		l.owners = new(int)
		*l.owners = 1
	}
	*l.owners++
	return &List[T]{head: l.head, tail: l.tail, size: l.size, owners: l.owners}
}

// copyNodes enforces the copy-on-write contract.
// Every structural mutation starts here: if the chain is shared with
// another live handle, the whole chain is duplicated in order and the
// handle is rebound to the fresh copy before the mutation may proceed.
func (l *List[T]) copyNodes() {
	l.copyNodesFor(nil)
}

// copyNodesFor is copyNodes with node remapping: when a copy takes place,
// it returns the copied counterpart of the received node, so that mutations
// addressed through a node reference land in the freshly copied chain.
// Without a copy the node is returned as is.
func (l *List[T]) copyNodesFor(node *Node[T]) *Node[T] {
	if l.owners == nil {
		return node
	}
	if *l.owners == 1 {
		l.owners = nil
		return node
	}
	*l.owners-- // the remaining handles keep the old chain
	l.owners = nil
	var counterpart *Node[T]
	old := l.head
	l.head = &Node[T]{value: old.value}
	newNode := l.head
	if old == node {
		counterpart = newNode
	}
	for old = old.next; old != nil; old = old.next {
		newNode.next = &Node[T]{value: old.value}
		newNode = newNode.next
		if old == node {
			counterpart = newNode
		}
	}
	l.tail = newNode
	return counterpart
}

// Push prepends the value to the list, making it the new head.
// On an empty list the value becomes both head and tail.
func (l *List[T]) Push(v T) {
	l.copyNodes()
	l.head = &Node[T]{value: v, next: l.head}
	if l.tail == nil {
		l.tail = l.head
	}
	l.size++
}

// Append adds the values to the end of the list, in the received order.
func (l *List[T]) Append(vs ...T) {
	if len(vs) == 0 {
		return
	}
	l.copyNodes()
	for _, v := range vs {
		l.append(v)
	}
}

func (l *List[T]) append(v T) {
	if l.head == nil {
		l.Push(v)
		return
	}
	l.tail.next = &Node[T]{value: v}
	l.tail = l.tail.next
	l.size++
}

// Pop removes and returns the value of the list's head.
// It reports false when the list is empty.
func (l *List[T]) Pop() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	l.copyNodes()
	v := l.head.value
	l.head = l.head.next
	l.size--
	if l.head == nil {
		l.tail = nil
	}
	return v, true
}

// RemoveLast removes and returns the value of the list's tail.
// It reports false when the list is empty.
func (l *List[T]) RemoveLast() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	if l.head.next == nil {
		return l.Pop()
	}
	l.copyNodes()
	prev := l.head
	for prev.next.next != nil {
		prev = prev.next
	}
	v := prev.next.value
	prev.next = nil
	l.tail = prev
	l.size--
	return v, true
}

// NodeAt walks the chain and returns the node at the given index,
// or nil when the index is outside the list's range.
func (l *List[T]) NodeAt(index int) *Node[T] {
	if index < 0 {
		return nil
	}
	current := l.head
	for i := 0; current != nil && i < index; i++ {
		current = current.next
	}
	return current
}

// Lookup returns the value at the given index,
// and reports whether the index was within the list's range.
func (l *List[T]) Lookup(index int) (T, bool) {
	if n := l.NodeAt(index); n != nil {
		return n.value, true
	}
	var zero T
	return zero, false
}

// InsertAfter links the value right after the given node and returns the
// newly created node. Inserting after the current tail is equivalent to
// Append, and moves the tail to the new node.
//
// The node must belong to this list;
// the list does not validate this, it is the caller's obligation.
func (l *List[T]) InsertAfter(v T, node *Node[T]) *Node[T] {
	if node == l.tail {
		l.Append(v)
		return l.tail
	}
	node = l.copyNodesFor(node)
	node.next = &Node[T]{value: v, next: node.next}
	l.size++
	return node.next
}

// RemoveAfter unlinks and returns the value of the node that follows the
// given node. It reports false when nothing follows the node.
// When the removed node was the tail, the given node becomes the new tail.
//
// The node must belong to this list;
// the list does not validate this, it is the caller's obligation.
func (l *List[T]) RemoveAfter(node *Node[T]) (T, bool) {
	if node == nil || node.next == nil {
		var zero T
		return zero, false
	}
	node = l.copyNodesFor(node)
	removed := node.next
	node.next = removed.next
	if removed == l.tail {
		l.tail = node
	}
	l.size--
	return removed.value, true
}

// Iter returns a lazy, restartable iterator over the list's values.
// Iterating never mutates the list, and every call walks the chain anew.
func (l *List[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// All iterates the index-value pairs of the list.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var index int
		for n := l.head; n != nil; n = n.next {
			if !yield(index, n.value) {
				return
			}
			index++
		}
	}
}

// ToSlice returns the list's values as a slice, in list order.
func (l *List[T]) ToSlice() []T {
	return iterkit.Collect(l.Iter())
}

// String renders the chain for diagnostic display: the values joined by
// arrows and closed by the end-of-chain marker, e.g. "1 -> 2 -> 3 -> end".
// The exact format is not a compatibility contract.
func (l *List[T]) String() string {
	if l.head == nil {
		return endMark
	}
	return l.head.String()
}
