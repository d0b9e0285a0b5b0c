package linkedlist

// Position is a handle for sequential access, denoting either the place of
// one node in the chain or the end position one past the tail.
//
// Positions compare by successor identity: two positions are equal when the
// nodes they denote share the identical next reference, with two absent
// next references also counting as identical. This makes the end position
// comparable with node positions, at the price that the tail positions of
// two separate chains compare equal as well.
type Position[T any] struct {
	node *Node[T]
}

// Start returns the position of the list's head.
// On an empty list, Start equals End.
func (l *List[T]) Start() Position[T] {
	return Position[T]{node: l.head}
}

// End returns the position one past the list's tail.
// End denotes no node.
func (l *List[T]) End() Position[T] {
	return Position[T]{}
}

// Node returns the node the position denotes, or nil for the end position.
func (p Position[T]) Node() *Node[T] { return p.node }

// Value returns the value of the node the position denotes.
// Reading the end position is a contract violation, and panics.
func (p Position[T]) Value() T {
	if p.node == nil {
		panic("linkedlist: Position.Value called on the end position")
	}
	return p.node.value
}

// Next returns the position that follows this position.
// Advancing the end position yields the end position again.
func (p Position[T]) Next() Position[T] {
	if p.node == nil {
		return p
	}
	return Position[T]{node: p.node.next}
}

// Equal reports whether the two positions denote the same place,
// compared by the successor identity of their nodes.
func (p Position[T]) Equal(oth Position[T]) bool {
	switch {
	case p.node != nil && oth.node != nil:
		return p.node.next == oth.node.next
	case p.node == nil && oth.node == nil:
		return true
	default:
		return false
	}
}

// Before reports whether this position comes before the other position.
// Order is decided by reachability: the earlier position reaches the later
// one by following next references. Nodes don't track their depth in the
// chain, so the walk costs O(n).
func (p Position[T]) Before(oth Position[T]) bool {
	if p.Equal(oth) {
		return false
	}
	for n := p.node; ; n = n.next {
		if n == oth.node {
			return true
		}
		if n == nil {
			return false
		}
	}
}
