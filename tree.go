package ordtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"iter"
)

// Node is a vertex of an ordered tree.
//
// Fields are exported to let clients assemble a node graph by hand, e.g. as input
// for Build. Nodes reachable from a tree's root are owned by that tree and must
// not be changed by clients. A node has at most one parent; there are no
// back-links.
type Node[T any] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

// NewNode creates a node without children.
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{Value: value}
}

// IsLeaf reports whether the node has no children.
func (node *Node[T]) IsLeaf() bool {
	return node.Left == nil && node.Right == nil
}

// Tree is an unbalanced binary search tree over values of type T.
//
// Values are kept distinct with respect to the tree's comparison function:
// inserting a value which compares equal to a stored one is silently ignored.
//
//	Operation     |   average       |  worst case
//	--------------+-----------------+------------
//	Insert        |   O(log n)      |   O(n)
//	Contains      |   O(log n)      |   O(n)
//	Iterate       |   O(n)          |   O(n)
//
// The worst case occurs for sorted input, where the tree degenerates to a chain.
//
// Trees are not safe for concurrent use.
type Tree[T any] struct {
	root    *Node[T]
	compare func(a, b T) int
	size    int
}

// New creates an empty tree for a type with a natural ordering.
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc[T](cmp.Compare[T])
}

// NewFunc creates an empty tree ordered by compare. compare must return a
// negative number if a < b, zero if a == b and a positive number if a > b,
// and has to establish a strict total order over T.
func NewFunc[T any](compare func(a, b T) int) *Tree[T] {
	assert(compare != nil, "ordtree.NewFunc: compare function is required")
	return &Tree[T]{compare: compare}
}

// Insert adds value to the tree. If the tree already holds a value comparing
// equal to value, the tree is left unchanged.
func (t *Tree[T]) Insert(value T) {
	assert(t != nil && t.compare != nil, "ordtree.Insert: tree not initialized")
	link := &t.root
	for *link != nil {
		node := *link
		c := t.compare(value, node.Value)
		switch {
		case c < 0:
			link = &node.Left
		case c > 0:
			link = &node.Right
		default:
			tracer().Debugf("ordtree: dropping duplicate value %v", value)
			return
		}
	}
	*link = NewNode(value)
	t.size++
}

// InsertAll inserts values one after the other, in argument order.
func (t *Tree[T]) InsertAll(values ...T) {
	for _, v := range values {
		t.Insert(v)
	}
}

// Contains reports whether the tree holds a value comparing equal to value.
func (t *Tree[T]) Contains(value T) bool {
	if t.IsEmpty() {
		return false
	}
	node := t.root
	for node != nil {
		c := t.compare(value, node.Value)
		switch {
		case c < 0:
			node = node.Left
		case c > 0:
			node = node.Right
		default:
			return true
		}
	}
	return false
}

// IsEmpty reports whether the tree has no values.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of values in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Height returns the number of nodes on the longest path from the root to a
// leaf, where 0 means empty and 1 means a root without children.
func (t *Tree[T]) Height() int {
	if t.IsEmpty() {
		return 0
	}
	height := 0
	level := []*Node[T]{t.root}
	for len(level) > 0 {
		height++
		var next []*Node[T]
		for _, node := range level {
			if node.Left != nil {
				next = append(next, node.Left)
			}
			if node.Right != nil {
				next = append(next, node.Right)
			}
		}
		level = next
	}
	return height
}

// Root returns the root node of the tree, or nil for an empty tree.
//
// The node graph is handed out to let clients implement traversals of their
// own. It is owned by the tree and must be treated as read-only.
func (t *Tree[T]) Root() *Node[T] {
	if t == nil {
		return nil
	}
	return t.root
}

// Iterate returns a fresh in-order iterator, positioned before the smallest value.
func (t *Tree[T]) Iterate() *Iterator[T] {
	return newIterator(t.Root())
}

// All returns an iterator over all values in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return InOrder(t.Root())
}

// Values returns all values in ascending order.
func (t *Tree[T]) Values() []T {
	values := make([]T, 0, t.Len())
	for v := range t.All() {
		values = append(values, v)
	}
	return values
}

// Traverse hands the root of the tree to a client-supplied traversal strategy
// and returns the sequence it produces. If fn is nil, InOrder is used.
func (t *Tree[T]) Traverse(fn TraversalFunc[T]) iter.Seq[T] {
	if fn == nil {
		fn = InOrder[T]
	}
	return fn(t.Root())
}
