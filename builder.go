package ordtree

import "cmp"

// Builder creates trees from node graphs assembled by clients.
//
// The node graph given to Build is walked in pre-order (node, left subtree,
// right subtree), and each value visited is inserted into a fresh tree. The
// input graph is neither modified nor shared with the resulting tree.
//
// Please note that the shape of the resulting tree is determined by insertion,
// not by the shape of the input graph. If the input graph already is a valid
// search tree for the builder's ordering, the result will have the same shape.
// Otherwise values will end up in different positions, and values comparing
// equal to ones visited earlier will be dropped.
type Builder[T any] struct {
	compare func(a, b T) int
}

// NewBuilder creates a builder for a type with a natural ordering.
func NewBuilder[T cmp.Ordered]() *Builder[T] {
	return &Builder[T]{compare: cmp.Compare[T]}
}

// NewBuilderFunc creates a builder for trees ordered by compare.
// See NewFunc for the requirements on compare.
func NewBuilderFunc[T any](compare func(a, b T) int) *Builder[T] {
	assert(compare != nil, "ordtree.NewBuilderFunc: compare function is required")
	return &Builder[T]{compare: compare}
}

// Build creates a tree holding the values of the node graph starting at root.
// A nil root results in an empty tree.
func (b *Builder[T]) Build(root *Node[T]) *Tree[T] {
	tree := NewFunc(b.compare)
	visited := 0
	for v := range PreOrder(root) {
		tree.Insert(v)
		visited++
	}
	if dropped := visited - tree.Len(); dropped > 0 {
		tracer().Debugf("ordtree builder: %d of %d values dropped as duplicates", dropped, visited)
	}
	return tree
}

// Build creates a tree from a node graph, using the natural ordering of T.
// It is a shortcut for
//
//	NewBuilder[T]().Build(root)
func Build[T cmp.Ordered](root *Node[T]) *Tree[T] {
	return NewBuilder[T]().Build(root)
}

// BuildFunc creates a tree from a node graph, ordered by compare.
func BuildFunc[T any](root *Node[T], compare func(a, b T) int) *Tree[T] {
	return NewBuilderFunc(compare).Build(root)
}
