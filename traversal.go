package ordtree

import "iter"

// TraversalFunc is a traversal strategy. It receives the root of a tree,
// which may be nil, and produces the tree's values in strategy-specific order.
//
// Implementations must not modify the node graph.
type TraversalFunc[T any] func(root *Node[T]) iter.Seq[T]

// InOrder visits the left subtree, then the node, then the right subtree. For
// a search tree this yields values in ascending order.
//
// InOrder uses an explicit stack and is safe for trees of any depth. Every call
// to the returned sequence starts a fresh traversal.
func InOrder[T any](root *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		it := newIterator(root)
		for it.Next() {
			if !yield(it.current.Value) {
				return
			}
		}
	}
}

// PreOrder visits the node, then its left subtree, then its right subtree.
//
// PreOrder uses an explicit stack and is safe for trees of any depth.
func PreOrder[T any](root *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if root == nil {
			return
		}
		stack := []*Node[T]{root}
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(node.Value) {
				return
			}
			// right first, so left will be popped first
			if node.Right != nil {
				stack = append(stack, node.Right)
			}
			if node.Left != nil {
				stack = append(stack, node.Left)
			}
		}
	}
}

// RecursiveInOrder collects the values of a tree by plain recursion on
// left subtree, node and right subtree, then yields them in that order.
//
// It is an alternative strategy for Tree.Traverse, suited for trees of moderate
// depth only: recursion depth equals tree height.
func RecursiveInOrder[T any](root *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range collectInOrder(root) {
			if !yield(v) {
				return
			}
		}
	}
}

func collectInOrder[T any](node *Node[T]) []T {
	if node == nil {
		return []T{}
	}
	result := collectInOrder(node.Left)
	result = append(result, node.Value)
	return append(result, collectInOrder(node.Right)...)
}
