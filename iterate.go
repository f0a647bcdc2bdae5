package ordtree

import "iter"

// Iterator walks the values of a tree in ascending order.
//
// An iterator keeps an explicit stack of pending nodes, thus walking
// degenerate trees of any depth without recursion. Iterators are
// forward-only and never modify the tree. Mutating the tree while an iterator
// is in use yields unspecified results.
//
// Usage:
//
//	it := tree.Iterate()
//	for it.Next() {
//	    v := it.Value()
//	    ...
//	}
type Iterator[T any] struct {
	stack   []*Node[T]
	current *Node[T]
}

func newIterator[T any](root *Node[T]) *Iterator[T] {
	it := &Iterator[T]{}
	it.pushLeftChain(root)
	return it
}

// pushLeftChain pushes node and all of its left descendants.
func (it *Iterator[T]) pushLeftChain(node *Node[T]) {
	for node != nil {
		it.stack = append(it.stack, node)
		node = node.Left
	}
}

// Next advances the iterator to the next value. It returns false if the
// traversal is exhausted; subsequent calls will continue to return false.
func (it *Iterator[T]) Next() bool {
	if len(it.stack) == 0 {
		it.current = nil
		return false
	}
	top := len(it.stack) - 1
	it.current = it.stack[top]
	it.stack[top] = nil
	it.stack = it.stack[:top]
	it.pushLeftChain(it.current.Right)
	return true
}

// Value returns the value the iterator is positioned at. It is illegal to call
// Value before the first call to Next or after Next has returned false.
func (it *Iterator[T]) Value() T {
	assert(it.current != nil, "ordtree.Iterator: Value called without current position")
	return it.current.Value
}

// Reset is not supported for tree iterators and always returns
// ErrUnsupportedOperation. Clients wanting to start over have to get a
// fresh iterator from the tree.
func (it *Iterator[T]) Reset() error {
	return ErrUnsupportedOperation
}

// Seq returns the values not yet visited by the iterator as a sequence.
// Ranging over it advances the iterator.
func (it *Iterator[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.Next() {
			if !yield(it.current.Value) {
				return
			}
		}
	}
}
