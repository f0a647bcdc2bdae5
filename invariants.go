package ordtree

import "fmt"

// Check validates the search tree invariants: for every node, all values in
// its left subtree compare less, and all values in its right subtree compare
// greater than the node's value. It also checks the tree's value count.
//
// This checker is intended for tests and debugging; it visits every node.
// Errors returned wrap ErrInvariantViolated.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree must have size 0, has %d", ErrInvariantViolated, t.size)
		}
		return nil
	}
	if t.compare == nil {
		return fmt.Errorf("%w: non-empty tree without compare function", ErrInvariantViolated)
	}
	// every pending node carries the open interval its value has to fall into
	type bounds struct {
		node         *Node[T]
		lower, upper *Node[T]
	}
	count := 0
	stack := []bounds{{node: t.root}}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		if count > t.size {
			return fmt.Errorf("%w: more nodes than size %d (cycle or shared node?)",
				ErrInvariantViolated, t.size)
		}
		if b.lower != nil && t.compare(b.node.Value, b.lower.Value) <= 0 {
			return fmt.Errorf("%w: value %v not greater than ancestor %v",
				ErrInvariantViolated, b.node.Value, b.lower.Value)
		}
		if b.upper != nil && t.compare(b.node.Value, b.upper.Value) >= 0 {
			return fmt.Errorf("%w: value %v not less than ancestor %v",
				ErrInvariantViolated, b.node.Value, b.upper.Value)
		}
		if b.node.Left != nil {
			stack = append(stack, bounds{node: b.node.Left, lower: b.lower, upper: b.node})
		}
		if b.node.Right != nil {
			stack = append(stack, bounds{node: b.node.Right, lower: b.node, upper: b.upper})
		}
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrInvariantViolated, count, t.size)
	}
	return nil
}
