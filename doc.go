/*
Package ordtree offers an ordered binary search tree over a generic element type.

Ordered Trees

An ordered tree keeps distinct values of a type T, ordered by a three-way
comparison. Values are inserted one at a time and enumerated in ascending
order. The tree does not rebalance itself and does not support deletion; it is
meant as a simple, predictable container where insertion order determines the
shape of the tree:

	tree := ordtree.New[int]()
	tree.InsertAll(5, 3, 8, 1, 4, 7, 9)
	for v := range tree.All() {
	    fmt.Println(v)   // 1 3 4 5 7 8 9
	}

For every node, all values in its left subtree compare strictly less, and all
values in its right subtree compare strictly greater than the node's value.
Inserting a value which compares equal to a value already present is a no-op.
The comparison has to be a strict total order and has to be stable for the
lifetime of every stored value; the tree does not validate it.

Neither insertion nor traversal uses recursion, so degenerate trees (e.g., built
from strictly increasing input, which results in a chain of right children) may
grow arbitrarily deep without exhausting the call stack.

Traversals

Iterators hold a private stack of pending nodes. Any number of iterators may be
open on a tree at the same time. Mutating a tree while an iterator is open is
not supported and its outcome is unspecified. Iterators are forward-only:
Iterator.Reset always fails with ErrUnsupportedOperation.

Clients wanting a different traversal strategy may pass their own TraversalFunc
to Tree.Traverse, which receives the (read-only) root node.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ordtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the ordtree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrUnsupportedOperation is flagged whenever an iterator is asked to reset.
// Traversals are forward-only.
const ErrUnsupportedOperation = TreeError("operation not supported: traversal is forward-only")

// ErrInvariantViolated is flagged by Tree.Check if the tree's ordering or
// bookkeeping is broken.
const ErrInvariantViolated = TreeError("tree invariant violated")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
