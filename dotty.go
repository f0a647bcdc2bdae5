package ordtree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T any] struct {
	idTable map[*Node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*Node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(node *Node[T]) int {
	return ids.idTable[node]
}

func (ids *nodeids[T]) alloc(node *Node[T]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Missing children are drawn as small empty circles,
// to make the left/right position of single children visible.
func Tree2Dot[T any](tree *Tree[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	var nodelist, edgelist strings.Builder
	nilcnt := 0
	edge := func(from int, child *Node[T]) {
		if child == nil {
			nilcnt++
			fmt.Fprintf(&nodelist, "\"nil%d\" %s;\n", nilcnt, emptyNode())
			fmt.Fprintf(&edgelist, "\"%d\" -> \"nil%d\";\n", from, nilcnt)
			return
		}
		fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", from, ids.alloc(child))
	}
	var stack []*Node[T]
	if root := tree.Root(); root != nil {
		stack = append(stack, root)
	}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ID := ids.alloc(node)
		label := fmt.Sprintf("%v", node.Value)
		fmt.Fprintf(&nodelist, "\"%d\" [label=%q %s];\n", ID, label, nodeDotStyles(node.IsLeaf()))
		if node.IsLeaf() {
			continue
		}
		edge(ID, node.Left)
		edge(ID, node.Right)
		if node.Right != nil {
			stack = append(stack, node.Right)
		}
		if node.Left != nil {
			stack = append(stack, node.Left)
		}
	}
	tracer().Debugf("tree DOT: %d nodes, %d empty children", ids.max-1, nilcnt)
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
