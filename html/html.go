/*
Package html renders the shape of ordered trees as nested HTML lists, and reads
them back.

A tree is rendered as

	<ul class="ordtree">
	  <li><span class="value">5</span>
	    <ul>
	      <li><span class="value">3</span></li>   (left child)
	      <li class="empty"></li>                 (no right child)
	    </ul>
	  </li>
	</ul>

(without the indentation). Inner nodes always list exactly two children, left
first; missing children are represented by empty list items.

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package html

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/ordtree"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'ordtree'
func tracer() tracing.Trace {
	return tracing.Select("ordtree")
}

const (
	treeClass  = "ordtree"
	valueClass = "value"
	emptyClass = "empty"
)

// Render writes the shape of tree as a nested HTML list to w.
// Values are formatted with fmt's %v verb.
func Render[T any](tree *ordtree.Tree[T], w io.Writer) error {
	return html.Render(w, Fragment(tree))
}

// Fragment creates the HTML node structure for tree, as written by Render.
// The returned node is a <ul> element without parent.
func Fragment[T any](tree *ordtree.Tree[T]) *html.Node {
	list := element(atom.Ul, treeClass)
	root := tree.Root()
	if root == nil {
		return list
	}
	type pending struct {
		node   *ordtree.Node[T]
		parent *html.Node
	}
	stack := []pending{{node: root, parent: list}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.node == nil {
			p.parent.AppendChild(element(atom.Li, emptyClass))
			continue
		}
		item := element(atom.Li, "")
		span := element(atom.Span, valueClass)
		span.AppendChild(&html.Node{Type: html.TextNode, Data: fmt.Sprintf("%v", p.node.Value)})
		item.AppendChild(span)
		p.parent.AppendChild(item)
		if p.node.IsLeaf() {
			continue
		}
		children := element(atom.Ul, "")
		item.AppendChild(children)
		// right is pushed first to be appended second
		stack = append(stack, pending{node: p.node.Right, parent: children})
		stack = append(stack, pending{node: p.node.Left, parent: children})
	}
	return list
}

// Parse reads a node graph from an HTML fragment as written by Render.
// Value texts are converted with parse. The first list with class "ordtree"
// found in the input is used; if there is none, an error is returned.
// An empty list results in a nil root.
//
// The resulting graph has the shape of the rendered tree and may be given to
// ordtree.Build to re-create a tree.
func Parse[T any](input io.Reader, parse func(string) (T, error)) (*ordtree.Node[T], error) {
	if parse == nil {
		return nil, ordtree.ErrIllegalArguments
	}
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(input, body)
	if err != nil {
		return nil, err
	}
	var list *html.Node
	for _, n := range nodes {
		if list = findTreeList(n); list != nil {
			break
		}
	}
	if list == nil {
		return nil, fmt.Errorf("%w: no <ul class=%q> in input", ordtree.ErrIllegalArguments, treeClass)
	}
	items := elementChildren(list, atom.Li)
	if len(items) == 0 {
		tracer().Debugf("html: empty tree list")
		return nil, nil
	}
	type pending struct {
		item *html.Node
		link **ordtree.Node[T]
	}
	var root *ordtree.Node[T]
	stack := []pending{{item: items[0], link: &root}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if hasClass(p.item, emptyClass) {
			continue
		}
		spans := elementChildren(p.item, atom.Span)
		if len(spans) == 0 {
			return nil, fmt.Errorf("%w: list item without value", ordtree.ErrIllegalArguments)
		}
		v, err := parse(innerText(spans[0]))
		if err != nil {
			return nil, err
		}
		node := ordtree.NewNode(v)
		*p.link = node
		sublists := elementChildren(p.item, atom.Ul)
		if len(sublists) == 0 {
			continue
		}
		children := elementChildren(sublists[0], atom.Li)
		if len(children) != 2 {
			return nil, fmt.Errorf("%w: inner node %q has %d children, expected 2",
				ordtree.ErrIllegalArguments, innerText(spans[0]), len(children))
		}
		stack = append(stack, pending{item: children[1], link: &node.Right})
		stack = append(stack, pending{item: children[0], link: &node.Left})
	}
	return root, nil
}

// --- Helpers ---------------------------------------------------------------

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key == "class" {
			for _, c := range strings.Fields(attr.Val) {
				if c == class {
					return true
				}
			}
		}
	}
	return false
}

func elementChildren(n *html.Node, a atom.Atom) []*html.Node {
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			children = append(children, c)
		}
	}
	return children
}

func findTreeList(n *html.Node) *html.Node {
	stack := []*html.Node{n}
	for len(stack) > 0 {
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.Type == html.ElementNode && n.DataAtom == atom.Ul && hasClass(n, treeClass) {
			return n
		}
		for c := n.LastChild; c != nil; c = c.PrevSibling {
			stack = append(stack, c)
		}
	}
	return nil
}

func innerText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(b.String())
}
