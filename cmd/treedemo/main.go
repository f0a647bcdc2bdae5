/*
Command treedemo builds an ordered tree from a fixed sample node graph and
prints its values in ascending order, one per line.

Usage:

	treedemo [-dot | -html] [-trace level]

With -dot the tree's shape is written in Graphviz DOT format instead,
with -html as a nested HTML list. -trace sets the trace level to one of
"error", "info" or "debug".
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/ordtree"
	"github.com/npillmayer/ordtree/html"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/term"
)

type options struct {
	dot   bool
	html  bool
	color bool
}

func main() {
	dot := flag.Bool("dot", false, "output tree in Graphviz DOT format")
	htm := flag.Bool("html", false, "output tree as a nested HTML list")
	level := flag.String("trace", "error", "trace level [error|info|debug]")
	flag.Parse()
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(traceLevel(*level))
	opts := options{
		dot:   *dot,
		html:  *htm,
		color: term.IsTerminal(int(os.Stdout.Fd())),
	}
	if err := run(os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "treedemo: %s\n", err.Error())
		os.Exit(1)
	}
}

func traceLevel(s string) tracing.TraceLevel {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}

// sampleGraph assembles the demo's node graph by hand:
//
//	      5
//	    /   \
//	   3     8
//	  / \   / \
//	 1   4 7   9
func sampleGraph() *ordtree.Node[int] {
	root := ordtree.NewNode(5)
	root.Left = ordtree.NewNode(3)
	root.Right = ordtree.NewNode(8)
	root.Left.Left = ordtree.NewNode(1)
	root.Left.Right = ordtree.NewNode(4)
	root.Right.Left = ordtree.NewNode(7)
	root.Right.Right = ordtree.NewNode(9)
	return root
}

func run(w io.Writer, opts options) error {
	tree := ordtree.Build(sampleGraph())
	gtrace.CoreTracer.Infof("built tree with %d values, height %d", tree.Len(), tree.Height())
	switch {
	case opts.dot:
		ordtree.Tree2Dot(tree, w)
		return nil
	case opts.html:
		if err := html.Render(tree, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	}
	header := color.New(color.FgBlue, color.Bold)
	if !opts.color {
		header.DisableColor()
	}
	if _, err := header.Fprintln(w, "Central Traversal:"); err != nil {
		return err
	}
	// the caller decides on the traversal strategy
	for v := range tree.Traverse(ordtree.RecursiveInOrder[int]) {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}
