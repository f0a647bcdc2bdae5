package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRunPrintsCentralTraversal(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var out bytes.Buffer
	if err := run(&out, options{}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	want := "Central Traversal:\n1\n3\n4\n5\n7\n8\n9\n"
	if out.String() != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestRunDot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var out bytes.Buffer
	if err := run(&out, options{dot: true}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "strict digraph {") {
		t.Errorf("expected DOT output, got %q", out.String())
	}
}

func TestRunHTML(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var out bytes.Buffer
	if err := run(&out, options{html: true}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), `<ul class="ordtree">`) {
		t.Errorf("expected HTML list, got %q", out.String())
	}
}

func TestTraceLevel(t *testing.T) {
	if traceLevel("DEBUG") != tracing.LevelDebug {
		t.Errorf("expected debug level")
	}
	if traceLevel("info") != tracing.LevelInfo {
		t.Errorf("expected info level")
	}
	if traceLevel("bogus") != tracing.LevelError {
		t.Errorf("expected fallback to error level")
	}
}
