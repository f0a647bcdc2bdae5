package ordtree

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func collect[T any](it *Iterator[T]) []T {
	var out []T
	for it.Next() {
		out = append(out, it.Value())
	}
	return out
}

func TestIteratorAscending(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := New[int]()
	tree.InsertAll(5, 3, 8, 1, 4, 7, 9)
	if got, want := collect(tree.Iterate()), []int{1, 3, 4, 5, 7, 8, 9}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIteratorStaysExhausted(t *testing.T) {
	tree := New[int]()
	tree.Insert(1)
	it := tree.Iterate()
	if !it.Next() || it.Value() != 1 {
		t.Fatalf("expected single value 1")
	}
	for i := 0; i < 3; i++ {
		if it.Next() {
			t.Fatalf("expected exhausted iterator to stay exhausted")
		}
	}
}

func TestIteratorsAreIndependent(t *testing.T) {
	tree := New[int]()
	tree.InsertAll(2, 1, 3)
	it1, it2 := tree.Iterate(), tree.Iterate()
	if !it1.Next() || it1.Value() != 1 {
		t.Fatalf("expected it1 at 1")
	}
	if !it1.Next() || it1.Value() != 2 {
		t.Fatalf("expected it1 at 2")
	}
	// it2 is unaffected by it1's progress
	if got := collect(it2); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("second iterator: got %v, want [1 2 3]", got)
	}
	if got := collect(it1); !slices.Equal(got, []int{3}) {
		t.Errorf("first iterator remainder: got %v, want [3]", got)
	}
}

func TestIterateIsRestartable(t *testing.T) {
	tree := New[string]()
	tree.InsertAll("m", "b", "x", "a")
	first := collect(tree.Iterate())
	second := collect(tree.Iterate())
	if !slices.Equal(first, second) || len(first) != 4 {
		t.Errorf("restarted traversals differ: %v vs %v", first, second)
	}
	if !slices.Equal(slices.Collect(tree.All()), slices.Collect(tree.All())) {
		t.Errorf("All() is not restartable")
	}
}

func TestIteratorResetFails(t *testing.T) {
	tree := New[int]()
	tree.InsertAll(2, 1, 3)
	it := tree.Iterate()
	it.Next()
	for i := 0; i < 3; i++ {
		if err := it.Reset(); !errors.Is(err, ErrUnsupportedOperation) {
			t.Fatalf("expected ErrUnsupportedOperation, got %v", err)
		}
	}
	// reset attempts do not disturb the traversal
	if !it.Next() || it.Value() != 2 {
		t.Errorf("expected iterator to continue at 2")
	}
	if err := New[int]().Iterate().Reset(); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("expected ErrUnsupportedOperation on fresh iterator, got %v", err)
	}
}

func TestIteratorValueWithoutPosition(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for Value before Next")
		}
	}()
	tree := New[int]()
	tree.Insert(1)
	tree.Iterate().Value()
}

func TestIteratorSeqDrainsRemainder(t *testing.T) {
	tree := New[int]()
	tree.InsertAll(4, 2, 6, 1, 3, 5, 7)
	it := tree.Iterate()
	it.Next()
	it.Next()
	if got := slices.Collect(it.Seq()); !slices.Equal(got, []int{3, 4, 5, 6, 7}) {
		t.Errorf("got %v, want [3 4 5 6 7]", got)
	}
	if it.Next() {
		t.Errorf("expected iterator to be drained")
	}
}

func TestAllStopsEarly(t *testing.T) {
	tree := New[int]()
	tree.InsertAll(4, 2, 6, 1, 3, 5, 7)
	var got []int
	for v := range tree.All() {
		if v > 3 {
			break
		}
		got = append(got, v)
	}
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", got)
	}
}
