package fingertree

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tp "github.com/xlab/treeprint"
)

func TestTreeEmpty(t *testing.T) {
	var tree *Tree[int]
	if tree.Size() != 0 {
		t.Errorf("expected nil tree to have size 0, has %d", tree.Size())
	}
	if _, ok := First(tree); ok {
		t.Error("did not expect a first element in an empty tree")
	}
}

func TestTreePushBackSingle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seq.fingertree")
	defer teardown()
	//
	tree, err := PushBack[int](HeapAllocator(), nil, 7)
	if err != nil {
		t.Fatalf("unexpected push error: %v", err)
	}
	if tree.kind != singleTree {
		t.Errorf("expected a single-element tree, kind is %d", tree.kind)
	}
	if tree.Size() != 1 {
		t.Errorf("expected size 1, is %d", tree.Size())
	}
}

func TestTreePushOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seq.fingertree")
	defer teardown()
	//
	tree := buildRange(t, 1, 20)
	t.Logf("tree =\n%s", printTree(tree))
	expectElements(t, tree, rangeOf(1, 20))
	if !checkSizes(tree) {
		t.Error("cached sizes out of sync with element counts")
	}
}

func TestTreePushFrontOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seq.fingertree")
	defer teardown()
	//
	var tree *Tree[int]
	var err error
	for i := 10; i >= 1; i-- {
		tree, err = PushFront(HeapAllocator(), tree, i)
		if err != nil {
			t.Fatalf("unexpected push error: %v", err)
		}
	}
	expectElements(t, tree, rangeOf(1, 10))
	if !checkSizes(tree) {
		t.Error("cached sizes out of sync with element counts")
	}
}

func TestTreePersistence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seq.fingertree")
	defer teardown()
	//
	versions := make([]*Tree[int], 0, 33)
	var tree *Tree[int]
	versions = append(versions, tree)
	for i := 1; i <= 32; i++ {
		var err error
		tree, err = PushBack(HeapAllocator(), tree, i)
		if err != nil {
			t.Fatalf("unexpected push error: %v", err)
		}
		versions = append(versions, tree)
	}
	for n, v := range versions {
		if v.Size() != uint64(n) {
			t.Errorf("expected version %d to keep size %d, has %d", n, n, v.Size())
		}
		expectElements(t, v, rangeOf(1, n))
	}
}

func TestTreeFromSlice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seq.fingertree")
	defer teardown()
	//
	tree, err := FromSlice(HeapAllocator(), rangeOf(1, 100))
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if tree.Size() != 100 {
		t.Errorf("expected size 100, is %d", tree.Size())
	}
	expectElements(t, tree, rangeOf(1, 100))
}

func TestTreeFirstLast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seq.fingertree")
	defer teardown()
	//
	tree := buildRange(t, 1, 25)
	if x, ok := First(tree); !ok || x != 1 {
		t.Errorf("expected first element to be 1, is %v (ok=%v)", x, ok)
	}
	if x, ok := Last(tree); !ok || x != 25 {
		t.Errorf("expected last element to be 25, is %v (ok=%v)", x, ok)
	}
}

func TestTreeAt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seq.fingertree")
	defer teardown()
	//
	tree := buildRange(t, 0, 63)
	for i := uint64(0); i < 64; i++ {
		x, err := At(tree, i)
		if err != nil {
			t.Fatalf("unexpected error at position %d: %v", i, err)
		}
		if x != int(i) {
			t.Errorf("expected element %d at position %d, got %d", i, i, x)
		}
	}
	if _, err := At(tree, 64); err != ErrIndexOutOfBounds {
		t.Errorf("expected position 64 to be out of bounds, got %v", err)
	}
}

func TestTreeViews(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seq.fingertree")
	defer teardown()
	//
	tree := buildRange(t, 1, 12)
	head, rest, err := viewLeft(HeapAllocator(), tree)
	if err != nil {
		t.Fatalf("unexpected view error: %v", err)
	}
	if head.leaf != 1 {
		t.Errorf("expected left view to yield 1, yields %v", head.leaf)
	}
	expectElements(t, rest, rangeOf(2, 12))
	rest2, tail, err := viewRight(HeapAllocator(), tree)
	if err != nil {
		t.Fatalf("unexpected view error: %v", err)
	}
	if tail.leaf != 12 {
		t.Errorf("expected right view to yield 12, yields %v", tail.leaf)
	}
	expectElements(t, rest2, rangeOf(1, 11))
	expectElements(t, tree, rangeOf(1, 12)) // input unchanged
}

// ---------------------------------------------------------------------------

func buildRange(t *testing.T, from, to int) *Tree[int] {
	tree, err := FromSlice(HeapAllocator(), rangeOf(from, to))
	if err != nil {
		t.Fatalf("cannot build tree %d…%d: %v", from, to, err)
	}
	return tree
}

func rangeOf(from, to int) []int {
	if to < from {
		return nil
	}
	xs := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		xs = append(xs, i)
	}
	return xs
}

func expectElements[T comparable](t *testing.T, tree *Tree[T], want []T) {
	t.Helper()
	got := elements(tree)
	if len(got) != len(want) {
		t.Errorf("expected %d elements, got %d (%v)", len(want), len(got), got)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected element %v at position %d, got %v", want[i], i, got[i])
			return
		}
	}
}

func printTree[T any](tree *Tree[T]) string {
	header := fmt.Sprintf("\nTree(#%d)\n", tree.Size())
	p := tp.New()
	ppt(p, tree.Sketch())
	return header + p.String() + "\n"
}

func ppt(p tp.Tree, sk Sketch) {
	if len(sk.Children) == 0 {
		p.AddNode(sk.Label)
		return
	}
	branch := p.AddBranch(sk.Label)
	for _, ch := range sk.Children {
		ppt(branch, ch)
	}
}
