package seqdbg_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/seq"
	"github.com/npillmayer/seq/seqdbg"
)

func TestPrint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seq")
	defer teardown()
	//
	s := seq.From(1, 2, 3, 4, 5, 6)
	diagram := seqdbg.Print(s.Sketch())
	t.Logf("tree of s =\n%s", diagram)
	for _, label := range []string{"deep #6", "left digit", "right digit", "1", "6"} {
		if !strings.Contains(diagram, label) {
			t.Errorf("expected diagram to contain %q", label)
		}
	}
}

func TestPrintEmpty(t *testing.T) {
	diagram := seqdbg.Print(seq.Immutable[int]().Sketch())
	if !strings.Contains(diagram, "empty") {
		t.Errorf("expected diagram of the empty sequence to read 'empty', is %q", diagram)
	}
}

func TestToConsole(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seq")
	defer teardown()
	//
	s := seq.From("a", "b")
	var sb strings.Builder
	seqdbg.ToConsole(&sb, s.Sketch(), nil)
	out := sb.String()
	if !strings.Contains(out, "a") || !strings.Contains(out, "b") {
		t.Errorf("expected console dump to contain the elements, is %q", out)
	}
}

func TestSummary(t *testing.T) {
	s := seq.From(1, 2)
	sum := seqdbg.Summary(s.Sketch())
	if !strings.Contains(sum, "deep #2") {
		t.Errorf("expected summary to name the root node, is %q", sum)
	}
}
