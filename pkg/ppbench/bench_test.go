package ppbench

import (
	"strings"
	"testing"

	"github.com/relsqui/prettydoc/pkg/pp"
)

func TestNewCorpusProducesRenderableDocuments(t *testing.T) {
	c := NewCorpus(2, 3)
	if len(c.Docs) != 6 {
		t.Fatalf("len(Docs) = %d, want 6", len(c.Docs))
	}
	for i, d := range c.Docs {
		out := pp.ToString(pp.LF, c.Width, d)
		if out == "" {
			t.Errorf("doc %d rendered empty output", i)
		}
	}
}

func TestFlatRecordRendersFieldsInOrder(t *testing.T) {
	d := flatRecord(3)
	out := pp.ToString(pp.LF, 80, d)
	if !strings.Contains(out, "field0") || !strings.Contains(out, "field2") {
		t.Errorf("flatRecord output = %q, want field0..field2 present", out)
	}
}

func TestWideListBreaksAtNarrowWidth(t *testing.T) {
	d := wideList(20)
	out := pp.ToString(pp.LF, 20, d)
	if !strings.Contains(out, "\n") {
		t.Errorf("wideList at width 20 should break across lines, got %q", out)
	}
}

func TestRenderThroughputReportsAllDocs(t *testing.T) {
	c := NewCorpus(1, 2)
	r := RenderThroughput(c)
	if r.Ops != len(c.Docs) {
		t.Errorf("Ops = %d, want %d", r.Ops, len(c.Docs))
	}
	if r.Duration <= 0 {
		t.Error("Duration should be positive")
	}
}

func TestRenderBytesPerSecondCountsOutputBytes(t *testing.T) {
	c := NewCorpus(1, 2)
	r := RenderBytesPerSecond(c)
	if r.Ops <= 0 {
		t.Error("Ops (total bytes) should be positive")
	}
	if r.Extra == "" {
		t.Error("Extra should report bytes/sec")
	}
}

func TestResultStringIncludesName(t *testing.T) {
	r := Result{Name: "demo", Duration: 1, Ops: 10}
	s := r.String()
	if !strings.Contains(s, "demo") {
		t.Errorf("String() = %q, want it to contain the result name", s)
	}
}
