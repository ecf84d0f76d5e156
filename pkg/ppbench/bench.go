// Package ppbench measures layout throughput against a synthetic document
// corpus. It is shared by the "docprint bench" command and the standalone
// docprint-bench binary so the two report identical numbers.
package ppbench

import (
	"fmt"
	"time"

	"github.com/relsqui/prettydoc/pkg/pp"
)

// Result is the outcome of timing a single named workload.
type Result struct {
	Name     string
	Duration time.Duration
	Ops      int
	Extra    string
}

// String formats r as a single human-readable line: name, total duration,
// operations/sec, and any extra detail the workload attached.
func (r Result) String() string {
	opsPerSec := float64(r.Ops) / r.Duration.Seconds()
	s := fmt.Sprintf("%-24s %10s  %12.0f ops/sec  (%d ops)", r.Name, r.Duration.Round(time.Microsecond), opsPerSec, r.Ops)
	if r.Extra != "" {
		s += "  " + r.Extra
	}
	return s
}

// run times fn, which must perform exactly ops units of work, and wraps the
// result as a Result named name.
func run(name string, ops int, fn func()) Result {
	start := time.Now()
	fn()
	return Result{Name: name, Duration: time.Since(start), Ops: ops}
}

// Corpus is a fixed set of synthetic documents spanning the shapes a real
// pretty-printer workload exercises: flat records, deeply nested groups,
// and wide lists. Width is the layout width used to exercise line-break
// decisions realistically (a corpus rendered at an absurdly large width
// would never break, defeating the point of timing the algorithm).
type Corpus struct {
	Width int
	Docs  []pp.Doc
}

// NewCorpus builds a Corpus of n documents of each shape, parameterized by
// a branching factor that controls how deep/wide the nested and list
// documents grow.
func NewCorpus(n, branching int) Corpus {
	docs := make([]pp.Doc, 0, n*3)
	for i := 0; i < n; i++ {
		docs = append(docs, flatRecord(branching))
		docs = append(docs, nestedGroups(branching))
		docs = append(docs, wideList(branching * 4))
	}
	return Corpus{Width: 80, Docs: docs}
}

// flatRecord builds a "{ k0: v0, k1: v1, ... }" document — the shape of a
// struct literal or JSON object.
func flatRecord(fields int) pp.Doc {
	names := make([]string, fields)
	for i := range names {
		names[i] = fmt.Sprintf("field%d", i)
	}
	body := pp.ConcatMap(
		func(a, b string) pp.Doc { return pp.CommaBreakableSpace() },
		func(first string) pp.Doc { return pp.Empty() },
		func(last string) pp.Doc { return pp.TrailingComma() },
		func(final bool, name string) pp.Doc {
			return pp.String(name, len(name)).
				Cat(pp.String(": ", 2)).
				Cat(pp.String("value", 5))
		},
		names,
	)
	return pp.Braces(nil, pp.Indent(pp.DefaultIndent, pp.BreakableSpace().Cat(body)).Cat(pp.BreakableSpace()))
}

// nestedGroups builds a document that nests depth groups inside one
// another, exercising the engine's scope-stacking and indent-folding.
func nestedGroups(depth int) pp.Doc {
	d := pp.String("leaf", 4)
	for i := 0; i < depth; i++ {
		d = pp.Group(pp.String("(", 1).
			Cat(pp.Indent(pp.DefaultIndent, pp.Break().Cat(d))).
			Cat(pp.Break()).
			Cat(pp.String(")", 1)))
	}
	return d
}

// wideList builds a "[e0, e1, ..., en]" document — the shape that forces
// the engine to repeatedly resolve BreakableSpace hints against a single
// shared group scope.
func wideList(elems int) pp.Doc {
	items := make([]int, elems)
	for i := range items {
		items[i] = i
	}
	body := pp.ConcatMap(
		func(a, b int) pp.Doc { return pp.CommaBreakableSpace() },
		func(first int) pp.Doc { return pp.Empty() },
		func(last int) pp.Doc { return pp.TrailingComma() },
		func(final bool, item int) pp.Doc {
			s := fmt.Sprintf("item%d", item)
			return pp.String(s, len(s))
		},
		items,
	)
	return pp.ListBrackets(nil, pp.Indent(pp.DefaultIndent, pp.Break().Cat(body)).Cat(pp.Break()))
}

// RenderThroughput times rendering every document in c to a string once,
// reporting operations as "documents rendered".
func RenderThroughput(c Corpus) Result {
	return run("render-throughput", len(c.Docs), func() {
		for _, d := range c.Docs {
			_ = pp.ToString(pp.LF, c.Width, d)
		}
	})
}

// RenderBytesPerSecond times the same workload as RenderThroughput but
// counts total output bytes produced as Ops and reports the byte rate as
// Extra, since documents/sec alone does
// not capture how much larger the nested/list documents are than the
// flat-record ones.
func RenderBytesPerSecond(c Corpus) Result {
	var total int
	start := time.Now()
	for _, d := range c.Docs {
		total += len(pp.ToString(pp.LF, c.Width, d))
	}
	elapsed := time.Since(start)
	bytesPerSec := float64(total) / elapsed.Seconds()
	return Result{
		Name:     "render-bytes",
		Duration: elapsed,
		Ops:      total,
		Extra:    fmt.Sprintf("(%.0f bytes/sec)", bytesPerSec),
	}
}

// Run executes the standard suite against a corpus sized by n/branching and
// returns every Result in a fixed order.
func Run(n, branching int) []Result {
	c := NewCorpus(n, branching)
	return []Result{
		RenderThroughput(c),
		RenderBytesPerSecond(c),
	}
}
