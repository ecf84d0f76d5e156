// Package pp implements a pretty-printing engine in the Wadler/Oppen
// tradition: a small document IR (Doc) together with a layout engine that
// renders the IR into text, choosing line breaks to fit a target width.
//
// # Overview
//
// Building a document is a two-step process: assemble a Doc tree with the
// constructors in constructors.go and combinators.go, then hand the root to
// Print or ToString along with a line width and end-of-line style.
//
//	d := pp.Group(
//	    pp.String("foo", 3).
//	        Cat(pp.BreakableSpace()).
//	        Cat(pp.String("bar", 3)),
//	)
//	out := pp.ToString(pp.LF, 80, d) // "foo bar"
//
// At width 5 the same document breaks:
//
//	out := pp.ToString(pp.LF, 5, d) // "foo\nbar"
//
// # Width bookkeeping
//
// Every composite node caches its own flat and breaking widths at
// construction time (see width.go, node.go), so Concat and a Group's
// fit-check are O(1) regardless of subtree size — the engine never
// re-measures a subtree while rendering.
//
// # Group kinds
//
// Auto breaks a group wholesale once its flat width would overflow the
// current line. FitGroups and FitAll instead decide each break hint
// individually by peeking at the width of whatever comes next — see
// engine.go's one-shot continuation for how that lookahead is implemented
// without extra tree walks.
//
// # Non-goals
//
// This package is domain-agnostic: it has no opinion on where output goes
// (see WriteFunc) or how a string's column width is measured (callers
// supply widths directly to String/Blank). Building a document from some
// other language's syntax tree is a concern for a caller layered on top,
// not for this package.
package pp
