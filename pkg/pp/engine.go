package pp

import "strings"

// EOL selects the newline sequence emitted for every line break.
type EOL int

const (
	// LF emits "\n".
	LF EOL = iota
	// CRLF emits "\r\n".
	CRLF
)

func (e EOL) string() string {
	if e == CRLF {
		return "\r\n"
	}
	return "\n"
}

// WriteFunc receives successive output chunks; concatenating every chunk
// passed to it, in order, reconstructs the full rendered output.
type WriteFunc func(chunk string)

// mode is the internal render mode of a group scope, derived from its
// GroupKind (or forced to Breaking by a GroupBreaker) when the scope is
// entered.
type mode int

const (
	modeFlat mode = iota
	modeBreaking
	modeFitFlat
	modeFitBreaking
)

// groupScope is the small mutable record the engine threads through
// rendering. Nested groups each get a fresh instance; it is always passed
// by pointer so mutations to broken/indent counters are visible within the
// scope and nowhere else.
type groupScope struct {
	mode          mode
	globalIndent  int
	localIndent   int
	broken        bool
}

// sentinelEmpty stands in for "no next node" when a pending continuation
// reaches the end of the document with nothing left to consume it.
var sentinelEmpty = Doc{k: kindEmpty, flatWidth: withoutBreak(0), breakingWidth: withoutBreak(0)}

// continuation is the one-shot callback a FitFlat/FitBreaking BreakHint
// installs to peek at the width of the very next node the engine
// encounters. At most one is ever pending.
type continuation func(next *Doc)

// engine holds per-render state. A fresh engine is created for every
// Print/ToString call, so concurrent renders of a shared (immutable) Doc
// tree never interact.
type engine struct {
	write WriteFunc
	eol   string
	width int

	column     int
	writeQueue string
	hasQueued  bool
	pending    continuation
}

// Print renders doc, calling write for each output chunk, using eol for
// every newline and attempting to keep output within lineWidth columns.
func Print(write WriteFunc, eol EOL, lineWidth int, doc Doc) {
	e := &engine{write: write, eol: eol.string(), width: lineWidth}
	scope := &groupScope{}
	e.render(&doc, scope)
	// A fit-mode BreakHint with nothing after it in the traversal still
	// needs its continuation resolved; there is no real "next" node, so it
	// is resolved against a zero-width stand-in (never overflows).
	e.consumePending(&sentinelEmpty)
}

// ToString renders doc into a single string using the same rules as Print.
func ToString(eol EOL, lineWidth int, doc Doc) string {
	var b strings.Builder
	Print(func(chunk string) { b.WriteString(chunk) }, eol, lineWidth, doc)
	return b.String()
}

// flushQueue emits any pending indentation immediately before writing
// non-whitespace output. Because indentation is only ever flushed here, a
// break followed immediately by another break emits a truly empty line —
// the pending spaces are simply discarded by the next break's own reset.
func (e *engine) flushQueue() {
	if e.hasQueued {
		e.write(e.writeQueue)
		e.writeQueue = ""
		e.hasQueued = false
	}
}

// emitWrite is the common path for String/Blank leaves: flush pending
// indentation, write the literal content, advance column.
func (e *engine) emitWrite(s string, width int) {
	e.flushQueue()
	if s != "" {
		e.write(s)
	}
	e.column += width
}

// emitBreak performs the shared bookkeeping for any line break taken inside
// scope: fold localIndent into globalIndent (only the first break in a
// scope does the folding; subsequent breaks continue at the same depth),
// write the EOL, and queue the new indentation.
func (e *engine) emitBreak(scope *groupScope) {
	scope.broken = true
	scope.globalIndent += scope.localIndent
	scope.localIndent = 0
	e.write(e.eol)
	e.writeQueue = strings.Repeat(" ", scope.globalIndent)
	e.hasQueued = scope.globalIndent > 0
	e.column = scope.globalIndent
}

// consumePending invokes any pending fit-mode continuation with node as the
// "next sibling" lookahead, then clears it. At most one continuation is
// ever pending; it is always consumed by the very next node the engine
// sees.
func (e *engine) consumePending(node *Doc) {
	if e.pending != nil {
		k := e.pending
		e.pending = nil
		k(node)
	}
}

// render walks d in strict pre-order under scope, which is the innermost
// enclosing group's mutable state.
func (e *engine) render(d *Doc, scope *groupScope) {
	e.consumePending(d)

	switch d.k {
	case kindEmpty, kindGroupBreaker:
		// No output.

	case kindString:
		e.emitWrite(d.str, d.flatWidth.intValue())

	case kindBlank:
		e.emitWrite(strings.Repeat(" ", d.blankCount), d.blankCount)

	case kindConcat:
		e.render(d.left, scope)
		e.render(d.right, scope)

	case kindIndent:
		savedGlobal, savedLocal := scope.globalIndent, scope.localIndent
		scope.localIndent += d.indentCount
		e.render(d.doc, scope)
		scope.globalIndent, scope.localIndent = savedGlobal, savedLocal

	case kindHardline:
		// d.phantom affects only the precomputed widths, never emission:
		// a Hardline always writes a real newline here.
		e.emitBreak(scope)

	case kindIfBroken:
		if scope.broken {
			e.render(d.ifBrokenDoc, scope)
		} else {
			e.render(d.doc, scope)
		}

	case kindBreakHint:
		e.renderBreakHint(d, scope)

	case kindGroup:
		e.renderGroup(d, scope)
	}
}

// renderBreakHint is the heart of the algorithm.
func (e *engine) renderBreakHint(d *Doc, scope *groupScope) {
	switch scope.mode {
	case modeFlat:
		e.render(d.doc, scope)

	case modeBreaking:
		e.emitBreak(scope)

	case modeFitFlat:
		flatW := d.flatWidth.intValue()
		col := e.column
		e.pending = func(next *Doc) {
			nextW := flatWidthOf(next).intValue()
			if col+flatW+nextW > e.width {
				e.emitBreak(scope)
			} else {
				e.render(d.doc, scope)
			}
		}

	case modeFitBreaking:
		flatW := d.flatWidth.intValue()
		col := e.column
		e.pending = func(next *Doc) {
			nextW := breakingWidthOf(next).intValue()
			if col+flatW+nextW > e.width {
				e.emitBreak(scope)
			} else {
				e.render(d.doc, scope)
			}
		}
	}
}

// renderGroup enters a fresh scope for d and recurses into its child.
func (e *engine) renderGroup(d *Doc, outer *groupScope) {
	inner := &groupScope{globalIndent: outer.globalIndent}

	switch {
	case hasGroupBreaker(d.doc):
		inner.mode = modeBreaking
		inner.broken = true
	case d.groupKind == Auto:
		if e.column+d.flatWidth.intValue() > e.width {
			// A breaking Auto group is broken from its start, so every
			// IfBroken inside it sees the same value.
			inner.mode = modeBreaking
			inner.broken = true
		} else {
			inner.mode = modeFlat
		}
	case d.groupKind == FitGroups:
		inner.mode = modeFitFlat
	case d.groupKind == FitAll:
		inner.mode = modeFitBreaking
	}

	e.render(d.doc, inner)
}
