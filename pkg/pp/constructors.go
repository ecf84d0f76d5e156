package pp

// Empty returns the zero-width, zero-output document. It is the identity
// element for Concat: concatenating it onto either side of a document
// renders identically to the document alone.
func Empty() Doc {
	return Doc{k: kindEmpty, flatWidth: withoutBreak(0), breakingWidth: withoutBreak(0)}
}

// GroupBreaker marks its position so that any enclosing Group (not already
// inside a nested Group) is forced into Breaking mode. It produces no
// output of its own.
func GroupBreaker() Doc {
	return Doc{
		k:             kindGroupBreaker,
		flatWidth:     withoutBreak(0),
		breakingWidth: withoutBreak(0),
		hasBreaker:    true,
	}
}

// String wraps s for literal emission. width is the caller-supplied column
// count — the caller is responsible for counting user-visible columns
// (unicode-aware); this package only ever stores the precomputed value.
func String(s string, width int) Doc {
	w := withoutBreak(width)
	return Doc{k: kindString, str: s, flatWidth: w, breakingWidth: w}
}

// Blank emits count literal spaces. Negative counts are treated as zero.
func Blank(count int) Doc {
	if count < 0 {
		count = 0
	}
	w := withoutBreak(count)
	return Doc{k: kindBlank, blankCount: count, flatWidth: w, breakingWidth: w}
}

// Space is a single blank column.
func Space() Doc {
	return Blank(1)
}

// Hardline always emits a newline. It acts as a break terminator for width
// accounting: the cached width is WithBreak(0), so anything concatenated to
// its right does not extend it.
func Hardline() Doc {
	w := withBreak(0)
	return Doc{k: kindHardline, phantom: false, flatWidth: w, breakingWidth: w}
}

// PhantomHardline always emits a newline but is measured as zero-width
// WithoutBreak — it does not terminate width accounting the way Hardline
// does.
func PhantomHardline() Doc {
	w := withoutBreak(0)
	return Doc{k: kindHardline, phantom: true, flatWidth: w, breakingWidth: w}
}

// BreakHint marks a candidate break location. When its enclosing group does
// not take the break, doc is emitted in its place.
func BreakHint(doc Doc) Doc {
	d := doc
	return Doc{
		k:             kindBreakHint,
		doc:           &d,
		flatWidth:     flatWidthOf(&d),
		breakingWidth: withBreak(0),
	}
}

// Break is a break hint with no flat fallback.
func Break() Doc {
	return BreakHint(Empty())
}

// BreakableSpace is a break hint that falls back to a single space when not
// broken.
func BreakableSpace() Doc {
	return BreakHint(Space())
}

// IfBroken renders breaking when its enclosing group is broken, or flat
// otherwise. A group forced by a GroupBreaker, or an Auto group that does not
// fit, is broken from its start; a FitGroups/FitAll group (and the top level)
// only once a break has been taken before this node is reached.
func IfBroken(breaking, flat Doc) Doc {
	b, f := breaking, flat
	return Doc{
		k:             kindIfBroken,
		doc:           &f,
		ifBrokenDoc:   &b,
		flatWidth:     flatWidthOf(&f),
		breakingWidth: breakingWidthOf(&b),
		hasBreaker:    false,
	}
}

// Indent increases pending indentation by count for any newline emitted
// while rendering doc. The extra indentation only materializes on a break
// taken inside doc's own rendering — an enclosing group that ends up
// staying flat never pays for it.
func Indent(count int, doc Doc) Doc {
	if count < 0 {
		count = 0
	}
	d := doc
	return Doc{
		k:             kindIndent,
		indentCount:   count,
		doc:           &d,
		flatWidth:     flatWidthOf(&d),
		breakingWidth: breakingWidthOf(&d),
		hasBreaker:    hasGroupBreaker(&d),
	}
}

// DefaultIndent is the conventional indent width for callers that do not
// choose their own count.
const DefaultIndent = 2

// GroupOption configures Group.
type GroupOption func(*groupOptions)

type groupOptions struct {
	kind          GroupKind
	hasPrintWidth bool
	printWidth    int
}

// WithGroupKind overrides the default Auto group kind.
func WithGroupKind(k GroupKind) GroupOption {
	return func(o *groupOptions) { o.kind = k }
}

// WithPrintWidth overrides the group's measured width. This is useful when
// doc contains hardlines that would otherwise truncate the natural
// measurement: the override lets the caller state how wide the group
// "really" is for the purpose of an enclosing Auto/Fit decision.
func WithPrintWidth(w int) GroupOption {
	return func(o *groupOptions) {
		o.hasPrintWidth = true
		o.printWidth = w
	}
}

// Group opens a new layout scope with its own break-mode decision. Without
// options it defaults to GroupKind Auto and measures its natural width from
// doc.
func Group(doc Doc, opts ...GroupOption) Doc {
	o := groupOptions{kind: Auto}
	for _, opt := range opts {
		opt(&o)
	}

	d := doc
	g := Doc{
		k:             kindGroup,
		doc:           &d,
		groupKind:     o.kind,
		hasPrintWidth: o.hasPrintWidth,
		// hasBreaker resets at a Group boundary: a nested group absorbs its
		// own breakers, so the Group node itself never
		// propagates one outward.
		hasBreaker: false,
	}

	if o.hasPrintWidth {
		w := withoutBreak(o.printWidth)
		g.flatWidth = w
		g.breakingWidth = w
	} else {
		g.flatWidth = flatWidthOf(&d)
		g.breakingWidth = breakingWidthOf(&d)
	}

	return g
}

// Concat composes left then right. If either side's subtree contains an
// unenclosed GroupBreaker, flatWidth is set equal to breakingWidth (the
// enclosing group will certainly break, so the flat measurement is moot).
func Concat(left, right Doc) Doc {
	l, r := left, right
	breaker := hasGroupBreaker(&l) || hasGroupBreaker(&r)

	c := Doc{
		k:             kindConcat,
		left:          &l,
		right:         &r,
		breakingWidth: addWidths(breakingWidthOf(&l), breakingWidthOf(&r)),
		hasBreaker:    breaker,
	}
	if breaker {
		c.flatWidth = c.breakingWidth
	} else {
		c.flatWidth = addWidths(flatWidthOf(&l), flatWidthOf(&r))
	}
	return c
}

// Cat is Concat as a method, standing in for the infix "++" operator the
// source notation uses: d.Cat(next) reads left-to-right the same way a
// chain of ++ would.
func (d Doc) Cat(other Doc) Doc {
	return Concat(d, other)
}
