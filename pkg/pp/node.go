package pp

// kind tags the variant a Doc node holds. Doc is a single recursive struct
// rather than an interface hierarchy — the same shape the PQ-tree node used
// for its own recursive algebra — so that every composite node's cached
// widths live next to its children with no extra indirection.
type kind int

const (
	kindEmpty kind = iota
	kindGroupBreaker
	kindString
	kindBlank
	kindBreakHint
	kindHardline
	kindIfBroken
	kindIndent
	kindGroup
	kindConcat
)

// GroupKind selects how a Group's break hints are decided when the group
// does not already carry a GroupBreaker.
type GroupKind int

const (
	// Auto breaks the whole group if its flat width would overflow the
	// current line, otherwise stays flat.
	Auto GroupKind = iota
	// FitGroups (FitFlat internally) decides each break hint individually by
	// comparing against the next node's flat width.
	FitGroups
	// FitAll (FitBreaking internally) decides each break hint individually by
	// comparing against the next node's breaking width.
	FitAll
)

// Doc is an immutable node in the document tree. Values are built bottom-up
// by the constructors in this package and never mutated afterward; the zero
// Doc is not a valid document (use Empty()).
type Doc struct {
	k kind

	// kindString
	str string

	// kindBlank
	blankCount int

	// kindHardline
	phantom bool

	// kindBreakHint: doc is the fallback when the hint is not taken.
	// kindIfBroken: doc holds the "flat" alternative, ifBrokenDoc the
	// "breaking" alternative.
	// kindIndent, kindGroup: doc holds the child.
	// kindConcat: left and right hold the children.
	doc        *Doc
	ifBrokenDoc *Doc
	left, right *Doc

	// kindIndent
	indentCount int

	// kindGroup
	groupKind       GroupKind
	hasPrintWidth   bool

	// Cached widths, set by every constructor. For String, Blank, Hardline,
	// Empty and GroupBreaker breakingWidth mirrors flatWidth; BreakHint's
	// breakingWidth is WithBreak(0); composite nodes (Indent, Group,
	// IfBroken, Concat) cache both independently.
	flatWidth     Width
	breakingWidth Width

	// hasBreaker is true iff the subtree contains a GroupBreaker not
	// enclosed by a nested Group. Only Concat and Indent
	// propagate it from children; Group always resets it to false for
	// nodes outside itself.
	hasBreaker bool
}

// hasGroupBreaker reports whether d's subtree forces its enclosing group
// into Breaking mode.
func hasGroupBreaker(d *Doc) bool {
	if d == nil {
		return false
	}
	return d.hasBreaker
}

// flatWidthOf and breakingWidthOf read the two cached widths uniformly; a
// nil node reads as zero width.
func flatWidthOf(d *Doc) Width {
	if d == nil {
		return withoutBreak(0)
	}
	return d.flatWidth
}

func breakingWidthOf(d *Doc) Width {
	if d == nil {
		return withoutBreak(0)
	}
	return d.breakingWidth
}
