package pp

import (
	"fmt"
	"strconv"
	"strings"
)

// DOT returns a Graphviz DOT representation of doc's tree structure,
// annotating each Group with the static information that decides its mode:
// its GroupKind, whether it carries an unenclosed GroupBreaker (which forces
// Breaking regardless of kind), and its measured flat width against
// lineWidth. It exists purely as a debugging aid alongside ToString; it
// never mutates doc and has no effect on how doc is rendered as text.
//
// Node representation:
//   - Group: box shape, labeled with its kind and whether it fits at lineWidth
//   - BreakHint, Hardline, IfBroken, Indent: ellipse shape, labeled by kind
//   - String, Blank: rounded box, labeled with their content
//   - Concat: point shape, unlabeled — purely structural
//
// Example:
//
//	d := pp.Group(pp.String("a", 1).Cat(pp.BreakableSpace()).Cat(pp.String("b", 1)))
//	dot := pp.DOT(d, 80)
//	// feed dot to Graphviz's "dot" command, or github.com/goccy/go-graphviz
func DOT(doc Doc, lineWidth int) string {
	var b strings.Builder
	b.WriteString("digraph Doc {\n")
	b.WriteString("  rankdir=TB;\n")
	b.WriteString("  bgcolor=\"transparent\";\n")
	b.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, style=filled, fillcolor=white];\n\n")

	writeDOTNode(&b, &doc, 0, lineWidth)

	b.WriteString("}\n")
	return b.String()
}

// writeDOTNode writes the DOT node for d (and its children) and returns the
// next unused id.
func writeDOTNode(b *strings.Builder, d *Doc, id, lineWidth int) int {
	nodeID := "n" + strconv.Itoa(id)
	next := id + 1

	switch d.k {
	case kindEmpty:
		fmt.Fprintf(b, "  %s [label=\"empty\", shape=point];\n", nodeID)

	case kindGroupBreaker:
		fmt.Fprintf(b, "  %s [label=\"groupBreaker\", shape=diamond];\n", nodeID)

	case kindString:
		fmt.Fprintf(b, "  %s [label=%q, shape=box, style=\"filled,rounded\"];\n", nodeID, d.str)

	case kindBlank:
		fmt.Fprintf(b, "  %s [label=\"blank(%d)\", shape=box, style=\"filled,rounded\"];\n", nodeID, d.blankCount)

	case kindHardline:
		label := "hardline"
		if d.phantom {
			label = "phantomHardline"
		}
		fmt.Fprintf(b, "  %s [label=%q, shape=ellipse];\n", nodeID, label)

	case kindBreakHint:
		fmt.Fprintf(b, "  %s [label=\"breakHint\", shape=ellipse];\n", nodeID)
		fmt.Fprintf(b, "  %s -> n%d;\n", nodeID, next)
		next = writeDOTNode(b, d.doc, next, lineWidth)

	case kindIfBroken:
		fmt.Fprintf(b, "  %s [label=\"ifBroken\", shape=ellipse];\n", nodeID)
		fmt.Fprintf(b, "  %s -> n%d [label=\"flat\"];\n", nodeID, next)
		next = writeDOTNode(b, d.doc, next, lineWidth)
		fmt.Fprintf(b, "  %s -> n%d [label=\"breaking\"];\n", nodeID, next)
		next = writeDOTNode(b, d.ifBrokenDoc, next, lineWidth)

	case kindIndent:
		fmt.Fprintf(b, "  %s [label=\"indent(%d)\", shape=ellipse];\n", nodeID, d.indentCount)
		fmt.Fprintf(b, "  %s -> n%d;\n", nodeID, next)
		next = writeDOTNode(b, d.doc, next, lineWidth)

	case kindGroup:
		fmt.Fprintf(b, "  %s [label=%q, shape=box];\n", nodeID, groupDOTLabel(d, lineWidth))
		fmt.Fprintf(b, "  %s -> n%d;\n", nodeID, next)
		next = writeDOTNode(b, d.doc, next, lineWidth)

	case kindConcat:
		fmt.Fprintf(b, "  %s [label=\"\", shape=point];\n", nodeID)
		fmt.Fprintf(b, "  %s -> n%d;\n", nodeID, next)
		next = writeDOTNode(b, d.left, next, lineWidth)
		fmt.Fprintf(b, "  %s -> n%d;\n", nodeID, next)
		next = writeDOTNode(b, d.right, next, lineWidth)
	}

	return next
}

// groupDOTLabel summarizes why a group's mode would be what it is: an
// unenclosed GroupBreaker always forces Breaking; otherwise it depends on
// the group's kind, and for Auto on whether its flat width fits lineWidth
// starting from column 0 (the most a static view can say without tracking
// the engine's running column).
func groupDOTLabel(d *Doc, lineWidth int) string {
	if hasGroupBreaker(d.doc) {
		return "group: breaking (groupBreaker)"
	}
	switch d.groupKind {
	case FitGroups:
		return "group: fitGroups"
	case FitAll:
		return "group: fitAll"
	default:
		if d.flatWidth.intValue() > lineWidth {
			return "group: auto (breaking if reached at column 0)"
		}
		return "group: auto (flat if reached at column 0)"
	}
}
