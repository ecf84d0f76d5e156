// Package docspec builds a pp.Doc from a small JSON descriptor. It exists
// only so the CLI and server have a document to render without embedding a
// real language formatter; it is a thin data format, not a syntax grammar,
// and deliberately lives under internal/ so it never becomes part of the
// public pp API.
package docspec

import (
	"encoding/json"
	"unicode/utf8"

	"github.com/relsqui/prettydoc/pkg/pp"
	"github.com/relsqui/prettydoc/pkg/pperrors"
)

// node mirrors one JSON object of a docspec document.
// Only the fields relevant to Op are populated for any given node.
type node struct {
	Op    string  `json:"op"`
	Value string  `json:"value"`
	Count int     `json:"count"`
	Kind  string  `json:"kind"`
	Width *int    `json:"width"`
	Doc   *node   `json:"doc"`
	Flat  *node   `json:"flat"`
	Break *node   `json:"breaking"`
	Left  *node   `json:"left"`
	Right *node   `json:"right"`
	Items []*node `json:"items"`
}

// Build parses raw as a docspec document and constructs the equivalent
// pp.Doc using only pp's public constructors. defaultIndent is the indent
// width used by any "indent" node that omits its own count; a value <= 0
// falls back to pp.DefaultIndent.
func Build(raw []byte, defaultIndent int) (pp.Doc, error) {
	var root node
	if err := json.Unmarshal(raw, &root); err != nil {
		return pp.Doc{}, pperrors.Wrap(pperrors.ErrCodeMalformedSpec, err, "invalid docspec JSON")
	}
	if defaultIndent <= 0 {
		defaultIndent = pp.DefaultIndent
	}
	return build(&root, defaultIndent)
}

func build(n *node, defaultIndent int) (pp.Doc, error) {
	if n == nil {
		return pp.Empty(), nil
	}

	switch n.Op {
	case "", "empty":
		return pp.Empty(), nil

	case "groupBreaker":
		return pp.GroupBreaker(), nil

	case "string":
		return pp.String(n.Value, utf8.RuneCountInString(n.Value)), nil

	case "blank":
		return pp.Blank(n.Count), nil

	case "space":
		return pp.Space(), nil

	case "hardline":
		return pp.Hardline(), nil

	case "phantomHardline":
		return pp.PhantomHardline(), nil

	case "break":
		return pp.Break(), nil

	case "breakableSpace":
		return pp.BreakableSpace(), nil

	case "breakHint":
		inner, err := build(n.Doc, defaultIndent)
		if err != nil {
			return pp.Doc{}, err
		}
		return pp.BreakHint(inner), nil

	case "ifBroken":
		breaking, err := build(n.Break, defaultIndent)
		if err != nil {
			return pp.Doc{}, err
		}
		flat, err := build(n.Flat, defaultIndent)
		if err != nil {
			return pp.Doc{}, err
		}
		return pp.IfBroken(breaking, flat), nil

	case "indent":
		inner, err := build(n.Doc, defaultIndent)
		if err != nil {
			return pp.Doc{}, err
		}
		count := n.Count
		if count == 0 {
			count = defaultIndent
		}
		return pp.Indent(count, inner), nil

	case "group":
		inner, err := build(n.Doc, defaultIndent)
		if err != nil {
			return pp.Doc{}, err
		}
		opts, err := groupOptions(n)
		if err != nil {
			return pp.Doc{}, err
		}
		return pp.Group(inner, opts...), nil

	case "concat":
		return buildConcat(n, defaultIndent)

	default:
		return pp.Doc{}, pperrors.New(pperrors.ErrCodeMalformedSpec, "unrecognized docspec op %q", n.Op)
	}
}

func groupOptions(n *node) ([]pp.GroupOption, error) {
	var opts []pp.GroupOption
	switch n.Kind {
	case "", "auto":
		// pp.Group already defaults to Auto.
	case "fitGroups":
		opts = append(opts, pp.WithGroupKind(pp.FitGroups))
	case "fitAll":
		opts = append(opts, pp.WithGroupKind(pp.FitAll))
	default:
		return nil, pperrors.New(pperrors.ErrCodeMalformedSpec, "unrecognized group kind %q", n.Kind)
	}
	if n.Width != nil {
		opts = append(opts, pp.WithPrintWidth(*n.Width))
	}
	return opts, nil
}

// buildConcat supports both the explicit binary "left"/"right" shape and the
// "items" shorthand, which folds left-to-right over Concat.
func buildConcat(n *node, defaultIndent int) (pp.Doc, error) {
	if len(n.Items) > 0 {
		result := pp.Empty()
		for _, item := range n.Items {
			d, err := build(item, defaultIndent)
			if err != nil {
				return pp.Doc{}, err
			}
			result = result.Cat(d)
		}
		return result, nil
	}

	left, err := build(n.Left, defaultIndent)
	if err != nil {
		return pp.Doc{}, err
	}
	right, err := build(n.Right, defaultIndent)
	if err != nil {
		return pp.Doc{}, err
	}
	return pp.Concat(left, right), nil
}
