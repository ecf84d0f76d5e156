package cli

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/spf13/cobra"

	"github.com/relsqui/prettydoc/internal/docspec"
	"github.com/relsqui/prettydoc/pkg/pp"
)

// treeCommand creates the tree command, a debug tool that renders a
// docspec document's structure as a graph instead of laying it out as text.
func (c *CLI) treeCommand() *cobra.Command {
	var output string
	var width int

	cmd := &cobra.Command{
		Use:   "tree [file|-]",
		Short: "Render a docspec document's tree structure as an SVG (debug tool)",
		Long: `Tree parses a docspec document the same way render would, but emits a
graph of its nodes instead of laying it out as text. Each Group is labeled
with the mode it would resolve to at the given width, which makes it useful
for understanding why a document broke where it did.`,
		Example: `  docprint tree doc.json -o tree.svg
  cat doc.json | docprint tree --width 40 -o tree.svg`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}

			raw, err := readInput(path)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			d, err := docspec.Build(raw, 0)
			if err != nil {
				return fmt.Errorf("build document: %w", err)
			}

			dot := pp.DOT(d, width)

			svg, err := renderDOT(cmd.Context(), dot)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}

			if err := writeOutput(output, svg); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			printSuccess("Tree rendered")
			printKeyValue("Width", fmt.Sprintf("%d", width))
			if output != "" {
				printFile(output)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().IntVarP(&width, "width", "w", 80, "print width used to annotate group modes")

	return cmd
}

// renderDOT converts a Graphviz DOT description into an SVG image.
func renderDOT(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	graph, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer graph.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
