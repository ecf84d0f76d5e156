package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relsqui/prettydoc/pkg/ppbench"
)

// benchCommand creates the bench command.
func (c *CLI) benchCommand() *cobra.Command {
	var docs int
	var branching int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure layout throughput against a synthetic document corpus",
		Long: `Bench builds a synthetic corpus of flat records, nested groups, and wide
lists, then reports how fast the layout engine renders it. It is a rough
guide for comparing builds, not a substitute for profiling a real workload.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			printInfo("Building corpus (%d x 3 documents, branching %d)", docs, branching)
			results := ppbench.Run(docs, branching)
			printNewline()
			for _, r := range results {
				fmt.Fprintln(cmd.OutOrStdout(), r.String())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&docs, "docs", "n", 200, "number of documents of each shape to generate")
	cmd.Flags().IntVarP(&branching, "branching", "b", 8, "branching factor controlling nesting depth / list width")

	return cmd
}
