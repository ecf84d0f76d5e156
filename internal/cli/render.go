package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/relsqui/prettydoc/internal/docspec"
	"github.com/relsqui/prettydoc/pkg/pp"
	"github.com/relsqui/prettydoc/pkg/ppcache"
	"github.com/relsqui/prettydoc/pkg/pperrors"
)

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var width int
	var eol string
	var indent int
	var output string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a docspec document to text at a target width",
		Long: `Render reads a docspec JSON document from a file (or stdin, when the
argument is "-" or omitted) and lays it out at the requested print width.
--width, --eol, and --indent default to the loaded config's values when left
unset.`,
		Example: `  docprint render doc.json --width 80
  cat doc.json | docprint render --width 100 -o out.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)

			if !cmd.Flags().Changed("width") && cfg.DefaultWidth != 0 {
				width = cfg.DefaultWidth
			}
			if !cmd.Flags().Changed("eol") && cfg.DefaultEOL != "" {
				eol = cfg.DefaultEOL
			}
			if !cmd.Flags().Changed("indent") && cfg.DefaultIndent != 0 {
				indent = cfg.DefaultIndent
			}

			path := "-"
			if len(args) == 1 {
				path = args[0]
			}

			eolValue, err := parseEOL(eol)
			if err != nil {
				return err
			}
			if err := pperrors.ValidateWidth(width); err != nil {
				return err
			}
			if err := pperrors.ValidateIndent(indent); err != nil {
				return err
			}

			raw, err := readInput(path)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			logger := loggerFromContext(ctx)
			spinner := newSpinnerWithContext(ctx, "Rendering...")
			spinner.Start()

			cacheBackend, err := newCache(cfg, noCache)
			if err != nil {
				spinner.Stop()
				return fmt.Errorf("open cache: %w", err)
			}
			defer cacheBackend.Close()

			coalescer := ppcache.NewCoalescingCache(cacheBackend)
			docHash := ppcache.Hash(raw)
			key := ppcache.RenderKey(docHash, width, eolValue)

			cached := true
			text, err := coalescer.GetOrRender(ctx, key, func(ctx context.Context) ([]byte, error) {
				cached = false
				d, err := docspec.Build(raw, indent)
				if err != nil {
					return nil, err
				}
				return []byte(pp.ToString(eolValue, width, d)), nil
			})
			if err != nil {
				spinner.StopWithError(err.Error())
				return err
			}
			spinner.Stop()

			if err := writeOutput(output, text); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			logger.Debugf("rendered %d bytes (cached=%v)", len(text), cached)
			printStats(lineCount(text), len(text), cached)
			if output != "" {
				printFile(output)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 80, "target print width")
	cmd.Flags().StringVar(&eol, "eol", "lf", "line ending: lf or crlf")
	cmd.Flags().IntVar(&indent, "indent", pp.DefaultIndent, "indent width for docspec \"indent\" nodes that omit their own count")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the render cache")

	return cmd
}

// parseEOL maps a CLI --eol flag value onto pp.EOL.
func parseEOL(s string) (pp.EOL, error) {
	if err := pperrors.ValidateEOL(s); err != nil {
		return 0, err
	}
	switch s {
	case "", "lf", "LF":
		return pp.LF, nil
	default:
		return pp.CRLF, nil
	}
}

// readInput reads path, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// writeOutput writes data to path, or stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// lineCount counts the number of lines in b, counting a final partial line.
func lineCount(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	n := 1
	for _, r := range b {
		if r == '\n' {
			n++
		}
	}
	return n
}
