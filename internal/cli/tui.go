package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/relsqui/prettydoc/internal/docspec"
	"github.com/relsqui/prettydoc/pkg/pp"
)

// tuiCommand creates the tui command.
func (c *CLI) tuiCommand() *cobra.Command {
	var startWidth int

	cmd := &cobra.Command{
		Use:   "tui [file|-]",
		Short: "Interactively preview a document across print widths",
		Long: `Tui loads a docspec document once and re-renders it live as you widen or
narrow the print width, so you can see exactly where each group's break
decision flips.`,
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

			m := NewPreviewModel(d, startWidth)
			p := tea.NewProgram(m)
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().IntVarP(&startWidth, "width", "w", 80, "starting print width")

	return cmd
}

// =============================================================================
// PreviewModel - Live width preview
// =============================================================================

var (
	previewRulerStyle = lipgloss.NewStyle().Foreground(colorDim)
	previewHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
)

// PreviewModel is the bubbletea model backing the tui command. It holds the
// parsed document once and re-renders it from scratch on every width
// change; re-layout is cheap enough (a single tree walk) that there is no
// need to cache intermediate state.
type PreviewModel struct {
	Doc   pp.Doc
	Width int
}

// NewPreviewModel creates a preview model starting at the given width.
func NewPreviewModel(doc pp.Doc, width int) PreviewModel {
	if width < 1 {
		width = 1
	}
	return PreviewModel{Doc: doc, Width: width}
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.Width = clampWidth(m.Width - 1)
		case "right", "l":
			m.Width = clampWidth(m.Width + 1)
		case "shift+left", "H":
			m.Width = clampWidth(m.Width - 10)
		case "shift+right", "L":
			m.Width = clampWidth(m.Width + 10)
		}
	}
	return m, nil
}

func clampWidth(w int) int {
	if w < 1 {
		return 1
	}
	return w
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Layout Preview"))
	b.WriteString("  ")
	b.WriteString(StyleHighlight.Render(fmt.Sprintf("width=%d", m.Width)))
	b.WriteString("\n")
	b.WriteString(previewHelpStyle.Render("←/→ ±1  shift+←/→ ±10  q quit"))
	b.WriteString("\n\n")

	b.WriteString(previewRulerStyle.Render(ruler(m.Width)))
	b.WriteString("\n")
	b.WriteString(pp.ToString(pp.LF, m.Width, m.Doc))
	b.WriteString("\n")

	return b.String()
}

// ruler draws a column guide "....5....10...15" up to width columns, so
// where a line wraps is visible at a glance.
func ruler(width int) string {
	var b strings.Builder
	for i := 1; i <= width; i++ {
		if i%5 == 0 {
			s := fmt.Sprintf("%d", i)
			b.WriteString(s)
			i += len(s) - 1
		} else {
			b.WriteString(".")
		}
	}
	return b.String()
}
