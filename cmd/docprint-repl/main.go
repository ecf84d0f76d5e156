// docprint-repl is an interactive session for loading a docspec document
// and exploring how it lays out at different print widths, without
// re-invoking the docprint binary for every width.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/relsqui/prettydoc/internal/docspec"
	"github.com/relsqui/prettydoc/pkg/pp"
)

// REPL holds the state of the interactive session.
type REPL struct {
	doc    *pp.Doc
	width  int
	eol    pp.EOL
	reader *bufio.Reader
}

func main() {
	fmt.Println("docprint REPL - interactive layout preview")
	fmt.Println("Type 'help' for available commands, 'quit' to exit")
	fmt.Println()

	repl := &REPL{
		width:  80,
		eol:    pp.LF,
		reader: bufio.NewReader(os.Stdin),
	}

	for {
		fmt.Print("docprint> ")
		input, err := repl.reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nGoodbye!")
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !repl.handleCommand(input) {
			break
		}
	}
}

func (r *REPL) handleCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help":
		r.printHelp()

	case "quit", "exit":
		fmt.Println("Goodbye!")
		return false

	case "load":
		r.cmdLoad(args)

	case "literal":
		r.cmdLiteral(args)

	case "width":
		r.cmdWidth(args)

	case "eol":
		r.cmdEOL(args)

	case "render":
		r.cmdRender()

	case "tree":
		r.cmdTree()

	case "status":
		r.cmdStatus()

	default:
		fmt.Printf("Unknown command: %s. Type 'help' for available commands.\n", cmd)
	}

	return true
}

func (r *REPL) printHelp() {
	help := `
Available Commands:
--------------------

DOCUMENT:
  load <file>     Load a docspec JSON document from a file
  literal <text>  Load a single string literal as the document

LAYOUT:
  width <n>       Set the print width used by the next render
  eol lf|crlf     Set the line ending used when rendering
  render          Render the current document at the current width
  tree            Print a Graphviz DOT dump of the current document

OTHER:
  status          Show the currently loaded document's width/eol
  help            Show this help message
  quit, exit      Exit the REPL
`
	fmt.Println(help)
}

func (r *REPL) cmdLoad(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: load <file>")
		return
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Printf("Read error: %v\n", err)
		return
	}

	d, err := docspec.Build(raw, 0)
	if err != nil {
		fmt.Printf("Parse error: %v\n", err)
		return
	}

	r.doc = &d
	fmt.Printf("Loaded %s\n", args[0])
}

func (r *REPL) cmdLiteral(args []string) {
	text := strings.Join(args, " ")
	d := pp.String(text, len([]rune(text)))
	r.doc = &d
	fmt.Printf("Loaded literal of %d runes\n", len([]rune(text)))
}

func (r *REPL) cmdWidth(args []string) {
	if len(args) != 1 {
		fmt.Printf("Usage: width <n> (current: %d)\n", r.width)
		return
	}
	w, err := strconv.Atoi(args[0])
	if err != nil || w < 1 {
		fmt.Println("Width must be a positive integer")
		return
	}
	r.width = w
	fmt.Printf("Width set to %d\n", w)
}

func (r *REPL) cmdEOL(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: eol lf|crlf")
		return
	}
	switch strings.ToLower(args[0]) {
	case "lf":
		r.eol = pp.LF
	case "crlf":
		r.eol = pp.CRLF
	default:
		fmt.Println("Unknown eol mode. Use: lf or crlf")
		return
	}
	fmt.Printf("EOL set to %s\n", args[0])
}

func (r *REPL) cmdRender() {
	if !r.ensureDoc() {
		return
	}
	out := pp.ToString(r.eol, r.width, *r.doc)
	fmt.Println("Output:")
	fmt.Println("-------")
	fmt.Println(out)
	fmt.Println("-------")
}

func (r *REPL) cmdTree() {
	if !r.ensureDoc() {
		return
	}
	fmt.Println(pp.DOT(*r.doc, r.width))
}

func (r *REPL) cmdStatus() {
	if r.doc == nil {
		fmt.Println("No document loaded. Use 'load <file>' or 'literal <text>'.")
		return
	}
	eolName := "lf"
	if r.eol == pp.CRLF {
		eolName = "crlf"
	}
	fmt.Printf("Width: %d, EOL: %s\n", r.width, eolName)
}

func (r *REPL) ensureDoc() bool {
	if r.doc == nil {
		fmt.Println("No document loaded. Use 'load <file>' or 'literal <text>'.")
		return false
	}
	return true
}
