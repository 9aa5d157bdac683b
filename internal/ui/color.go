package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	definedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	undefinedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	keywordStyle   = lipgloss.NewStyle().Faint(true)
)

func KeywordLine(w io.Writer, keyword string, count int) {
	fmt.Fprintf(w, "  %s %d\n", keywordStyle.Render(keyword+":"), count)
}

func DefinedLine(w io.Writer, count int) {
	fmt.Fprintln(w, definedStyle.Render("definitions")+fmt.Sprintf("  %d", count))
}

func UndefinedLine(w io.Writer, count int) {
	if count == 0 {
		fmt.Fprintln(w, definedStyle.Render("undefined")+"    0")
		return
	}
	fmt.Fprintln(w, undefinedStyle.Render("undefined")+fmt.Sprintf("    %d", count))
}

func SnapshotLine(w io.Writer, path string, scanID int64, defs, undefined int) {
	fmt.Fprintf(w, "snapshot %d saved to %s (%d definitions, %d undefined)\n", scanID, path, defs, undefined)
}
