package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vvka-141/pathseq/internal/files/candidate"
)

// Color palette - keeping it minimal and accessible.
var (
	colorDirectory = lipgloss.Color("39")  // Blue
	colorHidden    = lipgloss.Color("240") // Dark gray
)

var (
	directoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorDirectory)

	hiddenStyle = lipgloss.NewStyle().
			Foreground(colorHidden)
)

// stylesEnabled reports whether w is a terminal that should receive styled output.
func stylesEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// styleEntry renders a listing line according to the candidate's kind.
func styleEntry(ctx *candidate.Context, line string) string {
	switch {
	case ctx.IsDirectory():
		return directoryStyle.Render(line)
	case ctx.Hidden():
		return hiddenStyle.Render(line)
	default:
		return line
	}
}
