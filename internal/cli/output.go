package cli

import (
	"io"
	"os"

	"github.com/aretw0/decaytable/internal/presentation/tui"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// PaletteFor colors output to terminals and leaves pipes and files plain.
func PaletteFor(w io.Writer, noColor bool) tui.Palette {
	if noColor || !IsTerminal(w) {
		return tui.NewPalette(termenv.Ascii)
	}
	return tui.NewPalette(termenv.EnvColorProfile())
}

// MarkdownStyle picks the glamour style for w.
func MarkdownStyle(w io.Writer, noColor bool) string {
	if noColor || !IsTerminal(w) {
		return "notty"
	}
	return ""
}
