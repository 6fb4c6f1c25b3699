package render

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI escape sequences used by the console table.
const (
	ansiReset        = "\x1b[0m"
	ansiBrightRed    = "\x1b[1;31m"
	ansiLightGreen   = "\x1b[92m"
	ansiLightMagenta = "\x1b[95m"
	ansiWhite        = "\x1b[37m"
)

// Style controls console decoration.
type Style struct {
	Color bool
}

// ColorEnabled resolves a color mode ("auto", "always", "never") for w.
// In auto mode color is used only when w is a terminal and NO_COLOR is unset.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (s Style) paint(code, text string) string {
	if !s.Color {
		return text
	}
	return code + text + ansiReset
}

func (s Style) heading(text string) string { return s.paint(ansiBrightRed, text) }
func (s Style) method(text string) string  { return s.paint(ansiLightGreen, text) }
func (s Style) value(text string) string   { return s.paint(ansiLightMagenta, text) }
func (s Style) plain(text string) string   { return s.paint(ansiWhite, text) }
