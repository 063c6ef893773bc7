package cmd

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/msto63/textkit/pkg/core/config"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// theme holds the styles of one output stream
type theme struct {
	renderer *lipgloss.Renderer

	Header lipgloss.Style
	Cell   lipgloss.Style
	Border lipgloss.Style
	OK     lipgloss.Style
	Fail   lipgloss.Style
	Muted  lipgloss.Style
	Window lipgloss.Style
}

// newTheme creates styles for w. With color disabled every style renders
// plain text.
func newTheme(w io.Writer, mode string) theme {
	r := lipgloss.NewRenderer(w)
	if useColor(w, mode) {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return theme{
		renderer: r,
		Header:   r.NewStyle().Bold(true).Foreground(colorPrimary).Padding(0, 1),
		Cell:     r.NewStyle().Padding(0, 1),
		Border:   r.NewStyle().Foreground(colorMuted),
		OK:       r.NewStyle().Foreground(colorSecondary),
		Fail:     r.NewStyle().Foreground(colorError).Bold(true),
		Muted:    r.NewStyle().Foreground(colorMuted).Italic(true),
		Window:   r.NewStyle().Foreground(colorAccent).Bold(true),
	}
}

// useColor decides whether w gets ANSI colors. auto means: w is a terminal
// and NO_COLOR is unset.
func useColor(w io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
