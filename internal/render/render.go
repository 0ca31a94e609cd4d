// Package render turns resolved colors into styled terminal output.
//
// Rendering adapts to what the terminal can do: truecolor terminals get
// the exact RGB value, 256-color terminals get the nearest palette
// index, and everything else (including NO_COLOR) gets plain text. The
// capability is detected once at startup and fixed for the process.
package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"langcolor/internal/palette"
	"langcolor/pkg/logging"
)

// Renderer styles a piece of text with a foreground color, degrading
// to whatever the terminal supports.
type Renderer interface {
	Render(text string, c palette.RGB) string
}

// DetectProfile picks the terminal profile from the environment.
// noColor forces plain output regardless of the environment.
func DetectProfile(noColor bool) termenv.Profile {
	if noColor {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// NewRenderer returns the renderer for a terminal profile. The global
// lipgloss profile is pinned to the same value so styles are not
// downsampled a second time.
func NewRenderer(profile termenv.Profile) Renderer {
	lipgloss.SetColorProfile(profile)
	switch profile {
	case termenv.TrueColor:
		logging.Debug("Render", "Using truecolor renderer")
		return &trueColorRenderer{}
	case termenv.ANSI256, termenv.ANSI:
		logging.Debug("Render", "Using 256-color renderer")
		return &indexedRenderer{}
	default:
		logging.Debug("Render", "Using plain renderer")
		return &plainRenderer{}
	}
}

// trueColorRenderer emits the exact RGB value.
type trueColorRenderer struct{}

func (r *trueColorRenderer) Render(text string, c palette.RGB) string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Hex())).Render(text)
}

// indexedRenderer substitutes the nearest xterm palette entry, so the
// styled text shows the same color the xterm index column reports.
type indexedRenderer struct{}

func (r *indexedRenderer) Render(text string, c palette.RGB) string {
	idx := palette.Nearest(c)
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(strconv.Itoa(int(idx)))).Render(text)
}

// plainRenderer leaves text untouched.
type plainRenderer struct{}

func (r *plainRenderer) Render(text string, c palette.RGB) string {
	return text
}
