package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"langcolor/internal/palette"
)

// Match is one resolved color ready for display.
type Match struct {
	// Name is the canonical language name; empty for raw color queries.
	Name string
	// Color is the exact RGB value from the dataset or query.
	Color palette.RGB
	// Index is the nearest xterm palette entry under the chosen metric.
	Index uint8
}

// FormatMatch renders one output line: the hex value styled in the exact
// color, the xterm index styled in the palette entry's color, then the
// language name when there is one.
func FormatMatch(r Renderer, m Match) string {
	rgbTok := r.Render(fmt.Sprintf("rgb %s", m.Color.Hex()), m.Color)
	xtermTok := r.Render(fmt.Sprintf("xterm %-3d", m.Index), palette.Colors[m.Index])

	line := rgbTok + " " + xtermTok
	if m.Name != "" {
		line += " " + m.Name
	}
	return line
}

// FormatMatches renders one line per match.
func FormatMatches(r Renderer, matches []Match) string {
	var b strings.Builder
	for _, m := range matches {
		b.WriteString(FormatMatch(r, m))
		b.WriteByte('\n')
	}
	return b.String()
}

const chartWidth = 47 // widest chart row: 12 three-digit cells, space-separated

// Chart renders the whole 256-entry palette as a labeled chart, one
// section per palette region.
func Chart(r Renderer) string {
	var b strings.Builder

	writeSection := func(title string, lo, hi, perRow int) {
		b.WriteString(centerTitle(title))
		b.WriteByte('\n')
		for i := lo; i <= hi; i++ {
			idx := uint8(i)
			cell := fmt.Sprintf("%3d", i)
			b.WriteString(r.Render(cell, palette.Colors[idx]))
			if (i-lo+1)%perRow == 0 || i == hi {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}

	writeSection("system colors (0-15)", 0, 15, 8)
	writeSection("6x6x6 color cube (16-231)", 16, 231, 12)
	writeSection("grayscale ramp (232-255)", 232, 255, 12)

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func centerTitle(title string) string {
	w := runewidth.StringWidth(title)
	if w >= chartWidth {
		return title
	}
	pad := (chartWidth - w) / 2
	return strings.Repeat(" ", pad) + title
}
