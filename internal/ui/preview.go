package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/gplgen/internal/colour"
	"github.com/jmylchreest/gplgen/internal/palette"
)

// swatchWidth is the width of a preview swatch in cells.
const swatchWidth = 8

// RenderSwatches renders a palette as one coloured block per swatch, laid
// out for w. Colour is dropped when w is not a colour terminal.
func RenderSwatches(w io.Writer, p *palette.Palette) string {
	r := lipgloss.NewRenderer(w)

	title := r.NewStyle().Bold(true).MarginBottom(1)
	triple := r.NewStyle().Faint(true)

	var b strings.Builder
	b.WriteString(title.Render(p.Name))
	b.WriteString("\n")

	for _, l := range p.Lines() {
		swatch := r.NewStyle().
			Width(swatchWidth).
			Align(lipgloss.Center).
			Background(lipgloss.Color(l.RGB.Hex())).
			Foreground(lipgloss.Color(colour.TextColour(l.RGB).Hex()))

		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			swatch.Render(l.RGB.Hex()[1:]),
			"  ",
			triple.Render(l.RGB.Triple()),
			"  ",
			l.Label,
		))
		b.WriteString("\n")
	}

	return b.String()
}
