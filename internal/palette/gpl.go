package palette

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jmylchreest/gplgen/internal/colour"
)

// Header lines of every generated palette file, around the name line.
const (
	formatTag    = "GIMP Palette"
	commentBlock = "#\n# Generated with gplgen\n#\n"
)

// Line is one swatch of a GIMP palette.
type Line struct {
	RGB   colour.RGB
	Label string
}

// String formats the swatch as "R G B  Label" with 3-wide channel columns.
func (l Line) String() string {
	return l.RGB.Triple() + "  " + l.Label
}

// DefaultGrays are the built-in grayscale swatches, in output order.
var DefaultGrays = []Line{
	{RGB: gray(0), Label: "Black"},
	{RGB: gray(26), Label: "90% Gray"},
	{RGB: gray(51), Label: "80% Gray"},
	{RGB: gray(77), Label: "70% Gray"},
	{RGB: gray(102), Label: "60% Gray"},
	{RGB: gray(128), Label: "50% Gray"},
	{RGB: gray(153), Label: "40% Gray"},
	{RGB: gray(179), Label: "30% Gray"},
	{RGB: gray(204), Label: "20% Gray"},
	{RGB: gray(230), Label: "10% Gray"},
	{RGB: gray(236), Label: "7.5% Gray"},
	{RGB: gray(242), Label: "5% Gray"},
	{RGB: gray(249), Label: "2.5% Gray"},
	{RGB: gray(255), Label: "White"},
}

func gray(v uint8) colour.RGB {
	return colour.RGB{R: v, G: v, B: v}
}

// Palette is a generated GIMP palette.
type Palette struct {
	Name string
	// Defaults holds the grayscale swatches, empty unless requested.
	Defaults []Line
	// Swatches holds the selected colours in their resolved order.
	Swatches []Line
}

// Lines returns the swatches in file order: defaults first, then every
// selected swatch whose RGB triple is not already a default.
func (p *Palette) Lines() []Line {
	taken := make(map[colour.RGB]bool, len(p.Defaults))
	lines := make([]Line, 0, len(p.Defaults)+len(p.Swatches))
	for _, l := range p.Defaults {
		taken[l.RGB] = true
		lines = append(lines, l)
	}
	for _, l := range p.Swatches {
		if taken[l.RGB] {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// WriteTo writes the palette in GIMP Palette format.
func (p *Palette) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString(formatTag + "\n")
	fmt.Fprintf(&buf, "Name: %s\n", p.Name)
	buf.WriteString(commentBlock)
	for _, l := range p.Lines() {
		buf.WriteString(l.String())
		buf.WriteByte('\n')
	}
	return buf.WriteTo(w)
}

// Bytes returns the encoded palette file.
func (p *Palette) Bytes() []byte {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer do not fail.
	_, _ = p.WriteTo(&buf)
	return buf.Bytes()
}
