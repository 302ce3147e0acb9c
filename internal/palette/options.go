// Package palette builds GIMP palettes from the colours of selected document
// objects and writes them to the Inkscape palette directory.
package palette

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*Property)(nil)
	_ pflag.Value = (*SortMode)(nil)
)

// Property selects which style properties colours are read from.
type Property string

const (
	// PropertyFill reads the fill property only.
	PropertyFill Property = "fill"
	// PropertyStroke reads the stroke property only.
	PropertyStroke Property = "stroke"
	// PropertyBoth reads fill, then stroke.
	PropertyBoth Property = "both"
)

// Names returns the style property names to read, in reading order.
func (p Property) Names() []string {
	switch p {
	case PropertyFill:
		return []string{"fill"}
	case PropertyStroke:
		return []string{"stroke"}
	default:
		return []string{"fill", "stroke"}
	}
}

// String implements pflag.Value.
func (p *Property) String() string {
	return string(*p)
}

// Set implements pflag.Value.
func (p *Property) Set(v string) error {
	switch Property(strings.ToLower(v)) {
	case PropertyFill, PropertyStroke, PropertyBoth:
		*p = Property(strings.ToLower(v))
		return nil
	default:
		return fmt.Errorf("invalid property %q (valid: fill, stroke, both)", v)
	}
}

// Type implements pflag.Value.
func (p *Property) Type() string {
	return "property"
}

// SortMode selects the order of the selected swatches.
type SortMode string

const (
	// SortIndex keeps the selection order.
	SortIndex SortMode = "index"
	// SortXLocation orders by bounding box centre x, then centre y.
	SortXLocation SortMode = "x_location"
	// SortYLocation orders by bounding box centre y, then centre x.
	SortYLocation SortMode = "y_location"
	// SortRGB orders the formatted swatches by their RGB key.
	SortRGB SortMode = "rgb"
	// SortHSL orders the formatted swatches by their HSL key.
	SortHSL SortMode = "hsl"
)

// sortsLines reports whether the mode sorts swatch lines after formatting.
func (m SortMode) sortsLines() bool {
	return m == SortRGB || m == SortHSL
}

// String implements pflag.Value.
func (m *SortMode) String() string {
	return string(*m)
}

// Set implements pflag.Value. "none" is accepted as an alias of "index".
func (m *SortMode) Set(v string) error {
	mode := SortMode(strings.ToLower(v))
	switch mode {
	case "none":
		*m = SortIndex
		return nil
	case SortIndex, SortXLocation, SortYLocation, SortRGB, SortHSL:
		*m = mode
		return nil
	default:
		return fmt.Errorf("invalid sort mode %q (valid: index, x_location, y_location, rgb, hsl)", v)
	}
}

// Type implements pflag.Value.
func (m *SortMode) Type() string {
	return "sort"
}

// Options controls palette generation.
type Options struct {
	// Name is the palette name written to the header and used for the file name.
	Name string
	// Property selects fill, stroke or both.
	Property Property
	// Defaults prepends the built-in grayscale swatches.
	Defaults bool
	// Sort selects the swatch order.
	Sort SortMode
	// Replace allows an existing palette file to be overwritten.
	Replace bool
}

// DefaultOptions returns the options used when no flags are given.
func DefaultOptions() Options {
	return Options{
		Property: PropertyBoth,
		Sort:     SortIndex,
	}
}
