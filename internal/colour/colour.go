// Package colour provides the colour model used to build palettes: parsing of
// SVG colour values, RGB/HSL conversion and canonical colour naming.
package colour

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotColour is returned when a value is not a recognised colour.
var ErrNotColour = errors.New("not a colour")

// RGB represents a color in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Triple returns the channels as three right-aligned 3-digit columns,
// the layout used by GIMP palette swatch lines.
func (rgb RGB) Triple() string {
	return fmt.Sprintf("%3d %3d %3d", rgb.R, rgb.G, rgb.B)
}

// Key returns the channels zero-padded to 3 digits each.
func (rgb RGB) Key() string {
	return fmt.Sprintf("%03d%03d%03d", rgb.R, rgb.G, rgb.B)
}

// HSL is a colour in HSL space with every channel scaled to 0-255.
type HSL struct {
	H uint8 `json:"h"`
	S uint8 `json:"s"`
	L uint8 `json:"l"`
}

// Key returns the channels zero-padded to 3 digits each.
func (hsl HSL) Key() string {
	return fmt.Sprintf("%03d%03d%03d", hsl.H, hsl.S, hsl.L)
}

// Colour is a parsed colour value together with its derived forms.
type Colour struct {
	// Value is the colour exactly as it appeared in the document.
	Value string `json:"value"`
	RGB   RGB    `json:"rgb"`
	HSL   HSL    `json:"hsl"`
	// Named is the canonical name: an SVG keyword when one matches the
	// RGB triple, the lower-case hex string otherwise.
	Named string `json:"named"`
}

// Label returns the human readable swatch name.
// Colours whose canonical name differs from the value are labelled
// "Name (VALUE)", others just "VALUE".
func (c Colour) Label() string {
	value := strings.ToUpper(c.Value)
	name := strings.ToUpper(c.Named)
	if name == value {
		return name
	}
	return fmt.Sprintf("%s (%s)", capitalise(name), value)
}

// capitalise upper-cases the first letter and lower-cases the rest.
func capitalise(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// Parse parses an SVG colour value.
// Supported formats: #RGB, #RRGGBB, rgb(r, g, b) with integer or percentage
// channels, and the SVG 1.1 colour keywords.
func Parse(value string) (Colour, error) {
	rgb, err := parseRGB(strings.TrimSpace(value))
	if err != nil {
		return Colour{}, err
	}
	return Colour{
		Value: value,
		RGB:   rgb,
		HSL:   ToHSL(rgb),
		Named: Name(rgb),
	}, nil
}

func parseRGB(value string) (RGB, error) {
	if value == "" {
		return RGB{}, ErrNotColour
	}

	if strings.HasPrefix(value, "#") {
		rgb, err := ParseHex(value)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %s", ErrNotColour, err.Error())
		}
		return rgb, nil
	}

	lower := strings.ToLower(value)
	if strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")") {
		return parseFunctional(lower[4 : len(lower)-1])
	}

	if rgb, ok := lookupKeyword(lower); ok {
		return rgb, nil
	}

	return RGB{}, fmt.Errorf("%w: %q", ErrNotColour, value)
}

// ParseHex parses a hex colour string into an RGB struct.
// Supports formats: #RRGGBB, RRGGBB, #RGB, RGB.
func ParseHex(hex string) (RGB, error) {
	// Remove # prefix if present.
	hex = strings.TrimPrefix(hex, "#")

	// Expand shorthand format (RGB -> RRGGBB).
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour length: expected 6 characters, got %d", len(hex))
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", hex, err)
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// parseFunctional parses the argument list of rgb(...).
func parseFunctional(args string) (RGB, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("%w: rgb() needs 3 channels, got %d", ErrNotColour, len(parts))
	}

	var channels [3]uint8
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if pct, ok := strings.CutSuffix(part, "%"); ok {
			f, err := strconv.ParseFloat(pct, 64)
			if err != nil {
				return RGB{}, fmt.Errorf("%w: invalid channel %q", ErrNotColour, part)
			}
			channels[i] = clampChannel(roundHalfUp(f * 255 / 100))
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: invalid channel %q", ErrNotColour, part)
		}
		channels[i] = clampChannel(n)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// clampChannel clamps an integer to the 0-255 range.
func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
