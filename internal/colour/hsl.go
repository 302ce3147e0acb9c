package colour

import "math"

// rgbToHSL converts RGB to HSL colour space.
// Returns hue (0-360), saturation (0-1), lightness (0-1).
func rgbToHSL(rgb RGB) (h, s, l float64) {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	// Lightness.
	l = (maxVal + minVal) / 2.0

	// Achromatic.
	if delta == 0 {
		return 0, 0, l
	}

	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	h *= 60
	return h, s, l
}

// ToHSL converts an RGB colour to 8-bit HSL, each channel scaled onto
// 0-255 so that hue sorts alongside saturation and lightness.
func ToHSL(rgb RGB) HSL {
	h, s, l := rgbToHSL(rgb)
	return HSL{
		H: clampChannel(roundHalfUp(h / 360 * 255)),
		S: clampChannel(roundHalfUp(s * 255)),
		L: clampChannel(roundHalfUp(l * 255)),
	}
}

func roundHalfUp(v float64) int {
	return int(math.Round(v))
}
