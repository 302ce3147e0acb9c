package colour

import "math"

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func (rgb RGB) Luminance() float64 {
	return 0.2126*gammaCorrect(float64(rgb.R)/255.0) +
		0.7152*gammaCorrect(float64(rgb.G)/255.0) +
		0.0722*gammaCorrect(float64(rgb.B)/255.0)
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
func ContrastRatio(c1, c2 RGB) float64 {
	l1 := c1.Luminance()
	l2 := c2.Luminance()

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// TextColour returns black or white, whichever is more legible on rgb.
func TextColour(rgb RGB) RGB {
	black, white := RGB{}, RGB{R: 255, G: 255, B: 255}
	if ContrastRatio(rgb, black) >= ContrastRatio(rgb, white) {
		return black
	}
	return white
}
