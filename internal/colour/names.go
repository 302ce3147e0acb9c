package colour

import (
	"sync"

	"golang.org/x/image/colornames"
)

// canonicalNames maps an RGB triple to the first SVG keyword (in
// alphabetical order) with that value, e.g. aqua rather than cyan.
var canonicalNames = sync.OnceValue(func() map[RGB]string {
	names := make(map[RGB]string, len(colornames.Names))
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		rgb := RGB{R: c.R, G: c.G, B: c.B}
		if _, seen := names[rgb]; !seen {
			names[rgb] = name
		}
	}
	return names
})

// lookupKeyword resolves an SVG colour keyword. The keyword must already be
// lower case.
func lookupKeyword(name string) (RGB, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		return RGB{}, false
	}
	return RGB{R: c.R, G: c.G, B: c.B}, true
}

// Name returns the canonical name of a colour: its SVG keyword when one
// exists, the lower-case hex string otherwise.
func Name(rgb RGB) string {
	if name, ok := canonicalNames()[rgb]; ok {
		return name
	}
	return rgb.Hex()
}
