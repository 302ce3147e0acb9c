package document

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// ErrNoGeometry is returned for elements without a bounding box.
var ErrNoGeometry = errors.New("element has no geometry")

// maxUseDepth bounds <use> reference chains.
const maxUseDepth = 16

// CTM returns the transform from the element's own coordinate system to the
// document's user space.
func (e *Element) CTM() gg.Matrix {
	m := e.transform
	for p := e.Parent; p != nil; p = p.Parent {
		m = p.transform.Multiply(m)
	}
	return m
}

// bounds is the union of the boxes added so far.
type bounds struct {
	rect gg.Rect
	ok   bool
}

func (b *bounds) add(r gg.Rect) {
	if !b.ok {
		b.rect, b.ok = r, true
		return
	}
	b.rect = b.rect.Union(r)
}

// BoundingBox returns the tight geometric bounding box of an element in
// document user units. Curves contribute their extrema, not their control
// points.
func (d *Document) BoundingBox(e *Element) (gg.Rect, error) {
	var b bounds
	if err := d.collect(e, e.CTM(), 0, &b); err != nil {
		return gg.Rect{}, err
	}
	if !b.ok {
		return gg.Rect{}, fmt.Errorf("%w: <%s id=%q>", ErrNoGeometry, e.Tag, e.ID())
	}
	return b.rect, nil
}

// collect adds the transformed outline of e and its descendants to b.
func (d *Document) collect(e *Element, m gg.Matrix, depth int, b *bounds) error {
	switch e.Tag {
	case "g", "svg", "a", "switch", "symbol":
		for _, c := range e.Children {
			if err := d.collect(c, m.Multiply(c.transform), depth, b); err != nil {
				return err
			}
		}
		return nil
	case "use":
		if depth >= maxUseDepth {
			return fmt.Errorf("<use> reference chain deeper than %d", maxUseDepth)
		}
		ref, ok := d.ElementByID(strings.TrimPrefix(e.href(), "#"))
		if !ok {
			return nil
		}
		x, y := e.length("x"), e.length("y")
		return d.collect(ref, m.Multiply(gg.Translate(x, y)).Multiply(ref.transform), depth+1, b)
	}

	outline, err := e.outline()
	if err != nil {
		return err
	}
	if outline == nil || outline.NumVerbs() == 0 {
		return nil
	}
	b.add(outline.Transform(m).BoundingBox())
	return nil
}

// outline returns the geometry of a basic shape before transforms, or nil
// for elements that have none.
func (e *Element) outline() (*gg.Path, error) {
	p := gg.NewPath()
	switch e.Tag {
	case "rect", "image":
		// Rounded corners stay inside the rectangle.
		p.Rectangle(e.length("x"), e.length("y"), e.length("width"), e.length("height"))
	case "circle":
		p.Circle(e.length("cx"), e.length("cy"), e.length("r"))
	case "ellipse":
		p.Ellipse(e.length("cx"), e.length("cy"), e.length("rx"), e.length("ry"))
	case "line":
		p.MoveTo(e.length("x1"), e.length("y1"))
		p.LineTo(e.length("x2"), e.length("y2"))
	case "polyline", "polygon":
		nums, err := parseNumbers(e.Attrs["points"])
		if err != nil {
			return nil, fmt.Errorf("invalid points on %q: %w", e.ID(), err)
		}
		for i := 0; i+1 < len(nums); i += 2 {
			if i == 0 {
				p.MoveTo(nums[i], nums[i+1])
			} else {
				p.LineTo(nums[i], nums[i+1])
			}
		}
	case "path":
		path, err := parsePathData(e.Attrs["d"])
		if err != nil {
			return nil, fmt.Errorf("invalid path data on %q: %w", e.ID(), err)
		}
		return path, nil
	case "text", "tspan":
		if _, ok := e.Attrs["x"]; !ok {
			return nil, nil
		}
		p.MoveTo(e.length("x"), e.length("y"))
	default:
		return nil, nil
	}
	return p, nil
}

// length parses a length attribute in user units. Missing, relative or
// malformed values are 0.
func (e *Element) length(name string) float64 {
	v, ok := e.Attrs[name]
	if !ok {
		return 0
	}
	return parseLength(v)
}

var unitScale = map[string]float64{
	"":   1,
	"px": 1,
	"pt": 96.0 / 72.0,
	"pc": 16,
	"in": 96,
	"cm": 96 / 2.54,
	"mm": 96 / 25.4,
	"q":  96 / 101.6,
}

func parseLength(v string) float64 {
	v = strings.TrimSpace(v)
	end := 0
	for end < len(v) && strings.IndexByte("+-.0123456789eE", v[end]) >= 0 {
		// Stop at an exponent marker not followed by a digit or sign ("1em").
		if (v[end] == 'e' || v[end] == 'E') && (end+1 >= len(v) || strings.IndexByte("+-0123456789", v[end+1]) < 0) {
			break
		}
		end++
	}
	f, err := strconv.ParseFloat(v[:end], 64)
	if err != nil {
		return 0
	}
	scale, ok := unitScale[strings.ToLower(strings.TrimSpace(v[end:]))]
	if !ok {
		return 0
	}
	return f * scale
}
