package document

import (
	"fmt"

	"github.com/jmylchreest/gplgen/internal/palette"
)

// Host exposes a Document to the palette generator.
type Host struct {
	palette.ColourResolver

	doc *Document
}

// Host returns a palette host backed by the document.
func (d *Document) Host() *Host {
	return &Host{doc: d}
}

// StyleProperty returns a style property of an element.
func (h *Host) StyleProperty(node palette.Node, name string) (string, bool) {
	el, ok := node.(*Element)
	if !ok {
		return "", false
	}
	return el.Style(name)
}

// Center returns the centre of an element's bounding box.
func (h *Host) Center(node palette.Node) (float64, float64, error) {
	el, ok := node.(*Element)
	if !ok {
		return 0, 0, fmt.Errorf("node %q does not belong to this document", node.ID())
	}
	box, err := h.doc.BoundingBox(el)
	if err != nil {
		return 0, 0, err
	}
	return (box.Min.X + box.Max.X) / 2, (box.Min.Y + box.Max.Y) / 2, nil
}
