// Package document loads SVG documents and exposes their objects to the
// palette generator.
package document

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/gogpu/gg"

	"github.com/jmylchreest/gplgen/internal/compression"
	"github.com/jmylchreest/gplgen/internal/palette"
)

const xlinkNamespace = "http://www.w3.org/1999/xlink"

// shapeTags are the elements SelectAll picks up.
var shapeTags = []string{
	"path", "rect", "circle", "ellipse", "line", "polyline", "polygon",
	"text", "use", "image",
}

// ErrUnknownID is returned when a selected id does not exist in the document.
var ErrUnknownID = errors.New("no element with id")

// Element is a node of the SVG element tree.
type Element struct {
	Tag      string
	Attrs    map[string]string
	Parent   *Element
	Children []*Element

	style     map[string]string
	transform gg.Matrix
}

// ID returns the element's id attribute.
func (e *Element) ID() string {
	return e.Attrs["id"]
}

// Style returns a style property, taken from the style attribute first and
// the presentation attribute of the same name second. Values are trimmed.
func (e *Element) Style(name string) (string, bool) {
	if v, ok := e.style[name]; ok {
		return v, true
	}
	v, ok := e.Attrs[name]
	return strings.TrimSpace(v), ok
}

// href returns the element referenced by href or xlink:href.
func (e *Element) href() string {
	if v, ok := e.Attrs["href"]; ok {
		return v
	}
	return e.Attrs[xlinkNamespace+":href"]
}

// Document is a parsed SVG document.
type Document struct {
	Root *Element

	byID  map[string]*Element
	order []*Element
}

// Load reads and parses an SVG file. Gzip (.svgz), xz and bzip2 compressed
// files are decompressed first.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path) // #nosec G304 - User-specified document, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	data, err = compression.Decompress(data, path)
	if err != nil {
		return nil, err
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// Parse parses SVG document content.
func Parse(data []byte) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false
	dec.Entity = xml.HTMLEntity

	doc := &Document{byID: make(map[string]*Element)}
	var current *Element

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el, err := newElement(t, current)
			if err != nil {
				return nil, err
			}
			if current == nil {
				if doc.Root != nil {
					return nil, fmt.Errorf("multiple root elements")
				}
				if el.Tag != "svg" {
					return nil, fmt.Errorf("root element is <%s>, not <svg>", el.Tag)
				}
				doc.Root = el
			} else {
				current.Children = append(current.Children, el)
			}
			doc.order = append(doc.order, el)
			if id := el.ID(); id != "" {
				if _, dup := doc.byID[id]; !dup {
					doc.byID[id] = el
				}
			}
			current = el
		case xml.EndElement:
			if current != nil {
				current = current.Parent
			}
		}
	}

	if doc.Root == nil {
		return nil, fmt.Errorf("no <svg> element found")
	}
	return doc, nil
}

func newElement(start xml.StartElement, parent *Element) (*Element, error) {
	el := &Element{
		Tag:       start.Name.Local,
		Attrs:     make(map[string]string, len(start.Attr)),
		Parent:    parent,
		transform: gg.Identity(),
	}

	for _, a := range start.Attr {
		key := a.Name.Local
		if a.Name.Space == xlinkNamespace || a.Name.Space == "xlink" {
			key = xlinkNamespace + ":" + a.Name.Local
		} else if a.Name.Space != "" && a.Name.Space != "http://www.w3.org/2000/svg" {
			key = a.Name.Space + ":" + a.Name.Local
		}
		el.Attrs[key] = a.Value
	}

	el.style = ParseStyle(el.Attrs["style"])

	if v, ok := el.Attrs["transform"]; ok {
		m, err := ParseTransform(v)
		if err != nil {
			return nil, fmt.Errorf("element %q: %w", el.ID(), err)
		}
		el.transform = m
	}

	return el, nil
}

// ElementByID returns the element with the given id.
func (d *Document) ElementByID(id string) (*Element, bool) {
	el, ok := d.byID[id]
	return el, ok
}

// Select returns a selection of the elements with the given ids, in the
// order given. Repeated ids are selected once.
func (d *Document) Select(ids ...string) (palette.Selection, error) {
	sel := palette.Selection{}
	for _, id := range ids {
		if slices.Contains(sel.Order, id) {
			continue
		}
		el, ok := d.ElementByID(id)
		if !ok {
			return palette.Selection{}, fmt.Errorf("%w %q", ErrUnknownID, id)
		}
		sel.Order = append(sel.Order, id)
		sel.Nodes = append(sel.Nodes, el)
	}
	return sel, nil
}

// SelectAll selects every shape element carrying an id, in document order.
func (d *Document) SelectAll() palette.Selection {
	sel := palette.Selection{}
	for _, el := range d.order {
		id := el.ID()
		if id == "" || !slices.Contains(shapeTags, el.Tag) || insideDefs(el) {
			continue
		}
		if d.byID[id] != el {
			continue
		}
		sel.Order = append(sel.Order, id)
		sel.Nodes = append(sel.Nodes, el)
	}
	return sel
}

// insideDefs reports whether el is a template rather than a rendered object.
func insideDefs(el *Element) bool {
	for p := el.Parent; p != nil; p = p.Parent {
		switch p.Tag {
		case "defs", "symbol", "clipPath", "mask", "pattern", "marker":
			return true
		}
	}
	return false
}

// ParseStyle parses a style attribute ("fill:#ff0000;stroke:none") into a
// property map. Later declarations win; !important is stripped.
func ParseStyle(style string) map[string]string {
	props := make(map[string]string)
	for _, decl := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "!important"))
		if name == "" {
			continue
		}
		props[name] = value
	}
	return props
}
