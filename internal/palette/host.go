package palette

import "github.com/jmylchreest/gplgen/internal/colour"

// Node is an opaque reference to a selected document object.
type Node interface {
	// ID returns the object's stable identifier.
	ID() string
}

// Host provides the document capabilities the generator needs.
type Host interface {
	// StyleProperty returns the value of a style property of node.
	StyleProperty(node Node, name string) (string, bool)

	// Colour resolves a style value into a colour. Values that are not
	// colours return an error wrapping colour.ErrNotColour.
	Colour(value string) (colour.Colour, error)

	// Center returns the centre of the node's bounding box.
	Center(node Node) (x, y float64, err error)
}

// Selection is the set of objects a palette is generated from.
type Selection struct {
	// Order lists object identifiers in the order they were selected.
	Order []string
	// Nodes holds the selected objects in any order.
	Nodes []Node
}

// Len returns the number of selected objects.
func (s Selection) Len() int {
	return len(s.Nodes)
}

// ColourResolver implements Host.Colour with the built-in colour model.
// Hosts embed it when they have no colour model of their own.
type ColourResolver struct{}

// Colour parses value with colour.Parse.
func (ColourResolver) Colour(value string) (colour.Colour, error) {
	return colour.Parse(value)
}
