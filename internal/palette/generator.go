package palette

import (
	"cmp"
	"slices"
	"strings"
)

// ValidateName rejects empty and whitespace-only palette names.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return abort(ErrNameRequired, MsgNameRequired)
	}
	return nil
}

// Validate checks the preconditions that do not depend on the document
// content or the filesystem.
func Validate(opts Options, sel Selection) error {
	if err := ValidateName(opts.Name); err != nil {
		return err
	}
	if sel.Len() < 2 {
		return abort(ErrTooFewObjects, MsgTooFewObjects)
	}
	return nil
}

// Generate builds a palette from the colours of the selected nodes.
// It reads nothing but what host provides and writes nothing.
func Generate(host Host, opts Options, sel Selection) (*Palette, error) {
	if err := Validate(opts, sel); err != nil {
		return nil, err
	}

	nodes := orderNodes(host, opts.Sort, sel)
	values := extractColours(host, opts.Property, nodes)
	swatches := formatSwatches(host, opts.Sort, values)
	if len(swatches) == 0 {
		return nil, abort(ErrNoColours, MsgNoColours)
	}

	p := &Palette{
		Name:     opts.Name,
		Swatches: swatches,
	}
	if opts.Defaults {
		p.Defaults = slices.Clone(DefaultGrays)
	}
	return p, nil
}

// orderNodes returns the nodes in the order colours are read from them.
// Location modes sort by bounding box centre; nodes without geometry keep
// their selection order after all located nodes. Every other mode uses
// selection order.
func orderNodes(host Host, mode SortMode, sel Selection) []Node {
	nodes := slices.Clone(sel.Nodes)

	index := make(map[string]int, len(sel.Order))
	for i, id := range sel.Order {
		if _, dup := index[id]; !dup {
			index[id] = i
		}
	}
	position := func(n Node) int {
		if i, ok := index[n.ID()]; ok {
			return i
		}
		return len(index)
	}
	slices.SortStableFunc(nodes, func(a, b Node) int {
		return cmp.Compare(position(a), position(b))
	})

	if mode != SortXLocation && mode != SortYLocation {
		return nodes
	}

	type located struct {
		node Node
		x, y float64
		ok   bool
	}
	items := make([]located, len(nodes))
	for i, n := range nodes {
		x, y, err := host.Center(n)
		items[i] = located{node: n, x: x, y: y, ok: err == nil}
	}

	slices.SortStableFunc(items, func(a, b located) int {
		if a.ok != b.ok {
			if a.ok {
				return -1
			}
			return 1
		}
		if mode == SortXLocation {
			return cmp.Or(cmp.Compare(a.x, b.x), cmp.Compare(a.y, b.y))
		}
		return cmp.Or(cmp.Compare(a.y, b.y), cmp.Compare(a.x, b.x))
	})

	for i, it := range items {
		nodes[i] = it.node
	}
	return nodes
}

// extractColours reads the requested properties of every node and returns
// the distinct colour values in first-seen order.
func extractColours(host Host, property Property, nodes []Node) []string {
	var values []string
	seen := make(map[string]bool)
	for _, n := range nodes {
		for _, name := range property.Names() {
			value, ok := host.StyleProperty(n, name)
			if !ok || value == "none" || seen[value] {
				continue
			}
			if _, err := host.Colour(value); err != nil {
				continue
			}
			seen[value] = true
			values = append(values, value)
		}
	}
	return values
}

// formatSwatches turns colour values into palette lines. For the rgb and
// hsl modes lines are ordered by the 9-digit key of that mode, ties broken
// by the formatted line.
func formatSwatches(host Host, mode SortMode, values []string) []Line {
	type keyed struct {
		key  string
		line Line
	}
	items := make([]keyed, 0, len(values))
	for _, v := range values {
		c, err := host.Colour(v)
		if err != nil {
			continue
		}
		key := c.RGB.Key()
		if mode == SortHSL {
			key = c.HSL.Key()
		}
		items = append(items, keyed{key: key, line: Line{RGB: c.RGB, Label: c.Label()}})
	}

	if mode.sortsLines() {
		slices.SortStableFunc(items, func(a, b keyed) int {
			return cmp.Or(strings.Compare(a.key, b.key), strings.Compare(a.line.String(), b.line.String()))
		})
	}

	lines := make([]Line, len(items))
	for i, it := range items {
		lines[i] = it.line
	}
	return lines
}
