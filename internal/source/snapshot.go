package source

import (
	"fmt"

	"github.com/jmylchreest/gplgen/internal/palette"
	"github.com/jmylchreest/gplgen/pkg/plugin"
)

// snapshotNode is a selected object reported by a plugin.
type snapshotNode struct {
	data plugin.NodeData
}

func (n *snapshotNode) ID() string {
	return n.data.ID
}

// SnapshotHost answers host queries from a plugin snapshot.
type SnapshotHost struct {
	palette.ColourResolver
}

// StyleProperty returns a style property reported by the plugin.
func (SnapshotHost) StyleProperty(node palette.Node, name string) (string, bool) {
	n, ok := node.(*snapshotNode)
	if !ok {
		return "", false
	}
	v, ok := n.data.Style[name]
	return v, ok
}

// Center returns the bounding box centre reported by the plugin.
func (SnapshotHost) Center(node palette.Node) (float64, float64, error) {
	n, ok := node.(*snapshotNode)
	if !ok || !n.data.HasBox {
		return 0, 0, fmt.Errorf("no bounding box for %q", node.ID())
	}
	return n.data.CenterX, n.data.CenterY, nil
}

// FromSnapshot turns a snapshot into a host and a selection. Nodes without
// an id are skipped; repeated ids are selected once.
func FromSnapshot(snap plugin.Snapshot) (*SnapshotHost, palette.Selection) {
	sel := palette.Selection{}
	seen := make(map[string]bool, len(snap.Nodes))
	for _, n := range snap.Nodes {
		if n.ID == "" || seen[n.ID] {
			continue
		}
		seen[n.ID] = true
		sel.Order = append(sel.Order, n.ID)
		sel.Nodes = append(sel.Nodes, &snapshotNode{data: n})
	}
	return &SnapshotHost{}, sel
}
