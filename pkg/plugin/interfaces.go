package plugin

import (
	"context"
)

// SelectionPlugin is the interface selection plugins implement for go-plugin RPC.
// A selection plugin stands in for an SVG document: it reports the objects a
// palette is generated from.
type SelectionPlugin interface {
	// Selection returns the selected objects in selection order.
	Selection(ctx context.Context, opts SelectionOptions) (Snapshot, error)

	// GetMetadata returns plugin metadata.
	GetMetadata() PluginInfo
}
