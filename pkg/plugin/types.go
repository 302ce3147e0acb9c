package plugin

// PluginInfo contains metadata about a plugin.
type PluginInfo struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	ProtocolVersion string `json:"protocol_version"`
	Description     string `json:"description"`
	PluginProtocol  string `json:"plugin_protocol"` // "json-stdio" or "go-plugin"
}

// SelectionOptions are passed from gplgen to the plugin.
type SelectionOptions struct {
	Verbose bool              `json:"verbose"`
	Args    map[string]string `json:"args,omitempty"` // --plugin-arg key=value pairs
}

// Snapshot is a selection captured by a plugin.
type Snapshot struct {
	// Source describes where the selection came from, for logging.
	Source string `json:"source,omitempty"`
	// Nodes holds the selected objects in selection order.
	Nodes []NodeData `json:"nodes"`
}

// NodeData describes one selected object.
type NodeData struct {
	ID string `json:"id"`
	// Style holds the object's computed style properties, e.g. "fill".
	Style map[string]string `json:"style,omitempty"`
	// HasBox reports whether CenterX and CenterY are set.
	HasBox  bool    `json:"has_box,omitempty"`
	CenterX float64 `json:"center_x,omitempty"`
	CenterY float64 `json:"center_y,omitempty"`
}

// IDs returns the node identifiers in selection order.
func (s Snapshot) IDs() []string {
	ids := make([]string, len(s.Nodes))
	for i, n := range s.Nodes {
		ids[i] = n.ID
	}
	return ids
}
