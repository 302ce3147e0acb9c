package plugin

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-plugin"
)

// PluginMap returns the plugin set a host dispenses from and a plugin serves.
func PluginMap(impl SelectionPlugin) map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		PluginName: &SelectionPluginRPC{Impl: impl},
	}
}

// Serve runs impl as a selection plugin. It does not return.
//
// Invoked with --plugin-info, the plugin prints its metadata as JSON and
// exits instead.
func Serve(impl SelectionPlugin) {
	if len(os.Args) > 1 && os.Args[1] == "--plugin-info" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(impl.GetMetadata()); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding plugin info: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins:         PluginMap(impl),
	})
}
