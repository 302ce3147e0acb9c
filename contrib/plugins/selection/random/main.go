// random - Random Selection Plugin (gplgen Selection Plugin)
//
// Produces a selection of randomly coloured objects laid out on a grid.
// Uses the go-plugin RPC protocol.
//
// Build:
//   go build -o gplgen-random ./contrib/plugins/selection/random
//
// Usage:
//   gplgen generate --plugin ./gplgen-random -n "Random"
//   gplgen generate --plugin ./gplgen-random --plugin-arg count=8 --plugin-arg seed=42 -n "Seeded" -s x_location
//
// Plugin Args:
//   count: Number of objects to generate (default: 16)
//   seed: Random seed for reproducible selections
//   columns: Grid width used for object positions (default: 4)
//
// License: MIT
package main

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mathrand "math/rand/v2"
	"os"
	"strconv"

	"github.com/jmylchreest/gplgen/internal/colour"
	"github.com/jmylchreest/gplgen/pkg/plugin"
)

const (
	defaultCount   = 16
	defaultColumns = 4
	maxCount       = 4096
	cellSize       = 10.0
)

// RandomPlugin implements the plugin.SelectionPlugin interface.
type RandomPlugin struct{}

// Selection creates a random selection.
func (p *RandomPlugin) Selection(_ context.Context, opts plugin.SelectionOptions) (plugin.Snapshot, error) {
	count, err := intArg(opts.Args, "count", defaultCount)
	if err != nil {
		return plugin.Snapshot{}, err
	}
	if count < 0 || count > maxCount {
		return plugin.Snapshot{}, fmt.Errorf("count must be between 0 and %d, got %d", maxCount, count)
	}

	columns, err := intArg(opts.Args, "columns", defaultColumns)
	if err != nil {
		return plugin.Snapshot{}, err
	}
	if columns < 1 {
		return plugin.Snapshot{}, fmt.Errorf("columns must be positive, got %d", columns)
	}

	var seed uint64
	if s, ok := opts.Args["seed"]; ok {
		seed, err = strconv.ParseUint(s, 10, 64)
		if err != nil {
			return plugin.Snapshot{}, fmt.Errorf("invalid seed %q: %w", s, err)
		}
	} else {
		// Generate a truly random seed from crypto/rand
		var randomBytes [8]byte
		if _, err := rand.Read(randomBytes[:]); err == nil {
			seed = binary.LittleEndian.Uint64(randomBytes[:])
		}
	}

	if opts.Verbose {
		fmt.Fprintf(os.Stderr, "Generating %d random objects (seed: %d)\n", count, seed)
	}

	var seedArray [32]byte
	binary.LittleEndian.PutUint64(seedArray[:8], seed)
	// #nosec G404 -- Using math/rand intentionally for deterministic color generation, not cryptography
	rng := mathrand.New(mathrand.NewChaCha8(seedArray))

	return plugin.Snapshot{
		Source: fmt.Sprintf("random (seed %d)", seed),
		Nodes:  randomNodes(count, columns, rng),
	}, nil
}

// GetMetadata returns plugin metadata.
func (p *RandomPlugin) GetMetadata() plugin.PluginInfo {
	return plugin.PluginInfo{
		Name:            "random",
		Version:         "0.0.1",
		ProtocolVersion: plugin.ProtocolVersion,
		Description:     "Random objects with random fill and stroke colours",
		PluginProtocol:  string(plugin.PluginTypeGoPlugin),
	}
}

// randomNodes creates n objects on a grid of the given width. Every fourth
// object has no stroke.
func randomNodes(n, columns int, rng *mathrand.Rand) []plugin.NodeData {
	nodes := make([]plugin.NodeData, n)
	for i := range n {
		style := map[string]string{
			"fill":   randomColour(rng).Hex(),
			"stroke": "none",
		}
		if i%4 != 3 {
			style["stroke"] = randomColour(rng).Hex()
		}
		nodes[i] = plugin.NodeData{
			ID:      fmt.Sprintf("random%d", i+1),
			Style:   style,
			HasBox:  true,
			CenterX: float64(i%columns)*cellSize + cellSize/2,
			CenterY: float64(i/columns)*cellSize + cellSize/2,
		}
	}
	return nodes
}

func randomColour(rng *mathrand.Rand) colour.RGB {
	return colour.RGB{
		// #nosec G115 -- rng.IntN(256) returns 0-255, safe for uint8
		R: uint8(rng.IntN(256)),
		// #nosec G115 -- rng.IntN(256) returns 0-255, safe for uint8
		G: uint8(rng.IntN(256)),
		// #nosec G115 -- rng.IntN(256) returns 0-255, safe for uint8
		B: uint8(rng.IntN(256)),
	}
}

func intArg(args map[string]string, name string, def int) (int, error) {
	v, ok := args[name]
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	return n, nil
}

func main() {
	plugin.Serve(&RandomPlugin{})
}
