package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	goplugin "github.com/hashicorp/go-plugin"

	"github.com/jmylchreest/gplgen/internal/palette"
	"github.com/jmylchreest/gplgen/pkg/plugin"
)

// detectTimeout bounds the --plugin-info query.
const detectTimeout = 5 * time.Second

// PluginSource obtains the selection from an external selection plugin.
type PluginSource struct {
	// Path is the plugin executable.
	Path string
	// Args are passed to the plugin as SelectionOptions.Args.
	Args map[string]string
	// Logger receives go-plugin and plugin stderr output. Nil discards it.
	Logger hclog.Logger
	// Runner runs json-stdio plugins and the --plugin-info query. Nil means
	// RealProcessRunner.
	Runner ProcessRunner

	client *goplugin.Client
}

// Open queries the plugin for its protocol and fetches the selection.
func (s *PluginSource) Open(ctx context.Context) (palette.Host, palette.Selection, error) {
	info, err := s.Detect(ctx)
	if err != nil {
		return nil, palette.Selection{}, err
	}
	s.logger().Debug("plugin detected", "name", info.Name, "version", info.Version, "protocol", info.PluginProtocol)

	opts := plugin.SelectionOptions{
		Verbose: s.logger().IsDebug(),
		Args:    s.Args,
	}

	var snap plugin.Snapshot
	switch plugin.PluginType(info.PluginProtocol) {
	case plugin.PluginTypeGoPlugin:
		snap, err = s.selectGoPlugin(ctx, opts)
	default:
		snap, err = s.selectJSON(ctx, opts)
	}
	if err != nil {
		return nil, palette.Selection{}, fmt.Errorf("plugin %s: %w", info.Name, err)
	}

	s.logger().Debug("selection received", "source", snap.Source, "nodes", len(snap.Nodes))
	host, sel := FromSnapshot(snap)
	return host, sel, nil
}

// Detect queries the plugin's metadata with --plugin-info and checks that
// it speaks a compatible protocol.
func (s *PluginSource) Detect(ctx context.Context) (plugin.PluginInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, detectTimeout)
	defer cancel()

	stdout, stderr, err := s.runner().Run(ctx, s.Path, []string{"--plugin-info"}, nil)
	if err != nil {
		return plugin.PluginInfo{}, fmt.Errorf("failed to query plugin %s: %w%s", s.Path, err, stderrSuffix(stderr))
	}

	var info plugin.PluginInfo
	if err := json.Unmarshal(stdout, &info); err != nil {
		return plugin.PluginInfo{}, fmt.Errorf("failed to parse plugin info: %w", err)
	}

	switch plugin.PluginType(info.PluginProtocol) {
	case plugin.PluginTypeGoPlugin, plugin.PluginTypeJSON:
	case "":
		// Empty defaults to json-stdio.
		info.PluginProtocol = string(plugin.PluginTypeJSON)
	default:
		return plugin.PluginInfo{}, fmt.Errorf("unknown plugin_protocol: %s", info.PluginProtocol)
	}

	if info.ProtocolVersion != "" {
		if err := plugin.CheckCompatible(info.ProtocolVersion); err != nil {
			return plugin.PluginInfo{}, fmt.Errorf("plugin %s: %w", info.Name, err)
		}
	}

	return info, nil
}

// Close stops a running go-plugin process.
func (s *PluginSource) Close() error {
	if s.client != nil {
		s.client.Kill()
		s.client = nil
	}
	return nil
}

func (s *PluginSource) selectGoPlugin(ctx context.Context, opts plugin.SelectionOptions) (plugin.Snapshot, error) {
	s.client = goplugin.NewClient(&goplugin.ClientConfig{
		HandshakeConfig:  plugin.Handshake,
		Plugins:          plugin.PluginMap(nil),
		Cmd:              exec.Command(s.Path), // #nosec G204 - plugin path is chosen by the user
		AllowedProtocols: []goplugin.Protocol{goplugin.ProtocolNetRPC},
		Logger:           s.logger(),
	})

	rpcClient, err := s.client.Client()
	if err != nil {
		s.client.Kill()
		return plugin.Snapshot{}, fmt.Errorf("failed to get RPC client: %w", err)
	}

	raw, err := rpcClient.Dispense(plugin.PluginName)
	if err != nil {
		s.client.Kill()
		return plugin.Snapshot{}, fmt.Errorf("failed to dispense plugin: %w", err)
	}

	client, ok := raw.(*plugin.SelectionPluginRPCClient)
	if !ok {
		s.client.Kill()
		return plugin.Snapshot{}, fmt.Errorf("unexpected plugin client type %T", raw)
	}

	return client.Selection(ctx, opts)
}

func (s *PluginSource) selectJSON(ctx context.Context, opts plugin.SelectionOptions) (plugin.Snapshot, error) {
	optsJSON, err := json.Marshal(opts)
	if err != nil {
		return plugin.Snapshot{}, fmt.Errorf("failed to marshal options: %w", err)
	}

	stdout, stderr, err := s.runner().Run(ctx, s.Path, nil, bytes.NewReader(optsJSON))
	if err != nil {
		return plugin.Snapshot{}, fmt.Errorf("plugin execution failed: %w%s", err, stderrSuffix(stderr))
	}
	if len(stderr) > 0 {
		s.logger().Debug("plugin stderr", "output", strings.TrimSpace(string(stderr)))
	}

	var snap plugin.Snapshot
	if err := json.Unmarshal(stdout, &snap); err != nil {
		return plugin.Snapshot{}, fmt.Errorf("failed to parse plugin output: %w", err)
	}
	return snap, nil
}

func (s *PluginSource) logger() hclog.Logger {
	if s.Logger == nil {
		return hclog.NewNullLogger()
	}
	return s.Logger
}

func (s *PluginSource) runner() ProcessRunner {
	if s.Runner == nil {
		return &RealProcessRunner{}
	}
	return s.Runner
}

func stderrSuffix(stderr []byte) string {
	msg := strings.TrimSpace(string(stderr))
	if msg == "" {
		return ""
	}
	return "\nStderr: " + msg
}
