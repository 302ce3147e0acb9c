package plugin

import (
	"context"
	"net/rpc"

	"github.com/hashicorp/go-plugin"
)

// SelectionPluginRPC implements the go-plugin Plugin interface for selection plugins.
type SelectionPluginRPC struct {
	plugin.Plugin
	Impl SelectionPlugin
}

// Server returns an RPC server for this plugin.
func (p *SelectionPluginRPC) Server(*plugin.MuxBroker) (any, error) {
	return &SelectionPluginRPCServer{Impl: p.Impl}, nil
}

// Client returns an RPC client for this plugin.
func (p *SelectionPluginRPC) Client(_ *plugin.MuxBroker, c *rpc.Client) (any, error) {
	return &SelectionPluginRPCClient{client: c}, nil
}

// SelectionPluginRPCServer is the RPC server implementation for selection plugins.
type SelectionPluginRPCServer struct {
	Impl SelectionPlugin
}

// Selection implements the RPC method for capturing a selection.
func (s *SelectionPluginRPCServer) Selection(opts SelectionOptions, resp *Snapshot) error {
	snap, err := s.Impl.Selection(context.Background(), opts)
	if err != nil {
		return err
	}
	*resp = snap
	return nil
}

// GetMetadata implements the RPC method for fetching plugin metadata.
func (s *SelectionPluginRPCServer) GetMetadata(_ any, resp *PluginInfo) error {
	*resp = s.Impl.GetMetadata()
	return nil
}

// SelectionPluginRPCClient is the RPC client implementation for selection plugins.
type SelectionPluginRPCClient struct {
	client *rpc.Client
}

// Selection calls the remote Selection method. The call is abandoned when
// ctx is cancelled.
func (c *SelectionPluginRPCClient) Selection(ctx context.Context, opts SelectionOptions) (Snapshot, error) {
	var snap Snapshot
	call := c.client.Go("Plugin.Selection", opts, &snap, make(chan *rpc.Call, 1))
	select {
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	case <-call.Done:
		if call.Error != nil {
			return Snapshot{}, &RPCError{Message: call.Error.Error()}
		}
		return snap, nil
	}
}

// GetMetadata calls the remote GetMetadata method.
func (c *SelectionPluginRPCClient) GetMetadata() (PluginInfo, error) {
	var info PluginInfo
	err := c.client.Call("Plugin.GetMetadata", new(any), &info)
	return info, err
}

// RPCError represents an error returned from an RPC call.
type RPCError struct {
	Message string
}

// Error implements the error interface.
func (e *RPCError) Error() string {
	return e.Message
}
