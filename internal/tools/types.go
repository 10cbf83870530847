// Package tools provides shared utilities and types for MCP tool implementations.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-linode/internal/linode"
	"github.com/giantswarm/mcp-linode/internal/server"
)

// ToolHandler is the signature for MCP tool handler functions that take ServerContext.
type ToolHandler func(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error)

// ClientFor resolves the API client for the environment named in the
// request, falling back to the default environment when the argument is
// absent. Tool handlers should use this instead of calling the
// ServerContext directly so every tool honors the environment parameter.
func ClientFor(request mcp.CallToolRequest, sc *server.ServerContext) (*linode.RetryingClient, error) {
	return sc.ClientForEnvironment(EnvironmentArg(request))
}

// JSONResult marshals a value as indented JSON and returns it as a text
// tool result.
func JSONResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal response: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}
