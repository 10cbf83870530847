// Package metadata implements MCP tools for the region, type, and image
// catalogues.
package metadata

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-linode/internal/server"
	"github.com/giantswarm/mcp-linode/internal/tools"
)

func handleListRegions(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	regions, err := client.ListRegions(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list regions: %v", err)), nil
	}

	return tools.JSONResult(regions), nil
}

func handleListTypes(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	types, err := client.ListTypes(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list instance types: %v", err)), nil
	}

	return tools.JSONResult(types), nil
}

func handleListImages(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	images, err := client.ListImages(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list images: %v", err)), nil
	}

	return tools.JSONResult(images), nil
}
