// Package account implements MCP tools for account and profile lookups.
package account

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-linode/internal/server"
	"github.com/giantswarm/mcp-linode/internal/tools"
)

func handleGetAccount(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	acct, err := client.GetAccount(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get account: %v", err)), nil
	}

	return tools.JSONResult(acct), nil
}

func handleGetProfile(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	profile, err := client.GetProfile(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get profile: %v", err)), nil
	}

	return tools.JSONResult(profile), nil
}
