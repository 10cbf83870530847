// Package nodebalancer implements MCP tools for load balancer management.
package nodebalancer

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-linode/internal/linode"
	"github.com/giantswarm/mcp-linode/internal/server"
	"github.com/giantswarm/mcp-linode/internal/tools"
)

func handleListNodeBalancers(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	balancers, err := client.ListNodeBalancers(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list NodeBalancers: %v", err)), nil
	}

	return tools.JSONResult(balancers), nil
}

func handleGetNodeBalancer(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	id, err := tools.IntArg(request, "nodebalancer_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	nb, err := client.GetNodeBalancer(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get NodeBalancer %d: %v", id, err)), nil
	}

	return tools.JSONResult(nb), nil
}

func handleCreateNodeBalancer(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	region, err := tools.StringArg(request, "region")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := linode.NodeBalancerCreateOptions{
		Region: region,
		Tags:   tools.StringSliceArg(request, "tags"),
	}
	opts.Label, _ = tools.OptionalStringArg(request, "label")
	if throttle, ok := tools.OptionalIntArg(request, "client_conn_throttle"); ok {
		opts.ClientConnThrottle = &throttle
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	nb, err := client.CreateNodeBalancer(ctx, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create NodeBalancer: %v", err)), nil
	}

	return tools.JSONResult(nb), nil
}

func handleListNodeBalancerConfigs(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	id, err := tools.IntArg(request, "nodebalancer_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	configs, err := client.ListNodeBalancerConfigs(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list configs of NodeBalancer %d: %v", id, err)), nil
	}

	return tools.JSONResult(configs), nil
}

func handleDeleteNodeBalancer(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if blocked := tools.CheckDestructiveOperation(sc, request, "delete"); blocked != nil {
		return blocked, nil
	}

	id, err := tools.IntArg(request, "nodebalancer_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := client.DeleteNodeBalancer(ctx, id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete NodeBalancer %d: %v", id, err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("NodeBalancer %d deleted", id)), nil
}
