// Package lke implements MCP tools for managed Kubernetes cluster
// management.
package lke

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-linode/internal/linode"
	"github.com/giantswarm/mcp-linode/internal/server"
	"github.com/giantswarm/mcp-linode/internal/tools"
)

func handleListClusters(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	clusters, err := client.ListLKEClusters(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list Kubernetes clusters: %v", err)), nil
	}

	return tools.JSONResult(clusters), nil
}

func handleGetCluster(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	id, err := tools.IntArg(request, "cluster_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cluster, err := client.GetLKECluster(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get cluster %d: %v", id, err)), nil
	}

	return tools.JSONResult(cluster), nil
}

func handleCreateCluster(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	label, err := tools.StringArg(request, "label")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	region, err := tools.StringArg(request, "region")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	version, err := tools.StringArg(request, "k8s_version")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	nodeType, err := tools.StringArg(request, "node_type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	nodeCount, err := tools.IntArg(request, "node_count")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if nodeCount < 1 {
		return mcp.NewToolResultError("node_count must be at least 1"), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cluster, err := client.CreateLKECluster(ctx, linode.LKEClusterCreateOptions{
		Label:      label,
		Region:     region,
		K8sVersion: version,
		NodePools: []linode.LKENodePoolCreateOptions{
			{Type: nodeType, Count: nodeCount},
		},
		Tags: tools.StringSliceArg(request, "tags"),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create cluster: %v", err)), nil
	}

	return tools.JSONResult(cluster), nil
}

func handleDeleteCluster(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if blocked := tools.CheckDestructiveOperation(sc, request, "delete"); blocked != nil {
		return blocked, nil
	}

	id, err := tools.IntArg(request, "cluster_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := client.DeleteLKECluster(ctx, id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete cluster %d: %v", id, err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Kubernetes cluster %d deleted", id)), nil
}

func handleListNodePools(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	id, err := tools.IntArg(request, "cluster_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	pools, err := client.ListLKENodePools(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list node pools of cluster %d: %v", id, err)), nil
	}

	return tools.JSONResult(pools), nil
}

func handleGetKubeconfig(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	id, err := tools.IntArg(request, "cluster_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	kubeconfig, err := client.GetLKEKubeconfig(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get kubeconfig of cluster %d: %v", id, err)), nil
	}

	return tools.JSONResult(kubeconfig), nil
}
