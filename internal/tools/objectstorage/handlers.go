// Package objectstorage implements MCP tools for S3-compatible object
// storage management.
package objectstorage

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

	clusters, err := client.ListObjectStorageClusters(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list object storage clusters: %v", err)), nil
	}

	return tools.JSONResult(clusters), nil
}

func handleListBuckets(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	buckets, err := client.ListObjectStorageBuckets(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list buckets: %v", err)), nil
	}

	return tools.JSONResult(buckets), nil
}

func handleCreateBucket(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	label, err := tools.StringArg(request, "label")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cluster, err := tools.StringArg(request, "cluster")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := linode.ObjectStorageBucketCreateOptions{
		Label:   label,
		Cluster: cluster,
	}
	opts.ACL, _ = tools.OptionalStringArg(request, "acl")

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	bucket, err := client.CreateObjectStorageBucket(ctx, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create bucket: %v", err)), nil
	}

	return tools.JSONResult(bucket), nil
}

func handleDeleteBucket(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if blocked := tools.CheckDestructiveOperation(sc, request, "delete"); blocked != nil {
		return blocked, nil
	}

	cluster, err := tools.StringArg(request, "cluster")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	label, err := tools.StringArg(request, "label")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := client.DeleteObjectStorageBucket(ctx, cluster, label); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete bucket %s/%s: %v", cluster, label, err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Bucket %s/%s deleted", cluster, label)), nil
}

func handleListKeys(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	keys, err := client.ListObjectStorageKeys(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list object storage keys: %v", err)), nil
	}

	return tools.JSONResult(keys), nil
}

func handleCreateKey(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	label, err := tools.StringArg(request, "label")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	key, err := client.CreateObjectStorageKey(ctx, linode.ObjectStorageKeyCreateOptions{Label: label})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create object storage key: %v", err)), nil
	}

	return tools.JSONResult(key), nil
}

func handleRevokeKey(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if blocked := tools.CheckDestructiveOperation(sc, request, "revoke"); blocked != nil {
		return blocked, nil
	}

	id, err := tools.IntArg(request, "key_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := client.RevokeObjectStorageKey(ctx, id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to revoke key %d: %v", id, err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Object storage key %d revoked", id)), nil
}
