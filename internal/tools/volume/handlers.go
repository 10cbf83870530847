// Package volume implements MCP tools for block storage volume management.
package volume

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-linode/internal/linode"
	"github.com/giantswarm/mcp-linode/internal/server"
	"github.com/giantswarm/mcp-linode/internal/tools"
)

func handleListVolumes(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	volumes, err := client.ListVolumes(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list volumes: %v", err)), nil
	}

	return tools.JSONResult(volumes), nil
}

func handleGetVolume(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	id, err := tools.IntArg(request, "volume_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	vol, err := client.GetVolume(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get volume %d: %v", id, err)), nil
	}

	return tools.JSONResult(vol), nil
}

func handleCreateVolume(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	label, err := tools.StringArg(request, "label")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := linode.VolumeCreateOptions{
		Label: label,
		Tags:  tools.StringSliceArg(request, "tags"),
	}
	opts.Region, _ = tools.OptionalStringArg(request, "region")
	if size, ok := tools.OptionalIntArg(request, "size"); ok {
		opts.Size = &size
	}
	if linodeID, ok := tools.OptionalIntArg(request, "linode_id"); ok {
		opts.LinodeID = &linodeID
	}

	if opts.Region == "" && opts.LinodeID == nil {
		return mcp.NewToolResultError("either region or linode_id must be given"), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	vol, err := client.CreateVolume(ctx, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create volume: %v", err)), nil
	}

	return tools.JSONResult(vol), nil
}

func handleAttachVolume(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	id, err := tools.IntArg(request, "volume_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	linodeID, err := tools.IntArg(request, "linode_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	vol, err := client.AttachVolume(ctx, id, linode.VolumeAttachOptions{LinodeID: linodeID})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to attach volume %d: %v", id, err)), nil
	}

	return tools.JSONResult(vol), nil
}

func handleDetachVolume(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	id, err := tools.IntArg(request, "volume_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := client.DetachVolume(ctx, id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to detach volume %d: %v", id, err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Volume %d detach initiated", id)), nil
}

func handleDeleteVolume(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if blocked := tools.CheckDestructiveOperation(sc, request, "delete"); blocked != nil {
		return blocked, nil
	}

	id, err := tools.IntArg(request, "volume_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := client.DeleteVolume(ctx, id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete volume %d: %v", id, err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Volume %d deleted", id)), nil
}
