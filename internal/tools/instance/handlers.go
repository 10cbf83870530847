// Package instance implements MCP tools for compute instance management.
package instance

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-linode/internal/linode"
	"github.com/giantswarm/mcp-linode/internal/server"
	"github.com/giantswarm/mcp-linode/internal/tools"
)

// handleListInstances lists every instance on the account.
func handleListInstances(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	instances, err := client.ListInstances(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list instances: %v", err)), nil
	}

	return tools.JSONResult(instances), nil
}

func handleGetInstance(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	id, err := tools.IntArg(request, "instance_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	inst, err := client.GetInstance(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get instance %d: %v", id, err)), nil
	}

	return tools.JSONResult(inst), nil
}

func handleCreateInstance(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	region, err := tools.StringArg(request, "region")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	instType, err := tools.StringArg(request, "type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := linode.InstanceCreateOptions{
		Region:         region,
		Type:           instType,
		AuthorizedKeys: tools.StringSliceArg(request, "authorized_keys"),
		Tags:           tools.StringSliceArg(request, "tags"),
	}
	opts.Label, _ = tools.OptionalStringArg(request, "label")
	opts.Image, _ = tools.OptionalStringArg(request, "image")
	opts.RootPass, _ = tools.OptionalStringArg(request, "root_pass")

	if opts.Image != "" && opts.RootPass == "" {
		return mcp.NewToolResultError("root_pass is required when deploying an image"), nil
	}

	if privateIP := tools.BoolArg(request, "private_ip"); privateIP {
		opts.PrivateIP = &privateIP
	}
	if backups := tools.BoolArg(request, "backups_enabled"); backups {
		opts.BackupsEnabled = &backups
	}
	if firewallID, ok := tools.OptionalIntArg(request, "firewall_id"); ok {
		opts.FirewallID = &firewallID
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	inst, err := client.CreateInstance(ctx, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create instance: %v", err)), nil
	}

	return tools.JSONResult(inst), nil
}

func handleDeleteInstance(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if blocked := tools.CheckDestructiveOperation(sc, request, "delete"); blocked != nil {
		return blocked, nil
	}

	id, err := tools.IntArg(request, "instance_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := client.DeleteInstance(ctx, id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete instance %d: %v", id, err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Instance %d deleted", id)), nil
}

func handleBootInstance(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	return handlePowerAction(ctx, request, sc, "boot",
		func(ctx context.Context, client *linode.RetryingClient, id int) error {
			return client.BootInstance(ctx, id)
		})
}

func handleRebootInstance(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	return handlePowerAction(ctx, request, sc, "reboot",
		func(ctx context.Context, client *linode.RetryingClient, id int) error {
			return client.RebootInstance(ctx, id)
		})
}

func handleShutdownInstance(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	return handlePowerAction(ctx, request, sc, "shutdown",
		func(ctx context.Context, client *linode.RetryingClient, id int) error {
			return client.ShutdownInstance(ctx, id)
		})
}

// handlePowerAction factors the shared shape of boot, reboot, and shutdown.
func handlePowerAction(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext, action string, run func(context.Context, *linode.RetryingClient, int) error) (*mcp.CallToolResult, error) {
	id, err := tools.IntArg(request, "instance_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := run(ctx, client, id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to %s instance %d: %v", action, id, err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Instance %d %s initiated", id, action)), nil
}

func handleResizeInstance(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if blocked := tools.CheckDestructiveOperation(sc, request, "resize"); blocked != nil {
		return blocked, nil
	}

	id, err := tools.IntArg(request, "instance_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	targetType, err := tools.StringArg(request, "type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := client.ResizeInstance(ctx, id, linode.InstanceResizeOptions{Type: targetType}); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to resize instance %d: %v", id, err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Instance %d resize to %s initiated", id, targetType)), nil
}
