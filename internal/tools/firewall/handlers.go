// Package firewall implements MCP tools for cloud firewall management.
package firewall

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-linode/internal/linode"
	"github.com/giantswarm/mcp-linode/internal/server"
	"github.com/giantswarm/mcp-linode/internal/tools"
)

func handleListFirewalls(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	firewalls, err := client.ListFirewalls(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list firewalls: %v", err)), nil
	}

	return tools.JSONResult(firewalls), nil
}

func handleGetFirewall(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	id, err := tools.IntArg(request, "firewall_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	fw, err := client.GetFirewall(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get firewall %d: %v", id, err)), nil
	}

	return tools.JSONResult(fw), nil
}

// parseRuleSet decodes the rules argument, which arrives as a JSON string
// because tool schemas cannot express the nested rule structure.
func parseRuleSet(request mcp.CallToolRequest) (linode.FirewallRuleSet, error) {
	raw, err := tools.StringArg(request, "rules")
	if err != nil {
		return linode.FirewallRuleSet{}, err
	}

	var rules linode.FirewallRuleSet
	if err := json.Unmarshal([]byte(raw), &rules); err != nil {
		return linode.FirewallRuleSet{}, fmt.Errorf("invalid rules JSON: %w", err)
	}
	return rules, nil
}

func handleCreateFirewall(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	label, err := tools.StringArg(request, "label")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rules, err := parseRuleSet(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	fw, err := client.CreateFirewall(ctx, linode.FirewallCreateOptions{
		Label: label,
		Rules: rules,
		Tags:  tools.StringSliceArg(request, "tags"),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create firewall: %v", err)), nil
	}

	return tools.JSONResult(fw), nil
}

func handleUpdateFirewallRules(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	id, err := tools.IntArg(request, "firewall_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rules, err := parseRuleSet(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	updated, err := client.UpdateFirewallRules(ctx, id, rules)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update rules of firewall %d: %v", id, err)), nil
	}

	return tools.JSONResult(updated), nil
}

func handleDeleteFirewall(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if blocked := tools.CheckDestructiveOperation(sc, request, "delete"); blocked != nil {
		return blocked, nil
	}

	id, err := tools.IntArg(request, "firewall_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := client.DeleteFirewall(ctx, id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete firewall %d: %v", id, err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Firewall %d deleted", id)), nil
}
