package firewall

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-linode/internal/server"
	"github.com/giantswarm/mcp-linode/internal/tools"
)

// RegisterFirewallTools registers all cloud firewall tools with the MCP server
func RegisterFirewallTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	envParams := tools.AddEnvironmentParam(sc)

	// linode_list_firewalls tool
	listOpts := []mcp.ToolOption{
		mcp.WithDescription("List all cloud firewalls on the account"),
	}
	listOpts = append(listOpts, envParams...)
	listTool := mcp.NewTool("linode_list_firewalls", listOpts...)

	s.AddTool(listTool, tools.WrapWithLogging("linode_list_firewalls", handleListFirewalls, sc))

	// linode_get_firewall tool
	getOpts := []mcp.ToolOption{
		mcp.WithDescription("Get details of a single cloud firewall including its rule set"),
	}
	getOpts = append(getOpts, envParams...)
	getOpts = append(getOpts,
		mcp.WithNumber("firewall_id",
			mcp.Required(),
			mcp.Description("ID of the firewall"),
		),
	)
	getTool := mcp.NewTool("linode_get_firewall", getOpts...)

	s.AddTool(getTool, tools.WrapWithLogging("linode_get_firewall", handleGetFirewall, sc))

	// linode_create_firewall tool
	createOpts := []mcp.ToolOption{
		mcp.WithDescription("Create a new cloud firewall. Rules are given as a JSON object with inbound/outbound arrays and policies."),
	}
	createOpts = append(createOpts, envParams...)
	createOpts = append(createOpts,
		mcp.WithString("label",
			mcp.Required(),
			mcp.Description("Display label for the firewall"),
		),
		mcp.WithString("rules",
			mcp.Required(),
			mcp.Description(`Rule set as JSON, e.g. {"inbound":[...],"inbound_policy":"DROP","outbound":[],"outbound_policy":"ACCEPT"}`),
		),
		mcp.WithArray("tags",
			mcp.Description("Tags applied to the firewall (optional)"),
		),
	)
	createTool := mcp.NewTool("linode_create_firewall", createOpts...)

	s.AddTool(createTool, tools.WrapWithLogging("linode_create_firewall", handleCreateFirewall, sc))

	// linode_update_firewall_rules tool
	updateRulesOpts := []mcp.ToolOption{
		mcp.WithDescription("Replace the complete rule set of a cloud firewall"),
	}
	updateRulesOpts = append(updateRulesOpts, envParams...)
	updateRulesOpts = append(updateRulesOpts,
		mcp.WithNumber("firewall_id",
			mcp.Required(),
			mcp.Description("ID of the firewall"),
		),
		mcp.WithString("rules",
			mcp.Required(),
			mcp.Description("New rule set as JSON, same shape as on creation"),
		),
	)
	updateRulesTool := mcp.NewTool("linode_update_firewall_rules", updateRulesOpts...)

	s.AddTool(updateRulesTool, tools.WrapWithLogging("linode_update_firewall_rules", handleUpdateFirewallRules, sc))

	// linode_delete_firewall tool
	deleteOpts := []mcp.ToolOption{
		mcp.WithDescription("Delete a cloud firewall. Attached devices lose its protection."),
	}
	deleteOpts = append(deleteOpts, envParams...)
	deleteOpts = append(deleteOpts,
		mcp.WithNumber("firewall_id",
			mcp.Required(),
			mcp.Description("ID of the firewall to delete"),
		),
		tools.AddConfirmParam(),
	)
	deleteTool := mcp.NewTool("linode_delete_firewall", deleteOpts...)

	s.AddTool(deleteTool, tools.WrapWithLogging("linode_delete_firewall", handleDeleteFirewall, sc))

	return nil
}
