package nodebalancer

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-linode/internal/server"
	"github.com/giantswarm/mcp-linode/internal/tools"
)

// RegisterNodeBalancerTools registers all load balancer tools with the MCP server
func RegisterNodeBalancerTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	envParams := tools.AddEnvironmentParam(sc)

	// linode_list_nodebalancers tool
	listOpts := []mcp.ToolOption{
		mcp.WithDescription("List all NodeBalancers on the account"),
	}
	listOpts = append(listOpts, envParams...)
	listTool := mcp.NewTool("linode_list_nodebalancers", listOpts...)

	s.AddTool(listTool, tools.WrapWithLogging("linode_list_nodebalancers", handleListNodeBalancers, sc))

	// linode_get_nodebalancer tool
	getOpts := []mcp.ToolOption{
		mcp.WithDescription("Get details of a single NodeBalancer"),
	}
	getOpts = append(getOpts, envParams...)
	getOpts = append(getOpts,
		mcp.WithNumber("nodebalancer_id",
			mcp.Required(),
			mcp.Description("ID of the NodeBalancer"),
		),
	)
	getTool := mcp.NewTool("linode_get_nodebalancer", getOpts...)

	s.AddTool(getTool, tools.WrapWithLogging("linode_get_nodebalancer", handleGetNodeBalancer, sc))

	// linode_create_nodebalancer tool
	createOpts := []mcp.ToolOption{
		mcp.WithDescription("Create a new NodeBalancer"),
	}
	createOpts = append(createOpts, envParams...)
	createOpts = append(createOpts,
		mcp.WithString("region",
			mcp.Required(),
			mcp.Description("Region to deploy in (e.g. 'us-east')"),
		),
		mcp.WithString("label",
			mcp.Description("Display label for the NodeBalancer (optional)"),
		),
		mcp.WithNumber("client_conn_throttle",
			mcp.Description("Connections per second allowed from a single client IP (optional)"),
		),
		mcp.WithArray("tags",
			mcp.Description("Tags applied to the NodeBalancer (optional)"),
		),
	)
	createTool := mcp.NewTool("linode_create_nodebalancer", createOpts...)

	s.AddTool(createTool, tools.WrapWithLogging("linode_create_nodebalancer", handleCreateNodeBalancer, sc))

	// linode_list_nodebalancer_configs tool
	configsOpts := []mcp.ToolOption{
		mcp.WithDescription("List the port configurations of a NodeBalancer"),
	}
	configsOpts = append(configsOpts, envParams...)
	configsOpts = append(configsOpts,
		mcp.WithNumber("nodebalancer_id",
			mcp.Required(),
			mcp.Description("ID of the NodeBalancer"),
		),
	)
	configsTool := mcp.NewTool("linode_list_nodebalancer_configs", configsOpts...)

	s.AddTool(configsTool, tools.WrapWithLogging("linode_list_nodebalancer_configs", handleListNodeBalancerConfigs, sc))

	// linode_delete_nodebalancer tool
	deleteOpts := []mcp.ToolOption{
		mcp.WithDescription("Delete a NodeBalancer. This is irreversible."),
	}
	deleteOpts = append(deleteOpts, envParams...)
	deleteOpts = append(deleteOpts,
		mcp.WithNumber("nodebalancer_id",
			mcp.Required(),
			mcp.Description("ID of the NodeBalancer to delete"),
		),
		tools.AddConfirmParam(),
	)
	deleteTool := mcp.NewTool("linode_delete_nodebalancer", deleteOpts...)

	s.AddTool(deleteTool, tools.WrapWithLogging("linode_delete_nodebalancer", handleDeleteNodeBalancer, sc))

	return nil
}
