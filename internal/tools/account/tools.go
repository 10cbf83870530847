package account

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-linode/internal/server"
	"github.com/giantswarm/mcp-linode/internal/tools"
)

// RegisterAccountTools registers account and profile tools with the MCP server
func RegisterAccountTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	envParams := tools.AddEnvironmentParam(sc)

	// linode_get_account tool
	accountOpts := []mcp.ToolOption{
		mcp.WithDescription("Get billing and contact information of the account"),
	}
	accountOpts = append(accountOpts, envParams...)
	accountTool := mcp.NewTool("linode_get_account", accountOpts...)

	s.AddTool(accountTool, tools.WrapWithLogging("linode_get_account", handleGetAccount, sc))

	// linode_get_profile tool
	profileOpts := []mcp.ToolOption{
		mcp.WithDescription("Get the profile of the authenticated user"),
	}
	profileOpts = append(profileOpts, envParams...)
	profileTool := mcp.NewTool("linode_get_profile", profileOpts...)

	s.AddTool(profileTool, tools.WrapWithLogging("linode_get_profile", handleGetProfile, sc))

	return nil
}
