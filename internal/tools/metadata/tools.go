package metadata

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-linode/internal/server"
	"github.com/giantswarm/mcp-linode/internal/tools"
)

// RegisterMetadataTools registers region, type, and image catalogue tools
// with the MCP server. These listings change rarely and are served from a
// short-lived cache.
func RegisterMetadataTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	envParams := tools.AddEnvironmentParam(sc)

	// linode_list_regions tool
	regionsOpts := []mcp.ToolOption{
		mcp.WithDescription("List all available regions"),
	}
	regionsOpts = append(regionsOpts, envParams...)
	regionsTool := mcp.NewTool("linode_list_regions", regionsOpts...)

	s.AddTool(regionsTool, tools.WrapWithLogging("linode_list_regions", handleListRegions, sc))

	// linode_list_types tool
	typesOpts := []mcp.ToolOption{
		mcp.WithDescription("List all available instance types with pricing"),
	}
	typesOpts = append(typesOpts, envParams...)
	typesTool := mcp.NewTool("linode_list_types", typesOpts...)

	s.AddTool(typesTool, tools.WrapWithLogging("linode_list_types", handleListTypes, sc))

	// linode_list_images tool
	imagesOpts := []mcp.ToolOption{
		mcp.WithDescription("List all available images"),
	}
	imagesOpts = append(imagesOpts, envParams...)
	imagesTool := mcp.NewTool("linode_list_images", imagesOpts...)

	s.AddTool(imagesTool, tools.WrapWithLogging("linode_list_images", handleListImages, sc))

	return nil
}
