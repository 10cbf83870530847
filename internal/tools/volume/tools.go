package volume

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-linode/internal/server"
	"github.com/giantswarm/mcp-linode/internal/tools"
)

// RegisterVolumeTools registers all block storage volume tools with the MCP server
func RegisterVolumeTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	envParams := tools.AddEnvironmentParam(sc)

	// linode_list_volumes tool
	listOpts := []mcp.ToolOption{
		mcp.WithDescription("List all block storage volumes on the account"),
	}
	listOpts = append(listOpts, envParams...)
	listTool := mcp.NewTool("linode_list_volumes", listOpts...)

	s.AddTool(listTool, tools.WrapWithLogging("linode_list_volumes", handleListVolumes, sc))

	// linode_get_volume tool
	getOpts := []mcp.ToolOption{
		mcp.WithDescription("Get details of a single block storage volume"),
	}
	getOpts = append(getOpts, envParams...)
	getOpts = append(getOpts,
		mcp.WithNumber("volume_id",
			mcp.Required(),
			mcp.Description("ID of the volume"),
		),
	)
	getTool := mcp.NewTool("linode_get_volume", getOpts...)

	s.AddTool(getTool, tools.WrapWithLogging("linode_get_volume", handleGetVolume, sc))

	// linode_create_volume tool
	createOpts := []mcp.ToolOption{
		mcp.WithDescription("Create a new block storage volume"),
	}
	createOpts = append(createOpts, envParams...)
	createOpts = append(createOpts,
		mcp.WithString("label",
			mcp.Required(),
			mcp.Description("Display label for the volume"),
		),
		mcp.WithString("region",
			mcp.Description("Region to create the volume in (required unless linode_id is given)"),
		),
		mcp.WithNumber("size",
			mcp.Description("Size in GB (optional, default 20)"),
		),
		mcp.WithNumber("linode_id",
			mcp.Description("Instance to attach the new volume to (optional)"),
		),
		mcp.WithArray("tags",
			mcp.Description("Tags applied to the volume (optional)"),
		),
	)
	createTool := mcp.NewTool("linode_create_volume", createOpts...)

	s.AddTool(createTool, tools.WrapWithLogging("linode_create_volume", handleCreateVolume, sc))

	// linode_attach_volume tool
	attachOpts := []mcp.ToolOption{
		mcp.WithDescription("Attach a block storage volume to a compute instance"),
	}
	attachOpts = append(attachOpts, envParams...)
	attachOpts = append(attachOpts,
		mcp.WithNumber("volume_id",
			mcp.Required(),
			mcp.Description("ID of the volume to attach"),
		),
		mcp.WithNumber("linode_id",
			mcp.Required(),
			mcp.Description("ID of the instance to attach to"),
		),
	)
	attachTool := mcp.NewTool("linode_attach_volume", attachOpts...)

	s.AddTool(attachTool, tools.WrapWithLogging("linode_attach_volume", handleAttachVolume, sc))

	// linode_detach_volume tool
	detachOpts := []mcp.ToolOption{
		mcp.WithDescription("Detach a block storage volume from its instance"),
	}
	detachOpts = append(detachOpts, envParams...)
	detachOpts = append(detachOpts,
		mcp.WithNumber("volume_id",
			mcp.Required(),
			mcp.Description("ID of the volume to detach"),
		),
	)
	detachTool := mcp.NewTool("linode_detach_volume", detachOpts...)

	s.AddTool(detachTool, tools.WrapWithLogging("linode_detach_volume", handleDetachVolume, sc))

	// linode_delete_volume tool
	deleteOpts := []mcp.ToolOption{
		mcp.WithDescription("Delete a block storage volume. This is irreversible."),
	}
	deleteOpts = append(deleteOpts, envParams...)
	deleteOpts = append(deleteOpts,
		mcp.WithNumber("volume_id",
			mcp.Required(),
			mcp.Description("ID of the volume to delete"),
		),
		tools.AddConfirmParam(),
	)
	deleteTool := mcp.NewTool("linode_delete_volume", deleteOpts...)

	s.AddTool(deleteTool, tools.WrapWithLogging("linode_delete_volume", handleDeleteVolume, sc))

	return nil
}
