package instance

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-linode/internal/server"
	"github.com/giantswarm/mcp-linode/internal/tools"
)

// RegisterInstanceTools registers all compute instance tools with the MCP server
func RegisterInstanceTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	envParams := tools.AddEnvironmentParam(sc)

	// linode_list_instances tool
	listOpts := []mcp.ToolOption{
		mcp.WithDescription("List all compute instances on the account"),
	}
	listOpts = append(listOpts, envParams...)
	listTool := mcp.NewTool("linode_list_instances", listOpts...)

	s.AddTool(listTool, tools.WrapWithLogging("linode_list_instances", handleListInstances, sc))

	// linode_get_instance tool
	getOpts := []mcp.ToolOption{
		mcp.WithDescription("Get details of a single compute instance"),
	}
	getOpts = append(getOpts, envParams...)
	getOpts = append(getOpts,
		mcp.WithNumber("instance_id",
			mcp.Required(),
			mcp.Description("ID of the instance"),
		),
	)
	getTool := mcp.NewTool("linode_get_instance", getOpts...)

	s.AddTool(getTool, tools.WrapWithLogging("linode_get_instance", handleGetInstance, sc))

	// linode_create_instance tool
	createOpts := []mcp.ToolOption{
		mcp.WithDescription("Create a new compute instance"),
	}
	createOpts = append(createOpts, envParams...)
	createOpts = append(createOpts,
		mcp.WithString("region",
			mcp.Required(),
			mcp.Description("Region to deploy in (e.g. 'us-east')"),
		),
		mcp.WithString("type",
			mcp.Required(),
			mcp.Description("Instance type (e.g. 'g6-standard-2')"),
		),
		mcp.WithString("label",
			mcp.Description("Display label for the instance (optional)"),
		),
		mcp.WithString("image",
			mcp.Description("Image to deploy (e.g. 'linode/ubuntu24.04') (optional)"),
		),
		mcp.WithString("root_pass",
			mcp.Description("Root password, required when an image is given"),
		),
		mcp.WithArray("authorized_keys",
			mcp.Description("SSH public keys installed for root (optional)"),
		),
		mcp.WithArray("tags",
			mcp.Description("Tags applied to the instance (optional)"),
		),
		mcp.WithBoolean("private_ip",
			mcp.Description("Allocate a private IPv4 address (optional)"),
		),
		mcp.WithBoolean("backups_enabled",
			mcp.Description("Enable the backup service (optional)"),
		),
		mcp.WithNumber("firewall_id",
			mcp.Description("Firewall to assign the instance to (optional)"),
		),
	)
	createTool := mcp.NewTool("linode_create_instance", createOpts...)

	s.AddTool(createTool, tools.WrapWithLogging("linode_create_instance", handleCreateInstance, sc))

	// linode_delete_instance tool
	deleteOpts := []mcp.ToolOption{
		mcp.WithDescription("Delete a compute instance. This is irreversible and destroys all attached disks."),
	}
	deleteOpts = append(deleteOpts, envParams...)
	deleteOpts = append(deleteOpts,
		mcp.WithNumber("instance_id",
			mcp.Required(),
			mcp.Description("ID of the instance to delete"),
		),
		tools.AddConfirmParam(),
	)
	deleteTool := mcp.NewTool("linode_delete_instance", deleteOpts...)

	s.AddTool(deleteTool, tools.WrapWithLogging("linode_delete_instance", handleDeleteInstance, sc))

	// linode_boot_instance tool
	bootOpts := []mcp.ToolOption{
		mcp.WithDescription("Boot a powered-off compute instance"),
	}
	bootOpts = append(bootOpts, envParams...)
	bootOpts = append(bootOpts,
		mcp.WithNumber("instance_id",
			mcp.Required(),
			mcp.Description("ID of the instance to boot"),
		),
	)
	bootTool := mcp.NewTool("linode_boot_instance", bootOpts...)

	s.AddTool(bootTool, tools.WrapWithLogging("linode_boot_instance", handleBootInstance, sc))

	// linode_reboot_instance tool
	rebootOpts := []mcp.ToolOption{
		mcp.WithDescription("Reboot a running compute instance"),
	}
	rebootOpts = append(rebootOpts, envParams...)
	rebootOpts = append(rebootOpts,
		mcp.WithNumber("instance_id",
			mcp.Required(),
			mcp.Description("ID of the instance to reboot"),
		),
	)
	rebootTool := mcp.NewTool("linode_reboot_instance", rebootOpts...)

	s.AddTool(rebootTool, tools.WrapWithLogging("linode_reboot_instance", handleRebootInstance, sc))

	// linode_shutdown_instance tool
	shutdownOpts := []mcp.ToolOption{
		mcp.WithDescription("Shut down a running compute instance"),
	}
	shutdownOpts = append(shutdownOpts, envParams...)
	shutdownOpts = append(shutdownOpts,
		mcp.WithNumber("instance_id",
			mcp.Required(),
			mcp.Description("ID of the instance to shut down"),
		),
	)
	shutdownTool := mcp.NewTool("linode_shutdown_instance", shutdownOpts...)

	s.AddTool(shutdownTool, tools.WrapWithLogging("linode_shutdown_instance", handleShutdownInstance, sc))

	// linode_resize_instance tool
	resizeOpts := []mcp.ToolOption{
		mcp.WithDescription("Resize a compute instance to a different type. The instance is powered off during the migration."),
	}
	resizeOpts = append(resizeOpts, envParams...)
	resizeOpts = append(resizeOpts,
		mcp.WithNumber("instance_id",
			mcp.Required(),
			mcp.Description("ID of the instance to resize"),
		),
		mcp.WithString("type",
			mcp.Required(),
			mcp.Description("Target instance type (e.g. 'g6-standard-4')"),
		),
		tools.AddConfirmParam(),
	)
	resizeTool := mcp.NewTool("linode_resize_instance", resizeOpts...)

	s.AddTool(resizeTool, tools.WrapWithLogging("linode_resize_instance", handleResizeInstance, sc))

	return nil
}
