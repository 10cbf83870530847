package domain

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-linode/internal/server"
	"github.com/giantswarm/mcp-linode/internal/tools"
)

// RegisterDomainTools registers all DNS domain tools with the MCP server
func RegisterDomainTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	envParams := tools.AddEnvironmentParam(sc)

	// linode_list_domains tool
	listOpts := []mcp.ToolOption{
		mcp.WithDescription("List all DNS domains on the account"),
	}
	listOpts = append(listOpts, envParams...)
	listTool := mcp.NewTool("linode_list_domains", listOpts...)

	s.AddTool(listTool, tools.WrapWithLogging("linode_list_domains", handleListDomains, sc))

	// linode_get_domain tool
	getOpts := []mcp.ToolOption{
		mcp.WithDescription("Get details of a single DNS domain"),
	}
	getOpts = append(getOpts, envParams...)
	getOpts = append(getOpts,
		mcp.WithNumber("domain_id",
			mcp.Required(),
			mcp.Description("ID of the domain"),
		),
	)
	getTool := mcp.NewTool("linode_get_domain", getOpts...)

	s.AddTool(getTool, tools.WrapWithLogging("linode_get_domain", handleGetDomain, sc))

	// linode_create_domain tool
	createOpts := []mcp.ToolOption{
		mcp.WithDescription("Create a new DNS domain zone"),
	}
	createOpts = append(createOpts, envParams...)
	createOpts = append(createOpts,
		mcp.WithString("domain",
			mcp.Required(),
			mcp.Description("Fully qualified domain name (e.g. 'example.com')"),
		),
		mcp.WithString("type",
			mcp.Required(),
			mcp.Description("Zone type: 'master' or 'slave'"),
		),
		mcp.WithString("soa_email",
			mcp.Description("SOA contact email, required for master zones"),
		),
		mcp.WithArray("tags",
			mcp.Description("Tags applied to the domain (optional)"),
		),
	)
	createTool := mcp.NewTool("linode_create_domain", createOpts...)

	s.AddTool(createTool, tools.WrapWithLogging("linode_create_domain", handleCreateDomain, sc))

	// linode_delete_domain tool
	deleteOpts := []mcp.ToolOption{
		mcp.WithDescription("Delete a DNS domain and all its records. This is irreversible."),
	}
	deleteOpts = append(deleteOpts, envParams...)
	deleteOpts = append(deleteOpts,
		mcp.WithNumber("domain_id",
			mcp.Required(),
			mcp.Description("ID of the domain to delete"),
		),
		tools.AddConfirmParam(),
	)
	deleteTool := mcp.NewTool("linode_delete_domain", deleteOpts...)

	s.AddTool(deleteTool, tools.WrapWithLogging("linode_delete_domain", handleDeleteDomain, sc))

	// linode_list_domain_records tool
	listRecordsOpts := []mcp.ToolOption{
		mcp.WithDescription("List all DNS records of a domain"),
	}
	listRecordsOpts = append(listRecordsOpts, envParams...)
	listRecordsOpts = append(listRecordsOpts,
		mcp.WithNumber("domain_id",
			mcp.Required(),
			mcp.Description("ID of the domain"),
		),
	)
	listRecordsTool := mcp.NewTool("linode_list_domain_records", listRecordsOpts...)

	s.AddTool(listRecordsTool, tools.WrapWithLogging("linode_list_domain_records", handleListDomainRecords, sc))

	// linode_create_domain_record tool
	createRecordOpts := []mcp.ToolOption{
		mcp.WithDescription("Create a DNS record within a domain"),
	}
	createRecordOpts = append(createRecordOpts, envParams...)
	createRecordOpts = append(createRecordOpts,
		mcp.WithNumber("domain_id",
			mcp.Required(),
			mcp.Description("ID of the domain"),
		),
		mcp.WithString("type",
			mcp.Required(),
			mcp.Description("Record type (A, AAAA, CNAME, MX, TXT, SRV, NS, CAA, PTR)"),
		),
		mcp.WithString("name",
			mcp.Description("Record name relative to the zone (optional)"),
		),
		mcp.WithString("target",
			mcp.Description("Record target, e.g. an IP address or hostname (optional)"),
		),
		mcp.WithNumber("priority",
			mcp.Description("Priority for MX and SRV records (optional)"),
		),
		mcp.WithNumber("ttl_sec",
			mcp.Description("Time to live in seconds (optional)"),
		),
	)
	createRecordTool := mcp.NewTool("linode_create_domain_record", createRecordOpts...)

	s.AddTool(createRecordTool, tools.WrapWithLogging("linode_create_domain_record", handleCreateDomainRecord, sc))

	// linode_delete_domain_record tool
	deleteRecordOpts := []mcp.ToolOption{
		mcp.WithDescription("Delete a DNS record from a domain. This is irreversible."),
	}
	deleteRecordOpts = append(deleteRecordOpts, envParams...)
	deleteRecordOpts = append(deleteRecordOpts,
		mcp.WithNumber("domain_id",
			mcp.Required(),
			mcp.Description("ID of the domain"),
		),
		mcp.WithNumber("record_id",
			mcp.Required(),
			mcp.Description("ID of the record to delete"),
		),
		tools.AddConfirmParam(),
	)
	deleteRecordTool := mcp.NewTool("linode_delete_domain_record", deleteRecordOpts...)

	s.AddTool(deleteRecordTool, tools.WrapWithLogging("linode_delete_domain_record", handleDeleteDomainRecord, sc))

	return nil
}
