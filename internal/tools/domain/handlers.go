// Package domain implements MCP tools for DNS zone and record management.
package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-linode/internal/linode"
	"github.com/giantswarm/mcp-linode/internal/server"
	"github.com/giantswarm/mcp-linode/internal/tools"
)

func handleListDomains(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	domains, err := client.ListDomains(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list domains: %v", err)), nil
	}

	return tools.JSONResult(domains), nil
}

func handleGetDomain(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	id, err := tools.IntArg(request, "domain_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	dom, err := client.GetDomain(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get domain %d: %v", id, err)), nil
	}

	return tools.JSONResult(dom), nil
}

func handleCreateDomain(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	name, err := tools.StringArg(request, "domain")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	zoneType, err := tools.StringArg(request, "type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := linode.DomainCreateOptions{
		Domain: name,
		Type:   zoneType,
		Tags:   tools.StringSliceArg(request, "tags"),
	}
	opts.SOAEmail, _ = tools.OptionalStringArg(request, "soa_email")

	if strings.EqualFold(zoneType, "master") && opts.SOAEmail == "" {
		return mcp.NewToolResultError("soa_email is required for master zones"), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	dom, err := client.CreateDomain(ctx, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create domain: %v", err)), nil
	}

	return tools.JSONResult(dom), nil
}

func handleDeleteDomain(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if blocked := tools.CheckDestructiveOperation(sc, request, "delete"); blocked != nil {
		return blocked, nil
	}

	id, err := tools.IntArg(request, "domain_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := client.DeleteDomain(ctx, id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete domain %d: %v", id, err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Domain %d deleted", id)), nil
}

func handleListDomainRecords(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	id, err := tools.IntArg(request, "domain_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	records, err := client.ListDomainRecords(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list records of domain %d: %v", id, err)), nil
	}

	return tools.JSONResult(records), nil
}

func handleCreateDomainRecord(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	id, err := tools.IntArg(request, "domain_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	recordType, err := tools.StringArg(request, "type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := linode.DomainRecordCreateOptions{Type: recordType}
	opts.Name, _ = tools.OptionalStringArg(request, "name")
	opts.Target, _ = tools.OptionalStringArg(request, "target")
	if priority, ok := tools.OptionalIntArg(request, "priority"); ok {
		opts.Priority = &priority
	}
	if ttl, ok := tools.OptionalIntArg(request, "ttl_sec"); ok {
		opts.TTLSec = &ttl
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	record, err := client.CreateDomainRecord(ctx, id, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create record in domain %d: %v", id, err)), nil
	}

	return tools.JSONResult(record), nil
}

func handleDeleteDomainRecord(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	if blocked := tools.CheckDestructiveOperation(sc, request, "delete"); blocked != nil {
		return blocked, nil
	}

	domainID, err := tools.IntArg(request, "domain_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	recordID, err := tools.IntArg(request, "record_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := tools.ClientFor(request, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := client.DeleteDomainRecord(ctx, domainID, recordID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete record %d of domain %d: %v", recordID, domainID, err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Record %d of domain %d deleted", recordID, domainID)), nil
}
