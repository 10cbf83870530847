package tools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/giantswarm/mcp-linode/internal/server"
)

// CheckDestructiveOperation verifies if a destructive operation is allowed
// given the current server configuration. Returns an error result if
// blocked, nil if allowed.
//
// This centralizes the destructive-operation check to avoid code
// duplication across all tool handlers that delete or irreversibly modify
// resources.
//
// Operations are allowed if:
//   - The server was started with --allow-destructive, OR
//   - The request carries a confirm:true argument
//
// Protected operations include: delete, resize, recycle, revoke
func CheckDestructiveOperation(sc *server.ServerContext, request mcp.CallToolRequest, operation string) *mcp.CallToolResult {
	if sc.Config().AllowDestructive {
		return nil
	}
	if BoolArg(request, "confirm") {
		return nil
	}

	return mcp.NewToolResultError(fmt.Sprintf(
		"%s operations require confirmation: pass confirm:true, or start the server with --allow-destructive",
		cases.Title(language.English).String(operation),
	))
}

// AddConfirmParam returns the tool option for the shared confirm parameter
// carried by every destructive tool.
func AddConfirmParam() mcp.ToolOption {
	return mcp.WithBoolean("confirm",
		mcp.Description("Confirm this destructive operation (required unless the server allows destructive operations)"),
	)
}
