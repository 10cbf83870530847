// Package cmd provides the command-line interface for mcp-linode.
//
// This package implements a Cobra-based CLI with multiple subcommands:
//   - serve: Starts the MCP server (default behavior when no subcommand is provided)
//   - version: Displays the application version
//
// The CLI maintains backwards compatibility by running the serve command when
// no subcommand is specified.
//
// Command Structure:
//
//	mcp-linode [flags]                 # Starts the MCP server (default)
//	mcp-linode serve [flags]           # Explicitly starts the MCP server
//	mcp-linode version                 # Shows version information
//	mcp-linode help [command]          # Shows help information
//
// The serve command supports multiple transport options:
//   - stdio: Standard input/output (default) - for command-line integration
//   - sse: Server-Sent Events over HTTP - for web-based clients
//   - streamable-http: Streamable HTTP transport - for HTTP-based integration
//
// Transport Configuration Examples:
//
//	mcp-linode serve --transport stdio           # Default STDIO transport
//	mcp-linode serve --transport sse --http-addr :8080 --sse-endpoint /sse
//	mcp-linode serve --transport streamable-http --http-addr :9000 --http-endpoint /mcp
//
// The serve command also supports flags for controlling API client
// behavior: the retry policy (attempt count, backoff delays, jitter),
// client-side rate limiting, request timeouts, and whether destructive
// operations are allowed without per-call confirmation.
package cmd
