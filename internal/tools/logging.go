package tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-linode/internal/instrumentation"
	"github.com/giantswarm/mcp-linode/internal/logging"
	"github.com/giantswarm/mcp-linode/internal/server"
)

// WrapWithLogging wraps a tool handler with structured logging and
// instrumentation. The wrapper automatically captures:
//   - Tool invocation timing
//   - Target environment from request arguments
//   - Success/error status from the handler result
//
// MCP tool errors travel inside the result rather than as Go errors, so
// both channels are inspected when classifying the outcome.
func WrapWithLogging(
	toolName string,
	handler ToolHandler,
	sc *server.ServerContext,
) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		result, err := handler(ctx, request, sc)

		duration := time.Since(start)
		status := logging.StatusSuccess
		metricStatus := instrumentation.StatusSuccess
		if err != nil || (result != nil && result.IsError) {
			status = logging.StatusError
			metricStatus = instrumentation.StatusError
		}

		logger := sc.Logger()
		attrs := []any{
			logging.Tool(toolName),
			logging.Status(status),
			logging.Duration(duration),
		}
		if env := EnvironmentArg(request); env != "" {
			attrs = append(attrs, logging.Environment(env))
		}
		if err != nil {
			attrs = append(attrs, logging.Err(err))
			logger.Error("tool invocation failed", attrs...)
		} else {
			logger.Debug("tool invocation complete", attrs...)
		}

		sc.InstrumentationProvider().Metrics().RecordToolInvocation(ctx, toolName, metricStatus, duration)

		return result, err
	}
}
