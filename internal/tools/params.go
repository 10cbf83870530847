package tools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/giantswarm/mcp-linode/internal/server"
)

// AddEnvironmentParam returns tool options for the shared environment
// parameter. The parameter is only added when more than one environment is
// configured, keeping single-environment setups uncluttered.
//
// Usage in tool registration:
//
//	opts := []mcp.ToolOption{
//	    mcp.WithDescription("..."),
//	}
//	opts = append(opts, tools.AddEnvironmentParam(sc)...)
//	opts = append(opts, /* tool-specific params */...)
//	tool := mcp.NewTool("tool_name", opts...)
func AddEnvironmentParam(sc *server.ServerContext) []mcp.ToolOption {
	envs := sc.Environments()
	if envs == nil || len(envs.EnvironmentNames()) <= 1 {
		return nil
	}

	return []mcp.ToolOption{
		mcp.WithString("environment",
			mcp.Description("Named API environment to use (optional, uses the default environment if not specified)"),
		),
	}
}

// EnvironmentArg returns the environment argument of a request, or the
// empty string when absent. Empty selects the default environment.
func EnvironmentArg(request mcp.CallToolRequest) string {
	env, _ := OptionalStringArg(request, "environment")
	return env
}

// StringArg returns a required string argument or an error naming the
// missing parameter.
func StringArg(request mcp.CallToolRequest, key string) (string, error) {
	value, ok := OptionalStringArg(request, key)
	if !ok || value == "" {
		return "", fmt.Errorf("missing required parameter %q", key)
	}
	return value, nil
}

// OptionalStringArg returns a string argument and whether it was present.
func OptionalStringArg(request mcp.CallToolRequest, key string) (string, bool) {
	args := request.GetArguments()
	value, ok := args[key].(string)
	return value, ok
}

// IntArg returns a required integer argument. JSON numbers arrive as
// float64, so both representations are accepted.
func IntArg(request mcp.CallToolRequest, key string) (int, error) {
	value, ok := OptionalIntArg(request, key)
	if !ok {
		return 0, fmt.Errorf("missing required parameter %q", key)
	}
	return value, nil
}

// OptionalIntArg returns an integer argument and whether it was present.
func OptionalIntArg(request mcp.CallToolRequest, key string) (int, bool) {
	args := request.GetArguments()
	switch v := args[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

// BoolArg returns a boolean argument, defaulting to false when absent.
func BoolArg(request mcp.CallToolRequest, key string) bool {
	args := request.GetArguments()
	value, _ := args[key].(bool)
	return value
}

// StringSliceArg returns a string-array argument, tolerating both []any
// and []string representations. Absent or malformed arguments yield nil.
func StringSliceArg(request mcp.CallToolRequest, key string) []string {
	args := request.GetArguments()
	switch v := args[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
