// Package config loads the environment configuration for mcp-linode.
//
// An environment pairs a Linode API base URL with a bearer token under a
// name ("default", "staging", ...). Configuration is merged from three
// sources, later ones winning:
//
//  1. an optional JSON config file (--config flag or LINODE_MCP_CONFIG)
//  2. a .env file in the working directory, if present
//  3. process environment variables (LINODE_API_TOKEN, LINODE_API_URL,
//     LINODE_DEFAULT_ENVIRONMENT)
//
// The rest of the application treats the result as an opaque, immutable
// settings object and resolves credentials per named environment.
package config
