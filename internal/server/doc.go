// Package server provides the ServerContext pattern and related
// infrastructure for the MCP Linode server.
//
// This package implements the core server architecture patterns including:
//
//   - ServerContext: Encapsulates all server dependencies and lifecycle management
//   - Functional Options: Clean dependency injection and configuration
//   - Client caching: One API client per configured environment, created lazily
//   - Health checks: Liveness and readiness handlers for the network transports
//
// The ServerContext Pattern:
//
// The ServerContext struct follows the context pattern commonly used in Go
// applications to encapsulate dependencies and provide clean separation of
// concerns. It includes:
//
//   - Environment configuration holding API credentials
//   - A lazily populated cache of retrying API clients, keyed by canonical
//     environment name
//   - Structured logger
//   - Retry policy and instrumentation provider shared by all clients
//   - Context for cancellation and lifecycle management (shutdown, cleanup)
//
// All dependencies are injected using functional options, making the code
// highly testable and modular.
//
// Example usage:
//
//	ctx := context.Background()
//	serverCtx, err := server.NewServerContext(ctx,
//		server.WithEnvironments(envs),
//		server.WithLogger(logger),
//		server.WithRetryPolicy(policy),
//		server.WithAllowDestructive(false),
//	)
//	if err != nil {
//		return err
//	}
//	defer serverCtx.Shutdown()
//
//	client, err := serverCtx.ClientForEnvironment("production")
//	if err != nil {
//		return err
//	}
//	instances, err := client.ListInstances(ctx)
//
// Shutdown closes every cached client and flushes instrumentation; it is
// idempotent, and ClientForEnvironment returns ErrServerShutdown afterwards.
package server
