package cmd

import (
	"context"
	"fmt"
	"log"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/giantswarm/mcp-linode/internal/server"
)

// runSSEServer runs the server with SSE transport
func runSSEServer(ctx context.Context, mcpSrv *mcpserver.MCPServer, sc *server.ServerContext, cfg ServeConfig) error {
	if cfg.DebugMode {
		log.Printf("[DEBUG] Initializing SSE server on %s (sse: %s, message: %s)",
			cfg.HTTPAddr, cfg.SSEEndpoint, cfg.MessageEndpoint)
	}

	// Create SSE server with custom endpoints
	sseServer := mcpserver.NewSSEServer(mcpSrv,
		mcpserver.WithSSEEndpoint(cfg.SSEEndpoint),
		mcpserver.WithMessageEndpoint(cfg.MessageEndpoint),
	)

	fmt.Printf("SSE server starting on %s\n", cfg.HTTPAddr)
	fmt.Printf("  SSE endpoint: %s\n", cfg.SSEEndpoint)
	fmt.Printf("  Message endpoint: %s\n", cfg.MessageEndpoint)

	// Start server in goroutine
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := sseServer.Start(cfg.HTTPAddr); err != nil {
			serverDone <- err
		}
	}()

	// Wait for either shutdown signal or server completion
	select {
	case <-ctx.Done():
		fmt.Println("Shutdown signal received, stopping SSE server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
		defer cancel()
		if err := sseServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down SSE server: %w", err)
		}
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("SSE server stopped with error: %w", err)
		}
		fmt.Println("SSE server stopped normally")
	}

	fmt.Println("SSE server gracefully stopped")
	return nil
}
