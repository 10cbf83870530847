package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/giantswarm/mcp-linode/internal/config"
	"github.com/giantswarm/mcp-linode/internal/instrumentation"
	"github.com/giantswarm/mcp-linode/internal/linode"
	"github.com/giantswarm/mcp-linode/internal/logging"
	"github.com/giantswarm/mcp-linode/internal/server"
	"github.com/giantswarm/mcp-linode/internal/tools/account"
	"github.com/giantswarm/mcp-linode/internal/tools/domain"
	"github.com/giantswarm/mcp-linode/internal/tools/firewall"
	"github.com/giantswarm/mcp-linode/internal/tools/instance"
	"github.com/giantswarm/mcp-linode/internal/tools/lke"
	"github.com/giantswarm/mcp-linode/internal/tools/metadata"
	"github.com/giantswarm/mcp-linode/internal/tools/nodebalancer"
	"github.com/giantswarm/mcp-linode/internal/tools/objectstorage"
	"github.com/giantswarm/mcp-linode/internal/tools/volume"
)

// Transport types supported by the serve command.
const (
	transportStdio          = "stdio"
	transportSSE            = "sse"
	transportStreamableHTTP = "streamable-http"
)

// ServeConfig holds all configuration for the serve command.
type ServeConfig struct {
	Transport       string
	HTTPAddr        string
	SSEEndpoint     string
	MessageEndpoint string
	HTTPEndpoint    string
	MetricsAddr     string

	ConfigPath       string
	AllowDestructive bool
	QPSLimit         float64
	BurstLimit       int
	RequestTimeout   time.Duration

	MaxRetries    int
	BaseDelay     time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
	NoJitter      bool

	DebugMode bool
	LogFormat string
}

// newServeCmd creates the Cobra command for starting the MCP server.
func newServeCmd() *cobra.Command {
	var cfg ServeConfig

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP Linode server",
		Long: `Start the MCP Linode server to provide Linode API tools via the
Model Context Protocol. Supports stdio, SSE, and streamable HTTP transports.

The server needs a Linode API token, provided either through the
LINODE_API_TOKEN environment variable (also read from a .env file) or a
JSON config file with one or more named environments.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Environment variables act as fallbacks for unset flags so
			// container deployments do not need to template the command line.
			if !cmd.Flags().Changed("transport") {
				if v := os.Getenv("MCP_TRANSPORT"); v != "" {
					cfg.Transport = v
				}
			}
			if !cmd.Flags().Changed("http-addr") {
				if v := os.Getenv("MCP_HTTP_ADDR"); v != "" {
					cfg.HTTPAddr = v
				}
			}
			if !cmd.Flags().Changed("metrics-addr") {
				if v := os.Getenv("METRICS_ADDR"); v != "" {
					cfg.MetricsAddr = v
				}
			}
			if !cmd.Flags().Changed("allow-destructive") {
				if v, ok := parseBoolEnv("LINODE_ALLOW_DESTRUCTIVE"); ok {
					cfg.AllowDestructive = v
				}
			}
			if !cmd.Flags().Changed("max-retries") {
				if v, ok := parseIntEnv("LINODE_MAX_RETRIES"); ok {
					cfg.MaxRetries = v
				}
			}
			if !cmd.Flags().Changed("timeout") {
				if v, ok := parseDurationEnv(os.Getenv("LINODE_REQUEST_TIMEOUT"), "LINODE_REQUEST_TIMEOUT"); ok {
					cfg.RequestTimeout = v
				}
			}

			switch cfg.Transport {
			case transportStdio, transportSSE, transportStreamableHTTP:
			default:
				return fmt.Errorf("invalid transport %q: must be one of %s, %s, %s",
					cfg.Transport, transportStdio, transportSSE, transportStreamableHTTP)
			}
			if cfg.MaxRetries < 0 {
				return fmt.Errorf("--max-retries must not be negative, got %d", cfg.MaxRetries)
			}
			if cfg.BaseDelay <= 0 {
				return fmt.Errorf("--base-delay must be positive, got %v", cfg.BaseDelay)
			}
			if cfg.MaxDelay < cfg.BaseDelay {
				return fmt.Errorf("--max-delay (%v) must not be smaller than --base-delay (%v)", cfg.MaxDelay, cfg.BaseDelay)
			}
			if cfg.BackoffFactor < 1 {
				return fmt.Errorf("--backoff-factor must be at least 1, got %v", cfg.BackoffFactor)
			}

			return runServe(cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.Transport, "transport", transportStdio, "Transport type: stdio, sse, or streamable-http (env: MCP_TRANSPORT)")
	cmd.Flags().StringVar(&cfg.HTTPAddr, "http-addr", ":8080", "HTTP server address for sse and streamable-http transports (env: MCP_HTTP_ADDR)")
	cmd.Flags().StringVar(&cfg.SSEEndpoint, "sse-endpoint", "/sse", "SSE endpoint path")
	cmd.Flags().StringVar(&cfg.MessageEndpoint, "message-endpoint", "/message", "Message endpoint path for SSE transport")
	cmd.Flags().StringVar(&cfg.HTTPEndpoint, "http-endpoint", "/mcp", "Endpoint path for streamable-http transport")
	cmd.Flags().StringVar(&cfg.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on a dedicated address instead of the transport listener (env: METRICS_ADDR)")

	cmd.Flags().StringVar(&cfg.ConfigPath, "config", "", "Path to a JSON config file with named API environments (env: LINODE_MCP_CONFIG)")
	cmd.Flags().BoolVar(&cfg.AllowDestructive, "allow-destructive", false, "Allow destructive operations without per-call confirmation (env: LINODE_ALLOW_DESTRUCTIVE)")
	cmd.Flags().Float64Var(&cfg.QPSLimit, "qps-limit", 0, "Client-side API rate limit in requests per second, 0 disables limiting")
	cmd.Flags().IntVar(&cfg.BurstLimit, "burst-limit", 1, "Burst size for the client-side rate limiter")
	cmd.Flags().DurationVar(&cfg.RequestTimeout, "timeout", linode.DefaultTimeout, "Timeout for individual API requests (env: LINODE_REQUEST_TIMEOUT)")

	cmd.Flags().IntVar(&cfg.MaxRetries, "max-retries", linode.DefaultMaxRetries, "Number of retries after a failed API request (env: LINODE_MAX_RETRIES)")
	cmd.Flags().DurationVar(&cfg.BaseDelay, "base-delay", linode.DefaultBaseDelay, "Backoff delay before the first retry")
	cmd.Flags().DurationVar(&cfg.MaxDelay, "max-delay", linode.DefaultMaxDelay, "Upper bound on the backoff delay")
	cmd.Flags().Float64Var(&cfg.BackoffFactor, "backoff-factor", linode.DefaultBackoffFactor, "Multiplier applied to the backoff delay per retry")
	cmd.Flags().BoolVar(&cfg.NoJitter, "no-jitter", false, "Disable backoff jitter (useful for reproducing retry timing)")

	cmd.Flags().BoolVar(&cfg.DebugMode, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&cfg.LogFormat, "log-format", "json", "Log format: json or text")

	return cmd
}

// parseDurationEnv parses a duration value, logging a warning on failure.
func parseDurationEnv(value, name string) (time.Duration, bool) {
	if value == "" {
		return 0, false
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q: %v", name, value, err)
		return 0, false
	}
	return d, true
}

// parseIntEnv parses an integer environment variable, logging a warning on failure.
func parseIntEnv(name string) (int, bool) {
	value := os.Getenv(name)
	if value == "" {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q: %v", name, value, err)
		return 0, false
	}
	return n, true
}

// parseBoolEnv parses a boolean environment variable, logging a warning on failure.
func parseBoolEnv(name string) (bool, bool) {
	value := os.Getenv(name)
	if value == "" {
		return false, false
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q: %v", name, value, err)
		return false, false
	}
	return b, true
}

// runServe contains the main server logic with support for multiple transports.
func runServe(cfg ServeConfig) error {
	environments, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return err
	}
	if err := environments.Validate(); err != nil {
		return err
	}

	logger := logging.New(cfg.LogFormat, cfg.DebugMode)

	// Setup graceful shutdown - listen for both SIGINT and SIGTERM
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Initialize OpenTelemetry instrumentation provider
	instrumentationConfig := instrumentation.DefaultConfig()
	instrumentationConfig.ServiceVersion = rootCmd.Version
	instrumentationProvider, err := instrumentation.NewProvider(shutdownCtx, instrumentationConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if shutdownErr := instrumentationProvider.Shutdown(context.Background()); shutdownErr != nil {
			if cfg.Transport != transportStdio {
				log.Printf("Error during instrumentation shutdown: %v", shutdownErr)
			}
		}
	}()

	serverConfig := server.NewDefaultConfig()
	serverConfig.Version = rootCmd.Version
	serverConfig.AllowDestructive = cfg.AllowDestructive
	serverConfig.QPSLimit = cfg.QPSLimit
	serverConfig.BurstLimit = cfg.BurstLimit
	serverConfig.RequestTimeout = cfg.RequestTimeout
	serverConfig.LogFormat = cfg.LogFormat
	if cfg.DebugMode {
		serverConfig.LogLevel = "debug"
	}

	retryPolicy := linode.RetryPolicy{
		MaxRetries:    cfg.MaxRetries,
		BaseDelay:     cfg.BaseDelay,
		MaxDelay:      cfg.MaxDelay,
		BackoffFactor: cfg.BackoffFactor,
		JitterEnabled: !cfg.NoJitter,
	}

	serverContext, err := server.NewServerContext(shutdownCtx,
		server.WithEnvironments(environments),
		server.WithConfig(serverConfig),
		server.WithLogger(logger),
		server.WithRetryPolicy(retryPolicy),
		server.WithInstrumentationProvider(instrumentationProvider),
	)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}
	defer func() {
		if err := serverContext.Shutdown(); err != nil {
			// Only log shutdown errors for non-stdio transports to avoid output interference
			if cfg.Transport != transportStdio {
				log.Printf("Error during server context shutdown: %v", err)
			}
		}
	}()

	// Create MCP server
	mcpSrv := mcpserver.NewMCPServer("mcp-linode", rootCmd.Version,
		mcpserver.WithToolCapabilities(true),
	)

	// Register all tool categories
	if err := account.RegisterAccountTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register account tools: %w", err)
	}
	if err := instance.RegisterInstanceTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register instance tools: %w", err)
	}
	if err := volume.RegisterVolumeTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register volume tools: %w", err)
	}
	if err := domain.RegisterDomainTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register domain tools: %w", err)
	}
	if err := firewall.RegisterFirewallTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register firewall tools: %w", err)
	}
	if err := nodebalancer.RegisterNodeBalancerTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register nodebalancer tools: %w", err)
	}
	if err := objectstorage.RegisterObjectStorageTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register object storage tools: %w", err)
	}
	if err := lke.RegisterLKETools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register LKE tools: %w", err)
	}
	if err := metadata.RegisterMetadataTools(mcpSrv, serverContext); err != nil {
		return fmt.Errorf("failed to register metadata tools: %w", err)
	}

	// A dedicated metrics listener keeps the scrape endpoint off the MCP
	// transport, and is the only way to expose metrics with stdio.
	if cfg.MetricsAddr != "" && instrumentationProvider.Enabled() {
		metricsServer, err := server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    cfg.MetricsAddr,
			InstrumentationProvider: instrumentationProvider,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}
		go func() {
			if err := metricsServer.Start(); err != nil {
				log.Printf("Metrics server error: %v", err)
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
			defer cancel()
			if err := metricsServer.Shutdown(ctx); err != nil && cfg.Transport != transportStdio {
				log.Printf("Error during metrics server shutdown: %v", err)
			}
		}()
	}

	// Start the appropriate server based on transport type
	switch cfg.Transport {
	case transportStdio:
		// Don't print startup message for stdio mode as it interferes with MCP communication
		return runStdioServer(mcpSrv)
	case transportSSE:
		fmt.Printf("Starting MCP Linode server with %s transport...\n", cfg.Transport)
		return runSSEServer(shutdownCtx, mcpSrv, serverContext, cfg)
	case transportStreamableHTTP:
		fmt.Printf("Starting MCP Linode server with %s transport...\n", cfg.Transport)
		return runStreamableHTTPServer(shutdownCtx, mcpSrv, serverContext, cfg)
	default:
		return fmt.Errorf("unsupported transport type: %s", cfg.Transport)
	}
}
