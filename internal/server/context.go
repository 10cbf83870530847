package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/giantswarm/mcp-linode/internal/config"
	"github.com/giantswarm/mcp-linode/internal/instrumentation"
	"github.com/giantswarm/mcp-linode/internal/linode"
)

// ClientFactory builds an API client for a named environment. The
// ServerContext uses it to create one client per environment on first use;
// tests swap it out to point clients at a local test server.
type ClientFactory func(env config.Environment) (*linode.RetryingClient, error)

// ServerContext encapsulates all dependencies needed by the MCP server
// and provides a clean abstraction for dependency injection and lifecycle
// management.
type ServerContext struct {
	config *Config
	envs   *config.Config
	logger *slog.Logger

	retryPolicy   linode.RetryPolicy
	clientFactory ClientFactory

	instrumentationProvider *instrumentation.Provider

	// Context management
	ctx    context.Context
	cancel context.CancelFunc

	// Lifecycle management. clients is keyed by canonical environment name
	// so aliases of the default environment share one client.
	mu       sync.RWMutex
	clients  map[string]*linode.RetryingClient
	shutdown bool
}

// NewServerContext creates a new ServerContext with default values.
// Use the provided functional options to customize the context.
func NewServerContext(ctx context.Context, opts ...Option) (*ServerContext, error) {
	serverCtx, cancel := context.WithCancel(ctx)

	sc := &ServerContext{
		ctx:         serverCtx,
		cancel:      cancel,
		config:      NewDefaultConfig(),
		logger:      slog.Default(),
		retryPolicy: linode.DefaultRetryPolicy(),
		clients:     make(map[string]*linode.RetryingClient),
	}
	sc.clientFactory = sc.defaultClientFactory

	for _, opt := range opts {
		if err := opt(sc); err != nil {
			cancel()
			return nil, err
		}
	}

	if err := sc.validate(); err != nil {
		cancel()
		return nil, err
	}

	return sc, nil
}

// Context returns the server context for cancellation and deadlines.
func (sc *ServerContext) Context() context.Context {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.ctx
}

// Logger returns the structured logger.
func (sc *ServerContext) Logger() *slog.Logger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.logger
}

// Config returns the server configuration.
func (sc *ServerContext) Config() *Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.config
}

// Environments returns the environment configuration.
func (sc *ServerContext) Environments() *config.Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.envs
}

// RetryPolicy returns the retry policy applied to API clients.
func (sc *ServerContext) RetryPolicy() linode.RetryPolicy {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.retryPolicy
}

// InstrumentationProvider returns the instrumentation provider, or nil
// when none was configured.
func (sc *ServerContext) InstrumentationProvider() *instrumentation.Provider {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.instrumentationProvider
}

// ClientForEnvironment returns the API client for the named environment,
// creating and caching it on first use. An empty name selects the default
// environment.
func (sc *ServerContext) ClientForEnvironment(name string) (*linode.RetryingClient, error) {
	sc.mu.RLock()
	if sc.shutdown {
		sc.mu.RUnlock()
		return nil, ErrServerShutdown
	}
	canonical, env, err := sc.envs.Resolve(name)
	if err != nil {
		sc.mu.RUnlock()
		return nil, err
	}
	if client, ok := sc.clients[canonical]; ok {
		sc.mu.RUnlock()
		return client, nil
	}
	sc.mu.RUnlock()

	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil, ErrServerShutdown
	}
	if client, ok := sc.clients[canonical]; ok {
		return client, nil
	}

	client, err := sc.clientFactory(env)
	if err != nil {
		return nil, fmt.Errorf("create client for environment %q: %w", canonical, err)
	}

	sc.clients[canonical] = client
	sc.logger.Debug("created API client", "environment", canonical)
	return client, nil
}

// defaultClientFactory builds a retrying client wired with the server's
// timeout, rate limit, logger, and instrumentation hooks.
func (sc *ServerContext) defaultClientFactory(env config.Environment) (*linode.RetryingClient, error) {
	metrics := sc.instrumentationProvider.Metrics()

	clientOpts := []linode.ClientOption{
		linode.WithTimeout(sc.config.RequestTimeout),
		linode.WithLogger(sc.logger),
		linode.WithRequestHook(func(op string, status int, duration time.Duration, err error) {
			outcome := instrumentation.StatusSuccess
			if err != nil {
				outcome = instrumentation.StatusError
			}
			metrics.RecordAPIRequest(context.Background(), op, outcome, duration)
		}),
	}
	if sc.config.UserAgent != "" {
		clientOpts = append(clientOpts, linode.WithUserAgent(sc.config.UserAgent))
	}
	if sc.config.QPSLimit > 0 {
		clientOpts = append(clientOpts, linode.WithRateLimit(sc.config.QPSLimit, sc.config.BurstLimit))
	}

	base, err := linode.NewClient(env.BaseURL, env.Token, clientOpts...)
	if err != nil {
		return nil, err
	}

	logger := sc.logger
	return linode.NewRetryingClient(base, sc.retryPolicy,
		linode.WithRetryHook(func(op string, attempt int, delay time.Duration, cause error) {
			logger.Debug("retrying API request",
				"operation", op, "attempt", attempt, "delay", delay, "cause", cause)
			metrics.RecordRetry(context.Background(), op)
		}),
	), nil
}

// Shutdown gracefully shuts down the server context. It closes all cached
// API clients, flushes instrumentation, and cancels the context. Safe to
// call more than once.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.logger.Info("shutting down server context")

	for name, client := range sc.clients {
		client.Close()
		delete(sc.clients, name)
	}

	var err error
	if sc.instrumentationProvider != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = sc.instrumentationProvider.Shutdown(shutdownCtx)
		cancel()
	}

	if sc.cancel != nil {
		sc.cancel()
	}
	sc.shutdown = true

	sc.logger.Info("server context shutdown complete")
	return err
}

// IsShutdown returns true if the server context has been shutdown.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// validate ensures all required dependencies are set.
func (sc *ServerContext) validate() error {
	if sc.envs == nil {
		return ErrMissingEnvironments
	}
	if sc.logger == nil {
		return ErrMissingLogger
	}
	if sc.config == nil {
		return ErrMissingConfig
	}
	return nil
}

// MetricsHandler returns the Prometheus scrape handler when
// instrumentation is enabled, or nil otherwise.
func (sc *ServerContext) MetricsHandler() http.Handler {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	if sc.instrumentationProvider == nil || !sc.instrumentationProvider.Enabled() {
		return nil
	}
	return sc.instrumentationProvider.Handler()
}

// Config holds the server configuration.
type Config struct {
	// Server identity reported to MCP clients.
	ServerName string `json:"serverName"`
	Version    string `json:"version"`

	// AllowDestructive permits delete and resize operations without a
	// per-call confirmation argument.
	AllowDestructive bool `json:"allowDestructive"`

	// Client settings applied to every API client the server creates.
	QPSLimit       float64       `json:"qpsLimit"`
	BurstLimit     int           `json:"burstLimit"`
	RequestTimeout time.Duration `json:"requestTimeout"`
	UserAgent      string        `json:"userAgent"`

	// Logging settings
	LogLevel  string `json:"logLevel"`
	LogFormat string `json:"logFormat"`
}

// NewDefaultConfig creates a configuration with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		ServerName:       "mcp-linode",
		Version:          "0.1.0",
		AllowDestructive: false,
		QPSLimit:         0,
		BurstLimit:       1,
		RequestTimeout:   linode.DefaultTimeout,
		LogLevel:         "info",
		LogFormat:        "json",
	}
}

// Clone creates a copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
