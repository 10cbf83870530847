package server

import (
	"errors"
	"log/slog"

	"github.com/giantswarm/mcp-linode/internal/config"
	"github.com/giantswarm/mcp-linode/internal/instrumentation"
	"github.com/giantswarm/mcp-linode/internal/linode"
)

// Option is a functional option for configuring ServerContext.
type Option func(*ServerContext) error

// WithEnvironments sets the environment configuration holding API
// credentials. Required.
func WithEnvironments(cfg *config.Config) Option {
	return func(sc *ServerContext) error {
		if cfg == nil {
			return ErrMissingEnvironments
		}
		sc.envs = cfg
		return nil
	}
}

// WithLogger sets the structured logger for the ServerContext.
func WithLogger(logger *slog.Logger) Option {
	return func(sc *ServerContext) error {
		if logger == nil {
			return ErrMissingLogger
		}
		sc.logger = logger
		return nil
	}
}

// WithConfig sets the configuration for the ServerContext.
func WithConfig(config *Config) Option {
	return func(sc *ServerContext) error {
		if config == nil {
			return ErrMissingConfig
		}
		sc.config = config.Clone()
		return nil
	}
}

// WithServerName sets the server name in the configuration.
func WithServerName(name string) Option {
	return func(sc *ServerContext) error {
		if sc.config == nil {
			sc.config = NewDefaultConfig()
		}
		sc.config.ServerName = name
		return nil
	}
}

// WithAllowDestructive enables or disables destructive operations.
func WithAllowDestructive(enabled bool) Option {
	return func(sc *ServerContext) error {
		if sc.config == nil {
			sc.config = NewDefaultConfig()
		}
		sc.config.AllowDestructive = enabled
		return nil
	}
}

// WithRetryPolicy sets the retry policy applied to every API client the
// server creates.
func WithRetryPolicy(policy linode.RetryPolicy) Option {
	return func(sc *ServerContext) error {
		sc.retryPolicy = policy
		return nil
	}
}

// WithClientFactory replaces the default API client factory. Used by tests
// to point clients at a local test server.
func WithClientFactory(factory ClientFactory) Option {
	return func(sc *ServerContext) error {
		if factory == nil {
			return errors.New("client factory must not be nil")
		}
		sc.clientFactory = factory
		return nil
	}
}

// WithInstrumentationProvider sets the OpenTelemetry instrumentation
// provider used for metrics.
func WithInstrumentationProvider(provider *instrumentation.Provider) Option {
	return func(sc *ServerContext) error {
		sc.instrumentationProvider = provider
		return nil
	}
}

// Error definitions for ServerContext validation and operations.
var (
	ErrMissingEnvironments = errors.New("environment configuration is required")
	ErrMissingLogger       = errors.New("logger is required")
	ErrMissingConfig       = errors.New("configuration is required")
	ErrServerShutdown      = errors.New("server context has been shutdown")
)
