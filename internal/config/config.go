package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by Load.
const (
	EnvConfigPath         = "LINODE_MCP_CONFIG"
	EnvAPIToken           = "LINODE_API_TOKEN"
	EnvAPIURL             = "LINODE_API_URL"
	EnvDefaultEnvironment = "LINODE_DEFAULT_ENVIRONMENT"
)

// DefaultEnvironmentName is used when no environment is configured or
// requested explicitly.
const DefaultEnvironmentName = "default"

// Environment holds the credentials for one named API environment. Both
// fields are immutable once loaded.
type Environment struct {
	// BaseURL is the API endpoint. Empty means the public Linode API.
	BaseURL string `json:"base_url"`

	// Token is the bearer token used to authenticate every request.
	Token string `json:"token"`
}

// Config is the full environment configuration.
type Config struct {
	// DefaultEnvironment names the environment used when a tool call
	// does not specify one.
	DefaultEnvironment string `json:"default_environment"`

	// Environments maps environment names to credentials.
	Environments map[string]Environment `json:"environments"`
}

// Load builds the configuration from the optional config file at path and
// the process environment. An empty path falls back to LINODE_MCP_CONFIG;
// if that is also empty, no file is read. A .env file in the working
// directory is loaded best-effort before environment variables are
// consulted.
func Load(path string) (*Config, error) {
	// Missing .env is the normal case; only explicit files matter.
	_ = godotenv.Load()

	cfg := &Config{
		DefaultEnvironment: DefaultEnvironmentName,
		Environments:       make(map[string]Environment),
	}

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
		if cfg.Environments == nil {
			cfg.Environments = make(map[string]Environment)
		}
		if cfg.DefaultEnvironment == "" {
			cfg.DefaultEnvironment = DefaultEnvironmentName
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// applyEnvOverrides lets environment variables win over file contents.
// LINODE_API_TOKEN / LINODE_API_URL define or override the default
// environment, which keeps the zero-config case (a single exported token)
// working without any file.
func applyEnvOverrides(cfg *Config) {
	if name := os.Getenv(EnvDefaultEnvironment); name != "" {
		cfg.DefaultEnvironment = name
	}

	token := os.Getenv(EnvAPIToken)
	baseURL := os.Getenv(EnvAPIURL)
	if token == "" && baseURL == "" {
		return
	}

	env := cfg.Environments[cfg.DefaultEnvironment]
	if token != "" {
		env.Token = token
	}
	if baseURL != "" {
		env.BaseURL = baseURL
	}
	cfg.Environments[cfg.DefaultEnvironment] = env
}

// Resolve returns the credentials for the named environment. An empty
// name resolves to the configured default. The returned name is the
// canonical environment name, suitable as a cache key.
func (c *Config) Resolve(name string) (string, Environment, error) {
	if name == "" {
		name = c.DefaultEnvironment
	}
	env, ok := c.Environments[name]
	if !ok {
		return "", Environment{}, fmt.Errorf("config: unknown environment %q", name)
	}
	if env.Token == "" {
		return "", Environment{}, fmt.Errorf("config: environment %q has no API token", name)
	}
	return name, env, nil
}

// EnvironmentNames returns the configured environment names. Used for
// diagnostics and tool descriptions.
func (c *Config) EnvironmentNames() []string {
	names := make([]string, 0, len(c.Environments))
	for name := range c.Environments {
		names = append(names, name)
	}
	return names
}

// Validate checks that the configuration can serve at least the default
// environment.
func (c *Config) Validate() error {
	if len(c.Environments) == 0 {
		return fmt.Errorf("config: no environments configured (set %s or provide a config file)", EnvAPIToken)
	}
	if _, _, err := c.Resolve(c.DefaultEnvironment); err != nil {
		return err
	}
	return nil
}
