package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/wagnerlima/memory-cloud/relationships-mcp/internal/backend"
)

// Backend kinds.
const (
	BackendHTTP   = "http"
	BackendExport = "export"
)

// Config is the server configuration read from the environment.
type Config struct {
	Backend       string        `env:"RELATIONSHIPS_MCP_BACKEND"        envDefault:"http"`
	APIURL        string        `env:"RELATIONSHIPS_MCP_API_URL"`
	APIKey        string        `env:"RELATIONSHIPS_MCP_API_KEY"`
	APIKeyID      string        `env:"RELATIONSHIPS_MCP_API_KEY_ID"`
	SearchPath    string        `env:"RELATIONSHIPS_MCP_SEARCH_PATH"    envDefault:"/relationships/search"`
	Timeout       time.Duration `env:"RELATIONSHIPS_MCP_TIMEOUT"        envDefault:"30s"`
	LegacyPayload bool          `env:"RELATIONSHIPS_MCP_LEGACY_PAYLOAD" envDefault:"false"`
	ExportDB      string        `env:"RELATIONSHIPS_MCP_EXPORT_DB"      envDefault:"./data/relationships.db"`
	BearerToken   string        `env:"RELATIONSHIPS_MCP_BEARER_TOKEN"`
	Debug         bool          `env:"RELATIONSHIPS_MCP_DEBUG"          envDefault:"false"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings the selected backend needs.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendHTTP:
		if c.APIURL == "" {
			return errors.New("RELATIONSHIPS_MCP_API_URL is required for the http backend")
		}
	case BackendExport:
		if c.ExportDB == "" {
			return errors.New("RELATIONSHIPS_MCP_EXPORT_DB is required for the export backend")
		}
	default:
		return fmt.Errorf("unknown backend %q (use %s or %s)", c.Backend, BackendHTTP, BackendExport)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// ClientOptions returns the REST backend options for this configuration.
func (c Config) ClientOptions() backend.Options {
	return backend.Options{
		BaseURL:    c.APIURL,
		SearchPath: c.SearchPath,
		APIKey:     c.APIKey,
		APIKeyID:   c.APIKeyID,
		Timeout:    c.Timeout,
		Legacy:     c.LegacyPayload,
	}
}
