package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Transport selects how the MCP server is exposed.
const (
	TransportHTTP  = "http"
	TransportStdio = "stdio"
)

// Tool sources: the hand-maintained template table, or templates imported
// from the upstream OpenAPI document.
const (
	ToolSourceStatic  = "static"
	ToolSourceOpenAPI = "openapi"
)

// Config holds all configuration for the CatchAll MCP service
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8093"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"` // json or console
	Transport string `env:"MCP_TRANSPORT" envDefault:"http"`

	// Upstream CatchAll API
	APIKey      string `env:"NEWSCATCHER_API_KEY"`
	BaseURL     string `env:"CATCHALL_BASE_URL" envDefault:"https://catchall.newscatcherapi.com"`
	HTTPTimeout int    `env:"CATCHALL_HTTP_TIMEOUT" envDefault:"60"` // seconds, total per call
	ToolSource  string `env:"CATCHALL_TOOL_SOURCE" envDefault:"static"`

	// Authentication for the HTTP surface
	AuthEnabled  bool   `env:"AUTH_ENABLED" envDefault:"false"`
	AuthIssuer   string `env:"AUTH_ISSUER"`
	AuthAudience string `env:"AUTH_AUDIENCE"`
	AuthJWKSURL  string `env:"AUTH_JWKS_URL"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	switch cfg.Transport {
	case TransportHTTP, TransportStdio:
	default:
		return nil, fmt.Errorf("MCP_TRANSPORT must be %q or %q, got %q", TransportHTTP, TransportStdio, cfg.Transport)
	}

	switch cfg.ToolSource {
	case ToolSourceStatic, ToolSourceOpenAPI:
	default:
		return nil, fmt.Errorf("CATCHALL_TOOL_SOURCE must be %q or %q, got %q", ToolSourceStatic, ToolSourceOpenAPI, cfg.ToolSource)
	}

	if cfg.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("CATCHALL_HTTP_TIMEOUT must be positive, got %d", cfg.HTTPTimeout)
	}

	if cfg.AuthEnabled {
		if strings.TrimSpace(cfg.AuthIssuer) == "" {
			return nil, fmt.Errorf("AUTH_ISSUER is required when AUTH_ENABLED is true")
		}
		if strings.TrimSpace(cfg.AuthJWKSURL) == "" {
			return nil, fmt.Errorf("AUTH_JWKS_URL is required when AUTH_ENABLED is true")
		}
	}

	return cfg, nil
}
