package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the analytics service.
// Environment variables are automatically parsed from the PLAYLENS_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// Upstream title credentials, read once at startup.
	TitleID   string `envconfig:"TITLE_ID" required:"true"`
	SecretKey string `envconfig:"SECRET_KEY" required:"true"`

	// Base URL override for the upstream API. Empty derives the standard
	// https://{titleId}.playfabapi.com endpoint; tests point this at a fake.
	UpstreamBaseURL string `envconfig:"UPSTREAM_BASE_URL" default:""`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Upstream call behaviour
	UpstreamTimeoutSeconds int `envconfig:"UPSTREAM_TIMEOUT_SECONDS" default:"30"`
	SegmentBatchSize       int `envconfig:"SEGMENT_BATCH_SIZE" default:"1000"`

	// Token cache tuning. Tokens are assumed valid for TokenValiditySeconds
	// and refreshed TokenRefreshBufferSeconds before that window closes.
	TokenValiditySeconds      int `envconfig:"TOKEN_VALIDITY_SECONDS" default:"3600"`
	TokenRefreshBufferSeconds int `envconfig:"TOKEN_REFRESH_BUFFER_SECONDS" default:"300"`

	// Health monitoring
	HealthIntervalSeconds     int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"30"`
	HealthProbeTimeoutSeconds int `envconfig:"HEALTH_PROBE_TIMEOUT_SECONDS" default:"5"`

	// Browser dashboard origins allowed by CORS. "*" during development.
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// ResolveDefaults validates required upstream settings and derives the base
// URL when it was not overridden.
func (c *Config) ResolveDefaults() error {
	if c.TitleID == "" {
		return fmt.Errorf("TITLE_ID is required")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("SECRET_KEY is required")
	}
	if c.UpstreamBaseURL == "" {
		c.UpstreamBaseURL = fmt.Sprintf("https://%s.playfabapi.com", c.TitleID)
	}
	if c.UpstreamTimeoutSeconds <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT_SECONDS must be positive")
	}
	if c.SegmentBatchSize <= 0 || c.SegmentBatchSize > 10000 {
		return fmt.Errorf("SEGMENT_BATCH_SIZE must be in 1..10000")
	}
	if c.TokenRefreshBufferSeconds >= c.TokenValiditySeconds {
		return fmt.Errorf("TOKEN_REFRESH_BUFFER_SECONDS must be below TOKEN_VALIDITY_SECONDS")
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Environment variables should be prefixed with PLAYLENS_
// Example: PLAYLENS_TITLE_ID, PLAYLENS_HTTP_PORT
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("PLAYLENS", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Str("title_id", cfg.TitleID).
		Bool("secret_key_present", cfg.SecretKey != "").
		Str("upstream_base_url", cfg.UpstreamBaseURL).
		Int("port", cfg.HTTPPort).
		Int("upstream_timeout_s", cfg.UpstreamTimeoutSeconds).
		Int("segment_batch_size", cfg.SegmentBatchSize).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing
func NewForTesting() *Config {
	cfg := &Config{
		Environment: EnvTesting,
		TitleID:     "TESTTITLE",
		SecretKey:   "test-secret",

		HTTPPort:                  8080,
		UpstreamTimeoutSeconds:    5,
		SegmentBatchSize:          1000,
		TokenValiditySeconds:      3600,
		TokenRefreshBufferSeconds: 300,
		HealthIntervalSeconds:     30,
		HealthProbeTimeoutSeconds: 5,
		CORSAllowedOrigins:        []string{"*"},
	}
	_ = cfg.ResolveDefaults()
	return cfg
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
