// Suggestio - Collaborative Product Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/suggestio

// Package config provides layered configuration loading via Koanf v2.
//
// Configuration is assembled from three layers, highest priority last:
//
//  1. Built-in defaults (struct literals in defaultConfig)
//  2. Optional config file (config.yaml, overridable via CONFIG_PATH)
//  3. Environment variables (SERVER_PORT, GEMINI_API_KEY, ...)
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/suggestio/internal/validation"
)

// Config holds all configuration for the Suggestio server.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Data      DataConfig      `koanf:"data"`
	Profiles  ProfilesConfig  `koanf:"profiles"`
	Recommend RecommendConfig `koanf:"recommend"`
	Explain   ExplainConfig   `koanf:"explain"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DataConfig locates the load-time data sources. Both files are read once at
// startup; a missing or unreadable file is fatal (the process must not start
// serving traffic over partial data).
type DataConfig struct {
	ProductsPath string `koanf:"products_path" validate:"required"`
	BehaviorPath string `koanf:"behavior_path" validate:"required"`
}

// ProfilesConfig defines the fixed synthetic profile pool.
//
// Changing Count or Start after deployment silently remaps existing client
// cookies to different profiles. This is an accepted limitation of the
// hash-and-mod identity scheme, not a bug.
type ProfilesConfig struct {
	// Count is the number of synthetic profiles (N).
	Count int `koanf:"count" validate:"min=1"`

	// Start is the first profile id (START); profiles occupy [START, START+N).
	Start int `koanf:"start" validate:"min=0"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	// K is the recommendation batch size.
	K int `koanf:"k" validate:"min=1,max=10"`

	// Seed seeds the engine's random source. Zero selects a time-based seed;
	// tests set a fixed seed for reproducible sampling tiers.
	Seed int64 `koanf:"seed"`
}

// ExplainConfig holds settings for the external text-generation service.
type ExplainConfig struct {
	// Enabled toggles the external call. When false every recommendation
	// carries the placeholder explanation.
	Enabled bool `koanf:"enabled"`

	// APIKey authenticates against the generative language API.
	APIKey string `koanf:"api_key"`

	// Model is the generation model name (e.g. "gemini-pro-latest").
	Model string `koanf:"model"`

	// BaseURL is the API endpoint prefix, overridable for tests.
	BaseURL string `koanf:"base_url"`

	// Timeout bounds the per-request explanation round trip so a hung
	// service cannot exhaust server concurrency.
	Timeout time.Duration `koanf:"timeout"`

	// Mode selects the augmentation format: "batch" issues one call per
	// request listing all candidates, "per_item" issues one call per
	// candidate (the legacy behavior, rate-limited via PerItemInterval).
	Mode string `koanf:"mode" validate:"oneof=batch per_item"`

	// PerItemInterval is the minimum spacing between per-item calls.
	PerItemInterval time.Duration `koanf:"per_item_interval"`

	// CacheSize is the explanation LRU cache capacity (entries).
	CacheSize int `koanf:"cache_size" validate:"min=0"`

	// CacheTTL is the explanation cache time-to-live.
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// SecurityConfig holds CORS, cookie, and rate limiting settings.
type SecurityConfig struct {
	// CORSOrigins lists allowed cross-site origins. Empty disables
	// credentialed CORS (same-origin deployments).
	CORSOrigins []string `koanf:"cors_origins"`

	// CookieName is the identity cookie name.
	CookieName string `koanf:"cookie_name" validate:"required"`

	// CookieMaxAge is the identity cookie lifetime.
	CookieMaxAge time.Duration `koanf:"cookie_max_age"`

	RateLimitRequests int           `koanf:"rate_limit_reqs" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	Format string `koanf:"format" validate:"omitempty,oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Data: DataConfig{
			ProductsPath: "data/products.csv",
			BehaviorPath: "data/user_behavior.csv",
		},
		Profiles: ProfilesConfig{
			Count: 50,
			Start: 101,
		},
		Recommend: RecommendConfig{
			K:    3,
			Seed: 0,
		},
		Explain: ExplainConfig{
			Enabled:         false, // requires an API key, opt-in
			APIKey:          "",
			Model:           "gemini-pro-latest",
			BaseURL:         "https://generativelanguage.googleapis.com/v1beta",
			Timeout:         20 * time.Second,
			Mode:            "batch",
			PerItemInterval: 31 * time.Second, // provider free-tier rate limit spacing
			CacheSize:       1024,
			CacheTTL:        15 * time.Minute,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{},
			CookieName:        "user_id",
			CookieMaxAge:      365 * 24 * time.Hour,
			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if c.Explain.Enabled && c.Explain.APIKey == "" {
		return errors.New("explain.enabled requires explain.api_key (GEMINI_API_KEY)")
	}
	if c.Explain.Timeout <= 0 {
		return errors.New("explain.timeout must be positive")
	}
	if c.Security.CookieMaxAge <= 0 {
		return errors.New("security.cookie_max_age must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("server.shutdown_timeout must be positive")
	}

	return nil
}

// Addr returns the listen address in host:port form.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
