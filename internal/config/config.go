// Recipegen - Ingredient-Based Recipe Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipegen

// Package config loads and validates the service configuration.
//
// Configuration is layered with koanf: built-in defaults first, then an
// optional YAML file, then environment variables, so every setting is
// overridable from the environment without a config file present.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the service.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Corpus   CorpusConfig   `koanf:"corpus"`
	Matcher  MatcherConfig  `koanf:"matcher"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging", "production"
}

// CorpusConfig configures the recipe corpus source.
type CorpusConfig struct {
	// Path is the JSON corpus file loaded at startup.
	Path string `koanf:"path"`
}

// MatcherConfig configures the recommendation engine.
type MatcherConfig struct {
	// DefaultK is used when a request omits k.
	DefaultK int `koanf:"default_k"`

	// MaxK caps the per-request result count; larger requests are clamped.
	MaxK int `koanf:"max_k"`

	// Pantry lists staple ingredients excluded from coverage. Empty
	// means use the built-in default pantry.
	Pantry []string `koanf:"pantry"`

	// CoverageThreshold is the low-confidence cutoff for the best
	// result's coverage.
	CoverageThreshold float64 `koanf:"coverage_threshold"`

	// ExtendedNormalization tokenizes query ingredients with the full
	// ETL pipeline instead of plain trim-and-lowercase.
	ExtendedNormalization bool `koanf:"extended_normalization"`
}

// APIConfig configures listing endpoints.
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
}

// SecurityConfig configures CORS and rate limiting.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is "json" or "console". JSON for production, console for
	// development.
	Format string `koanf:"format"`

	// Caller includes file and line in log events.
	Caller bool `koanf:"caller"`
}

// Validate checks cross-field configuration invariants. Called after
// all layers are merged.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535], got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	switch c.Server.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("server.environment must be development, staging, or production, got %q", c.Server.Environment)
	}

	if c.Corpus.Path == "" {
		return fmt.Errorf("corpus.path is required")
	}

	if c.Matcher.DefaultK < 1 {
		return fmt.Errorf("matcher.default_k must be >= 1, got %d", c.Matcher.DefaultK)
	}
	if c.Matcher.MaxK < c.Matcher.DefaultK {
		return fmt.Errorf("matcher.max_k (%d) must be >= matcher.default_k (%d)",
			c.Matcher.MaxK, c.Matcher.DefaultK)
	}
	if c.Matcher.CoverageThreshold < 0 || c.Matcher.CoverageThreshold > 1 {
		return fmt.Errorf("matcher.coverage_threshold must be in [0, 1], got %g",
			c.Matcher.CoverageThreshold)
	}

	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("api.default_page_size must be >= 1, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api.max_page_size (%d) must be >= api.default_page_size (%d)",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}

	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("security.rate_limit_requests must be >= 1, got %d",
				c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive, got %s",
				c.Security.RateLimitWindow)
		}
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}

	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
