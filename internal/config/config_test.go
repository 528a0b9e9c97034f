// Recipegen - Ingredient-Based Recipe Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipegen

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Environment != "development" {
		t.Errorf("server.environment = %q, want development", cfg.Server.Environment)
	}
	if cfg.Matcher.DefaultK != 5 || cfg.Matcher.MaxK != 100 {
		t.Errorf("matcher k defaults = %d/%d, want 5/100", cfg.Matcher.DefaultK, cfg.Matcher.MaxK)
	}
	if cfg.Matcher.CoverageThreshold != 0.5 {
		t.Errorf("matcher.coverage_threshold = %g, want 0.5", cfg.Matcher.CoverageThreshold)
	}
	if len(cfg.Matcher.Pantry) == 0 {
		t.Error("matcher.pantry default is empty")
	}
	if cfg.API.DefaultPageSize != 20 || cfg.API.MaxPageSize != 100 {
		t.Errorf("api page sizes = %d/%d, want 20/100", cfg.API.DefaultPageSize, cfg.API.MaxPageSize)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("logging.format = %q, want json", cfg.Logging.Format)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CORPUS_PATH", "/tmp/custom.json")
	t.Setenv("MATCHER_DEFAULT_K", "10")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Corpus.Path != "/tmp/custom.json" {
		t.Errorf("corpus.path = %q, want /tmp/custom.json", cfg.Corpus.Path)
	}
	if cfg.Matcher.DefaultK != 10 {
		t.Errorf("matcher.default_k = %d, want 10", cfg.Matcher.DefaultK)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Security.RateLimitWindow != 30*time.Second {
		t.Errorf("rate_limit_window = %s, want 30s", cfg.Security.RateLimitWindow)
	}
}

func TestLoadEnvSliceFields(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("MATCHER_PANTRY", "salt,pepper , water")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	wantOrigins := []string{"https://a.example.com", "https://b.example.com"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, wantOrigins) {
		t.Errorf("cors_origins = %v, want %v", cfg.Security.CORSOrigins, wantOrigins)
	}

	wantPantry := []string{"salt", "pepper", "water"}
	if !reflect.DeepEqual(cfg.Matcher.Pantry, wantPantry) {
		t.Errorf("matcher.pantry = %v, want %v", cfg.Matcher.Pantry, wantPantry)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	yaml := `
server:
  port: 7070
  environment: production
corpus:
  path: /srv/recipes.json
matcher:
  default_k: 3
  coverage_threshold: 0.25
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("server.port = %d, want 7070", cfg.Server.Port)
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false for production environment")
	}
	if cfg.Corpus.Path != "/srv/recipes.json" {
		t.Errorf("corpus.path = %q, want /srv/recipes.json", cfg.Corpus.Path)
	}
	if cfg.Matcher.CoverageThreshold != 0.25 {
		t.Errorf("matcher.coverage_threshold = %g, want 0.25", cfg.Matcher.CoverageThreshold)
	}
	// File settings inherit defaults they do not override.
	if cfg.Matcher.MaxK != 100 {
		t.Errorf("matcher.max_k = %d, want inherited default 100", cfg.Matcher.MaxK)
	}
}

func TestLoadEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("server:\n  port: 7070\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("server.port = %d, want env override 9999", cfg.Server.Port)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		envKey  string
		envVal  string
		wantMsg string
	}{
		{name: "bad_port", envKey: "HTTP_PORT", envVal: "-1", wantMsg: "server.port"},
		{name: "bad_environment", envKey: "ENVIRONMENT", envVal: "prod", wantMsg: "server.environment"},
		{name: "bad_log_format", envKey: "LOG_FORMAT", envVal: "xml", wantMsg: "logging.format"},
		{name: "zero_default_k", envKey: "MATCHER_DEFAULT_K", envVal: "0", wantMsg: "matcher.default_k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envKey, tt.envVal)

			_, err := Load()
			if err == nil {
				t.Fatal("Load() = nil error, want validation failure")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestEnvTransformIgnoresUnknown(t *testing.T) {
	t.Parallel()

	if got := envTransformFunc("PATH"); got != "" {
		t.Errorf("envTransformFunc(PATH) = %q, want empty", got)
	}
	if got := envTransformFunc("HTTP_PORT"); got != "server.port" {
		t.Errorf("envTransformFunc(HTTP_PORT) = %q, want server.port", got)
	}
}
