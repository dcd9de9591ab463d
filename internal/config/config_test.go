package config

import (
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{Driver: "redis", Addrs: []string{"localhost:6379"}},
		Search:   SearchConfig{DefaultLimit: 20, MaxLimit: 100},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"invalid port", func(c *Config) { c.HTTP.Port = 0 }, "http.port"},
		{"port too large", func(c *Config) { c.HTTP.Port = 70000 }, "http.port"},
		{"unsupported driver", func(c *Config) { c.Database.Driver = "valkey" }, "database.driver"},
		{"missing addrs", func(c *Config) { c.Database.Addrs = nil }, "database.addrs"},
		{"default above max", func(c *Config) { c.Search.DefaultLimit = 500 }, "search.default_limit"},
		{"detect without vocabulary", func(c *Config) { c.Features.Detect = true }, "features.detect"},
		{"detect with sources", func(c *Config) {
			c.Features.Detect = true
			c.Features.Sources = []string{"mit"}
		}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tc.wantErr)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Database.Driver != "redis" {
		t.Errorf("expected Driver=redis, got %q", cfg.Database.Driver)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Storage.KeyPrefix != "kwfilter:" {
		t.Errorf("expected KeyPrefix='kwfilter:', got %q", cfg.Storage.KeyPrefix)
	}
	if cfg.Storage.MaxBatchSize != 100 {
		t.Errorf("expected MaxBatchSize=100, got %d", cfg.Storage.MaxBatchSize)
	}
	if cfg.Search.DefaultLimit != 20 {
		t.Errorf("expected DefaultLimit=20, got %d", cfg.Search.DefaultLimit)
	}
	if cfg.Search.MaxLimit != 100 {
		t.Errorf("expected MaxLimit=100, got %d", cfg.Search.MaxLimit)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Database: DatabaseConfig{ReadinessTimeout: 15},
		Storage:  StorageConfig{KeyPrefix: "custom:"},
		Search:   SearchConfig{DefaultLimit: 5, MaxLimit: 50},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Storage.KeyPrefix != "custom:" {
		t.Errorf("expected KeyPrefix='custom:', got %q", cfg.Storage.KeyPrefix)
	}
	if cfg.Search.DefaultLimit != 5 || cfg.Search.MaxLimit != 50 {
		t.Errorf("expected limits 5/50, got %d/%d", cfg.Search.DefaultLimit, cfg.Search.MaxLimit)
	}
}

func TestParse(t *testing.T) {
	t.Setenv("KWFILTER_REDIS_ADDR", "redis:6379")
	t.Setenv("KWFILTER_API_KEY", "")

	data := []byte(`
http:
  port: 8080
database:
  addrs: ["${KWFILTER_REDIS_ADDR}"]
auth:
  api_keys: ["${KWFILTER_API_KEY:-dev-key}"]
features:
  detect: true
  sources: [mit, gutenberg]
  extensions: [txt, .pdf]
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Database.Addrs) != 1 || cfg.Database.Addrs[0] != "redis:6379" {
		t.Errorf("addrs: got %v", cfg.Database.Addrs)
	}
	if len(cfg.Auth.APIKeys) != 1 || cfg.Auth.APIKeys[0] != "dev-key" {
		t.Errorf("api keys: got %v", cfg.Auth.APIKeys)
	}
	if !cfg.Features.Detect || len(cfg.Features.Sources) != 2 || len(cfg.Features.Extensions) != 2 {
		t.Errorf("features: got %+v", cfg.Features)
	}
	if cfg.Storage.KeyPrefix != "kwfilter:" {
		t.Errorf("defaults not applied: key prefix %q", cfg.Storage.KeyPrefix)
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse([]byte("http: [")); err == nil {
		t.Error("expected YAML error")
	}
	if _, err := Parse([]byte("http:\n  port: 8080\n")); err == nil {
		t.Error("expected validation error for missing addrs")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if got := GetEnv(); got != "local" {
		t.Errorf("got %q, want local", got)
	}
	t.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("got %q, want prod", got)
	}
}

func TestLoad_Local(t *testing.T) {
	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("load local config: %v", err)
	}
	if cfg.HTTP.Port == 0 {
		t.Error("expected port to be set")
	}
}
