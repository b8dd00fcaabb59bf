package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := Validate(DefaultConfig()); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero concurrency", func(c *Config) { c.Scan.Concurrency = 0 }},
		{"excessive concurrency", func(c *Config) { c.Scan.Concurrency = 51 }},
		{"zero timeout", func(c *Config) { c.Scan.RegionTimeout = 0 }},
		{"negative delay", func(c *Config) { c.Scan.RegionDelay = -time.Second }},
		{"zero top n", func(c *Config) { c.Scan.TopN = 0 }},
		{"floor above 100", func(c *Config) { c.Scan.RelevanceFloor = 101 }},
		{"template without placeholder", func(c *Config) { c.Source.URLTemplate = "https://example.com/trending" }},
		{"unknown fetcher", func(c *Config) { c.Source.Fetcher = "carrier-pigeon" }},
		{"unknown storage", func(c *Config) { c.Storage.Type = "redis" }},
		{"file storage without path", func(c *Config) { c.Storage.Path = "" }},
		{"mongo without uri", func(c *Config) { c.Storage.Type = "mongo" }},
		{"bad log level", func(c *Config) { c.Logging.Level = "chatty" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := Validate(cfg); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load without file: %v", err)
	}
	if cfg.Scan.Concurrency != DefaultConfig().Scan.Concurrency {
		t.Errorf("expected default concurrency, got %d", cfg.Scan.Concurrency)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trendwatch.yaml")
	yaml := `
scan:
  concurrency: 3
  top_n: 5
storage:
  type: file
  path: /tmp/agg.json
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Scan.Concurrency != 3 {
		t.Errorf("expected concurrency 3, got %d", cfg.Scan.Concurrency)
	}
	if cfg.Scan.TopN != 5 {
		t.Errorf("expected top_n 5, got %d", cfg.Scan.TopN)
	}
	if cfg.Storage.Path != "/tmp/agg.json" {
		t.Errorf("expected overridden path, got %q", cfg.Storage.Path)
	}
	// Untouched sections keep their defaults.
	if cfg.Feed.MaxItems != DefaultConfig().Feed.MaxItems {
		t.Errorf("expected default feed.max_items, got %d", cfg.Feed.MaxItems)
	}
}

func TestLoadExplicitFileMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for explicitly named missing file")
	}
}
