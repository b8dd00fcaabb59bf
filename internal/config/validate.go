package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration for invalid values. Validation failures
// are fatal at startup, before any region processing begins.
func Validate(cfg *Config) error {
	if cfg.Scan.Concurrency < 1 {
		return fmt.Errorf("scan.concurrency must be >= 1, got %d", cfg.Scan.Concurrency)
	}
	if cfg.Scan.Concurrency > 50 {
		return fmt.Errorf("scan.concurrency must be <= 50, got %d", cfg.Scan.Concurrency)
	}
	if cfg.Scan.RegionTimeout <= 0 {
		return fmt.Errorf("scan.region_timeout must be > 0")
	}
	if cfg.Scan.RegionDelay < 0 {
		return fmt.Errorf("scan.region_delay must be >= 0")
	}
	if cfg.Scan.TopN < 1 {
		return fmt.Errorf("scan.top_n must be >= 1, got %d", cfg.Scan.TopN)
	}
	if cfg.Scan.RelevanceFloor < 0 || cfg.Scan.RelevanceFloor > 100 {
		return fmt.Errorf("scan.relevance_floor must be in [0,100], got %d", cfg.Scan.RelevanceFloor)
	}

	if !strings.Contains(cfg.Source.URLTemplate, "{code}") {
		return fmt.Errorf("source.url_template must contain a {code} placeholder")
	}
	if cfg.Source.Fetcher != "browser" && cfg.Source.Fetcher != "http" {
		return fmt.Errorf("source.fetcher must be 'browser' or 'http', got %q", cfg.Source.Fetcher)
	}
	if cfg.Source.ScrollPasses < 0 {
		return fmt.Errorf("source.scroll_passes must be >= 0")
	}

	if cfg.Feed.MaxItems < 1 {
		return fmt.Errorf("feed.max_items must be >= 1, got %d", cfg.Feed.MaxItems)
	}

	switch cfg.Storage.Type {
	case "file":
		if cfg.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the file backend")
		}
	case "mongo":
		if cfg.Storage.MongoURI == "" {
			return fmt.Errorf("storage.mongo_uri is required for the mongo backend")
		}
		if cfg.Storage.MongoDatabase == "" || cfg.Storage.MongoCollection == "" {
			return fmt.Errorf("storage.mongo_database and storage.mongo_collection are required for the mongo backend")
		}
	default:
		return fmt.Errorf("storage.type %q is not supported (valid: file, mongo)", cfg.Storage.Type)
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[cfg.Logging.Level] {
		return fmt.Errorf("logging.level must be debug/info/warn/error, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" && cfg.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be 'text' or 'json', got %q", cfg.Logging.Format)
	}

	return nil
}
