package config

import (
	"time"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Config is the root configuration for trendwatch.
type Config struct {
	Scan    ScanConfig    `mapstructure:"scan"    yaml:"scan"`
	Source  SourceConfig  `mapstructure:"source"  yaml:"source"`
	Feed    FeedConfig    `mapstructure:"feed"    yaml:"feed"`
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// ScanConfig controls the per-region ingestion batch.
type ScanConfig struct {
	Concurrency    int           `mapstructure:"concurrency"     yaml:"concurrency"`
	RegionTimeout  time.Duration `mapstructure:"region_timeout"  yaml:"region_timeout"`
	RegionDelay    time.Duration `mapstructure:"region_delay"    yaml:"region_delay"`
	TopN           int           `mapstructure:"top_n"           yaml:"top_n"`
	RelevanceFloor int           `mapstructure:"relevance_floor" yaml:"relevance_floor"`
	Regions        []string      `mapstructure:"regions"         yaml:"regions"`
}

// SourceConfig controls the rendered-page content source.
type SourceConfig struct {
	// URLTemplate is the trending-page address; "{code}" is replaced with
	// the region code.
	URLTemplate string `mapstructure:"url_template" yaml:"url_template"`

	// Fetcher selects the content source: "browser" or "http".
	Fetcher string `mapstructure:"fetcher" yaml:"fetcher"`

	// SettleWait is the extra wait after navigation for dynamic content.
	SettleWait time.Duration `mapstructure:"settle_wait" yaml:"settle_wait"`

	// ScrollPasses is how many times to scroll to trigger lazy-loaded rows.
	ScrollPasses int `mapstructure:"scroll_passes" yaml:"scroll_passes"`

	UserAgents []string `mapstructure:"user_agents" yaml:"user_agents"`
}

// FeedConfig controls the RSS alternate source.
type FeedConfig struct {
	// URLTemplate is the per-region feed address with a "{code}" placeholder.
	URLTemplate string `mapstructure:"url_template" yaml:"url_template"`

	// MaxItems caps how many feed entries are considered per region.
	MaxItems int `mapstructure:"max_items" yaml:"max_items"`
}

// StorageConfig controls aggregate-store persistence.
type StorageConfig struct {
	// Type is "file" or "mongo".
	Type string `mapstructure:"type" yaml:"type"`

	// Path is the aggregate JSON file location for the file backend.
	Path string `mapstructure:"path" yaml:"path"`

	MongoURI        string `mapstructure:"mongo_uri"        yaml:"mongo_uri"`
	MongoDatabase   string `mapstructure:"mongo_database"   yaml:"mongo_database"`
	MongoCollection string `mapstructure:"mongo_collection" yaml:"mongo_collection"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Concurrency:    5,
			RegionTimeout:  45 * time.Second,
			RegionDelay:    2 * time.Second,
			TopN:           10,
			RelevanceFloor: 0,
		},
		Source: SourceConfig{
			URLTemplate:  "https://trends.google.com/trending?geo=US-{code}&hours=24",
			Fetcher:      "browser",
			SettleWait:   2 * time.Second,
			ScrollPasses: 3,
			UserAgents: []string{
				"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
				"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			},
		},
		Feed: FeedConfig{
			URLTemplate: "https://trends.google.com/trending/rss?geo=US-{code}",
			MaxItems:    20,
		},
		Storage: StorageConfig{
			Type: "file",
			Path: "./data/trending.json",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
