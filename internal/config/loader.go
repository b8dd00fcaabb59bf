package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from file, environment, and defaults.
// Priority (highest to lowest): env vars > config file > defaults.
// CLI flag overrides are applied by the caller after Load.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")

	setDefaults(v, cfg)

	v.SetEnvPrefix("TRENDWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("trendwatch")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".trendwatch"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is okay if not explicitly specified
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// setDefaults registers default values in viper.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("scan.concurrency", cfg.Scan.Concurrency)
	v.SetDefault("scan.region_timeout", cfg.Scan.RegionTimeout)
	v.SetDefault("scan.region_delay", cfg.Scan.RegionDelay)
	v.SetDefault("scan.top_n", cfg.Scan.TopN)
	v.SetDefault("scan.relevance_floor", cfg.Scan.RelevanceFloor)

	v.SetDefault("source.url_template", cfg.Source.URLTemplate)
	v.SetDefault("source.fetcher", cfg.Source.Fetcher)
	v.SetDefault("source.settle_wait", cfg.Source.SettleWait)
	v.SetDefault("source.scroll_passes", cfg.Source.ScrollPasses)
	v.SetDefault("source.user_agents", cfg.Source.UserAgents)

	v.SetDefault("feed.url_template", cfg.Feed.URLTemplate)
	v.SetDefault("feed.max_items", cfg.Feed.MaxItems)

	v.SetDefault("storage.type", cfg.Storage.Type)
	v.SetDefault("storage.path", cfg.Storage.Path)
	v.SetDefault("storage.mongo_uri", cfg.Storage.MongoURI)
	v.SetDefault("storage.mongo_database", cfg.Storage.MongoDatabase)
	v.SetDefault("storage.mongo_collection", cfg.Storage.MongoCollection)

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
}
