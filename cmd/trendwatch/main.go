package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jovalie/political-forecast/internal/aggregate"
	"github.com/jovalie/political-forecast/internal/config"
	"github.com/jovalie/political-forecast/internal/extract"
	"github.com/jovalie/political-forecast/internal/feed"
	"github.com/jovalie/political-forecast/internal/fetcher"
	"github.com/jovalie/political-forecast/internal/politics"
	"github.com/jovalie/political-forecast/internal/runner"
	"github.com/jovalie/political-forecast/internal/types"
)

var (
	cfgFile     string
	verbose     bool
	regionsFlag string
	concurrency int
	topN        int
	floor       int
	fetcherType string
	storageType string
	storagePath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "trendwatch",
		Short: "trendwatch — per-state trending topic tracker",
		Long: `trendwatch ingests trending search topics for every US state plus DC,
scores them for relevance, classifies political leaning, and maintains a
durable per-state aggregate.

Sources:
  • rendered trending page (headless browser, extraction cascade)
  • trending RSS feed (lightweight alternative)`,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(scanCmd())
	rootCmd.AddCommand(feedCmd())
	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// scanCmd creates the "scan" subcommand: the rendered-page batch.
func scanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan trending pages for all configured regions",
		Long:  "Render each region's trending page, extract and score topics, and merge the results into the aggregate store.",
		RunE:  runScan,
	}
	addBatchFlags(cmd)
	cmd.Flags().StringVar(&fetcherType, "fetcher", "", "content source: browser or http")
	return cmd
}

// feedCmd creates the "feed" subcommand: the RSS batch.
func feedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Ingest trending RSS feeds for all configured regions",
		Long:  "Fetch each region's trending RSS feed, score entries by recency and keyword density, and merge the results into the aggregate store.",
		RunE:  runFeed,
	}
	addBatchFlags(cmd)
	return cmd
}

func addBatchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&regionsFlag, "regions", "", "comma-separated region names or codes (default: all)")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "n", 0, "number of concurrent regions")
	cmd.Flags().IntVar(&topN, "top", 0, "topics retained per region")
	cmd.Flags().IntVar(&floor, "floor", -1, "minimum relevance score to retain")
	cmd.Flags().StringVar(&storageType, "storage", "", "storage backend: file or mongo")
	cmd.Flags().StringVarP(&storagePath, "output", "o", "", "aggregate file path (file backend)")
}

// runScan executes the rendered-page batch.
func runScan(cmd *cobra.Command, args []string) error {
	logger := setupLogger("text")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyCLIOverrides(cfg)
	if fetcherType != "" {
		cfg.Source.Fetcher = strings.ToLower(fetcherType)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	logger = setupLogger(cfg.Logging.Format)

	var fetch fetcher.Fetcher
	switch cfg.Source.Fetcher {
	case "browser":
		bf, err := fetcher.NewBrowserFetcher(cfg, logger, fetcher.WithStealth())
		if err != nil {
			return fmt.Errorf("create browser fetcher: %w", err)
		}
		fetch = bf
	default:
		fetch = fetcher.NewHTTPFetcher(cfg, logger)
	}
	defer fetch.Close()

	source := runner.NewPageSource(fetch, extract.NewCascade(logger), logger)
	return runBatch(cfg, source, logger)
}

// runFeed executes the RSS batch.
func runFeed(cmd *cobra.Command, args []string) error {
	logger := setupLogger("text")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyCLIOverrides(cfg)
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	logger = setupLogger(cfg.Logging.Format)

	httpFetcher := fetcher.NewHTTPFetcher(cfg, logger)
	defer httpFetcher.Close()

	source := feed.NewSource(cfg, httpFetcher, logger)
	return runBatch(cfg, source, logger)
}

// runBatch wires storage and the runner, handles shutdown signals, and
// prints the batch summary.
func runBatch(cfg *config.Config, source runner.TopicSource, logger *slog.Logger) error {
	store, err := aggregate.NewStore(cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("create storage: %w", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting batch",
		"regions", len(cfg.Scan.Regions),
		"concurrency", cfg.Scan.Concurrency,
		"storage", store.Name(),
	)

	summary, err := runner.New(cfg, source, store, logger).Run(ctx)
	if err != nil {
		return fmt.Errorf("run batch: %w", err)
	}

	fmt.Printf("\n✅ Batch complete in %s\n", summary.Duration.Round(time.Millisecond))
	fmt.Printf("   Regions:   %d total\n", summary.Regions)
	fmt.Printf("   Succeeded: %d  Empty: %d  Failed: %d\n",
		summary.Succeeded, summary.Empty, summary.Failed)
	if cfg.Storage.Type == "file" {
		fmt.Printf("   Output:    %s\n", cfg.Storage.Path)
	}
	return nil
}

// classifyCmd creates the "classify" subcommand for one-off title checks.
func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify [title]",
		Short: "Classify a topic title's political leaning",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			title := strings.Join(args, " ")
			fmt.Printf("Title:    %s\n", title)
			fmt.Printf("Category: %s\n", politics.Category(title))
			if score, ok := politics.Classify(title); ok {
				fmt.Printf("Leaning:  %s (%+d)\n", politics.Label(score), score)
			} else {
				fmt.Println("Leaning:  undefined (non-political or no signal)")
			}
		},
	}
}

// configCmd creates the "config" subcommand for inspecting configuration.
func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			fmt.Printf("Scan:\n")
			fmt.Printf("  Concurrency:     %d\n", cfg.Scan.Concurrency)
			fmt.Printf("  Region Timeout:  %s\n", cfg.Scan.RegionTimeout)
			fmt.Printf("  Region Delay:    %s\n", cfg.Scan.RegionDelay)
			fmt.Printf("  Top N:           %d\n", cfg.Scan.TopN)
			fmt.Printf("  Relevance Floor: %d\n", cfg.Scan.RelevanceFloor)
			if len(cfg.Scan.Regions) == 0 {
				fmt.Printf("  Regions:         all (%d)\n", len(types.USStates))
			} else {
				fmt.Printf("  Regions:         %s\n", strings.Join(cfg.Scan.Regions, ", "))
			}
			fmt.Printf("\nSource:\n")
			fmt.Printf("  Fetcher:         %s\n", cfg.Source.Fetcher)
			fmt.Printf("  URL Template:    %s\n", cfg.Source.URLTemplate)
			fmt.Printf("  Settle Wait:     %s\n", cfg.Source.SettleWait)
			fmt.Printf("  Scroll Passes:   %d\n", cfg.Source.ScrollPasses)
			fmt.Printf("  User Agents:     %d configured\n", len(cfg.Source.UserAgents))
			fmt.Printf("\nFeed:\n")
			fmt.Printf("  URL Template:    %s\n", cfg.Feed.URLTemplate)
			fmt.Printf("  Max Items:       %d\n", cfg.Feed.MaxItems)
			fmt.Printf("\nStorage:\n")
			fmt.Printf("  Type:            %s\n", cfg.Storage.Type)
			if cfg.Storage.Type == "mongo" {
				fmt.Printf("  Database:        %s\n", cfg.Storage.MongoDatabase)
				fmt.Printf("  Collection:      %s\n", cfg.Storage.MongoCollection)
			} else {
				fmt.Printf("  Path:            %s\n", cfg.Storage.Path)
			}
			return nil
		},
	}
}

// versionCmd creates the "version" subcommand.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("trendwatch %s\n", config.Version)
		},
	}
}

// setupLogger creates a structured logger.
func setupLogger(format string) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// applyCLIOverrides applies command-line flag values to the config.
func applyCLIOverrides(cfg *config.Config) {
	if regionsFlag != "" {
		var regions []string
		for _, r := range strings.Split(regionsFlag, ",") {
			if r = strings.TrimSpace(r); r != "" {
				regions = append(regions, r)
			}
		}
		cfg.Scan.Regions = regions
	}
	if concurrency > 0 {
		cfg.Scan.Concurrency = concurrency
	}
	if topN > 0 {
		cfg.Scan.TopN = topN
	}
	if floor >= 0 {
		cfg.Scan.RelevanceFloor = floor
	}
	if storageType != "" {
		cfg.Storage.Type = strings.ToLower(storageType)
	}
	if storagePath != "" {
		cfg.Storage.Path = storagePath
	}
}
