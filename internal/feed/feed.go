package feed

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/jovalie/political-forecast/internal/config"
	"github.com/jovalie/political-forecast/internal/fetcher"
	"github.com/jovalie/political-forecast/internal/politics"
	"github.com/jovalie/political-forecast/internal/score"
	"github.com/jovalie/political-forecast/internal/types"
)

// Source reads a region's trending RSS feed and maps its entries to scored
// topics. It is the lightweight alternative to the rendered-page path: no
// browser, no extraction cascade, just the feed the trending site already
// publishes.
type Source struct {
	cfg    *config.Config
	http   *fetcher.HTTPFetcher
	parser *gofeed.Parser
	logger *slog.Logger
	now    func() time.Time
}

// NewSource creates a feed source backed by the shared HTTP fetcher.
func NewSource(cfg *config.Config, http *fetcher.HTTPFetcher, logger *slog.Logger) *Source {
	return &Source{
		cfg:    cfg,
		http:   http,
		parser: gofeed.NewParser(),
		logger: logger.With("component", "feed"),
		now:    time.Now,
	}
}

// Topics fetches and scores the feed for one region. Entries without a
// publish date still score on keyword density alone.
func (s *Source) Topics(ctx context.Context, region types.Region) ([]types.Topic, error) {
	feedURL := fetcher.RegionURL(s.cfg.Feed.URLTemplate, region)

	body, err := s.http.Get(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("feed fetch for %s: %w", region.Code, err)
	}

	parsed, err := s.parser.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("feed parse for %s: %w", region.Code, err)
	}

	items := parsed.Items
	if max := s.cfg.Feed.MaxItems; max > 0 && len(items) > max {
		items = items[:max]
	}

	now := s.now()
	topics := make([]types.Topic, 0, len(items))
	for _, item := range items {
		if item == nil || item.Title == "" {
			continue
		}

		published := now
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		}

		topic := types.Topic{
			Name:           item.Title,
			RelevanceScore: score.FeedScore(published, now, item.Title, item.Description),
			Category:       politics.Category(item.Title),
			Started:        item.Published,
		}
		if leaning, ok := politics.Classify(item.Title); ok {
			topic.PoliticalLeaning = &leaning
		}
		topics = append(topics, topic)
	}

	s.logger.Debug("feed parsed",
		"region", region.Code,
		"items", len(parsed.Items),
		"topics", len(topics),
	)
	return topics, nil
}
