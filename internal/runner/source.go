package runner

import (
	"context"
	"log/slog"

	"github.com/jovalie/political-forecast/internal/extract"
	"github.com/jovalie/political-forecast/internal/fetcher"
	"github.com/jovalie/political-forecast/internal/politics"
	"github.com/jovalie/political-forecast/internal/score"
	"github.com/jovalie/political-forecast/internal/types"
)

// PageSource is the rendered-page pipeline: fetch the trending page, run
// the extraction cascade, then score and classify what survived.
type PageSource struct {
	fetch   fetcher.Fetcher
	cascade *extract.Cascade
	logger  *slog.Logger
}

// NewPageSource wires a fetcher and cascade into a TopicSource.
func NewPageSource(fetch fetcher.Fetcher, cascade *extract.Cascade, logger *slog.Logger) *PageSource {
	return &PageSource{
		fetch:   fetch,
		cascade: cascade,
		logger:  logger.With("component", "page_source"),
	}
}

// Topics implements TopicSource.
func (s *PageSource) Topics(ctx context.Context, region types.Region) ([]types.Topic, error) {
	content, err := s.fetch.Fetch(ctx, region)
	if err != nil {
		return nil, err
	}

	candidates, strategy := s.cascade.Run(content)
	if len(candidates) == 0 {
		return nil, nil
	}

	s.logger.Debug("candidates extracted",
		"region", region.Code,
		"strategy", strategy,
		"count", len(candidates),
	)

	topics := make([]types.Topic, 0, len(candidates))
	for _, c := range candidates {
		topics = append(topics, candidateTopic(c))
	}
	return topics, nil
}

// candidateTopic scores and classifies one validated candidate. Unresolved
// field sentinels become empty strings so they drop out of serialized output.
func candidateTopic(c types.RawCandidate) types.Topic {
	topic := types.Topic{
		Name:           c.Title,
		RelevanceScore: score.Relevance(c.SearchVolume, c.Started, c.Percentage),
		Category:       politics.Category(c.Title),
		SearchVolume:   resolved(c.SearchVolume),
		Started:        resolved(c.Started),
		TrendBreakdown: resolved(c.Breakdown),
		PctIncrease:    resolved(c.Percentage),
	}
	if leaning, ok := politics.Classify(c.Title); ok {
		topic.PoliticalLeaning = &leaning
	}
	return topic
}

func resolved(field string) string {
	if field == types.FieldUnknown {
		return ""
	}
	return field
}
