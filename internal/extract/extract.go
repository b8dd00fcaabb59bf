package extract

import (
	"log/slog"

	"github.com/jovalie/political-forecast/internal/types"
)

// Strategy is one independent attempt at pulling trend candidates out of a
// rendered page. Strategies are stateless with respect to each other.
type Strategy interface {
	// Name identifies the strategy in logs and run summaries.
	Name() string

	// Extract produces raw candidates from the page content. Returning an
	// empty slice is not an error; it means the page's structure did not
	// match this strategy.
	Extract(content *types.PageContent) ([]types.RawCandidate, error)
}

// tier pairs a strategy with its validation mode. Bare tiers (link harvest,
// heading fallback) produce titles without volume or recency data, so the
// resolved-fields rule would reject their entire output.
type tier struct {
	strategy Strategy
	bare     bool
}

// Cascade tries strategies in a fixed priority order and stops at the first
// one whose output survives validation. Structural rows carry the richest
// fields, so the cheaper strategies only run when the richer ones find
// nothing at all; a single validated candidate is accepted as final.
type Cascade struct {
	tiers     []tier
	validator *Validator
	logger    *slog.Logger
}

// NewCascade creates a cascade with the default strategy order:
// rows, articles, links, headings.
func NewCascade(logger *slog.Logger) *Cascade {
	return &Cascade{
		tiers: []tier{
			{strategy: NewRowStrategy()},
			{strategy: NewArticleStrategy()},
			{strategy: NewLinkStrategy(), bare: true},
			{strategy: NewHeadingStrategy(), bare: true},
		},
		validator: NewValidator(),
		logger:    logger.With("component", "cascade"),
	}
}

// Run extracts validated candidates from a page, reporting which strategy
// produced them. An empty result from every strategy is not an error; it
// means the region has no usable data this run.
func (c *Cascade) Run(content *types.PageContent) ([]types.RawCandidate, string) {
	for _, t := range c.tiers {
		raw, err := t.strategy.Extract(content)
		if err != nil {
			c.logger.Warn("strategy error",
				"strategy", t.strategy.Name(),
				"region", content.Region.Code,
				"error", err,
			)
			continue
		}

		var valid []types.RawCandidate
		if t.bare {
			valid = c.validator.FilterBare(raw)
		} else {
			valid = c.validator.Filter(raw)
		}

		c.logger.Debug("strategy attempted",
			"strategy", t.strategy.Name(),
			"region", content.Region.Code,
			"raw", len(raw),
			"valid", len(valid),
		)

		if len(valid) > 0 {
			return valid, t.strategy.Name()
		}
	}
	return nil, ""
}
