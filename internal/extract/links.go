package extract

import (
	"strings"

	"github.com/antchfx/htmlquery"

	"github.com/jovalie/political-forecast/internal/types"
)

// trendAnchors matches anchors pointing at trend-detail pages while
// excluding navigation and header chrome, which carry their own trend links.
const trendAnchors = `//a[contains(@href, "/trends/explore") or contains(@href, "trending")]` +
	`[not(ancestor::nav) and not(ancestor::header) and not(ancestor::*[@role="navigation"])]`

// LinkStrategy harvests anchor elements pointing at trend-detail pages.
// It yields bare titles plus source links; volume and recency stay unknown.
type LinkStrategy struct{}

// NewLinkStrategy creates the link-harvest strategy.
func NewLinkStrategy() *LinkStrategy {
	return &LinkStrategy{}
}

// Name implements Strategy.
func (s *LinkStrategy) Name() string { return "links" }

// Extract implements Strategy.
func (s *LinkStrategy) Extract(content *types.PageContent) ([]types.RawCandidate, error) {
	root, err := content.Node()
	if err != nil {
		return nil, &types.ExtractError{Strategy: s.Name(), Region: content.Region.Code, Err: err}
	}

	nodes, err := htmlquery.QueryAll(root, trendAnchors)
	if err != nil {
		return nil, &types.ExtractError{Strategy: s.Name(), Region: content.Region.Code, Err: err}
	}

	seen := make(map[string]bool)
	var candidates []types.RawCandidate

	for _, node := range nodes {
		title := strings.TrimSpace(htmlquery.InnerText(node))
		if title == "" || seen[strings.ToLower(title)] {
			continue
		}
		seen[strings.ToLower(title)] = true

		candidates = append(candidates, types.RawCandidate{
			Title:        title,
			SearchVolume: types.FieldUnknown,
			Started:      extractField(startedAttempts, []string{title, htmlquery.SelectAttr(node, "aria-label")}),
			SourceLink:   htmlquery.SelectAttr(node, "href"),
		})
	}

	return candidates, nil
}
