package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jovalie/political-forecast/internal/types"
)

// HeadingStrategy is the last-resort tier: it collects heading-level text
// nodes as bare titles with no volume or recency data.
type HeadingStrategy struct{}

// NewHeadingStrategy creates the heading-fallback strategy.
func NewHeadingStrategy() *HeadingStrategy {
	return &HeadingStrategy{}
}

// Name implements Strategy.
func (s *HeadingStrategy) Name() string { return "headings" }

// Extract implements Strategy.
func (s *HeadingStrategy) Extract(content *types.PageContent) ([]types.RawCandidate, error) {
	doc, err := content.Document()
	if err != nil {
		return nil, &types.ExtractError{Strategy: s.Name(), Region: content.Region.Code, Err: err}
	}

	seen := make(map[string]bool)
	var candidates []types.RawCandidate

	doc.Find("h1, h2, h3, h4").Each(func(_ int, heading *goquery.Selection) {
		title := strings.TrimSpace(heading.Text())
		if title == "" || seen[strings.ToLower(title)] {
			return
		}
		seen[strings.ToLower(title)] = true

		candidates = append(candidates, types.RawCandidate{
			Title:        title,
			SearchVolume: types.FieldUnknown,
			Started:      types.FieldUnknown,
		})
	})

	return candidates, nil
}
