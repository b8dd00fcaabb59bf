package fetcher

import (
	"context"
	"strings"

	"github.com/jovalie/political-forecast/internal/types"
)

// Fetcher renders a region's trending page and returns the settled content.
type Fetcher interface {
	// Fetch navigates to the region's page and returns its rendered markup
	// after dynamic content has settled. The context bounds the whole
	// render-and-settle operation.
	Fetch(ctx context.Context, region types.Region) (*types.PageContent, error)

	// Close releases fetcher resources.
	Close() error
}

// RegionURL expands a URL template's {code} placeholder for a region.
func RegionURL(template string, region types.Region) string {
	return strings.ReplaceAll(template, "{code}", region.Code)
}
