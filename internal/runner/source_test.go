package runner

import (
	"context"
	"testing"
	"time"

	"github.com/jovalie/political-forecast/internal/extract"
	"github.com/jovalie/political-forecast/internal/types"
)

const trendingPageHTML = `<!DOCTYPE html>
<html>
<body>
  <table>
    <tr>
      <td>Election Reform</td>
      <td>200K+ searches</td>
      <td>4 hours ago · up 1,000%</td>
    </tr>
    <tr>
      <td>Heat Wave Warning</td>
      <td>50K+ searches</td>
      <td>2 hours ago</td>
    </tr>
  </table>
</body>
</html>`

// fakeFetcher serves a fixed page body.
type fakeFetcher struct {
	body string
}

func (f *fakeFetcher) Fetch(ctx context.Context, region types.Region) (*types.PageContent, error) {
	return types.NewPageContent(region, "https://example.com", []byte(f.body), time.Millisecond), nil
}

func (f *fakeFetcher) Close() error { return nil }

func TestPageSourceTopics(t *testing.T) {
	source := NewPageSource(&fakeFetcher{body: trendingPageHTML}, extract.NewCascade(testLogger), testLogger)

	topics, err := source.Topics(context.Background(), types.Region{Name: "California", Code: "CA"})
	if err != nil {
		t.Fatalf("topics: %v", err)
	}
	if len(topics) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(topics))
	}

	first := topics[0]
	if first.Name != "Election Reform" {
		t.Errorf("expected 'Election Reform', got %q", first.Name)
	}
	// Volume plus, fresh recency, and four-digit growth all hit their caps.
	if first.RelevanceScore != 100 {
		t.Errorf("expected relevance 100, got %d", first.RelevanceScore)
	}
	if first.Category != "general" {
		t.Errorf("expected category 'general', got %q", first.Category)
	}
	if first.SearchVolume != "200K+" {
		t.Errorf("expected raw volume preserved, got %q", first.SearchVolume)
	}

	second := topics[1]
	if second.Category != "weather" {
		t.Errorf("expected category 'weather', got %q", second.Category)
	}
	if second.PoliticalLeaning != nil {
		t.Errorf("weather topic must have no leaning, got %d", *second.PoliticalLeaning)
	}
}

func TestPageSourceEmptyPage(t *testing.T) {
	source := NewPageSource(&fakeFetcher{body: "<html><body></body></html>"}, extract.NewCascade(testLogger), testLogger)

	topics, err := source.Topics(context.Background(), types.Region{Name: "Texas", Code: "TX"})
	if err != nil {
		t.Fatalf("empty page is not an error: %v", err)
	}
	if len(topics) != 0 {
		t.Errorf("expected no topics, got %d", len(topics))
	}
}

func TestResolvedSentinel(t *testing.T) {
	if got := resolved(types.FieldUnknown); got != "" {
		t.Errorf("expected sentinel mapped to empty, got %q", got)
	}
	if got := resolved("200K+"); got != "200K+" {
		t.Errorf("expected passthrough, got %q", got)
	}
}
