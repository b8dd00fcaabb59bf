package score

import (
	"math"
	"strings"
	"time"
)

// topicalKeywords is the fixed lexicon used for the feed scorer's
// keyword-density component. Loaded once, never mutated.
var topicalKeywords = []string{
	"election", "vote", "senate", "congress", "governor", "president",
	"supreme court", "economy", "inflation", "jobs report",
	"breaking", "emergency", "evacuation", "storm", "wildfire",
	"shooting", "verdict", "indictment", "protest", "strike",
}

// FeedScore scores a feed item by blending 70% recency decay with 30%
// keyword density against the topical lexicon. The recency component loses
// two points per hour since publish, so a strictly more recent item never
// scores below an otherwise-identical older one. Result is in [0,100].
func FeedScore(published, now time.Time, title, summary string) int {
	recency := 100.0 - 2.0*now.Sub(published).Hours()
	if recency < 0 {
		recency = 0
	}
	if recency > 100 {
		recency = 100 // future-dated items cap at full freshness
	}

	density := keywordDensity(title + " " + summary)

	blended := 0.7*recency + 0.3*density
	return clamp(int(math.Round(blended)), 0, 100)
}

// keywordDensity maps lexicon hits to a 0-100 component. Each distinct
// keyword hit is worth 20 points, capped at 100.
func keywordDensity(text string) float64 {
	lower := strings.ToLower(text)
	hits := 0
	for _, kw := range topicalKeywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}
	d := float64(hits) * 20
	if d > 100 {
		return 100
	}
	return d
}
