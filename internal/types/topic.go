package types

import (
	"strings"
	"time"
)

// FieldUnknown is the sentinel for a candidate field no strategy could resolve.
const FieldUnknown = "Unknown"

// RawCandidate is a single unvalidated record produced by an extraction
// strategy. Any field except Title may be the FieldUnknown sentinel or empty;
// the title itself may still be UI chrome until the validator has seen it.
type RawCandidate struct {
	// Title is the topic text as it appeared on the page.
	Title string

	// SearchVolume is the raw volume text (e.g. "200K+"), or FieldUnknown.
	SearchVolume string

	// Started is the raw recency text (e.g. "4 hours ago"), or FieldUnknown.
	Started string

	// Breakdown is the related-term breakdown text, if present.
	Breakdown string

	// Percentage is the raw growth text (e.g. "1,000%"), if present.
	Percentage string

	// SourceLink is the trend-detail URL the candidate was harvested from.
	SourceLink string
}

// HasVolume reports whether the search volume field was resolved.
func (c RawCandidate) HasVolume() bool {
	return c.SearchVolume != "" && c.SearchVolume != FieldUnknown
}

// HasStarted reports whether the recency field was resolved.
func (c RawCandidate) HasStarted() bool {
	return c.Started != "" && c.Started != FieldUnknown
}

// Topic is a validated, scored trend record ready for aggregation.
type Topic struct {
	Name           string `json:"name"           bson:"name"`
	RelevanceScore int    `json:"relevanceScore" bson:"relevance_score"`
	Category       string `json:"category"       bson:"category"`
	SearchVolume   string `json:"searchVolume,omitempty"       bson:"search_volume,omitempty"`
	Started        string `json:"started,omitempty"            bson:"started,omitempty"`
	TrendBreakdown string `json:"trendBreakdown,omitempty"     bson:"trend_breakdown,omitempty"`
	PctIncrease    string `json:"percentageIncrease,omitempty" bson:"percentage_increase,omitempty"`

	// PoliticalLeaning is a signed -100..100 keyword-derived score.
	// Nil means the topic is non-political or carries no detectable signal.
	PoliticalLeaning *int `json:"politicalLeaning,omitempty" bson:"political_leaning,omitempty"`
}

// StateRecord is the per-region ingestion result. It is created or overwritten
// whole per run; readers treat it as immutable.
type StateRecord struct {
	Name          string    `json:"name"          bson:"name"`
	Code          string    `json:"code"          bson:"code"`
	TopTopic      string    `json:"topTopic"      bson:"top_topic"`
	Category      string    `json:"category"      bson:"category"`
	TrendingScore int       `json:"trendingScore" bson:"trending_score"`
	Topics        []Topic   `json:"topics"        bson:"topics"`
	Timestamp     time.Time `json:"timestamp"     bson:"timestamp"`
}

// AggregateFile is the durable store: the latest StateRecord per region.
type AggregateFile struct {
	Timestamp time.Time     `json:"timestamp"`
	States    []StateRecord `json:"states"`
}

// Region is a geographic unit tracked independently (a US state or DC).
type Region struct {
	Name string
	Code string
}

// FindRegion looks up a region by name or code, case-insensitively.
func FindRegion(regions []Region, key string) (Region, bool) {
	for _, r := range regions {
		if strings.EqualFold(r.Name, key) || strings.EqualFold(r.Code, key) {
			return r, true
		}
	}
	return Region{}, false
}
