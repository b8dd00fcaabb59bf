package score

import (
	"testing"
	"time"

	"github.com/jovalie/political-forecast/internal/types"
)

func TestRelevance(t *testing.T) {
	tests := []struct {
		name    string
		volume  string
		started string
		percent string
		want    int
	}{
		{"no signal baseline", types.FieldUnknown, types.FieldUnknown, "", 50},
		{"plus volume", "200K+", types.FieldUnknown, "", 80},
		{"high qualifier", "High", types.FieldUnknown, "", 80},
		{"medium qualifier", "medium", types.FieldUnknown, "", 65},
		{"fresh hours", types.FieldUnknown, "2 hours ago", "", 70},
		{"day old", types.FieldUnknown, "yesterday", "", 60},
		{"everything maxed clamps", "500K+", "1 hour ago", "15,000%", 100},
		{"growth tier 1000", types.FieldUnknown, types.FieldUnknown, "1,000%", 75},
		{"growth tier 500", types.FieldUnknown, types.FieldUnknown, "600%", 70},
		{"growth tier 200", types.FieldUnknown, types.FieldUnknown, "250%", 65},
		{"growth tier 100", types.FieldUnknown, types.FieldUnknown, "120%", 60},
		{"growth tier 50", types.FieldUnknown, types.FieldUnknown, "50%", 55},
		{"growth below floor", types.FieldUnknown, types.FieldUnknown, "49%", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Relevance(tt.volume, tt.started, tt.percent)
			if got != tt.want {
				t.Errorf("Relevance(%q, %q, %q) = %d, want %d", tt.volume, tt.started, tt.percent, got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("score %d out of [0,100]", got)
			}
		})
	}
}

func TestRelevanceMonotonicGrowth(t *testing.T) {
	// Higher growth never lowers the score, all else equal.
	prev := -1
	for _, pct := range []string{"10%", "50%", "100%", "200%", "500%", "1,000%", "10,000%"} {
		got := Relevance(types.FieldUnknown, types.FieldUnknown, pct)
		if got < prev {
			t.Errorf("score dropped at %s: %d < %d", pct, got, prev)
		}
		prev = got
	}
}

func TestFeedScore(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		published time.Time
		title     string
		summary   string
		want      int
	}{
		{"fresh no keywords", now, "quiet afternoon", "", 70},
		{"fresh one keyword", now, "election day turnout", "", 76},
		{"ten hours old", now.Add(-10 * time.Hour), "quiet afternoon", "", 56},
		{"stale beyond decay", now.Add(-100 * time.Hour), "quiet afternoon", "", 0},
		{"stale but topical", now.Add(-100 * time.Hour), "election verdict protest", "breaking strike", 30},
		{"future date caps", now.Add(2 * time.Hour), "quiet afternoon", "", 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FeedScore(tt.published, now, tt.title, tt.summary)
			if got != tt.want {
				t.Errorf("FeedScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFeedScoreRecencyOrdering(t *testing.T) {
	now := time.Now()
	newer := FeedScore(now.Add(-1*time.Hour), now, "some topic", "")
	older := FeedScore(now.Add(-20*time.Hour), now, "some topic", "")
	if newer <= older {
		t.Errorf("expected newer item to outrank older: %d vs %d", newer, older)
	}
}

func BenchmarkRelevance(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Relevance("200K+", "4 hours ago", "1,000%")
	}
}
