package score

import (
	"strconv"
	"strings"

	"github.com/jovalie/political-forecast/internal/types"
)

// Relevance maps a candidate's raw volume, recency, and growth text to an
// integer score in [0,100]. It is a deterministic additive heuristic, not a
// fitted model: more recent plus higher volume plus higher growth always
// ranks at least as high.
func Relevance(volumeText, startedText, percentText string) int {
	score := 50

	score += volumeBonus(resolved(volumeText))
	score += recencyBonus(resolved(startedText))
	score += growthBonus(parsePercent(percentText))

	return clamp(score, 0, 100)
}

// resolved maps the unresolved-field sentinel to empty text. The sentinel
// itself contains "now" as a substring, so it must never reach the
// keyword matchers.
func resolved(text string) string {
	if text == types.FieldUnknown {
		return ""
	}
	return text
}

// volumeBonus rewards explicit "+" volume tokens and high/very qualifiers.
func volumeBonus(volumeText string) int {
	lower := strings.ToLower(volumeText)
	switch {
	case strings.Contains(volumeText, "+"),
		strings.Contains(lower, "high"),
		strings.Contains(lower, "very"):
		return 30
	case strings.Contains(lower, "medium"), strings.Contains(lower, "moderate"):
		return 15
	default:
		return 0
	}
}

// recencyBonus rewards fresher "started" signals.
func recencyBonus(startedText string) int {
	lower := strings.ToLower(startedText)
	switch {
	case strings.Contains(lower, "hour"), strings.Contains(lower, "now"),
		strings.Contains(lower, "minute"):
		return 20
	case strings.Contains(lower, "day"), strings.Contains(lower, "yesterday"):
		return 10
	default:
		return 0
	}
}

// growthBonus tiers the parsed percentage-growth magnitude.
func growthBonus(percent int) int {
	switch {
	case percent >= 10000:
		return 30
	case percent >= 1000:
		return 25
	case percent >= 500:
		return 20
	case percent >= 200:
		return 15
	case percent >= 100:
		return 10
	case percent >= 50:
		return 5
	default:
		return 0
	}
}

// parsePercent extracts the numeric magnitude from growth text like "1,000%".
func parsePercent(raw string) int {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
