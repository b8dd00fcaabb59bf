package politics

import (
	"math"
	"strings"
)

// Classify maps a topic title to a signed leaning score in [-100,100]:
// negative is left-leaning, positive is right-leaning, magnitude is
// strength. ok is false when the topic is non-political or carries no
// detectable signal.
//
// Single pass, no external state. The non-political early exit takes
// precedence over all political keyword matches.
func Classify(title string) (score int, ok bool) {
	text := strings.ToLower(strings.TrimSpace(title))
	if text == "" {
		return 0, false
	}

	for _, kw := range nonPolitical {
		if strings.Contains(text, kw) {
			return 0, false
		}
	}

	left := lexiconScore(text, leftKeywords, 3)
	right := lexiconScore(text, rightKeywords, 3)
	centrist := lexiconScore(text, centristKeywords, 2)

	total := left + right + centrist
	if total == 0 {
		return 0, false
	}

	net := float64(right - left)

	// Centrist dampening pulls the net toward zero without overshooting.
	damp := math.Min(float64(centrist)*0.3, math.Abs(net))
	if net > 0 {
		net -= damp
	} else if net < 0 {
		net += damp
	}

	// Scale normalization keeps many weak hits from producing an extreme
	// score while leaving a strongly single-signal topic near its raw
	// magnitude.
	net *= math.Min(100/float64(total), 1)

	score = int(math.Round(net))
	if score > 100 {
		score = 100
	}
	if score < -100 {
		score = -100
	}
	return score, true
}

// lexiconScore accumulates keyword contributions for one lexicon. Each
// matched keyword contributes its word count times the lexicon weight, so a
// multi-word match counts more than a single-word one as a proxy for
// specificity.
func lexiconScore(text string, lexicon []string, weight int) int {
	score := 0
	for _, kw := range lexicon {
		if strings.Contains(text, kw) {
			score += len(strings.Fields(kw)) * weight
		}
	}
	return score
}

// Label renders a leaning score as a display label.
func Label(score int) string {
	switch {
	case score <= -60:
		return "Far Left"
	case score < 0:
		return "Left Leaning"
	case score >= 60:
		return "Far Right"
	case score > 0:
		return "Right Leaning"
	default:
		return "Center"
	}
}

// Category derives a coarse topic category from the title: one of the
// non-political groups, "political" when a leaning signal exists, otherwise
// "general".
func Category(title string) string {
	text := strings.ToLower(strings.TrimSpace(title))

	for _, group := range categoryLexicons {
		for _, kw := range group.keywords {
			if strings.Contains(text, kw) {
				return group.name
			}
		}
	}

	if _, ok := Classify(title); ok {
		return "political"
	}
	return "general"
}
