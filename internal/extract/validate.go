package extract

import (
	"strings"

	"github.com/jovalie/political-forecast/internal/types"
)

// uiNoise lists phrases that mark a candidate as page chrome rather than a
// real topic. Matching is case-insensitive substring.
var uiNoise = []string{
	"trend breakdown",
	"search volume",
	"sort by",
	"trending now",
	"more options",
	"send feedback",
	"sign in",
	"privacy policy",
	"terms of service",
	"past 24 hours",
	"past 4 hours",
	"past 48 hours",
	"past 7 days",
	"export",
	"all categories",
	"select all",
	"show filters",
}

// Validator rejects raw candidates that are UI noise rather than real
// topics. It is a pure filter; input ordering is preserved.
type Validator struct {
	noise []string
}

// NewValidator creates a validator with the production noise lexicon.
func NewValidator() *Validator {
	return &Validator{noise: uiNoise}
}

// NewValidatorWithNoise creates a validator with a custom noise lexicon.
func NewValidatorWithNoise(noise []string) *Validator {
	return &Validator{noise: noise}
}

// Filter applies the full rule set: title checks plus the requirement that
// at least one of search volume and recency resolved. A candidate with one
// resolved field is retained as partially useful; one with neither is
// structural noise.
func (v *Validator) Filter(candidates []types.RawCandidate) []types.RawCandidate {
	var out []types.RawCandidate
	for _, c := range candidates {
		if !v.titleOK(c.Title) {
			continue
		}
		if !c.HasVolume() && !c.HasStarted() {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FilterBare applies only the title rules, for strategies whose candidates
// never carry volume or recency data.
func (v *Validator) FilterBare(candidates []types.RawCandidate) []types.RawCandidate {
	var out []types.RawCandidate
	for _, c := range candidates {
		if !v.titleOK(c.Title) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (v *Validator) titleOK(title string) bool {
	if len(title) < 2 || len(title) > 100 {
		return false
	}
	lower := strings.ToLower(title)
	for _, phrase := range v.noise {
		if strings.Contains(lower, phrase) {
			return false
		}
	}
	return true
}
