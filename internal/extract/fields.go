package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/jovalie/political-forecast/internal/types"
)

// fieldAttempt is one entry in an ordered extraction table. Attempts run
// strictest first; a later attempt is only consulted when every earlier one
// failed on every location.
type fieldAttempt struct {
	re *regexp.Regexp

	// reject drops a match and moves on to the next one. Used for the
	// all-zero percentage guard and the bare-year volume guard.
	reject func(string) bool
}

var (
	// Volume tokens always carry a trailing "+". A bare year like "2025"
	// never qualifies, and a 4-digit "20xx+" token is treated as date noise
	// rather than a volume.
	volumeAttempts = []fieldAttempt{
		{re: regexp.MustCompile(`(?i)(\d+(?:\.\d+)?\s*[KMB]\+)\s*searches`), reject: yearLike},
		{re: regexp.MustCompile(`(\d+(?:\.\d+)?[KMB]\+)`), reject: yearLike},
		{re: regexp.MustCompile(`(\d{1,3}(?:,\d{3})+\+)`), reject: yearLike},
		{re: regexp.MustCompile(`(\d+\+)`), reject: yearLike},
	}

	startedAttempts = []fieldAttempt{
		{re: regexp.MustCompile(`(?i)(\d+\s*(?:minute|hour|day|week)s?\s+ago)`)},
		{re: regexp.MustCompile(`(?i)\b(just now|yesterday|today|now)\b`)},
		{re: regexp.MustCompile(`(?i)started\s+([^\n·|]+)`)},
	}

	percentAttempts = []fieldAttempt{
		{re: regexp.MustCompile(`(\d{1,3}(?:,\d{3})+)\s*%`), reject: allZero},
		{re: regexp.MustCompile(`(?i)up\s+(\d[\d,]*)\s*%`), reject: allZero},
		{re: regexp.MustCompile(`(\d+)\s*%`), reject: allZero},
	}

	breakdownAttempts = []fieldAttempt{
		{re: regexp.MustCompile(`(?i)trend breakdown[:\s]+([^\n·|]+)`)},
		{re: regexp.MustCompile(`·\s*([A-Za-z][A-Za-z'\- ]{2,40})`)},
	}
)

// yearLike reports whether a volume token is really a year fragment:
// four digits beginning "20".
func yearLike(match string) bool {
	digits := digitsOf(match)
	return len(digits) == 4 && strings.HasPrefix(digits, "20")
}

// allZero rejects percentage matches that are only zero padding.
func allZero(match string) bool {
	digits := digitsOf(match)
	if digits == "" {
		return true
	}
	return strings.Count(digits, "0") == len(digits)
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// extractField runs an attempt table over a list of candidate locations
// (cell text, row text, aria-labels) and returns the first accepted match.
// Each attempt is exhausted across all locations before the next, looser,
// attempt runs.
func extractField(attempts []fieldAttempt, locations []string) string {
	for _, attempt := range attempts {
		for _, text := range locations {
			if text == "" {
				continue
			}
			for _, m := range attempt.re.FindAllStringSubmatch(text, -1) {
				if len(m) < 2 {
					continue
				}
				match := strings.TrimSpace(m[1])
				if match == "" {
					continue
				}
				if attempt.reject != nil && attempt.reject(match) {
					continue
				}
				return match
			}
		}
	}
	return types.FieldUnknown
}

// titleBeforeNumbers extracts a title as the longest alphabetic run
// preceding the first numeric or volume token in the row text.
func titleBeforeNumbers(text string) string {
	cut := len(text)
	for i, r := range text {
		if unicode.IsDigit(r) {
			cut = i
			break
		}
	}

	prefix := text[:cut]

	// The prefix may span several visual fragments (icons render as glyph
	// runs, separators as bullets). The longest lettered fragment is the
	// topic title.
	fragments := strings.FieldsFunc(prefix, func(r rune) bool {
		return r == '\n' || r == '·' || r == '|' || r == '•'
	})

	best := ""
	for _, frag := range fragments {
		frag = strings.TrimSpace(frag)
		if !hasLetter(frag) {
			continue
		}
		if len(frag) > len(best) {
			best = frag
		}
	}
	return best
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// ParsePercent converts raw growth text like "1,000%" to its numeric value.
// Returns 0 when the text carries no parsable number.
func ParsePercent(raw string) int {
	digits := digitsOf(raw)
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}
