package extract

import (
	"testing"

	"github.com/jovalie/political-forecast/internal/types"
)

func TestVolumeAttempts(t *testing.T) {
	tests := []struct {
		name      string
		locations []string
		want      string
	}{
		{"labelled volume", []string{"200K+ searches"}, "200K+"},
		{"bare token", []string{"1.5M+"}, "1.5M+"},
		{"comma volume", []string{"20,000+ people searched"}, "20,000+"},
		{"plain plus", []string{"500+"}, "500+"},
		{"bare year ignored", []string{"2025"}, types.FieldUnknown},
		{"year with plus rejected", []string{"2025+"}, types.FieldUnknown},
		{"strict attempt wins over loose", []string{"500+", "200K+ searches"}, "200K+"},
		{"empty", nil, types.FieldUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractField(volumeAttempts, tt.locations); got != tt.want {
				t.Errorf("extractField(volume, %v) = %q, want %q", tt.locations, got, tt.want)
			}
		})
	}
}

func TestStartedAttempts(t *testing.T) {
	tests := []struct {
		name      string
		locations []string
		want      string
	}{
		{"relative hours", []string{"4 hours ago"}, "4 hours ago"},
		{"singular minute", []string{"1 minute ago"}, "1 minute ago"},
		{"bare yesterday", []string{"trending since yesterday"}, "yesterday"},
		{"started prefix", []string{"Started 3 days back"}, "3 days back"},
		{"nothing", []string{"no time here"}, types.FieldUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractField(startedAttempts, tt.locations); got != tt.want {
				t.Errorf("extractField(started, %v) = %q, want %q", tt.locations, got, tt.want)
			}
		})
	}
}

func TestPercentAttempts(t *testing.T) {
	tests := []struct {
		name      string
		locations []string
		want      string
	}{
		{"comma grouped", []string{"up 1,000%"}, "1,000"},
		{"up prefix", []string{"up 250%"}, "250"},
		{"plain", []string{"400%"}, "400"},
		{"all zero rejected", []string{"0%"}, types.FieldUnknown},
		{"zero padded rejected", []string{"000%"}, types.FieldUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractField(percentAttempts, tt.locations); got != tt.want {
				t.Errorf("extractField(percent, %v) = %q, want %q", tt.locations, got, tt.want)
			}
		})
	}
}

func TestTitleBeforeNumbers(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Election Reform200K+ searches", "Election Reform"},
		{"Heat Wave\n50K+ searches\n2 hours ago", "Heat Wave"},
		{"· icon · Governor Debate · 10K+", "Governor Debate"},
		{"12345 only digits", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := titleBeforeNumbers(tt.text); got != tt.want {
			t.Errorf("titleBeforeNumbers(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"1,000%", 1000},
		{"250", 250},
		{"up 15,000%", 15000},
		{"no digits", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := ParsePercent(tt.raw); got != tt.want {
			t.Errorf("ParsePercent(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}
