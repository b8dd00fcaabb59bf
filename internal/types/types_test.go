package types

import "testing"

func TestUSStatesComplete(t *testing.T) {
	if len(USStates) != 51 {
		t.Fatalf("expected 50 states plus DC, got %d", len(USStates))
	}

	codes := make(map[string]bool, len(USStates))
	for _, r := range USStates {
		if len(r.Code) != 2 {
			t.Errorf("region %q has malformed code %q", r.Name, r.Code)
		}
		if codes[r.Code] {
			t.Errorf("duplicate region code %q", r.Code)
		}
		codes[r.Code] = true
	}
	if !codes["DC"] {
		t.Error("expected DC to be tracked")
	}
}

func TestFindRegion(t *testing.T) {
	tests := []struct {
		key      string
		wantCode string
		wantOK   bool
	}{
		{"California", "CA", true},
		{"california", "CA", true},
		{"CA", "CA", true},
		{"ca", "CA", true},
		{"District of Columbia", "DC", true},
		{"Atlantis", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := FindRegion(USStates, tt.key)
		if ok != tt.wantOK {
			t.Errorf("FindRegion(%q) ok = %v, want %v", tt.key, ok, tt.wantOK)
			continue
		}
		if ok && got.Code != tt.wantCode {
			t.Errorf("FindRegion(%q) = %q, want %q", tt.key, got.Code, tt.wantCode)
		}
	}
}

func TestRawCandidateFieldChecks(t *testing.T) {
	c := RawCandidate{SearchVolume: FieldUnknown, Started: ""}
	if c.HasVolume() {
		t.Error("sentinel volume must not count as resolved")
	}
	if c.HasStarted() {
		t.Error("empty started must not count as resolved")
	}

	c = RawCandidate{SearchVolume: "200K+", Started: "4 hours ago"}
	if !c.HasVolume() || !c.HasStarted() {
		t.Error("resolved fields not detected")
	}
}
