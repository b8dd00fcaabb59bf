package politics

import (
	"testing"
)

func TestClassifyUndefined(t *testing.T) {
	tests := []struct {
		name  string
		title string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"no signal", "best pizza near me"},
		{"non-political weather", "hurricane forecast update"},
		{"non-political beats political", "weather and the supreme court"},
		{"sports with political name", "trump national golf nba game"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if score, ok := Classify(tt.title); ok {
				t.Errorf("Classify(%q) = %d, expected undefined", tt.title, score)
			}
		})
	}
}

func TestClassifyDirection(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		wantSign int // -1 left, +1 right
	}{
		{"left multi keyword", "bernie sanders medicare for all rally", -1},
		{"left single", "progressive tax proposal", -1},
		{"right multi keyword", "trump border wall speech", +1},
		{"right single", "conservative summit", +1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, ok := Classify(tt.title)
			if !ok {
				t.Fatalf("Classify(%q) undefined, expected a score", tt.title)
			}
			if tt.wantSign < 0 && score >= 0 {
				t.Errorf("Classify(%q) = %d, expected negative", tt.title, score)
			}
			if tt.wantSign > 0 && score <= 0 {
				t.Errorf("Classify(%q) = %d, expected positive", tt.title, score)
			}
		})
	}
}

func TestClassifyCentristDampening(t *testing.T) {
	plain, ok := Classify("trump speech")
	if !ok {
		t.Fatal("expected a score for plain title")
	}
	damped, ok := Classify("trump bipartisan compromise speech")
	if !ok {
		t.Fatal("expected a score for damped title")
	}

	if damped >= plain {
		t.Errorf("centrist terms should pull toward zero: plain=%d damped=%d", plain, damped)
	}
	if damped < 0 {
		t.Errorf("dampening must not flip the sign: got %d", damped)
	}
}

func TestClassifyBounds(t *testing.T) {
	titles := []string{
		"bernie sanders elizabeth warren green new deal medicare for all gun control wealth tax",
		"trump maga border wall second amendment pro-life tax cuts america first",
		"bipartisan compromise moderate centrist coalition common ground",
	}
	for _, title := range titles {
		score, ok := Classify(title)
		if !ok {
			continue
		}
		if score < -100 || score > 100 {
			t.Errorf("Classify(%q) = %d, out of [-100,100]", title, score)
		}
	}
}

func TestClassifyBalancedSignal(t *testing.T) {
	// Equal pull on both sides nets to zero but is still a defined score.
	score, ok := Classify("democrat republican debate")
	if !ok {
		t.Fatal("expected a defined score for balanced title")
	}
	if score != 0 {
		t.Errorf("expected 0 for balanced signal, got %d", score)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{-100, "Far Left"},
		{-60, "Far Left"},
		{-59, "Left Leaning"},
		{-1, "Left Leaning"},
		{0, "Center"},
		{1, "Right Leaning"},
		{59, "Right Leaning"},
		{60, "Far Right"},
		{100, "Far Right"},
	}

	for _, tt := range tests {
		if got := Label(tt.score); got != tt.want {
			t.Errorf("Label(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestCategory(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"nba finals game 7", "sports"},
		{"hurricane tracker live", "weather"},
		{"new movie trailer drops", "entertainment"},
		{"flu season tips", "health"},
		{"nasa eclipse photos", "science"},
		{"trump rally tonight", "political"},
		{"quantum computing breakthrough", "general"},
	}

	for _, tt := range tests {
		if got := Category(tt.title); got != tt.want {
			t.Errorf("Category(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func BenchmarkClassify(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Classify("trump bipartisan border wall compromise with democrats")
	}
}
