package traits

import "testing"

func TestNewProfileDefaults(t *testing.T) {
	p := NewProfile()

	for _, dim := range Dimensions {
		if got := p.Level(dim); got != Medium {
			t.Fatalf("expected %s to default to medium, got %s", dim, got)
		}
	}

	if p.EnvironmentPreference != Mixed {
		t.Fatalf("expected mixed environment preference, got %s", p.EnvironmentPreference)
	}

	if p.WorkStyle != Mixed {
		t.Fatalf("expected mixed work style, got %s", p.WorkStyle)
	}

	if len(p.Keywords) != 0 {
		t.Fatalf("expected empty keyword set, got %d entries", len(p.Keywords))
	}
}

func TestMergeNonNeutralOverwrites(t *testing.T) {
	p := NewProfile()

	p.Merge(&Observation{Leadership: High, Resilience: Low})

	if got := p.Level(Leadership); got != High {
		t.Fatalf("expected leadership high, got %s", got)
	}
	if got := p.Level(Resilience); got != Low {
		t.Fatalf("expected resilience low, got %s", got)
	}

	// A later non-neutral value wins over the accumulated one.
	p.Merge(&Observation{Leadership: Low})
	if got := p.Level(Leadership); got != Low {
		t.Fatalf("expected leadership downgraded to low, got %s", got)
	}
}

func TestMergeNeutralNeverDowngrades(t *testing.T) {
	p := NewProfile()
	p.Merge(&Observation{
		Leadership:            High,
		EnvironmentPreference: EnvFastPaced,
		WorkStyle:             "independent",
	})

	p.Merge(&Observation{
		Leadership:            Medium,
		EnvironmentPreference: Mixed,
		WorkStyle:             Mixed,
	})

	if got := p.Level(Leadership); got != High {
		t.Fatalf("medium observation downgraded leadership to %s", got)
	}
	if p.EnvironmentPreference != EnvFastPaced {
		t.Fatalf("mixed observation overwrote environment preference: %s", p.EnvironmentPreference)
	}
	if p.WorkStyle != "independent" {
		t.Fatalf("mixed observation overwrote work style: %s", p.WorkStyle)
	}
}

func TestMergeKeywordsAreDeduplicated(t *testing.T) {
	p := NewProfile()

	p.Merge(&Observation{Keywords: []string{"startup", "mentoring"}})
	p.Merge(&Observation{Keywords: []string{"mentoring", " ", "architecture"}})

	got := p.KeywordList()
	want := []string{"architecture", "mentoring", "startup"}
	if len(got) != len(want) {
		t.Fatalf("expected %d keywords, got %v", len(want), got)
	}
	for i, kw := range want {
		if got[i] != kw {
			t.Fatalf("expected keyword %q at %d, got %v", kw, i, got)
		}
	}
}

func TestMergeNormalizesUnknownLevels(t *testing.T) {
	p := NewProfile()
	p.Merge(&Observation{Teamwork: Level("VERY HIGH"), Communication: Level(" High ")})

	if got := p.Level(Teamwork); got != Medium {
		t.Fatalf("unknown level should stay neutral, got %s", got)
	}
	if got := p.Level(Communication); got != High {
		t.Fatalf("expected communication high after trimming, got %s", got)
	}
}

func TestNonNeutralCount(t *testing.T) {
	p := NewProfile()
	p.Merge(&Observation{Resilience: High, TechnicalAptitude: Low})

	if got := p.NonNeutralCount(Resilience, Leadership, TechnicalAptitude); got != 2 {
		t.Fatalf("expected 2 non-neutral dimensions, got %d", got)
	}
}

func TestLexicalObservation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		dim   string
		want  Level
	}{
		{name: "resilience cue", input: "I overcome obstacles under pressure", dim: Resilience, want: High},
		{name: "leadership cue", input: "I lead teams to success", dim: Leadership, want: High},
		{name: "technical cue", input: "I write code daily", dim: TechnicalAptitude, want: High},
		{name: "problem solving cue", input: "I love analyzing data", dim: ProblemSolving, want: High},
		{name: "no cue stays neutral", input: "I like quiet mornings", dim: Communication, want: Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := LexicalObservation(tt.input)
			if got := obs.Level(tt.dim); got != tt.want {
				t.Fatalf("expected %s=%s, got %s", tt.dim, tt.want, got)
			}
		})
	}
}

func TestLexicalObservationIsDeterministic(t *testing.T) {
	input := "I overcome challenges and lead teams to success"

	first := LexicalObservation(input)
	second := LexicalObservation(input)

	for _, dim := range Dimensions {
		if first.Level(dim) != second.Level(dim) {
			t.Fatalf("lexical extraction not deterministic for %s", dim)
		}
	}
}
