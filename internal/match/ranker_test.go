package match

import (
	"strings"
	"testing"

	"github.com/spigell/career-compass/internal/jobs"
	"github.com/spigell/career-compass/internal/traits"
	"go.uber.org/zap"
)

func TestRecommendationBands(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.85, BandStrongMatch},
		{0.8, BandStrongMatch},
		{0.70, BandGoodFit},
		{0.6, BandGoodFit},
		{0.50, BandConsider},
		{0.4, BandConsider},
		{0.30, BandNotAligned},
		{0, BandNotAligned},
	}

	for _, tt := range tests {
		if got := Recommendation(tt.score); got != tt.want {
			t.Fatalf("score %v: expected %q, got %q", tt.score, tt.want, got)
		}
	}
}

func TestMarketAvailability(t *testing.T) {
	tests := []struct {
		applicants int
		want       string
	}{
		{20, MarketHighAvailability},
		{30, MarketModerate},
		{99, MarketModerate},
		{100, MarketCompetitive},
		{299, MarketCompetitive},
		{500, MarketHighlyCompetitive},
	}

	for _, tt := range tests {
		if got := MarketAvailability(tt.applicants); got != tt.want {
			t.Fatalf("applicants %d: expected %q, got %q", tt.applicants, tt.want, got)
		}
	}
}

func TestAnalyzeProjectManagerScenario(t *testing.T) {
	profile := traits.NewProfile()
	profile.Merge(&traits.Observation{
		Leadership:     traits.High,
		Resilience:     traits.High,
		ProblemSolving: traits.High,
	})

	record := &jobs.Record{
		Title:       "Project Manager",
		Company:     "TechCorp",
		Description: "Lead projects in a fast-paced environment",
		Applicants:  50,
	}

	result, err := NewRanker(zap.NewNop()).Analyze(record, profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Score < 0.6 {
		t.Fatalf("expected score >= 0.6, got %v", result.Score)
	}
	if result.Recommendation != BandGoodFit && result.Recommendation != BandStrongMatch {
		t.Fatalf("expected at least a good fit, got %q", result.Recommendation)
	}
	if result.MarketAvailability != MarketModerate {
		t.Fatalf("expected moderate availability, got %q", result.MarketAvailability)
	}
	if result.Percentage != int(result.Score*100) {
		t.Fatalf("percentage %d does not match score %v", result.Percentage, result.Score)
	}
	if !strings.Contains(result.Reasoning, result.Recommendation) {
		t.Fatalf("reasoning missing band header: %q", result.Reasoning)
	}
	if !strings.Contains(result.Reasoning, "pressure") {
		t.Fatalf("expected resilience observation in reasoning: %q", result.Reasoning)
	}
}

func TestAnalyzeFallbacksWhenNothingMatches(t *testing.T) {
	profile := traits.NewProfile()
	for _, dim := range traits.Dimensions {
		profile.Levels[dim] = traits.Low
	}

	record := &jobs.Record{
		Title:       "Operations Director",
		Company:     "Acme",
		Description: "Lead engineering teams under pressure, solve critical problems, present to stakeholders",
		Applicants:  400,
	}

	result, err := NewRanker(zap.NewNop()).Analyze(record, profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.KeyStrengths) != 1 || result.KeyStrengths[0] != fallbackStrength {
		t.Fatalf("expected fallback strength, got %v", result.KeyStrengths)
	}
	if len(result.GrowthAreas) == 0 || len(result.GrowthAreas) > 2 {
		t.Fatalf("growth areas out of bounds: %v", result.GrowthAreas)
	}
	for _, area := range result.GrowthAreas {
		if !strings.HasPrefix(area, "Develop ") {
			t.Fatalf("unexpected growth area label: %q", area)
		}
	}
	if result.MarketAvailability != MarketHighlyCompetitive {
		t.Fatalf("expected highly competitive market, got %q", result.MarketAvailability)
	}
}

func TestAnalyzeLabelLimits(t *testing.T) {
	profile := traits.NewProfile()
	profile.Merge(&traits.Observation{
		Leadership:        traits.High,
		Resilience:        traits.High,
		TechnicalAptitude: traits.High,
		ProblemSolving:    traits.High,
		Teamwork:          traits.High,
		Communication:     traits.High,
	})

	record := &jobs.Record{
		Title:       "Director of Engineering",
		Company:     "Acme",
		Description: "Lead engineers under pressure, solve problems, collaborate and present to clients",
	}

	result, err := NewRanker(zap.NewNop()).Analyze(record, profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.MatchedTraits) > 5 {
		t.Fatalf("matched traits exceed limit: %v", result.MatchedTraits)
	}
	if len(result.UnmatchedTraits) > 3 {
		t.Fatalf("unmatched traits exceed limit: %v", result.UnmatchedTraits)
	}
	if len(result.KeyStrengths) > 3 {
		t.Fatalf("strengths exceed limit: %v", result.KeyStrengths)
	}
}

func TestRankAllSortsStably(t *testing.T) {
	profile := traits.NewProfile()
	profile.Merge(&traits.Observation{Leadership: traits.High})

	list := &jobs.Jobs{Items: []*jobs.Record{
		{Title: "Florist", Company: "First", Description: "Arrange flowers"},
		{Title: "Gardener", Company: "Second", Description: "Tend plants"},
		{Title: "Team Lead", Company: "Third", Description: "Lead a team"},
	}}

	results := NewRanker(zap.NewNop()).RankAll(list, profile)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Fatalf("results not sorted by score: %v then %v", results[i-1].Score, results[i].Score)
		}
	}

	// A cue-free posting demands nothing, so any profile satisfies it fully.
	// Florist and Gardener both score 1.0 and must keep input order; Team
	// Lead misses the teamwork demand and ranks last.
	if results[0].Company != "First" || results[1].Company != "Second" {
		t.Fatalf("equal scores lost input order: %s, %s", results[0].Company, results[1].Company)
	}
	if results[2].JobTitle != "Team Lead" {
		t.Fatalf("expected the partial match last, got %q", results[2].JobTitle)
	}
}

func TestRankAllSkipsNilRecords(t *testing.T) {
	profile := traits.NewProfile()
	list := &jobs.Jobs{Items: []*jobs.Record{
		{Title: "Analyst", Company: "Acme", Description: "Analyze data"},
		nil,
	}}

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("batch ranking panicked: %v", r)
		}
	}()

	results := NewRanker(zap.NewNop()).RankAll(list, profile)
	if len(results) != 1 {
		t.Fatalf("expected the bad record to be skipped, got %d results", len(results))
	}
}

func TestTopN(t *testing.T) {
	results := []*Result{{JobTitle: "a"}, {JobTitle: "b"}, {JobTitle: "c"}}

	if got := TopN(results, 2); len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got := TopN(results, 10); len(got) != 3 {
		t.Fatalf("expected all results, got %d", len(got))
	}
	if got := TopN(results, 0); len(got) != 3 {
		t.Fatalf("expected all results for n=0, got %d", len(got))
	}
}
