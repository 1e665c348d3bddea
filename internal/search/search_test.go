package search

import (
	"testing"

	"github.com/spigell/career-compass/internal/traits"
)

func TestShouldSearch(t *testing.T) {
	tests := []struct {
		name  string
		setup func(p *traits.Profile)
		want  bool
	}{
		{
			name:  "fresh profile",
			setup: func(*traits.Profile) {},
			want:  false,
		},
		{
			name: "single significant trait",
			setup: func(p *traits.Profile) {
				p.Levels[traits.Leadership] = traits.High
			},
			want: false,
		},
		{
			name: "two significant traits",
			setup: func(p *traits.Profile) {
				p.Levels[traits.Leadership] = traits.High
				p.Levels[traits.Resilience] = traits.Low
			},
			want: true,
		},
		{
			name: "keywords alone suffice",
			setup: func(p *traits.Profile) {
				p.Keywords["architecture"] = struct{}{}
			},
			want: true,
		},
		{
			name: "non-significant traits do not count",
			setup: func(p *traits.Profile) {
				p.Levels[traits.Teamwork] = traits.High
				p.Levels[traits.Communication] = traits.High
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := traits.NewProfile()
			tt.setup(profile)

			if got := ShouldSearch(profile); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestShouldSearchNilProfile(t *testing.T) {
	if ShouldSearch(nil) {
		t.Fatal("nil profile must not trigger a search")
	}
}

func TestPlanQueriesFromHighTraits(t *testing.T) {
	profile := traits.NewProfile()
	profile.Levels[traits.Leadership] = traits.High

	queries := PlanQueries(profile)

	want := []string{"Project Manager", "Team Lead", "Manager"}
	if len(queries) != len(want) {
		t.Fatalf("expected %v, got %v", want, queries)
	}
	for i, q := range want {
		if queries[i] != q {
			t.Fatalf("expected %q at %d, got %v", q, i, queries)
		}
	}
}

func TestPlanQueriesCapAndDedupe(t *testing.T) {
	profile := traits.NewProfile()
	profile.Levels[traits.Leadership] = traits.High
	profile.Levels[traits.TechnicalAptitude] = traits.High
	profile.Levels[traits.Resilience] = traits.High
	profile.EnvironmentPreference = traits.EnvFastPaced
	profile.Keywords["devops"] = struct{}{}

	queries := PlanQueries(profile)

	if len(queries) > 5 {
		t.Fatalf("expected at most 5 queries, got %v", queries)
	}

	seen := make(map[string]bool)
	for _, q := range queries {
		if seen[q] {
			t.Fatalf("duplicate query %q in %v", q, queries)
		}
		seen[q] = true
	}
}

func TestPlanQueriesEnvironmentTitles(t *testing.T) {
	profile := traits.NewProfile()
	profile.EnvironmentPreference = traits.EnvFlexible
	profile.Keywords["writing"] = struct{}{}

	queries := PlanQueries(profile)

	found := false
	for _, q := range queries {
		if q == "Remote Worker" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected flexible environment titles, got %v", queries)
	}
	if queries[0] != "writing" {
		t.Fatalf("expected keyword before environment titles, got %v", queries)
	}
}

func TestPlanQueriesFallback(t *testing.T) {
	queries := PlanQueries(traits.NewProfile())

	if len(queries) != 2 || queries[0] != "Software Engineer" || queries[1] != "Project Manager" {
		t.Fatalf("expected fallback pair, got %v", queries)
	}
}

func TestPlanQueriesDeterministic(t *testing.T) {
	profile := traits.NewProfile()
	profile.Levels[traits.ProblemSolving] = traits.High
	profile.Keywords["ops"] = struct{}{}
	profile.Keywords["sre"] = struct{}{}

	first := PlanQueries(profile)
	second := PlanQueries(profile)

	if len(first) != len(second) {
		t.Fatalf("planner not deterministic: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("planner not deterministic at %d: %v vs %v", i, first, second)
		}
	}
}
