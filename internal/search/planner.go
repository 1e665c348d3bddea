package search

import "github.com/spigell/career-compass/internal/traits"

const (
	maxQueries        = 5
	maxKeywordQueries = 3
)

// traitTitles maps each comparable dimension to candidate job titles used
// when the dimension is high. Static data so the planner stays independently
// tunable.
var traitTitles = map[string][]string{
	traits.Leadership:        {"Project Manager", "Team Lead", "Manager"},
	traits.TechnicalAptitude: {"Software Engineer", "Developer", "Architect"},
	traits.ProblemSolving:    {"Data Analyst", "Business Analyst", "Engineer"},
	traits.Resilience:        {"Emergency Dispatcher", "Sales Manager", "Operations Manager"},
}

// environmentTitles maps environment preferences to additional queries.
var environmentTitles = map[string][]string{
	traits.EnvFastPaced: {"Startup", "Consultant", "Operations Manager"},
	traits.EnvFlexible:  {"Remote Worker", "Contractor", "Consultant"},
}

// fallbackQueries is used when a profile yields nothing concrete.
var fallbackQueries = []string{"Software Engineer", "Project Manager"}

// PlanQueries turns the accumulated profile into an ordered list of search
// queries: titles for high-valued dimensions in canonical order, then up to
// three raw keywords, then environment-conditioned titles. Duplicates are
// dropped preserving first occurrence, and the list is capped at five.
func PlanQueries(profile *traits.Profile) []string {
	if profile == nil {
		return append([]string(nil), fallbackQueries...)
	}

	var queries []string

	for _, dim := range traits.Dimensions {
		if profile.Level(dim) != traits.High {
			continue
		}
		queries = append(queries, traitTitles[dim]...)
	}

	keywords := profile.KeywordList()
	if len(keywords) > maxKeywordQueries {
		keywords = keywords[:maxKeywordQueries]
	}
	queries = append(queries, keywords...)

	queries = append(queries, environmentTitles[profile.EnvironmentPreference]...)

	queries = dedupe(queries)
	if len(queries) > maxQueries {
		queries = queries[:maxQueries]
	}

	if len(queries) == 0 {
		return append([]string(nil), fallbackQueries...)
	}

	return queries
}

func dedupe(queries []string) []string {
	seen := make(map[string]struct{}, len(queries))
	unique := make([]string, 0, len(queries))
	for _, q := range queries {
		if _, ok := seen[q]; ok {
			continue
		}
		seen[q] = struct{}{}
		unique = append(unique, q)
	}
	return unique
}
