package search

import "github.com/spigell/career-compass/internal/traits"

// MinSignificantTraits is the number of non-neutral significant traits
// required before a search is worth issuing. A tuning constant with no
// deeper rationale; keywords alone are treated as sufficient signal.
const MinSignificantTraits = 2

// significantDims are the dimensions consulted by the gate.
var significantDims = []string{
	traits.Resilience,
	traits.Leadership,
	traits.TechnicalAptitude,
}

// ShouldSearch reports whether the accumulated profile is informative enough
// to justify a job search.
func ShouldSearch(profile *traits.Profile) bool {
	if profile == nil {
		return false
	}

	if profile.NonNeutralCount(significantDims...) >= MinSignificantTraits {
		return true
	}

	return len(profile.Keywords) > 0
}
