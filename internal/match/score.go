package match

import "github.com/spigell/career-compass/internal/traits"

// Score computes the normalized compatibility between the accumulated profile
// and a job's requirement vector. A dimension counts as satisfied when the
// user's level meets or exceeds the required one. An empty requirement vector
// scores 0.5; a missing profile scores 0.
func Score(profile *traits.Profile, req Requirements) float64 {
	if profile == nil || len(profile.Levels) == 0 {
		return 0
	}
	if len(req) == 0 {
		return 0.5
	}

	satisfied := 0
	for dim, required := range req {
		if profile.Level(dim).AtLeast(required) {
			satisfied++
		}
	}

	score := float64(satisfied) / float64(len(req))
	if score > 1 {
		score = 1
	}
	return score
}
