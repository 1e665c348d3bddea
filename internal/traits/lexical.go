package traits

import "strings"

// lexicalCues maps each comparable dimension to substrings that mark it as
// high when found in a first-person answer. Kept as data so the fallback can
// be tuned without touching the extraction loop.
var lexicalCues = map[string][]string{
	Resilience:        {"overcome", "challenge", "difficult", "pressure"},
	Leadership:        {"lead", "manage", "team", "organize"},
	TechnicalAptitude: {"code", "build", "develop", "technical"},
	ProblemSolving:    {"solve", "analyze", "debug", "figure"},
	Teamwork:          {"team", "collaborate", "together", "group"},
	Communication:     {"present", "speak", "communicate", "explain"},
}

const lexicalReasoning = "Lexical extraction from response keywords"

// LexicalObservation derives an observation from free text using substring
// matching only. It is the deterministic fallback used when the oracle
// returns something unparseable; it never fails.
func LexicalObservation(input string) *Observation {
	lower := strings.ToLower(input)

	obs := &Observation{
		EnvironmentPreference: Mixed,
		WorkStyle:             Mixed,
		Reasoning:             lexicalReasoning,
	}

	for dim, cues := range lexicalCues {
		level := Medium
		for _, cue := range cues {
			if strings.Contains(lower, cue) {
				level = High
				break
			}
		}
		obs.setLevel(dim, level)
	}

	return obs
}

func (o *Observation) setLevel(dim string, level Level) {
	switch dim {
	case Resilience:
		o.Resilience = level
	case Leadership:
		o.Leadership = level
	case TechnicalAptitude:
		o.TechnicalAptitude = level
	case ProblemSolving:
		o.ProblemSolving = level
	case Teamwork:
		o.Teamwork = level
	case Communication:
		o.Communication = level
	}
}
