package match

import (
	"strings"

	"github.com/spigell/career-compass/internal/jobs"
	"github.com/spigell/career-compass/internal/traits"
)

// Requirements is a job's inferred trait demand. It is derived per scoring
// call and never persisted.
type Requirements map[string]traits.Level

// requirementCues maps each comparable dimension to the substrings that mark
// it as high demand when found in a posting's title or description.
var requirementCues = map[string][]string{
	traits.Leadership:        {"lead", "manage", "team", "director", "manager", "head"},
	traits.TechnicalAptitude: {"develop", "code", "technical", "engineer", "architect", "software"},
	traits.ProblemSolving:    {"analyze", "solve", "problem", "critical", "strategic", "optimize"},
	traits.Teamwork:          {"collaborate", "team", "group", "together", "communication"},
	traits.Communication:     {"communicate", "present", "speak", "client", "stakeholder"},
	traits.Resilience:        {"pressure", "fast-paced", "emergency", "urgent", "crisis", "resilient"},
}

// ExtractRequirements derives the requirement vector from a posting's title
// and description. Purely lexical: any cue hit raises that dimension to high,
// no hit leaves it at medium. Deterministic for identical input.
func ExtractRequirements(record *jobs.Record) Requirements {
	combined := strings.ToLower(record.Title + " " + record.Description)

	req := make(Requirements, len(traits.Dimensions))
	for _, dim := range traits.Dimensions {
		req[dim] = traits.Medium
		for _, cue := range requirementCues[dim] {
			if strings.Contains(combined, cue) {
				req[dim] = traits.High
				break
			}
		}
	}

	return req
}
