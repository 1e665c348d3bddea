package traits

// Level is an ordinal trait value on a comparable dimension.
type Level string

const (
	Low    Level = "low"
	Medium Level = "medium"
	High   Level = "high"
)

// Rank returns the numeric position of the level for ordering comparisons.
// Unknown values rank as Medium.
func (l Level) Rank() int {
	switch l {
	case Low:
		return 1
	case High:
		return 3
	default:
		return 2
	}
}

// AtLeast reports whether l satisfies the required level.
func (l Level) AtLeast(required Level) bool {
	return l.Rank() >= required.Rank()
}

// Comparable trait dimensions shared by user profiles and job requirements.
const (
	Resilience        = "resilience"
	Leadership        = "leadership"
	TechnicalAptitude = "technical_aptitude"
	ProblemSolving    = "problem_solving"
	Teamwork          = "teamwork"
	Communication     = "communication"
)

// Categorical user-only traits. Their neutral value is "mixed".
const (
	EnvironmentPreference = "environment_preference"
	WorkStyle             = "work_style"

	Mixed = "mixed"
)

// Environment preference values produced by the oracle.
const (
	EnvFastPaced  = "fast_paced"
	EnvStructured = "structured"
	EnvFlexible   = "flexible"
)

// Dimensions lists the comparable dimensions in their canonical iteration
// order. Scoring, alignment labels and the planner all follow this order so
// results are reproducible.
var Dimensions = []string{
	Resilience,
	Leadership,
	TechnicalAptitude,
	ProblemSolving,
	Teamwork,
	Communication,
}
