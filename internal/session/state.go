package session

import (
	"time"

	"github.com/spigell/career-compass/internal/jobs"
	"github.com/spigell/career-compass/internal/match"
	"github.com/spigell/career-compass/internal/traits"
)

// Phase is the workflow position of a session.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseProfiling Phase = "profiling"
	PhaseSearching Phase = "searching"
	PhaseAnalyzing Phase = "analyzing"
	PhaseCompleted Phase = "completed"
	PhaseError     Phase = "error"
)

// allowedTransitions encodes the workflow graph. Completed and Error are
// terminal for a pass; a new response or a reset starts the next one.
var allowedTransitions = map[Phase][]Phase{
	PhaseIdle:      {PhaseProfiling},
	PhaseProfiling: {PhaseSearching, PhaseCompleted, PhaseError},
	PhaseSearching: {PhaseAnalyzing, PhaseCompleted, PhaseError},
	PhaseAnalyzing: {PhaseCompleted, PhaseError},
	PhaseCompleted: {PhaseProfiling},
	PhaseError:     {PhaseProfiling},
}

// CanTransition reports whether moving to next is a legal workflow step.
func (p Phase) CanTransition(next Phase) bool {
	for _, candidate := range allowedTransitions[p] {
		if candidate == next {
			return true
		}
	}
	return false
}

// Turn is one question/answer exchange recorded in the conversation log.
type Turn struct {
	Timestamp time.Time `json:"timestamp"`
	Question  string    `json:"question,omitempty"`
	Answer    string    `json:"answer"`
	Reasoning string    `json:"reasoning,omitempty"`
}

// State carries everything accumulated during one session pass. Reset
// replaces it wholesale.
type State struct {
	Phase   Phase
	Profile *traits.Profile
	Jobs    *jobs.Jobs
	Results []*match.Result
	Errors  []string
	Turns   []Turn
	Started time.Time
}

func newState() *State {
	return &State{
		Phase:   PhaseIdle,
		Profile: traits.NewProfile(),
		Jobs:    &jobs.Jobs{},
		Started: time.Now().UTC(),
	}
}

// Summary is the snapshot consumed by the CLI and batch reports.
type Summary struct {
	SessionID   string            `json:"session_id"`
	Phase       Phase             `json:"workflow_state"`
	Levels      map[string]string `json:"profile_traits"`
	Environment string            `json:"environment_preference"`
	WorkStyle   string            `json:"work_style"`
	Keywords    []string          `json:"keywords,omitempty"`
	JobsFound   int               `json:"jobs_found"`
	MatchCount  int               `json:"top_matches"`
	TurnCount   int               `json:"conversation_turns"`
	Errors      []string          `json:"errors,omitempty"`
}

// Report is the detailed session dump: the summary plus the ranked results
// and turn log.
type Report struct {
	Summary Summary         `json:"summary"`
	Turns   []Turn          `json:"conversation_history"`
	Matches []*match.Result `json:"match_cards"`
}
