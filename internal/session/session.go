package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spigell/career-compass/internal/ai"
	"github.com/spigell/career-compass/internal/jobs"
	"github.com/spigell/career-compass/internal/match"
	"github.com/spigell/career-compass/internal/search"
	"github.com/spigell/career-compass/internal/traits"
	"go.uber.org/zap"
)

// Session sequences trait extraction, the search gate and match ranking
// across one conversation. It is owned by exactly one logical conversation;
// no concurrent use.
type Session struct {
	id        string
	extractor ai.Extractor
	source    jobs.Source
	ranker    *match.Ranker
	logger    *zap.Logger
	location  string
	state     *State
}

// TurnResult reports what one processed quiz response did.
type TurnResult struct {
	Status      string
	Phase       Phase
	Observation *traits.Observation
	Searched    bool
	Reasoning   string
	Message     string
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

func New(extractor ai.Extractor, source jobs.Source, location string, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Session{
		id:        uuid.NewString(),
		extractor: extractor,
		source:    source,
		ranker:    match.NewRanker(logger),
		logger:    logger,
		location:  location,
		state:     newState(),
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) Phase() Phase { return s.state.Phase }

func (s *Session) Profile() *traits.Profile { return s.state.Profile }

// ProcessResponse runs one quiz turn: extract traits, merge them into the
// profile, and trigger the search workflow once the profile carries enough
// signal. A failed turn never terminates the session; the next turn can
// still be processed.
func (s *Session) ProcessResponse(ctx context.Context, answer, question string) (*TurnResult, error) {
	s.advance(PhaseProfiling)

	obs, err := s.extract(ctx, answer)
	if err != nil {
		s.fail(fmt.Sprintf("quiz processing error: %v", err))
		return &TurnResult{
			Status:  StatusError,
			Phase:   s.state.Phase,
			Message: err.Error(),
		}, nil
	}

	s.state.Profile.Merge(obs)
	s.state.Turns = append(s.state.Turns, Turn{
		Timestamp: time.Now().UTC(),
		Question:  question,
		Answer:    answer,
		Reasoning: obs.Reasoning,
	})

	searched := false
	if search.ShouldSearch(s.state.Profile) {
		s.logger.Info("profile data sufficient, starting search workflow")
		searched = true
		if err := s.runSearchWorkflow(ctx); err != nil {
			s.fail(fmt.Sprintf("search workflow error: %v", err))
			return &TurnResult{
				Status:      StatusError,
				Phase:       s.state.Phase,
				Observation: obs,
				Searched:    true,
				Message:     err.Error(),
			}, nil
		}
	} else {
		s.logger.Debug("profile not informative enough for a search yet")
	}

	return &TurnResult{
		Status:      StatusSuccess,
		Phase:       s.state.Phase,
		Observation: obs,
		Searched:    searched,
		Reasoning:   obs.Reasoning,
	}, nil
}

// extract asks the oracle for an observation, falling back to the lexical
// extractor when the response is unusable. The fallback is a normal branch,
// never an error surfaced to the caller.
func (s *Session) extract(ctx context.Context, answer string) (*traits.Observation, error) {
	if s.extractor == nil {
		return traits.LexicalObservation(answer), nil
	}

	obs, err := s.extractor.Extract(ctx, answer, s.state.Profile)
	if err != nil {
		s.logger.Warn("oracle extraction failed, using lexical fallback", zap.Error(err))
		return traits.LexicalObservation(answer), nil
	}
	return obs, nil
}

// runSearchWorkflow plans queries, collects postings from the source,
// deduplicates them and ranks the result. Zero jobs found is a normal
// completion, not an error.
func (s *Session) runSearchWorkflow(ctx context.Context) error {
	s.advance(PhaseSearching)

	queries := search.PlanQueries(s.state.Profile)
	s.logger.Info("planned search queries", zap.Strings("queries", queries))

	keywords := s.state.Profile.KeywordList()
	found := &jobs.Jobs{}
	failures := 0
	var lastErr error

	for _, query := range queries {
		result, err := s.source.Search(ctx, query, s.location, keywords)
		if err != nil {
			failures++
			lastErr = err
			s.logger.Warn("search query failed", zap.String("query", query), zap.Error(err))
			continue
		}
		found.Append(result)
	}

	if failures == len(queries) && lastErr != nil {
		return fmt.Errorf("all %d search queries failed: %w", failures, lastErr)
	}

	dropped := found.Dedupe()
	s.logger.Info("collected job postings",
		zap.Int("unique", found.Len()),
		zap.Int("duplicates_dropped", dropped),
	)

	s.state.Jobs = found

	if found.Len() > 0 {
		s.advance(PhaseAnalyzing)
		s.state.Results = s.ranker.RankAll(found, s.state.Profile)
	}

	s.advance(PhaseCompleted)
	return nil
}

// fail transitions the session to the error phase and records the message.
// Accumulated profile data is preserved.
func (s *Session) fail(message string) {
	s.advance(PhaseError)
	s.state.Errors = append(s.state.Errors, message)
	s.logger.Error("session entered error state", zap.String("message", message))
}

// advance moves the workflow to the next phase, logging any transition the
// graph does not allow.
func (s *Session) advance(next Phase) {
	if s.state.Phase == next {
		return
	}
	if !s.state.Phase.CanTransition(next) {
		s.logger.Warn("unexpected workflow transition",
			zap.String("from", string(s.state.Phase)),
			zap.String("to", string(next)),
		)
	}
	s.state.Phase = next
}

// Jobs returns the deduplicated postings collected by the last search pass.
func (s *Session) Jobs() *jobs.Jobs {
	return s.state.Jobs
}

// TopMatches returns the first n ranked results from the current pass.
func (s *Session) TopMatches(n int) []*match.Result {
	return match.TopN(s.state.Results, n)
}

// Summary returns the snapshot consumed by display and batch reports.
func (s *Session) Summary() Summary {
	levels := make(map[string]string, len(traits.Dimensions))
	for _, dim := range traits.Dimensions {
		levels[dim] = string(s.state.Profile.Level(dim))
	}

	return Summary{
		SessionID:   s.id,
		Phase:       s.state.Phase,
		Levels:      levels,
		Environment: s.state.Profile.EnvironmentPreference,
		WorkStyle:   s.state.Profile.WorkStyle,
		Keywords:    s.state.Profile.KeywordList(),
		JobsFound:   s.state.Jobs.Len(),
		MatchCount:  len(s.state.Results),
		TurnCount:   len(s.state.Turns),
		Errors:      append([]string(nil), s.state.Errors...),
	}
}

// Report returns the detailed session dump.
func (s *Session) Report() Report {
	return Report{
		Summary: s.Summary(),
		Turns:   append([]Turn(nil), s.state.Turns...),
		Matches: append([]*match.Result(nil), s.state.Results...),
	}
}

// Reset discards all accumulated state and issues a fresh session id. The
// session is reusable immediately.
func (s *Session) Reset() {
	s.id = uuid.NewString()
	s.state = newState()
	s.logger.Info("session reset", zap.String("session_id", s.id))
}
