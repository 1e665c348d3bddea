package ai

import (
	"context"

	"github.com/spigell/career-compass/internal/traits"
)

// Extractor turns a free-text quiz answer into a structured trait
// observation. The current accumulated profile is passed for context so the
// oracle can reason about what is already known. A returned error means the
// oracle's output was unusable; callers are expected to fall back to the
// lexical extractor instead of failing the turn.
type Extractor interface {
	Extract(ctx context.Context, answer string, current *traits.Profile) (*traits.Observation, error)
}
