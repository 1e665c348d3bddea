package traits

import (
	"sort"
	"strings"
)

// Profile is the accumulated trait picture for one session. Every comparable
// dimension is always present, defaulted to Medium at construction. Keywords
// keep set semantics.
type Profile struct {
	Levels                map[string]Level
	EnvironmentPreference string
	WorkStyle             string
	Keywords              map[string]struct{}
	Reasoning             []string
}

// NewProfile returns a profile with all comparable dimensions at Medium and
// both categorical traits at their neutral value.
func NewProfile() *Profile {
	levels := make(map[string]Level, len(Dimensions))
	for _, dim := range Dimensions {
		levels[dim] = Medium
	}

	return &Profile{
		Levels:                levels,
		EnvironmentPreference: Mixed,
		WorkStyle:             Mixed,
		Keywords:              make(map[string]struct{}),
	}
}

// Level returns the accumulated level for a dimension, defaulting to Medium
// for anything outside the known vocabulary.
func (p *Profile) Level(dim string) Level {
	if p == nil || p.Levels == nil {
		return Medium
	}
	if level, ok := p.Levels[dim]; ok {
		return level
	}
	return Medium
}

// KeywordList returns the keyword set sorted for stable display and query
// planning.
func (p *Profile) KeywordList() []string {
	if p == nil || len(p.Keywords) == 0 {
		return nil
	}
	list := make([]string, 0, len(p.Keywords))
	for kw := range p.Keywords {
		list = append(list, kw)
	}
	sort.Strings(list)
	return list
}

// NonNeutralCount reports how many of the given dimensions hold a value other
// than Medium.
func (p *Profile) NonNeutralCount(dims ...string) int {
	count := 0
	for _, dim := range dims {
		if p.Level(dim) != Medium {
			count++
		}
	}
	return count
}

// Observation is one structured trait extraction, produced by the oracle or
// the lexical fallback. Zero values are treated as neutral during merge.
type Observation struct {
	Resilience            Level    `json:"resilience" mapstructure:"resilience"`
	Leadership            Level    `json:"leadership" mapstructure:"leadership"`
	TechnicalAptitude     Level    `json:"technical_aptitude" mapstructure:"technical_aptitude"`
	ProblemSolving        Level    `json:"problem_solving" mapstructure:"problem_solving"`
	Teamwork              Level    `json:"teamwork" mapstructure:"teamwork"`
	Communication         Level    `json:"communication" mapstructure:"communication"`
	EnvironmentPreference string   `json:"environment_preference" mapstructure:"environment_preference"`
	WorkStyle             string   `json:"work_style" mapstructure:"work_style"`
	Keywords              []string `json:"extracted_keywords" mapstructure:"extracted_keywords"`
	Reasoning             string   `json:"reasoning" mapstructure:"reasoning"`
}

// Level returns the observed level for a comparable dimension.
func (o *Observation) Level(dim string) Level {
	switch dim {
	case Resilience:
		return o.Resilience
	case Leadership:
		return o.Leadership
	case TechnicalAptitude:
		return o.TechnicalAptitude
	case ProblemSolving:
		return o.ProblemSolving
	case Teamwork:
		return o.Teamwork
	case Communication:
		return o.Communication
	default:
		return Medium
	}
}

// Merge folds an observation into the profile. Non-neutral observed levels
// overwrite the accumulated value; a Medium observation never downgrades an
// established low or high. Categorical traits follow the same rule with
// Mixed as neutral. Keywords are unioned.
func (p *Profile) Merge(obs *Observation) {
	if obs == nil {
		return
	}

	for _, dim := range Dimensions {
		observed := normalizeLevel(obs.Level(dim))
		if observed != Medium {
			p.Levels[dim] = observed
		}
	}

	if env := normalizeValue(obs.EnvironmentPreference); env != "" && env != Mixed {
		p.EnvironmentPreference = env
	}
	if style := normalizeValue(obs.WorkStyle); style != "" && style != Mixed {
		p.WorkStyle = style
	}

	for _, kw := range obs.Keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		p.Keywords[kw] = struct{}{}
	}

	if reasoning := strings.TrimSpace(obs.Reasoning); reasoning != "" {
		p.Reasoning = append(p.Reasoning, reasoning)
	}
}

// normalizeLevel maps unknown or empty values to the neutral default so a
// sloppy oracle response cannot corrupt the profile.
func normalizeLevel(l Level) Level {
	switch Level(normalizeValue(string(l))) {
	case Low:
		return Low
	case High:
		return High
	default:
		return Medium
	}
}

func normalizeValue(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
