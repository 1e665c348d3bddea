package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spigell/career-compass/internal/jobs"
	"github.com/spigell/career-compass/internal/traits"
	"go.uber.org/zap"
)

// Recommendation bands and their lower score bounds. The cut points are
// tuning constants; keep them here rather than inline so they can be adjusted
// without touching the banding logic.
const (
	BandStrongMatch = "Strong Match"
	BandGoodFit     = "Good Fit"
	BandConsider    = "Consider"
	BandNotAligned  = "Not Aligned"

	StrongMatchThreshold = 0.8
	GoodFitThreshold     = 0.6
	ConsiderThreshold    = 0.4
)

// Market availability bands by applicant count.
const (
	MarketHighAvailability  = "High Availability (Few Applicants)"
	MarketModerate          = "Moderate Availability"
	MarketCompetitive       = "Competitive Market"
	MarketHighlyCompetitive = "Highly Competitive (Many Applicants)"

	fewApplicantsLimit      = 30
	moderateApplicantsLimit = 100
	competitiveLimit        = 300
)

const (
	maxMatchedLabels   = 5
	maxUnmatchedLabels = 3
	maxStrengths       = 3
	maxGrowthAreas     = 2

	fallbackStrength   = "Potential for role growth"
	fallbackGrowthArea = "Continue skill development in technical areas"
)

// Result is the immutable outcome of analyzing one posting against the
// accumulated profile.
type Result struct {
	JobTitle           string   `json:"job_title"`
	Company            string   `json:"company"`
	Location           string   `json:"location,omitempty"`
	Link               string   `json:"link,omitempty"`
	SalaryRange        string   `json:"salary_range,omitempty"`
	Score              float64  `json:"compatibility_score"`
	Percentage         int      `json:"match_percentage"`
	MatchedTraits      []string `json:"matched_traits"`
	UnmatchedTraits    []string `json:"unmatched_traits"`
	Recommendation     string   `json:"recommendation"`
	MarketAvailability string   `json:"market_availability"`
	KeyStrengths       []string `json:"key_strengths"`
	GrowthAreas        []string `json:"growth_areas"`
	Reasoning          string   `json:"reasoning"`
}

// Ranker analyzes postings against a profile and produces a ranked list.
type Ranker struct {
	logger *zap.Logger
}

func NewRanker(logger *zap.Logger) *Ranker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ranker{logger: logger}
}

// Analyze builds the full match result for one posting.
func (r *Ranker) Analyze(record *jobs.Record, profile *traits.Profile) (*Result, error) {
	if record == nil {
		return nil, fmt.Errorf("job record is required")
	}
	if profile == nil {
		return nil, fmt.Errorf("profile is required")
	}

	req := ExtractRequirements(record)
	score := Score(profile, req)
	matched, unmatched := alignTraits(profile, req)

	result := &Result{
		JobTitle:           record.Title,
		Company:            record.Company,
		Location:           record.Location,
		Link:               record.Link,
		SalaryRange:        record.SalaryRange,
		Score:              score,
		Percentage:         int(score * 100),
		MatchedTraits:      matched,
		UnmatchedTraits:    unmatched,
		Recommendation:     Recommendation(score),
		MarketAvailability: MarketAvailability(record.ApplicantCount()),
		KeyStrengths:       strengths(matched),
		GrowthAreas:        growthAreas(unmatched),
		Reasoning:          buildReasoning(record, profile, score),
	}

	return result, nil
}

// RankAll analyzes every posting and returns results sorted by score
// descending. Equal scores keep the input order. A posting that fails
// analysis is logged and skipped, never aborting the batch.
func (r *Ranker) RankAll(list *jobs.Jobs, profile *traits.Profile) []*Result {
	if list == nil {
		return nil
	}

	results := make([]*Result, 0, list.Len())
	for _, record := range list.Items {
		result, err := r.Analyze(record, profile)
		if err != nil {
			title := ""
			if record != nil {
				title = record.Title
			}
			r.logger.Warn("skipping job analysis",
				zap.String("job_title", title),
				zap.Error(err),
			)
			continue
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	r.logger.Info("ranked jobs", zap.Int("count", len(results)))

	return results
}

// TopN returns the first n ranked results.
func TopN(results []*Result, n int) []*Result {
	if n <= 0 || n >= len(results) {
		return results
	}
	return results[:n]
}

// Recommendation maps a score to its band. Bounds are closed on the lower
// side: exactly 0.6 is a Good Fit.
func Recommendation(score float64) string {
	switch {
	case score >= StrongMatchThreshold:
		return BandStrongMatch
	case score >= GoodFitThreshold:
		return BandGoodFit
	case score >= ConsiderThreshold:
		return BandConsider
	default:
		return BandNotAligned
	}
}

// MarketAvailability classifies how contested a posting is.
func MarketAvailability(applicants int) string {
	switch {
	case applicants < fewApplicantsLimit:
		return MarketHighAvailability
	case applicants < moderateApplicantsLimit:
		return MarketModerate
	case applicants < competitiveLimit:
		return MarketCompetitive
	default:
		return MarketHighlyCompetitive
	}
}

// alignTraits labels each required dimension by how the user's level compares
// to the demand, in canonical dimension order.
func alignTraits(profile *traits.Profile, req Requirements) (matched, unmatched []string) {
	for _, dim := range traits.Dimensions {
		required, ok := req[dim]
		if !ok {
			continue
		}

		userRank := profile.Level(dim).Rank()
		jobRank := required.Rank()
		label := titleize(dim)

		switch {
		case userRank >= jobRank:
			matched = append(matched, "Strong "+label)
		case userRank == jobRank-1:
			matched = append(matched, "Good "+label)
		default:
			unmatched = append(unmatched, "Developing "+label)
		}
	}

	if len(matched) > maxMatchedLabels {
		matched = matched[:maxMatchedLabels]
	}
	if len(unmatched) > maxUnmatchedLabels {
		unmatched = unmatched[:maxUnmatchedLabels]
	}

	return matched, unmatched
}

func strengths(matched []string) []string {
	if len(matched) == 0 {
		return []string{fallbackStrength}
	}
	if len(matched) > maxStrengths {
		matched = matched[:maxStrengths]
	}
	return matched
}

func growthAreas(unmatched []string) []string {
	if len(unmatched) == 0 {
		return []string{fallbackGrowthArea}
	}
	if len(unmatched) > maxGrowthAreas {
		unmatched = unmatched[:maxGrowthAreas]
	}
	areas := make([]string, 0, len(unmatched))
	for _, trait := range unmatched {
		areas = append(areas, "Develop "+trait)
	}
	return areas
}

// buildReasoning produces the short narrative attached to a result: a score
// header plus up to two templated observations conditioned on trait and
// description co-occurrence, with a generic sentence when none fire.
func buildReasoning(record *jobs.Record, profile *traits.Profile, score float64) string {
	parts := []string{fmt.Sprintf("%d%% Match - %s", int(score*100), Recommendation(score))}

	description := strings.ToLower(record.Description)
	title := strings.ToLower(record.Title)

	if profile.Level(traits.ProblemSolving) == traits.High &&
		(strings.Contains(description, "problem") || strings.Contains(description, "analyze")) {
		parts = append(parts, "Your strong problem-solving skills align well with this role's analytical demands.")
	}

	if profile.Level(traits.Resilience) == traits.High &&
		(strings.Contains(description, "fast-paced") || strings.Contains(description, "pressure")) {
		parts = append(parts, "This fast-paced environment matches your ability to thrive under pressure.")
	}

	// At most two specific observations per result.
	if profile.Level(traits.Leadership) == traits.High && len(parts) < 3 {
		for _, cue := range []string{"manager", "lead", "director"} {
			if strings.Contains(title, cue) {
				parts = append(parts, "Your leadership capabilities are well-suited for this management track.")
				break
			}
		}
	}

	if len(parts) == 1 {
		parts = append(parts, fmt.Sprintf(
			"The overall skill profile and work style preferences align with what %s is looking for in this %s position.",
			record.Company, record.Title,
		))
	}

	return strings.Join(parts, " ")
}

func titleize(dim string) string {
	words := strings.Split(dim, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
