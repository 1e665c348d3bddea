package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/spigell/career-compass/internal/logger"
	"github.com/spigell/career-compass/internal/traits"
	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// Extractor asks Gemini to turn a quiz answer into a trait observation.
type Extractor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewExtractor(generator contentGenerator, log *zap.Logger, maxLogLength int) *Extractor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Extractor{
		generator: generator,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

// Extract sends the reasoning prompt to Gemini and parses the structured
// observation out of the response. Any parse failure is returned as an error;
// the caller decides whether to fall back to lexical extraction.
func (e *Extractor) Extract(ctx context.Context, answer string, current *traits.Profile) (*traits.Observation, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, fmt.Errorf("answer is required")
	}

	prompt, err := buildPrompt(answer, current)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("gemini trait extraction request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, e.maxLogLen)),
	)

	raw, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("gemini trait extraction response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, e.maxLogLen)),
	)

	return parseObservation(raw)
}

func buildPrompt(answer string, current *traits.Profile) (string, error) {
	profileView := map[string]any{
		"environment_preference": traits.Mixed,
		"work_style":             traits.Mixed,
		"keywords":               []string{},
	}
	for _, dim := range traits.Dimensions {
		profileView[dim] = string(traits.Medium)
	}

	if current != nil {
		for _, dim := range traits.Dimensions {
			profileView[dim] = string(current.Level(dim))
		}
		profileView["environment_preference"] = current.EnvironmentPreference
		profileView["work_style"] = current.WorkStyle
		if keywords := current.KeywordList(); keywords != nil {
			profileView["keywords"] = keywords
		}
	}

	profileJSON, err := json.MarshalIndent(profileView, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal profile context: %w", err)
	}

	prompt := strings.ReplaceAll(promptTemplate, "{{PROFILE_JSON}}", string(profileJSON))
	prompt = strings.ReplaceAll(prompt, "{{ANSWER}}", answer)
	return prompt, nil
}

func parseObservation(raw string) (*traits.Observation, error) {
	cleaned := extractJSON(raw)

	var obs traits.Observation
	if err := json.Unmarshal([]byte(cleaned), &obs); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	return &obs, nil
}

// extractJSON strips markdown code fences the model sometimes wraps its
// output in.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
