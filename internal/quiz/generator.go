package quiz

import (
	"context"

	"studyforge/internal/llm"
)

const (
	// MinContentLength is the smallest source text worth sending to the
	// provider.
	MinContentLength = 100

	// MinQuestions and MaxQuestions bound the accepted batch size.
	MinQuestions = 5
	MaxQuestions = 7
)

// Config tunes the generation request.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard generation settings. Temperature sits
// above zero so repeated runs over the same document vary the questions.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
	}
}

// Generator produces a validated question batch from document text.
type Generator interface {
	Generate(ctx context.Context, content string, tier Tier) ([]Question, error)
}

// LLMGenerator generates questions through a completion provider. The
// request deliberately carries no response schema: quiz replies arrive as
// free-form text and go through array extraction and per-question
// validation, which catches more failure modes than schema enforcement
// alone and keeps the repair step in our hands.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// NewGenerator creates a generator backed by the given provider.
func NewGenerator(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate runs the full pipeline: content gate, provider call, array
// extraction, cardinality check, then validation with repair. The batch is
// all-or-nothing; the first unrepairable candidate rejects the whole reply.
func (g *LLMGenerator) Generate(ctx context.Context, content string, tier Tier) ([]Question, error) {
	if len(content) < MinContentLength {
		return nil, &ErrInsufficientContent{Length: len(content), Min: MinContentLength}
	}
	if !knownTiers[tier] {
		tier = TierMedium
	}

	resp, err := g.provider.Generate(llm.WithPurpose(ctx, "quiz"), llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPrompt(content, tier)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, err
	}

	cands, err := parseCandidates(string(resp.Content))
	if err != nil {
		return nil, err
	}
	if len(cands) < MinQuestions || len(cands) > MaxQuestions {
		return nil, &ErrWrongCardinality{Count: len(cands)}
	}

	out := make([]Question, 0, len(cands))
	for i, c := range cands {
		q, err := validateCandidate(i, c)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}
