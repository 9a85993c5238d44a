// Package notes distills a document into structured study notes.
package notes

import (
	"context"
	"encoding/json"
	"fmt"

	"studyforge/internal/llm"
)

// MinContentLength matches the quiz generation gate: anything shorter has
// too little substance to summarize.
const MinContentLength = 100

const notesSystemPrompt = `You are a study assistant. You read course material and distill it into notes a learner can revise from. You are factual and concise; you never invent content that is not in the material.`

// StudyNotes is the structured output of one generation.
type StudyNotes struct {
	Summary           string   `json:"summary"`
	KeyConcepts       []string `json:"key_concepts"`
	VisualSuggestions []string `json:"visual_suggestions"`
	NotableInsights   []string `json:"notable_insights"`
}

// Config tunes the generation request.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard note settings. Lower temperature than
// quiz generation; notes should be stable, not varied.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.3,
	}
}

// ErrContentTooShort indicates the source text is below the minimum.
type ErrContentTooShort struct {
	Length int
}

func (e *ErrContentTooShort) Error() string {
	return fmt.Sprintf("content too short for notes: %d chars, need %d", e.Length, MinContentLength)
}

// Service generates study notes through a completion provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a notes service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate produces notes for one document. The reply is schema-validated
// by the provider layer before it reaches the decode here.
func (s *Service) Generate(ctx context.Context, content string) (*StudyNotes, error) {
	if len(content) < MinContentLength {
		return nil, &ErrContentTooShort{Length: len(content)}
	}

	resp, err := s.provider.Generate(llm.WithPurpose(ctx, "notes"), llm.Request{
		System: notesSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildNotesUserMessage(content)},
		},
		Schema:      NotesSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("notes generation: %w", err)
	}

	var out StudyNotes
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse notes response: %w", err)
	}
	return &out, nil
}

func buildNotesUserMessage(content string) string {
	return `Create study notes from the material below.

Instructions:
1. Summarize the material in 3-5 sentences.
2. List the key concepts a learner must retain, one short phrase each.
3. Suggest diagrams or charts that would help a visual learner.
4. Call out notable insights: non-obvious takeaways or connections.

Material:
` + content
}
