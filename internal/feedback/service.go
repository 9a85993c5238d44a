// Package feedback turns a learner's stated mood into one short supportive
// message.
package feedback

import (
	"context"
	"fmt"
	"strings"

	"studyforge/internal/llm"
)

const systemPrompt = `You are a warm, practical study coach. A learner tells you how they feel about their studies; you reply with a single short paragraph of genuine encouragement. No lists, no headers, no emoji.`

// Config tunes the generation request.
type Config struct {
	MaxTokens   int
	Temperature float64
}

func DefaultConfig() Config {
	return Config{
		MaxTokens:   300,
		Temperature: 0.8,
	}
}

// Service generates encouragement messages.
type Service struct {
	provider llm.Provider
	cfg      Config
}

func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Encourage produces one supportive message for the given emotion and its
// stated reason. Reason may be empty.
func (s *Service) Encourage(ctx context.Context, emotion, reason string) (string, error) {
	emotion = strings.TrimSpace(emotion)
	if emotion == "" {
		return "", fmt.Errorf("emotion is required")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The learner feels: %s\n", emotion)
	if reason = strings.TrimSpace(reason); reason != "" {
		fmt.Fprintf(&b, "Because: %s\n", reason)
	}
	b.WriteString("\nWrite one short paragraph of encouragement that speaks to this directly.")

	resp, err := s.provider.Generate(llm.WithPurpose(ctx, "feedback"), llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("feedback generation: %w", err)
	}

	msg := strings.TrimSpace(string(resp.Content))
	if msg == "" {
		return "", &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("empty feedback reply")}
	}
	return msg, nil
}
