// Package llm abstracts the completion services used for quiz, notes, and
// feedback generation behind a single Provider interface, with retry and
// request-logging decorators.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the completion-service abstraction consumed by the generation
// services. Implementations are safe for concurrent use.
type Provider interface {
	// Generate sends one prompt and returns the model's reply. When the
	// request carries a Schema, the provider asks for structured output and
	// validates the reply against it; otherwise Content is the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes a single completion call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Generation here is single-turn: one
	// user message in practice.
	Messages []Message

	// Schema, when set, constrains the reply to a JSON shape and enables
	// provider-side structured output plus local validation. Quiz
	// generation deliberately leaves it nil: the reply is free-form text
	// and the quiz package owns extraction.
	Schema *Schema

	// MaxTokens bounds the reply length.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON shape the reply must conform to.
type Schema struct {
	// Name identifies the schema, kebab-case (tool name for Anthropic,
	// schema name for OpenAI).
	Name string

	// Description guides the model.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's reply.
type Response struct {
	// Content is the reply body. Validated JSON when a Schema was set,
	// otherwise the raw text wrapped as a RawMessage.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks tokens for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
