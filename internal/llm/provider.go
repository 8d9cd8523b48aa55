package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for AI provider interaction. The
// hint/question gate talks to exactly one Provider, which may itself be
// a fallback chain over several concrete providers.
type Provider interface {
	// Generate sends a prompt to the provider and returns its response.
	// The request's Schema field, when set, instructs the provider to
	// return JSON conforming to that schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// Request describes what to send to the provider.
type Request struct {
	// System sets the provider's role and constraints.
	System string

	// Messages is the conversation. Generation here is single-turn, so
	// this holds one user message.
	Messages []Message

	// Schema is the JSON Schema the response must conform to. When set,
	// providers that support native structured output use it; the
	// layered parser downstream handles providers that do not.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means
	// deterministic.
	Temperature float64
}

// Message is a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the provider.
type Schema struct {
	// Name identifies the schema, kebab-case, e.g. "geometry-question".
	Name string

	// Description tells the provider what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the provider's output.
type Response struct {
	// Content is the generated output. With a Schema this is the
	// validated JSON object; without, the raw text.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
