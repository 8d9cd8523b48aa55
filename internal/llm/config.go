package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all provider configuration.
type Config struct {
	// Providers lists provider names in fallback priority order. The
	// first provider with valid credentials is tried first; on failure
	// the next one is attempted with isolated error handling.
	// Values: "groq", "gemini", "openai", "anthropic", "mock"
	Providers []string

	Groq      GroqConfig
	Gemini    GeminiConfig
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig

	// Timeout is the maximum duration for a single provider request.
	// Default: 30s.
	Timeout time.Duration
}

// GroqConfig holds Groq-specific configuration. Groq exposes an
// OpenAI-compatible API, so only the base URL differs.
type GroqConfig struct {
	APIKey  string
	Model   string // Default: "llama-3.3-70b-versatile"
	BaseURL string // Default: "https://api.groq.com/openai/v1"
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional override for OpenAI-compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// DefaultConfig returns a Config with the production fallback order and
// default models.
func DefaultConfig() Config {
	return Config{
		Providers: []string{"groq", "gemini"},
		Groq: GroqConfig{
			Model: "llama-3.3-70b-versatile",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling
// back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("POLEGION_AI_PROVIDERS"); p != "" {
		cfg.Providers = splitList(p)
	}

	if k := os.Getenv("GROQ_API_KEY"); k != "" {
		cfg.Groq.APIKey = k
	}
	if m := os.Getenv("POLEGION_GROQ_MODEL"); m != "" {
		cfg.Groq.Model = m
	}

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("POLEGION_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("POLEGION_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}

	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("POLEGION_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	return cfg
}

// HasCredentials reports whether at least one configured provider has
// an API key. Absence of credentials is not an error: the gate degrades
// to rule-based responses.
func (c Config) HasCredentials() bool {
	for _, name := range c.Providers {
		if c.hasKey(name) {
			return true
		}
	}
	return false
}

func (c Config) hasKey(name string) bool {
	switch name {
	case "groq":
		return c.Groq.APIKey != ""
	case "gemini":
		return c.Gemini.APIKey != ""
	case "openai":
		return c.OpenAI.APIKey != ""
	case "anthropic":
		return c.Anthropic.APIKey != ""
	case "mock":
		return true
	}
	return false
}

// Validate checks that every configured provider name is known. Missing
// API keys are not validation errors.
func (c Config) Validate() error {
	if len(c.Providers) == 0 {
		return fmt.Errorf("at least one provider must be configured")
	}
	for _, name := range c.Providers {
		switch name {
		case "groq", "gemini", "openai", "anthropic", "mock":
		default:
			return fmt.Errorf("unknown AI provider: %q", name)
		}
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
