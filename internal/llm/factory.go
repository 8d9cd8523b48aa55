package llm

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/PTMAbellana/Polegion-sub002/internal/store"
)

// NewProvider builds the provider chain from configuration: every
// configured provider with credentials, in priority order, wrapped in
// the fallback decorator and the audit-logging decorator.
//
// Returns (*ErrNoCredentials) when no provider has an API key; callers
// treat that as "run without AI", never as a startup failure.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, log *logrus.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var chain []Provider
	for _, name := range cfg.Providers {
		if !cfg.hasKey(name) {
			continue
		}
		p, err := newProvider(ctx, name, cfg)
		if err != nil {
			return nil, fmt.Errorf("initializing %s provider: %w", name, err)
		}
		chain = append(chain, p)
	}

	if len(chain) == 0 {
		return nil, &ErrNoCredentials{}
	}

	// Wrap: caller → fallback → logging → base providers.
	var base Provider
	if len(chain) == 1 {
		base = chain[0]
	} else {
		base = WithFallback(chain, log)
	}

	return WithLogging(base, events, log), nil
}

func newProvider(ctx context.Context, name string, cfg Config) (Provider, error) {
	switch name {
	case "groq":
		return NewGroqProvider(cfg.Groq)
	case "gemini":
		return NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		return NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		return NewAnthropicProvider(cfg.Anthropic)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown AI provider: %q", name)
	}
}
