package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// FallbackProvider tries each underlying provider in fixed priority
// order, with failure handling isolated per provider. A single attempt
// is made per provider per call; there is no retry loop. The first
// success wins, and only when every provider fails does the chain
// return an error.
type FallbackProvider struct {
	providers []Provider
	log       *logrus.Logger
}

// WithFallback builds a fallback chain over the given providers.
func WithFallback(providers []Provider, log *logrus.Logger) *FallbackProvider {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &FallbackProvider{providers: providers, log: log}
}

func (f *FallbackProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	for i, p := range f.providers {
		resp, err := p.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		// A cancelled caller stops the whole chain.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}

		if i < len(f.providers)-1 {
			f.log.WithError(err).WithField("model", p.ModelID()).
				Warn("provider failed, falling back to next in chain")
		}
	}
	return nil, fmt.Errorf("all providers failed: %w", lastErr)
}

// ModelID reports the primary provider's model.
func (f *FallbackProvider) ModelID() string {
	if len(f.providers) == 0 {
		return "none"
	}
	return f.providers[0].ModelID()
}
