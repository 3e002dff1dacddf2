package llm

import (
	"context"

	"golang.org/x/time/rate"
)

// Limited wraps a Provider and paces its calls through a rate limiter,
// so a burst of submissions cannot hammer the API.
type Limited struct {
	provider Provider
	limiter  *rate.Limiter
}

// NewLimited wraps provider with the given pacing. Non-positive values
// fall back to 1 req/s with a burst of 2.
func NewLimited(provider Provider, requestsPerSecond float64, burst int) *Limited {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 1
	}
	if burst <= 0 {
		burst = 2
	}

	return &Limited{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// Name returns the wrapped provider's name
func (l *Limited) Name() string {
	return l.provider.Name()
}

// Translate waits for rate limit clearance, then delegates
func (l *Limited) Translate(ctx context.Context, text, target string) (string, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return l.provider.Translate(ctx, text, target)
}

// Polarity waits for rate limit clearance, then delegates
func (l *Limited) Polarity(ctx context.Context, text string) (float64, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return 0, err
	}
	return l.provider.Polarity(ctx, text)
}

// IsAvailable delegates without consuming rate budget
func (l *Limited) IsAvailable(ctx context.Context) bool {
	return l.provider.IsAvailable(ctx)
}
