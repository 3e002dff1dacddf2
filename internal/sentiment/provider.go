package sentiment

import (
	"context"

	"suggestbox/internal/llm"
)

// ProviderScorer scores polarity through an LLM provider
type ProviderScorer struct {
	provider llm.Provider
}

// NewProviderScorer wraps an LLM provider as a Scorer
func NewProviderScorer(provider llm.Provider) *ProviderScorer {
	return &ProviderScorer{provider: provider}
}

// Score delegates to the provider's polarity endpoint
func (s *ProviderScorer) Score(ctx context.Context, text string) (float64, error) {
	return s.provider.Polarity(ctx, text)
}
