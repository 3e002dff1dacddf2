package llm

import (
	"fmt"
	"strings"
)

// NewProvider creates a new LLM provider based on configuration. An
// empty provider name returns (nil, nil): translation and LLM scoring
// are disabled and the callers fall back to local behavior.
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	var (
		p   Provider
		err error
	)

	switch provider {
	case "openai":
		p, err = NewOpenAIProvider(config)

	case "anthropic", "claude":
		p, err = NewAnthropicProvider(config)

	case "ollama":
		p, err = NewOllamaProvider(config)

	case "":
		// No provider configured - return nil (LLM disabled)
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, anthropic, ollama)", config.Provider)
	}

	if err != nil {
		return nil, err
	}

	return NewLimited(p, config.RequestsPerSecond, config.Burst), nil
}
