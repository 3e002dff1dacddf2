package llm

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"suggestbox/internal/model"
)

// Provider defines the interface for LLM providers. Providers back the
// two network collaborators of the enrichment pipeline: translation
// into the target language and sentiment polarity scoring.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Translate produces a best-effort translation of text into the
	// target language (ISO 639-1 code)
	Translate(ctx context.Context, text, target string) (string, error)

	// Polarity scores the sentiment of text in [-1.0, 1.0]
	Polarity(ctx context.Context, text string) (float64, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// RequestsPerSecond paces API calls (see Limited)
	RequestsPerSecond float64

	// Burst for the rate limiter
	Burst int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:          "", // Disabled by default
		Model:             "",
		Timeout:           30,
		MaxTokens:         256,
		RequestsPerSecond: 1,
		Burst:             2,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(modelConfig model.LLMConfig) Config {
	return Config{
		Provider:          modelConfig.Provider,
		Model:             modelConfig.Model,
		APIKey:            modelConfig.APIKey,
		BaseURL:           modelConfig.BaseURL,
		Timeout:           modelConfig.Timeout,
		MaxTokens:         modelConfig.MaxTokens,
		RequestsPerSecond: modelConfig.RequestsPerSecond,
		Burst:             modelConfig.Burst,
	}
}

const translateSystemPrompt = "You are a translation engine. Reply with only the translated text, no commentary, no quotes."

const polaritySystemPrompt = "You are a sentiment rating engine. Reply with only a single decimal number between -1.0 (most negative) and 1.0 (most positive), no commentary."

// translatePrompt builds the user prompt for a translation request
func translatePrompt(text, target string) string {
	return fmt.Sprintf("Translate the following text into %s:\n\n%s", languageName(target), text)
}

// polarityPrompt builds the user prompt for a polarity request
func polarityPrompt(text string) string {
	return fmt.Sprintf("Rate the sentiment polarity of the following text:\n\n%s", text)
}

// languageName maps common ISO 639-1 codes to names for prompts.
// Unknown codes pass through so the model still gets a usable hint.
func languageName(code string) string {
	names := map[string]string{
		"en": "English",
		"es": "Spanish",
		"fr": "French",
		"de": "German",
		"it": "Italian",
		"pt": "Portuguese",
		"ru": "Russian",
		"zh": "Chinese",
		"ja": "Japanese",
		"ko": "Korean",
		"ar": "Arabic",
		"hi": "Hindi",
	}
	if name, ok := names[strings.ToLower(code)]; ok {
		return name
	}
	return code
}

// parsePolarity extracts a polarity score from a model reply. Replies
// occasionally carry trailing punctuation or extra words; the first
// parseable token wins. Scores are clamped to [-1, 1].
func parsePolarity(reply string) (float64, error) {
	fields := strings.Fields(strings.TrimSpace(reply))
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty polarity reply")
	}

	for _, field := range fields {
		token := strings.Trim(field, ".,;:!?\"'")
		score, err := strconv.ParseFloat(token, 64)
		if err != nil {
			continue
		}
		if score > 1.0 {
			score = 1.0
		}
		if score < -1.0 {
			score = -1.0
		}
		return score, nil
	}

	return 0, fmt.Errorf("no polarity score in reply %q", reply)
}
