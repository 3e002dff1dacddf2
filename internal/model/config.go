package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds the complete suggestbox configuration
type Config struct {
	Storage  StorageConfig  `yaml:"storage" mapstructure:"storage"`
	Language LanguageConfig `yaml:"language" mapstructure:"language"`
	LLM      LLMConfig      `yaml:"llm" mapstructure:"llm"`
	Cache    CacheConfig    `yaml:"cache" mapstructure:"cache"`
	Admin    AdminConfig    `yaml:"admin" mapstructure:"admin"`
}

// StorageConfig controls where the durable logs live
type StorageConfig struct {
	// Dir holds suggestions.log and questions.log
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// LanguageConfig controls the normalization step
type LanguageConfig struct {
	// Target is the ISO 639-1 code all feedback is normalized into
	Target string `yaml:"target" mapstructure:"target"`

	// Timeout bounds a single translation call; on expiry the original
	// text is used unchanged
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// LLMConfig holds LLM provider configuration for the translation and
// sentiment-scoring collaborators
type LLMConfig struct {
	// Provider name: "openai", "anthropic", "ollama", "" (disabled)
	Provider string `yaml:"provider" mapstructure:"provider"`

	// Model name (provider-specific)
	Model string `yaml:"model" mapstructure:"model"`

	// APIKey is never written to the config file; it is read from
	// OPENAI_API_KEY / ANTHROPIC_API_KEY at startup
	APIKey string `yaml:"-" mapstructure:"-"`

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string `yaml:"base_url,omitempty" mapstructure:"base_url"`

	// Timeout for a single API request, in seconds
	Timeout int `yaml:"timeout" mapstructure:"timeout"`

	// MaxTokens for response generation
	MaxTokens int `yaml:"max_tokens" mapstructure:"max_tokens"`

	// RequestsPerSecond paces API calls
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`

	// Burst for the rate limiter
	Burst int `yaml:"burst" mapstructure:"burst"`
}

// CacheConfig controls the translation memo cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// AdminConfig gates the admin menu
type AdminConfig struct {
	Password string `yaml:"password" mapstructure:"password"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	dir := ".suggestbox"
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".suggestbox")
	}

	return &Config{
		Storage: StorageConfig{
			Dir: dir,
		},
		Language: LanguageConfig{
			Target:  "en",
			Timeout: 5 * time.Second,
		},
		LLM: LLMConfig{
			Provider:          "", // Disabled by default
			Model:             "",
			Timeout:           30,
			MaxTokens:         256,
			RequestsPerSecond: 1,
			Burst:             2,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     time.Hour,
		},
		Admin: AdminConfig{
			Password: "admin123",
		},
	}
}
