// Package lang normalizes raw feedback into the target language before
// any downstream analysis. Normalization never fails the caller: on any
// detection or translation problem the original text is used unchanged.
package lang

import (
	"context"
	"strings"
	"time"

	"github.com/abadojack/whatlanggo"
	"go.uber.org/zap"

	"suggestbox/internal/cache"
	"suggestbox/internal/llm"
	"suggestbox/internal/model"
)

// Detector reports the dominant language of a text as an ISO 639-1 code.
// reliable is false when the verdict should not be acted on (short or
// ambiguous text).
type Detector interface {
	Detect(text string) (code string, reliable bool)
}

// whatlangDetector is the default, fully local detector
type whatlangDetector struct{}

func (whatlangDetector) Detect(text string) (string, bool) {
	info := whatlanggo.Detect(text)
	return info.Lang.Iso6391(), info.IsReliable()
}

// Normalizer detects the language of raw feedback and translates it
// into the target language when needed.
type Normalizer struct {
	target   string
	timeout  time.Duration
	detector Detector
	provider llm.Provider // nil when translation is disabled
	memo     cache.Cache  // nil when caching is disabled
	memoTTL  time.Duration
	logger   *zap.Logger
}

// New creates a normalizer. provider may be nil (translation disabled);
// memo may be nil (no memoization).
func New(cfg model.LanguageConfig, provider llm.Provider, memo cache.Cache, memoTTL time.Duration, logger *zap.Logger) *Normalizer {
	if logger == nil {
		logger = zap.NewNop()
	}

	target := cfg.Target
	if target == "" {
		target = "en"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Normalizer{
		target:   target,
		timeout:  timeout,
		detector: whatlangDetector{},
		provider: provider,
		memo:     memo,
		memoTTL:  memoTTL,
		logger:   logger,
	}
}

// Normalize returns the text in the target language. It never returns
// an error: empty input, already-target text, unreliable detection,
// a disabled provider, and any translation failure all yield the
// original text. Translation is attempted at most once per call.
func (n *Normalizer) Normalize(ctx context.Context, raw string) string {
	// Detection on empty text is undefined; short-circuit
	if strings.TrimSpace(raw) == "" {
		return raw
	}

	code, reliable := n.detector.Detect(raw)
	if !reliable || code == n.target {
		return raw
	}

	if n.provider == nil {
		n.logger.Debug("translation disabled, keeping original text",
			zap.String("detected", code))
		return raw
	}

	if n.memo != nil {
		if translated, ok := n.memo.Get(cache.Key(raw)); ok {
			return translated
		}
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	translated, err := n.provider.Translate(ctxWithTimeout, raw, n.target)
	if err != nil {
		n.logger.Warn("translation failed, keeping original text",
			zap.String("detected", code),
			zap.Error(err))
		return raw
	}

	translated = strings.TrimSpace(translated)
	if translated == "" {
		n.logger.Warn("translation returned empty text, keeping original")
		return raw
	}

	if n.memo != nil {
		n.memo.Set(cache.Key(raw), translated, n.memoTTL)
	}

	return translated
}
