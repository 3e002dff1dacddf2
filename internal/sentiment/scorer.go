// Package sentiment maps continuous polarity scores onto the three
// discrete labels attached to every suggestion.
package sentiment

import (
	"context"
	"regexp"
	"strings"
)

// Scorer produces a polarity score in [-1.0, 1.0] for a piece of text.
// Negative means unfavorable, positive means favorable. Implementations
// may be network-bound and may fail.
type Scorer interface {
	Score(ctx context.Context, text string) (float64, error)
}

var wordPattern = regexp.MustCompile(`[a-zA-Z']+`)

// lexiconScale amplifies the per-word average so that a single strong
// word in a short sentence clears the ±0.1 dead zone.
const lexiconScale = 5.0

var positiveWords = map[string]bool{
	"love": true, "like": true, "great": true, "good": true,
	"excellent": true, "helpful": true, "nice": true, "happy": true,
	"awesome": true, "comfortable": true, "clean": true, "fast": true,
	"appreciate": true, "enjoy": true, "wonderful": true, "better": true,
}

var negativeWords = map[string]bool{
	"bad": true, "hate": true, "confusing": true, "broken": true,
	"slow": true, "dirty": true, "noisy": true, "poor": true,
	"terrible": true, "awful": true, "uncomfortable": true, "late": true,
	"annoying": true, "frustrating": true, "worse": true, "unfair": true,
}

// LexiconScorer is the default, fully local scorer: it counts polar
// words and normalizes by text length. Deterministic and never fails.
type LexiconScorer struct{}

// NewLexiconScorer creates the default word-list scorer
func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{}
}

// Score counts positive and negative words and returns the scaled,
// clamped per-word average.
func (s *LexiconScorer) Score(_ context.Context, text string) (float64, error) {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	if len(words) == 0 {
		return 0, nil
	}

	score := 0.0
	for _, w := range words {
		if positiveWords[w] {
			score += 1.0
		} else if negativeWords[w] {
			score -= 1.0
		}
	}

	score = score / float64(len(words)) * lexiconScale
	return clamp(score, -1.0, 1.0), nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
