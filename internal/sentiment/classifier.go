package sentiment

import (
	"context"

	"go.uber.org/zap"

	"suggestbox/internal/model"
)

// Fixed thresholds forming a dead zone around neutral. Preserved exactly
// for compatibility with previously persisted labels.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// Classifier maps a scorer's continuous polarity onto the three
// discrete sentiment labels. It never fails the caller: a scorer error
// is logged and the text defaults to Neutral.
type Classifier struct {
	scorer Scorer
	logger *zap.Logger
}

// NewClassifier creates a classifier around the given scorer
func NewClassifier(scorer Scorer, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{scorer: scorer, logger: logger}
}

// Classify scores the text and applies the fixed thresholds:
// score > 0.1 is Positive, score < -0.1 is Negative, otherwise Neutral.
func (c *Classifier) Classify(ctx context.Context, text string) model.Sentiment {
	score, err := c.scorer.Score(ctx, text)
	if err != nil {
		c.logger.Warn("sentiment scoring failed, defaulting to Neutral",
			zap.Error(err))
		return model.SentimentNeutral
	}

	switch {
	case score > positiveThreshold:
		return model.SentimentPositive
	case score < negativeThreshold:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}
