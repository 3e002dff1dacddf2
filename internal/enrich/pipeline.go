// Package enrich orchestrates the feedback enrichment pipeline:
// language normalization, sentiment classification, and keyword
// categorization, in that order.
package enrich

import (
	"context"

	"suggestbox/internal/category"
	"suggestbox/internal/lang"
	"suggestbox/internal/model"
	"suggestbox/internal/sentiment"
)

// Result is the structured classification of one raw submission
type Result struct {
	// Text is the normalized (target-language) text
	Text string

	// Sentiment is the discrete polarity label, computed on Text
	Sentiment model.Sentiment

	// Category is the keyword-derived topical bucket of Text
	Category model.Category
}

// Pipeline runs the enrichment stages in order
type Pipeline struct {
	normalizer *lang.Normalizer
	sentiment  *sentiment.Classifier
	categories *category.Classifier
}

// NewPipeline creates a pipeline from its three stages
func NewPipeline(normalizer *lang.Normalizer, sentimentClassifier *sentiment.Classifier, categoryClassifier *category.Classifier) *Pipeline {
	return &Pipeline{
		normalizer: normalizer,
		sentiment:  sentimentClassifier,
		categories: categoryClassifier,
	}
}

// Enrich normalizes raw text, classifies its sentiment, and assigns a
// category. It never fails: each stage degrades gracefully on its own.
func (p *Pipeline) Enrich(ctx context.Context, raw string) Result {
	text := p.normalizer.Normalize(ctx, raw)

	return Result{
		Text:      text,
		Sentiment: p.sentiment.Classify(ctx, text),
		Category:  p.categories.Classify(text),
	}
}

// Normalize exposes just the normalization stage (questions are
// normalized but never scored or categorized).
func (p *Pipeline) Normalize(ctx context.Context, raw string) string {
	return p.normalizer.Normalize(ctx, raw)
}
