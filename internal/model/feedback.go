package model

import "fmt"

// Sentiment is the discrete polarity label attached to every suggestion
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

// ParseSentiment validates a persisted sentiment value during restore
func ParseSentiment(s string) (Sentiment, error) {
	switch Sentiment(s) {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return Sentiment(s), nil
	default:
		return "", fmt.Errorf("unknown sentiment %q", s)
	}
}

// Category is the topical bucket a suggestion is assigned to
type Category string

const (
	CategoryFacility    Category = "Facility"
	CategoryWorkProcess Category = "Work Process"
	CategoryBenefits    Category = "Benefits"
	CategoryOther       Category = "Other"
)

// Categories returns all categories in their fixed priority order.
// The order is significant: classification tie-breaks, summary rendering
// and menu numbering all depend on it.
func Categories() []Category {
	return []Category{
		CategoryFacility,
		CategoryWorkProcess,
		CategoryBenefits,
		CategoryOther,
	}
}

// Suggestion is a single piece of anonymous feedback after enrichment.
// Immutable once created; owned by the store.
type Suggestion struct {
	Text      string    `json:"text"`      // English, post-normalization
	Sentiment Sentiment `json:"sentiment"` // computed once at submission, never recomputed
}

// Question is a normalized anonymous question with its answers in
// insertion order. Questions are unique by exact text equality.
type Question struct {
	Text    string   `json:"text"`
	Answers []string `json:"answers,omitempty"`
}
