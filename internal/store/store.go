// Package store owns the authoritative in-memory feedback state and its
// durable persistence: two append-only logs replayed in full on startup.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"suggestbox/internal/category"
	"suggestbox/internal/enrich"
	"suggestbox/internal/model"
)

const (
	suggestionsFile = "suggestions.log"
	questionsFile   = "questions.log"
)

// ErrDuplicateQuestion is returned when a submitted question already
// exists. It is an expected outcome, not a failure.
var ErrDuplicateQuestion = errors.New("question already exists")

// ErrUnknownQuestion is returned when an answer targets a question the
// store has never seen.
var ErrUnknownQuestion = errors.New("unknown question")

// Store holds all feedback in memory and mirrors every mutation to the
// durable logs. Construct once at startup, call Restore, then hand it
// to the menu layer.
type Store struct {
	dir        string
	pipeline   *enrich.Pipeline
	categories *category.Classifier
	logger     *zap.Logger

	suggestions []model.Suggestion
	buckets     map[model.Category][]model.Suggestion
	questions   map[string][]string
	order       []string // question texts in insertion order
}

// New creates an empty store rooted at dir. The directory is created on
// first append.
func New(dir string, pipeline *enrich.Pipeline, categoryClassifier *category.Classifier, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Store{
		dir:        dir,
		pipeline:   pipeline,
		categories: categoryClassifier,
		logger:     logger,
		buckets:    make(map[model.Category][]model.Suggestion),
		questions:  make(map[string][]string),
	}
}

// SubmitSuggestion enriches raw text and appends the resulting
// suggestion to memory, its category bucket, and the durable log.
// Duplicate suggestions are allowed and stored independently.
func (s *Store) SubmitSuggestion(ctx context.Context, raw string) (enrich.Result, error) {
	result := s.pipeline.Enrich(ctx, raw)

	suggestion := model.Suggestion{
		Text:      result.Text,
		Sentiment: result.Sentiment,
	}

	if err := s.appendSuggestionRecord(suggestion); err != nil {
		return enrich.Result{}, fmt.Errorf("persist suggestion: %w", err)
	}

	s.suggestions = append(s.suggestions, suggestion)
	s.buckets[result.Category] = append(s.buckets[result.Category], suggestion)

	return result, nil
}

// SubmitQuestion normalizes raw text and stores it as a new question
// with no answers. Returns ErrDuplicateQuestion without mutation when
// an equal normalized question already exists. The normalized text is
// returned for display.
func (s *Store) SubmitQuestion(ctx context.Context, raw string) (string, error) {
	text := s.pipeline.Normalize(ctx, raw)

	if _, exists := s.questions[text]; exists {
		return text, ErrDuplicateQuestion
	}

	if err := s.appendQuestionRecord(text, nil); err != nil {
		return "", fmt.Errorf("persist question: %w", err)
	}

	s.questions[text] = []string{}
	s.order = append(s.order, text)

	return text, nil
}

// AddAnswer appends an answer to an existing question, in memory and in
// the durable log. Answer order is insertion order.
func (s *Store) AddAnswer(question, answer string) error {
	if _, exists := s.questions[question]; !exists {
		return ErrUnknownQuestion
	}

	if err := s.appendQuestionRecord(question, []string{answer}); err != nil {
		return fmt.Errorf("persist answer: %w", err)
	}

	s.questions[question] = append(s.questions[question], answer)
	return nil
}

// Wipe clears all in-memory collections and removes both durable logs,
// leaving the store indistinguishable from a fresh one.
func (s *Store) Wipe() error {
	s.suggestions = nil
	s.buckets = make(map[model.Category][]model.Suggestion)
	s.questions = make(map[string][]string)
	s.order = nil

	for _, name := range []string{suggestionsFile, questionsFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", name, err)
		}
	}

	return nil
}

// Summary returns live per-category suggestion counts
func (s *Store) Summary() map[model.Category]int {
	counts := make(map[model.Category]int, len(model.Categories()))
	for _, cat := range model.Categories() {
		counts[cat] = len(s.buckets[cat])
	}
	return counts
}

// Suggestions returns all suggestions in submission order
func (s *Store) Suggestions() []model.Suggestion {
	return s.suggestions
}

// ByCategory returns the suggestions assigned to a category, in
// submission order. Each entry carries its own sentiment.
func (s *Store) ByCategory(cat model.Category) []model.Suggestion {
	return s.buckets[cat]
}

// Questions returns all questions in insertion order
func (s *Store) Questions() []model.Question {
	questions := make([]model.Question, 0, len(s.order))
	for _, text := range s.order {
		questions = append(questions, model.Question{
			Text:    text,
			Answers: s.questions[text],
		})
	}
	return questions
}

// Answers returns a question's answers in insertion order
func (s *Store) Answers(question string) []string {
	return s.questions[question]
}
