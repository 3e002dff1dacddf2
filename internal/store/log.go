package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"suggestbox/internal/model"
)

// Questions log markers. A record is a marked question line, zero or
// more marked answer lines, and a delimiter line. Multiple records for
// the same question merge on restore.
const (
	questionPrefix  = "Q: "
	answerPrefix    = "A: "
	recordDelimiter = "---"
)

// suggestionRecord is one line of the suggestions log
type suggestionRecord struct {
	Text      string `json:"text"`
	Sentiment string `json:"sentiment"`
}

// Restore replays both durable logs into memory. Sentiment is taken
// from the persisted record verbatim; categories are recomputed from
// text. Malformed records are skipped with a warning; a missing log
// file means a fresh store.
func (s *Store) Restore() error {
	if err := s.restoreSuggestions(); err != nil {
		return fmt.Errorf("restore suggestions: %w", err)
	}
	if err := s.restoreQuestions(); err != nil {
		return fmt.Errorf("restore questions: %w", err)
	}
	return nil
}

func (s *Store) restoreSuggestions() error {
	f, err := os.Open(filepath.Join(s.dir, suggestionsFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var record suggestionRecord
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			s.logger.Warn("skipping malformed suggestion record",
				zap.Int("line", lineNo),
				zap.Error(err))
			continue
		}

		sentiment, err := model.ParseSentiment(record.Sentiment)
		if err != nil || record.Text == "" {
			s.logger.Warn("skipping malformed suggestion record",
				zap.Int("line", lineNo),
				zap.Error(err))
			continue
		}

		suggestion := model.Suggestion{
			Text:      record.Text,
			Sentiment: sentiment,
		}
		s.suggestions = append(s.suggestions, suggestion)

		cat := s.categories.Classify(suggestion.Text)
		s.buckets[cat] = append(s.buckets[cat], suggestion)
	}

	return scanner.Err()
}

func (s *Store) restoreQuestions() error {
	f, err := os.Open(filepath.Join(s.dir, questionsFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	current := ""
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue

		case strings.HasPrefix(line, questionPrefix):
			current = strings.TrimPrefix(line, questionPrefix)
			// Later record blocks for an existing question merge into it
			if _, exists := s.questions[current]; !exists {
				s.questions[current] = []string{}
				s.order = append(s.order, current)
			}

		case strings.HasPrefix(line, answerPrefix):
			if current == "" {
				s.logger.Warn("skipping answer line outside a question record",
					zap.Int("line", lineNo))
				continue
			}
			s.questions[current] = append(s.questions[current], strings.TrimPrefix(line, answerPrefix))

		case line == recordDelimiter:
			current = ""

		default:
			s.logger.Warn("skipping malformed question log line",
				zap.Int("line", lineNo))
		}
	}

	return scanner.Err()
}

// appendSuggestionRecord appends one JSON record line to the
// suggestions log
func (s *Store) appendSuggestionRecord(suggestion model.Suggestion) error {
	record := suggestionRecord{
		Text:      suggestion.Text,
		Sentiment: string(suggestion.Sentiment),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	return s.appendLine(suggestionsFile, string(data))
}

// appendQuestionRecord appends one question record block to the
// questions log
func (s *Store) appendQuestionRecord(question string, answers []string) error {
	var b strings.Builder
	b.WriteString(questionPrefix + question + "\n")
	for _, answer := range answers {
		b.WriteString(answerPrefix + answer + "\n")
	}
	b.WriteString(recordDelimiter)

	return s.appendLine(questionsFile, b.String())
}

// appendLine appends text plus a newline to a log file, creating the
// storage directory and file as needed
func (s *Store) appendLine(name, text string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(text + "\n"); err != nil {
		return fmt.Errorf("append record: %w", err)
	}

	return nil
}
