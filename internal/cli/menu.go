package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"suggestbox/internal/model"
	"suggestbox/internal/store"
)

// menu drives the interactive loop. Input and output are injected so
// tests can script a full session.
type menu struct {
	store *store.Store
	cfg   *model.Config
	in    *bufio.Scanner
	out   io.Writer
}

func newMenu(s *store.Store, cfg *model.Config, in io.Reader, out io.Writer) *menu {
	return &menu{
		store: s,
		cfg:   cfg,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// printf writes to the menu output
func (m *menu) printf(format string, a ...interface{}) {
	fmt.Fprintf(m.out, format, a...)
}

// readLine prompts and reads one trimmed input line; ok is false on EOF
func (m *menu) readLine(prompt string) (string, bool) {
	m.printf("%s", prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// run loops the main menu until the user exits or input ends
func (m *menu) run(ctx context.Context) {
	for {
		m.printf("\nSuggestion Box Menu\n")
		m.printf("1. Submit a Suggestion\n")
		m.printf("2. View Suggestion Summary\n")
		m.printf("3. View Suggestions by Category\n")
		m.printf("4. Submit a Question\n")
		m.printf("5. List Questions and View/Add Answers\n")
		m.printf("6. Exit\n")
		m.printf("7. Admin Mode\n")

		choice, ok := m.readLine("Choose an option (1-7): ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			m.submitSuggestion(ctx)
		case "2":
			m.viewSummary()
		case "3":
			m.viewByCategory()
		case "4":
			m.submitQuestion(ctx)
		case "5":
			m.listQuestions()
		case "6":
			m.printf("Thank you for using the Suggestion Box. Goodbye!\n")
			return
		case "7":
			m.adminMenu()
		default:
			m.printf("Invalid input. Please enter a number from 1 to 7.\n")
		}
	}
}

func (m *menu) submitSuggestion(ctx context.Context) {
	text, ok := m.readLine("Enter your anonymous suggestion: ")
	if !ok {
		return
	}
	if text == "" {
		m.printf("Suggestion cannot be empty.\n")
		return
	}

	result, err := m.store.SubmitSuggestion(ctx, text)
	if err != nil {
		m.printf("Could not save the suggestion: %v\n", err)
		return
	}

	m.printf("\nSuggestion (translated): %s\n", result.Text)
	m.printf("Sentiment: %s\n", result.Sentiment)
	m.printf("Categorized under: %s\n", result.Category)
}

func (m *menu) viewSummary() {
	m.printf("\nSuggestion Summary:\n")
	summary := m.store.Summary()
	for _, cat := range model.Categories() {
		m.printf("%s: %d\n", cat, summary[cat])
	}
}

func (m *menu) viewByCategory() {
	categories := model.Categories()
	summary := m.store.Summary()

	m.printf("\nCategories and suggestion counts:\n")
	m.printf("%-5s %-15s %s\n", "No.", "Category", "Suggestion Count")
	m.printf("%s\n", strings.Repeat("-", 35))
	for i, cat := range categories {
		m.printf("%-5d %-15s %d\n", i+1, cat, summary[cat])
	}

	choice, ok := m.readLine(fmt.Sprintf("\nChoose a category to view suggestions (1-%d), or 0 to return: ", len(categories)))
	if !ok {
		return
	}

	num, err := strconv.Atoi(choice)
	if err != nil {
		m.printf("Please enter a valid number.\n")
		return
	}
	if num == 0 {
		return
	}
	if num < 1 || num > len(categories) {
		m.printf("Invalid choice.\n")
		return
	}

	selected := categories[num-1]
	suggestions := m.store.ByCategory(selected)
	if len(suggestions) == 0 {
		m.printf("\nNo suggestions yet under '%s'.\n", selected)
		return
	}

	m.printf("\nSuggestions under '%s':\n", selected)
	for i, suggestion := range suggestions {
		m.printf("%d. %s (Sentiment: %s)\n", i+1, suggestion.Text, suggestion.Sentiment)
	}
}

func (m *menu) submitQuestion(ctx context.Context) {
	text, ok := m.readLine("Enter your anonymous question: ")
	if !ok {
		return
	}
	if text == "" {
		m.printf("Question cannot be empty.\n")
		return
	}

	_, err := m.store.SubmitQuestion(ctx, text)
	switch {
	case errors.Is(err, store.ErrDuplicateQuestion):
		m.printf("This question already exists.\n")
	case err != nil:
		m.printf("Could not save the question: %v\n", err)
	default:
		m.printf("Question saved successfully.\n")
	}
}

func (m *menu) listQuestions() {
	questions := m.store.Questions()
	if len(questions) == 0 {
		m.printf("\nNo questions submitted yet.\n")
		return
	}

	for {
		// Re-read every pass so freshly added answers show up
		questions = m.store.Questions()

		m.printf("\nList of Questions:\n")
		for i, q := range questions {
			m.printf("%d. %s\n", i+1, q.Text)
		}

		choice, ok := m.readLine("Enter question number to view answers or 0 to return: ")
		if !ok {
			return
		}

		num, err := strconv.Atoi(choice)
		if err != nil {
			m.printf("Please enter a valid number.\n")
			continue
		}
		if num == 0 {
			return
		}
		if num < 1 || num > len(questions) {
			m.printf("Invalid question number.\n")
			continue
		}

		question := questions[num-1]
		m.printf("\nAnswers for: %s\n", question.Text)
		if len(question.Answers) == 0 {
			m.printf("No answers yet.\n")
		} else {
			for i, answer := range question.Answers {
				m.printf("Answer %d: %s\n", i+1, answer)
			}
		}

		m.offerAnswer(question.Text)
	}
}

// offerAnswer runs the add-an-answer yes/no loop for one question
func (m *menu) offerAnswer(question string) {
	for {
		choice, ok := m.readLine("Add an answer? (yes/no): ")
		if !ok {
			return
		}

		switch strings.ToLower(choice) {
		case "yes":
			answer, ok := m.readLine("Enter your answer: ")
			if !ok {
				return
			}
			if answer == "" {
				m.printf("Answer cannot be empty.\n")
				continue
			}
			if err := m.store.AddAnswer(question, answer); err != nil {
				m.printf("Could not save the answer: %v\n", err)
				return
			}
			m.printf("Answer added.\n")
			return
		case "no":
			return
		default:
			m.printf("Please type 'yes' or 'no'.\n")
		}
	}
}

func (m *menu) adminMenu() {
	password, ok := m.readLine("Enter admin password: ")
	if !ok {
		return
	}
	if password != m.cfg.Admin.Password {
		m.printf("Incorrect password. Access denied.\n")
		return
	}

	for {
		m.printf("\n--- Admin Menu ---\n")
		m.printf("1. View Suggestion Summary\n")
		m.printf("2. List Questions and Answers\n")
		m.printf("3. Delete All Suggestions and Questions\n")
		m.printf("4. Exit Admin Menu\n")

		choice, ok := m.readLine("Choose an option (1-4): ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			m.viewSummary()
		case "2":
			m.listQuestions()
		case "3":
			confirm, ok := m.readLine("Are you sure? This will delete all data. (yes/no): ")
			if !ok {
				return
			}
			if strings.ToLower(confirm) == "yes" {
				if err := m.store.Wipe(); err != nil {
					m.printf("Could not delete stored data: %v\n", err)
				} else {
					m.printf("All suggestions and questions deleted.\n")
				}
			} else {
				m.printf("Deletion cancelled.\n")
			}
		case "4":
			return
		default:
			m.printf("Invalid choice. Enter 1-4.\n")
		}
	}
}
