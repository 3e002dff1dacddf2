// Package category assigns suggestions to topical buckets via keyword
// matching. Classification is pure and total: it never mutates store
// state and always returns exactly one category.
package category

import (
	"strings"

	"suggestbox/internal/model"
)

// Rule binds a category to its trigger keywords. Keywords are lowercase
// substrings tested anywhere in the text.
type Rule struct {
	Category model.Category
	Keywords []string
}

// DefaultRules returns the built-in keyword table. Order is significant:
// when a text matches keywords from two categories, the earlier rule
// wins (Facility > Work Process > Benefits). Other has no keywords and
// is the fallback.
func DefaultRules() []Rule {
	return []Rule{
		{
			Category: model.CategoryFacility,
			Keywords: []string{"office", "room", "desk", "chair", "light", "building"},
		},
		{
			Category: model.CategoryWorkProcess,
			Keywords: []string{"workflow", "schedule", "process", "meeting", "task", "communication"},
		},
		{
			Category: model.CategoryBenefits,
			Keywords: []string{"bonus", "leave", "health", "insurance", "raise", "salary"},
		},
	}
}

// Classifier matches text against an ordered rule table
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a classifier with the given rules. Rules are
// evaluated in slice order; pass DefaultRules() for the standard table.
func NewClassifier(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// Classify returns the first category whose keywords match the
// lower-cased text, or Other when nothing matches. Reclassifying the
// same text always yields the same category.
func (c *Classifier) Classify(text string) model.Category {
	lower := strings.ToLower(text)

	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Category
			}
		}
	}

	return model.CategoryOther
}
