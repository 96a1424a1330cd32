package classifier

import (
	"strings"

	"dmunoz/cartola-csv/internal/models"
)

// Suggestion is the outcome of a classification attempt.
type Suggestion struct {
	Category   string
	Confidence models.Confidence
}

// Strategy defines one method for suggesting a category. Strategies run
// in registration order with the first hit winning, so cheap rule
// lookups can sit in front of anything more elaborate.
type Strategy interface {
	// Name identifies this strategy for logging purposes.
	Name() string

	// Suggest attempts to classify a description. The boolean reports
	// whether this strategy produced a suggestion at all.
	Suggest(description string, txType models.TransactionType) (Suggestion, bool)
}

// RuleStrategy classifies by matching rule keywords as case-insensitive
// substrings of the description, first rule hit wins.
type RuleStrategy struct {
	name  string
	rules []models.CategoryRule
}

// NewRuleStrategy creates a RuleStrategy over an ordered rule table.
func NewRuleStrategy(name string, rules []models.CategoryRule) *RuleStrategy {
	return &RuleStrategy{name: name, rules: rules}
}

// Name returns the strategy name.
func (s *RuleStrategy) Name() string {
	return s.name
}

// Suggest scans the rule table in order.
func (s *RuleStrategy) Suggest(description string, _ models.TransactionType) (Suggestion, bool) {
	upper := strings.ToUpper(description)
	for _, rule := range s.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(upper, strings.ToUpper(keyword)) {
				return Suggestion{Category: rule.Category, Confidence: rule.Confidence}, true
			}
		}
	}
	return Suggestion{}, false
}
