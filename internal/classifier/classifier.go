// Package classifier assigns spending categories to transactions using
// an ordered chain of strategies, and flags recurring charges by
// keyword. It never calls out to the network; the AI fallback layers on
// top of it elsewhere.
package classifier

import (
	"strings"
	"sync"

	"dmunoz/cartola-csv/internal/logging"
	"dmunoz/cartola-csv/internal/models"
)

// Classifier suggests categories for transactions. Safe for concurrent
// use.
type Classifier struct {
	mu                sync.RWMutex
	strategies        []Strategy
	recurringKeywords []string
	logger            logging.Logger
}

// New creates a Classifier seeded with the built-in rule table and
// recurring keywords. A nil logger falls back to a default adapter.
func New(logger logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Classifier{
		strategies:        []Strategy{NewRuleStrategy("default-rules", DefaultRules())},
		recurringKeywords: DefaultRecurringKeywords(),
		logger:            logger,
	}
}

// AddRules registers user-defined rules ahead of the built-in table so
// they take precedence.
func (c *Classifier) AddRules(rules []models.CategoryRule) {
	if len(rules) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	custom := NewRuleStrategy("custom-rules", rules)
	c.strategies = append([]Strategy{custom}, c.strategies...)
	c.logger.Debug("Custom category rules registered", logging.F("rules", len(rules)))
}

// AddStrategy appends a strategy behind the ones already registered.
func (c *Classifier) AddStrategy(strategy Strategy) {
	if strategy == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.strategies = append(c.strategies, strategy)
}

// AddRecurringKeywords extends the recurring-charge keyword set.
func (c *Classifier) AddRecurringKeywords(keywords []string) {
	if len(keywords) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recurringKeywords = append(c.recurringKeywords, keywords...)
}

// Suggest runs the strategy chain over a description. When nothing
// hits, incoming salary payments still resolve to Sueldo; everything
// else lands in the low-confidence default bucket.
func (c *Classifier) Suggest(description string, txType models.TransactionType) Suggestion {
	c.mu.RLock()
	strategies := c.strategies
	c.mu.RUnlock()

	for _, strategy := range strategies {
		if suggestion, ok := strategy.Suggest(description, txType); ok {
			return suggestion
		}
	}

	if txType == models.TypeAbono {
		upper := strings.ToUpper(description)
		if strings.Contains(upper, "SUELDO") || strings.Contains(upper, "REMUNERACIONES") {
			return Suggestion{Category: models.CategorySueldo, Confidence: models.ConfidenceHigh}
		}
	}

	return Suggestion{Category: models.CategoryOtros, Confidence: models.ConfidenceLow}
}

// IsRecurring reports whether the description contains any
// recurring-charge keyword.
func (c *Classifier) IsRecurring(description string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	upper := strings.ToUpper(description)
	for _, keyword := range c.recurringKeywords {
		if strings.Contains(upper, keyword) {
			return true
		}
	}
	return false
}

// Classify fills the suggestion fields of a transaction in place. The
// selected category starts out equal to the suggestion.
func (c *Classifier) Classify(tx *models.Transaction) {
	suggestion := c.Suggest(tx.Description, tx.Type)
	tx.SuggestedCategory = suggestion.Category
	tx.Confidence = suggestion.Confidence
	tx.SelectedCategory = suggestion.Category
	tx.IsRecurring = c.IsRecurring(tx.Description)
}
