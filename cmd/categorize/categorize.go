// Package categorize handles the single-description categorization
// command, mostly useful for checking rules while editing them.
package categorize

import (
	"fmt"

	"dmunoz/cartola-csv/cmd/root"
	"dmunoz/cartola-csv/internal/ai"
	"dmunoz/cartola-csv/internal/classifier"
	"dmunoz/cartola-csv/internal/models"
	"dmunoz/cartola-csv/internal/store"

	"github.com/spf13/cobra"
)

var (
	description string
	txType      string
	useAI       bool
)

// Cmd represents the categorize command.
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a single transaction description",
	Long: `Categorize runs one description through the rule table and prints the
suggested category. With --ai a low-confidence result is retried
through the configured AI provider.`,
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description")
	Cmd.Flags().StringVarP(&txType, "type", "t", "cargo", "Transaction type: cargo or abono")
	Cmd.Flags().BoolVar(&useAI, "ai", false, "Fall back to the AI provider on low confidence")
	_ = Cmd.MarkFlagRequired("description")
}

func categorizeFunc(cmd *cobra.Command, _ []string) error {
	direction := models.TransactionType(txType)
	if direction != models.TypeCargo && direction != models.TypeAbono {
		return fmt.Errorf("invalid type %q, must be cargo or abono", txType)
	}

	cls := classifier.New(root.Log)
	ruleStore := store.NewRuleStore(root.Cfg.Rules.File, root.Cfg.Rules.KeywordsFile, root.Log)
	rules, recurring, err := ruleStore.LoadRules()
	if err != nil {
		return err
	}
	cls.AddRules(rules)
	cls.AddRecurringKeywords(recurring)

	suggestion := cls.Suggest(description, direction)

	if useAI && suggestion.Confidence == models.ConfidenceLow {
		client, err := ai.NewClient(ai.Config{
			Provider: root.Cfg.AI.Provider,
			APIKey:   root.Cfg.AI.APIKey,
			Model:    root.Cfg.AI.Model,
		}, root.Log)
		if err != nil {
			return err
		}
		if client == nil {
			root.Log.Warn("No AI API key configured, keeping rule-based category")
		} else {
			results, err := client.CategorizeBatch(cmd.Context(), []ai.BatchItem{
				{Index: 0, Description: description, Type: direction},
			})
			if err != nil {
				root.Log.WithError(err).Warn("AI categorization failed, keeping rule-based category")
			} else if len(results) == 1 {
				suggestion = classifier.Suggestion{
					Category:   results[0].Category,
					Confidence: models.ConfidenceAI,
				}
			}
		}
	}

	fmt.Printf("Category: %s (%s)\n", suggestion.Category, suggestion.Confidence)
	if cls.IsRecurring(description) {
		fmt.Println("Recurring: yes")
	}
	return nil
}
