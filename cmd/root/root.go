// Package root contains the root command for the application.
package root

import (
	"fmt"

	"dmunoz/cartola-csv/internal/ai"
	"dmunoz/cartola-csv/internal/classifier"
	"dmunoz/cartola-csv/internal/config"
	"dmunoz/cartola-csv/internal/keywords"
	"dmunoz/cartola-csv/internal/logging"
	"dmunoz/cartola-csv/internal/mapper"
	"dmunoz/cartola-csv/internal/pipeline"
	"dmunoz/cartola-csv/internal/session"
	"dmunoz/cartola-csv/internal/store"

	"github.com/spf13/cobra"
)

// CommonFlags holds the flags shared by multiple commands.
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cfg is the loaded configuration, available after PersistentPreRunE.
	Cfg *config.Config

	// SharedFlags are accessible to all commands.
	SharedFlags = CommonFlags{}

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "cartola-csv",
		Short: "Ingest bank statements and categorize their transactions.",
		Long: `cartola-csv reads bank statement exports (CSV or Excel), infers their
column layout, normalizes dates and amounts, and categorizes every
transaction with local rules plus an optional AI fallback.`,
		Run: func(cmd *cobra.Command, _ []string) {
			Log.Info("Welcome to cartola-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			config.LoadEnv()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			Cfg = cfg
			Log = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
			return nil
		},
	}
)

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}

// NewPipeline assembles a fully wired pipeline from the loaded
// configuration: custom keywords and rules from the YAML store, the
// classifier and the optional AI client.
func NewPipeline() (*pipeline.Pipeline, error) {
	if Cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}

	ruleStore := store.NewRuleStore(Cfg.Rules.File, Cfg.Rules.KeywordsFile, Log)

	registry := keywords.NewRegistry()
	fieldKeywords, err := ruleStore.LoadFieldKeywords()
	if err != nil {
		return nil, err
	}
	for field, words := range fieldKeywords {
		registry.AddCustomKeywords(field, words)
	}

	cls := classifier.New(Log)
	rules, recurring, err := ruleStore.LoadRules()
	if err != nil {
		return nil, err
	}
	cls.AddRules(rules)
	cls.AddRecurringKeywords(recurring)

	aiClient, err := ai.NewClient(ai.Config{
		Provider: Cfg.AI.Provider,
		APIKey:   Cfg.AI.APIKey,
		Model:    Cfg.AI.Model,
	}, Log)
	if err != nil {
		return nil, err
	}
	if aiClient == nil {
		Log.Debug("No AI API key configured, fallback disabled")
	}

	return pipeline.New(
		mapper.New(registry, Log),
		cls,
		aiClient,
		session.New(),
		Log,
	), nil
}
