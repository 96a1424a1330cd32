package ai

import (
	"fmt"

	"dmunoz/cartola-csv/internal/logging"
)

// Provider names accepted by NewClient.
const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// Config selects and configures an AI provider.
type Config struct {
	Provider string
	APIKey   string
	Model    string
}

// NewClient builds a client for the configured provider. A missing API
// key disables the fallback entirely: the returned client is nil and
// callers keep the rule-based categories.
func NewClient(cfg Config, logger logging.Logger) (Client, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}

	switch cfg.Provider {
	case ProviderGroq, "":
		return NewGroqClient(cfg.APIKey, cfg.Model, logger), nil
	case ProviderGemini:
		return NewGeminiClient(cfg.APIKey, cfg.Model, logger), nil
	default:
		return nil, fmt.Errorf("unknown ai provider: %s", cfg.Provider)
	}
}
