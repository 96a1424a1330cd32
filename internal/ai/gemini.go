package ai

import (
	"context"
	"fmt"
	"strings"

	"dmunoz/cartola-csv/internal/logging"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiDefaultModel = "gemini-2.0-flash-exp"

// GeminiClient talks to the Google Gemini API.
type GeminiClient struct {
	apiKey string
	model  string
	logger logging.Logger
}

// NewGeminiClient creates a Gemini client. An empty model selects the
// default. A nil logger falls back to a default adapter.
func NewGeminiClient(apiKey, model string, logger logging.Logger) *GeminiClient {
	if model == "" {
		model = geminiDefaultModel
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &GeminiClient{apiKey: apiKey, model: model, logger: logger}
}

// Name returns the provider name.
func (c *GeminiClient) Name() string {
	return "gemini"
}

// CategorizeBatch sends the whole batch in a single generation request.
// The client is created per call; batches are infrequent enough that
// connection reuse does not matter here.
func (c *GeminiClient) CategorizeBatch(ctx context.Context, items []BatchItem) ([]BatchResult, error) {
	if len(items) == 0 {
		return nil, nil
	}
	if c.apiKey == "" {
		return nil, fmt.Errorf("gemini api key is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	defer func() {
		_ = client.Close()
	}()

	temperature := float32(0.1)
	maxTokens := int32(2000)
	model := client.GenerativeModel(c.model)
	model.GenerationConfig = genai.GenerationConfig{
		Temperature:     &temperature,
		MaxOutputTokens: &maxTokens,
	}

	c.logger.Debug("Sending batch to Gemini",
		logging.F("model", c.model),
		logging.F("items", len(items)))

	prompt := systemPrompt + "\n\n" + BuildBatchPrompt(items)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("calling gemini api: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini response has no candidates")
	}

	var content strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			content.WriteString(string(text))
		}
	}

	envelope, err := parseEnvelope(content.String())
	if err != nil {
		return nil, fmt.Errorf("parsing gemini answer: %w", err)
	}

	return normalizeResults(items, envelope, c.logger), nil
}
