package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"dmunoz/cartola-csv/internal/logging"
)

const (
	groqBaseURL      = "https://api.groq.com/openai/v1"
	groqDefaultModel = "llama-3.1-8b-instant"
	groqTimeout      = 30 * time.Second
	groqMaxTokens    = 2000
	groqTemperature  = 0.1
)

// GroqClient talks to the Groq chat-completions API, which is
// OpenAI-compatible on the wire.
type GroqClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
}

// NewGroqClient creates a Groq client. An empty model selects the
// default. A nil logger falls back to a default adapter.
func NewGroqClient(apiKey, model string, logger logging.Logger) *GroqClient {
	if model == "" {
		model = groqDefaultModel
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &GroqClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    groqBaseURL,
		httpClient: &http.Client{Timeout: groqTimeout},
		logger:     logger,
	}
}

// Name returns the provider name.
func (c *GroqClient) Name() string {
	return "groq"
}

type groqChatRequest struct {
	Model          string             `json:"model"`
	Messages       []groqChatMessage  `json:"messages"`
	Temperature    float64            `json:"temperature"`
	MaxTokens      int                `json:"max_tokens"`
	ResponseFormat groqResponseFormat `json:"response_format"`
}

type groqChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqResponseFormat struct {
	Type string `json:"type"`
}

type groqChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// CategorizeBatch sends the whole batch in a single chat completion.
func (c *GroqClient) CategorizeBatch(ctx context.Context, items []BatchItem) ([]BatchResult, error) {
	if len(items) == 0 {
		return nil, nil
	}
	if c.apiKey == "" {
		return nil, fmt.Errorf("groq api key is not configured")
	}

	request := groqChatRequest{
		Model: c.model,
		Messages: []groqChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: BuildBatchPrompt(items)},
		},
		Temperature:    groqTemperature,
		MaxTokens:      groqMaxTokens,
		ResponseFormat: groqResponseFormat{Type: "json_object"},
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("marshaling groq request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building groq request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.Debug("Sending batch to Groq",
		logging.F("model", c.model),
		logging.F("items", len(items)))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling groq api: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading groq response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("groq api returned %d: %.200s", resp.StatusCode, respBody)
	}

	var chatResp groqChatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, fmt.Errorf("decoding groq response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("groq response has no choices")
	}

	envelope, err := parseEnvelope(chatResp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("parsing groq answer: %w", err)
	}

	return normalizeResults(items, envelope, c.logger), nil
}
