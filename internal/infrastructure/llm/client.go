package llm

import (
	"context"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/shopsage/backend/internal/domain"
)

// ClientConfig holds the completion parameters for the language-model API.
type ClientConfig struct {
	Model       string
	MaxTokens   int
	Temperature float32
	BaseURL     string // override for tests; empty uses the default endpoint
}

// Client wraps the OpenAI chat-completion API behind domain.CompletionClient.
type Client struct {
	api         *openai.Client
	model       string
	maxTokens   int
	temperature float32
	debug       bool
}

// NewClient creates a new language-model client
func NewClient(apiKey string, config ClientConfig) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if config.BaseURL != "" {
		cfg.BaseURL = config.BaseURL
	}

	model := config.Model
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}

	maxTokens := config.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 300
	}

	return &Client{
		api:         openai.NewClientWithConfig(cfg),
		model:       model,
		maxTokens:   maxTokens,
		temperature: config.Temperature,
	}
}

// SetDebug enables or disables debug logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Complete sends one system instruction plus one user message and returns the
// completion text. No retries: the summarizer degrades to a fallback string
// on any failure.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.debug {
		log.Printf("[LLM] Complete called, model=%s, prompt=%d chars", c.model, len(userPrompt))
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrSummaryFailure, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", domain.ErrSummaryFailure)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
