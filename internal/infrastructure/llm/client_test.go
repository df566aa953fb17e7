package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopsage/backend/internal/domain"
)

func newTestClient(serverURL string) *Client {
	return NewClient("test-api-key", ClientConfig{
		Model:       "gpt-3.5-turbo",
		MaxTokens:   300,
		Temperature: 0.7,
		BaseURL:     serverURL + "/v1",
	})
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient("test-api-key", ClientConfig{})

	assert.Equal(t, openai.GPT3Dot5Turbo, client.model)
	assert.Equal(t, 300, client.maxTokens)
	assert.Equal(t, float32(0), client.temperature)
}

func TestComplete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))

		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-3.5-turbo", req.Model)
		assert.Equal(t, 300, req.MaxTokens)
		assert.InDelta(t, 0.7, req.Temperature, 0.001)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
		assert.Equal(t, "You are a shopping assistant.", req.Messages[0].Content)
		assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[1].Role)
		assert.Equal(t, "Summarize these listings.", req.Messages[1].Content)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "  The best value is the first listing.  "}},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.Complete(context.Background(), "You are a shopping assistant.", "Summarize these listings.")

	require.NoError(t, err)
	assert.Equal(t, "The best value is the first listing.", result)
}

func TestComplete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit exceeded","type":"requests"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.Complete(context.Background(), "system", "user")

	assert.Empty(t, result)
	assert.ErrorIs(t, err, domain.ErrSummaryFailure)
}

func TestComplete_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.Complete(context.Background(), "system", "user")

	assert.Empty(t, result)
	assert.ErrorIs(t, err, domain.ErrSummaryFailure)
}
