package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billfeed/billfeed/internal/llm"
)

func TestCompleteParsesResponse(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"model": "deepseek-chat",
			"choices": []map[string]any{
				{"message": map[string]any{"content": "  [CMB,2026-03-01,...]  "}},
			},
			"usage": map[string]any{
				"prompt_tokens":     900,
				"completion_tokens": 100,
				"total_tokens":      1000,
			},
		})
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "sk-test", BaseURL: srv.URL + "/v1", Model: "deepseek-chat"}, nil)

	resp, err := client.Complete(context.Background(), llm.CompletionRequest{
		System:      llm.CurateSystem,
		Prompt:      "raw text",
		Temperature: llm.CurateTemperature,
		MaxTokens:   llm.CurateMaxTokens,
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "deepseek-chat", gotBody["model"])
	assert.EqualValues(t, llm.CurateMaxTokens, gotBody["max_tokens"])

	assert.Equal(t, "[CMB,2026-03-01,...]", resp.Text)
	assert.Equal(t, "deepseek-chat", resp.Model)
	assert.Equal(t, 1000, resp.Usage.TotalTokens)
	assert.NotEmpty(t, resp.RequestID)
}

func TestCompleteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "sk-test", BaseURL: srv.URL, Model: "deepseek-chat"}, nil)

	resp, err := client.Complete(context.Background(), llm.CompletionRequest{Prompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	// the response still carries enough identity to meter the failed call
	assert.Equal(t, "deepseek-chat", resp.Model)
	assert.NotEmpty(t, resp.RequestID)
}

func TestCompleteNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "sk-test", BaseURL: srv.URL, Model: "deepseek-chat"}, nil)

	_, err := client.Complete(context.Background(), llm.CompletionRequest{Prompt: "x"})
	assert.Error(t, err)
}
