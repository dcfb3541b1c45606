package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnthropicClient_CompleteWithSystem(t *testing.T) {
	var captured AnthropicRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "sk-ant", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		resp := map[string]interface{}{
			"content": []map[string]string{
				{"type": "text", "text": "part one "},
				{"type": "text", "text": "part two"},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewAnthropicClientWithConfig(AnthropicConfig{
		APIKey:  "sk-ant",
		BaseURL: server.URL,
		Options: Options{Model: "claude-sonnet-4-20250514", Temperature: 0.7, MaxTokens: 1024},
	})

	got, err := client.CompleteWithSystem(context.Background(), "You are a planner.", "Plan something.")
	require.NoError(t, err)

	// Text blocks are concatenated and trimmed.
	assert.Equal(t, "part one part two", got)

	assert.Equal(t, "You are a planner.", captured.System)
	assert.Equal(t, 1024, captured.MaxTokens)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, Message{Role: "user", Content: "Plan something."}, captured.Messages[0])
}

func TestAnthropicClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"type": "overloaded_error", "message": "overloaded"}}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewAnthropicClientWithConfig(AnthropicConfig{APIKey: "sk-ant", BaseURL: server.URL})

	_, err := client.CompleteWithSystem(context.Background(), "", "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
