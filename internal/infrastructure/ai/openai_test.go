package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/gudimart-store/internal/application"
)

func TestToMessages(t *testing.T) {
	msgs := toMessages("be brief", []application.Turn{
		{Role: application.RoleUser, Text: "hi"},
		{Role: application.RoleAssistant, Text: "hello"},
	})
	require.Len(t, msgs, 3)
	assert.Equal(t, openai.ChatMessageRoleSystem, msgs[0].Role)
	assert.Equal(t, "be brief", msgs[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, msgs[1].Role)
	assert.Equal(t, openai.ChatMessageRoleAssistant, msgs[2].Role)
}

func TestOpenAIComplete(t *testing.T) {
	var got openai.ChatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Role: "assistant", Content: "sure"}}},
		})
	}))
	defer srv.Close()

	c := NewOpenAI("test-key", srv.URL, "")
	text, err := c.Complete(context.Background(), "sys", []application.Turn{{Role: application.RoleUser, Text: "q"}}, 42)
	require.NoError(t, err)
	assert.Equal(t, "sure", text)
	assert.Equal(t, DefaultModel, got.Model)
	assert.Equal(t, 42, got.MaxTokens)
	assert.Len(t, got.Messages, 2)
}

func TestOpenAICompleteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"slow down","type":"rate_limit"}}`))
	}))
	defer srv.Close()

	_, err := NewOpenAI("k", srv.URL, "gpt-4o-mini").Complete(context.Background(), "sys", nil, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai chat completion")
}
