package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/aion/internal/config"
	"github.com/MKhiriev/aion/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) SuggestionClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewOpenAIClient(config.AI{
		APIKey:         "sk-test",
		BaseURL:        server.URL,
		Model:          "gpt-4o",
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return client
}

func completionReply(content string) string {
	return `{"choices":[{"message":{"role":"assistant","content":"` + content + `"}}]}`
}

func TestGenerateInsight_RequestShape(t *testing.T) {
	var captured chatCompletionRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionReply("Take a walk after lunch.")))
	})

	data := json.RawMessage(`{"domains":[{"name":"Health","score":40}]}`)
	content, err := client.GenerateInsight(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, "Take a walk after lunch.", content)

	assert.Equal(t, "gpt-4o", captured.Model)
	assert.Equal(t, completionMaxTokens, captured.MaxTokens)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, systemPrompt, captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Contains(t, captured.Messages[1].Content, `{"domains":[{"name":"Health","score":40}]}`)
}

func TestGenerateInsight_UpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	})

	_, err := client.GenerateInsight(context.Background(), json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrCompletionFailed)
}

func TestGenerateInsight_EmptyReply(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := client.GenerateInsight(context.Background(), json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestGenerateInsight_NotConfigured(t *testing.T) {
	client, err := NewOpenAIClient(config.AI{}, logger.Nop())
	require.NoError(t, err)

	_, err = client.GenerateInsight(context.Background(), json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGenerateInsight_ContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(completionReply("late")))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.GenerateInsight(ctx, json.RawMessage(`{}`))
	assert.Error(t, err)
}

func TestNewOpenAIClient_InvalidBaseURL(t *testing.T) {
	_, err := NewOpenAIClient(config.AI{APIKey: "sk-test", BaseURL: "   "}, logger.Nop())
	assert.Error(t, err)
}
