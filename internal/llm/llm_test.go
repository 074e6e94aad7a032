package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/promptforge/server/internal/config"
)

func newOpenAITestServer(t *testing.T, status int, body string, inspect func(r *http.Request)) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if inspect != nil {
			inspect(r)
		}

		w.WriteHeader(status)
		w.Write([]byte(body)) //nolint:errcheck,gosec // test server
	}))

	t.Cleanup(srv.Close)

	return srv
}

func TestOpenAIClient_Complete(t *testing.T) {
	var received chatCompletionRequest

	srv := newOpenAITestServer(t, http.StatusOK,
		`{"choices":[{"message":{"role":"assistant","content":"hello there"}}],"usage":{"prompt_tokens":12,"completion_tokens":3}}`,
		func(r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		})

	client := NewOpenAIClient(ClientConfig{APIKey: "sk-test", Model: "gpt-4", BaseURL: srv.URL})

	resp, err := client.Complete(context.Background(), Request{
		SystemPrompt: "be brief",
		Messages:     []Message{{Role: RoleUser, Content: "hi"}},
		MaxTokens:    500,
		Temperature:  0.7,
	})

	require.NoError(t, err)
	assert.Equal(t, "hello there", resp.Text)
	assert.Equal(t, 12, resp.Usage.InputTokens)

	require.Len(t, received.Messages, 2)
	assert.Equal(t, RoleSystem, received.Messages[0].Role)
	assert.Equal(t, "be brief", received.Messages[0].Content)
	assert.Equal(t, 500, received.MaxTokens)
	assert.InDelta(t, 0.7, received.Temperature, 0.001)
	assert.Equal(t, "gpt-4", received.Model)
}

func TestOpenAIClient_StatusError(t *testing.T) {
	srv := newOpenAITestServer(t, http.StatusTooManyRequests, `{"error":{"message":"slow down"}}`, nil)
	client := NewOpenAIClient(ClientConfig{APIKey: "sk-test", BaseURL: srv.URL})

	_, err := client.Complete(context.Background(), Request{})

	require.Error(t, err)
	code, ok := StatusCode(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, code)
}

func TestOpenAIClient_EmptyBody(t *testing.T) {
	srv := newOpenAITestServer(t, http.StatusOK, "   ", nil)
	client := NewOpenAIClient(ClientConfig{APIKey: "sk-test", BaseURL: srv.URL})

	_, err := client.Complete(context.Background(), Request{})

	assert.True(t, errors.Is(err, ErrEmptyResponse))
}

func TestOpenAIClient_InvalidBody(t *testing.T) {
	srv := newOpenAITestServer(t, http.StatusOK, "<html>gateway</html>", nil)
	client := NewOpenAIClient(ClientConfig{APIKey: "sk-test", BaseURL: srv.URL})

	_, err := client.Complete(context.Background(), Request{})

	assert.True(t, errors.Is(err, ErrInvalidResponse))
}

func TestOpenAIClient_NoChoices(t *testing.T) {
	srv := newOpenAITestServer(t, http.StatusOK, `{"choices":[]}`, nil)
	client := NewOpenAIClient(ClientConfig{APIKey: "sk-test", BaseURL: srv.URL})

	resp, err := client.Complete(context.Background(), Request{})

	require.NoError(t, err)
	assert.Empty(t, resp.Text)
}

func TestAnthropicClient_Complete(t *testing.T) {
	var received messagesRequest

	srv := newOpenAITestServer(t, http.StatusOK,
		`{"content":[{"type":"text","text":"part one "},{"type":"text","text":"part two"}]}`,
		func(r *http.Request) {
			assert.Equal(t, "/v1/messages", r.URL.Path)
			assert.Equal(t, "key", r.Header.Get("x-api-key"))
			assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		})

	client := NewAnthropicClient(ClientConfig{APIKey: "key", Model: "claude", BaseURL: srv.URL})

	resp, err := client.Complete(context.Background(), Request{
		SystemPrompt: "system",
		Messages:     []Message{{Role: RoleUser, Content: "hi"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "part one part two", resp.Text)
	assert.Equal(t, "system", received.System)
	assert.Equal(t, defaultMaxTokens, received.MaxTokens)
}

func TestNewFromConfig_WithoutCredential(t *testing.T) {
	cfg, err := config.FromEnv(func(string) string { return "" })
	require.NoError(t, err)

	clients, err := NewFromConfig(cfg)

	require.NoError(t, err)
	assert.False(t, clients.Available())
}

func TestNewFromConfig_WithCredential(t *testing.T) {
	cfg, err := config.FromEnv(func(key string) string {
		if key == "OPENAI_API_KEY" {
			return "sk-test"
		}
		return ""
	})
	require.NoError(t, err)

	clients, err := NewFromConfig(cfg)

	require.NoError(t, err)
	assert.True(t, clients.Available())
	assert.Equal(t, "gpt-4", clients.Chat.Model())
}
