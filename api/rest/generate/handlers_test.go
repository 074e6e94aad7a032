package generate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/promptforge/server/internal/codegen"
	apierrors "codeberg.org/promptforge/server/internal/errors"
	"codeberg.org/promptforge/server/internal/history"
	"codeberg.org/promptforge/server/internal/llm"
)

type failingGenerator struct{}

func (failingGenerator) Generate(context.Context, string) (*codegen.Result, error) {
	return nil, errors.New("template missing")
}

type errorCompleter struct{}

func (errorCompleter) Complete(context.Context, llm.Request) (*llm.Response, error) {
	return nil, &llm.StatusError{StatusCode: http.StatusBadGateway}
}

func (errorCompleter) Model() string { return "broken" }

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(generator Generator, store history.Store, body, clientID string) *httptest.ResponseRecorder {
	router := gin.New()
	RegisterRoutes(router.Group("/api"), generator, store)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if clientID != "" {
		req.Header.Set(history.ClientIDHeader, clientID)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestHandler_TemplateWithoutCredential(t *testing.T) {
	tests := []struct {
		prompt string
		want   codegen.Template
	}{
		{"make me a TODO list", codegen.TemplateTodo},
		{"a simple counter", codegen.TemplateCounter},
		{"calc please", codegen.TemplateCalculator},
		{"portfolio site", codegen.TemplateLanding},
	}

	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			w := perform(codegen.New(nil), nil, `{"prompt":"`+tt.prompt+`"}`, "")

			require.Equal(t, http.StatusOK, w.Code)

			var resp Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.True(t, resp.Success)
			assert.Equal(t, codegen.SourceTemplate, resp.Source)
			assert.Equal(t, tt.want, resp.Template)
			assert.Contains(t, resp.Code, "MyComponent")
			assert.Contains(t, resp.Preview, "<!DOCTYPE html>")
		})
	}
}

func TestHandler_RemoteFailureDegrades(t *testing.T) {
	w := perform(codegen.New(errorCompleter{}), nil, `{"prompt":"counter"}`, "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, codegen.SourceTemplate, resp.Source)
	assert.Equal(t, codegen.TemplateCounter, resp.Template)
}

func TestHandler_EmptyPrompt(t *testing.T) {
	for _, body := range []string{`{"prompt":""}`, `{"prompt":" \n "}`, `{}`} {
		w := perform(codegen.New(nil), nil, body, "")

		assert.Equal(t, http.StatusBadRequest, w.Code, body)

		var resp apierrors.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
	}
}

func TestHandler_GeneratorFailure(t *testing.T) {
	w := perform(failingGenerator{}, nil, `{"prompt":"todo"}`, "")

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

func TestHandler_RecordsHistory(t *testing.T) {
	store := history.NewMemoryStore()

	w := perform(codegen.New(nil), store, `{"prompt":"todo app"}`, "client-7")
	require.Equal(t, http.StatusOK, w.Code)

	entries, err := store.List(context.Background(), "client-7")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "todo app", entries[0].Prompt)
	assert.Contains(t, entries[0].Code, "MyComponent")

	// no client id, nothing recorded
	perform(codegen.New(nil), store, `{"prompt":"todo app"}`, "")
	entries, err = store.List(context.Background(), "")
	assert.ErrorIs(t, err, history.ErrInvalidOwner)
	assert.Empty(t, entries)
}
