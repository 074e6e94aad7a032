package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/promptforge/server/internal/assistant"
	apierrors "codeberg.org/promptforge/server/internal/errors"
	"codeberg.org/promptforge/server/internal/llm"
)

type stubResponder struct {
	reply   string
	err     error
	message string
	history []assistant.Message
}

func (s *stubResponder) Reply(_ context.Context, message string, history []assistant.Message) (string, error) {
	s.message = message
	s.history = history

	return s.reply, s.err
}

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(t *testing.T, responder assistant.Responder, body string) *httptest.ResponseRecorder {
	t.Helper()

	router := gin.New()
	RegisterRoutes(router.Group("/api"), responder)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestHandler_Success(t *testing.T) {
	responder := &stubResponder{reply: "hello there"}

	w := perform(t, responder, `{"message":"  hi  ","messages":[{"type":"user","content":"earlier"}]}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "hello there", resp.Response)

	assert.Equal(t, "hi", responder.message)
	require.Len(t, responder.history, 1)
	assert.Equal(t, "earlier", responder.history[0].Content)
}

func TestHandler_EmptyMessage(t *testing.T) {
	for _, body := range []string{`{"message":""}`, `{"message":"   "}`, `{}`} {
		w := perform(t, &stubResponder{}, body)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)

		var resp apierrors.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "Message is required", resp.Error)
	}
}

func TestHandler_MalformedJSON(t *testing.T) {
	w := perform(t, &stubResponder{}, `{"message":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_NotConfigured(t *testing.T) {
	w := perform(t, assistant.New(nil, "English"), `{"message":"hi"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, assistant.ErrNotConfigured.Error(), resp.Error)
	assert.Equal(t, apierrors.CodeNotConfigured, resp.Code)
}

func TestHandler_UpstreamFailures(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, assistant.ErrInvalidKey},
		{http.StatusTooManyRequests, assistant.ErrRateLimited},
		{http.StatusInternalServerError, assistant.ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			upstream := &llm.StatusError{StatusCode: tt.status, Body: "nope"}
			responder := &stubResponder{err: fmt.Errorf("%w: %w", tt.want, upstream)}

			w := perform(t, responder, `{"message":"hi"}`)

			require.Equal(t, http.StatusInternalServerError, w.Code)

			var resp apierrors.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.want.Error(), resp.Error)
			assert.Equal(t, apierrors.CodeUpstreamError, resp.Code)
		})
	}
}

func TestHandler_LocalResponder(t *testing.T) {
	w := perform(t, assistant.NewLocalResponder(), `{"message":"hello"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Response)
}
