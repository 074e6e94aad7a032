package history

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/promptforge/server/internal/history"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterRoutes(router.Group("/api"), history.NewMemoryStore())

	return router
}

func do(router *gin.Engine, method, body, clientID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/history", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if clientID != "" {
		req.Header.Set(history.ClientIDHeader, clientID)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestHistory_RequiresClientID(t *testing.T) {
	router := newRouter()

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
		w := do(router, method, `{}`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, method)
	}
}

func TestHistory_AddListCapClear(t *testing.T) {
	router := newRouter()

	for i := 0; i < history.MaxEntries+2; i++ {
		body := fmt.Sprintf(`{"prompt":"p%d","code":"c%d","preview":"<html>"}`, i, i)
		w := do(router, http.MethodPost, body, "me")
		require.Equal(t, http.StatusCreated, w.Code)

		var added AddResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &added))
		assert.Equal(t, fmt.Sprintf("c%d", i), added.Project.Code)
	}

	w := do(router, http.MethodGet, "", "me")
	require.Equal(t, http.StatusOK, w.Code)

	var list ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Projects, history.MaxEntries)
	assert.Equal(t, "p11", list.Projects[0].Prompt)
	assert.Equal(t, "p2", list.Projects[history.MaxEntries-1].Prompt)

	w = do(router, http.MethodDelete, "", "me")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "", "me")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list.Projects)
	assert.Contains(t, w.Body.String(), `"projects":[]`)
}

func TestHistory_RejectsEmptyCode(t *testing.T) {
	w := do(newRouter(), http.MethodPost, `{"prompt":"p","code":"  "}`, "me")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
