package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/promptforge/server/internal/deploy"
)

func dial(t *testing.T) *websocket.Conn {
	t.Helper()

	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterRoutes(router.Group("/api"), deploy.NewSimulator(0), []string{"*"})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/deploy/stream"

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestDeployStream_StepsThenComplete(t *testing.T) {
	conn := dial(t)

	require.NoError(t, conn.WriteJSON(DeployRequest{ProjectName: "My App"}))

	var steps []string
	for range deploy.Steps {
		var event Event
		require.NoError(t, conn.ReadJSON(&event))
		require.Equal(t, EventStep, event.Type)
		steps = append(steps, event.Step)
	}

	assert.Equal(t, deploy.Steps, steps)

	var done Event
	require.NoError(t, conn.ReadJSON(&done))
	assert.Equal(t, EventComplete, done.Type)
	assert.True(t, strings.HasPrefix(done.DeploymentURL, "https://my-app-"))
}

func TestDeployStream_InvalidProject(t *testing.T) {
	conn := dial(t)

	require.NoError(t, conn.WriteJSON(DeployRequest{}))

	var event Event
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, EventError, event.Type)
	assert.Equal(t, "Project name is required", event.Error)
}

func TestCheckOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://app.example.com")

	assert.True(t, CheckOrigin([]string{"*"})(req))
	assert.True(t, CheckOrigin([]string{"https://app.example.com"})(req))
	assert.False(t, CheckOrigin([]string{"https://other.example.com"})(req))

	assert.True(t, CheckOrigin(nil)(httptest.NewRequest(http.MethodGet, "/", nil)))
}
