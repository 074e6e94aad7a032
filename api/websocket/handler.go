package websocket

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"codeberg.org/promptforge/server/internal/deploy"
	"codeberg.org/promptforge/server/internal/logger"
)

type Deployer interface {
	Deploy(ctx context.Context, req deploy.Request, onStep func(step string)) (*deploy.Deployment, error)
}

// allows any origin when the list contains "*" or no origin header is sent
func CheckOrigin(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || slices.Contains(allowed, "*") {
			return true
		}

		if slices.Contains(allowed, origin) {
			return true
		}

		logger.Warn("websocket origin rejected", "origin", origin)
		return false
	}
}

// streams deployment progress. the client sends one DeployRequest and
// receives a step event per stage followed by complete or error.
func DeployStreamHandler(deployer Deployer, allowedOrigins []string) gin.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     CheckOrigin(allowedOrigins),
	}

	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// the upgrader already wrote the http error
			logger.Warn("websocket upgrade failed", "error", err)
			return
		}
		defer conn.Close()

		log := logger.FromContext(c.Request.Context())

		conn.SetReadLimit(maxMessageSize)
		conn.SetReadDeadline(time.Now().Add(requestWait)) //nolint:errcheck,gosec // G104: websocket setup

		var req DeployRequest
		if err := conn.ReadJSON(&req); err != nil {
			log.Debug("invalid deploy stream request", "error", err)
			send(conn, Event{Type: EventError, Error: "invalid deploy request"})
			return
		}

		conn.SetReadDeadline(time.Time{}) //nolint:errcheck,gosec // G104: no deadline while deploying

		// a disconnect or close frame from the client cancels the deploy
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go func() {
			defer cancel()

			for {
				if _, _, err := conn.NextReader(); err != nil {
					return
				}
			}
		}()

		result, err := deployer.Deploy(ctx, deploy.Request{
			ProjectName: req.ProjectName,
			GitHubURL:   req.GitHubURL,
		}, func(step string) {
			send(conn, Event{Type: EventStep, Step: step})
		})
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				log.Warn("streamed deploy failed", "error", err, "project", req.ProjectName)
			}

			message := "Deployment failed. Please try again."
			if errors.Is(err, deploy.ErrInvalidProjectName) {
				message = "Project name is required"
			}

			send(conn, Event{Type: EventError, Error: message})
			return
		}

		send(conn, Event{
			Type:          EventComplete,
			DeploymentURL: result.URL,
			Steps:         result.Steps,
		})

		conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck,gosec // G104: close timing
		conn.WriteMessage(websocket.CloseMessage, //nolint:errcheck,gosec // best-effort close
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"))
	}
}

func send(conn *websocket.Conn, event Event) {
	conn.SetWriteDeadline(time.Now().Add(writeWait)) //nolint:errcheck,gosec // G104: websocket timing

	if err := conn.WriteJSON(event); err != nil {
		logger.Debug("failed to write deploy event", "error", err, "type", event.Type)
	}
}
