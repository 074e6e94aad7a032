package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gorilla/websocket"
)

const (
	deployEventStep     = "step"
	deployEventComplete = "complete"
	deployEventError    = "error"
)

// one message from the deploy stream
type DeployEvent struct {
	Type          string   `json:"type"`
	Step          string   `json:"step,omitempty"`
	DeploymentURL string   `json:"deploymentUrl,omitempty"`
	Steps         []string `json:"steps,omitempty"`
	Error         string   `json:"error,omitempty"`
}

type deployStreamRequest struct {
	ProjectName string `json:"projectName"`
}

func (c *APIClient) websocketURL(path string) string {
	switch {
	case strings.HasPrefix(c.endpoint, "https://"):
		return "wss://" + strings.TrimPrefix(c.endpoint, "https://") + path
	case strings.HasPrefix(c.endpoint, "http://"):
		return "ws://" + strings.TrimPrefix(c.endpoint, "http://") + path
	default:
		return c.endpoint + path
	}
}

// starts a streamed deployment. events arrive on the returned channel,
// which is closed after the final complete or error event. ctx bounds the
// dial only; the stream itself is bounded by deployTimeout.
func (c *APIClient) DeployStream(ctx context.Context, projectName string) (<-chan DeployEvent, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.websocketURL("/api/deploy/stream"), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	conn.SetWriteDeadline(time.Now().Add(10 * time.Second)) //nolint:errcheck,gosec // G104: websocket timing
	if err := conn.WriteJSON(deployStreamRequest{ProjectName: projectName}); err != nil {
		conn.Close() //nolint:errcheck,gosec
		return nil, fmt.Errorf("failed to send deploy request: %w", err)
	}

	events := make(chan DeployEvent, 8)

	go func() {
		defer close(events)
		defer conn.Close() //nolint:errcheck

		conn.SetReadDeadline(time.Now().Add(deployTimeout)) //nolint:errcheck,gosec // G104: websocket timing

		for {
			var event DeployEvent
			if err := conn.ReadJSON(&event); err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
					events <- DeployEvent{Type: deployEventError, Error: fmt.Sprintf("connection lost: %v", err)}
				}
				return
			}

			events <- event

			if event.Type == deployEventComplete || event.Type == deployEventError {
				return
			}
		}
	}()

	return events, nil
}

// returns a tea.Cmd that starts a deploy and yields its first event
func (c *APIClient) DeployCmd(projectName string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		events, err := c.DeployStream(ctx, projectName)
		if err != nil {
			return requestErrorMsg{err: err}
		}

		return waitForDeployEvent(events)()
	}
}

// waits for the next event of a running deploy
func waitForDeployEvent(events <-chan DeployEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return deployClosedMsg{}
		}

		return deployEventMsg{event: event, events: events}
	}
}
