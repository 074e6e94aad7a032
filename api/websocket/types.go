package websocket

import "time"

const (
	// time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// time allowed for the client to send its deploy request
	requestWait = 30 * time.Second

	maxMessageSize = 64 * 1024
)

// event types sent on the deploy stream
const (
	EventStep     = "step"
	EventComplete = "complete"
	EventError    = "error"
)

// first and only message a client sends
type DeployRequest struct {
	ProjectName string `json:"projectName"`
	GitHubURL   string `json:"githubUrl"`
}

type Event struct {
	Type          string   `json:"type"`
	Step          string   `json:"step,omitempty"`
	DeploymentURL string   `json:"deploymentUrl,omitempty"`
	Steps         []string `json:"steps,omitempty"`
	Error         string   `json:"error,omitempty"`
}
