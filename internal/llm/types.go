package llm

import "context"

// sends a single, non-streaming completion request to a remote model
type Completer interface {
	Complete(ctx context.Context, req Request) (*Response, error)
	Model() string
}

// represents a single conversation turn sent upstream
type Message struct {
	Role    string `json:"role"`    // "user" or "assistant"
	Content string `json:"content"` // message content
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// contains all inputs for one completion call
type Request struct {
	SystemPrompt string
	Messages     []Message
	MaxTokens    int
	Temperature  float32
}

// contains the reply text; Text is empty when the API returned no choices
type Response struct {
	Text  string
	Usage Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}

// holds the per-client settings
type ClientConfig struct {
	APIKey  string
	Model   string
	BaseURL string // optional, provider default when empty
}
