package assistant

import (
	"context"
	"errors"

	"codeberg.org/promptforge/server/internal/llm"
)

const (
	// prior messages forwarded upstream with each chat request
	maxHistoryMessages = 3

	chatMaxTokens   = 500
	chatTemperature = 0.7

	// returned when the API answers without any choice content
	NoReplyPlaceholder = "could not get a reply from OpenAI"
)

// user-facing chat failures. the message text is what the chat client shows.
var (
	ErrNotConfigured = errors.New("OpenAI API key is not configured")
	ErrInvalidKey    = errors.New("OpenAI API key is invalid")
	ErrRateLimited   = errors.New("OpenAI API rate limit exceeded")
	ErrUpstream      = errors.New("OpenAI server error")
	ErrAPI           = errors.New("OpenAI API error")
	ErrInvalidReply  = errors.New("invalid response from OpenAI API")
)

// answers a chat message given the prior conversation
type Responder interface {
	Reply(ctx context.Context, message string, history []Message) (string, error)
}

// one prior chat turn as sent by the client. older clients send the
// speaker in "type" instead of "role".
type Message struct {
	Role    string `json:"role,omitempty"`
	Type    string `json:"type,omitempty"`
	Content string `json:"content"`
}

// returns the upstream role for the message
func (m Message) UpstreamRole() string {
	if m.Role == llm.RoleUser || m.Type == llm.RoleUser {
		return llm.RoleUser
	}

	return llm.RoleAssistant
}

// answers chat messages through a remote model
type Service struct {
	completer llm.Completer
	language  string
}
