package chat

import "codeberg.org/promptforge/server/internal/assistant"

// request body for a chat turn. messages carries the recent conversation,
// of which only the tail is forwarded upstream.
type Request struct {
	Message  string              `json:"message"`
	Messages []assistant.Message `json:"messages"`
}

type Response struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
}
