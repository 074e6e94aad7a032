package assistant

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"codeberg.org/promptforge/server/internal/llm"
)

func New(completer llm.Completer, language string) *Service {
	return &Service{
		completer: completer,
		language:  language,
	}
}

func (s *Service) Reply(ctx context.Context, message string, history []Message) (string, error) {
	if s.completer == nil {
		return "", ErrNotConfigured
	}

	resp, err := s.completer.Complete(ctx, llm.Request{
		SystemPrompt: buildSystemPrompt(s.language),
		Messages:     buildMessages(message, history),
		MaxTokens:    chatMaxTokens,
		Temperature:  chatTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", classify(err), err)
	}

	reply := strings.TrimSpace(resp.Text)
	if reply == "" {
		return NoReplyPlaceholder, nil
	}

	return reply, nil
}

// keeps the last few turns, drops empty ones and appends the new message
func buildMessages(message string, history []Message) []llm.Message {
	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}

	messages := make([]llm.Message, 0, len(history)+1)

	for _, msg := range history {
		if strings.TrimSpace(msg.Content) == "" {
			continue
		}

		messages = append(messages, llm.Message{
			Role:    msg.UpstreamRole(),
			Content: msg.Content,
		})
	}

	return append(messages, llm.Message{Role: llm.RoleUser, Content: message})
}

// maps a completion error to one of the user-facing chat errors
func classify(err error) error {
	if code, ok := llm.StatusCode(err); ok {
		switch code {
		case http.StatusUnauthorized:
			return ErrInvalidKey
		case http.StatusTooManyRequests:
			return ErrRateLimited
		case http.StatusInternalServerError:
			return ErrUpstream
		default:
			return ErrAPI
		}
	}

	if errors.Is(err, llm.ErrEmptyResponse) || errors.Is(err, llm.ErrInvalidResponse) {
		return ErrInvalidReply
	}

	return ErrAPI
}

// returns the message the chat client should display for err
func UserMessage(err error) string {
	for _, known := range []error{
		ErrNotConfigured, ErrInvalidKey, ErrRateLimited,
		ErrUpstream, ErrInvalidReply, ErrAPI,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return "chat failed, please try again"
}
