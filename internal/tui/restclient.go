package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"codeberg.org/promptforge/server/internal/history"
)

// manages HTTP requests to the promptforge REST API
type APIClient struct {
	endpoint   string
	clientID   string
	httpClient *http.Client
}

type chatRequest struct {
	Message  string        `json:"message"`
	Messages []ChatMessage `json:"messages"`
}

type chatResponse struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

// the generate endpoint's answer
type GenerateResult struct {
	Code     string `json:"code"`
	Preview  string `json:"preview"`
	Success  bool   `json:"success"`
	Source   string `json:"source"`
	Template string `json:"template,omitempty"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

// creates a new REST client. clientID is sent so the server can keep
// its own copy of the project history.
func NewAPIClient(endpoint, clientID string) *APIClient {
	if endpoint == "" {
		endpoint = "http://localhost:8080"
	}

	return &APIClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		clientID: clientID,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// sends a chat message with the preceding conversation
func (c *APIClient) Chat(ctx context.Context, message string, conversation []ChatMessage) (string, error) {
	var resp chatResponse

	if err := c.post(ctx, "/api/chat", chatRequest{Message: message, Messages: conversation}, &resp); err != nil {
		return "", err
	}

	if !resp.Success {
		return "", errors.New("chat failed")
	}

	return resp.Response, nil
}

// asks the server for a component
func (c *APIClient) Generate(ctx context.Context, prompt string) (*GenerateResult, error) {
	var result GenerateResult

	if err := c.post(ctx, "/api/generate", generateRequest{Prompt: prompt}, &result); err != nil {
		return nil, err
	}

	if !result.Success {
		return nil, errors.New("generation failed")
	}

	return &result, nil
}

func (c *APIClient) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.clientID != "" {
		req.Header.Set(history.ClientIDHeader, c.clientID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(data, &errResp); err == nil && errResp.Error != "" {
			return errors.New(errResp.Error)
		}

		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

// returns a tea.Cmd that sends a chat request
func (c *APIClient) ChatCmd(message string, conversation []ChatMessage) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		reply, err := c.Chat(ctx, message, conversation)
		if err != nil {
			return requestErrorMsg{err: err}
		}

		return chatReplyMsg{reply: reply}
	}
}

// returns a tea.Cmd that generates a component, writes its preview to
// previewDir and records it in store
func (c *APIClient) GenerateCmd(prompt string, store history.Store, previewDir string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		result, err := c.Generate(ctx, prompt)
		if err != nil {
			return requestErrorMsg{err: err}
		}

		msg := generateReplyMsg{result: result}

		msg.previewPath, msg.saveErr = savePreview(previewDir, result.Preview)

		if store != nil {
			if err := store.Add(ctx, localOwner, history.Entry{
				Prompt:  prompt,
				Code:    result.Code,
				Preview: result.Preview,
			}); err != nil && msg.saveErr == nil {
				msg.saveErr = err
			}
		}

		return msg
	}
}
