package llm

import (
	"context"
	"net/http"
	"strings"
)

const (
	defaultAnthropicBaseURL = "https://api.anthropic.com"
	anthropicVersion        = "2023-06-01"
	defaultMaxTokens        = 1024
)

type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	System      string    `json:"system,omitempty"`
	Messages    []Message `json:"messages"`
	Temperature float32   `json:"temperature"`
}

type messagesResponse struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Model string `json:"model"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// calls the Anthropic messages endpoint
type AnthropicClient struct {
	config     ClientConfig
	httpClient *http.Client
}

func NewAnthropicClient(config ClientConfig) *AnthropicClient {
	if config.BaseURL == "" {
		config.BaseURL = defaultAnthropicBaseURL
	}

	return &AnthropicClient{
		config:     config,
		httpClient: sharedHTTPClient,
	}
}

func (c *AnthropicClient) WithHTTPClient(httpClient *http.Client) *AnthropicClient {
	c.httpClient = httpClient
	return c
}

func (c *AnthropicClient) Model() string {
	return c.config.Model
}

func (c *AnthropicClient) Complete(ctx context.Context, req Request) (*Response, error) {
	// max_tokens is mandatory for this API
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	body, err := postJSON(ctx, c.httpClient, c.config.BaseURL+"/v1/messages", map[string]string{
		"x-api-key":         c.config.APIKey,
		"anthropic-version": anthropicVersion,
	}, messagesRequest{
		Model:       c.config.Model,
		MaxTokens:   maxTokens,
		System:      req.SystemPrompt,
		Messages:    req.Messages,
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, err
	}

	var apiResp messagesResponse
	if err := decodeBody(body, &apiResp); err != nil {
		return nil, err
	}

	var text strings.Builder
	for _, block := range apiResp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	return &Response{
		Text: text.String(),
		Usage: Usage{
			InputTokens:  apiResp.Usage.InputTokens,
			OutputTokens: apiResp.Usage.OutputTokens,
		},
	}, nil
}
