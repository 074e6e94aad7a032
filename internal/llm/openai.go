package llm

import (
	"context"
	"net/http"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float32   `json:"temperature"`
}

type chatCompletionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

// calls the OpenAI chat completions endpoint
type OpenAIClient struct {
	config     ClientConfig
	httpClient *http.Client
}

func NewOpenAIClient(config ClientConfig) *OpenAIClient {
	if config.BaseURL == "" {
		config.BaseURL = defaultOpenAIBaseURL
	}

	return &OpenAIClient{
		config:     config,
		httpClient: sharedHTTPClient,
	}
}

// swaps the HTTP client, mainly for tests
func (c *OpenAIClient) WithHTTPClient(httpClient *http.Client) *OpenAIClient {
	c.httpClient = httpClient
	return c
}

func (c *OpenAIClient) Model() string {
	return c.config.Model
}

func (c *OpenAIClient) Complete(ctx context.Context, req Request) (*Response, error) {
	messages := make([]Message, 0, len(req.Messages)+1)

	if req.SystemPrompt != "" {
		messages = append(messages, Message{Role: RoleSystem, Content: req.SystemPrompt})
	}

	messages = append(messages, req.Messages...)

	body, err := postJSON(ctx, c.httpClient, c.config.BaseURL+"/chat/completions", map[string]string{
		"Authorization": "Bearer " + c.config.APIKey,
	}, chatCompletionRequest{
		Model:       c.config.Model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, err
	}

	var apiResp chatCompletionResponse
	if err := decodeBody(body, &apiResp); err != nil {
		return nil, err
	}

	resp := &Response{
		Usage: Usage{
			InputTokens:  apiResp.Usage.PromptTokens,
			OutputTokens: apiResp.Usage.CompletionTokens,
		},
	}

	if len(apiResp.Choices) > 0 {
		resp.Text = apiResp.Choices[0].Message.Content
	}

	return resp, nil
}
