package upstream

import (
	"context"
	"fmt"
)

// OpenAI sends chat completion requests.
type OpenAI struct {
	client  *Client
	baseURL string
	apiKey  string
	model   string
}

// NewOpenAI creates a chat completion client for model.
func NewOpenAI(client *Client, baseURL, apiKey, model string) *OpenAI {
	return &OpenAI{client: client, baseURL: baseURL, apiKey: apiKey, model: model}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends prompt as a single user message and returns the first
// choice's content.
func (o *OpenAI) Complete(ctx context.Context, prompt string) (string, error) {
	req := chatRequest{
		Model:    o.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	}

	var resp chatResponse
	if err := o.client.postJSON(ctx, buildURL(o.baseURL, "/chat/completions", nil), bearer(o.apiKey), req, &resp); err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s: %w", o.client.Name(), ErrEmptyResponse)
	}
	return resp.Choices[0].Message.Content, nil
}
