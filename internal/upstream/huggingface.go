package upstream

import (
	"context"
	"fmt"
)

// HuggingFace calls a hosted summarization model.
type HuggingFace struct {
	client   *Client
	modelURL string
	token    string
}

// NewHuggingFace creates a summarization client for the model at modelURL.
func NewHuggingFace(client *Client, modelURL, token string) *HuggingFace {
	return &HuggingFace{client: client, modelURL: modelURL, token: token}
}

type summarizeRequest struct {
	Inputs  string           `json:"inputs"`
	Options summarizeOptions `json:"options"`
}

type summarizeOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type summarizeResult struct {
	SummaryText string `json:"summary_text"`
}

// Summarize returns the summary text of the first model result.
func (h *HuggingFace) Summarize(ctx context.Context, text string) (string, error) {
	payload := summarizeRequest{
		Inputs:  text,
		Options: summarizeOptions{WaitForModel: true},
	}

	var results []summarizeResult
	if err := h.client.postJSON(ctx, h.modelURL, bearer(h.token), payload, &results); err != nil {
		return "", err
	}

	if len(results) == 0 {
		return "", fmt.Errorf("%s: %w", h.client.Name(), ErrEmptyResponse)
	}
	return results[0].SummaryText, nil
}
