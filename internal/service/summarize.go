package service

import (
	"context"
	"strings"
)

// MinSummaryWords is the shortest input accepted for summarization.
const MinSummaryWords = 300

// Summarize summarizes text. Inputs shorter than MinSummaryWords words are
// rejected without calling the model.
func (g *Gateway) Summarize(ctx context.Context, text string) (string, error) {
	if len(strings.Fields(text)) < MinSummaryWords {
		return "", validationError("Text must be at least 300 words for summarization.")
	}

	summary, err := g.up.Summarizer.Summarize(ctx, text)
	if err != nil {
		return "", upstreamError("Failed to summarize text.", err)
	}
	return summary, nil
}
