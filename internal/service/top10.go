package service

import (
	"context"
	"fmt"
	"strings"
)

// Top10 asks the chat model for a top 10 list in category.
func (g *Gateway) Top10(ctx context.Context, category string) (string, error) {
	if strings.TrimSpace(category) == "" {
		return "", validationError("No category provided.")
	}

	prompt := fmt.Sprintf("Give me a top 10 list of %s.", category)
	text, err := g.up.Completer.Complete(ctx, prompt)
	if err != nil {
		return "", upstreamError("Failed to generate list.", err)
	}
	return strings.TrimSpace(text), nil
}
