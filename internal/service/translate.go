package service

import (
	"context"
)

// DefaultTargetLanguage is used when no target language is given.
const DefaultTargetLanguage = "en"

// Translate translates text into target.
func (g *Gateway) Translate(ctx context.Context, text, target string) (string, error) {
	if target == "" {
		target = DefaultTargetLanguage
	}

	translated, err := g.up.Translator.Translate(ctx, text, target)
	if err != nil {
		return "", upstreamError("Failed to translate text.", err)
	}
	return translated, nil
}
