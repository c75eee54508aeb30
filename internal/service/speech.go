package service

import (
	"context"
	"encoding/base64"
	"strings"
)

// TextToSpeech synthesizes text and returns the MP3 audio base64-encoded.
func (g *Gateway) TextToSpeech(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", validationError("No text provided.")
	}

	audio, err := g.up.Speech.Synthesize(ctx, text)
	if err != nil {
		return "", upstreamError("Failed to synthesize speech.", err)
	}
	return base64.StdEncoding.EncodeToString(audio), nil
}
