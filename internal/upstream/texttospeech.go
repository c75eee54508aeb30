package upstream

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
)

// Voice settings used for every synthesis request.
const (
	voiceLanguage = "en-US"
	voiceGender   = "NEUTRAL"
	audioEncoding = "MP3"
)

// TextToSpeech synthesizes speech audio.
type TextToSpeech struct {
	client  *Client
	baseURL string
	apiKey  string
}

// NewTextToSpeech creates a speech synthesis client.
func NewTextToSpeech(client *Client, baseURL, apiKey string) *TextToSpeech {
	return &TextToSpeech{client: client, baseURL: baseURL, apiKey: apiKey}
}

type synthesizeRequest struct {
	Input struct {
		Text string `json:"text"`
	} `json:"input"`
	Voice struct {
		LanguageCode string `json:"languageCode"`
		SSMLGender   string `json:"ssmlGender"`
	} `json:"voice"`
	AudioConfig struct {
		AudioEncoding string `json:"audioEncoding"`
	} `json:"audioConfig"`
}

type synthesizeResponse struct {
	AudioContent string `json:"audioContent"`
}

// Synthesize returns MP3 audio bytes for text in an English neutral voice.
func (t *TextToSpeech) Synthesize(ctx context.Context, text string) ([]byte, error) {
	var req synthesizeRequest
	req.Input.Text = text
	req.Voice.LanguageCode = voiceLanguage
	req.Voice.SSMLGender = voiceGender
	req.AudioConfig.AudioEncoding = audioEncoding

	params := url.Values{}
	params.Set("key", t.apiKey)

	var resp synthesizeResponse
	if err := t.client.postJSON(ctx, buildURL(t.baseURL, "/text:synthesize", params), nil, req, &resp); err != nil {
		return nil, err
	}

	if resp.AudioContent == "" {
		return nil, fmt.Errorf("%s: %w", t.client.Name(), ErrEmptyResponse)
	}

	audio, err := base64.StdEncoding.DecodeString(resp.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: audio content: %v", t.client.Name(), ErrDecode, err)
	}
	return audio, nil
}
