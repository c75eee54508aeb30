package upstream

import (
	"context"
	"fmt"
	"net/url"
)

// Translate translates text.
type Translate struct {
	client  *Client
	baseURL string
	apiKey  string
}

// NewTranslate creates a translation client.
func NewTranslate(client *Client, baseURL, apiKey string) *Translate {
	return &Translate{client: client, baseURL: baseURL, apiKey: apiKey}
}

type translateRequest struct {
	Q      string `json:"q"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// Translate translates text into the target language code.
func (t *Translate) Translate(ctx context.Context, text, target string) (string, error) {
	params := url.Values{}
	params.Set("key", t.apiKey)

	req := translateRequest{Q: text, Target: target, Format: "text"}

	var resp translateResponse
	if err := t.client.postJSON(ctx, buildURL(t.baseURL, "", params), nil, req, &resp); err != nil {
		return "", err
	}

	if len(resp.Data.Translations) == 0 {
		return "", fmt.Errorf("%s: %w", t.client.Name(), ErrEmptyResponse)
	}
	return resp.Data.Translations[0].TranslatedText, nil
}
