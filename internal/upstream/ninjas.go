package upstream

import (
	"context"
	"net/http"
	"net/url"
)

// Exercise is an exercise lookup result, passed through as returned.
type Exercise struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Muscle       string `json:"muscle"`
	Equipment    string `json:"equipment"`
	Difficulty   string `json:"difficulty"`
	Instructions string `json:"instructions"`
}

// Ninjas looks up exercises by muscle group.
type Ninjas struct {
	client  *Client
	baseURL string
	apiKey  string
}

// NewNinjas creates an exercise lookup client.
func NewNinjas(client *Client, baseURL, apiKey string) *Ninjas {
	return &Ninjas{client: client, baseURL: baseURL, apiKey: apiKey}
}

// Exercises lists exercises for a muscle group.
func (n *Ninjas) Exercises(ctx context.Context, muscle string) ([]Exercise, error) {
	params := url.Values{}
	params.Set("muscle", muscle)

	var exercises []Exercise
	header := http.Header{"X-Api-Key": {n.apiKey}}
	if err := n.client.getJSON(ctx, buildURL(n.baseURL, "/exercises", params), header, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}
