package upstream

import (
	"context"
	"net/url"
	"strconv"

	"github.com/dailyhub/dailyhub/internal/credential"
)

// Track is a music search hit.
type Track struct {
	Name   string
	URL    string
	Artist string
}

// Spotify searches the music catalog using a cached bearer credential.
type Spotify struct {
	client  *Client
	baseURL string
	tokens  credential.Provider
}

// NewSpotify creates a music search client.
func NewSpotify(client *Client, baseURL string, tokens credential.Provider) *Spotify {
	return &Spotify{client: client, baseURL: baseURL, tokens: tokens}
}

type spotifySearchResponse struct {
	Tracks struct {
		Items []struct {
			Name         string `json:"name"`
			ExternalURLs struct {
				Spotify string `json:"spotify"`
			} `json:"external_urls"`
			Artists []struct {
				Name string `json:"name"`
			} `json:"artists"`
		} `json:"items"`
	} `json:"tracks"`
}

// SearchTracks returns up to limit tracks matching query.
func (s *Spotify) SearchTracks(ctx context.Context, query string, limit int) ([]Track, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("type", "track")
	params.Set("limit", strconv.Itoa(limit))

	var resp spotifySearchResponse
	if err := s.client.getJSON(ctx, buildURL(s.baseURL, "/search", params), bearer(token), &resp); err != nil {
		return nil, err
	}

	tracks := make([]Track, 0, len(resp.Tracks.Items))
	for _, item := range resp.Tracks.Items {
		track := Track{Name: item.Name, URL: item.ExternalURLs.Spotify}
		if len(item.Artists) > 0 {
			track.Artist = item.Artists[0].Name
		}
		tracks = append(tracks, track)
	}
	return tracks, nil
}
