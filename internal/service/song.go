package service

import (
	"context"
)

const noSongMessage = "No results found."

// Song is a single track recommendation.
type Song struct {
	URL    string
	Name   string
	Artist string
}

// FindSong returns the first track matching vibe.
func (g *Gateway) FindSong(ctx context.Context, vibe string) (*Song, error) {
	tracks, err := g.up.Tracks.SearchTracks(ctx, vibe, 1)
	if err != nil {
		return nil, upstreamError(noSongMessage, err)
	}
	if len(tracks) == 0 {
		return nil, notFoundError(noSongMessage)
	}

	t := tracks[0]
	return &Song{URL: t.URL, Name: t.Name, Artist: t.Artist}, nil
}
