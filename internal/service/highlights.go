package service

import (
	"context"
)

const maxHighlights = 5

// Highlight is a video clip.
type Highlight struct {
	Title     string
	Thumbnail string
	VideoURL  string
}

// SportsHighlights searches highlight videos for query.
func (g *Gateway) SportsHighlights(ctx context.Context, query string) ([]Highlight, error) {
	videos, err := g.up.Videos.SearchVideos(ctx, query+" highlights", maxHighlights)
	if err != nil {
		return nil, upstreamError("Failed to fetch highlights.", err)
	}

	highlights := make([]Highlight, 0, len(videos))
	for _, v := range videos {
		highlights = append(highlights, Highlight{
			Title:     v.Title,
			Thumbnail: v.Thumbnail,
			VideoURL:  v.WatchURL(),
		})
	}
	return highlights, nil
}
