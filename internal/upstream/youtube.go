package upstream

import (
	"context"
	"net/url"
	"strconv"
)

// Video is a video search hit.
type Video struct {
	ID        string
	Title     string
	Thumbnail string
}

// WatchURL returns the public watch page of the video.
func (v Video) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + v.ID
}

// YouTube searches videos.
type YouTube struct {
	client  *Client
	baseURL string
	apiKey  string
}

// NewYouTube creates a video search client.
func NewYouTube(client *Client, baseURL, apiKey string) *YouTube {
	return &YouTube{client: client, baseURL: baseURL, apiKey: apiKey}
}

type youtubeThumbnail struct {
	URL string `json:"url"`
}

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title      string `json:"title"`
			Thumbnails struct {
				Default youtubeThumbnail `json:"default"`
				Medium  youtubeThumbnail `json:"medium"`
				High    youtubeThumbnail `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// SearchVideos returns up to maxResults videos matching query.
func (y *YouTube) SearchVideos(ctx context.Context, query string, maxResults int) ([]Video, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("key", y.apiKey)

	var resp youtubeSearchResponse
	if err := y.client.getJSON(ctx, buildURL(y.baseURL, "/search", params), nil, &resp); err != nil {
		return nil, err
	}

	videos := make([]Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		thumb := item.Snippet.Thumbnails.High.URL
		if thumb == "" {
			thumb = item.Snippet.Thumbnails.Medium.URL
		}
		if thumb == "" {
			thumb = item.Snippet.Thumbnails.Default.URL
		}
		videos = append(videos, Video{
			ID:        item.ID.VideoID,
			Title:     item.Snippet.Title,
			Thumbnail: thumb,
		})
	}
	return videos, nil
}
