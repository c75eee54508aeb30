// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"github.com/dailyhub/dailyhub/internal/service"
	"github.com/dailyhub/dailyhub/internal/upstream"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HighlightsRequest is the body of POST /get_sports_highlights.
type HighlightsRequest struct {
	Query string `json:"query"`
}

// SpeechRequest is the body of POST /text-to-speech.
type SpeechRequest struct {
	Text string `json:"text" validate:"notblank"`
}

// PlacesRequest is the body of POST /get_places_by_city.
type PlacesRequest struct {
	City    string `json:"city"`
	Keyword string `json:"keyword"`
}

// WorkoutRequest is the body of POST /get_workout.
type WorkoutRequest struct {
	Muscle string `json:"muscle" validate:"notblank"`
}

// CaloriesRequest is the body of POST /get_calories.
type CaloriesRequest struct {
	Food string `json:"food" validate:"notblank"`
}

// Top10Request is the body of POST /top10.
type Top10Request struct {
	Category string `json:"category" validate:"notblank"`
}

// TranslateRequest is the body of POST /translate.
type TranslateRequest struct {
	Text   string `json:"text"`
	Target string `json:"target" validate:"omitempty,max=16"`
}

// SummaryResponse is returned by POST /summarize.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// SongResponse is returned by POST /get_song.
type SongResponse struct {
	URL    string `json:"url"`
	Name   string `json:"name"`
	Artist string `json:"artist"`
}

// HighlightResponse is one element of the POST /get_sports_highlights array.
type HighlightResponse struct {
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	VideoURL  string `json:"videoUrl"`
}

// SpeechResponse is returned by POST /text-to-speech.
type SpeechResponse struct {
	Audio string `json:"audio"`
}

// Location is a coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PlaceResponse is one element of the POST /get_places_by_city array.
type PlaceResponse struct {
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Rating   *float64 `json:"rating"`
	Location Location `json:"location"`
}

// CaloriesResponse is returned by POST /get_calories.
type CaloriesResponse struct {
	Name          string  `json:"name"`
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
}

// Top10Response is returned by POST /top10.
type Top10Response struct {
	Top10 string `json:"top10"`
}

// StockResponse is one gainer or loser.
type StockResponse struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"change_percent"`
}

// TopStocksResponse is returned by GET /top_stocks.
type TopStocksResponse struct {
	Gainers []StockResponse `json:"gainers"`
	Losers  []StockResponse `json:"losers"`
}

// TranslateResponse is returned by POST /translate.
type TranslateResponse struct {
	TranslatedText string `json:"translated_text"`
}

// ToSongResponse converts a service song.
func ToSongResponse(s *service.Song) *SongResponse {
	return &SongResponse{URL: s.URL, Name: s.Name, Artist: s.Artist}
}

// ToHighlightResponses converts service highlights. The result is never nil.
func ToHighlightResponses(highlights []service.Highlight) []HighlightResponse {
	out := make([]HighlightResponse, len(highlights))
	for i, h := range highlights {
		out[i] = HighlightResponse{Title: h.Title, Thumbnail: h.Thumbnail, VideoURL: h.VideoURL}
	}
	return out
}

// ToPlaceResponses converts service places. The result is never nil.
func ToPlaceResponses(places []service.Place) []PlaceResponse {
	out := make([]PlaceResponse, len(places))
	for i, p := range places {
		out[i] = PlaceResponse{
			Name:     p.Name,
			Address:  p.Address,
			Rating:   p.Rating,
			Location: Location{Lat: p.Location.Lat, Lng: p.Location.Lng},
		}
	}
	return out
}

// ToExerciseResponses returns exercises as passed through from upstream.
// The result is never nil.
func ToExerciseResponses(exercises []upstream.Exercise) []upstream.Exercise {
	if exercises == nil {
		return []upstream.Exercise{}
	}
	return exercises
}

// ToCaloriesResponse converts a service nutrition breakdown.
func ToCaloriesResponse(n *service.Nutrition) *CaloriesResponse {
	return &CaloriesResponse{
		Name:          n.Name,
		Calories:      n.Calories,
		Protein:       n.Protein,
		Carbohydrates: n.Carbohydrates,
		Fat:           n.Fat,
	}
}

// ToTopStocksResponse converts service movers.
func ToTopStocksResponse(m *service.Movers) *TopStocksResponse {
	return &TopStocksResponse{
		Gainers: toStockResponses(m.Gainers),
		Losers:  toStockResponses(m.Losers),
	}
}

func toStockResponses(moves []service.StockMove) []StockResponse {
	out := make([]StockResponse, len(moves))
	for i, m := range moves {
		out[i] = StockResponse{Symbol: m.Symbol, Price: m.Price, ChangePercent: m.ChangePercent}
	}
	return out
}
