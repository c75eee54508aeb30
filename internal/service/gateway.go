// Package service implements the gateway routes: each validates its input,
// calls one upstream API and reshapes the result.
package service

import (
	"context"

	"github.com/dailyhub/dailyhub/internal/metrics"
	"github.com/dailyhub/dailyhub/internal/upstream"
)

// Upstream capabilities used by the routes. The concrete clients live in
// the upstream package.
type (
	Summarizer interface {
		Summarize(ctx context.Context, text string) (string, error)
	}
	TrackSearcher interface {
		SearchTracks(ctx context.Context, query string, limit int) ([]upstream.Track, error)
	}
	VideoSearcher interface {
		SearchVideos(ctx context.Context, query string, maxResults int) ([]upstream.Video, error)
	}
	SpeechSynthesizer interface {
		Synthesize(ctx context.Context, text string) ([]byte, error)
	}
	PlaceFinder interface {
		Geocode(ctx context.Context, address string) (*upstream.Geocode, error)
		NearbySearch(ctx context.Context, loc upstream.LatLng, radius int, keyword string) ([]upstream.Place, error)
	}
	ExerciseFinder interface {
		Exercises(ctx context.Context, muscle string) ([]upstream.Exercise, error)
	}
	FoodSearcher interface {
		SearchFoods(ctx context.Context, query string, pageSize int) ([]upstream.Food, error)
	}
	Completer interface {
		Complete(ctx context.Context, prompt string) (string, error)
	}
	StockQuoter interface {
		Symbols(ctx context.Context, exchange string) ([]upstream.Symbol, error)
		Quote(ctx context.Context, symbol string) (*upstream.Quote, error)
	}
	Translator interface {
		Translate(ctx context.Context, text, target string) (string, error)
	}
)

// Upstreams bundles the clients the gateway forwards to.
type Upstreams struct {
	Summarizer Summarizer
	Tracks     TrackSearcher
	Videos     VideoSearcher
	Speech     SpeechSynthesizer
	Places     PlaceFinder
	Exercises  ExerciseFinder
	Foods      FoodSearcher
	Completer  Completer
	Stocks     StockQuoter
	Translator Translator
}

// Nutrient lookup modes.
const (
	NutrientsByPosition = "positional"
	NutrientsByName     = "name"
)

// Settings tunes route behavior. Zero values take defaults.
type Settings struct {
	StockConcurrency int
	StockSymbolLimit int
	NutrientLookup   string
}

func (s Settings) withDefaults() Settings {
	if s.StockConcurrency < 1 {
		s.StockConcurrency = 8
	}
	if s.StockSymbolLimit < 1 {
		s.StockSymbolLimit = 50
	}
	if s.NutrientLookup == "" {
		s.NutrientLookup = NutrientsByPosition
	}
	return s
}

// Gateway implements every route.
type Gateway struct {
	up       Upstreams
	settings Settings
	metrics  metrics.Recorder
}

// NewGateway creates a Gateway.
func NewGateway(up Upstreams, settings Settings, recorder metrics.Recorder) *Gateway {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Gateway{
		up:       up,
		settings: settings.withDefaults(),
		metrics:  recorder,
	}
}
