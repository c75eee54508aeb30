package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/dailyhub/dailyhub/internal/upstream"
)

type fakeSummarizer struct {
	summary string
	err     error
	calls   atomic.Int32
}

func (f *fakeSummarizer) Summarize(context.Context, string) (string, error) {
	f.calls.Add(1)
	return f.summary, f.err
}

type fakeTracks struct {
	tracks []upstream.Track
	err    error
}

func (f *fakeTracks) SearchTracks(context.Context, string, int) ([]upstream.Track, error) {
	return f.tracks, f.err
}

type fakeVideos struct {
	videos    []upstream.Video
	err       error
	lastQuery string
	lastMax   int
}

func (f *fakeVideos) SearchVideos(_ context.Context, query string, maxResults int) ([]upstream.Video, error) {
	f.lastQuery = query
	f.lastMax = maxResults
	return f.videos, f.err
}

type fakeSpeech struct {
	audio []byte
	err   error
}

func (f *fakeSpeech) Synthesize(context.Context, string) ([]byte, error) {
	return f.audio, f.err
}

type fakePlaces struct {
	geocode     *upstream.Geocode
	geocodeErr  error
	places      []upstream.Place
	nearbyErr   error
	nearbyCalls int
	lastRadius  int
}

func (f *fakePlaces) Geocode(context.Context, string) (*upstream.Geocode, error) {
	return f.geocode, f.geocodeErr
}

func (f *fakePlaces) NearbySearch(_ context.Context, _ upstream.LatLng, radius int, _ string) ([]upstream.Place, error) {
	f.nearbyCalls++
	f.lastRadius = radius
	return f.places, f.nearbyErr
}

type fakeExercises struct {
	exercises []upstream.Exercise
	err       error
}

func (f *fakeExercises) Exercises(context.Context, string) ([]upstream.Exercise, error) {
	return f.exercises, f.err
}

type fakeFoods struct {
	foods []upstream.Food
	err   error
}

func (f *fakeFoods) SearchFoods(context.Context, string, int) ([]upstream.Food, error) {
	return f.foods, f.err
}

type fakeCompleter struct {
	text       string
	err        error
	lastPrompt string
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.text, f.err
}

// fakeStocks serves quotes from a map. Symbols missing from quotes answer
// with quoteErr when set, or a 404 status error.
type fakeStocks struct {
	symbols    []upstream.Symbol
	symbolsErr error
	quotes     map[string]upstream.Quote
	quoteErr   map[string]error

	mu     sync.Mutex
	quoted []string
}

func (f *fakeStocks) Symbols(context.Context, string) ([]upstream.Symbol, error) {
	return f.symbols, f.symbolsErr
}

func (f *fakeStocks) Quote(_ context.Context, symbol string) (*upstream.Quote, error) {
	f.mu.Lock()
	f.quoted = append(f.quoted, symbol)
	f.mu.Unlock()

	if err, ok := f.quoteErr[symbol]; ok {
		return nil, err
	}
	q, ok := f.quotes[symbol]
	if !ok {
		return nil, &upstream.StatusError{Upstream: "finnhub", StatusCode: 404}
	}
	return &q, nil
}

type fakeTranslator struct {
	text       string
	err        error
	lastTarget string
}

func (f *fakeTranslator) Translate(_ context.Context, _ string, target string) (string, error) {
	f.lastTarget = target
	return f.text, f.err
}
