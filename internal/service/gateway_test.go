package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dailyhub/dailyhub/internal/upstream"
)

var errBoom = errors.New("boom")

func assertKind(t *testing.T, err error, want Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", want)
	}
	if got := KindOf(err); got != want {
		t.Fatalf("expected kind %s, got %s (%v)", want, got, err)
	}
}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	wrapped := errors.Join(errBoom, upstreamError("failed", errBoom))
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"plain", errBoom, KindInternal},
		{"validation", validationError("bad"), KindValidation},
		{"not_found", notFoundError("missing"), KindNotFound},
		{"wrapped_upstream", wrapped, KindUpstream},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %s, want %s", got, tt.want)
			}
		})
	}

	if !errors.Is(upstreamError("failed", errBoom), errBoom) {
		t.Error("upstream error must unwrap to its cause")
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	t.Run("short_text_rejected_without_upstream_call", func(t *testing.T) {
		t.Parallel()
		sum := &fakeSummarizer{summary: "unused"}
		g := NewGateway(Upstreams{Summarizer: sum}, Settings{}, nil)

		for _, text := range []string{"", "one two three", words(MinSummaryWords - 1)} {
			_, err := g.Summarize(context.Background(), text)
			assertKind(t, err, KindValidation)
			if err.Error() != "Text must be at least 300 words for summarization." {
				t.Errorf("unexpected message: %q", err.Error())
			}
		}
		if sum.calls.Load() != 0 {
			t.Errorf("expected no upstream calls, got %d", sum.calls.Load())
		}
	})

	t.Run("long_text_summarized", func(t *testing.T) {
		t.Parallel()
		sum := &fakeSummarizer{summary: "tl;dr"}
		g := NewGateway(Upstreams{Summarizer: sum}, Settings{}, nil)

		got, err := g.Summarize(context.Background(), words(MinSummaryWords))
		if err != nil {
			t.Fatalf("Summarize: %v", err)
		}
		if got != "tl;dr" {
			t.Errorf("summary = %q", got)
		}
	})

	t.Run("upstream_failure", func(t *testing.T) {
		t.Parallel()
		g := NewGateway(Upstreams{Summarizer: &fakeSummarizer{err: errBoom}}, Settings{}, nil)

		_, err := g.Summarize(context.Background(), words(400))
		assertKind(t, err, KindUpstream)
	})
}

func TestFindSong(t *testing.T) {
	t.Parallel()

	t.Run("first_track", func(t *testing.T) {
		t.Parallel()
		tracks := &fakeTracks{tracks: []upstream.Track{{Name: "Song", URL: "https://open.spotify.com/track/1", Artist: "Artist"}}}
		g := NewGateway(Upstreams{Tracks: tracks}, Settings{}, nil)

		song, err := g.FindSong(context.Background(), "happy")
		if err != nil {
			t.Fatalf("FindSong: %v", err)
		}
		want := Song{URL: "https://open.spotify.com/track/1", Name: "Song", Artist: "Artist"}
		if *song != want {
			t.Errorf("song = %+v, want %+v", *song, want)
		}
	})

	t.Run("no_tracks", func(t *testing.T) {
		t.Parallel()
		g := NewGateway(Upstreams{Tracks: &fakeTracks{}}, Settings{}, nil)

		_, err := g.FindSong(context.Background(), "happy")
		assertKind(t, err, KindNotFound)
		if err.Error() != "No results found." {
			t.Errorf("unexpected message: %q", err.Error())
		}
	})

	t.Run("token_failure", func(t *testing.T) {
		t.Parallel()
		g := NewGateway(Upstreams{Tracks: &fakeTracks{err: errBoom}}, Settings{}, nil)

		_, err := g.FindSong(context.Background(), "happy")
		assertKind(t, err, KindUpstream)
		var se *Error
		if !errors.As(err, &se) || se.Message != "No results found." {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestSportsHighlights(t *testing.T) {
	t.Parallel()

	videos := &fakeVideos{videos: []upstream.Video{{ID: "abc", Title: "Finals", Thumbnail: "https://i.ytimg.com/abc.jpg"}}}
	g := NewGateway(Upstreams{Videos: videos}, Settings{}, nil)

	got, err := g.SportsHighlights(context.Background(), "nba")
	if err != nil {
		t.Fatalf("SportsHighlights: %v", err)
	}
	if videos.lastQuery != "nba highlights" || videos.lastMax != 5 {
		t.Errorf("query = %q max = %d", videos.lastQuery, videos.lastMax)
	}
	want := Highlight{Title: "Finals", Thumbnail: "https://i.ytimg.com/abc.jpg", VideoURL: "https://www.youtube.com/watch?v=abc"}
	if len(got) != 1 || got[0] != want {
		t.Errorf("highlights = %+v", got)
	}

	failing := NewGateway(Upstreams{Videos: &fakeVideos{err: &upstream.StatusError{Upstream: "youtube", StatusCode: 403}}}, Settings{}, nil)
	_, err = failing.SportsHighlights(context.Background(), "")
	assertKind(t, err, KindUpstream)
}

func TestTextToSpeech(t *testing.T) {
	t.Parallel()

	g := NewGateway(Upstreams{Speech: &fakeSpeech{audio: []byte("mp3")}}, Settings{}, nil)

	got, err := g.TextToSpeech(context.Background(), "hello")
	if err != nil {
		t.Fatalf("TextToSpeech: %v", err)
	}
	if got != "bXAz" {
		t.Errorf("audio = %q, want bXAz", got)
	}

	_, err = g.TextToSpeech(context.Background(), "   ")
	assertKind(t, err, KindValidation)

	failing := NewGateway(Upstreams{Speech: &fakeSpeech{err: errBoom}}, Settings{}, nil)
	_, err = failing.TextToSpeech(context.Background(), "hello")
	assertKind(t, err, KindUpstream)
}

func TestPlacesByCity(t *testing.T) {
	t.Parallel()

	t.Run("city_not_found_for_any_keyword", func(t *testing.T) {
		t.Parallel()
		for _, status := range []string{"ZERO_RESULTS", "INVALID_REQUEST", "REQUEST_DENIED"} {
			for _, keyword := range []string{"", "cafe", "museum"} {
				places := &fakePlaces{geocode: &upstream.Geocode{Status: status}}
				g := NewGateway(Upstreams{Places: places}, Settings{}, nil)

				_, err := g.PlacesByCity(context.Background(), "Atlantis", keyword)
				assertKind(t, err, KindValidation)
				if err.Error() != "City not found." {
					t.Errorf("unexpected message: %q", err.Error())
				}
				if places.nearbyCalls != 0 {
					t.Error("nearby search must not run for an unknown city")
				}
			}
		}
	})

	t.Run("maps_places", func(t *testing.T) {
		t.Parallel()
		rating := 4.2
		places := &fakePlaces{
			geocode: &upstream.Geocode{Status: upstream.GeocodeStatusOK, Location: upstream.LatLng{Lat: 1, Lng: 2}},
			places: []upstream.Place{
				{Name: "A", Address: "1 Main", Rating: &rating, Location: upstream.LatLng{Lat: 1.1, Lng: 2.1}},
				{Name: "B", Address: "2 Main"},
			},
		}
		g := NewGateway(Upstreams{Places: places}, Settings{}, nil)

		got, err := g.PlacesByCity(context.Background(), "Springfield", "park")
		if err != nil {
			t.Fatalf("PlacesByCity: %v", err)
		}
		if places.lastRadius != PlaceSearchRadius {
			t.Errorf("radius = %d", places.lastRadius)
		}
		if len(got) != 2 || got[0].Name != "A" || *got[0].Rating != 4.2 || got[1].Rating != nil {
			t.Errorf("places = %+v", got)
		}
	})

	t.Run("geocode_failure", func(t *testing.T) {
		t.Parallel()
		g := NewGateway(Upstreams{Places: &fakePlaces{geocodeErr: errBoom}}, Settings{}, nil)

		_, err := g.PlacesByCity(context.Background(), "Paris", "")
		assertKind(t, err, KindUpstream)
	})
}

func TestWorkout(t *testing.T) {
	t.Parallel()

	many := make([]upstream.Exercise, 8)
	for i := range many {
		many[i] = upstream.Exercise{Name: string(rune('A' + i))}
	}

	tests := []struct {
		name     string
		muscle   string
		fake     *fakeExercises
		wantKind Kind
		wantLen  int
	}{
		{"missing_muscle", "", &fakeExercises{}, KindValidation, 0},
		{"empty_results", "neck", &fakeExercises{}, KindNotFound, 0},
		{"upstream_error", "biceps", &fakeExercises{err: errBoom}, KindUpstream, 0},
		{"truncated_to_five", "biceps", &fakeExercises{exercises: many}, 0, 5},
		{"fewer_than_five", "biceps", &fakeExercises{exercises: many[:2]}, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewGateway(Upstreams{Exercises: tt.fake}, Settings{}, nil)

			got, err := g.Workout(context.Background(), tt.muscle)
			if tt.wantKind != 0 {
				assertKind(t, err, tt.wantKind)
				return
			}
			if err != nil {
				t.Fatalf("Workout: %v", err)
			}
			if len(got) != tt.wantLen || got[0].Name != "A" {
				t.Errorf("got %d exercises starting %q", len(got), got[0].Name)
			}
		})
	}
}

func TestCalories_PositionalMapping(t *testing.T) {
	t.Parallel()

	foods := &fakeFoods{foods: []upstream.Food{{
		Description: "Banana",
		Nutrients: []upstream.Nutrient{
			{Name: "Protein", Value: 11},
			{Name: "Carbohydrate, by difference", Value: 22},
			{Name: "Total lipid (fat)", Value: 33},
			{Name: "Energy", Value: 44},
		},
	}}}
	g := NewGateway(Upstreams{Foods: foods}, Settings{}, nil)

	got, err := g.Calories(context.Background(), "banana")
	if err != nil {
		t.Fatalf("Calories: %v", err)
	}
	want := Nutrition{Name: "Banana", Calories: 44, Protein: 11, Carbohydrates: 22, Fat: 33}
	if *got != want {
		t.Errorf("nutrition = %+v, want %+v", *got, want)
	}
}

func TestCalories_PositionalTooFewNutrients(t *testing.T) {
	t.Parallel()

	foods := &fakeFoods{foods: []upstream.Food{{Description: "Water", Nutrients: []upstream.Nutrient{{Value: 1}}}}}
	g := NewGateway(Upstreams{Foods: foods}, Settings{}, nil)

	_, err := g.Calories(context.Background(), "water")
	assertKind(t, err, KindUpstream)
	if !errors.Is(err, ErrMissingNutrients) {
		t.Errorf("expected ErrMissingNutrients, got %v", err)
	}
}

func TestCalories_NameLookup(t *testing.T) {
	t.Parallel()

	foods := &fakeFoods{foods: []upstream.Food{{
		Description: "Apple",
		Nutrients: []upstream.Nutrient{
			{Name: "Energy", UnitName: "kJ", Value: 218},
			{Name: "Total lipid (fat)", Value: 0.2},
			{Name: "Energy", UnitName: "KCAL", Value: 52},
			{Name: "Protein", Value: 0.3},
			{Name: "Carbohydrate, by difference", Value: 14},
		},
	}}}
	g := NewGateway(Upstreams{Foods: foods}, Settings{NutrientLookup: NutrientsByName}, nil)

	got, err := g.Calories(context.Background(), "apple")
	if err != nil {
		t.Fatalf("Calories: %v", err)
	}
	want := Nutrition{Name: "Apple", Calories: 52, Protein: 0.3, Carbohydrates: 14, Fat: 0.2}
	if *got != want {
		t.Errorf("nutrition = %+v, want %+v", *got, want)
	}
}

func TestCalories_Errors(t *testing.T) {
	t.Parallel()

	g := NewGateway(Upstreams{Foods: &fakeFoods{}}, Settings{}, nil)
	_, err := g.Calories(context.Background(), "")
	assertKind(t, err, KindValidation)

	_, err = g.Calories(context.Background(), "unobtainium")
	assertKind(t, err, KindNotFound)

	failing := NewGateway(Upstreams{Foods: &fakeFoods{err: errBoom}}, Settings{}, nil)
	_, err = failing.Calories(context.Background(), "apple")
	assertKind(t, err, KindUpstream)
}

func TestTop10(t *testing.T) {
	t.Parallel()

	completer := &fakeCompleter{text: "\n 1. Alien\n2. Heat \n"}
	g := NewGateway(Upstreams{Completer: completer}, Settings{}, nil)

	got, err := g.Top10(context.Background(), "movies")
	if err != nil {
		t.Fatalf("Top10: %v", err)
	}
	if got != "1. Alien\n2. Heat" {
		t.Errorf("top10 = %q", got)
	}
	if !strings.Contains(completer.lastPrompt, "top 10") || !strings.Contains(completer.lastPrompt, "movies") {
		t.Errorf("prompt = %q", completer.lastPrompt)
	}

	_, err = g.Top10(context.Background(), "")
	assertKind(t, err, KindValidation)
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	tr := &fakeTranslator{text: "hello"}
	g := NewGateway(Upstreams{Translator: tr}, Settings{}, nil)

	got, err := g.Translate(context.Background(), "hola", "")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "hello" || tr.lastTarget != DefaultTargetLanguage {
		t.Errorf("got %q target %q", got, tr.lastTarget)
	}

	if _, err := g.Translate(context.Background(), "hola", "fr"); err != nil || tr.lastTarget != "fr" {
		t.Errorf("target not forwarded: %q, %v", tr.lastTarget, err)
	}

	failing := NewGateway(Upstreams{Translator: &fakeTranslator{err: errBoom}}, Settings{}, nil)
	_, err = failing.Translate(context.Background(), "hola", "en")
	assertKind(t, err, KindUpstream)
}
