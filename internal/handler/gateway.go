package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dailyhub/dailyhub/internal/handler/dto"
	"github.com/dailyhub/dailyhub/internal/service"
	"github.com/dailyhub/dailyhub/internal/upstream"
)

// Gateway is the route logic behind GatewayHandler.
type Gateway interface {
	Summarize(ctx context.Context, text string) (string, error)
	FindSong(ctx context.Context, vibe string) (*service.Song, error)
	SportsHighlights(ctx context.Context, query string) ([]service.Highlight, error)
	TextToSpeech(ctx context.Context, text string) (string, error)
	PlacesByCity(ctx context.Context, city, keyword string) ([]service.Place, error)
	Workout(ctx context.Context, muscle string) ([]upstream.Exercise, error)
	Calories(ctx context.Context, food string) (*service.Nutrition, error)
	Top10(ctx context.Context, category string) (string, error)
	TopStocks(ctx context.Context) (*service.Movers, error)
	Translate(ctx context.Context, text, target string) (string, error)
}

// GatewayHandler handles the upstream-backed routes.
type GatewayHandler struct {
	svc    Gateway
	logger *slog.Logger
}

// NewGatewayHandler creates a new GatewayHandler.
func NewGatewayHandler(svc Gateway, logger *slog.Logger) *GatewayHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GatewayHandler{svc: svc, logger: logger}
}

// Summarize handles POST /summarize (form field "text").
func (h *GatewayHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summarize(r.Context(), r.FormValue("text"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.SummaryResponse{Summary: summary})
}

// Song handles POST /get_song (form field "vibe").
func (h *GatewayHandler) Song(w http.ResponseWriter, r *http.Request) {
	song, err := h.svc.FindSong(r.Context(), r.FormValue("vibe"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToSongResponse(song))
}

// Highlights handles POST /get_sports_highlights.
func (h *GatewayHandler) Highlights(w http.ResponseWriter, r *http.Request) {
	var req dto.HighlightsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	highlights, err := h.svc.SportsHighlights(r.Context(), req.Query)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToHighlightResponses(highlights))
}

// Speech handles POST /text-to-speech.
func (h *GatewayHandler) Speech(w http.ResponseWriter, r *http.Request) {
	var req dto.SpeechRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	audio, err := h.svc.TextToSpeech(r.Context(), req.Text)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.SpeechResponse{Audio: audio})
}

// Places handles POST /get_places_by_city.
func (h *GatewayHandler) Places(w http.ResponseWriter, r *http.Request) {
	var req dto.PlacesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	places, err := h.svc.PlacesByCity(r.Context(), req.City, req.Keyword)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToPlaceResponses(places))
}

// Workout handles POST /get_workout.
func (h *GatewayHandler) Workout(w http.ResponseWriter, r *http.Request) {
	var req dto.WorkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	exercises, err := h.svc.Workout(r.Context(), req.Muscle)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToExerciseResponses(exercises))
}

// Calories handles POST /get_calories.
func (h *GatewayHandler) Calories(w http.ResponseWriter, r *http.Request) {
	var req dto.CaloriesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	nutrition, err := h.svc.Calories(r.Context(), req.Food)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToCaloriesResponse(nutrition))
}

// Top10 handles POST /top10.
func (h *GatewayHandler) Top10(w http.ResponseWriter, r *http.Request) {
	var req dto.Top10Request
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	list, err := h.svc.Top10(r.Context(), req.Category)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.Top10Response{Top10: list})
}

// TopStocks handles GET /top_stocks.
func (h *GatewayHandler) TopStocks(w http.ResponseWriter, r *http.Request) {
	movers, err := h.svc.TopStocks(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTopStocksResponse(movers))
}

// Translate handles POST /translate.
func (h *GatewayHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req dto.TranslateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	translated, err := h.svc.Translate(r.Context(), req.Text, req.Target)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.TranslateResponse{TranslatedText: translated})
}
