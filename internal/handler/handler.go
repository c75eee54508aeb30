// Package handler provides HTTP request handlers.
package handler

import (
	"embed"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/dailyhub/dailyhub/internal/handler/dto"
	"github.com/dailyhub/dailyhub/internal/middleware"
	"github.com/dailyhub/dailyhub/internal/service"
	"github.com/dailyhub/dailyhub/internal/validation"
)

//go:embed static
var staticFiles embed.FS

// Handler serves the routes that do not depend on upstream APIs.
type Handler struct {
	assets fs.FS
}

// New creates a new Handler instance.
func New() *Handler {
	assets, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return &Handler{assets: assets}
}

// Index serves the browser front end.
// GET /
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	page, err := fs.ReadFile(h.assets, "index.html")
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

// Static serves the front end assets under /static/.
func (h *Handler) Static() http.Handler {
	return http.StripPrefix("/static/", http.FileServerFS(h.assets))
}

// NotFound handles 404 responses.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Error: "resource not found"})
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, dto.ErrorResponse{Error: "method not allowed"})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

var errInvalidBody = errors.New("invalid request body")

// decodeJSON decodes the request body into v and validates it. An empty
// body decodes as an empty object.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return errInvalidBody
	}
	return validation.Struct(v)
}

// statusFor maps a service error kind to an HTTP status.
func statusFor(kind service.Kind) int {
	switch kind {
	case service.KindValidation:
		return http.StatusBadRequest
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError is the single place errors become HTTP responses.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: verr.Error()})
		return
	}
	if errors.Is(err, errInvalidBody) {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body"})
		return
	}

	var serr *service.Error
	if !errors.As(err, &serr) {
		logger.Error("internal_error",
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}

	if serr.Kind == service.KindUpstream {
		logger.Warn("upstream_error",
			slog.String("request_id", middleware.GetRequestID(r.Context())),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
	writeJSON(w, statusFor(serr.Kind), dto.ErrorResponse{Error: serr.Message})
}
