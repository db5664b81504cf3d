package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"swimcast/internal/core"
	"swimcast/internal/types"
)

// GeocodeService resolves place names and coordinates. Matches the Geocoder
// interface from the geocode package but is defined locally to keep the
// handler decoupled.
type GeocodeService interface {
	Search(ctx context.Context, name string, limit int) ([]types.GeoPlace, error)
	Reverse(ctx context.Context, lat, lon float64) (types.GeoPlace, error)
}

// GeocodeHandler serves the place lookup endpoints.
type GeocodeHandler struct {
	service GeocodeService
	logger  *slog.Logger
}

// NewGeocodeHandler creates a GeocodeHandler.
func NewGeocodeHandler(svc GeocodeService, logger *slog.Logger) *GeocodeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GeocodeHandler{service: svc, logger: logger}
}

// RegisterRoutes mounts the geocoding endpoints onto the mux.
func (h *GeocodeHandler) RegisterRoutes(r chi.Router) {
	r.Route("/geocode", func(g chi.Router) {
		g.Get("/search", h.HandleSearch)
		g.Get("/reverse", h.HandleReverse)
	})
}

// HandleSearch handles GET /v1/geocode/search?q=..&limit=..
func (h *GeocodeHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		core.Error(w, r, types.NewAppError(types.ErrCodeValidationMissingField, "q query parameter is required", nil))
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			core.Error(w, r, types.NewAppError(types.ErrCodeValidationInvalidQuery, "limit must be a positive integer", err))
			return
		}
		limit = n
	}

	places, err := h.service.Search(r.Context(), q, limit)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	core.JSON(w, r, http.StatusOK, map[string]any{"places": places})
}

// HandleReverse handles GET /v1/geocode/reverse?lat=..&lon=..
func (h *GeocodeHandler) HandleReverse(w http.ResponseWriter, r *http.Request) {
	lat, lon, err := parseCoords(r)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	place, err := h.service.Reverse(r.Context(), lat, lon)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	core.JSON(w, r, http.StatusOK, place)
}
