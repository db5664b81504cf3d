// Package handlers contains the HTTP handler implementations for the
// SwimCast API. Each handler declares a local service interface matching the
// domain package it fronts, so handler tests can inject lightweight fakes.
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"swimcast/internal/core"
	"swimcast/internal/swim"
	"swimcast/internal/types"
)

// ConditionsService fetches current conditions for a coordinate.
type ConditionsService interface {
	FetchCurrent(ctx context.Context, lat, lon float64) (*types.CurrentConditions, error)
}

// ScoreRecorder records score telemetry. Satisfied by *observability.Metrics.
type ScoreRecorder interface {
	RecordScore(recommendation string, total int)
}

// ScoreHandler serves the swim score and conditions endpoints.
type ScoreHandler struct {
	conditions ConditionsService
	recorder   ScoreRecorder
	logger     *slog.Logger
}

// NewScoreHandler creates a ScoreHandler. recorder may be nil when metrics
// are disabled.
func NewScoreHandler(conditions ConditionsService, recorder ScoreRecorder, logger *slog.Logger) *ScoreHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScoreHandler{
		conditions: conditions,
		recorder:   recorder,
		logger:     logger,
	}
}

// RegisterRoutes mounts the scoring endpoints onto the mux.
func (h *ScoreHandler) RegisterRoutes(r chi.Router) {
	r.Post("/swim-score", h.HandleScore)
	r.Get("/conditions", h.HandleConditions)
}

type conditionsResponse struct {
	Latitude   float64          `json:"latitude"`
	Longitude  float64          `json:"longitude"`
	Estimated  bool             `json:"estimated"`
	ObservedAt string           `json:"observedAt"`
	Inputs     types.SwimInputs `json:"inputs"`

	Score *types.SwimScoreOutput `json:"score,omitempty"`
}

// HandleScore handles POST /v1/swim-score. The body is the raw inputs
// payload; it is decoded into a generic map first so the full payload shape
// can be checked before any numeric narrowing happens.
func (h *ScoreHandler) HandleScore(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := core.DecodeJSON(w, r, &payload); err != nil {
		core.Error(w, r, err)
		return
	}

	inputs, ok := swim.InputsFromPayload(payload)
	if !ok {
		core.Error(w, r, types.NewAppError(
			types.ErrCodeValidationInvalidPayload,
			"payload must contain all twelve condition fields with numeric values and a string weatherCode",
			nil,
		))
		return
	}

	out := swim.Compute(inputs)

	if h.recorder != nil {
		h.recorder.RecordScore(swim.RecommendKey(inputs, out.TotalScore), out.TotalScore)
	}
	h.logger.Debug("score computed",
		slog.Int("total", out.TotalScore),
		slog.String("recommendation", out.Recommendation),
	)

	core.JSON(w, r, http.StatusOK, out)
}

// HandleConditions handles GET /v1/conditions?lat=..&lon=... It fetches live
// conditions for the coordinate and returns them together with their score.
func (h *ScoreHandler) HandleConditions(w http.ResponseWriter, r *http.Request) {
	lat, lon, err := parseCoords(r)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	cond, err := h.conditions.FetchCurrent(r.Context(), lat, lon)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	out := swim.Compute(cond.Inputs)
	if h.recorder != nil {
		h.recorder.RecordScore(swim.RecommendKey(cond.Inputs, out.TotalScore), out.TotalScore)
	}

	core.JSON(w, r, http.StatusOK, conditionsResponse{
		Latitude:   cond.Latitude,
		Longitude:  cond.Longitude,
		Estimated:  cond.Estimated,
		ObservedAt: cond.ObservedAt.Format("2006-01-02T15:04:05Z07:00"),
		Inputs:     cond.Inputs,
		Score:      &out,
	})
}

// parseCoords extracts and validates the lat/lon query parameters shared by
// the conditions and reverse geocoding endpoints.
func parseCoords(r *http.Request) (float64, float64, error) {
	q := r.URL.Query()

	latStr := q.Get("lat")
	if latStr == "" {
		return 0, 0, types.NewAppError(types.ErrCodeValidationMissingField, "lat query parameter is required", nil)
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil || lat < -90 || lat > 90 {
		return 0, 0, types.NewAppError(types.ErrCodeValidationInvalidLat, "lat must be a number between -90 and 90", err)
	}

	lonStr := q.Get("lon")
	if lonStr == "" {
		return 0, 0, types.NewAppError(types.ErrCodeValidationMissingField, "lon query parameter is required", nil)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil || lon < -180 || lon > 180 {
		return 0, 0, types.NewAppError(types.ErrCodeValidationInvalidLon, "lon must be a number between -180 and 180", err)
	}

	return lat, lon, nil
}
