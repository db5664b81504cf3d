package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"swimcast/internal/core"
	"swimcast/internal/types"
)

// deviceIDHeader identifies the anonymous installation that owns a set of
// favorites. There are no user accounts; the mobile client generates a UUID
// on first launch and sends it with every request.
const deviceIDHeader = "X-Device-ID"

// FavoriteStore is the persistence contract for saved swim spots. Matches
// db.FavoriteRepository.
type FavoriteStore interface {
	Create(ctx context.Context, f *types.Favorite) error
	GetByID(ctx context.Context, deviceID, id string) (*types.Favorite, error)
	ListByDevice(ctx context.Context, deviceID string) ([]types.Favorite, error)
	Delete(ctx context.Context, deviceID, id string) error
}

// FavoritesHandler serves the favorites CRUD endpoints.
type FavoritesHandler struct {
	store     FavoriteStore
	validator *core.Validator
	logger    *slog.Logger
}

// NewFavoritesHandler creates a FavoritesHandler.
func NewFavoritesHandler(store FavoriteStore, val *core.Validator, logger *slog.Logger) *FavoritesHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FavoritesHandler{store: store, validator: val, logger: logger}
}

// RegisterRoutes mounts the favorites endpoints onto the mux.
func (h *FavoritesHandler) RegisterRoutes(r chi.Router) {
	r.Route("/favorites", func(f chi.Router) {
		f.Post("/", h.HandleCreate)
		f.Get("/", h.HandleList)
		f.Get("/{id}", h.HandleGet)
		f.Delete("/{id}", h.HandleDelete)
	})
}

type createFavoriteRequest struct {
	Label     string  `json:"label" validate:"required,max=80"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

func deviceID(r *http.Request) (string, error) {
	id := r.Header.Get(deviceIDHeader)
	if id == "" {
		return "", types.NewAppError(types.ErrCodeValidationMissingField, "X-Device-ID header is required", nil)
	}
	return id, nil
}

// HandleCreate handles POST /v1/favorites.
func (h *FavoritesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	device, err := deviceID(r)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	var req createFavoriteRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		core.Error(w, r, err)
		return
	}

	fav := &types.Favorite{
		DeviceID:  device,
		Label:     req.Label,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if err := h.store.Create(r.Context(), fav); err != nil {
		core.Error(w, r, err)
		return
	}

	h.logger.Info("favorite created",
		slog.String("favorite_id", fav.ID),
		slog.String("label", fav.Label),
	)
	core.JSON(w, r, http.StatusCreated, fav)
}

// HandleList handles GET /v1/favorites.
func (h *FavoritesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	device, err := deviceID(r)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	favorites, err := h.store.ListByDevice(r.Context(), device)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	core.JSON(w, r, http.StatusOK, map[string]any{"favorites": favorites})
}

// HandleGet handles GET /v1/favorites/{id}.
func (h *FavoritesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	device, err := deviceID(r)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	fav, err := h.store.GetByID(r.Context(), device, chi.URLParam(r, "id"))
	if err != nil {
		core.Error(w, r, err)
		return
	}

	core.JSON(w, r, http.StatusOK, fav)
}

// HandleDelete handles DELETE /v1/favorites/{id}.
func (h *FavoritesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	device, err := deviceID(r)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	if err := h.store.Delete(r.Context(), device, chi.URLParam(r, "id")); err != nil {
		core.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
