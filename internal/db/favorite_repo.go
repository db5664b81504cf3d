package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"swimcast/internal/types"
)

const uniqueViolation = "23505"

// FavoriteRepository provides data access for the favorites table. Favorites
// are saved swim spots keyed by the device that created them; devices are
// anonymous, so there is no user table to join against.
type FavoriteRepository struct {
	db DBTX
}

// NewFavoriteRepository creates a FavoriteRepository backed by the given
// database connection (pool or transaction).
func NewFavoriteRepository(db DBTX) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Create inserts a new favorite. The ID is generated here so callers get it
// back without a second query. A duplicate label for the same device is a
// conflict.
func (r *FavoriteRepository) Create(ctx context.Context, f *types.Favorite) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO favorites (id, device_id, label, latitude, longitude, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		f.ID, f.DeviceID, f.Label, f.Latitude, f.Longitude, f.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return types.NewAppError(types.ErrCodeConflictFavorite,
				"a favorite with this label already exists for the device", err)
		}
		return types.NewAppError(types.ErrCodeInternalDB, "failed to create favorite", err)
	}
	return nil
}

// GetByID fetches a favorite scoped to its owning device.
func (r *FavoriteRepository) GetByID(ctx context.Context, deviceID, id string) (*types.Favorite, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, device_id, label, latitude, longitude, created_at
		 FROM favorites
		 WHERE id = $1 AND device_id = $2`,
		id, deviceID,
	)

	var f types.Favorite
	if err := row.Scan(&f.ID, &f.DeviceID, &f.Label, &f.Latitude, &f.Longitude, &f.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.NewAppError(types.ErrCodeNotFoundFavorite, "favorite not found", err)
		}
		return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to fetch favorite", err)
	}
	return &f, nil
}

// ListByDevice returns all favorites for a device, newest first.
func (r *FavoriteRepository) ListByDevice(ctx context.Context, deviceID string) ([]types.Favorite, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, device_id, label, latitude, longitude, created_at
		 FROM favorites
		 WHERE device_id = $1
		 ORDER BY created_at DESC`,
		deviceID,
	)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to list favorites", err)
	}
	defer rows.Close()

	favorites := make([]types.Favorite, 0)
	for rows.Next() {
		var f types.Favorite
		if err := rows.Scan(&f.ID, &f.DeviceID, &f.Label, &f.Latitude, &f.Longitude, &f.CreatedAt); err != nil {
			return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to scan favorite", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to read favorites", err)
	}
	return favorites, nil
}

// Delete removes a favorite scoped to its owning device. Deleting a favorite
// that does not exist is a not found error, not a no-op, so clients can
// detect stale state.
func (r *FavoriteRepository) Delete(ctx context.Context, deviceID, id string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM favorites WHERE id = $1 AND device_id = $2`,
		id, deviceID,
	)
	if err != nil {
		return types.NewAppError(types.ErrCodeInternalDB, "failed to delete favorite", err)
	}
	if tag.RowsAffected() == 0 {
		return types.NewAppError(types.ErrCodeNotFoundFavorite, "favorite not found", nil)
	}
	return nil
}
