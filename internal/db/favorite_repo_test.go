package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"swimcast/internal/types"
)

// --- Mock DBTX ---

type mockDBTX struct {
	mock.Mock
}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	args := m.Called(ctx, sql, arguments)
	return args.Get(0).(pgconn.CommandTag), args.Error(1)
}

func (m *mockDBTX) Query(ctx context.Context, sql string, arguments ...any) (pgx.Rows, error) {
	args := m.Called(ctx, sql, arguments)
	if r := args.Get(0); r != nil {
		return r.(pgx.Rows), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, arguments ...any) pgx.Row {
	args := m.Called(ctx, sql, arguments)
	return args.Get(0).(pgx.Row)
}

// --- Mock Row ---

type mockRow struct {
	scanErr error
	scanFn  func(dest ...any) error
}

func (r *mockRow) Scan(dest ...any) error {
	if r.scanFn != nil {
		return r.scanFn(dest...)
	}
	return r.scanErr
}

// --- FavoriteRepository Tests ---

func TestFavoriteRepository_Create_Success(t *testing.T) {
	db := new(mockDBTX)
	repo := NewFavoriteRepository(db)

	fav := &types.Favorite{
		DeviceID:  "device-1",
		Label:     "North Beach",
		Latitude:  41.18,
		Longitude: -8.69,
	}

	db.On("Exec", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(pgconn.NewCommandTag("INSERT 0 1"), nil)

	err := repo.Create(context.Background(), fav)
	require.NoError(t, err)

	assert.NotEmpty(t, fav.ID, "ID should be generated")
	assert.False(t, fav.CreatedAt.IsZero(), "CreatedAt should be stamped")
	db.AssertExpectations(t)
}

func TestFavoriteRepository_Create_DuplicateLabel(t *testing.T) {
	db := new(mockDBTX)
	repo := NewFavoriteRepository(db)

	db.On("Exec", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(pgconn.CommandTag{}, &pgconn.PgError{Code: uniqueViolation})

	err := repo.Create(context.Background(), &types.Favorite{DeviceID: "device-1", Label: "North Beach"})

	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, types.ErrCodeConflictFavorite, appErr.Code)
	db.AssertExpectations(t)
}

func TestFavoriteRepository_Create_DBError(t *testing.T) {
	db := new(mockDBTX)
	repo := NewFavoriteRepository(db)

	db.On("Exec", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(pgconn.CommandTag{}, errors.New("connection reset"))

	err := repo.Create(context.Background(), &types.Favorite{DeviceID: "device-1", Label: "North Beach"})

	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, types.ErrCodeInternalDB, appErr.Code)
}

func TestFavoriteRepository_GetByID_Success(t *testing.T) {
	db := new(mockDBTX)
	repo := NewFavoriteRepository(db)

	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	row := &mockRow{
		scanFn: func(dest ...any) error {
			*dest[0].(*string) = "fav-1"
			*dest[1].(*string) = "device-1"
			*dest[2].(*string) = "North Beach"
			*dest[3].(*float64) = 41.18
			*dest[4].(*float64) = -8.69
			*dest[5].(*time.Time) = now
			return nil
		},
	}

	db.On("QueryRow", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(row)

	fav, err := repo.GetByID(context.Background(), "device-1", "fav-1")
	require.NoError(t, err)

	assert.Equal(t, "fav-1", fav.ID)
	assert.Equal(t, "North Beach", fav.Label)
	assert.Equal(t, now, fav.CreatedAt)
}

func TestFavoriteRepository_GetByID_NotFound(t *testing.T) {
	db := new(mockDBTX)
	repo := NewFavoriteRepository(db)

	db.On("QueryRow", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(&mockRow{scanErr: pgx.ErrNoRows})

	_, err := repo.GetByID(context.Background(), "device-1", "missing")

	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, types.ErrCodeNotFoundFavorite, appErr.Code)
}

func TestFavoriteRepository_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := new(mockDBTX)
		repo := NewFavoriteRepository(db)

		db.On("Exec", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
			Return(pgconn.NewCommandTag("DELETE 1"), nil)

		err := repo.Delete(context.Background(), "device-1", "fav-1")
		require.NoError(t, err)
	})

	t.Run("missing row is not found", func(t *testing.T) {
		db := new(mockDBTX)
		repo := NewFavoriteRepository(db)

		db.On("Exec", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
			Return(pgconn.NewCommandTag("DELETE 0"), nil)

		err := repo.Delete(context.Background(), "device-1", "missing")

		var appErr *types.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, types.ErrCodeNotFoundFavorite, appErr.Code)
	})
}
