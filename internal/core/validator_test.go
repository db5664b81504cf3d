package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swimcast/internal/types"
)

func TestValidateStruct(t *testing.T) {
	type favoriteRequest struct {
		Label     string  `json:"label" validate:"required,max=80"`
		Latitude  float64 `json:"latitude" validate:"latitude"`
		Longitude float64 `json:"longitude" validate:"longitude"`
	}

	v := NewValidator(discardLogger())

	t.Run("valid struct passes", func(t *testing.T) {
		err := v.ValidateStruct(favoriteRequest{Label: "North Beach", Latitude: 41.16, Longitude: -8.68})
		assert.NoError(t, err)
	})

	t.Run("violations become AppError with field details", func(t *testing.T) {
		err := v.ValidateStruct(favoriteRequest{Latitude: 123.0, Longitude: -8.68})
		var appErr *types.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, types.ErrCodeValidationInvalidPayload, appErr.Code)
		assert.Contains(t, appErr.Details, "Label")
		assert.Contains(t, appErr.Details, "Latitude")
		assert.NotContains(t, appErr.Details, "Longitude")
	})
}

func TestValidatorVar(t *testing.T) {
	v := NewValidator(discardLogger())

	assert.NoError(t, v.Var(41.16, "latitude"))
	assert.Error(t, v.Var(91.0, "latitude"))
	assert.NoError(t, v.Var(-8.68, "longitude"))
	assert.Error(t, v.Var(181.0, "longitude"))
}
