package carton_test

import (
	"testing"
	"time"

	"packing/internal/core/domain/model/carton"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails(t *testing.T) carton.Details {
	t.Helper()
	dims, err := kernel.NewDimensions(24, 18, 6)
	require.NoError(t, err)
	return carton.Details{
		Name:         "24x18x6 RSC",
		Dimensions:   dims,
		MaxWeightLb:  50,
		Style:        "RSC",
		Vendor:       "Uline",
		MinimumStock: 10,
		Active:       true,
	}
}

func TestNewCartonType(t *testing.T) {
	now := time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)

	t.Run("should create active carton with empty inventory", func(t *testing.T) {
		c, err := carton.NewCartonType(kernel.NewUUID(), validDetails(t), now)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "24x18x6 RSC", c.Name())
		assert.Equal(t, 50, c.MaxWeightLb())
		assert.Equal(t, 0, c.QuantityOnHand())
		assert.Equal(t, now, c.CreatedAt())
		require.NoError(t, c.ValidateUsable())
	})

	t.Run("should collect every invalid attribute", func(t *testing.T) {
		_, err := carton.NewCartonType(kernel.NewUUID(), carton.Details{MaxWeightLb: -1, MinimumStock: -1}, now)

		require.ErrorIs(t, err, carton.ErrNameIsRequired)
		require.ErrorIs(t, err, kernel.ErrDimensionsAreNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCartonType_Inventory(t *testing.T) {
	now := time.Now().UTC()
	c, err := carton.NewCartonType(kernel.NewUUID(), validDetails(t), now)
	require.NoError(t, err)

	c.AdjustInventory(12, now)
	assert.Equal(t, 12, c.QuantityOnHand())
	assert.False(t, c.IsLowStock())

	c.AdjustInventory(-5, now)
	assert.Equal(t, 7, c.QuantityOnHand())
	assert.True(t, c.IsLowStock())

	c.AdjustInventory(-10, now)
	assert.Equal(t, -3, c.QuantityOnHand())
}

func TestCartonType_Update(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c, err := carton.NewCartonType(kernel.NewUUID(), validDetails(t), created)
	require.NoError(t, err)

	details := validDetails(t)
	details.Active = false
	later := created.Add(time.Hour)

	require.NoError(t, c.Update(details, later))

	assert.False(t, c.IsActive())
	assert.False(t, c.IsLowStock(), "inactive cartons are never reported as low stock")
	assert.Equal(t, later, c.UpdatedAt())
	err = c.ValidateUsable()
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), carton.ErrCartonTypeIsInactive.Error())
}
