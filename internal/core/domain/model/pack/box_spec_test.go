package pack_test

import (
	"testing"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/pack"
	"packing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoxSpec(t *testing.T) {
	cartonID := kernel.NewUUID()
	ptr := func(v int) *int { return &v }

	t.Run("catalog", func(t *testing.T) {
		spec, err := pack.NewBoxSpec(&cartonID, nil, nil, nil)
		require.NoError(t, err)

		catalog, ok := spec.(pack.CatalogSpec)
		require.True(t, ok)
		assert.True(t, catalog.CartonTypeID().IsEqual(cartonID))
	})

	t.Run("custom", func(t *testing.T) {
		spec, err := pack.NewBoxSpec(nil, ptr(30), ptr(20), ptr(10))
		require.NoError(t, err)

		custom, ok := spec.(pack.CustomSpec)
		require.True(t, ok)
		assert.Equal(t, "30x20x10", custom.Dimensions().String())
	})

	t.Run("both fails", func(t *testing.T) {
		_, err := pack.NewBoxSpec(&cartonID, ptr(30), ptr(20), ptr(10))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("neither fails", func(t *testing.T) {
		_, err := pack.NewBoxSpec(nil, nil, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("partial dimensions fail", func(t *testing.T) {
		_, err := pack.NewBoxSpec(nil, ptr(30), nil, ptr(10))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("non positive dimensions fail", func(t *testing.T) {
		_, err := pack.NewBoxSpec(nil, ptr(30), ptr(0), ptr(10))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
