package pack_test

import (
	"math"
	"testing"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/pack"
	"packing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeight(t *testing.T) {
	tests := []struct {
		name    string
		entered float64
		pounds  int
		wantErr bool
	}{
		{"zero", 0, 0, true},
		{"negative", -1, 0, true},
		{"above plausible", 500.01, 0, true},
		{"not a number", math.NaN(), 0, true},
		{"infinite", math.Inf(1), 0, true},
		{"plausible ceiling", 500, 500, false},
		{"smallest", 0.01, 1, false},
		{"rounds up", 12.1, 13, false},
		{"whole", 12, 12, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := pack.NewWeight(tt.entered)

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.pounds, w.Pounds())
			assert.InDelta(t, tt.entered, w.Entered(), 1e-9)
		})
	}
}

func TestNewWeight_RejectsEntriesFinerThanHundredths(t *testing.T) {
	for _, entered := range []float64{0.001, 12.345, 499.999} {
		_, err := pack.NewWeight(entered)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, "entered %v", entered)
	}

	for _, entered := range []float64{0.1, 12.34, 37.5, 499.99} {
		w, err := pack.NewWeight(entered)
		require.NoError(t, err, "entered %v", entered)
		assert.InDelta(t, entered, w.Entered(), 1e-9)
	}
}

func TestRestoreWeight(t *testing.T) {
	entered := 7.4
	w := pack.RestoreWeight(8, &entered)
	assert.Equal(t, 8, w.Pounds())
	assert.InDelta(t, 7.4, w.Entered(), 1e-9)

	legacy := pack.RestoreWeight(8, nil)
	assert.InDelta(t, 8.0, legacy.Entered(), 1e-9)
}

func TestResolveMaxWeight(t *testing.T) {
	catalog, err := pack.NewCatalogSpec(kernel.NewUUID())
	require.NoError(t, err)
	dims, err := kernel.NewDimensions(24, 18, 6)
	require.NoError(t, err)
	custom, err := pack.NewCustomSpec(dims)
	require.NoError(t, err)

	ptr := func(v int) *int { return &v }

	t.Run("explicit override wins", func(t *testing.T) {
		got, err := pack.ResolveMaxWeight(ptr(25), catalog, 70)
		require.NoError(t, err)
		assert.Equal(t, 25, got)
	})

	t.Run("explicit override must be plausible", func(t *testing.T) {
		_, err := pack.ResolveMaxWeight(ptr(0), custom, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = pack.ResolveMaxWeight(ptr(501), custom, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("carton configured max", func(t *testing.T) {
		got, err := pack.ResolveMaxWeight(nil, catalog, 70)
		require.NoError(t, err)
		assert.Equal(t, 70, got)
	})

	t.Run("catalog default", func(t *testing.T) {
		got, err := pack.ResolveMaxWeight(nil, catalog, 0)
		require.NoError(t, err)
		assert.Equal(t, pack.DefaultCatalogMaxWeightLb, got)
	})

	t.Run("custom default", func(t *testing.T) {
		got, err := pack.ResolveMaxWeight(nil, custom, 70)
		require.NoError(t, err)
		assert.Equal(t, pack.DefaultCustomMaxWeightLb, got)
	})
}
