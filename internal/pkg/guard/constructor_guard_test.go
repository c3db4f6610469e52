package guard_test

import (
	"errors"
	"testing"

	"packing/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("StartPackCommand must be created via NewStartPackCommand")

	t.Run("constructed guard passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value returns the supplied error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero value falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})

	t.Run("copies keep their state", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		copied := g

		require.NoError(t, copied.Validate(errNotConstructed))
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	type removeItem struct {
		qty   int
		guard guard.ConstructorGuard
	}
	errRemoveItem := errors.New("removeItem must be created via newRemoveItem")
	newRemoveItem := func(qty int) removeItem {
		return removeItem{qty: qty, guard: guard.NewConstructorGuard()}
	}

	require.NoError(t, newRemoveItem(1).guard.Validate(errRemoveItem))
	require.ErrorIs(t, removeItem{qty: 1}.guard.Validate(errRemoveItem), errRemoveItem)
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	done := make(chan struct{})

	for range 50 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 200 {
				assert.NoError(t, g.Validate(nil))
			}
		}()
	}

	for range 50 {
		<-done
	}
}
