package guard_test

import (
	"errors"
	"testing"

	"freight/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("facility not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type route struct {
		from  string
		to    string
		guard guard.ConstructorGuard
	}

	errRouteNotConstructed := errors.New("route must be created via newRoute")

	newRoute := func(from, to string) (route, error) {
		if from == "" || to == "" {
			return route{}, errors.New("both ends of a route are required")
		}
		return route{from: from, to: to, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_passes", func(t *testing.T) {
		r, err := newRoute("Pune", "Delhi")

		require.NoError(t, err)
		require.NoError(t, r.guard.Validate(errRouteNotConstructed))
	})

	t.Run("failed_construction_returns_zero_value_that_fails", func(t *testing.T) {
		r, err := newRoute("Pune", "")

		require.Error(t, err)
		assert.Equal(t, errRouteNotConstructed, r.guard.Validate(errRouteNotConstructed))
	})

	t.Run("struct_literal_bypassing_constructor_fails", func(t *testing.T) {
		r := route{from: "Pune", to: "Delhi"}

		assert.Equal(t, errRouteNotConstructed, r.guard.Validate(errRouteNotConstructed))
	})
}
