package services_test

import (
	"testing"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/request"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverDispatcher_Dispatch(t *testing.T) {
	t.Run("should pick the first available driver in registration order", func(t *testing.T) {
		// Given
		busy := mustDriver(t, "7000")
		require.NoError(t, busy.DriveTo("81 King St", 3))
		first := mustDriver(t, "7001")
		second := mustDriver(t, "7002")
		ride := mustRide(t, "9000")

		// When
		got, err := services.NewDriverDispatcher().Dispatch(ride, []*driver.Driver{busy, first, second})

		// Then
		require.NoError(t, err)
		assert.True(t, got.IsEqual(first))
		assert.Equal(t, driver.Driving, first.Status())
		assert.Same(t, ride, first.Service())
		assert.True(t, second.IsAvailable())
	})

	t.Run("should fail when every driver is busy", func(t *testing.T) {
		busy := mustDriver(t, "7000")
		require.NoError(t, busy.Assign(mustRide(t, "9001")))

		_, err := services.NewDriverDispatcher().Dispatch(mustRide(t, "9000"), []*driver.Driver{busy})

		require.ErrorIs(t, err, services.ErrDriverNotFound)
	})

	t.Run("should fail without drivers", func(t *testing.T) {
		_, err := services.NewDriverDispatcher().Dispatch(mustRide(t, "9000"), nil)
		require.ErrorIs(t, err, services.ErrDriverNotFound)
	})

	t.Run("should reject an unconstructed request", func(t *testing.T) {
		d := mustDriver(t, "7000")

		_, err := services.NewDriverDispatcher().Dispatch(&request.Request{}, []*driver.Driver{d})

		require.ErrorIs(t, err, request.ErrRequestIsNotConstructed)
		assert.True(t, d.IsAvailable())
	})
}

func TestDriverDispatcher_FindAvailable(t *testing.T) {
	d := mustDriver(t, "7000")

	got, err := services.NewDriverDispatcher().FindAvailable([]*driver.Driver{d})

	require.NoError(t, err)
	assert.Same(t, d, got)
	assert.True(t, d.IsAvailable(), "finding must not change the driver")
}

func mustDriver(t *testing.T, id kernel.ID) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(id, "Driver "+id.String(), "Toyota Corolla", "ABC123", "34 Bay St", 0)
	require.NoError(t, err)
	return d
}

func mustRide(t *testing.T, userID kernel.ID) *request.Request {
	t.Helper()
	r, err := request.NewRide(userID, "12 Bay St", "88 King St", 10, 1500)
	require.NoError(t, err)
	return r
}
