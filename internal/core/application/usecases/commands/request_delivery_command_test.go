package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/queue"
	"dispatch/internal/core/domain/model/request"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRequestDeliveryCommand(t *testing.T) {
	_, err := commands.NewRequestDeliveryCommand("9000", addrNW, addrNE, " ", "")

	require.ErrorIs(t, err, request.ErrRestaurantIsRequired)
	require.ErrorIs(t, err, request.ErrFoodOrderIDIsRequired)
}

func TestRequestDeliveryCommandHandler_Handle(t *testing.T) {
	newHandler := func(f *fixture, cityMap *fakeCityMap) commands.RequestDeliveryCommandHandler {
		return commands.NewRequestDeliveryCommandHandler(f.factory, cityMap, services.DefaultTariff())
	}

	t.Run("one block delivery is accepted", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		alice := mustUser(t, "9000", "Alice", 5000)
		d := mustDriver(t, "7000", addrNW, 0)
		queues := queue.New()

		f.users.On("Get", ctx, kernel.ID("9000")).Return(alice, nil).Once()
		f.drivers.On("GetAll", ctx).Return([]*driver.Driver{d}, nil).Once()
		f.queues.On("Get", ctx).Return(queues, nil).Once()
		f.drivers.On("Update", ctx, d).Return(nil).Once()
		f.queues.On("Save", ctx, queues).Return(nil).Once()
		f.users.On("Update", ctx, alice).Return(nil).Once()
		f.expectCommit()

		cmd, err := commands.NewRequestDeliveryCommand("9000", addrNW, addrNW2, "Pizza Place", "55")
		require.NoError(t, err)

		result, err := newHandler(f, newFakeCityMap().withDistance(addrNW, addrNW2, 1)).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, kernel.Money(120), result.Cost)
		assert.Equal(t, 1, alice.Deliveries())
		assert.Equal(t, 0, alice.Rides())
		require.NotNil(t, d.Service())
		assert.Equal(t, request.Delivery, d.Service().Kind())
		assert.Equal(t, 1, queues.Len(0))
		f.assertExpectations(t)
	})

	t.Run("zero block delivery is rejected", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		f.users.On("Get", ctx, kernel.ID("9000")).Return(mustUser(t, "9000", "Alice", 5000), nil).Once()

		cmd, err := commands.NewRequestDeliveryCommand("9000", addrNW, addrNW, "Pizza Place", "55")
		require.NoError(t, err)

		_, err = newHandler(f, newFakeCityMap().withDistance(addrNW, addrNW, 0)).Handle(ctx, cmd)

		require.ErrorIs(t, err, request.ErrInsufficientTravelDistance)
	})

	t.Run("same restaurant and order is a duplicate", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		pending, err := request.NewDelivery("9000", addrNW2, addrSW, 10, 1200, "Pizza Place", "55")
		require.NoError(t, err)
		queues := queue.New()
		require.NoError(t, queues.Enqueue(0, pending))

		f.users.On("Get", ctx, kernel.ID("9000")).Return(mustUser(t, "9000", "Alice", 5000), nil).Once()
		f.drivers.On("GetAll", ctx).Return([]*driver.Driver{mustDriver(t, "7000", addrNW, 0)}, nil).Once()
		f.queues.On("Get", ctx).Return(queues, nil).Once()

		cmd, err := commands.NewRequestDeliveryCommand("9000", addrNW, addrNE, "Pizza Place", "55")
		require.NoError(t, err)

		_, err = newHandler(f, newFakeCityMap()).Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrDuplicateRequest)
		assert.Equal(t, 1, queues.Len(0))
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("another food order from the same restaurant is accepted", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		pending, err := request.NewDelivery("9000", addrNW2, addrSW, 10, 1200, "Pizza Place", "55")
		require.NoError(t, err)
		queues := queue.New()
		require.NoError(t, queues.Enqueue(0, pending))
		alice := mustUser(t, "9000", "Alice", 5000)
		d := mustDriver(t, "7000", addrNW, 0)

		f.users.On("Get", ctx, kernel.ID("9000")).Return(alice, nil).Once()
		f.drivers.On("GetAll", ctx).Return([]*driver.Driver{d}, nil).Once()
		f.queues.On("Get", ctx).Return(queues, nil).Once()
		f.drivers.On("Update", ctx, d).Return(nil).Once()
		f.queues.On("Save", ctx, queues).Return(nil).Once()
		f.users.On("Update", ctx, alice).Return(nil).Once()
		f.expectCommit()

		cmd, err := commands.NewRequestDeliveryCommand("9000", addrNW, addrNE, "Pizza Place", "56")
		require.NoError(t, err)

		_, err = newHandler(f, newFakeCityMap()).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 2, queues.Len(0))
	})
}
