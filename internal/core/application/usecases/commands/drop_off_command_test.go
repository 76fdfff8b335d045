package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/events"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/ledger"
	"dispatch/internal/core/domain/model/queue"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDropOffCommandHandler_Handle(t *testing.T) {
	newHandler := func(f *fixture) commands.DropOffCommandHandler {
		return commands.NewDropOffCommandHandler(f.factory, newFakeCityMap(), services.DefaultTariff())
	}

	t.Run("settles cost between user driver and platform", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		alice := mustUser(t, "9000", "Alice", 5000)
		ride := mustRide(t, "9000", addrNW, addrNE)
		d := mustDriver(t, "7000", addrNW, 0)
		require.NoError(t, d.Assign(ride))
		l := ledger.New()

		f.drivers.On("GetWithStatus", ctx, kernel.ID("7000"), driver.Driving).Return(d, nil).Once()
		f.users.On("Get", ctx, kernel.ID("9000")).Return(alice, nil).Once()
		f.ledger.On("Get", ctx).Return(l, nil).Once()
		f.queues.On("Get", ctx).Return(queue.New(), nil).Once()
		f.drivers.On("Update", ctx, d).Return(nil).Once()
		f.users.On("Update", ctx, alice).Return(nil).Once()
		f.ledger.On("Save", ctx, l).Return(nil).Once()
		f.expectCommit()

		cmd, err := commands.NewDropOffCommand("7000")
		require.NoError(t, err)

		result, err := newHandler(f).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, kernel.Money(1500), result.Cost)
		assert.Equal(t, kernel.Money(150), result.Pay)
		assert.Equal(t, kernel.Money(1350), result.Revenue)
		assert.Equal(t, kernel.Money(3500), alice.Wallet())
		assert.Equal(t, kernel.Money(1350), l.Revenue())
		assert.Equal(t, kernel.Money(150), d.Earnings())
		assert.Equal(t, driver.Available, d.Status())
		assert.Equal(t, addrNE, d.Address())
		assert.Equal(t, kernel.Zone(1), d.Zone())
		assert.False(t, d.HasService())
		require.Len(t, f.uow.Recorded, 1)
		assert.Equal(t, events.ServiceCompletedName, f.uow.Recorded[0].EventName())
		f.assertExpectations(t)
	})

	t.Run("served request leaves the queue it was pushed to", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		alice := mustUser(t, "9000", "Alice", 1500)
		ride := mustRide(t, "9000", addrNW, addrNE)
		waiting := mustRide(t, "9001", addrNW2, addrSW)
		d := mustDriver(t, "7000", addrNW, 0)
		require.NoError(t, d.Assign(ride))
		queues := queue.New()
		require.NoError(t, queues.Enqueue(0, ride))
		require.NoError(t, queues.Enqueue(0, waiting))
		l := ledger.New()

		f.drivers.On("GetWithStatus", ctx, kernel.ID("7000"), driver.Driving).Return(d, nil).Once()
		f.users.On("Get", ctx, kernel.ID("9000")).Return(alice, nil).Once()
		f.ledger.On("Get", ctx).Return(l, nil).Once()
		f.queues.On("Get", ctx).Return(queues, nil).Once()
		f.drivers.On("Update", ctx, d).Return(nil).Once()
		f.users.On("Update", ctx, alice).Return(nil).Once()
		f.ledger.On("Save", ctx, l).Return(nil).Once()
		f.queues.On("Save", ctx, queues).Return(nil).Once()
		f.expectCommit()

		cmd, err := commands.NewDropOffCommand("7000")
		require.NoError(t, err)

		_, err = newHandler(f).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, kernel.Money(0), alice.Wallet(), "a wallet that covered the request pays it in full")
		remaining := queues.Zone(0)
		require.Len(t, remaining, 1)
		assert.Same(t, waiting, remaining[0])
		f.assertExpectations(t)
	})

	t.Run("repositioned driver has nothing to drop off", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		d := mustDriver(t, "7000", addrNW, 0)
		require.NoError(t, d.DriveTo(addrNE, 1))
		f.drivers.On("GetWithStatus", ctx, kernel.ID("7000"), driver.Driving).Return(d, nil).Once()

		cmd, err := commands.NewDropOffCommand("7000")
		require.NoError(t, err)

		_, err = newHandler(f).Handle(ctx, cmd)

		require.ErrorIs(t, err, driver.ErrDriverHasNoService)
	})

	t.Run("driver not driving", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		f.drivers.On("GetWithStatus", ctx, kernel.ID("7000"), driver.Driving).
			Return(nil, errs.NewObjectNotFoundError("driverId", "7000")).
			Once()

		cmd, err := commands.NewDropOffCommand("7000")
		require.NoError(t, err)

		_, err = newHandler(f).Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrDriverNotFound)
		assert.Contains(t, err.Error(), "DRIVING")
	})

	t.Run("blank driver id", func(t *testing.T) {
		_, err := commands.NewDropOffCommand("")

		require.ErrorIs(t, err, commands.ErrInvalidDriverID)
	})
}
