package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/events"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/queue"
	"dispatch/internal/core/domain/model/request"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRequestRideCommand(t *testing.T) {
	_, err := commands.NewRequestRideCommand("  ", addrNW, addrNE)
	require.ErrorIs(t, err, kernel.ErrIDIsRequired)

	var cmd commands.RequestRideCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrRequestRideCommandIsNotConstructed)
}

func TestRequestRideCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newFixture()

	alice := mustUser(t, "9000", "Alice", 5000)
	busy := mustDriver(t, "7000", addrNW, 0)
	require.NoError(t, busy.DriveTo(addrNE, 1))
	free := mustDriver(t, "7001", addrSW, 2)
	last := mustDriver(t, "7002", addrNW, 0)
	queues := queue.New()

	f.users.On("Get", ctx, kernel.ID("9000")).Return(alice, nil).Once()
	f.drivers.On("GetAll", ctx).Return([]*driver.Driver{busy, free, last}, nil).Once()
	f.queues.On("Get", ctx).Return(queues, nil).Once()
	f.drivers.On("Update", ctx, free).Return(nil).Once()
	f.queues.On("Save", ctx, queues).Return(nil).Once()
	f.users.On("Update", ctx, alice).Return(nil).Once()
	f.expectCommit()

	cmd, err := commands.NewRequestRideCommand("9000", addrNW, addrNE)
	require.NoError(t, err)

	handler := commands.NewRequestRideCommandHandler(f.factory, newFakeCityMap(), services.DefaultTariff())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.ID("7001"), result.DriverID)
	assert.Equal(t, kernel.Zone(0), result.Zone)
	assert.Equal(t, 10, result.Distance)
	assert.Equal(t, kernel.Money(1500), result.Cost)

	assert.Equal(t, driver.Driving, free.Status())
	require.NotNil(t, free.Service())
	assert.True(t, free.Service().ID().IsEqual(result.RequestID))
	assert.Equal(t, addrSW, free.Address(), "push assignment does not move the driver")
	assert.Equal(t, driver.Available, last.Status())

	queued := queues.Zone(0)
	require.Len(t, queued, 1)
	assert.True(t, queued[0].ID().IsEqual(result.RequestID))

	assert.Equal(t, 1, alice.Rides())
	assert.Equal(t, kernel.Money(5000), alice.Wallet(), "wallet is debited at drop-off")

	require.Len(t, f.uow.Recorded, 1)
	assert.Equal(t, events.ServiceRequestedName, f.uow.Recorded[0].EventName())
	f.assertExpectations(t)
}

func TestRequestRideCommandHandler_Handle_Failures(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wallet  kernel.Money
		cityMap *fakeCityMap
		drivers func(t *testing.T) []*driver.Driver
		queued  func(t *testing.T) *queue.ZoneQueues
		wantErr error
	}{
		{
			name:    "invalid from address",
			from:    "nowhere",
			to:      addrNE,
			wallet:  5000,
			wantErr: commands.ErrInvalidAddress,
		},
		{
			name:    "invalid to address",
			from:    addrNW,
			to:      "nowhere",
			wallet:  5000,
			wantErr: commands.ErrInvalidAddress,
		},
		{
			name:    "one block is walked even without funds or drivers",
			from:    addrNW,
			to:      addrNW2,
			wallet:  0,
			cityMap: newFakeCityMap().withDistance(addrNW, addrNW2, 1),
			wantErr: request.ErrInsufficientTravelDistance,
		},
		{
			name:    "zero blocks",
			from:    addrNW,
			to:      addrNW,
			wallet:  5000,
			cityMap: newFakeCityMap().withDistance(addrNW, addrNW, 0),
			wantErr: request.ErrInsufficientTravelDistance,
		},
		{
			name:    "wallet below cost",
			from:    addrNW,
			to:      addrNE,
			wallet:  1499,
			wantErr: user.ErrInsufficientFunds,
		},
		{
			name:   "every driver busy",
			from:   addrNW,
			to:     addrNE,
			wallet: 5000,
			drivers: func(t *testing.T) []*driver.Driver {
				d := mustDriver(t, "7000", addrNW, 0)
				require.NoError(t, d.DriveTo(addrNE, 1))
				return []*driver.Driver{d}
			},
			wantErr: commands.ErrNoDriversAvailable,
		},
		{
			name:   "same user already waits in the zone",
			from:   addrNW,
			to:     addrNE,
			wallet: 5000,
			queued: func(t *testing.T) *queue.ZoneQueues {
				q := queue.New()
				require.NoError(t, q.Enqueue(0, mustRide(t, "9000", addrNW2, addrSW)))
				return q
			},
			wantErr: commands.ErrDuplicateRequest,
		},
		{
			name:    "pickup address outside every zone",
			from:    addrOutside,
			to:      addrNE,
			wallet:  5000,
			wantErr: queue.ErrInvalidZone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			f := newFixture()

			alice := mustUser(t, "9000", "Alice", tt.wallet)
			drivers := []*driver.Driver{mustDriver(t, "7000", addrNW, 0)}
			if tt.drivers != nil {
				drivers = tt.drivers(t)
			}
			queues := queue.New()
			if tt.queued != nil {
				queues = tt.queued(t)
			}
			cityMap := tt.cityMap
			if cityMap == nil {
				cityMap = newFakeCityMap()
			}

			f.users.On("Get", ctx, kernel.ID("9000")).Return(alice, nil).Once()
			f.drivers.On("GetAll", ctx).Return(drivers, nil).Maybe()
			f.queues.On("Get", ctx).Return(queues, nil).Maybe()

			cmd, err := commands.NewRequestRideCommand("9000", tt.from, tt.to)
			require.NoError(t, err)

			handler := commands.NewRequestRideCommandHandler(f.factory, cityMap, services.DefaultTariff())
			_, err = handler.Handle(ctx, cmd)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, alice.Rides())
			for _, d := range drivers {
				assert.False(t, d.HasService())
			}
			f.drivers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			f.queues.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			f.uow.AssertNotCalled(t, "Commit", mock.Anything)
			assert.Empty(t, f.uow.Recorded)
		})
	}
}

func TestRequestRideCommandHandler_Handle_UserNotFound(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	f.users.On("Get", ctx, kernel.ID("9999")).Return(nil, errs.NewObjectNotFoundError("userId", "9999")).Once()

	cmd, err := commands.NewRequestRideCommand("9999", addrNW, addrNE)
	require.NoError(t, err)

	handler := commands.NewRequestRideCommandHandler(f.factory, newFakeCityMap(), services.DefaultTariff())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrUserNotFound)
	assert.Contains(t, err.Error(), "9999")
}

func TestRequestRideCommandHandler_Handle_OutstandingCost(t *testing.T) {
	// Alice already owes 15.00 for a carried ride and 12.00 for a queued delivery.
	setup := func(t *testing.T, wallet kernel.Money) (*fixture, *user.User, []*driver.Driver, *queue.ZoneQueues) {
		t.Helper()
		ctx := t.Context()
		f := newFixture()
		alice := mustUser(t, "9000", "Alice", wallet)

		carried := mustRide(t, "9000", addrSW, addrNE)
		busy := mustDriver(t, "7000", addrSW, 2)
		require.NoError(t, busy.Assign(carried))
		free := mustDriver(t, "7001", addrNW2, 0)

		waiting, err := request.NewDelivery("9000", addrNE, addrSW, 10, 1200, "Noodle Bar", "F-1")
		require.NoError(t, err)
		queues := queue.New()
		require.NoError(t, queues.Enqueue(2, carried))
		require.NoError(t, queues.Enqueue(1, waiting))

		drivers := []*driver.Driver{busy, free}
		f.users.On("Get", ctx, kernel.ID("9000")).Return(alice, nil).Once()
		f.drivers.On("GetAll", ctx).Return(drivers, nil).Once()
		f.queues.On("Get", ctx).Return(queues, nil).Once()
		return f, alice, drivers, queues
	}

	t.Run("wallet below outstanding plus cost", func(t *testing.T) {
		ctx := t.Context()
		f, alice, drivers, _ := setup(t, 4199)

		cmd, err := commands.NewRequestRideCommand("9000", addrNW, addrNE)
		require.NoError(t, err)

		handler := commands.NewRequestRideCommandHandler(f.factory, newFakeCityMap(), services.DefaultTariff())
		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, user.ErrInsufficientFunds)
		assert.Equal(t, 0, alice.Rides())
		assert.False(t, drivers[1].HasService())
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("wallet exactly covers outstanding plus cost", func(t *testing.T) {
		ctx := t.Context()
		f, alice, drivers, queues := setup(t, 4200)
		f.drivers.On("Update", ctx, drivers[1]).Return(nil).Once()
		f.queues.On("Save", ctx, queues).Return(nil).Once()
		f.users.On("Update", ctx, alice).Return(nil).Once()
		f.expectCommit()

		cmd, err := commands.NewRequestRideCommand("9000", addrNW, addrNE)
		require.NoError(t, err)

		handler := commands.NewRequestRideCommandHandler(f.factory, newFakeCityMap(), services.DefaultTariff())
		result, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, kernel.ID("7001"), result.DriverID)
		f.assertExpectations(t)
	})
}
