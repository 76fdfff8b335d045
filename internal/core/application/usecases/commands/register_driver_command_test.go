package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterDriverCommand(t *testing.T) {
	tests := []struct {
		name     string
		driver   string
		carModel string
		plate    string
		wantErr  error
	}{
		{name: "missing name", driver: "", carModel: "Civic", plate: "AB 12", wantErr: driver.ErrNameIsRequired},
		{name: "missing car model", driver: "Frank", carModel: " ", plate: "AB 12", wantErr: driver.ErrCarModelIsRequired},
		{name: "missing plate", driver: "Frank", carModel: "Civic", plate: "", wantErr: driver.ErrLicensePlateIsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewRegisterDriverCommand(tt.driver, tt.carModel, tt.plate, addrNW)

			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("accepts a blank address", func(t *testing.T) {
		cmd, err := commands.NewRegisterDriverCommand("Frank", "Civic", "AB 12", "  ")

		require.NoError(t, err)
		assert.Empty(t, cmd.Address())
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cmd commands.RegisterDriverCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrRegisterDriverCommandIsNotConstructed)
	})
}

func TestRegisterDriverCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		count    int
		wantID   kernel.ID
		wantZone kernel.Zone
	}{
		{name: "mapped address", address: addrNE, count: 0, wantID: "7000", wantZone: 1},
		{name: "unmapped address is accepted", address: addrOutside, count: 11, wantID: "70011", wantZone: kernel.ZoneNone},
		{name: "blank address is accepted", address: "", count: 1, wantID: "7001", wantZone: kernel.ZoneNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			f := newFixture()
			f.drivers.On("Count", ctx).Return(tt.count, nil).Once()
			f.drivers.On("Add", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once()
			f.expectCommit()

			cmd, err := commands.NewRegisterDriverCommand("Frank", "Civic", "AB 12", tt.address)
			require.NoError(t, err)

			handler := commands.NewRegisterDriverCommandHandler(f.factory, newFakeCityMap())
			id, err := handler.Handle(ctx, cmd)

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
			added := f.drivers.Calls[1].Arguments[1].(*driver.Driver)
			assert.Equal(t, tt.wantZone, added.Zone())
			assert.Equal(t, driver.Available, added.Status())
			f.assertExpectations(t)
		})
	}

	t.Run("maps an id collision to duplicate driver", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		f.drivers.On("Count", ctx).Return(0, nil).Once()
		f.drivers.On("Add", ctx, mock.AnythingOfType("*driver.Driver")).
			Return(errs.NewObjectAlreadyExistsError("driverId", "7000")).
			Once()

		cmd, err := commands.NewRegisterDriverCommand("Frank", "Civic", "AB 12", addrNW)
		require.NoError(t, err)

		handler := commands.NewRegisterDriverCommandHandler(f.factory, newFakeCityMap())
		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrDuplicateDriver)
	})
}
