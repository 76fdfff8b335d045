package commands_test

import (
	"context"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/events"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/ledger"
	"dispatch/internal/core/domain/model/queue"
	"dispatch/internal/core/domain/model/request"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.ID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) Reorder(ctx context.Context, ids []kernel.ID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.ID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetWithStatus(
	ctx context.Context,
	id kernel.ID,
	status driver.Status,
) (*driver.Driver, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAll(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockZoneQueueRepository struct{ mock.Mock }

func (m *MockZoneQueueRepository) Get(ctx context.Context) (*queue.ZoneQueues, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queue.ZoneQueues), args.Error(1)
}

func (m *MockZoneQueueRepository) Save(ctx context.Context, q *queue.ZoneQueues) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

type MockLedgerRepository struct{ mock.Mock }

func (m *MockLedgerRepository) Get(ctx context.Context) (*ledger.Ledger, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Ledger), args.Error(1)
}

func (m *MockLedgerRepository) Save(ctx context.Context, l *ledger.Ledger) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

// MockUoW keeps recorded events in Recorded instead of matching them as calls.
type MockUoW struct {
	mock.Mock

	Recorded []events.Event
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Record(evts ...events.Event) {
	m.Recorded = append(m.Recorded, evts...)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockUoW) ZoneQueueRepository() ports.ZoneQueueRepository {
	args := m.Called()
	return args.Get(0).(ports.ZoneQueueRepository)
}

func (m *MockUoW) LedgerRepository() ports.LedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.LedgerRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// fixture wires a MockUoW with every repository. Begin, Rollback and the
// repository accessors may be called any number of times; tests that expect a
// successful run register Commit themselves.
type fixture struct {
	users   *MockUserRepository
	drivers *MockDriverRepository
	queues  *MockZoneQueueRepository
	ledger  *MockLedgerRepository
	uow     *MockUoW
	factory *MockUoWFactory
}

func newFixture() *fixture {
	f := &fixture{
		users:   new(MockUserRepository),
		drivers: new(MockDriverRepository),
		queues:  new(MockZoneQueueRepository),
		ledger:  new(MockLedgerRepository),
		uow:     new(MockUoW),
		factory: new(MockUoWFactory),
	}

	f.uow.On("Begin", mock.Anything).Return(nil).Maybe()
	f.uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	f.uow.On("UserRepository").Return(f.users).Maybe()
	f.uow.On("DriverRepository").Return(f.drivers).Maybe()
	f.uow.On("ZoneQueueRepository").Return(f.queues).Maybe()
	f.uow.On("LedgerRepository").Return(f.ledger).Maybe()
	f.factory.On("Create").Return(f.uow).Maybe()

	return f
}

func (f *fixture) expectCommit() {
	f.uow.On("Commit", mock.Anything).Return(nil).Once()
}

func (f *fixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.users.AssertExpectations(t)
	f.drivers.AssertExpectations(t)
	f.queues.AssertExpectations(t)
	f.ledger.AssertExpectations(t)
	f.uow.AssertExpectations(t)
}

// Addresses known to fakeCityMap.
const (
	addrNW      = "15 Alpha Av"
	addrNW2     = "25 Alpha Av"
	addrNE      = "65 Beta Av"
	addrSW      = "15 Gamma St"
	addrOutside = "3 Edge Rd"
)

// fakeCityMap resolves a fixed set of addresses. Distances default to 10 blocks.
type fakeCityMap struct {
	zones     map[string]kernel.Zone
	distances map[[2]string]int
}

func newFakeCityMap() *fakeCityMap {
	return &fakeCityMap{
		zones: map[string]kernel.Zone{
			addrNW:      0,
			addrNW2:     0,
			addrNE:      1,
			addrSW:      2,
			addrOutside: kernel.ZoneNone,
		},
		distances: map[[2]string]int{},
	}
}

func (c *fakeCityMap) withDistance(from, to string, distance int) *fakeCityMap {
	c.distances[[2]string{from, to}] = distance
	return c
}

func (c *fakeCityMap) IsValidAddress(address string) bool {
	_, ok := c.zones[address]
	return ok
}

func (c *fakeCityMap) Zone(address string) kernel.Zone {
	z, ok := c.zones[address]
	if !ok {
		return kernel.ZoneNone
	}
	return z
}

func (c *fakeCityMap) Distance(from string, to string) int {
	if d, ok := c.distances[[2]string{from, to}]; ok {
		return d
	}
	return 10
}

func mustUser(t *testing.T, id kernel.ID, name string, wallet kernel.Money) *user.User {
	t.Helper()
	u, err := user.NewUser(id, name, addrNW, wallet)
	require.NoError(t, err)
	return u
}

func mustDriver(t *testing.T, id kernel.ID, address string, zone kernel.Zone) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(id, "Frank", "Toyota Corolla", "ABC 123", address, zone)
	require.NoError(t, err)
	return d
}

func mustRide(t *testing.T, userID kernel.ID, from string, to string) *request.Request {
	t.Helper()
	r, err := request.NewRide(userID, from, to, 10, 1500)
	require.NoError(t, err)
	return r
}
