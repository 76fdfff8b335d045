package memory_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"dispatch/internal/adapters/out/memory"
	"dispatch/internal/core/domain/events"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/ledger"
	"dispatch/internal/core/domain/model/queue"
	"dispatch/internal/core/domain/model/request"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type recordingPublisher struct {
	mu        sync.Mutex
	published []events.Event
	err       error
}

func (p *recordingPublisher) Publish(_ context.Context, evts ...events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, evts...)
	return p.err
}

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]string, 0, len(p.published))
	for _, e := range p.published {
		names = append(names, e.EventName())
	}
	return names
}

type UnitOfWorkTestSuite struct {
	suite.Suite
	ctx       context.Context
	publisher *recordingPublisher
	factory   *memory.UnitOfWorkFactory
}

func (suite *UnitOfWorkTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.publisher = &recordingPublisher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.factory = memory.NewUnitOfWorkFactory(memory.NewStore(), suite.publisher, logger)
}

func (suite *UnitOfWorkTestSuite) newUser(id kernel.ID, name string) *user.User {
	u, err := user.NewUser(id, name, "15 Alpha Av", 10_000)
	suite.Require().NoError(err)
	return u
}

func (suite *UnitOfWorkTestSuite) newDriver(id kernel.ID) *driver.Driver {
	d, err := driver.NewDriver(id, "Frank", "Toyota Corolla", "ABC 123", "65 Beta Av", 1)
	suite.Require().NoError(err)
	return d
}

func (suite *UnitOfWorkTestSuite) TestFactory_CreatesSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.UserRepository())
	suite.NotNil(uow2.LedgerRepository())
}

func (suite *UnitOfWorkTestSuite) TestTransactionLifecycle() {
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(suite.ctx))
	suite.Require().NoError(uow.Begin(suite.ctx), "Begin on an active unit of work is a no-op")
	suite.Require().NoError(uow.Commit(suite.ctx))

	suite.Require().NoError(uow.Begin(suite.ctx))
	suite.Require().NoError(uow.Rollback(suite.ctx))
}

func (suite *UnitOfWorkTestSuite) TestTransactionErrors() {
	uow := suite.factory.Create()

	suite.ErrorIs(uow.Commit(suite.ctx), memory.ErrInvalidTransaction)
	suite.ErrorIs(uow.Rollback(suite.ctx), memory.ErrInvalidTransaction)
}

func (suite *UnitOfWorkTestSuite) TestCommit_MakesChangesVisible() {
	u := suite.newUser("900", "Alice")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(suite.ctx))
	suite.Require().NoError(uow.UserRepository().Add(suite.ctx, u))
	uow.Record(events.NewUserRegistered(u))
	suite.Require().NoError(uow.Commit(suite.ctx))

	got, err := suite.factory.Create().UserRepository().Get(suite.ctx, "900")
	suite.Require().NoError(err)
	suite.Equal("Alice", got.Name())
	suite.Equal([]string{events.UserRegisteredName}, suite.publisher.names())
}

func (suite *UnitOfWorkTestSuite) TestRollback_DiscardsChangesAndEvents() {
	u := suite.newUser("900", "Alice")
	d := suite.newDriver("700")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(suite.ctx))
	suite.Require().NoError(uow.UserRepository().Add(suite.ctx, u))
	suite.Require().NoError(uow.DriverRepository().Add(suite.ctx, d))
	uow.Record(events.NewUserRegistered(u), events.NewDriverRegistered(d))
	suite.Require().NoError(uow.Rollback(suite.ctx))

	reader := suite.factory.Create()
	_, err := reader.UserRepository().Get(suite.ctx, "900")
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	count, err := reader.DriverRepository().Count(suite.ctx)
	suite.Require().NoError(err)
	suite.Zero(count)
	suite.Empty(suite.publisher.names())
}

func (suite *UnitOfWorkTestSuite) TestMultiRepositoryCommit() {
	u := suite.newUser("900", "Alice")
	ride, err := request.NewRide(u.ID(), "15 Alpha Av", "65 Beta Av", 5, 750)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(suite.ctx))
	suite.Require().NoError(uow.UserRepository().Add(suite.ctx, u))

	q, err := uow.ZoneQueueRepository().Get(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().NoError(q.Enqueue(0, ride))
	suite.Require().NoError(uow.ZoneQueueRepository().Save(suite.ctx, q))

	l := ledger.New()
	_, err = l.Settle(750, 1000)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.LedgerRepository().Save(suite.ctx, l))
	suite.Require().NoError(uow.Commit(suite.ctx))

	reader := suite.factory.Create()
	stored, err := reader.ZoneQueueRepository().Get(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(1, stored.Len(0))
	suite.Equal(ride.ID(), stored.Zone(0)[0].ID())

	storedLedger, err := reader.LedgerRepository().Get(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(kernel.Money(675), storedLedger.Revenue())
	suite.Equal(1, storedLedger.Completed())
}

func (suite *UnitOfWorkTestSuite) TestWritesOutsideTransaction_AreDiscarded() {
	uow := suite.factory.Create()
	suite.Require().NoError(uow.UserRepository().Add(suite.ctx, suite.newUser("900", "Alice")))

	count, err := suite.factory.Create().UserRepository().Count(suite.ctx)
	suite.Require().NoError(err)
	suite.Zero(count)
}

func (suite *UnitOfWorkTestSuite) TestBegin_WaitsForActiveTransaction() {
	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(suite.ctx))

	ctx, cancel := context.WithTimeout(suite.ctx, 20*time.Millisecond)
	defer cancel()
	err := suite.factory.Create().Begin(ctx)
	suite.ErrorIs(err, context.DeadlineExceeded)

	suite.Require().NoError(first.Rollback(suite.ctx))
	second := suite.factory.Create()
	suite.Require().NoError(second.Begin(suite.ctx))
	suite.Require().NoError(second.Rollback(suite.ctx))
}

func (suite *UnitOfWorkTestSuite) TestConcurrentCommits_AreSerialised() {
	const writers = 20

	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uow := suite.factory.Create()
			if err := uow.Begin(suite.ctx); err != nil {
				return
			}
			defer func() { _ = uow.Rollback(suite.ctx) }()

			n, _ := uow.UserRepository().Count(suite.ctx)
			u, err := user.NewUser(kernel.NewSequentialID(kernel.UserIDBase, n), "Alice", "15 Alpha Av", 0)
			if err != nil {
				return
			}
			_ = uow.UserRepository().Add(suite.ctx, u)
			_ = uow.Commit(suite.ctx)
		}()
	}
	wg.Wait()

	count, err := suite.factory.Create().UserRepository().Count(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(writers, count)
}

func (suite *UnitOfWorkTestSuite) TestPublishFailure_KeepsCommit() {
	suite.publisher.err = errors.New("broker down")
	d := suite.newDriver("700")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(suite.ctx))
	suite.Require().NoError(uow.DriverRepository().Add(suite.ctx, d))
	uow.Record(events.NewDriverRegistered(d))
	suite.Require().NoError(uow.Commit(suite.ctx))

	_, err := suite.factory.Create().DriverRepository().Get(suite.ctx, "700")
	suite.NoError(err)
}

func (suite *UnitOfWorkTestSuite) TestAggregatesAreCopies() {
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(suite.ctx))
	suite.Require().NoError(uow.ZoneQueueRepository().Save(suite.ctx, queue.New()))
	q, err := uow.ZoneQueueRepository().Get(suite.ctx)
	suite.Require().NoError(err)
	ride, err := request.NewRide("900", "15 Alpha Av", "65 Beta Av", 5, 750)
	suite.Require().NoError(err)
	suite.Require().NoError(q.Enqueue(0, ride))
	suite.Require().NoError(uow.Commit(suite.ctx))

	stored, err := suite.factory.Create().ZoneQueueRepository().Get(suite.ctx)
	suite.Require().NoError(err)
	suite.Zero(stored.Len(0), "unsaved aggregate changes must not leak")
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}
