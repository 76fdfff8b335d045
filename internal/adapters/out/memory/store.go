package memory

import (
	"context"

	"dispatch/internal/adapters/out/memory/driverrepo"
	"dispatch/internal/adapters/out/memory/ledgerrepo"
	"dispatch/internal/adapters/out/memory/queuerepo"
	"dispatch/internal/adapters/out/memory/userrepo"
)

// state is everything the dispatch engine persists.
type state struct {
	users   *userrepo.Table
	drivers *driverrepo.Table
	queues  queuerepo.QueuesDTO
	ledger  ledgerrepo.LedgerDTO
}

func (s state) clone() state {
	return state{
		users:   s.users.Clone(),
		drivers: s.drivers.Clone(),
		queues:  s.queues.Clone(),
		ledger:  s.ledger,
	}
}

// Store holds the committed state of the process. A single lock serialises
// units of work: between Begin and Commit or Rollback no other unit of work can
// start.
type Store struct {
	lock      chan struct{}
	committed state
}

func NewStore() *Store {
	return &Store{
		lock: make(chan struct{}, 1),
		committed: state{
			users:   userrepo.NewTable(),
			drivers: driverrepo.NewTable(),
		},
	}
}

// acquire waits for the store lock or for ctx to end.
func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.lock <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() {
	<-s.lock
}

// snapshot copies the committed state under the lock.
func (s *Store) snapshot() state {
	s.lock <- struct{}{}
	defer s.release()
	return s.committed.clone()
}
