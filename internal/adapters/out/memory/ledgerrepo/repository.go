// Package ledgerrepo stores the revenue ledger of the in-memory store.
package ledgerrepo

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/ledger"
)

// LedgerDTO is the stored form of the revenue ledger.
type LedgerDTO struct {
	RevenueCents int64 `json:"revenue_cents"`
	PayoutsCents int64 `json:"payouts_cents"`
	Completed    int   `json:"completed"`
}

// MemoryLedgerRepository implements LedgerRepository over a LedgerDTO.
type MemoryLedgerRepository struct {
	state *LedgerDTO
}

func NewMemoryLedgerRepository(state *LedgerDTO) *MemoryLedgerRepository {
	return &MemoryLedgerRepository{state: state}
}

func (r *MemoryLedgerRepository) Get(_ context.Context) (*ledger.Ledger, error) {
	return ledger.Restore(
		kernel.Money(r.state.RevenueCents),
		kernel.Money(r.state.PayoutsCents),
		r.state.Completed,
	)
}

func (r *MemoryLedgerRepository) Save(_ context.Context, l *ledger.Ledger) error {
	*r.state = LedgerDTO{
		RevenueCents: l.Revenue().Cents(),
		PayoutsCents: l.Payouts().Cents(),
		Completed:    l.Completed(),
	}
	return nil
}
