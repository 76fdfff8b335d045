package ports

import (
	"context"

	"dispatch/internal/core/domain/model/ledger"
)

// LedgerRepository loads and stores the platform revenue ledger.
type LedgerRepository interface {
	Get(ctx context.Context) (*ledger.Ledger, error)
	Save(ctx context.Context, l *ledger.Ledger) error
}
