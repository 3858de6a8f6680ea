// Package store defines the transaction store contract: persistence for
// finalized ledgers and their retrieval for edit-reload. The engine itself
// never touches storage; callers hand it ledgers from here and hand back the
// ledgers it produces.
package store

import (
	"context"
	"errors"

	"github.com/fkhayef/splitledger/internal/transaction"
)

// ErrNotFound is returned when no transaction exists for the given id.
var ErrNotFound = errors.New("transaction not found")

// Store persists finalized ledgers. A ledger is stored as one transaction
// record, one row per payer contribution, and one row per split carrying the
// raw input verbatim next to the computed cents — the raw text is what makes
// lossless re-editing possible.
//
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing callers.
type Store interface {
	// SaveLedger persists a newly finalized ledger and returns its assigned id.
	SaveLedger(ctx context.Context, l *transaction.Ledger) (string, error)

	// GetLedger retrieves a persisted ledger by id, raw inputs included.
	GetLedger(ctx context.Context, id string) (*transaction.Ledger, error)

	// ListLedgers returns persisted ledgers ordered by date descending.
	ListLedgers(ctx context.Context, limit, offset int) ([]*transaction.Ledger, error)

	// ReplaceLedger atomically swaps the stored allocation for id with the
	// re-finalized one, keeping the id stable across edits.
	ReplaceLedger(ctx context.Context, id string, l *transaction.Ledger) error

	// DeleteLedger removes the transaction and its payer and split rows.
	DeleteLedger(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}
