// Package postgres provides a PostgreSQL-backed implementation of the
// store.Store interface.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/fkhayef/splitledger/internal/money"
	"github.com/fkhayef/splitledger/internal/participant"
	"github.com/fkhayef/splitledger/internal/split"
	"github.com/fkhayef/splitledger/internal/store"
	"github.com/fkhayef/splitledger/internal/transaction"
)

// Ensure PostgresStore implements store.Store
var _ store.Store = (*PostgresStore)(nil)

// PostgresStore implements store.Store using PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// New connects to PostgreSQL with the given URL and verifies the connection.
func New(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// Migrate creates the schema if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS transactions (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    note TEXT NOT NULL DEFAULT '',
    date TIMESTAMPTZ NOT NULL,
    method TEXT NOT NULL,
    total_cents BIGINT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS payments (
    transaction_id TEXT NOT NULL REFERENCES transactions(id) ON DELETE CASCADE,
    participant_id TEXT NOT NULL,
    amount_cents BIGINT NOT NULL,
    PRIMARY KEY (transaction_id, participant_id)
);

CREATE TABLE IF NOT EXISTS splits (
    transaction_id TEXT NOT NULL REFERENCES transactions(id) ON DELETE CASCADE,
    participant_id TEXT NOT NULL,
    amount_cents BIGINT NOT NULL,
    raw_input TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (transaction_id, participant_id)
);

CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);
`

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// SaveLedger persists a finalized ledger and returns the assigned id.
func (s *PostgresStore) SaveLedger(ctx context.Context, l *transaction.Ledger) (string, error) {
	id := l.ID
	if id == "" {
		id = uuid.New().String()
	}
	createdAt := l.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO transactions (id, title, note, date, method, total_cents, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, l.Title, l.Note, l.Date, string(l.Method), int64(l.TotalAmount), createdAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert transaction: %w", err)
	}

	if err := insertEntries(ctx, tx, id, l); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	slog.Debug("ledger saved", "id", id, "method", l.Method, "total_cents", int64(l.TotalAmount))
	return id, nil
}

// GetLedger retrieves a persisted ledger by id, raw inputs included.
func (s *PostgresStore) GetLedger(ctx context.Context, id string) (*transaction.Ledger, error) {
	var (
		l          transaction.Ledger
		method     string
		totalCents int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, note, date, method, total_cents, created_at
		 FROM transactions WHERE id = $1`, id,
	).Scan(&l.ID, &l.Title, &l.Note, &l.Date, &method, &totalCents, &l.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}

	l.Method = split.Method(method)
	l.TotalAmount = money.Cents(totalCents)

	if err := s.loadEntries(ctx, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// ListLedgers returns persisted ledgers ordered by date descending.
func (s *PostgresStore) ListLedgers(ctx context.Context, limit, offset int) ([]*transaction.Ledger, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM transactions ORDER BY date DESC, id LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan transaction id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	ledgers := make([]*transaction.Ledger, 0, len(ids))
	for _, id := range ids {
		l, err := s.GetLedger(ctx, id)
		if err != nil {
			return nil, err
		}
		ledgers = append(ledgers, l)
	}
	return ledgers, nil
}

// ReplaceLedger swaps the stored allocation for id with a re-finalized one.
func (s *PostgresStore) ReplaceLedger(ctx context.Context, id string, l *transaction.Ledger) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE transactions SET title = $1, note = $2, date = $3, method = $4, total_cents = $5
		 WHERE id = $6`,
		l.Title, l.Note, l.Date, string(l.Method), int64(l.TotalAmount), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}

	for _, table := range []string{"payments", "splits"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE transaction_id = $1`, id); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err := insertEntries(ctx, tx, id, l); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteLedger removes the transaction; payer and split rows cascade.
func (s *PostgresStore) DeleteLedger(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// insertEntries writes the payer-contribution and split rows for a ledger.
func insertEntries(ctx context.Context, tx *sql.Tx, id string, l *transaction.Ledger) error {
	for pid, amount := range l.PaidBy {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO payments (transaction_id, participant_id, amount_cents) VALUES ($1, $2, $3)`,
			id, string(pid), int64(amount),
		)
		if err != nil {
			return fmt.Errorf("failed to insert payment: %w", err)
		}
	}
	for pid, share := range l.OwedBy {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO splits (transaction_id, participant_id, amount_cents, raw_input) VALUES ($1, $2, $3, $4)`,
			id, string(pid), int64(share.Amount), share.RawInput,
		)
		if err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}
	}
	return nil
}

// loadEntries populates PaidBy and OwedBy for a loaded transaction row.
func (s *PostgresStore) loadEntries(ctx context.Context, l *transaction.Ledger) error {
	l.PaidBy = make(map[participant.ID]money.Cents)
	rows, err := s.db.QueryContext(ctx,
		`SELECT participant_id, amount_cents FROM payments WHERE transaction_id = $1`, l.ID)
	if err != nil {
		return fmt.Errorf("failed to load payments: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var pid string
		var cents int64
		if err := rows.Scan(&pid, &cents); err != nil {
			return fmt.Errorf("failed to scan payment: %w", err)
		}
		l.PaidBy[participant.ID(pid)] = money.Cents(cents)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate payments: %w", err)
	}

	l.OwedBy = make(map[participant.ID]transaction.Share)
	srows, err := s.db.QueryContext(ctx,
		`SELECT participant_id, amount_cents, raw_input FROM splits WHERE transaction_id = $1`, l.ID)
	if err != nil {
		return fmt.Errorf("failed to load splits: %w", err)
	}
	defer srows.Close()
	for srows.Next() {
		var pid, raw string
		var cents int64
		if err := srows.Scan(&pid, &cents, &raw); err != nil {
			return fmt.Errorf("failed to scan split: %w", err)
		}
		l.OwedBy[participant.ID(pid)] = transaction.Share{Amount: money.Cents(cents), RawInput: raw}
	}
	if err := srows.Err(); err != nil {
		return fmt.Errorf("failed to iterate splits: %w", err)
	}
	return nil
}
