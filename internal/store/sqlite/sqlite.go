// Package sqlite provides a SQLite-backed implementation of the store.Store
// interface using a pure Go driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/fkhayef/splitledger/internal/money"
	"github.com/fkhayef/splitledger/internal/participant"
	"github.com/fkhayef/splitledger/internal/split"
	"github.com/fkhayef/splitledger/internal/store"
	"github.com/fkhayef/splitledger/internal/transaction"
)

// Ensure SQLiteStore implements store.Store
var _ store.Store = (*SQLiteStore)(nil)

// SQLiteStore implements store.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path. It creates
// the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveLedger persists a finalized ledger and returns the assigned id.
func (s *SQLiteStore) SaveLedger(ctx context.Context, l *transaction.Ledger) (string, error) {
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
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, l.Title, l.Note, l.Date.Unix(), string(l.Method), int64(l.TotalAmount), createdAt.Unix(),
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
func (s *SQLiteStore) GetLedger(ctx context.Context, id string) (*transaction.Ledger, error) {
	var (
		l           transaction.Ledger
		method      string
		totalCents  int64
		dateUnix    int64
		createdUnix int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, note, date, method, total_cents, created_at
		 FROM transactions WHERE id = ?`, id,
	).Scan(&l.ID, &l.Title, &l.Note, &dateUnix, &method, &totalCents, &createdUnix)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}

	l.Method = split.Method(method)
	l.TotalAmount = money.Cents(totalCents)
	l.Date = time.Unix(dateUnix, 0).UTC()
	l.CreatedAt = time.Unix(createdUnix, 0).UTC()

	if err := s.loadEntries(ctx, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// ListLedgers returns persisted ledgers ordered by date descending.
func (s *SQLiteStore) ListLedgers(ctx context.Context, limit, offset int) ([]*transaction.Ledger, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM transactions ORDER BY date DESC, id LIMIT ? OFFSET ?`,
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
func (s *SQLiteStore) ReplaceLedger(ctx context.Context, id string, l *transaction.Ledger) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE transactions SET title = ?, note = ?, date = ?, method = ?, total_cents = ?
		 WHERE id = ?`,
		l.Title, l.Note, l.Date.Unix(), string(l.Method), int64(l.TotalAmount), id,
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
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE transaction_id = ?`, id); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err := insertEntries(ctx, tx, id, l); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	slog.Debug("ledger replaced", "id", id, "method", l.Method)
	return nil
}

// DeleteLedger removes the transaction; payer and split rows cascade.
func (s *SQLiteStore) DeleteLedger(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
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
			`INSERT INTO payments (transaction_id, participant_id, amount_cents) VALUES (?, ?, ?)`,
			id, string(pid), int64(amount),
		)
		if err != nil {
			return fmt.Errorf("failed to insert payment: %w", err)
		}
	}
	for pid, share := range l.OwedBy {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO splits (transaction_id, participant_id, amount_cents, raw_input) VALUES (?, ?, ?, ?)`,
			id, string(pid), int64(share.Amount), share.RawInput,
		)
		if err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}
	}
	return nil
}

// loadEntries populates PaidBy and OwedBy for a loaded transaction row.
func (s *SQLiteStore) loadEntries(ctx context.Context, l *transaction.Ledger) error {
	l.PaidBy = make(map[participant.ID]money.Cents)
	rows, err := s.db.QueryContext(ctx,
		`SELECT participant_id, amount_cents FROM payments WHERE transaction_id = ?`, l.ID)
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
		`SELECT participant_id, amount_cents, raw_input FROM splits WHERE transaction_id = ?`, l.ID)
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
