// Package sqlitestore provides the durable sqlite record map backend.
//
// The seq column is a monotonic insertion sequence, so iteration in seq order
// reproduces the insertion order the in-memory backend keeps with a slice.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/carson-networks/ledger-server/internal/storage/recordmap"
)

var _ recordmap.RecordMap = (*Store)(nil)

// Store is a record map persisted in a sqlite database.
type Store struct {
	db *sql.DB
}

// NewStore opens (creating if needed) the database at dbPath and brings the
// schema up to date.
func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Insert stores the record under record.ID. A conflicting id keeps its
// original seq, so overwrites do not move the record in iteration order.
func (s *Store) Insert(ctx context.Context, record *recordmap.Record) error {
	var notes sql.NullString
	if record.Notes != nil {
		notes = sql.NullString{String: *record.Notes, Valid: true}
	}
	var updatedAt sql.NullInt64
	if record.UpdatedAt != nil {
		updatedAt = sql.NullInt64{Int64: int64(*record.UpdatedAt), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (id, amount, category, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			amount     = excluded.amount,
			category   = excluded.category,
			notes      = excluded.notes,
			updated_at = excluded.updated_at`,
		record.ID, record.Amount.String(), record.Category, notes,
		int64(record.CreatedAt), updatedAt)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

// Get returns the record under id.
func (s *Store) Get(ctx context.Context, id string) (*recordmap.Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, amount, category, notes, created_at, updated_at
		FROM records WHERE id = ?`, id)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, recordmap.ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	return record, nil
}

// Remove deletes the record under id and returns it.
func (s *Store) Remove(ctx context.Context, id string) (*recordmap.Record, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("delete record: %w", err)
	}
	return record, nil
}

// Values returns all records in insertion order.
func (s *Store) Values(ctx context.Context) ([]*recordmap.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, amount, category, notes, created_at, updated_at
		FROM records ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var values []*recordmap.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		values = append(values, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return values, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*recordmap.Record, error) {
	var (
		record    recordmap.Record
		amount    string
		notes     sql.NullString
		createdAt int64
		updatedAt sql.NullInt64
	)
	if err := row.Scan(&record.ID, &amount, &record.Category, &notes, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("parse stored amount %q: %w", amount, err)
	}
	record.Amount = parsed
	record.CreatedAt = uint64(createdAt)
	if notes.Valid {
		record.Notes = &notes.String
	}
	if updatedAt.Valid {
		value := uint64(updatedAt.Int64)
		record.UpdatedAt = &value
	}
	return &record, nil
}
