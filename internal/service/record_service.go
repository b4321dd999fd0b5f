package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/recordmap"
)

// RecordService owns the financial record store and every operation over it.
type RecordService struct {
	storage *storage.Storage
	clock   Clock
	ids     IDGenerator
}

// NewRecordService creates a new RecordService.
func NewRecordService(store *storage.Storage, clock Clock, ids IDGenerator) *RecordService {
	return &RecordService{storage: store, clock: clock, ids: ids}
}

// Create validates the payload, assigns a fresh id and creation timestamp,
// and inserts the new record.
func (s *RecordService) Create(ctx context.Context, payload Payload) (*Record, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	id, err := s.ids.NewID()
	if err != nil {
		return nil, err
	}

	record := &Record{
		ID:        id,
		Amount:    payload.Amount,
		Category:  payload.Category,
		Notes:     payload.Notes,
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.Records.Insert(ctx, recordToStorage(record)); err != nil {
		return nil, fmt.Errorf("%w: insert record: %v", ErrInternal, err)
	}
	return record, nil
}

// Update overwrites the amount, category, and notes of an existing record
// with the payload and refreshes its update timestamp. The id and creation
// timestamp are preserved.
func (s *RecordService) Update(ctx context.Context, id string, payload Payload) (*Record, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	record, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	record.Amount = payload.Amount
	record.Category = payload.Category
	record.Notes = payload.Notes
	updatedAt := s.clock.Now()
	record.UpdatedAt = &updatedAt

	if err := s.storage.Records.Insert(ctx, recordToStorage(record)); err != nil {
		return nil, fmt.Errorf("%w: update record: %v", ErrInternal, err)
	}
	return record, nil
}

// Delete removes the record under id and returns it.
func (s *RecordService) Delete(ctx context.Context, id string) (*Record, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id must be a non-empty string", ErrValidation)
	}

	removed, err := s.storage.Records.Remove(ctx, id)
	if errors.Is(err, recordmap.ErrNoRecord) {
		return nil, fmt.Errorf("%w: no record with id %q", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: remove record: %v", ErrInternal, err)
	}
	return recordFromStorage(removed), nil
}

// RenameCategory moves every record in oldCategory to newCategory and returns
// the renamed records. Update timestamps are left untouched: the rename is a
// relabeling, not an edit of the records' content by their owner.
func (s *RecordService) RenameCategory(ctx context.Context, oldCategory, newCategory string) ([]*Record, error) {
	if strings.TrimSpace(oldCategory) == "" || strings.TrimSpace(newCategory) == "" {
		return nil, fmt.Errorf("%w: both category names must be non-empty strings", ErrValidation)
	}

	values, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var matched []*Record
	for _, record := range values {
		if record.Category == oldCategory {
			matched = append(matched, record)
		}
	}
	if len(matched) == 0 {
		return nil, fmt.Errorf("%w: no records in category %q", ErrNotFound, oldCategory)
	}

	for _, record := range matched {
		record.Category = newCategory
		if err := s.storage.Records.Insert(ctx, recordToStorage(record)); err != nil {
			return nil, fmt.Errorf("%w: rename record %s: %v", ErrInternal, record.ID, err)
		}
	}
	return matched, nil
}

// snapshot returns all records in store order.
func (s *RecordService) snapshot(ctx context.Context) ([]*Record, error) {
	values, err := s.storage.Records.Values(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: read store: %v", ErrInternal, err)
	}
	records := make([]*Record, len(values))
	for i, row := range values {
		records[i] = recordFromStorage(row)
	}
	return records, nil
}
