package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage/recordmap"
)

// ListAll returns every record in store order.
func (s *RecordService) ListAll(ctx context.Context) ([]*Record, error) {
	records, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no records", ErrNotFound)
	}
	return records, nil
}

// GetByID returns the record under id.
func (s *RecordService) GetByID(ctx context.Context, id string) (*Record, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id must be a non-empty string", ErrValidation)
	}

	row, err := s.storage.Records.Get(ctx, id)
	if errors.Is(err, recordmap.ErrNoRecord) {
		return nil, fmt.Errorf("%w: no record with id %q", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read record: %v", ErrInternal, err)
	}
	return recordFromStorage(row), nil
}

// ByCategory returns the records whose category matches exactly.
func (s *RecordService) ByCategory(ctx context.Context, category string) ([]*Record, error) {
	if strings.TrimSpace(category) == "" {
		return nil, fmt.Errorf("%w: category must be a non-empty string", ErrValidation)
	}

	records, err := s.filter(ctx, func(r *Record) bool {
		return r.Category == category
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no records in category %q", ErrNotFound, category)
	}
	return records, nil
}

// ByDateRange returns the records created within [start, end], both bounds
// inclusive, compared against the creation timestamp.
func (s *RecordService) ByDateRange(ctx context.Context, start, end uint64) ([]*Record, error) {
	if start > end {
		return nil, fmt.Errorf("%w: start must not be after end", ErrValidation)
	}

	records, err := s.filter(ctx, func(r *Record) bool {
		return r.CreatedAt >= start && r.CreatedAt <= end
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no records created between %d and %d", ErrNotFound, start, end)
	}
	return records, nil
}

// ExpensesGreaterThan returns the expense records whose absolute value
// strictly exceeds the threshold.
func (s *RecordService) ExpensesGreaterThan(ctx context.Context, threshold decimal.Decimal) ([]*Record, error) {
	if !threshold.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}

	records, err := s.filter(ctx, func(r *Record) bool {
		return r.Amount.IsNegative() && r.Amount.Abs().GreaterThan(threshold)
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no expenses greater than %s", ErrNotFound, threshold)
	}
	return records, nil
}

// IncomesLessThan returns the income records strictly below the threshold.
func (s *RecordService) IncomesLessThan(ctx context.Context, threshold decimal.Decimal) ([]*Record, error) {
	if !threshold.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}

	records, err := s.filter(ctx, func(r *Record) bool {
		return r.Amount.IsPositive() && r.Amount.LessThan(threshold)
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no incomes less than %s", ErrNotFound, threshold)
	}
	return records, nil
}

// WithNotes returns the records that carry a note.
func (s *RecordService) WithNotes(ctx context.Context) ([]*Record, error) {
	records, err := s.filter(ctx, func(r *Record) bool {
		return r.Notes != nil
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no records with notes", ErrNotFound)
	}
	return records, nil
}

// WithoutNotes returns the records that carry no note.
func (s *RecordService) WithoutNotes(ctx context.Context) ([]*Record, error) {
	records, err := s.filter(ctx, func(r *Record) bool {
		return r.Notes == nil
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no records without notes", ErrNotFound)
	}
	return records, nil
}

func (s *RecordService) filter(ctx context.Context, keep func(*Record) bool) ([]*Record, error) {
	records, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	var matched []*Record
	for _, record := range records {
		if keep(record) {
			matched = append(matched, record)
		}
	}
	return matched, nil
}
