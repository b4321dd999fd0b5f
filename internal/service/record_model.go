package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/storage/recordmap"
)

// Record represents a financial record in the service layer.
//
// Amount sign is the income/expense convention: positive amounts are income,
// negative amounts are expenses. Notes is nil when the record carries no
// note; an empty note is a different state. CreatedAt is assigned once at
// creation; UpdatedAt stays nil until the first update and is refreshed on
// every later one.
type Record struct {
	ID        string
	Amount    decimal.Decimal
	Category  string
	Notes     *string
	CreatedAt uint64
	UpdatedAt *uint64
}

// Payload carries the caller-supplied fields of a create or update.
type Payload struct {
	Amount   decimal.Decimal
	Category string
	Notes    *string
}

// Validate checks the payload fields every mutation requires.
func (p Payload) Validate() error {
	if p.Amount.IsZero() {
		return fmt.Errorf("%w: amount must be a non-zero number", ErrValidation)
	}
	if strings.TrimSpace(p.Category) == "" {
		return fmt.Errorf("%w: category must be a non-empty string", ErrValidation)
	}
	return nil
}

// Summary aggregates the store's income and expense totals. TotalExpense is
// kept negative, so NetFlow is always the plain sum of the two totals.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetFlow      decimal.Decimal
}

func recordFromStorage(row *recordmap.Record) *Record {
	return &Record{
		ID:        row.ID,
		Amount:    row.Amount,
		Category:  row.Category,
		Notes:     row.Notes,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func recordToStorage(record *Record) *recordmap.Record {
	return &recordmap.Record{
		ID:        record.ID,
		Amount:    record.Amount,
		Category:  record.Category,
		Notes:     record.Notes,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}
