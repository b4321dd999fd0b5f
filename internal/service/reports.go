package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// GetSummary totals all income and expense amounts. The expense total stays
// negative, so NetFlow = TotalIncome + TotalExpense.
func (s *RecordService) GetSummary(ctx context.Context) (*Summary, error) {
	records, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var totalIncome, totalExpense decimal.Decimal
	for _, record := range records {
		if record.Amount.IsPositive() {
			totalIncome = totalIncome.Add(record.Amount)
		} else {
			totalExpense = totalExpense.Add(record.Amount)
		}
	}

	if totalIncome.IsZero() && totalExpense.IsZero() {
		return nil, fmt.Errorf("%w: no income or expense activity to summarize", ErrNotFound)
	}

	return &Summary{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		NetFlow:      totalIncome.Add(totalExpense),
	}, nil
}

// AverageMonthlyExpenses averages the absolute expense amounts over the
// calendar months the expense records span.
func (s *RecordService) AverageMonthlyExpenses(ctx context.Context) (decimal.Decimal, error) {
	expenses, err := s.filter(ctx, func(r *Record) bool { return r.Amount.IsNegative() })
	if err != nil {
		return decimal.Zero, err
	}
	if len(expenses) == 0 {
		return decimal.Zero, fmt.Errorf("%w: no expense records", ErrNotFound)
	}
	return averagePerMonth(expenses), nil
}

// AverageMonthlyIncome averages the income amounts over the calendar months
// the income records span.
func (s *RecordService) AverageMonthlyIncome(ctx context.Context) (decimal.Decimal, error) {
	incomes, err := s.filter(ctx, func(r *Record) bool { return r.Amount.IsPositive() })
	if err != nil {
		return decimal.Zero, err
	}
	if len(incomes) == 0 {
		return decimal.Zero, fmt.Errorf("%w: no income records", ErrNotFound)
	}
	return averagePerMonth(incomes), nil
}

// ForecastFutureExpenses projects monthsAhead months of spending from the
// average absolute amount per expense record. This is a coarser metric than
// the calendar-month average: it divides by the record count, not the span.
func (s *RecordService) ForecastFutureExpenses(ctx context.Context, monthsAhead int) (decimal.Decimal, error) {
	if monthsAhead <= 0 {
		return decimal.Zero, fmt.Errorf("%w: months must be greater than zero", ErrValidation)
	}

	expenses, err := s.filter(ctx, func(r *Record) bool { return r.Amount.IsNegative() })
	if err != nil {
		return decimal.Zero, err
	}
	if len(expenses) == 0 {
		return decimal.Zero, fmt.Errorf("%w: no expense records", ErrNotFound)
	}

	var total decimal.Decimal
	for _, record := range expenses {
		total = total.Add(record.Amount.Abs())
	}
	perRecord := total.Div(decimal.NewFromInt(int64(len(expenses))))
	return perRecord.Mul(decimal.NewFromInt(int64(monthsAhead))), nil
}

// Export serializes the full record snapshot. Only the json format is
// supported, matched case-insensitively. Timestamps are rendered as decimal
// strings so 64-bit values survive the text representation.
func (s *RecordService) Export(ctx context.Context, format string) (string, error) {
	if !strings.EqualFold(strings.TrimSpace(format), "json") {
		return "", fmt.Errorf("%w: unsupported export format %q", ErrValidation, format)
	}

	records, err := s.snapshot(ctx)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", fmt.Errorf("%w: no records to export", ErrNotFound)
	}

	out := make([]exportRecord, len(records))
	for i, record := range records {
		out[i] = exportRecord{
			ID:        record.ID,
			Amount:    record.Amount.InexactFloat64(),
			Category:  record.Category,
			Notes:     record.Notes,
			CreatedAt: strconv.FormatUint(record.CreatedAt, 10),
		}
		if record.UpdatedAt != nil {
			updatedAt := strconv.FormatUint(*record.UpdatedAt, 10)
			out[i].UpdatedAt = &updatedAt
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: serialize records: %v", ErrInternal, err)
	}
	return string(data), nil
}

type exportRecord struct {
	ID        string  `json:"id"`
	Amount    float64 `json:"amount"`
	Category  string  `json:"category"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt *string `json:"updatedAt,omitempty"`
}

// averagePerMonth divides the records' absolute total by the number of
// calendar months between the earliest and latest creation timestamps,
// inclusive on both ends. Jan 31 to Feb 1 counts as two months; the
// overcount is deliberate and kept for compatibility with the service's
// established figures.
func averagePerMonth(records []*Record) decimal.Decimal {
	var total decimal.Decimal
	earliest, latest := records[0].CreatedAt, records[0].CreatedAt
	for _, record := range records {
		total = total.Add(record.Amount.Abs())
		if record.CreatedAt < earliest {
			earliest = record.CreatedAt
		}
		if record.CreatedAt > latest {
			latest = record.CreatedAt
		}
	}

	first := time.Unix(0, int64(earliest)).UTC()
	last := time.Unix(0, int64(latest)).UTC()
	months := (last.Year()-first.Year())*12 + int(last.Month()) - int(first.Month()) + 1
	if months < 1 {
		months = 1
	}
	return total.Div(decimal.NewFromInt(int64(months)))
}
