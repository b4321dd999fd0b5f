package recordmap

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrNoRecord is returned when no record exists under the requested id.
var ErrNoRecord = errors.New("no record under id")

// Record is the stored representation of a financial record.
//
// Amount sign carries the income/expense distinction: positive amounts are
// income, negative amounts are expenses. Notes is nil when the record has no
// note, which is distinct from an empty note. Timestamps are host-clock
// nanoseconds; CreatedAt is set once at creation and never changes, UpdatedAt
// is nil until the record is first updated.
type Record struct {
	ID        string
	Amount    decimal.Decimal
	Category  string
	Notes     *string
	CreatedAt uint64
	UpdatedAt *uint64
}

// Clone returns a copy sharing no pointers with the original, so callers can
// hold snapshots across store mutations.
func (r *Record) Clone() *Record {
	clone := *r
	if r.Notes != nil {
		notes := *r.Notes
		clone.Notes = &notes
	}
	if r.UpdatedAt != nil {
		updatedAt := *r.UpdatedAt
		clone.UpdatedAt = &updatedAt
	}
	return &clone
}

// RecordMap is the ordered id -> record map the service is built on.
//
// Implementations must preserve insertion order across Values calls: a record
// inserted under a new id goes to the end, a record inserted under an existing
// id replaces the value in place. Values returns a snapshot taken at call
// time; later mutations do not affect an already returned slice.
type RecordMap interface {
	// Insert stores the record under record.ID, overwriting any existing
	// record with the same id.
	Insert(ctx context.Context, record *Record) error

	// Get returns the record under id, or ErrNoRecord.
	Get(ctx context.Context, id string) (*Record, error)

	// Remove deletes and returns the record under id, or ErrNoRecord.
	Remove(ctx context.Context, id string) (*Record, error)

	// Values returns a snapshot of all records in insertion order.
	Values(ctx context.Context) ([]*Record, error)

	// Close releases any resources held by the map.
	Close() error
}
