package record

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/service"
)

// Record is the wire representation of a financial record. Timestamps are
// nanosecond counts rendered as decimal strings so 64-bit values survive
// JSON number handling.
type Record struct {
	ID        string  `json:"id" doc:"Record UUID"`
	Amount    float64 `json:"amount" doc:"Signed amount: positive is income, negative is expense"`
	Category  string  `json:"category" doc:"Category label"`
	Notes     *string `json:"notes,omitempty" doc:"Optional note, absent when the record has none"`
	CreatedAt string  `json:"createdAt" doc:"Creation time in nanoseconds, as a decimal string"`
	UpdatedAt *string `json:"updatedAt,omitempty" doc:"Last update time in nanoseconds, as a decimal string"`
}

// FromService converts a service record to its wire form.
func FromService(record *service.Record) Record {
	out := Record{
		ID:        record.ID,
		Amount:    record.Amount.InexactFloat64(),
		Category:  record.Category,
		Notes:     record.Notes,
		CreatedAt: strconv.FormatUint(record.CreatedAt, 10),
	}
	if record.UpdatedAt != nil {
		updatedAt := strconv.FormatUint(*record.UpdatedAt, 10)
		out.UpdatedAt = &updatedAt
	}
	return out
}

// FromServiceList converts a slice of service records to wire form.
func FromServiceList(records []*service.Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = FromService(r)
	}
	return out
}

// PayloadBody is the request body shared by create and update.
type PayloadBody struct {
	Amount   float64 `json:"amount" required:"true" doc:"Signed amount, must be non-zero"`
	Category string  `json:"category" required:"true" minLength:"1" doc:"Category label"`
	Notes    *string `json:"notes,omitempty" doc:"Optional note"`
}

// ToService converts the body to a service payload.
func (b PayloadBody) ToService() service.Payload {
	return service.Payload{
		Amount:   decimal.NewFromFloat(b.Amount),
		Category: b.Category,
		Notes:    b.Notes,
	}
}
