package query

import (
	"context"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/record"
	"github.com/carson-networks/ledger-server/internal/service"
)

// ByDateRangeInput is the Huma input for filtering by creation time range.
// Bounds are nanosecond timestamps as decimal strings, both inclusive.
type ByDateRangeInput struct {
	Start string `query:"start" required:"true" doc:"Range start in nanoseconds, as a decimal string"`
	End   string `query:"end" required:"true" doc:"Range end in nanoseconds, as a decimal string"`
}

// ByDateRangeOutput is the Huma output for filtering by date range.
type ByDateRangeOutput struct {
	Body MatchesResponseBody
}

// dateRangeFilter is the interface for filtering by creation time range.
type dateRangeFilter interface {
	ByDateRange(ctx context.Context, start, end uint64) ([]*service.Record, error)
}

// ByDateRangeHandler handles GET /v1/records/range.
type ByDateRangeHandler struct {
	RecordService dateRangeFilter
}

// NewByDateRangeHandler creates a new ByDateRangeHandler.
func NewByDateRangeHandler(svc dateRangeFilter) *ByDateRangeHandler {
	return &ByDateRangeHandler{RecordService: svc}
}

// Register registers the by-date-range endpoint with the Huma API.
func (h *ByDateRangeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "records-by-date-range",
		Method:      http.MethodGet,
		Path:        "/v1/records/range",
		Summary:     "Records by date range",
		Description: "Returns the records created within the inclusive timestamp range.",
		Tags:        []string{"Queries"},
	}, h.handle)
}

func (h *ByDateRangeHandler) handle(ctx context.Context, input *ByDateRangeInput) (*ByDateRangeOutput, error) {
	start, err := strconv.ParseUint(input.Start, 10, 64)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid start", err)
	}
	end, err := strconv.ParseUint(input.End, 10, 64)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid end", err)
	}

	records, err := h.RecordService.ByDateRange(ctx, start, end)
	if err != nil {
		return nil, httperr.FromService(err, "failed to filter by date range")
	}

	return &ByDateRangeOutput{
		Body: MatchesResponseBody{Records: record.FromServiceList(records)},
	}, nil
}
