package record

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// ListRecordsInput is the Huma input for listing all records.
type ListRecordsInput struct{}

// ListRecordsResponseBody is the response body for listing all records.
type ListRecordsResponseBody struct {
	Records []Record `json:"records" doc:"All records in store order"`
}

// ListRecordsOutput is the Huma output for listing all records.
type ListRecordsOutput struct {
	Body ListRecordsResponseBody
}

// recordLister is the interface for listing all records.
type recordLister interface {
	ListAll(ctx context.Context) ([]*service.Record, error)
}

// ListRecordsHandler handles GET /v1/records.
type ListRecordsHandler struct {
	RecordService recordLister
}

// NewListRecordsHandler creates a new ListRecordsHandler.
func NewListRecordsHandler(svc recordLister) *ListRecordsHandler {
	return &ListRecordsHandler{RecordService: svc}
}

// Register registers the list records endpoint with the Huma API.
func (h *ListRecordsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-records",
		Method:      http.MethodGet,
		Path:        "/v1/records",
		Summary:     "List records",
		Description: "Returns every record in store order. An empty store is reported as not found.",
		Tags:        []string{"Records"},
	}, h.handle)
}

func (h *ListRecordsHandler) handle(ctx context.Context, _ *ListRecordsInput) (*ListRecordsOutput, error) {
	logData := logging.GetLogData(ctx)

	records, err := h.RecordService.ListAll(ctx)
	if err != nil {
		return nil, httperr.FromService(err, "failed to list records")
	}

	if logData != nil {
		logData.AddData("recordCount", len(records))
	}

	return &ListRecordsOutput{
		Body: ListRecordsResponseBody{Records: FromServiceList(records)},
	}, nil
}
