package record

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/ledger-server/internal/service"
)

// GetRecordInput is the Huma input for fetching a record by id.
type GetRecordInput struct {
	ID string `path:"id" doc:"Record UUID"`
}

// GetRecordOutput is the Huma output for fetching a record by id.
type GetRecordOutput struct {
	Body Record
}

// recordGetter is the interface for fetching a single record.
type recordGetter interface {
	GetByID(ctx context.Context, id string) (*service.Record, error)
}

// GetRecordHandler handles GET /v1/record/{id}.
type GetRecordHandler struct {
	RecordService recordGetter
}

// NewGetRecordHandler creates a new GetRecordHandler.
func NewGetRecordHandler(svc recordGetter) *GetRecordHandler {
	return &GetRecordHandler{RecordService: svc}
}

// Register registers the get record endpoint with the Huma API.
func (h *GetRecordHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-record",
		Method:      http.MethodGet,
		Path:        "/v1/record/{id}",
		Summary:     "Get record",
		Description: "Returns the record with the given id.",
		Tags:        []string{"Records"},
	}, h.handle)
}

func (h *GetRecordHandler) handle(ctx context.Context, input *GetRecordInput) (*GetRecordOutput, error) {
	record, err := h.RecordService.GetByID(ctx, input.ID)
	if err != nil {
		return nil, httperr.FromService(err, "failed to get record")
	}

	return &GetRecordOutput{Body: FromService(record)}, nil
}
