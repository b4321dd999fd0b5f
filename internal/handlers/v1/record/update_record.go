package record

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// UpdateRecordInput is the Huma input for updating a record.
type UpdateRecordInput struct {
	ID   string `path:"id" doc:"Record UUID"`
	Body PayloadBody
}

// UpdateRecordOutput is the Huma output for updating a record.
type UpdateRecordOutput struct {
	Body Record
}

// UpdateRecordHandler handles PUT /v1/record/{id}.
type UpdateRecordHandler struct {
	Operator *operator.OperatorDelegator
}

// NewUpdateRecordHandler creates a new UpdateRecordHandler.
func NewUpdateRecordHandler(op *operator.OperatorDelegator) *UpdateRecordHandler {
	return &UpdateRecordHandler{Operator: op}
}

// Register registers the update record endpoint with the Huma API.
func (h *UpdateRecordHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-record",
		Method:      http.MethodPut,
		Path:        "/v1/record/{id}",
		Summary:     "Update record",
		Description: "Overwrites the amount, category, and notes of an existing record and refreshes its update timestamp.",
		Tags:        []string{"Records"},
	}, h.handle)
}

func (h *UpdateRecordHandler) handle(ctx context.Context, input *UpdateRecordInput) (*UpdateRecordOutput, error) {
	action := &actions.UpdateRecord{
		ID:      input.ID,
		Payload: input.Body.ToService(),
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.FromService(err, "failed to update record")
	}

	return &UpdateRecordOutput{Body: FromService(action.Result)}, nil
}
