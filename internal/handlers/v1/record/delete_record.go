package record

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// DeleteRecordInput is the Huma input for deleting a record.
type DeleteRecordInput struct {
	ID string `path:"id" doc:"Record UUID"`
}

// DeleteRecordOutput is the Huma output for deleting a record. The body is
// the removed record.
type DeleteRecordOutput struct {
	Body Record
}

// DeleteRecordHandler handles DELETE /v1/record/{id}.
type DeleteRecordHandler struct {
	Operator *operator.OperatorDelegator
}

// NewDeleteRecordHandler creates a new DeleteRecordHandler.
func NewDeleteRecordHandler(op *operator.OperatorDelegator) *DeleteRecordHandler {
	return &DeleteRecordHandler{Operator: op}
}

// Register registers the delete record endpoint with the Huma API.
func (h *DeleteRecordHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-record",
		Method:      http.MethodDelete,
		Path:        "/v1/record/{id}",
		Summary:     "Delete record",
		Description: "Removes the record with the given id and returns it.",
		Tags:        []string{"Records"},
	}, h.handle)
}

func (h *DeleteRecordHandler) handle(ctx context.Context, input *DeleteRecordInput) (*DeleteRecordOutput, error) {
	action := &actions.DeleteRecord{ID: input.ID}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.FromService(err, "failed to delete record")
	}

	return &DeleteRecordOutput{Body: FromService(action.Result)}, nil
}
