package record

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// CreateRecordInput is the Huma input for creating a record.
type CreateRecordInput struct {
	Body PayloadBody
}

// CreateRecordOutput is the Huma output for creating a record.
type CreateRecordOutput struct {
	Status int
	Body   Record
}

// CreateRecordHandler handles POST /v1/record.
type CreateRecordHandler struct {
	Operator *operator.OperatorDelegator
}

// NewCreateRecordHandler creates a new CreateRecordHandler.
func NewCreateRecordHandler(op *operator.OperatorDelegator) *CreateRecordHandler {
	return &CreateRecordHandler{Operator: op}
}

// Register registers the create record endpoint with the Huma API.
func (h *CreateRecordHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-record",
		Method:      http.MethodPost,
		Path:        "/v1/record",
		Summary:     "Create record",
		Description: "Creates a new financial record with a fresh id and creation timestamp.",
		Tags:        []string{"Records"},
	}, h.handle)
}

func (h *CreateRecordHandler) handle(ctx context.Context, input *CreateRecordInput) (*CreateRecordOutput, error) {
	logData := logging.GetLogData(ctx)

	action := &actions.CreateRecord{Payload: input.Body.ToService()}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createRecordMs")
	}
	err := h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, httperr.FromService(err, "failed to create record")
	}

	if logData != nil {
		logData.AddData("recordID", action.Result.ID)
	}

	return &CreateRecordOutput{
		Status: http.StatusCreated,
		Body:   FromService(action.Result),
	}, nil
}
