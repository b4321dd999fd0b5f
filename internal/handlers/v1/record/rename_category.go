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

// RenameCategoryBody is the request body for renaming a category.
type RenameCategoryBody struct {
	OldCategory string `json:"oldCategory" required:"true" minLength:"1" doc:"Category to rename"`
	NewCategory string `json:"newCategory" required:"true" minLength:"1" doc:"New category name"`
}

// RenameCategoryInput is the Huma input for renaming a category.
type RenameCategoryInput struct {
	Body RenameCategoryBody
}

// RenameCategoryResponseBody is the response body for renaming a category.
type RenameCategoryResponseBody struct {
	Records []Record `json:"records" doc:"All renamed records"`
}

// RenameCategoryOutput is the Huma output for renaming a category.
type RenameCategoryOutput struct {
	Body RenameCategoryResponseBody
}

// RenameCategoryHandler handles POST /v1/records/rename-category.
type RenameCategoryHandler struct {
	Operator *operator.OperatorDelegator
}

// NewRenameCategoryHandler creates a new RenameCategoryHandler.
func NewRenameCategoryHandler(op *operator.OperatorDelegator) *RenameCategoryHandler {
	return &RenameCategoryHandler{Operator: op}
}

// Register registers the rename category endpoint with the Huma API.
func (h *RenameCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "rename-category",
		Method:      http.MethodPost,
		Path:        "/v1/records/rename-category",
		Summary:     "Rename category",
		Description: "Moves every record in the old category to the new category and returns the renamed records.",
		Tags:        []string{"Records"},
	}, h.handle)
}

func (h *RenameCategoryHandler) handle(ctx context.Context, input *RenameCategoryInput) (*RenameCategoryOutput, error) {
	logData := logging.GetLogData(ctx)

	action := &actions.RenameCategory{
		OldCategory: input.Body.OldCategory,
		NewCategory: input.Body.NewCategory,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, httperr.FromService(err, "failed to rename category")
	}

	if logData != nil {
		logData.AddData("renamedCount", len(action.Result))
	}

	return &RenameCategoryOutput{
		Body: RenameCategoryResponseBody{Records: FromServiceList(action.Result)},
	}, nil
}
