// Package query exposes the read-only record filters.
package query

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/record"
	"github.com/carson-networks/ledger-server/internal/service"
)

// ByCategoryInput is the Huma input for filtering by category.
type ByCategoryInput struct {
	Category string `path:"category" doc:"Exact category label to match"`
}

// ByCategoryOutput is the Huma output for filtering by category.
type ByCategoryOutput struct {
	Body MatchesResponseBody
}

// MatchesResponseBody is the response body shared by the record filters.
type MatchesResponseBody struct {
	Records []record.Record `json:"records" doc:"Matching records in store order"`
}

// categoryFilter is the interface for filtering by category.
type categoryFilter interface {
	ByCategory(ctx context.Context, category string) ([]*service.Record, error)
}

// ByCategoryHandler handles GET /v1/records/category/{category}.
type ByCategoryHandler struct {
	RecordService categoryFilter
}

// NewByCategoryHandler creates a new ByCategoryHandler.
func NewByCategoryHandler(svc categoryFilter) *ByCategoryHandler {
	return &ByCategoryHandler{RecordService: svc}
}

// Register registers the by-category endpoint with the Huma API.
func (h *ByCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "records-by-category",
		Method:      http.MethodGet,
		Path:        "/v1/records/category/{category}",
		Summary:     "Records by category",
		Description: "Returns the records whose category matches exactly. No matches is reported as not found.",
		Tags:        []string{"Queries"},
	}, h.handle)
}

func (h *ByCategoryHandler) handle(ctx context.Context, input *ByCategoryInput) (*ByCategoryOutput, error) {
	records, err := h.RecordService.ByCategory(ctx, input.Category)
	if err != nil {
		return nil, httperr.FromService(err, "failed to filter by category")
	}

	return &ByCategoryOutput{
		Body: MatchesResponseBody{Records: record.FromServiceList(records)},
	}, nil
}
