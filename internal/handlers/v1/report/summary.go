// Package report exposes the aggregation, forecast, and export operations.
package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/ledger-server/internal/service"
)

// SummaryInput is the Huma input for the summary report.
type SummaryInput struct{}

// SummaryResponseBody is the response body for the summary report.
// totalExpense stays negative, so netFlow = totalIncome + totalExpense.
type SummaryResponseBody struct {
	TotalIncome  float64 `json:"totalIncome" doc:"Sum of all positive amounts"`
	TotalExpense float64 `json:"totalExpense" doc:"Sum of all negative amounts, kept negative"`
	NetFlow      float64 `json:"netFlow" doc:"totalIncome + totalExpense"`
}

// SummaryOutput is the Huma output for the summary report.
type SummaryOutput struct {
	Body SummaryResponseBody
}

// summarizer is the interface for the summary report.
type summarizer interface {
	GetSummary(ctx context.Context) (*service.Summary, error)
}

// SummaryHandler handles GET /v1/report/summary.
type SummaryHandler struct {
	RecordService summarizer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(svc summarizer) *SummaryHandler {
	return &SummaryHandler{RecordService: svc}
}

// Register registers the summary endpoint with the Huma API.
func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "summary",
		Method:      http.MethodGet,
		Path:        "/v1/report/summary",
		Summary:     "Income and expense summary",
		Description: "Totals all income and expense amounts and their net flow.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, _ *SummaryInput) (*SummaryOutput, error) {
	summary, err := h.RecordService.GetSummary(ctx)
	if err != nil {
		return nil, httperr.FromService(err, "failed to summarize records")
	}

	return &SummaryOutput{
		Body: SummaryResponseBody{
			TotalIncome:  summary.TotalIncome.InexactFloat64(),
			TotalExpense: summary.TotalExpense.InexactFloat64(),
			NetFlow:      summary.NetFlow.InexactFloat64(),
		},
	}, nil
}
