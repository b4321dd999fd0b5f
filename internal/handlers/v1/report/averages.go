package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/httperr"
)

// MonthlyAverageInput is the Huma input for the monthly average reports.
type MonthlyAverageInput struct{}

// MonthlyAverageResponseBody is the response body for the monthly averages.
type MonthlyAverageResponseBody struct {
	Average float64 `json:"average" doc:"Average absolute amount per calendar month spanned"`
}

// MonthlyAverageOutput is the Huma output for the monthly averages.
type MonthlyAverageOutput struct {
	Body MonthlyAverageResponseBody
}

// monthlyAverager is the interface for the monthly average reports.
type monthlyAverager interface {
	AverageMonthlyExpenses(ctx context.Context) (decimal.Decimal, error)
	AverageMonthlyIncome(ctx context.Context) (decimal.Decimal, error)
}

// AverageExpensesHandler handles GET /v1/report/average-monthly-expenses.
type AverageExpensesHandler struct {
	RecordService monthlyAverager
}

// NewAverageExpensesHandler creates a new AverageExpensesHandler.
func NewAverageExpensesHandler(svc monthlyAverager) *AverageExpensesHandler {
	return &AverageExpensesHandler{RecordService: svc}
}

// Register registers the average monthly expenses endpoint with the Huma API.
func (h *AverageExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "average-monthly-expenses",
		Method:      http.MethodGet,
		Path:        "/v1/report/average-monthly-expenses",
		Summary:     "Average monthly expenses",
		Description: "Averages the absolute expense amounts over the calendar months the expense records span.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *AverageExpensesHandler) handle(ctx context.Context, _ *MonthlyAverageInput) (*MonthlyAverageOutput, error) {
	average, err := h.RecordService.AverageMonthlyExpenses(ctx)
	if err != nil {
		return nil, httperr.FromService(err, "failed to average expenses")
	}

	return &MonthlyAverageOutput{
		Body: MonthlyAverageResponseBody{Average: average.InexactFloat64()},
	}, nil
}

// AverageIncomeHandler handles GET /v1/report/average-monthly-income.
type AverageIncomeHandler struct {
	RecordService monthlyAverager
}

// NewAverageIncomeHandler creates a new AverageIncomeHandler.
func NewAverageIncomeHandler(svc monthlyAverager) *AverageIncomeHandler {
	return &AverageIncomeHandler{RecordService: svc}
}

// Register registers the average monthly income endpoint with the Huma API.
func (h *AverageIncomeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "average-monthly-income",
		Method:      http.MethodGet,
		Path:        "/v1/report/average-monthly-income",
		Summary:     "Average monthly income",
		Description: "Averages the income amounts over the calendar months the income records span.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *AverageIncomeHandler) handle(ctx context.Context, _ *MonthlyAverageInput) (*MonthlyAverageOutput, error) {
	average, err := h.RecordService.AverageMonthlyIncome(ctx)
	if err != nil {
		return nil, httperr.FromService(err, "failed to average income")
	}

	return &MonthlyAverageOutput{
		Body: MonthlyAverageResponseBody{Average: average.InexactFloat64()},
	}, nil
}
