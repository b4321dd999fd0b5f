package query

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/record"
	"github.com/carson-networks/ledger-server/internal/service"
)

// AmountThresholdInput is the Huma input shared by the amount filters.
type AmountThresholdInput struct {
	Amount float64 `path:"amount" doc:"Positive threshold amount"`
}

// ExpensesOverOutput is the Huma output for the expenses-over filter.
type ExpensesOverOutput struct {
	Body MatchesResponseBody
}

// expensesFilter is the interface for the expenses-over filter.
type expensesFilter interface {
	ExpensesGreaterThan(ctx context.Context, threshold decimal.Decimal) ([]*service.Record, error)
}

// ExpensesOverHandler handles GET /v1/records/expenses-over/{amount}.
type ExpensesOverHandler struct {
	RecordService expensesFilter
}

// NewExpensesOverHandler creates a new ExpensesOverHandler.
func NewExpensesOverHandler(svc expensesFilter) *ExpensesOverHandler {
	return &ExpensesOverHandler{RecordService: svc}
}

// Register registers the expenses-over endpoint with the Huma API.
func (h *ExpensesOverHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "expenses-greater-than",
		Method:      http.MethodGet,
		Path:        "/v1/records/expenses-over/{amount}",
		Summary:     "Expenses greater than",
		Description: "Returns the expense records whose absolute value strictly exceeds the threshold.",
		Tags:        []string{"Queries"},
	}, h.handle)
}

func (h *ExpensesOverHandler) handle(ctx context.Context, input *AmountThresholdInput) (*ExpensesOverOutput, error) {
	records, err := h.RecordService.ExpensesGreaterThan(ctx, decimal.NewFromFloat(input.Amount))
	if err != nil {
		return nil, httperr.FromService(err, "failed to filter expenses")
	}

	return &ExpensesOverOutput{
		Body: MatchesResponseBody{Records: record.FromServiceList(records)},
	}, nil
}

// IncomesUnderOutput is the Huma output for the incomes-under filter.
type IncomesUnderOutput struct {
	Body MatchesResponseBody
}

// incomesFilter is the interface for the incomes-under filter.
type incomesFilter interface {
	IncomesLessThan(ctx context.Context, threshold decimal.Decimal) ([]*service.Record, error)
}

// IncomesUnderHandler handles GET /v1/records/incomes-under/{amount}.
type IncomesUnderHandler struct {
	RecordService incomesFilter
}

// NewIncomesUnderHandler creates a new IncomesUnderHandler.
func NewIncomesUnderHandler(svc incomesFilter) *IncomesUnderHandler {
	return &IncomesUnderHandler{RecordService: svc}
}

// Register registers the incomes-under endpoint with the Huma API.
func (h *IncomesUnderHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "incomes-less-than",
		Method:      http.MethodGet,
		Path:        "/v1/records/incomes-under/{amount}",
		Summary:     "Incomes less than",
		Description: "Returns the income records strictly below the threshold.",
		Tags:        []string{"Queries"},
	}, h.handle)
}

func (h *IncomesUnderHandler) handle(ctx context.Context, input *AmountThresholdInput) (*IncomesUnderOutput, error) {
	records, err := h.RecordService.IncomesLessThan(ctx, decimal.NewFromFloat(input.Amount))
	if err != nil {
		return nil, httperr.FromService(err, "failed to filter incomes")
	}

	return &IncomesUnderOutput{
		Body: MatchesResponseBody{Records: record.FromServiceList(records)},
	}, nil
}
