package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/httperr"
)

// ForecastInput is the Huma input for the expense forecast.
type ForecastInput struct {
	Months int `query:"months" required:"true" doc:"Number of months to project, must be positive"`
}

// ForecastResponseBody is the response body for the expense forecast.
type ForecastResponseBody struct {
	Months   int     `json:"months" doc:"Projected months"`
	Forecast float64 `json:"forecast" doc:"Average absolute amount per expense record times months"`
}

// ForecastOutput is the Huma output for the expense forecast.
type ForecastOutput struct {
	Body ForecastResponseBody
}

// forecaster is the interface for the expense forecast.
type forecaster interface {
	ForecastFutureExpenses(ctx context.Context, monthsAhead int) (decimal.Decimal, error)
}

// ForecastHandler handles GET /v1/report/forecast.
type ForecastHandler struct {
	RecordService forecaster
}

// NewForecastHandler creates a new ForecastHandler.
func NewForecastHandler(svc forecaster) *ForecastHandler {
	return &ForecastHandler{RecordService: svc}
}

// Register registers the forecast endpoint with the Huma API.
func (h *ForecastHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "forecast-future-expenses",
		Method:      http.MethodGet,
		Path:        "/v1/report/forecast",
		Summary:     "Forecast future expenses",
		Description: "Projects spending as the average absolute amount per expense record multiplied by the requested months.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *ForecastHandler) handle(ctx context.Context, input *ForecastInput) (*ForecastOutput, error) {
	forecast, err := h.RecordService.ForecastFutureExpenses(ctx, input.Months)
	if err != nil {
		return nil, httperr.FromService(err, "failed to forecast expenses")
	}

	return &ForecastOutput{
		Body: ForecastResponseBody{
			Months:   input.Months,
			Forecast: forecast.InexactFloat64(),
		},
	}, nil
}
