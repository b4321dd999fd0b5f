package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/service"
)

func newForecastAPI(t *testing.T, svc forecaster) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewForecastHandler(svc).Register(api)
	return api
}

func TestHTTP_Forecast_Success(t *testing.T) {
	mockSvc := new(mockReportService)
	mockSvc.On("ForecastFutureExpenses", mock.Anything, 3).Return(decimal.NewFromInt(450), nil)

	resp := newForecastAPI(t, mockSvc).Get("/v1/report/forecast?months=3")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ForecastResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 3, body.Months)
	assert.Equal(t, 450.0, body.Forecast)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Forecast_InvalidMonths(t *testing.T) {
	mockSvc := new(mockReportService)
	mockSvc.On("ForecastFutureExpenses", mock.Anything, 0).
		Return(decimal.Zero, fmt.Errorf("%w: months must be greater than zero", service.ErrValidation))

	resp := newForecastAPI(t, mockSvc).Get("/v1/report/forecast?months=0")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Forecast_MissingMonths(t *testing.T) {
	mockSvc := new(mockReportService)

	resp := newForecastAPI(t, mockSvc).Get("/v1/report/forecast")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ForecastFutureExpenses")
}

func TestHTTP_Forecast_NoExpenses(t *testing.T) {
	mockSvc := new(mockReportService)
	mockSvc.On("ForecastFutureExpenses", mock.Anything, 3).
		Return(decimal.Zero, fmt.Errorf("%w: no expense records", service.ErrNotFound))

	resp := newForecastAPI(t, mockSvc).Get("/v1/report/forecast?months=3")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}
