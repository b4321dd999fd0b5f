package query

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/service"
)

func newExpensesOverAPI(t *testing.T, svc expensesFilter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewExpensesOverHandler(svc).Register(api)
	return api
}

func newIncomesUnderAPI(t *testing.T, svc incomesFilter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewIncomesUnderHandler(svc).Register(api)
	return api
}

func decimalEqual(want decimal.Decimal) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func TestHTTP_ExpensesOver_Success(t *testing.T) {
	stored := []*service.Record{expense("rec-1", -75.5)}

	mockSvc := new(mockFilterService)
	mockSvc.On("ExpensesGreaterThan", mock.Anything, decimalEqual(decimal.NewFromInt(50))).
		Return(stored, nil)

	resp := newExpensesOverAPI(t, mockSvc).Get("/v1/records/expenses-over/50")

	assert.Equal(t, http.StatusOK, resp.Code)
	body := decodeMatches(t, resp)
	if assert.Len(t, body.Records, 1) {
		assert.Equal(t, "rec-1", body.Records[0].ID)
		assert.Equal(t, -75.5, body.Records[0].Amount)
	}
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ExpensesOver_InvalidThreshold(t *testing.T) {
	mockSvc := new(mockFilterService)
	mockSvc.On("ExpensesGreaterThan", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: amount must be greater than zero", service.ErrValidation))

	resp := newExpensesOverAPI(t, mockSvc).Get("/v1/records/expenses-over/0")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ExpensesOver_NotANumber(t *testing.T) {
	mockSvc := new(mockFilterService)

	resp := newExpensesOverAPI(t, mockSvc).Get("/v1/records/expenses-over/abc")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ExpensesGreaterThan")
}

func TestHTTP_ExpensesOver_NoMatches(t *testing.T) {
	mockSvc := new(mockFilterService)
	mockSvc.On("ExpensesGreaterThan", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: no expenses greater than 50", service.ErrNotFound))

	resp := newExpensesOverAPI(t, mockSvc).Get("/v1/records/expenses-over/50")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_IncomesUnder_Success(t *testing.T) {
	stored := []*service.Record{
		{ID: "rec-1", Amount: decimal.NewFromFloat(99.99), Category: "salary", CreatedAt: 1},
	}

	mockSvc := new(mockFilterService)
	mockSvc.On("IncomesLessThan", mock.Anything, decimalEqual(decimal.NewFromInt(100))).
		Return(stored, nil)

	resp := newIncomesUnderAPI(t, mockSvc).Get("/v1/records/incomes-under/100")

	assert.Equal(t, http.StatusOK, resp.Code)
	body := decodeMatches(t, resp)
	if assert.Len(t, body.Records, 1) {
		assert.Equal(t, "rec-1", body.Records[0].ID)
	}
	mockSvc.AssertExpectations(t)
}

func TestHTTP_IncomesUnder_NoMatches(t *testing.T) {
	mockSvc := new(mockFilterService)
	mockSvc.On("IncomesLessThan", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: no incomes less than 100", service.ErrNotFound))

	resp := newIncomesUnderAPI(t, mockSvc).Get("/v1/records/incomes-under/100")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}
