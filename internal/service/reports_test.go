package service

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGetSummary_Totals(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), payload(100, "salary"))
	assert.NoError(t, err)
	_, err = svc.Create(context.Background(), payload(200, "freelance"))
	assert.NoError(t, err)
	_, err = svc.Create(context.Background(), payload(-50, "food"))
	assert.NoError(t, err)

	summary, err := svc.GetSummary(context.Background())

	assert.NoError(t, err)
	assert.True(t, summary.TotalIncome.Equal(decimal.NewFromInt(300)))
	assert.True(t, summary.TotalExpense.Equal(decimal.NewFromInt(-50)), "expense total stays negative")
	assert.True(t, summary.NetFlow.Equal(decimal.NewFromInt(250)))
	assert.True(t, summary.NetFlow.Equal(summary.TotalIncome.Add(summary.TotalExpense)))
}

func TestGetSummary_Empty(t *testing.T) {
	svc, _ := newTestService(t)

	summary, err := svc.GetSummary(context.Background())

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, summary)
}

func TestAverageMonthlyExpenses_SpansMonths(t *testing.T) {
	svc, clock := newTestService(t)

	// Two expenses across January and March: 300 over 3 calendar months.
	createAt(t, svc, clock, nanos(2024, time.January, 15), payload(-100, "food"))
	createAt(t, svc, clock, nanos(2024, time.March, 10), payload(-200, "rent"))

	average, err := svc.AverageMonthlyExpenses(context.Background())

	assert.NoError(t, err)
	assert.True(t, average.Equal(decimal.NewFromInt(100)), "got %s", average)
}

func TestAverageMonthlyExpenses_SingleMonth(t *testing.T) {
	svc, clock := newTestService(t)

	createAt(t, svc, clock, nanos(2024, time.January, 2), payload(-30, "food"))
	createAt(t, svc, clock, nanos(2024, time.January, 28), payload(-70, "food"))

	average, err := svc.AverageMonthlyExpenses(context.Background())

	assert.NoError(t, err)
	assert.True(t, average.Equal(decimal.NewFromInt(100)), "got %s", average)
}

func TestAverageMonthlyExpenses_AdjacentMonthBoundary(t *testing.T) {
	svc, clock := newTestService(t)

	// One day apart but straddling a month boundary counts as two months.
	createAt(t, svc, clock, nanos(2024, time.January, 31), payload(-100, "food"))
	createAt(t, svc, clock, nanos(2024, time.February, 1), payload(-100, "food"))

	average, err := svc.AverageMonthlyExpenses(context.Background())

	assert.NoError(t, err)
	assert.True(t, average.Equal(decimal.NewFromInt(100)), "got %s", average)
}

func TestAverageMonthlyExpenses_YearBoundary(t *testing.T) {
	svc, clock := newTestService(t)

	createAt(t, svc, clock, nanos(2023, time.December, 15), payload(-100, "food"))
	createAt(t, svc, clock, nanos(2024, time.January, 15), payload(-100, "food"))

	average, err := svc.AverageMonthlyExpenses(context.Background())

	assert.NoError(t, err)
	assert.True(t, average.Equal(decimal.NewFromInt(100)), "got %s", average)
}

func TestAverageMonthlyExpenses_IgnoresIncome(t *testing.T) {
	svc, clock := newTestService(t)

	createAt(t, svc, clock, nanos(2024, time.January, 15), payload(-100, "food"))
	createAt(t, svc, clock, nanos(2024, time.June, 15), payload(5000, "salary"))

	average, err := svc.AverageMonthlyExpenses(context.Background())

	assert.NoError(t, err)
	assert.True(t, average.Equal(decimal.NewFromInt(100)), "income records do not widen the span")
}

func TestAverageMonthlyExpenses_NoExpenses(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), payload(100, "salary"))
	assert.NoError(t, err)

	_, err = svc.AverageMonthlyExpenses(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAverageMonthlyIncome_SpansMonths(t *testing.T) {
	svc, clock := newTestService(t)

	createAt(t, svc, clock, nanos(2024, time.January, 1), payload(1000, "salary"))
	createAt(t, svc, clock, nanos(2024, time.February, 1), payload(2000, "salary"))

	average, err := svc.AverageMonthlyIncome(context.Background())

	assert.NoError(t, err)
	assert.True(t, average.Equal(decimal.NewFromInt(1500)), "got %s", average)
}

func TestAverageMonthlyIncome_NoIncome(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), payload(-100, "food"))
	assert.NoError(t, err)

	_, err = svc.AverageMonthlyIncome(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestForecastFutureExpenses_PerRecordAverage(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), payload(-100, "food"))
	assert.NoError(t, err)
	_, err = svc.Create(context.Background(), payload(-200, "rent"))
	assert.NoError(t, err)
	_, err = svc.Create(context.Background(), payload(1000, "salary"))
	assert.NoError(t, err)

	// Average 150 per expense record, projected three months out.
	forecast, err := svc.ForecastFutureExpenses(context.Background(), 3)

	assert.NoError(t, err)
	assert.True(t, forecast.Equal(decimal.NewFromInt(450)), "got %s", forecast)
}

func TestForecastFutureExpenses_InvalidMonths(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), payload(-100, "food"))
	assert.NoError(t, err)

	_, err = svc.ForecastFutureExpenses(context.Background(), 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.ForecastFutureExpenses(context.Background(), -2)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestForecastFutureExpenses_NoExpenses(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ForecastFutureExpenses(context.Background(), 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExport_JSON(t *testing.T) {
	svc, clock := newTestService(t)

	createdAt := nanos(2024, time.January, 15)
	clock.now = createdAt
	created, err := svc.Create(context.Background(), payloadWithNotes(-50.25, "food", "dinner"))
	assert.NoError(t, err)

	out, err := svc.Export(context.Background(), "json")
	assert.NoError(t, err)

	var exported []struct {
		ID        string  `json:"id"`
		Amount    float64 `json:"amount"`
		Category  string  `json:"category"`
		Notes     *string `json:"notes"`
		CreatedAt string  `json:"createdAt"`
		UpdatedAt *string `json:"updatedAt"`
	}
	assert.NoError(t, json.Unmarshal([]byte(out), &exported))
	if assert.Len(t, exported, 1) {
		assert.Equal(t, created.ID, exported[0].ID)
		assert.Equal(t, -50.25, exported[0].Amount)
		assert.Equal(t, "food", exported[0].Category)
		if assert.NotNil(t, exported[0].Notes) {
			assert.Equal(t, "dinner", *exported[0].Notes)
		}
		assert.Equal(t, strconv.FormatUint(createdAt, 10), exported[0].CreatedAt)
		assert.Nil(t, exported[0].UpdatedAt)
	}
}

func TestExport_FormatCaseInsensitive(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), payload(-50, "food"))
	assert.NoError(t, err)

	for _, format := range []string{"json", "JSON", "Json"} {
		_, err := svc.Export(context.Background(), format)
		assert.NoError(t, err, "format %q", format)
	}
}

func TestExport_UnsupportedFormat(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), payload(-50, "food"))
	assert.NoError(t, err)

	for _, format := range []string{"csv", "xml", ""} {
		_, err := svc.Export(context.Background(), format)
		assert.ErrorIs(t, err, ErrValidation, "format %q", format)
	}
}

func TestExport_Empty(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Export(context.Background(), "json")
	assert.ErrorIs(t, err, ErrNotFound)
}
