package record

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTP_UpdateRecord_Success(t *testing.T) {
	api := newRecordAPI(t)

	created := decodeRecord(t, api.Post("/v1/record", map[string]any{
		"amount":   -50.0,
		"category": "food",
		"notes":    "dinner",
	}))

	resp := api.Put("/v1/record/"+created.ID, map[string]any{
		"amount":   -75.0,
		"category": "groceries",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	body := decodeRecord(t, resp)
	assert.Equal(t, created.ID, body.ID)
	assert.Equal(t, -75.0, body.Amount)
	assert.Equal(t, "groceries", body.Category)
	assert.Nil(t, body.Notes, "update replaces the whole payload")
	assert.Equal(t, created.CreatedAt, body.CreatedAt)
	assert.NotNil(t, body.UpdatedAt)
}

func TestHTTP_UpdateRecord_NotFound(t *testing.T) {
	api := newRecordAPI(t)

	resp := api.Put("/v1/record/missing", map[string]any{
		"amount":   -75.0,
		"category": "groceries",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_UpdateRecord_MissingRequiredFields(t *testing.T) {
	api := newRecordAPI(t)

	created := decodeRecord(t, api.Post("/v1/record", map[string]any{
		"amount":   -50.0,
		"category": "food",
	}))

	resp := api.Put("/v1/record/"+created.ID, map[string]any{
		"amount": -75.0,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHTTP_UpdateRecord_ZeroAmount(t *testing.T) {
	api := newRecordAPI(t)

	created := decodeRecord(t, api.Post("/v1/record", map[string]any{
		"amount":   -50.0,
		"category": "food",
	}))

	resp := api.Put("/v1/record/"+created.ID, map[string]any{
		"amount":   0.0,
		"category": "food",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
