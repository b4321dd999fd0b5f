package record

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTP_RenameCategory_Success(t *testing.T) {
	api := newRecordAPI(t)

	first := decodeRecord(t, api.Post("/v1/record", map[string]any{
		"amount":   -50.0,
		"category": "food",
	}))
	second := decodeRecord(t, api.Post("/v1/record", map[string]any{
		"amount":   -20.0,
		"category": "food",
	}))
	api.Post("/v1/record", map[string]any{
		"amount":   1000.0,
		"category": "salary",
	})

	resp := api.Post("/v1/records/rename-category", map[string]any{
		"oldCategory": "food",
		"newCategory": "groceries",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body RenameCategoryResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	if assert.Len(t, body.Records, 2) {
		assert.Equal(t, first.ID, body.Records[0].ID)
		assert.Equal(t, second.ID, body.Records[1].ID)
		for _, record := range body.Records {
			assert.Equal(t, "groceries", record.Category)
			assert.Nil(t, record.UpdatedAt, "rename is not an update")
		}
	}
}

func TestHTTP_RenameCategory_UnknownCategory(t *testing.T) {
	api := newRecordAPI(t)

	api.Post("/v1/record", map[string]any{
		"amount":   1000.0,
		"category": "salary",
	})

	resp := api.Post("/v1/records/rename-category", map[string]any{
		"oldCategory": "food",
		"newCategory": "groceries",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_RenameCategory_MissingFields(t *testing.T) {
	api := newRecordAPI(t)

	resp := api.Post("/v1/records/rename-category", map[string]any{
		"oldCategory": "food",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHTTP_RenameCategory_EmptyNewName(t *testing.T) {
	api := newRecordAPI(t)

	resp := api.Post("/v1/records/rename-category", map[string]any{
		"oldCategory": "food",
		"newCategory": "",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
