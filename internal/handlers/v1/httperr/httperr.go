// Package httperr translates service errors into huma status errors.
package httperr

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/service"
)

// FromService maps the service error classes onto HTTP statuses: validation
// failures to 400, empty results and unknown ids to 404, everything else to
// 500. The wrapped error detail is carried into the problem response.
func FromService(err error, message string) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return huma.NewError(http.StatusBadRequest, message, err)
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, message, err)
	default:
		return huma.NewError(http.StatusInternalServerError, message, err)
	}
}
