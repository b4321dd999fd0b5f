package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// StatusInput is the Huma input for the status endpoint.
type StatusInput struct{}

// StatusResponseBody is the response body for the status endpoint.
type StatusResponseBody struct {
	Status string `json:"status" doc:"Always ok while the server is serving"`
}

// StatusOutput is the Huma output for the status endpoint.
type StatusOutput struct {
	Body StatusResponseBody
}

// Handler handles GET /status.
type Handler struct{}

// NewHandler creates a new status Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Register registers the status endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "status",
		Method:      http.MethodGet,
		Path:        "/status",
		Summary:     "Status",
		Description: "Liveness check.",
		Tags:        []string{"Status"},
	}, h.handle)
}

func (h *Handler) handle(_ context.Context, _ *StatusInput) (*StatusOutput, error) {
	return &StatusOutput{Body: StatusResponseBody{Status: "ok"}}, nil
}
