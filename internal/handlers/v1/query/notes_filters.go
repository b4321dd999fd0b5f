package query

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/record"
	"github.com/carson-networks/ledger-server/internal/service"
)

// NotesFilterInput is the Huma input for the notes partition filters.
type NotesFilterInput struct{}

// WithNotesOutput is the Huma output for the with-notes filter.
type WithNotesOutput struct {
	Body MatchesResponseBody
}

// notesPartition is the interface for partitioning records by note presence.
type notesPartition interface {
	WithNotes(ctx context.Context) ([]*service.Record, error)
	WithoutNotes(ctx context.Context) ([]*service.Record, error)
}

// WithNotesHandler handles GET /v1/records/with-notes.
type WithNotesHandler struct {
	RecordService notesPartition
}

// NewWithNotesHandler creates a new WithNotesHandler.
func NewWithNotesHandler(svc notesPartition) *WithNotesHandler {
	return &WithNotesHandler{RecordService: svc}
}

// Register registers the with-notes endpoint with the Huma API.
func (h *WithNotesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "records-with-notes",
		Method:      http.MethodGet,
		Path:        "/v1/records/with-notes",
		Summary:     "Records with notes",
		Description: "Returns the records that carry a note.",
		Tags:        []string{"Queries"},
	}, h.handle)
}

func (h *WithNotesHandler) handle(ctx context.Context, _ *NotesFilterInput) (*WithNotesOutput, error) {
	records, err := h.RecordService.WithNotes(ctx)
	if err != nil {
		return nil, httperr.FromService(err, "failed to filter records with notes")
	}

	return &WithNotesOutput{
		Body: MatchesResponseBody{Records: record.FromServiceList(records)},
	}, nil
}

// WithoutNotesOutput is the Huma output for the without-notes filter.
type WithoutNotesOutput struct {
	Body MatchesResponseBody
}

// WithoutNotesHandler handles GET /v1/records/without-notes.
type WithoutNotesHandler struct {
	RecordService notesPartition
}

// NewWithoutNotesHandler creates a new WithoutNotesHandler.
func NewWithoutNotesHandler(svc notesPartition) *WithoutNotesHandler {
	return &WithoutNotesHandler{RecordService: svc}
}

// Register registers the without-notes endpoint with the Huma API.
func (h *WithoutNotesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "records-without-notes",
		Method:      http.MethodGet,
		Path:        "/v1/records/without-notes",
		Summary:     "Records without notes",
		Description: "Returns the records that carry no note.",
		Tags:        []string{"Queries"},
	}, h.handle)
}

func (h *WithoutNotesHandler) handle(ctx context.Context, _ *NotesFilterInput) (*WithoutNotesOutput, error) {
	records, err := h.RecordService.WithoutNotes(ctx)
	if err != nil {
		return nil, httperr.FromService(err, "failed to filter records without notes")
	}

	return &WithoutNotesOutput{
		Body: MatchesResponseBody{Records: record.FromServiceList(records)},
	}, nil
}
