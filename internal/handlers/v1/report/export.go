package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/ledger-server/internal/logging"
)

// ExportInput is the Huma input for the record export.
type ExportInput struct {
	Format string `query:"format" required:"true" doc:"Export format, only json is supported"`
}

// ExportOutput is the Huma output for the record export. The body is the
// serialized snapshot itself.
type ExportOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// exporter is the interface for the record export.
type exporter interface {
	Export(ctx context.Context, format string) (string, error)
}

// ExportHandler handles GET /v1/export.
type ExportHandler struct {
	RecordService exporter
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(svc exporter) *ExportHandler {
	return &ExportHandler{RecordService: svc}
}

// Register registers the export endpoint with the Huma API.
func (h *ExportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "export-records",
		Method:      http.MethodGet,
		Path:        "/v1/export",
		Summary:     "Export records",
		Description: "Serializes the full record snapshot. Timestamps are rendered as decimal strings.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *ExportHandler) handle(ctx context.Context, input *ExportInput) (*ExportOutput, error) {
	logData := logging.GetLogData(ctx)

	data, err := h.RecordService.Export(ctx, input.Format)
	if err != nil {
		return nil, httperr.FromService(err, "failed to export records")
	}

	if logData != nil {
		logData.AddData("exportBytes", len(data))
	}

	return &ExportOutput{
		ContentType: "application/json",
		Body:        []byte(data),
	}, nil
}
