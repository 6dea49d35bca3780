package transaction

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/debug-create/new-money-pal/internal/handlers/v1/apierr"
	"github.com/debug-create/new-money-pal/internal/session"
)

type ExportTransactionsInput struct {
	DateLayout string `query:"dateLayout" maxLength:"40" doc:"Go time layout for the Date column, defaults to the server setting"`
}

type ExportTransactionsOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

type transactionExporter interface {
	Export(ctx context.Context, userID uuid.UUID, w io.Writer, dateLayout string) (string, error)
}

// ExportTransactionsHandler handles GET /v1/transactions/export.
type ExportTransactionsHandler struct {
	LedgerService     transactionExporter
	DefaultDateLayout string
}

func NewExportTransactionsHandler(svc transactionExporter, defaultDateLayout string) *ExportTransactionsHandler {
	return &ExportTransactionsHandler{LedgerService: svc, DefaultDateLayout: defaultDateLayout}
}

func (h *ExportTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "export-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/export",
		Summary:     "Export transactions",
		Description: "Downloads the whole ledger as CSV.",
		Tags:        []string{"Transactions"},
		Security:    session.Required(),
	}, h.handle)
}

func (h *ExportTransactionsHandler) handle(ctx context.Context, input *ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	userID, err := apierr.UserID(ctx)
	if err != nil {
		return nil, err
	}

	layout := input.DateLayout
	if layout == "" {
		layout = h.DefaultDateLayout
	}

	var buf bytes.Buffer
	stopTimer := apierr.Timing(ctx, "exportTransactionsMs")
	filename, err := h.LedgerService.Export(ctx, userID, &buf, layout)
	stopTimer()
	if err != nil {
		return nil, apierr.From(ctx, "failed to export transactions", err)
	}

	return &ExportTransactionsOutput{
		ContentType:        "text/csv; charset=utf-8",
		ContentDisposition: `attachment; filename="` + filename + `"`,
		Body:               buf.Bytes(),
	}, nil
}
