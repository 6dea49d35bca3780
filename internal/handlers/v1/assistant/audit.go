package assistant

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/debug-create/new-money-pal/internal/handlers/v1/apierr"
	"github.com/debug-create/new-money-pal/internal/session"
)

type AuditInput struct{}

type AuditResponse struct {
	Advice string `json:"advice" doc:"One spending habit worth changing"`
}

type AuditOutput struct {
	Body AuditResponse
}

type auditor interface {
	Audit(ctx context.Context, userID uuid.UUID) (string, error)
}

// AuditHandler handles POST /v1/assistant/audit.
type AuditHandler struct {
	AssistantService auditor
}

func NewAuditHandler(svc auditor) *AuditHandler {
	return &AuditHandler{AssistantService: svc}
}

func (h *AuditHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "assistant-audit",
		Method:      http.MethodPost,
		Path:        "/v1/assistant/audit",
		Summary:     "Audit spending",
		Description: "Reviews your latest transactions and points out one costly habit.",
		Tags:        []string{"Assistant"},
		Security:    session.Required(),
	}, h.handle)
}

func (h *AuditHandler) handle(ctx context.Context, _ *AuditInput) (*AuditOutput, error) {
	userID, err := apierr.UserID(ctx)
	if err != nil {
		return nil, err
	}

	stopTimer := apierr.Timing(ctx, "auditMs")
	advice, err := h.AssistantService.Audit(ctx, userID)
	stopTimer()
	if err != nil {
		return nil, apierr.From(ctx, "assistant failed to audit spending", err)
	}

	return &AuditOutput{Body: AuditResponse{Advice: advice}}, nil
}
