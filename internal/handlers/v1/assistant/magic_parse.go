package assistant

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/debug-create/new-money-pal/internal/handlers/v1/apierr"
	"github.com/debug-create/new-money-pal/internal/handlers/v1/transaction"
	"github.com/debug-create/new-money-pal/internal/service"
	"github.com/debug-create/new-money-pal/internal/session"
)

type MagicParseBody struct {
	Text string `json:"text" minLength:"1" maxLength:"500" doc:"Free text such as 'paid 450 for pizza'"`
}

type MagicParseInput struct {
	Body MagicParseBody
}

type MagicParseOutput struct {
	Status int
	Body   transaction.CreateTransactionResponse
}

type magicParser interface {
	MagicParse(ctx context.Context, userID uuid.UUID, text string) (service.AddResult, error)
}

// MagicParseHandler handles POST /v1/assistant/magic-parse.
type MagicParseHandler struct {
	AssistantService magicParser
}

func NewMagicParseHandler(svc magicParser) *MagicParseHandler {
	return &MagicParseHandler{AssistantService: svc}
}

func (h *MagicParseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "magic-parse",
		Method:        http.MethodPost,
		Path:          "/v1/assistant/magic-parse",
		Summary:       "Add transaction from text",
		Description:   "Reads a transaction out of free text and stores it like a manual entry.",
		Tags:          []string{"Assistant"},
		Security:      session.Required(),
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *MagicParseHandler) handle(ctx context.Context, input *MagicParseInput) (*MagicParseOutput, error) {
	userID, err := apierr.UserID(ctx)
	if err != nil {
		return nil, err
	}

	stopTimer := apierr.Timing(ctx, "magicParseMs")
	result, err := h.AssistantService.MagicParse(ctx, userID, input.Body.Text)
	stopTimer()
	if err != nil {
		return nil, apierr.From(ctx, "failed to read transaction from text", err)
	}

	return &MagicParseOutput{Status: http.StatusCreated, Body: transaction.NewCreateTransactionResponse(result)}, nil
}
