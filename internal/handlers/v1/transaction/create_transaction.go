package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/debug-create/new-money-pal/internal/engine"
	"github.com/debug-create/new-money-pal/internal/handlers/v1/apierr"
	"github.com/debug-create/new-money-pal/internal/logging"
	"github.com/debug-create/new-money-pal/internal/service"
	"github.com/debug-create/new-money-pal/internal/session"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Description string `json:"description" minLength:"1" doc:"What the money was for"`
	Amount      string `json:"amount" doc:"Positive decimal amount"`
	Type        string `json:"type" enum:"debit,credit" doc:"debit takes money out, credit puts money in"`
	Category    string `json:"category,omitempty" doc:"Spending category, suggested from the description when omitted"`
	Date        string `json:"date,omitempty" format:"date" doc:"Transaction date (YYYY-MM-DD), defaults to today"`
	SplitCount  int    `json:"splitCount,omitempty" minimum:"0" doc:"Split a debit this many ways and store only your share"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// Categorization reports how a missing category was filled in.
type Categorization struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Method     string  `json:"method" enum:"keyword,ai,fallback"`
}

type Split struct {
	Share   string `json:"share" doc:"Your share at full precision"`
	Applied bool   `json:"applied" doc:"False when the transaction was a credit and was stored unchanged"`
}

// CreateTransactionResponse is the response body for creating a transaction.
type CreateTransactionResponse struct {
	Transaction    Transaction     `json:"transaction"`
	Categorization *Categorization `json:"categorization,omitempty"`
	Split          *Split          `json:"split,omitempty"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// transactionAdder is the interface for adding transactions.
type transactionAdder interface {
	Add(ctx context.Context, userID uuid.UUID, in service.NewTransaction) (service.AddResult, error)
}

// CreateTransactionHandler handles POST /v1/transactions.
type CreateTransactionHandler struct {
	LedgerService transactionAdder
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionAdder) *CreateTransactionHandler {
	return &CreateTransactionHandler{LedgerService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transactions",
		Summary:       "Create transaction",
		Description:   "Adds a debit or credit to the ledger, optionally splitting a shared bill.",
		Tags:          []string{"Transactions"},
		Security:      session.Required(),
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput parses the fields Huma cannot validate on its own.
func parseCreateTransactionInput(input *CreateTransactionInput) (service.NewTransaction, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.NewTransaction{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	kind, err := engine.ParseKind(input.Body.Type)
	if err != nil {
		return service.NewTransaction{}, huma.NewError(http.StatusBadRequest, "invalid type", err)
	}

	var date time.Time
	if input.Body.Date != "" {
		date, err = time.Parse(time.DateOnly, input.Body.Date)
		if err != nil {
			return service.NewTransaction{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
		}
	}

	return service.NewTransaction{
		Description: input.Body.Description,
		Amount:      amount,
		Kind:        kind,
		Category:    input.Body.Category,
		Date:        date,
		SplitCount:  input.Body.SplitCount,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	userID, err := apierr.UserID(ctx)
	if err != nil {
		return nil, err
	}

	in, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := apierr.Timing(ctx, "createTransactionMs")
	result, err := h.LedgerService.Add(ctx, userID, in)
	stopTimer()
	if err != nil {
		return nil, apierr.From(ctx, "failed to create transaction", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionID", result.Transaction.ID.String())
	}

	return &CreateTransactionOutput{Status: http.StatusCreated, Body: NewCreateTransactionResponse(result)}, nil
}

// NewCreateTransactionResponse builds the response for a stored transaction.
// Magic parse answers with the same body.
func NewCreateTransactionResponse(result service.AddResult) CreateTransactionResponse {
	resp := CreateTransactionResponse{Transaction: fromEngine(result.Transaction)}
	if c := result.Categorization; c != nil {
		resp.Categorization = &Categorization{Category: c.Category, Confidence: c.Confidence, Method: c.Method}
	}
	if s := result.Split; s != nil {
		resp.Split = &Split{Share: s.Share.String(), Applied: s.Applied}
	}
	return resp
}
