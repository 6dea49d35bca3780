package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/debug-create/new-money-pal/internal/engine"
	"github.com/debug-create/new-money-pal/internal/handlers/v1/apierr"
	"github.com/debug-create/new-money-pal/internal/session"
)

// SetBudgetBody is the request body for saving the budget profile.
type SetBudgetBody struct {
	MonthlyAllowance string `json:"monthlyAllowance" doc:"Decimal monthly allowance, zero or more"`
	DisplayName      string `json:"displayName,omitempty" maxLength:"80" doc:"Name the assistant greets you by"`
}

type SetBudgetInput struct {
	Body SetBudgetBody
}

type SetBudgetOutput struct {
	Body Budget
}

type budgetSetter interface {
	Set(ctx context.Context, userID uuid.UUID, allowance decimal.Decimal, displayName string) (engine.BudgetProfile, error)
}

// SetBudgetHandler handles PUT /v1/budget.
type SetBudgetHandler struct {
	BudgetService budgetSetter
}

func NewSetBudgetHandler(svc budgetSetter) *SetBudgetHandler {
	return &SetBudgetHandler{BudgetService: svc}
}

func (h *SetBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "set-budget",
		Method:      http.MethodPut,
		Path:        "/v1/budget",
		Summary:     "Set budget",
		Description: "Replaces the monthly allowance and display name.",
		Tags:        []string{"Budget"},
		Security:    session.Required(),
	}, h.handle)
}

func (h *SetBudgetHandler) handle(ctx context.Context, input *SetBudgetInput) (*SetBudgetOutput, error) {
	userID, err := apierr.UserID(ctx)
	if err != nil {
		return nil, err
	}

	allowance, err := decimal.NewFromString(input.Body.MonthlyAllowance)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid monthlyAllowance", err)
	}

	stopTimer := apierr.Timing(ctx, "setBudgetMs")
	profile, err := h.BudgetService.Set(ctx, userID, allowance, input.Body.DisplayName)
	stopTimer()
	if err != nil {
		return nil, apierr.From(ctx, "failed to save budget", err)
	}

	return &SetBudgetOutput{Body: fromEngine(profile)}, nil
}
