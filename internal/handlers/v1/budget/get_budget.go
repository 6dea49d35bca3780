package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/debug-create/new-money-pal/internal/engine"
	"github.com/debug-create/new-money-pal/internal/handlers/v1/apierr"
	"github.com/debug-create/new-money-pal/internal/session"
)

type GetBudgetInput struct{}

type GetBudgetOutput struct {
	Body Budget
}

type budgetGetter interface {
	Get(ctx context.Context, userID uuid.UUID) (engine.BudgetProfile, error)
}

// GetBudgetHandler handles GET /v1/budget.
type GetBudgetHandler struct {
	BudgetService budgetGetter
}

func NewGetBudgetHandler(svc budgetGetter) *GetBudgetHandler {
	return &GetBudgetHandler{BudgetService: svc}
}

func (h *GetBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-budget",
		Method:      http.MethodGet,
		Path:        "/v1/budget",
		Summary:     "Get budget",
		Description: "Returns the monthly allowance and display name. A user who never set one gets a zero allowance.",
		Tags:        []string{"Budget"},
		Security:    session.Required(),
	}, h.handle)
}

func (h *GetBudgetHandler) handle(ctx context.Context, _ *GetBudgetInput) (*GetBudgetOutput, error) {
	userID, err := apierr.UserID(ctx)
	if err != nil {
		return nil, err
	}

	stopTimer := apierr.Timing(ctx, "getBudgetMs")
	profile, err := h.BudgetService.Get(ctx, userID)
	stopTimer()
	if err != nil {
		return nil, apierr.From(ctx, "failed to get budget", err)
	}

	return &GetBudgetOutput{Body: fromEngine(profile)}, nil
}
