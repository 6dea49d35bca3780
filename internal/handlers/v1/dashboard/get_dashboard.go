package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/debug-create/new-money-pal/internal/handlers/v1/apierr"
	"github.com/debug-create/new-money-pal/internal/handlers/v1/goal"
	"github.com/debug-create/new-money-pal/internal/service"
	"github.com/debug-create/new-money-pal/internal/session"
)

type CategoryTotal struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

type ChartPoint struct {
	Label  string `json:"label" doc:"MM-DD"`
	Date   string `json:"date" doc:"YYYY-MM-DD"`
	Amount string `json:"amount" doc:"Total debits on that day"`
}

// DashboardResponse is the response body for the dashboard.
type DashboardResponse struct {
	DisplayName      string          `json:"displayName"`
	Initial          string          `json:"initial"`
	MonthlyAllowance string          `json:"monthlyAllowance"`
	NeedsSetup       bool            `json:"needsSetup" doc:"True until a positive allowance is saved"`
	TotalIncome      string          `json:"totalIncome"`
	TotalExpense     string          `json:"totalExpense"`
	CurrentBalance   string          `json:"currentBalance" doc:"allowance + income - expense"`
	SafeDailySpend   string          `json:"safeDailySpend"`
	PotentialSavings string          `json:"potentialSavings" doc:"20% of a positive balance"`
	Categories       []CategoryTotal `json:"categories" doc:"Expense breakdown, largest first"`
	Chart            []ChartPoint    `json:"chart" doc:"Daily debit totals, oldest first, ending today"`
	ActiveGoal       *goal.Goal      `json:"activeGoal,omitempty"`
	TransactionCount int             `json:"transactionCount"`
}

type GetDashboardInput struct{}

type GetDashboardOutput struct {
	Body DashboardResponse
}

type dashboardGetter interface {
	Get(ctx context.Context, userID uuid.UUID) (service.Dashboard, error)
}

// GetDashboardHandler handles GET /v1/dashboard.
type GetDashboardHandler struct {
	DashboardService dashboardGetter
}

func NewGetDashboardHandler(svc dashboardGetter) *GetDashboardHandler {
	return &GetDashboardHandler{DashboardService: svc}
}

func (h *GetDashboardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard",
		Summary:     "Get dashboard",
		Description: "Returns totals, the category breakdown, the spending chart and the active goal.",
		Tags:        []string{"Dashboard"},
		Security:    session.Required(),
	}, h.handle)
}

func (h *GetDashboardHandler) handle(ctx context.Context, _ *GetDashboardInput) (*GetDashboardOutput, error) {
	userID, err := apierr.UserID(ctx)
	if err != nil {
		return nil, err
	}

	stopTimer := apierr.Timing(ctx, "getDashboardMs")
	d, err := h.DashboardService.Get(ctx, userID)
	stopTimer()
	if err != nil {
		return nil, apierr.From(ctx, "failed to load dashboard", err)
	}

	return &GetDashboardOutput{Body: toResponse(d)}, nil
}

func toResponse(d service.Dashboard) DashboardResponse {
	resp := DashboardResponse{
		DisplayName:      d.Budget.DisplayName,
		Initial:          d.Budget.Initial(),
		MonthlyAllowance: d.Budget.MonthlyAllowance.StringFixed(2),
		NeedsSetup:       d.NeedsSetup,
		TotalIncome:      d.Aggregate.TotalIncome.StringFixed(2),
		TotalExpense:     d.Aggregate.TotalExpense.StringFixed(2),
		CurrentBalance:   d.Aggregate.CurrentBalance.StringFixed(2),
		SafeDailySpend:   d.SafeDailySpend.StringFixed(2),
		PotentialSavings: d.PotentialSavings.StringFixed(2),
		Categories:       make([]CategoryTotal, len(d.Categories)),
		Chart:            make([]ChartPoint, len(d.Chart)),
		TransactionCount: d.TransactionCount,
	}
	for i, c := range d.Categories {
		resp.Categories[i] = CategoryTotal{Category: c.Category, Amount: c.Amount.StringFixed(2)}
	}
	for i, p := range d.Chart {
		resp.Chart[i] = ChartPoint{Label: p.Label, Date: p.Date.Format(time.DateOnly), Amount: p.Amount.StringFixed(2)}
	}
	if d.ActiveGoal != nil {
		g := goal.FromStatus(*d.ActiveGoal)
		resp.ActiveGoal = &g
	}
	return resp
}
