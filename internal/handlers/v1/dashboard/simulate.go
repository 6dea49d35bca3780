package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/debug-create/new-money-pal/internal/handlers/v1/apierr"
	"github.com/debug-create/new-money-pal/internal/logging"
	"github.com/debug-create/new-money-pal/internal/service"
	"github.com/debug-create/new-money-pal/internal/session"
)

type SimulateBody struct {
	Cost string `json:"cost" doc:"Price of the purchase being considered"`
}

type SimulateInput struct {
	Body SimulateBody
}

// SimulateResponse is the response body for an affordability check.
type SimulateResponse struct {
	Cost        string `json:"cost"`
	Safe        bool   `json:"safe" doc:"True when the balance covers the cost"`
	Remainder   string `json:"remainder" doc:"Balance left after the purchase, may be negative"`
	DailyBudget string `json:"dailyBudget" doc:"Remainder spread over the rest of the month"`
}

type SimulateOutput struct {
	Body SimulateResponse
}

type simulator interface {
	Simulate(ctx context.Context, userID uuid.UUID, cost decimal.Decimal) (service.Affordability, error)
}

// SimulateHandler handles POST /v1/dashboard/simulate.
type SimulateHandler struct {
	DashboardService simulator
}

func NewSimulateHandler(svc simulator) *SimulateHandler {
	return &SimulateHandler{DashboardService: svc}
}

func (h *SimulateHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "simulate-purchase",
		Method:      http.MethodPost,
		Path:        "/v1/dashboard/simulate",
		Summary:     "Simulate purchase",
		Description: "Checks whether a purchase fits the current balance. Nothing is stored.",
		Tags:        []string{"Dashboard"},
		Security:    session.Required(),
	}, h.handle)
}

func (h *SimulateHandler) handle(ctx context.Context, input *SimulateInput) (*SimulateOutput, error) {
	userID, err := apierr.UserID(ctx)
	if err != nil {
		return nil, err
	}

	cost, err := decimal.NewFromString(input.Body.Cost)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid cost", err)
	}

	stopTimer := apierr.Timing(ctx, "simulateMs")
	result, err := h.DashboardService.Simulate(ctx, userID, cost)
	stopTimer()
	if err != nil {
		return nil, apierr.From(ctx, "failed to simulate purchase", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("safe", result.Safe)
	}

	return &SimulateOutput{Body: SimulateResponse{
		Cost:        result.Cost.StringFixed(2),
		Safe:        result.Safe,
		Remainder:   result.Remainder.StringFixed(2),
		DailyBudget: result.DailyBudget.StringFixed(2),
	}}, nil
}
