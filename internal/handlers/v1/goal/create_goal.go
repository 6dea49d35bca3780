package goal

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
	"github.com/debug-create/new-money-pal/internal/session"
)

// CreateGoalBody is the request body for creating a savings goal.
type CreateGoalBody struct {
	Title        string `json:"title" minLength:"1" maxLength:"120"`
	TargetAmount string `json:"targetAmount" doc:"Positive decimal target"`
	Deadline     string `json:"deadline,omitempty" format:"date" doc:"Optional deadline, YYYY-MM-DD"`
}

type CreateGoalInput struct {
	Body CreateGoalBody
}

type CreateGoalOutput struct {
	Status int
	Body   Goal
}

type goalCreator interface {
	Create(ctx context.Context, userID uuid.UUID, title string, target decimal.Decimal, deadline *time.Time) (engine.Goal, error)
}

// CreateGoalHandler handles POST /v1/goals.
type CreateGoalHandler struct {
	GoalService goalCreator
}

func NewCreateGoalHandler(svc goalCreator) *CreateGoalHandler {
	return &CreateGoalHandler{GoalService: svc}
}

func (h *CreateGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-goal",
		Method:        http.MethodPost,
		Path:          "/v1/goals",
		Summary:       "Create goal",
		Description:   "Adds a savings goal. Progress is measured against the current balance.",
		Tags:          []string{"Goals"},
		Security:      session.Required(),
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateGoalHandler) handle(ctx context.Context, input *CreateGoalInput) (*CreateGoalOutput, error) {
	userID, err := apierr.UserID(ctx)
	if err != nil {
		return nil, err
	}

	target, err := decimal.NewFromString(input.Body.TargetAmount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid targetAmount", err)
	}

	var deadline *time.Time
	if input.Body.Deadline != "" {
		d, err := time.Parse(time.DateOnly, input.Body.Deadline)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid deadline", err)
		}
		deadline = &d
	}

	stopTimer := apierr.Timing(ctx, "createGoalMs")
	goal, err := h.GoalService.Create(ctx, userID, input.Body.Title, target, deadline)
	stopTimer()
	if err != nil {
		return nil, apierr.From(ctx, "failed to create goal", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("goalID", goal.ID.String())
	}

	return &CreateGoalOutput{Status: http.StatusCreated, Body: fromEngine(goal)}, nil
}
