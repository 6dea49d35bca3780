package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/debug-create/new-money-pal/internal/handlers/v1/apierr"
	"github.com/debug-create/new-money-pal/internal/service"
	"github.com/debug-create/new-money-pal/internal/session"
)

type ListGoalsInput struct{}

type ListGoalsResponseBody struct {
	Goals []Goal `json:"goals" doc:"Goals in creation order"`
}

type ListGoalsOutput struct {
	Body ListGoalsResponseBody
}

type goalLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]service.GoalStatus, error)
}

// ListGoalsHandler handles GET /v1/goals.
type ListGoalsHandler struct {
	GoalService goalLister
}

func NewListGoalsHandler(svc goalLister) *ListGoalsHandler {
	return &ListGoalsHandler{GoalService: svc}
}

func (h *ListGoalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-goals",
		Method:      http.MethodGet,
		Path:        "/v1/goals",
		Summary:     "List goals",
		Tags:        []string{"Goals"},
		Security:    session.Required(),
	}, h.handle)
}

func (h *ListGoalsHandler) handle(ctx context.Context, _ *ListGoalsInput) (*ListGoalsOutput, error) {
	userID, err := apierr.UserID(ctx)
	if err != nil {
		return nil, err
	}

	stopTimer := apierr.Timing(ctx, "listGoalsMs")
	statuses, err := h.GoalService.List(ctx, userID)
	stopTimer()
	if err != nil {
		return nil, apierr.From(ctx, "failed to list goals", err)
	}

	resp := ListGoalsResponseBody{Goals: make([]Goal, len(statuses))}
	for i, s := range statuses {
		resp.Goals[i] = FromStatus(s)
	}
	return &ListGoalsOutput{Body: resp}, nil
}
