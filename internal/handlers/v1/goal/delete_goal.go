package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/debug-create/new-money-pal/internal/handlers/v1/apierr"
	"github.com/debug-create/new-money-pal/internal/session"
)

type DeleteGoalInput struct {
	ID string `path:"id" format:"uuid" doc:"Goal UUID"`
}

type DeleteGoalOutput struct{}

type goalDeleter interface {
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// DeleteGoalHandler handles DELETE /v1/goals/{id}.
type DeleteGoalHandler struct {
	GoalService goalDeleter
}

func NewDeleteGoalHandler(svc goalDeleter) *DeleteGoalHandler {
	return &DeleteGoalHandler{GoalService: svc}
}

func (h *DeleteGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-goal",
		Method:        http.MethodDelete,
		Path:          "/v1/goals/{id}",
		Summary:       "Delete goal",
		Tags:          []string{"Goals"},
		Security:      session.Required(),
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteGoalHandler) handle(ctx context.Context, input *DeleteGoalInput) (*DeleteGoalOutput, error) {
	userID, err := apierr.UserID(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	if err := h.GoalService.Delete(ctx, userID, id); err != nil {
		return nil, apierr.From(ctx, "failed to delete goal", err)
	}
	return &DeleteGoalOutput{}, nil
}
