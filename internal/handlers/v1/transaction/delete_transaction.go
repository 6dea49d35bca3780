package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/debug-create/new-money-pal/internal/handlers/v1/apierr"
	"github.com/debug-create/new-money-pal/internal/logging"
	"github.com/debug-create/new-money-pal/internal/session"
)

type DeleteTransactionInput struct {
	ID string `path:"id" format:"uuid" doc:"Transaction UUID"`
}

type DeleteTransactionOutput struct{}

type transactionDeleter interface {
	Delete(ctx context.Context, userID, id uuid.UUID) (bool, error)
}

// DeleteTransactionHandler handles DELETE /v1/transactions/{id}.
type DeleteTransactionHandler struct {
	LedgerService transactionDeleter
}

func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{LedgerService: svc}
}

func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/v1/transactions/{id}",
		Summary:       "Delete transaction",
		Description:   "Removes a transaction. Deleting an unknown id succeeds.",
		Tags:          []string{"Transactions"},
		Security:      session.Required(),
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	userID, err := apierr.UserID(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	stopTimer := apierr.Timing(ctx, "deleteTransactionMs")
	deleted, err := h.LedgerService.Delete(ctx, userID, id)
	stopTimer()
	if err != nil {
		return nil, apierr.From(ctx, "failed to delete transaction", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("deleted", deleted)
	}
	return &DeleteTransactionOutput{}, nil
}
