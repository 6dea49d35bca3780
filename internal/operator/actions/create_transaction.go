package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/debug-create/new-money-pal/internal/engine"
	"github.com/debug-create/new-money-pal/internal/storage"
)

// CreateTransaction stores an already validated transaction.
type CreateTransaction struct {
	UserID      uuid.UUID
	Transaction engine.Transaction

	Created engine.Transaction
	IAction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Transactions.Insert(ctx, storage.TransactionCreateFor(t.UserID, t.Transaction))
	if err != nil {
		return err
	}

	t.Created = storage.TransactionFromRow(row)
	return nil
}
