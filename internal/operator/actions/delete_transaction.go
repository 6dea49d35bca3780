package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/debug-create/new-money-pal/internal/storage"
)

type DeleteTransaction struct {
	UserID uuid.UUID
	ID     uuid.UUID

	Deleted bool
	IAction
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Transactions.Delete(ctx, d.UserID, d.ID)
	if err != nil {
		return err
	}

	d.Deleted = deleted
	return nil
}
