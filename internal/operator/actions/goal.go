package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/debug-create/new-money-pal/internal/engine"
	"github.com/debug-create/new-money-pal/internal/storage"
)

type CreateGoal struct {
	UserID uuid.UUID
	Goal   engine.Goal

	Created engine.Goal
	IAction
}

func (c *CreateGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Goals.Insert(ctx, storage.GoalCreateFor(c.UserID, c.Goal))
	if err != nil {
		return err
	}

	c.Created = storage.GoalFromRow(row)
	return nil
}

// DeleteGoal succeeds whether or not the goal still exists.
type DeleteGoal struct {
	UserID uuid.UUID
	ID     uuid.UUID

	Deleted bool
	IAction
}

func (d *DeleteGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Goals.Delete(ctx, d.UserID, d.ID)
	if err != nil {
		return err
	}

	d.Deleted = deleted
	return nil
}
