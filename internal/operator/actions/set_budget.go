package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/debug-create/new-money-pal/internal/engine"
	"github.com/debug-create/new-money-pal/internal/storage"
	"github.com/debug-create/new-money-pal/internal/storage/sqlconfig"
)

type SetBudget struct {
	UserID  uuid.UUID
	Profile engine.BudgetProfile

	Saved engine.BudgetProfile
	IAction
}

func (s *SetBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Profiles.Upsert(ctx, &sqlconfig.ProfileUpsert{
		UserID:           s.UserID,
		DisplayName:      s.Profile.DisplayName,
		MonthlyAllowance: s.Profile.MonthlyAllowance,
	})
	if err != nil {
		return err
	}

	s.Saved = storage.ProfileFromRow(row)
	return nil
}
