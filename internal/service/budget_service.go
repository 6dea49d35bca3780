package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/debug-create/new-money-pal/internal/engine"
	"github.com/debug-create/new-money-pal/internal/events"
	"github.com/debug-create/new-money-pal/internal/operator/actions"
)

type BudgetService struct {
	*core
}

// Get returns the user's budget. A user who never set one gets the zero profile.
func (s *BudgetService) Get(ctx context.Context, userID uuid.UUID) (engine.BudgetProfile, error) {
	snap, err := s.snapshot(ctx, userID)
	if err != nil {
		return engine.BudgetProfile{}, err
	}
	return snap.Budget, nil
}

func (s *BudgetService) Set(ctx context.Context, userID uuid.UUID, allowance decimal.Decimal, displayName string) (engine.BudgetProfile, error) {
	profile, err := engine.NewBudgetProfile(allowance, displayName)
	if err != nil {
		return engine.BudgetProfile{}, err
	}

	action := &actions.SetBudget{UserID: userID, Profile: profile}
	if err := s.operator.Process(ctx, action); err != nil {
		return engine.BudgetProfile{}, err
	}
	s.committed(ctx, userID, events.EntityBudget, events.ActionUpdated, userID)

	return action.Saved, nil
}
