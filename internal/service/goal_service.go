package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/debug-create/new-money-pal/internal/assistant"
	"github.com/debug-create/new-money-pal/internal/engine"
	"github.com/debug-create/new-money-pal/internal/events"
	"github.com/debug-create/new-money-pal/internal/operator/actions"
)

const daysPerGoalMonth = 30

// GoalStatus is a goal with its progress against the current balance.
type GoalStatus struct {
	Goal     engine.Goal
	Progress engine.GoalProgress
	Active   bool
}

type GoalService struct {
	*core
}

func (s *GoalService) Create(ctx context.Context, userID uuid.UUID, title string, target decimal.Decimal, deadline *time.Time) (engine.Goal, error) {
	goal, err := engine.NewGoal(title, target, deadline)
	if err != nil {
		return engine.Goal{}, err
	}

	goal.ID, err = uuid.NewV4()
	if err != nil {
		return engine.Goal{}, err
	}

	action := &actions.CreateGoal{UserID: userID, Goal: goal}
	if err := s.operator.Process(ctx, action); err != nil {
		return engine.Goal{}, err
	}
	s.committed(ctx, userID, events.EntityGoal, events.ActionCreated, action.Created.ID)

	return action.Created, nil
}

// CreateFromIntent creates the goal the assistant was asked for and returns
// the monthly amount needed to reach it in time.
func (s *GoalService) CreateFromIntent(ctx context.Context, userID uuid.UUID, intent assistant.GoalIntent) (engine.Goal, decimal.Decimal, error) {
	deadline := s.now().AddDate(0, 0, daysPerGoalMonth*intent.DeadlineMonths)

	goal, err := s.Create(ctx, userID, intent.Title, intent.TargetAmount, &deadline)
	if err != nil {
		return engine.Goal{}, decimal.Zero, err
	}
	return goal, goal.MonthlyAllocation(intent.DeadlineMonths), nil
}

// List returns every goal in creation order with its progress.
func (s *GoalService) List(ctx context.Context, userID uuid.UUID) ([]GoalStatus, error) {
	snap, err := s.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	return goalStatuses(snap.Goals, snap.Aggregate())
}

// Delete removes a goal. Deleting a missing goal is not an error.
func (s *GoalService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	action := &actions.DeleteGoal{UserID: userID, ID: id}
	if err := s.operator.Process(ctx, action); err != nil {
		return err
	}

	if action.Deleted {
		s.committed(ctx, userID, events.EntityGoal, events.ActionDeleted, id)
	}
	return nil
}

func goalStatuses(goals []engine.Goal, agg engine.DerivedAggregate) ([]GoalStatus, error) {
	active, hasActive := engine.ActiveGoal(goals)

	out := make([]GoalStatus, 0, len(goals))
	for _, goal := range goals {
		progress, err := engine.Progress(goal, agg)
		if err != nil {
			return nil, err
		}
		out = append(out, GoalStatus{
			Goal:     goal,
			Progress: progress,
			Active:   hasActive && goal.ID == active.ID,
		})
	}
	return out, nil
}
