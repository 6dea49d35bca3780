package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debug-create/new-money-pal/internal/assistant"
	"github.com/debug-create/new-money-pal/internal/engine"
	"github.com/debug-create/new-money-pal/internal/events"
	"github.com/debug-create/new-money-pal/internal/operator/actions"
	"github.com/debug-create/new-money-pal/internal/storage/sqlconfig"
)

// -- Budget tests --

func TestBudgetGet_Unconfigured(t *testing.T) {
	h := newTestHarness(t)
	h.expectSnapshot(nil, nil, nil)

	budget, err := h.svc.Budget.Get(context.Background(), h.userID)

	require.NoError(t, err)
	assert.False(t, budget.Configured())
}

func TestBudgetSet(t *testing.T) {
	h := newTestHarness(t)

	budget, err := h.svc.Budget.Set(context.Background(), h.userID, decimal.NewFromInt(30000), "Asha")

	require.NoError(t, err)
	assert.True(t, budget.SafeDailySpend().Equal(decimal.NewFromInt(1000)))
	action := h.processor.last().(*actions.SetBudget)
	assert.Equal(t, h.userID, action.UserID)
	require.Len(t, h.publisher.events, 1)
	assert.Equal(t, events.EntityBudget, h.publisher.events[0].Entity)
	assert.Equal(t, events.ActionUpdated, h.publisher.events[0].Action)
}

func TestBudgetSet_Negative(t *testing.T) {
	h := newTestHarness(t)

	_, err := h.svc.Budget.Set(context.Background(), h.userID, decimal.NewFromInt(-1), "Asha")

	assert.ErrorIs(t, err, engine.ErrValidation)
	assert.Nil(t, h.processor.last())
}

// -- Goal tests --

func TestGoalCreate(t *testing.T) {
	h := newTestHarness(t)

	goal, err := h.svc.Goals.Create(context.Background(), h.userID, " Guitar ", decimal.NewFromInt(10000), nil)

	require.NoError(t, err)
	assert.False(t, goal.ID.IsNil())
	assert.Equal(t, "Guitar", goal.Title)
	assert.Equal(t, testNow, goal.CreatedAt)
	require.Len(t, h.publisher.events, 1)
	assert.Equal(t, events.EntityGoal, h.publisher.events[0].Entity)
}

func TestGoalCreate_InvalidTarget(t *testing.T) {
	h := newTestHarness(t)

	_, err := h.svc.Goals.Create(context.Background(), h.userID, "Guitar", decimal.Zero, nil)

	var goalErr *engine.InvalidGoalError
	require.ErrorAs(t, err, &goalErr)
	assert.True(t, goalErr.Target.IsZero())
	assert.Nil(t, h.processor.last())
}

func TestGoalCreateFromIntent(t *testing.T) {
	h := newTestHarness(t)

	goal, monthly, err := h.svc.Goals.CreateFromIntent(context.Background(), h.userID, assistant.GoalIntent{
		Title:          "Trip",
		TargetAmount:   decimal.NewFromInt(9000),
		DeadlineMonths: 3,
	})

	require.NoError(t, err)
	require.NotNil(t, goal.Deadline)
	assert.Equal(t, testNow.AddDate(0, 0, 90), *goal.Deadline)
	assert.True(t, monthly.Equal(decimal.NewFromInt(3000)))
}

func TestGoalList_Progress(t *testing.T) {
	h := newTestHarness(t)
	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	h.expectSnapshot(scenarioRows(), profileRow(h.userID, "5000"), []*sqlconfig.Goal{
		goalRow("Laptop", "70000", older.AddDate(0, 1, 0)),
		goalRow("Guitar", "10000", older),
	})

	statuses, err := h.svc.Goals.List(context.Background(), h.userID)

	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.False(t, statuses[0].Active)
	assert.True(t, statuses[1].Active)
	assert.True(t, statuses[1].Progress.Percent.Equal(decimal.NewFromInt(35)))
	assert.False(t, statuses[1].Progress.Achieved)
	assert.True(t, statuses[1].Progress.Remaining.Equal(decimal.NewFromInt(6500)))
}

func TestGoalDelete_Idempotent(t *testing.T) {
	h := newTestHarness(t)

	err := h.svc.Goals.Delete(context.Background(), h.userID, uuid.Must(uuid.NewV4()))

	require.NoError(t, err)
	assert.Empty(t, h.publisher.events)
}

func TestGoalDelete_ProcessError(t *testing.T) {
	h := newTestHarness(t)
	h.processor.err = errors.New("database unavailable")

	err := h.svc.Goals.Delete(context.Background(), h.userID, uuid.Must(uuid.NewV4()))

	assert.EqualError(t, err, "database unavailable")
}
