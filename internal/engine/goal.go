package engine

import (
	"bytes"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Goal is a savings target measured against the current balance.
type Goal struct {
	ID           uuid.UUID
	Title        string
	TargetAmount decimal.Decimal
	Deadline     *time.Time
	CreatedAt    time.Time
}

// GoalProgress is the state of a goal for one aggregate.
type GoalProgress struct {
	Percent   decimal.Decimal
	Achieved  bool
	Remaining decimal.Decimal
}

// NewGoal validates the title and target of a goal about to be stored. The
// target is rounded to cents and must stay positive after rounding.
func NewGoal(title string, target decimal.Decimal, deadline *time.Time) (Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Goal{}, newValidationError("title", "must not be empty")
	}
	rounded, err := roundAmount("targetAmount", target)
	if err != nil {
		return Goal{}, err
	}
	if !rounded.IsPositive() {
		return Goal{}, &InvalidGoalError{Target: target}
	}
	return Goal{
		Title:        title,
		TargetAmount: rounded,
		Deadline:     deadline,
	}, nil
}

// Progress measures the balance against the goal target, clamped to [0, 100].
func Progress(goal Goal, agg DerivedAggregate) (GoalProgress, error) {
	if !goal.TargetAmount.IsPositive() {
		return GoalProgress{}, &InvalidGoalError{Target: goal.TargetAmount}
	}

	percent := agg.CurrentBalance.Div(goal.TargetAmount).Mul(hundred)
	switch {
	case percent.IsNegative():
		percent = decimal.Zero
	case percent.GreaterThan(hundred):
		percent = hundred
	}

	remaining := goal.TargetAmount.Sub(agg.CurrentBalance)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return GoalProgress{
		Percent:   percent,
		Achieved:  percent.GreaterThanOrEqual(hundred),
		Remaining: remaining,
	}, nil
}

// ActiveGoal picks the earliest created goal, breaking ties by id.
func ActiveGoal(goals []Goal) (Goal, bool) {
	if len(goals) == 0 {
		return Goal{}, false
	}

	active := goals[0]
	for _, g := range goals[1:] {
		if g.CreatedAt.Before(active.CreatedAt) ||
			(g.CreatedAt.Equal(active.CreatedAt) && bytes.Compare(g.ID.Bytes(), active.ID.Bytes()) < 0) {
			active = g
		}
	}
	return active, true
}

// MonthlyAllocation is how much to put aside each month to reach the target
// within months. Non-positive month counts are treated as one month.
func (g Goal) MonthlyAllocation(months int) decimal.Decimal {
	if months < 1 {
		months = 1
	}
	return g.TargetAmount.Div(decimal.NewFromInt(int64(months))).Round(2)
}
