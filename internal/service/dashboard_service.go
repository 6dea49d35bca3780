package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/debug-create/new-money-pal/internal/engine"
)

// chartDays is how far back the dashboard chart reaches; the chart has one
// more point than this, ending today.
const chartDays = 7

// Dashboard is the derived view of one user's finances.
type Dashboard struct {
	Budget           engine.BudgetProfile
	NeedsSetup       bool
	Aggregate        engine.DerivedAggregate
	Categories       []engine.CategoryTotal
	SafeDailySpend   decimal.Decimal
	PotentialSavings decimal.Decimal
	ActiveGoal       *GoalStatus
	Chart            []engine.ChartPoint
	TransactionCount int
}

// Affordability is a simulated purchase and what it leaves per day.
type Affordability struct {
	engine.Simulation
	DailyBudget decimal.Decimal
}

type DashboardService struct {
	*core
}

func (s *DashboardService) Get(ctx context.Context, userID uuid.UUID) (Dashboard, error) {
	snap, err := s.snapshot(ctx, userID)
	if err != nil {
		return Dashboard{}, err
	}

	ledger := snap.Ledger()
	agg := engine.Aggregate(ledger, snap.Budget)

	dashboard := Dashboard{
		Budget:           snap.Budget,
		NeedsSetup:       !snap.Budget.Configured(),
		Aggregate:        agg,
		Categories:       agg.Categories(),
		SafeDailySpend:   snap.Budget.SafeDailySpend(),
		PotentialSavings: engine.PotentialSavings(agg),
		Chart:            engine.DailySeries(ledger, s.now(), chartDays),
		TransactionCount: ledger.Len(),
	}

	if goal, ok := engine.ActiveGoal(snap.Goals); ok {
		progress, err := engine.Progress(goal, agg)
		if err != nil {
			return Dashboard{}, err
		}
		dashboard.ActiveGoal = &GoalStatus{Goal: goal, Progress: progress, Active: true}
	}

	return dashboard, nil
}

// Simulate checks a purchase against the current balance without storing it.
func (s *DashboardService) Simulate(ctx context.Context, userID uuid.UUID, cost decimal.Decimal) (Affordability, error) {
	snap, err := s.snapshot(ctx, userID)
	if err != nil {
		return Affordability{}, err
	}

	simulation, err := engine.Simulate(cost, snap.Aggregate())
	if err != nil {
		return Affordability{}, err
	}

	return Affordability{
		Simulation:  simulation,
		DailyBudget: engine.DailyBudget(simulation.Remainder, s.now()),
	}, nil
}
