package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

// Simulation answers "can I afford this?" against the current balance.
type Simulation struct {
	Cost      decimal.Decimal
	Safe      bool
	Remainder decimal.Decimal
}

// Simulate subtracts cost from the current balance without touching the ledger.
func Simulate(cost decimal.Decimal, agg DerivedAggregate) (Simulation, error) {
	if cost.IsNegative() {
		return Simulation{}, newValidationError("cost", "must not be negative")
	}

	remainder := agg.CurrentBalance.Sub(cost)
	return Simulation{
		Cost:      cost,
		Safe:      !remainder.IsNegative(),
		Remainder: remainder,
	}, nil
}

// DailyBudget spreads remainder over the days left in asOf's month, counting
// at least one day.
func DailyBudget(remainder decimal.Decimal, asOf time.Time) decimal.Decimal {
	lastDay := time.Date(asOf.Year(), asOf.Month()+1, 0, 0, 0, 0, 0, asOf.Location()).Day()
	daysLeft := lastDay - asOf.Day()
	if daysLeft < 1 {
		daysLeft = 1
	}
	return remainder.Div(decimal.NewFromInt(int64(daysLeft))).Round(2)
}
