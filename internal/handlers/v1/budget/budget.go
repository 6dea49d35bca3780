package budget

import (
	"github.com/debug-create/new-money-pal/internal/engine"
)

// Budget is the API response model for the user's budget profile.
type Budget struct {
	MonthlyAllowance string `json:"monthlyAllowance" doc:"Monthly allowance, 0.00 until setup is finished"`
	DisplayName      string `json:"displayName"`
	Initial          string `json:"initial" doc:"Upper-cased first letter of the display name"`
	SafeDailySpend   string `json:"safeDailySpend" doc:"Allowance spread over a 30 day month"`
	Configured       bool   `json:"configured"`
}

func fromEngine(b engine.BudgetProfile) Budget {
	return Budget{
		MonthlyAllowance: b.MonthlyAllowance.StringFixed(2),
		DisplayName:      b.DisplayName,
		Initial:          b.Initial(),
		SafeDailySpend:   b.SafeDailySpend().StringFixed(2),
		Configured:       b.Configured(),
	}
}
