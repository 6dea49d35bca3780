package engine

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const daysPerBudgetMonth = 30

// BudgetProfile holds the user's monthly allowance. A zero allowance means the
// user has not finished setup yet.
type BudgetProfile struct {
	MonthlyAllowance decimal.Decimal
	DisplayName      string
}

// NewBudgetProfile rejects negative or oversized allowances and rounds to cents.
func NewBudgetProfile(allowance decimal.Decimal, displayName string) (BudgetProfile, error) {
	if allowance.IsNegative() {
		return BudgetProfile{}, newValidationError("monthlyAllowance", "must not be negative")
	}
	allowance, err := roundAmount("monthlyAllowance", allowance)
	if err != nil {
		return BudgetProfile{}, err
	}
	return BudgetProfile{
		MonthlyAllowance: allowance,
		DisplayName:      strings.TrimSpace(displayName),
	}, nil
}

func (b BudgetProfile) Configured() bool {
	return b.MonthlyAllowance.IsPositive()
}

// SafeDailySpend spreads the allowance over a 30 day month.
func (b BudgetProfile) SafeDailySpend() decimal.Decimal {
	return b.MonthlyAllowance.Div(decimal.NewFromInt(daysPerBudgetMonth)).Round(2)
}

// Initial is the upper-cased first letter of the display name, or "" when unset.
func (b BudgetProfile) Initial() string {
	r, size := utf8.DecodeRuneInString(b.DisplayName)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}
