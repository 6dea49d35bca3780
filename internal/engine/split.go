package engine

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SplitResult is the caller's share of a bill. Applied is false when the
// transaction was returned unchanged.
type SplitResult struct {
	Transaction Transaction
	Share       decimal.Decimal
	Applied     bool
}

// Split replaces a debit with the caller's 1/n share of it. The share is kept
// at full precision in Share and rounded half away from zero to cents on the
// returned transaction. Credits pass through unchanged.
func Split(t Transaction, n int) (SplitResult, error) {
	if n < 2 {
		return SplitResult{}, newValidationError("splitCount", "must be at least 2")
	}
	if !t.Amount.IsPositive() {
		return SplitResult{}, newValidationError("amount", "must be greater than zero")
	}
	if t.Kind == KindCredit {
		return SplitResult{Transaction: t, Share: t.Amount}, nil
	}

	share := t.Amount.Div(decimal.NewFromInt(int64(n)))
	rounded := share.Round(2)
	if !rounded.IsPositive() {
		return SplitResult{}, newValidationError("amount", fmt.Sprintf("too small to split %d ways", n))
	}

	adjusted := t
	adjusted.Amount = rounded
	adjusted.Description = fmt.Sprintf("%s (Split 1/%d)", t.Description, n)

	return SplitResult{Transaction: adjusted, Share: share, Applied: true}, nil
}
