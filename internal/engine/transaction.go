package engine

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Kind tells whether a transaction takes money out of or puts money into the balance.
type Kind string

const (
	KindDebit  Kind = "debit"
	KindCredit Kind = "credit"
)

// DefaultCategory is used when a transaction arrives without one.
const DefaultCategory = "General"

// MaxAmount is the largest amount that can be stored, NUMERIC(14,2).
var MaxAmount = decimal.RequireFromString("999999999999.99")

// roundAmount rounds to cents, half away from zero, and rejects amounts that
// do not fit in storage. Positivity is left to the caller.
func roundAmount(field string, amount decimal.Decimal) (decimal.Decimal, error) {
	rounded := amount.Round(2)
	if rounded.GreaterThan(MaxAmount) {
		return decimal.Decimal{}, newValidationError(field, "must not exceed "+MaxAmount.StringFixed(2))
	}
	return rounded, nil
}

// ParseKind accepts "debit" or "credit" in any case.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindDebit:
		return KindDebit, nil
	case KindCredit:
		return KindCredit, nil
	}
	return "", newValidationError("kind", "must be debit or credit")
}

// Transaction is a single ledger entry. Amount is always positive; the
// direction of the money is carried by Kind.
type Transaction struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	Kind        Kind
	Category    string
	Date        time.Time
	CreatedAt   time.Time
}

// Normalize validates t, rounds the amount to cents and fills the defaults a
// stored transaction must have. The id is left untouched.
func Normalize(t Transaction) (Transaction, error) {
	t.Description = strings.TrimSpace(t.Description)
	if t.Description == "" {
		return Transaction{}, newValidationError("description", "must not be empty")
	}
	if !t.Amount.IsPositive() {
		return Transaction{}, newValidationError("amount", "must be greater than zero")
	}
	amount, err := roundAmount("amount", t.Amount)
	if err != nil {
		return Transaction{}, err
	}
	if !amount.IsPositive() {
		return Transaction{}, newValidationError("amount", "must be at least 0.01")
	}
	t.Amount = amount
	if t.Kind != KindDebit && t.Kind != KindCredit {
		return Transaction{}, newValidationError("kind", "must be debit or credit")
	}

	t.Category = strings.TrimSpace(t.Category)
	if t.Category == "" {
		t.Category = DefaultCategory
	}
	t.Date = DateOf(t.Date)

	return t, nil
}

// DateOf drops the time of day, keeping the calendar date in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
