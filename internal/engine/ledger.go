package engine

import (
	"strings"

	"github.com/gofrs/uuid/v5"
)

// KindFilter selects transactions by direction.
type KindFilter string

const (
	FilterAll     KindFilter = "All"
	FilterIncome  KindFilter = "Income"
	FilterExpense KindFilter = "Expense"
)

// Filter narrows Ledger.List. The zero value matches everything.
type Filter struct {
	Kind   KindFilter
	Search string
}

func (f Filter) matches(t Transaction) bool {
	switch f.Kind {
	case FilterIncome:
		if t.Kind != KindCredit {
			return false
		}
	case FilterExpense:
		if t.Kind != KindDebit {
			return false
		}
	}

	if f.Search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Description), strings.ToLower(f.Search))
}

// Ledger is an ordered in-memory collection of transactions. It is not safe
// for concurrent mutation; callers own one ledger per snapshot.
type Ledger struct {
	entries []Transaction
}

// NewLedger builds a ledger from already stored transactions, keeping their order.
func NewLedger(txs ...Transaction) *Ledger {
	entries := make([]Transaction, len(txs))
	copy(entries, txs)
	return &Ledger{entries: entries}
}

// Add validates t, assigns an id when it has none and appends it.
func (l *Ledger) Add(t Transaction) (Transaction, error) {
	stored, err := Normalize(t)
	if err != nil {
		return Transaction{}, err
	}
	if stored.ID == uuid.Nil {
		id, err := uuid.NewV4()
		if err != nil {
			return Transaction{}, err
		}
		stored.ID = id
	}

	l.entries = append(l.entries, stored)
	return stored, nil
}

// Remove deletes the transaction with the given id and reports whether it existed.
func (l *Ledger) Remove(id uuid.UUID) bool {
	for i, t := range l.entries {
		if t.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// List returns the matching transactions in insertion order.
func (l *Ledger) List(filter Filter) []Transaction {
	out := make([]Transaction, 0, len(l.entries))
	for _, t := range l.entries {
		if filter.matches(t) {
			out = append(out, t)
		}
	}
	return out
}

func (l *Ledger) Len() int {
	return len(l.entries)
}
