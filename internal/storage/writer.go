package storage

import (
	"context"

	"github.com/debug-create/new-money-pal/internal/storage/sqlconfig"
)

// Tx ends a database transaction. bob.Tx satisfies it.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer exposes the tables inside a single database transaction.
type Writer struct {
	tx           Tx
	Transactions sqlconfig.ITransactionTable
	Goals        sqlconfig.IGoalTable
	Profiles     sqlconfig.IProfileTable
}

func NewWriter(
	tx Tx,
	transactions sqlconfig.ITransactionTable,
	goals sqlconfig.IGoalTable,
	profiles sqlconfig.IProfileTable,
) *Writer {
	return &Writer{
		tx:           tx,
		Transactions: transactions,
		Goals:        goals,
		Profiles:     profiles,
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
