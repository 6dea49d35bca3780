package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const transactionsTable = "transactions"

var transactionColumns = []any{
	"id", "user_id", "description", "amount", "kind", "category", "transaction_date", "created_at",
}

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// Insert stores a transaction and returns the row as written.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	query := psql.Insert(
		im.Into(transactionsTable, "id", "user_id", "description", "amount", "kind", "category", "transaction_date"),
		im.Values(
			psql.Arg(create.ID),
			psql.Arg(create.UserID),
			psql.Arg(create.Description),
			psql.Arg(create.Amount),
			psql.Arg(create.Kind),
			psql.Arg(create.Category),
			psql.Arg(create.TransactionDate),
		),
		im.Returning(transactionColumns...),
	)

	return bob.One(ctx, t.exec, query, scan.StructMapper[*Transaction]())
}

// ListByUser returns every transaction of the user in insertion order.
func (t *TransactionsTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Transaction, error) {
	query := psql.Select(
		sm.Columns(transactionColumns...),
		sm.From(transactionsTable),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy(psql.Quote("created_at")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)

	return bob.All(ctx, t.exec, query, scan.StructMapper[*Transaction]())
}

// Delete removes one of the user's transactions and reports whether a row existed.
func (t *TransactionsTable) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) (bool, error) {
	query := psql.Delete(
		dm.From(transactionsTable),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	return execDeleted(ctx, t.exec, query)
}
