package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID              uuid.UUID       `db:"id"`
	UserID          uuid.UUID       `db:"user_id"`
	Description     string          `db:"description"`
	Amount          decimal.Decimal `db:"amount"`
	Kind            string          `db:"kind"`
	Category        string          `db:"category"`
	TransactionDate time.Time       `db:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Description     string
	Amount          decimal.Decimal
	Kind            string
	Category        string
	TransactionDate time.Time
}

// ITransactionTable defines the interface for transaction storage operations.
// Every call is scoped to one user.
//
//go:generate mockery --name ITransactionTable --inpackage --with-expecter --filename mock_ITransactionTable.go
type ITransactionTable interface {
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	// ListByUser returns the user's ledger oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Transaction, error)
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) (bool, error)
}
