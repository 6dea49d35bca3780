package transaction

import (
	"time"

	"github.com/debug-create/new-money-pal/internal/engine"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	Description string `json:"description" doc:"What the money was for"`
	Amount      string `json:"amount" doc:"Decimal amount, always positive"`
	Type        string `json:"type" enum:"debit,credit" doc:"debit takes money out, credit puts money in"`
	Category    string `json:"category" doc:"Spending category"`
	Date        string `json:"date" doc:"Transaction date, YYYY-MM-DD"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 time the transaction was stored"`
}

func fromEngine(t engine.Transaction) Transaction {
	return Transaction{
		ID:          t.ID.String(),
		Description: t.Description,
		Amount:      t.Amount.StringFixed(2),
		Type:        string(t.Kind),
		Category:    t.Category,
		Date:        t.Date.Format(time.DateOnly),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}
