package storage

import (
	"github.com/gofrs/uuid/v5"

	"github.com/debug-create/new-money-pal/internal/engine"
	"github.com/debug-create/new-money-pal/internal/storage/sqlconfig"
)

func TransactionFromRow(row *sqlconfig.Transaction) engine.Transaction {
	return engine.Transaction{
		ID:          row.ID,
		Description: row.Description,
		Amount:      row.Amount,
		Kind:        engine.Kind(row.Kind),
		Category:    row.Category,
		Date:        row.TransactionDate,
		CreatedAt:   row.CreatedAt,
	}
}

func TransactionsFromRows(rows []*sqlconfig.Transaction) []engine.Transaction {
	out := make([]engine.Transaction, len(rows))
	for i, row := range rows {
		out[i] = TransactionFromRow(row)
	}
	return out
}

func TransactionCreateFor(userID uuid.UUID, t engine.Transaction) *sqlconfig.TransactionCreate {
	return &sqlconfig.TransactionCreate{
		ID:              t.ID,
		UserID:          userID,
		Description:     t.Description,
		Amount:          t.Amount,
		Kind:            string(t.Kind),
		Category:        t.Category,
		TransactionDate: t.Date,
	}
}

func GoalFromRow(row *sqlconfig.Goal) engine.Goal {
	goal := engine.Goal{
		ID:           row.ID,
		Title:        row.Title,
		TargetAmount: row.TargetAmount,
		CreatedAt:    row.CreatedAt,
	}
	if row.Deadline.Valid {
		deadline := row.Deadline.Time
		goal.Deadline = &deadline
	}
	return goal
}

func GoalsFromRows(rows []*sqlconfig.Goal) []engine.Goal {
	out := make([]engine.Goal, len(rows))
	for i, row := range rows {
		out[i] = GoalFromRow(row)
	}
	return out
}

func GoalCreateFor(userID uuid.UUID, g engine.Goal) *sqlconfig.GoalCreate {
	return &sqlconfig.GoalCreate{
		ID:           g.ID,
		UserID:       userID,
		Title:        g.Title,
		TargetAmount: g.TargetAmount,
		Deadline:     g.Deadline,
	}
}

// ProfileFromRow treats a missing row as an unconfigured budget.
func ProfileFromRow(row *sqlconfig.Profile) engine.BudgetProfile {
	if row == nil {
		return engine.BudgetProfile{}
	}
	return engine.BudgetProfile{
		MonthlyAllowance: row.MonthlyAllowance,
		DisplayName:      row.DisplayName,
	}
}
