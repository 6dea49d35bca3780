package sqlconfig

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Goal represents a savings goal record.
type Goal struct {
	ID           uuid.UUID       `db:"id"`
	UserID       uuid.UUID       `db:"user_id"`
	Title        string          `db:"title"`
	TargetAmount decimal.Decimal `db:"target_amount"`
	Deadline     sql.NullTime    `db:"deadline"`
	CreatedAt    time.Time       `db:"created_at"`
}

// GoalCreate is the input for creating a new goal.
type GoalCreate struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Title        string
	TargetAmount decimal.Decimal
	Deadline     *time.Time
}

//go:generate mockery --name IGoalTable --inpackage --with-expecter --filename mock_IGoalTable.go
type IGoalTable interface {
	Insert(ctx context.Context, create *GoalCreate) (*Goal, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Goal, error)
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) (bool, error)
}
