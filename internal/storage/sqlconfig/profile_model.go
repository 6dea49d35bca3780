package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Profile holds a user's budget settings.
type Profile struct {
	UserID           uuid.UUID       `db:"user_id"`
	DisplayName      string          `db:"display_name"`
	MonthlyAllowance decimal.Decimal `db:"monthly_allowance"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

type ProfileUpsert struct {
	UserID           uuid.UUID
	DisplayName      string
	MonthlyAllowance decimal.Decimal
}

//go:generate mockery --name IProfileTable --inpackage --with-expecter --filename mock_IProfileTable.go
type IProfileTable interface {
	// Get returns nil without error when the user has no profile yet.
	Get(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Upsert(ctx context.Context, upsert *ProfileUpsert) (*Profile, error)
}
