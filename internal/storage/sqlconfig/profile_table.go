package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const profilesTable = "profiles"

var profileColumns = []any{"user_id", "display_name", "monthly_allowance", "updated_at"}

var _ IProfileTable = (*ProfilesTable)(nil)

type ProfilesTable struct {
	exec bob.Executor
}

func NewProfilesTable(exec bob.Executor) *ProfilesTable {
	return &ProfilesTable{exec: exec}
}

func (p *ProfilesTable) Get(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	query := psql.Select(
		sm.Columns(profileColumns...),
		sm.From(profilesTable),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	profile, err := bob.One(ctx, p.exec, query, scan.StructMapper[*Profile]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// Upsert writes the allowance and display name, creating the profile if needed.
func (p *ProfilesTable) Upsert(ctx context.Context, upsert *ProfileUpsert) (*Profile, error) {
	query := psql.Insert(
		im.Into(profilesTable, "user_id", "display_name", "monthly_allowance", "updated_at"),
		im.Values(
			psql.Arg(upsert.UserID),
			psql.Arg(upsert.DisplayName),
			psql.Arg(upsert.MonthlyAllowance),
			psql.Arg(time.Now().UTC()),
		),
		im.OnConflict("user_id").DoUpdate(
			im.SetExcluded("display_name", "monthly_allowance", "updated_at"),
		),
		im.Returning(profileColumns...),
	)

	return bob.One(ctx, p.exec, query, scan.StructMapper[*Profile]())
}
