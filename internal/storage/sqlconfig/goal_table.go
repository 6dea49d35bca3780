package sqlconfig

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const goalsTable = "goals"

var goalColumns = []any{"id", "user_id", "title", "target_amount", "deadline", "created_at"}

var _ IGoalTable = (*GoalsTable)(nil)

type GoalsTable struct {
	exec bob.Executor
}

func NewGoalsTable(exec bob.Executor) *GoalsTable {
	return &GoalsTable{exec: exec}
}

func (g *GoalsTable) Insert(ctx context.Context, create *GoalCreate) (*Goal, error) {
	var deadline sql.NullTime
	if create.Deadline != nil {
		deadline = sql.NullTime{Time: *create.Deadline, Valid: true}
	}

	query := psql.Insert(
		im.Into(goalsTable, "id", "user_id", "title", "target_amount", "deadline"),
		im.Values(
			psql.Arg(create.ID),
			psql.Arg(create.UserID),
			psql.Arg(create.Title),
			psql.Arg(create.TargetAmount),
			psql.Arg(deadline),
		),
		im.Returning(goalColumns...),
	)

	return bob.One(ctx, g.exec, query, scan.StructMapper[*Goal]())
}

// ListByUser returns the user's goals, earliest created first.
func (g *GoalsTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Goal, error) {
	query := psql.Select(
		sm.Columns(goalColumns...),
		sm.From(goalsTable),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy(psql.Quote("created_at")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)

	return bob.All(ctx, g.exec, query, scan.StructMapper[*Goal]())
}

func (g *GoalsTable) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) (bool, error) {
	query := psql.Delete(
		dm.From(goalsTable),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	return execDeleted(ctx, g.exec, query)
}
