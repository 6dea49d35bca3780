package sqlconfig

import (
	"context"

	"github.com/stephenafamo/bob"
)

func execDeleted(ctx context.Context, exec bob.Executor, query bob.Query) (bool, error) {
	result, err := bob.Exec(ctx, exec, query)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
