package actions

import (
	"context"

	"github.com/debug-create/new-money-pal/internal/storage"
)

// IAction is one mutation applied inside a database transaction. Results are
// written back onto the action so the caller can read them after Process.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
