package operator

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/debug-create/new-money-pal/internal/operator/actions"
	"github.com/debug-create/new-money-pal/internal/storage"
)

// WriterSource opens the database transaction an action runs in.
type WriterSource interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes items from the queue.
type Operator struct {
	source WriterSource
	queue  chan ActionItem
	logger *logrus.Logger
}

func NewOperator(source WriterSource, queue chan ActionItem, logger *logrus.Logger) *Operator {
	return &Operator{
		source: source,
		queue:  queue,
		logger: logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		item.response <- ActionItemResponse{err: o.processItem(item)}
	}
}

func (o *Operator) processItem(item ActionItem) error {
	// The caller may have given up while the item sat in the queue.
	if !item.claimed.CompareAndSwap(false, true) {
		return item.ctx.Err()
	}
	if err := item.ctx.Err(); err != nil {
		return err
	}

	writer, err := o.source.Write(item.ctx)
	if err != nil {
		return err
	}

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		if rollbackErr := writer.Rollback(item.ctx); rollbackErr != nil {
			o.logger.WithError(rollbackErr).
				WithField("action", fmt.Sprintf("%T", item.action)).
				Error("Operator.processItem.rollback")
		}
		return err
	}

	return writer.Commit(item.ctx)
}

// ActionItem is owned by whoever claims it first: a worker about to run it,
// or the caller abandoning it after its context ended.
type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
	claimed  *atomic.Bool
}

type ActionItemResponse struct {
	err error
}
