package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/sync/errgroup"

	"github.com/debug-create/new-money-pal/internal/engine"
	"github.com/debug-create/new-money-pal/internal/storage"
	"github.com/debug-create/new-money-pal/internal/storage/sqlconfig"
)

// Snapshot is one user's stored state at a point in time. Snapshots may be
// shared through the cache and must not be modified.
type Snapshot struct {
	Transactions []engine.Transaction
	Budget       engine.BudgetProfile
	Goals        []engine.Goal
}

// Ledger returns a private ledger over the snapshot's transactions.
func (s *Snapshot) Ledger() *engine.Ledger {
	return engine.NewLedger(s.Transactions...)
}

func (s *Snapshot) Aggregate() engine.DerivedAggregate {
	return engine.Aggregate(s.Ledger(), s.Budget)
}

func (c *core) snapshot(ctx context.Context, userID uuid.UUID) (*Snapshot, error) {
	var gen uint64
	if c.cache != nil {
		cached, cachedGen, ok := c.cache.Get(userID)
		if ok {
			return cached, nil
		}
		gen = cachedGen
	}

	var (
		transactionRows []*sqlconfig.Transaction
		profileRow      *sqlconfig.Profile
		goalRows        []*sqlconfig.Goal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactionRows, err = c.storage.Transactions.ListByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		profileRow, err = c.storage.Profiles.Get(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		goalRows, err = c.storage.Goals.ListByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	snap := &Snapshot{
		Transactions: storage.TransactionsFromRows(transactionRows),
		Budget:       storage.ProfileFromRow(profileRow),
		Goals:        storage.GoalsFromRows(goalRows),
	}

	if c.cache != nil {
		c.cache.Set(userID, gen, snap, int64(1+len(transactionRows)+len(goalRows)))
	}
	return snap, nil
}
