package service

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/debug-create/new-money-pal/internal/engine"
	"github.com/debug-create/new-money-pal/internal/events"
	"github.com/debug-create/new-money-pal/internal/operator/actions"
)

type categorizer interface {
	Categorize(ctx context.Context, text string) (engine.Categorization, error)
}

// NewTransaction is a transaction as entered by the user or suggested by the
// assistant. A zero Date means now. SplitCount 0 means no split.
type NewTransaction struct {
	Description string
	Amount      decimal.Decimal
	Kind        engine.Kind
	Category    string
	Date        time.Time
	SplitCount  int
}

// AddResult is what was stored. Categorization is nil when the caller chose
// the category, Split is nil when no split was requested.
type AddResult struct {
	Transaction    engine.Transaction
	Categorization *engine.Categorization
	Split          *engine.SplitResult
}

// LedgerService handles transaction business logic.
type LedgerService struct {
	*core
	categorizer categorizer
}

// Add validates, optionally categorizes and splits, then stores a transaction.
func (s *LedgerService) Add(ctx context.Context, userID uuid.UUID, in NewTransaction) (AddResult, error) {
	if in.Date.IsZero() {
		in.Date = s.now()
	}

	var result AddResult
	t := engine.Transaction{
		Description: in.Description,
		Amount:      in.Amount,
		Kind:        in.Kind,
		Category:    in.Category,
		Date:        in.Date,
	}

	stored, err := engine.Normalize(t)
	if err != nil {
		return AddResult{}, err
	}
	stored.ID, err = uuid.NewV4()
	if err != nil {
		return AddResult{}, err
	}

	if in.SplitCount != 0 {
		split, err := engine.Split(stored, in.SplitCount)
		if err != nil {
			return AddResult{}, err
		}
		stored = split.Transaction
		result.Split = &split
	}

	if strings.TrimSpace(in.Category) == "" {
		categorization := s.categorize(ctx, in.Description)
		stored.Category = categorization.Category
		result.Categorization = &categorization
	}

	action := &actions.CreateTransaction{UserID: userID, Transaction: stored}
	if err := s.operator.Process(ctx, action); err != nil {
		return AddResult{}, err
	}
	s.committed(ctx, userID, events.EntityTransaction, events.ActionCreated, action.Created.ID)

	result.Transaction = action.Created
	return result, nil
}

// categorize tries the keyword table, then the assistant, then the default.
func (s *LedgerService) categorize(ctx context.Context, text string) engine.Categorization {
	if c, ok := engine.CategorizeByKeyword(text); ok {
		return c
	}

	if s.categorizer != nil {
		c, err := s.categorizer.Categorize(ctx, text)
		if err == nil {
			return c
		}
		s.logger.WithError(err).WithFields(logrus.Fields{
			"text": text,
		}).Warn("LedgerService.categorize.assistant")
	}

	return engine.FallbackCategorization()
}

// List returns the user's transactions matching filter, oldest first.
func (s *LedgerService) List(ctx context.Context, userID uuid.UUID, filter engine.Filter) ([]engine.Transaction, error) {
	snap, err := s.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	return snap.Ledger().List(filter), nil
}

// Delete removes a transaction. Deleting a missing transaction is not an error.
func (s *LedgerService) Delete(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	action := &actions.DeleteTransaction{UserID: userID, ID: id}
	if err := s.operator.Process(ctx, action); err != nil {
		return false, err
	}

	if action.Deleted {
		s.committed(ctx, userID, events.EntityTransaction, events.ActionDeleted, id)
	}
	return action.Deleted, nil
}

// Export writes every transaction as CSV and returns the file name to offer.
func (s *LedgerService) Export(ctx context.Context, userID uuid.UUID, w io.Writer, dateLayout string) (string, error) {
	snap, err := s.snapshot(ctx, userID)
	if err != nil {
		return "", err
	}

	if err := engine.WriteCSV(w, snap.Ledger().List(engine.Filter{}), dateLayout); err != nil {
		return "", err
	}
	return engine.ExportFilename(s.now()), nil
}
