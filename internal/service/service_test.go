package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/debug-create/new-money-pal/internal/assistant"
	"github.com/debug-create/new-money-pal/internal/engine"
	"github.com/debug-create/new-money-pal/internal/events"
	"github.com/debug-create/new-money-pal/internal/logging"
	"github.com/debug-create/new-money-pal/internal/operator/actions"
	"github.com/debug-create/new-money-pal/internal/storage"
	"github.com/debug-create/new-money-pal/internal/storage/sqlconfig"
)

var testNow = time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC)

// fakeProcessor applies actions the way the storage tables would.
type fakeProcessor struct {
	mutex   sync.Mutex
	actions []actions.IAction
	deleted bool
	err     error
}

func (f *fakeProcessor) Process(_ context.Context, action actions.IAction) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.actions = append(f.actions, action)
	if f.err != nil {
		return f.err
	}

	switch a := action.(type) {
	case *actions.CreateTransaction:
		a.Created = a.Transaction
		a.Created.CreatedAt = testNow
	case *actions.DeleteTransaction:
		a.Deleted = f.deleted
	case *actions.SetBudget:
		a.Saved = a.Profile
	case *actions.CreateGoal:
		a.Created = a.Goal
		a.Created.CreatedAt = testNow
	case *actions.DeleteGoal:
		a.Deleted = f.deleted
	}
	return nil
}

func (f *fakeProcessor) last() actions.IAction {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if len(f.actions) == 0 {
		return nil
	}
	return f.actions[len(f.actions)-1]
}

type fakePublisher struct {
	events []events.LedgerEvent
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, event events.LedgerEvent) error {
	f.events = append(f.events, event)
	return f.err
}

type mockAdvisor struct {
	mock.Mock
}

func (m *mockAdvisor) MagicParse(ctx context.Context, text string) (assistant.Suggestion, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(assistant.Suggestion), args.Error(1)
}

func (m *mockAdvisor) Chat(ctx context.Context, req assistant.ChatRequest) (assistant.Reply, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(assistant.Reply), args.Error(1)
}

func (m *mockAdvisor) Audit(ctx context.Context, req assistant.AuditRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockAdvisor) Categorize(ctx context.Context, text string) (engine.Categorization, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(engine.Categorization), args.Error(1)
}

type testHarness struct {
	svc          *Service
	transactions *sqlconfig.MockITransactionTable
	goals        *sqlconfig.MockIGoalTable
	profiles     *sqlconfig.MockIProfileTable
	processor    *fakeProcessor
	publisher    *fakePublisher
	advisor      *mockAdvisor
	userID       uuid.UUID
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()
	h := &testHarness{
		transactions: sqlconfig.NewMockITransactionTable(t),
		goals:        sqlconfig.NewMockIGoalTable(t),
		profiles:     sqlconfig.NewMockIProfileTable(t),
		processor:    &fakeProcessor{},
		publisher:    &fakePublisher{},
		advisor:      &mockAdvisor{},
		userID:       uuid.Must(uuid.NewV4()),
	}
	t.Cleanup(func() { h.advisor.AssertExpectations(t) })

	h.svc = NewService(Dependencies{
		Storage: &storage.Storage{
			Transactions: h.transactions,
			Goals:        h.goals,
			Profiles:     h.profiles,
		},
		Operator:  h.processor,
		Publisher: h.publisher,
		Advisor:   h.advisor,
		Logger:    logging.SetupLogging("error"),
	})
	h.setNow(testNow)
	return h
}

func (h *testHarness) setNow(now time.Time) {
	h.svc.Ledger.now = func() time.Time { return now }
}

// expectSnapshot makes the three snapshot reads return the given rows.
func (h *testHarness) expectSnapshot(txs []*sqlconfig.Transaction, profile *sqlconfig.Profile, goals []*sqlconfig.Goal) {
	h.transactions.EXPECT().ListByUser(mock.Anything, h.userID).Return(txs, nil).Once()
	h.profiles.EXPECT().Get(mock.Anything, h.userID).Return(profile, nil).Once()
	h.goals.EXPECT().ListByUser(mock.Anything, h.userID).Return(goals, nil).Once()
}

func txRow(description, amount, kind, category string, day time.Time) *sqlconfig.Transaction {
	return &sqlconfig.Transaction{
		ID:              uuid.Must(uuid.NewV4()),
		Description:     description,
		Amount:          decimal.RequireFromString(amount),
		Kind:            kind,
		Category:        category,
		TransactionDate: day,
		CreatedAt:       day,
	}
}

func profileRow(userID uuid.UUID, allowance string) *sqlconfig.Profile {
	return &sqlconfig.Profile{
		UserID:           userID,
		DisplayName:      "Asha",
		MonthlyAllowance: decimal.RequireFromString(allowance),
	}
}

func goalRow(title, target string, createdAt time.Time) *sqlconfig.Goal {
	return &sqlconfig.Goal{
		ID:           uuid.Must(uuid.NewV4()),
		Title:        title,
		TargetAmount: decimal.RequireFromString(target),
		CreatedAt:    createdAt,
	}
}

// scenarioRows is the standard test ledger: allowance 5000, rent 2000 debit,
// refund 500 credit.
func scenarioRows() []*sqlconfig.Transaction {
	return []*sqlconfig.Transaction{
		txRow("Rent", "2000", "debit", "Housing", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)),
		txRow("Refund", "500", "credit", "Income", time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)),
	}
}
