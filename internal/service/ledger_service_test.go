package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/debug-create/new-money-pal/internal/cache"
	"github.com/debug-create/new-money-pal/internal/engine"
	"github.com/debug-create/new-money-pal/internal/events"
	"github.com/debug-create/new-money-pal/internal/operator/actions"
	"github.com/debug-create/new-money-pal/internal/storage/sqlconfig"
)

// -- Add tests --

func TestAdd_StoresNormalizedTransaction(t *testing.T) {
	h := newTestHarness(t)
	day := time.Date(2025, 3, 12, 15, 45, 0, 0, time.UTC)

	result, err := h.svc.Ledger.Add(context.Background(), h.userID, NewTransaction{
		Description: "  Groceries  ",
		Amount:      decimal.RequireFromString("450"),
		Kind:        engine.KindDebit,
		Category:    "Groceries",
		Date:        day,
	})

	require.NoError(t, err)
	assert.False(t, result.Transaction.ID.IsNil())
	assert.Equal(t, "Groceries", result.Transaction.Description)
	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), result.Transaction.Date)
	assert.Nil(t, result.Categorization)
	assert.Nil(t, result.Split)

	action := h.processor.last().(*actions.CreateTransaction)
	assert.Equal(t, h.userID, action.UserID)

	require.Len(t, h.publisher.events, 1)
	assert.Equal(t, events.EntityTransaction, h.publisher.events[0].Entity)
	assert.Equal(t, events.ActionCreated, h.publisher.events[0].Action)
	assert.Equal(t, result.Transaction.ID, h.publisher.events[0].EntityID)
}

func TestAdd_DefaultsDateToNow(t *testing.T) {
	h := newTestHarness(t)

	result, err := h.svc.Ledger.Add(context.Background(), h.userID, NewTransaction{
		Description: "Chai",
		Amount:      decimal.NewFromInt(20),
		Kind:        engine.KindDebit,
		Category:    "Food & Dining",
	})

	require.NoError(t, err)
	assert.Equal(t, engine.DateOf(testNow), result.Transaction.Date)
}

func TestAdd_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		in    NewTransaction
		field string
	}{
		{"empty description", NewTransaction{Description: " ", Amount: decimal.NewFromInt(1), Kind: engine.KindDebit, Category: "Food"}, "description"},
		{"zero amount", NewTransaction{Description: "x", Amount: decimal.Zero, Kind: engine.KindDebit, Category: "Food"}, "amount"},
		{"negative amount", NewTransaction{Description: "x", Amount: decimal.NewFromInt(-5), Kind: engine.KindDebit, Category: "Food"}, "amount"},
		{"bad kind", NewTransaction{Description: "x", Amount: decimal.NewFromInt(5), Kind: "transfer", Category: "Food"}, "kind"},
		{"split of one", NewTransaction{Description: "x", Amount: decimal.NewFromInt(5), Kind: engine.KindDebit, Category: "Food", SplitCount: 1}, "splitCount"},
		{"below one cent", NewTransaction{Description: "x", Amount: decimal.RequireFromString("0.004"), Kind: engine.KindDebit, Category: "Food"}, "amount"},
		{"too large to store", NewTransaction{Description: "x", Amount: decimal.RequireFromString("1e15"), Kind: engine.KindCredit, Category: "Food"}, "amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHarness(t)

			_, err := h.svc.Ledger.Add(context.Background(), h.userID, tt.in)

			var validationErr *engine.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
			assert.Nil(t, h.processor.last())
			assert.Empty(t, h.publisher.events)
		})
	}
}

func TestAdd_SplitsDebit(t *testing.T) {
	h := newTestHarness(t)

	result, err := h.svc.Ledger.Add(context.Background(), h.userID, NewTransaction{
		Description: "Dinner",
		Amount:      decimal.NewFromInt(450),
		Kind:        engine.KindDebit,
		Category:    "Food & Dining",
		SplitCount:  2,
	})

	require.NoError(t, err)
	assert.True(t, result.Transaction.Amount.Equal(decimal.RequireFromString("225.00")))
	assert.Equal(t, "Dinner (Split 1/2)", result.Transaction.Description)
	require.NotNil(t, result.Split)
	assert.True(t, result.Split.Applied)
}

func TestAdd_SplitLeavesCreditUnchanged(t *testing.T) {
	h := newTestHarness(t)

	result, err := h.svc.Ledger.Add(context.Background(), h.userID, NewTransaction{
		Description: "Salary",
		Amount:      decimal.NewFromInt(1000),
		Kind:        engine.KindCredit,
		Category:    "Income",
		SplitCount:  4,
	})

	require.NoError(t, err)
	assert.True(t, result.Transaction.Amount.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "Salary", result.Transaction.Description)
	require.NotNil(t, result.Split)
	assert.False(t, result.Split.Applied)
}

func TestAdd_CategorizesByKeyword(t *testing.T) {
	h := newTestHarness(t)

	result, err := h.svc.Ledger.Add(context.Background(), h.userID, NewTransaction{
		Description: "Swiggy order",
		Amount:      decimal.NewFromInt(300),
		Kind:        engine.KindDebit,
	})

	require.NoError(t, err)
	assert.Equal(t, "Food & Dining", result.Transaction.Category)
	require.NotNil(t, result.Categorization)
	assert.Equal(t, engine.MethodKeyword, result.Categorization.Method)
	h.advisor.AssertNotCalled(t, "Categorize", mock.Anything, mock.Anything)
}

func TestAdd_CategorizesWithAssistant(t *testing.T) {
	h := newTestHarness(t)
	h.advisor.On("Categorize", mock.Anything, "Chai at Tapri").
		Return(engine.Categorization{Category: "Food & Dining", Confidence: 0.85, Method: engine.MethodAI}, nil)

	result, err := h.svc.Ledger.Add(context.Background(), h.userID, NewTransaction{
		Description: "Chai at Tapri",
		Amount:      decimal.NewFromInt(20),
		Kind:        engine.KindDebit,
	})

	require.NoError(t, err)
	assert.Equal(t, "Food & Dining", result.Transaction.Category)
	assert.Equal(t, engine.MethodAI, result.Categorization.Method)
}

func TestAdd_AssistantFailureFallsBack(t *testing.T) {
	h := newTestHarness(t)
	h.advisor.On("Categorize", mock.Anything, mock.Anything).
		Return(engine.Categorization{}, errors.New("quota exceeded"))

	result, err := h.svc.Ledger.Add(context.Background(), h.userID, NewTransaction{
		Description: "Mystery",
		Amount:      decimal.NewFromInt(20),
		Kind:        engine.KindDebit,
	})

	require.NoError(t, err)
	assert.Equal(t, engine.DefaultCategory, result.Transaction.Category)
	assert.Equal(t, engine.MethodFallback, result.Categorization.Method)
}

func TestAdd_ProcessError(t *testing.T) {
	h := newTestHarness(t)
	h.processor.err = errors.New("database unavailable")

	_, err := h.svc.Ledger.Add(context.Background(), h.userID, NewTransaction{
		Description: "Rent",
		Amount:      decimal.NewFromInt(2000),
		Kind:        engine.KindDebit,
		Category:    "Housing",
	})

	assert.EqualError(t, err, "database unavailable")
	assert.Empty(t, h.publisher.events)
}

func TestAdd_PublishErrorDoesNotFail(t *testing.T) {
	h := newTestHarness(t)
	h.publisher.err = errors.New("channel closed")

	_, err := h.svc.Ledger.Add(context.Background(), h.userID, NewTransaction{
		Description: "Rent",
		Amount:      decimal.NewFromInt(2000),
		Kind:        engine.KindDebit,
		Category:    "Housing",
	})

	assert.NoError(t, err)
}

// -- List tests --

func TestList_Filters(t *testing.T) {
	h := newTestHarness(t)
	h.expectSnapshot(scenarioRows(), nil, nil)

	txs, err := h.svc.Ledger.List(context.Background(), h.userID, engine.Filter{Kind: engine.FilterIncome})

	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Refund", txs[0].Description)
}

func TestList_Search(t *testing.T) {
	h := newTestHarness(t)
	h.expectSnapshot(scenarioRows(), nil, nil)

	txs, err := h.svc.Ledger.List(context.Background(), h.userID, engine.Filter{Search: "RENT"})

	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "Rent", txs[0].Description)
}

func TestList_StorageError(t *testing.T) {
	h := newTestHarness(t)
	h.transactions.EXPECT().ListByUser(mock.Anything, h.userID).Return(nil, errors.New("database unavailable"))
	h.profiles.EXPECT().Get(mock.Anything, h.userID).Return(nil, nil).Maybe()
	h.goals.EXPECT().ListByUser(mock.Anything, h.userID).Return(nil, nil).Maybe()

	txs, err := h.svc.Ledger.List(context.Background(), h.userID, engine.Filter{})

	assert.ErrorContains(t, err, "database unavailable")
	assert.Nil(t, txs)
}

func TestList_UsesCacheUntilWrite(t *testing.T) {
	h := newTestHarness(t)
	snapshots, err := cache.NewUserCache[*Snapshot](time.Minute)
	require.NoError(t, err)
	t.Cleanup(snapshots.Close)
	h.svc.Ledger.cache = snapshots

	h.expectSnapshot(scenarioRows(), nil, nil)
	_, err = h.svc.Ledger.List(context.Background(), h.userID, engine.Filter{})
	require.NoError(t, err)
	snapshots.Wait()

	// Served from the cache: the mocks only allow one read each.
	txs, err := h.svc.Ledger.List(context.Background(), h.userID, engine.Filter{})
	require.NoError(t, err)
	assert.Len(t, txs, 2)

	_, err = h.svc.Ledger.Add(context.Background(), h.userID, NewTransaction{
		Description: "Rent",
		Amount:      decimal.NewFromInt(100),
		Kind:        engine.KindDebit,
		Category:    "Housing",
	})
	require.NoError(t, err)

	rows := append(scenarioRows(), txRow("Rent", "100", "debit", "Housing", testNow))
	h.expectSnapshot(rows, nil, nil)
	txs, err = h.svc.Ledger.List(context.Background(), h.userID, engine.Filter{})
	require.NoError(t, err)
	assert.Len(t, txs, 3)
}

// -- Delete tests --

func TestDelete_Existing(t *testing.T) {
	h := newTestHarness(t)
	h.processor.deleted = true
	id := scenarioRows()[0].ID

	deleted, err := h.svc.Ledger.Delete(context.Background(), h.userID, id)

	require.NoError(t, err)
	assert.True(t, deleted)
	require.Len(t, h.publisher.events, 1)
	assert.Equal(t, events.ActionDeleted, h.publisher.events[0].Action)
}

func TestDelete_MissingIsNotAnError(t *testing.T) {
	h := newTestHarness(t)

	deleted, err := h.svc.Ledger.Delete(context.Background(), h.userID, scenarioRows()[0].ID)

	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Empty(t, h.publisher.events)
}

// -- Export tests --

func TestExport(t *testing.T) {
	h := newTestHarness(t)
	h.expectSnapshot([]*sqlconfig.Transaction{
		txRow(`He said "hi"`, "12.5", "debit", "General", time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)),
	}, nil, nil)

	var buf bytes.Buffer
	filename, err := h.svc.Ledger.Export(context.Background(), h.userID, &buf, engine.DefaultDateLayout)

	require.NoError(t, err)
	assert.Equal(t, "moneypal_export_2025-03-14.csv", filename)
	assert.Equal(t, "Date,Description,Category,Type,Amount\n3/2/2025,\"He said \"\"hi\"\"\",General,debit,12.5\n", buf.String())
}
