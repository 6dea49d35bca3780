package budget

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/debug-create/new-money-pal/internal/engine"
	"github.com/debug-create/new-money-pal/internal/session"
)

type mockBudgetService struct {
	mock.Mock
}

func (m *mockBudgetService) Get(ctx context.Context, userID uuid.UUID) (engine.BudgetProfile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(engine.BudgetProfile), args.Error(1)
}

func (m *mockBudgetService) Set(ctx context.Context, userID uuid.UUID, allowance decimal.Decimal, displayName string) (engine.BudgetProfile, error) {
	args := m.Called(ctx, userID, allowance, displayName)
	return args.Get(0).(engine.BudgetProfile), args.Error(1)
}

var testUserID = uuid.Must(uuid.FromString("0b7d6a31-5c2e-4f7a-8d1e-3c9b2a4f6e10"))

func newTestAPI(t *testing.T, svc *mockBudgetService, withSession bool) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	if withSession {
		api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
			next(huma.WithContext(ctx, session.WithUserID(ctx.Context(), testUserID)))
		})
	}
	NewGetBudgetHandler(svc).Register(api)
	NewSetBudgetHandler(svc).Register(api)
	return api
}

func TestHTTP_GetBudget(t *testing.T) {
	svc := new(mockBudgetService)
	svc.On("Get", mock.Anything, testUserID).
		Return(engine.BudgetProfile{MonthlyAllowance: decimal.NewFromInt(3000), DisplayName: "asha"}, nil)

	resp := newTestAPI(t, svc, true).Get("/v1/budget")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Budget
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "3000.00", body.MonthlyAllowance)
	assert.Equal(t, "100.00", body.SafeDailySpend)
	assert.Equal(t, "A", body.Initial)
	assert.True(t, body.Configured)
}

func TestHTTP_GetBudget_NotSetUp(t *testing.T) {
	svc := new(mockBudgetService)
	svc.On("Get", mock.Anything, testUserID).Return(engine.BudgetProfile{}, nil)

	resp := newTestAPI(t, svc, true).Get("/v1/budget")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Budget
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "0.00", body.MonthlyAllowance)
	assert.False(t, body.Configured)
	assert.Empty(t, body.Initial)
}

func TestHTTP_GetBudget_NoSession(t *testing.T) {
	svc := new(mockBudgetService)

	resp := newTestAPI(t, svc, false).Get("/v1/budget")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	svc.AssertNotCalled(t, "Get")
}

func TestHTTP_SetBudget(t *testing.T) {
	svc := new(mockBudgetService)
	svc.On("Set", mock.Anything, testUserID, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.RequireFromString("4500.50"))
	}), "Asha").Return(engine.BudgetProfile{MonthlyAllowance: decimal.RequireFromString("4500.50"), DisplayName: "Asha"}, nil)

	resp := newTestAPI(t, svc, true).Put("/v1/budget", SetBudgetBody{MonthlyAllowance: "4500.50", DisplayName: "Asha"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Budget
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "4500.50", body.MonthlyAllowance)
	assert.Equal(t, "Asha", body.DisplayName)
	svc.AssertExpectations(t)
}

func TestHTTP_SetBudget_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       SetBudgetBody
		serviceErr error
		wantStatus int
	}{
		{
			name:       "not a number",
			body:       SetBudgetBody{MonthlyAllowance: "plenty"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative allowance",
			body:       SetBudgetBody{MonthlyAllowance: "-1"},
			serviceErr: &engine.ValidationError{Field: "monthlyAllowance", Reason: "must not be negative"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "storage failure",
			body:       SetBudgetBody{MonthlyAllowance: "100"},
			serviceErr: errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockBudgetService)
			if tt.serviceErr != nil {
				svc.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(engine.BudgetProfile{}, tt.serviceErr)
			}

			resp := newTestAPI(t, svc, true).Put("/v1/budget", tt.body)

			assert.Equal(t, tt.wantStatus, resp.Code)
			if tt.serviceErr == nil {
				svc.AssertNotCalled(t, "Set")
			}
		})
	}
}
