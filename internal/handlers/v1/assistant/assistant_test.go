package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/debug-create/new-money-pal/internal/engine"
	"github.com/debug-create/new-money-pal/internal/handlers/v1/transaction"
	"github.com/debug-create/new-money-pal/internal/service"
	"github.com/debug-create/new-money-pal/internal/session"
)

type mockAssistantService struct {
	mock.Mock
}

func (m *mockAssistantService) MagicParse(ctx context.Context, userID uuid.UUID, text string) (service.AddResult, error) {
	args := m.Called(ctx, userID, text)
	return args.Get(0).(service.AddResult), args.Error(1)
}

func (m *mockAssistantService) Chat(ctx context.Context, userID uuid.UUID, in service.ChatInput) (service.ChatResult, error) {
	args := m.Called(ctx, userID, in)
	return args.Get(0).(service.ChatResult), args.Error(1)
}

func (m *mockAssistantService) Audit(ctx context.Context, userID uuid.UUID) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

var testUserID = uuid.Must(uuid.FromString("c41d7e2a-0f3b-4a88-b6e9-2d5f7a1c8e04"))

func newTestAPI(t *testing.T, svc *mockAssistantService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, session.WithUserID(ctx.Context(), testUserID)))
	})
	NewMagicParseHandler(svc).Register(api)
	NewChatHandler(svc).Register(api)
	NewAuditHandler(svc).Register(api)
	return api
}

func TestHTTP_MagicParse(t *testing.T) {
	stored := engine.Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		Description: "Pizza",
		Amount:      decimal.NewFromInt(450),
		Kind:        engine.KindDebit,
		Category:    "Food & Dining",
		Date:        time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC),
	}
	svc := new(mockAssistantService)
	svc.On("MagicParse", mock.Anything, testUserID, "paid 450 for pizza").
		Return(service.AddResult{Transaction: stored}, nil)

	resp := newTestAPI(t, svc).Post("/v1/assistant/magic-parse", MagicParseBody{Text: "paid 450 for pizza"})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body transaction.CreateTransactionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Pizza", body.Transaction.Description)
	assert.Equal(t, "450.00", body.Transaction.Amount)
	assert.Equal(t, "debit", body.Transaction.Type)
}

func TestHTTP_MagicParse_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not configured", service.ErrAssistantUnavailable, http.StatusServiceUnavailable},
		{"bad suggestion", &engine.ValidationError{Field: "amount", Reason: "must be greater than zero"}, http.StatusBadRequest},
		{"model failure", errors.New("assistant: empty response"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockAssistantService)
			svc.On("MagicParse", mock.Anything, mock.Anything, mock.Anything).Return(service.AddResult{}, tt.err)

			resp := newTestAPI(t, svc).Post("/v1/assistant/magic-parse", MagicParseBody{Text: "something"})

			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}

func TestHTTP_Chat(t *testing.T) {
	svc := new(mockAssistantService)
	svc.On("Chat", mock.Anything, testUserID, service.ChatInput{Message: "how am I doing?", Language: "Hindi"}).
		Return(service.ChatResult{Reply: "Bahut accha!"}, nil)

	resp := newTestAPI(t, svc).Post("/v1/assistant/chat", ChatBody{Message: "how am I doing?", Language: "Hindi"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ChatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Bahut accha!", body.Reply)
	assert.Nil(t, body.CreatedGoal)
	svc.AssertExpectations(t)
}

func TestHTTP_Chat_Attachment(t *testing.T) {
	svc := new(mockAssistantService)
	svc.On("Chat", mock.Anything, testUserID, mock.MatchedBy(func(in service.ChatInput) bool {
		return in.Attachment != nil &&
			string(in.Attachment.Data) == "receipt-bytes" &&
			in.Attachment.MIMEType == "image/png"
	})).Return(service.ChatResult{Reply: "That receipt totals 450."}, nil)

	resp := newTestAPI(t, svc).Post("/v1/assistant/chat", ChatBody{
		Message:    "what is this?",
		Attachment: []byte("receipt-bytes"),
		MIMEType:   "image/png",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_Chat_AttachmentWithoutMIMEType(t *testing.T) {
	svc := new(mockAssistantService)

	resp := newTestAPI(t, svc).Post("/v1/assistant/chat", ChatBody{
		Message:    "what is this?",
		Attachment: []byte("receipt-bytes"),
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "Chat")
}

func TestHTTP_Chat_CreatedGoal(t *testing.T) {
	goal := engine.Goal{ID: uuid.Must(uuid.NewV4()), Title: "Bike", TargetAmount: decimal.NewFromInt(30000)}
	svc := new(mockAssistantService)
	svc.On("Chat", mock.Anything, testUserID, mock.Anything).Return(service.ChatResult{
		Reply:             "Done! I've created the goal 'Bike' on your dashboard. You need to save ₹5000/month.",
		CreatedGoal:       &goal,
		MonthlyAllocation: decimal.NewFromInt(5000),
	}, nil)

	resp := newTestAPI(t, svc).Post("/v1/assistant/chat", ChatBody{Message: "help me save for a bike in 6 months"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ChatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.CreatedGoal)
	assert.Equal(t, goal.ID.String(), body.CreatedGoal.ID)
	assert.Equal(t, "5000.00", body.CreatedGoal.MonthlyAllocation)
}

func TestHTTP_Chat_Unavailable(t *testing.T) {
	svc := new(mockAssistantService)
	svc.On("Chat", mock.Anything, mock.Anything, mock.Anything).Return(service.ChatResult{}, service.ErrAssistantUnavailable)

	resp := newTestAPI(t, svc).Post("/v1/assistant/chat", ChatBody{Message: "hi"})

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestHTTP_Audit(t *testing.T) {
	svc := new(mockAssistantService)
	svc.On("Audit", mock.Anything, testUserID).Return("Cut back on food delivery.", nil)

	resp := newTestAPI(t, svc).Post("/v1/assistant/audit")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body AuditResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Cut back on food delivery.", body.Advice)
}

func TestHTTP_Audit_Timeout(t *testing.T) {
	svc := new(mockAssistantService)
	svc.On("Audit", mock.Anything, mock.Anything).Return("", context.DeadlineExceeded)

	resp := newTestAPI(t, svc).Post("/v1/assistant/audit")

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}
