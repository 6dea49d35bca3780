package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/debug-create/new-money-pal/internal/assistant"
	"github.com/debug-create/new-money-pal/internal/engine"
)

// ErrAssistantUnavailable is returned when no assistant is configured.
var ErrAssistantUnavailable = errors.New("service: assistant not configured")

type ChatInput struct {
	Message    string
	Attachment *assistant.Attachment
	Language   string
}

// ChatResult is the assistant's answer. When the assistant set up a goal,
// CreatedGoal holds it and Reply confirms it.
type ChatResult struct {
	Reply             string
	CreatedGoal       *engine.Goal
	MonthlyAllocation decimal.Decimal
}

type AssistantService struct {
	*core
	advisor Advisor
	ledger  *LedgerService
	goals   *GoalService
}

// MagicParse reads a transaction out of free text and stores it through the
// same path as a manual entry, so every suggested field is validated.
func (s *AssistantService) MagicParse(ctx context.Context, userID uuid.UUID, text string) (AddResult, error) {
	if s.advisor == nil {
		return AddResult{}, ErrAssistantUnavailable
	}

	suggestion, err := s.advisor.MagicParse(ctx, text)
	if err != nil {
		return AddResult{}, err
	}

	kind := engine.KindDebit
	if suggestion.Kind != "" {
		kind, err = engine.ParseKind(suggestion.Kind)
		if err != nil {
			return AddResult{}, err
		}
	}

	return s.ledger.Add(ctx, userID, NewTransaction{
		Description: suggestion.Description,
		Amount:      suggestion.Amount,
		Kind:        kind,
		Category:    suggestion.Category,
	})
}

func (s *AssistantService) Chat(ctx context.Context, userID uuid.UUID, in ChatInput) (ChatResult, error) {
	if s.advisor == nil {
		return ChatResult{}, ErrAssistantUnavailable
	}

	snap, err := s.snapshot(ctx, userID)
	if err != nil {
		return ChatResult{}, err
	}

	reply, err := s.advisor.Chat(ctx, assistant.ChatRequest{
		Message:     in.Message,
		Attachment:  in.Attachment,
		Language:    in.Language,
		DisplayName: snap.Budget.DisplayName,
		Summary:     financialSummary(snap),
	})
	if err != nil {
		return ChatResult{}, err
	}

	if reply.GoalIntent == nil {
		return ChatResult{Reply: reply.Text}, nil
	}

	goal, monthly, err := s.goals.CreateFromIntent(ctx, userID, *reply.GoalIntent)
	if errors.Is(err, engine.ErrValidation) || errors.Is(err, engine.ErrInvalidGoal) {
		return ChatResult{Reply: "I tried to create that goal, but the details didn't add up. Please try again!"}, nil
	}
	if err != nil {
		return ChatResult{}, err
	}

	return ChatResult{
		Reply: fmt.Sprintf("Done! I've created the goal '%s' on your dashboard. You need to save ₹%s/month.",
			goal.Title, monthly.StringFixed(0)),
		CreatedGoal:       &goal,
		MonthlyAllocation: monthly,
	}, nil
}

// Audit asks the assistant to find a costly habit in the latest transactions.
func (s *AssistantService) Audit(ctx context.Context, userID uuid.UUID) (string, error) {
	if s.advisor == nil {
		return "", ErrAssistantUnavailable
	}

	snap, err := s.snapshot(ctx, userID)
	if err != nil {
		return "", err
	}

	return s.advisor.Audit(ctx, assistant.AuditRequest{
		DisplayName:  snap.Budget.DisplayName,
		Transactions: newestFirst(snap.Transactions),
	})
}

func financialSummary(snap *Snapshot) assistant.FinancialSummary {
	agg := snap.Aggregate()
	summary := assistant.FinancialSummary{
		Allowance: snap.Budget.MonthlyAllowance,
		Income:    agg.TotalIncome,
		Expense:   agg.TotalExpense,
		Balance:   agg.CurrentBalance,
	}
	for _, g := range snap.Goals {
		summary.Goals = append(summary.Goals, assistant.GoalSummary{Title: g.Title, TargetAmount: g.TargetAmount})
	}
	return summary
}

func newestFirst(txs []engine.Transaction) []engine.Transaction {
	out := make([]engine.Transaction, len(txs))
	copy(out, txs)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
