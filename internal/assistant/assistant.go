package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"

	"github.com/debug-create/new-money-pal/internal/engine"
)

const (
	defaultDeadlineMonths = 3
	aiConfidence          = 0.85
	createGoalAction      = "create_goal"
)

// Suggestion is a transaction read out of free text. Kind is the model's raw
// answer and may be empty or wrong.
type Suggestion struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Kind        string          `json:"type"`
}

// Attachment is a file the user sent along with a chat message.
type Attachment struct {
	Data     []byte
	MIMEType string
}

type GoalSummary struct {
	Title        string
	TargetAmount decimal.Decimal
}

// FinancialSummary is the state the model is told about before it answers.
type FinancialSummary struct {
	Allowance decimal.Decimal
	Income    decimal.Decimal
	Expense   decimal.Decimal
	Balance   decimal.Decimal
	Goals     []GoalSummary
}

type ChatRequest struct {
	Message     string
	Attachment  *Attachment
	Language    string
	DisplayName string
	Summary     FinancialSummary
}

// GoalIntent is set when the model asked for a savings goal to be created.
type GoalIntent struct {
	Title          string          `json:"title"`
	TargetAmount   decimal.Decimal `json:"target_amount"`
	DeadlineMonths int             `json:"deadline_months"`
}

type Reply struct {
	Text       string
	GoalIntent *GoalIntent
}

type AuditRequest struct {
	DisplayName  string
	Transactions []engine.Transaction
}

// MagicParse turns a sentence like "spent 500 on dinner" into a suggestion.
func (c *Client) MagicParse(ctx context.Context, text string) (Suggestion, error) {
	raw, err := c.generate(ctx, []*genai.Part{{Text: magicParsePrompt(text)}}, withTemperature(0.1, ""))
	if err != nil {
		return Suggestion{}, err
	}

	var suggestion Suggestion
	if err := json.Unmarshal([]byte(cleanModelJSON(raw)), &suggestion); err != nil {
		return Suggestion{}, fmt.Errorf("assistant: unmarshal suggestion: %w", err)
	}
	suggestion.Description = strings.TrimSpace(suggestion.Description)
	suggestion.Category = strings.TrimSpace(suggestion.Category)
	suggestion.Kind = strings.ToLower(strings.TrimSpace(suggestion.Kind))
	return suggestion, nil
}

// Chat answers a message with the user's finances as context.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (Reply, error) {
	parts := []*genai.Part{{Text: req.Message}}
	if req.Attachment != nil && len(req.Attachment.Data) > 0 {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: req.Attachment.MIMEType,
				Data:     req.Attachment.Data,
			},
		})
	}

	raw, err := c.generate(ctx, parts, withTemperature(0.6, chatSystemInstruction(req)))
	if err != nil {
		return Reply{}, err
	}

	return Reply{
		Text:       withoutFencedBlock(raw, "json"),
		GoalIntent: parseGoalIntent(raw),
	}, nil
}

// parseGoalIntent reads a create_goal block out of a chat answer. Anything
// malformed is treated as no intent.
func parseGoalIntent(raw string) *GoalIntent {
	block, ok := fencedBlock(raw, "json")
	if !ok {
		return nil
	}

	var payload struct {
		Action string `json:"action"`
		GoalIntent
	}
	if err := json.Unmarshal([]byte(block), &payload); err != nil {
		return nil
	}
	if payload.Action != createGoalAction {
		return nil
	}

	intent := payload.GoalIntent
	intent.Title = strings.TrimSpace(intent.Title)
	if intent.DeadlineMonths < 1 {
		intent.DeadlineMonths = defaultDeadlineMonths
	}
	return &intent
}

// Audit looks for one costly habit in the most recent transactions.
func (c *Client) Audit(ctx context.Context, req AuditRequest) (string, error) {
	if len(req.Transactions) == 0 {
		return "No transactions found! Add some spending or income first.", nil
	}
	return c.generate(ctx, []*genai.Part{{Text: auditPrompt(req.DisplayName, req.Transactions)}}, withTemperature(0.7, ""))
}

// Categorize asks the model for one of Categories. Answers outside the list
// are rejected.
func (c *Client) Categorize(ctx context.Context, text string) (engine.Categorization, error) {
	raw, err := c.generate(ctx, []*genai.Part{{Text: categorizePrompt(text)}}, withTemperature(0.1, ""))
	if err != nil {
		return engine.Categorization{}, err
	}

	answer := strings.Trim(strings.TrimSpace(raw), "\"'.")
	for _, category := range Categories {
		if strings.EqualFold(answer, category) {
			return engine.Categorization{Category: category, Confidence: aiConfidence, Method: engine.MethodAI}, nil
		}
	}
	return engine.Categorization{}, fmt.Errorf("assistant: unknown category %q", answer)
}
