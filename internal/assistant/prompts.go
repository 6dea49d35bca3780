package assistant

import (
	"fmt"
	"strings"
	"time"

	"github.com/debug-create/new-money-pal/internal/engine"
)

// Categories offered to the model when the keyword table has no match.
var Categories = []string{
	"Food & Dining",
	"Transport",
	"Shopping",
	"Groceries",
	"Utilities",
	"Health",
	"Entertainment",
	"Education",
	"Travel",
	"Investments",
	"Income",
	"Housing",
}

const auditTransactionLimit = 15

func magicParsePrompt(text string) string {
	return "Extract one transaction from: \"" + text + "\"\n\n" +
		"Return JSON only, with these fields:\n" +
		"- \"amount\": number, always positive\n" +
		"- \"description\": string\n" +
		"- \"category\": string, one of [" + strings.Join(Categories, ", ") + "]\n" +
		"- \"type\": \"debit\" for money spent, \"credit\" for money received\n"
}

func categorizePrompt(text string) string {
	return "Categorize this transaction: \"" + text + "\"\n\n" +
		"Options: [" + strings.Join(Categories, ", ") + "]\n\n" +
		"OUTPUT ONLY THE CATEGORY NAME. NO EXTRA TEXT."
}

func chatSystemInstruction(req ChatRequest) string {
	var goals []string
	for _, g := range req.Summary.Goals {
		goals = append(goals, fmt.Sprintf("%s (target ₹%s)", g.Title, g.TargetAmount.StringFixed(2)))
	}
	goalSummary := "None"
	if len(goals) > 0 {
		goalSummary = strings.Join(goals, ", ")
	}

	name := req.DisplayName
	if name == "" {
		name = "the user"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are MoneyPal, a friendly and smart financial buddy for %s.\n\n", name)
	b.WriteString("REAL TIME DATA:\n")
	fmt.Fprintf(&b, "- Monthly allowance: ₹%s\n", req.Summary.Allowance.StringFixed(2))
	fmt.Fprintf(&b, "- Income: ₹%s\n", req.Summary.Income.StringFixed(2))
	fmt.Fprintf(&b, "- Expenses: ₹%s\n", req.Summary.Expense.StringFixed(2))
	fmt.Fprintf(&b, "- Balance: ₹%s\n", req.Summary.Balance.StringFixed(2))
	fmt.Fprintf(&b, "- Goals: %s\n\n", goalSummary)
	b.WriteString("STYLE GUIDE:\n")
	b.WriteString("1. Use Indian Rupees (₹) for all currency. Never use $.\n")
	b.WriteString("2. Speak like a smart college senior, not a bank.\n")
	b.WriteString("3. Avoid jargon like \"deficit\". Say \"you're running low\" or \"you overspent\".\n")
	b.WriteString("4. Keep answers short (max 2 sentences).\n")
	if req.Language != "" {
		fmt.Fprintf(&b, "5. Reply in %s.\n", req.Language)
	}
	b.WriteString("\nTRIGGER: If the user explicitly agrees to set a savings goal, output a JSON object inside a code block like this:\n")
	b.WriteString("```json\n{\"action\": \"create_goal\", \"title\": \"Goal Title\", \"target_amount\": 0.0, \"deadline_months\": 3}\n```\n")
	return b.String()
}

func auditPrompt(displayName string, txs []engine.Transaction) string {
	if len(txs) > auditTransactionLimit {
		txs = txs[:auditTransactionLimit]
	}

	name := displayName
	if name == "" {
		name = "the user"
	}

	var b strings.Builder
	b.WriteString("You are MoneyPal's Senior Financial Analyst.\n")
	fmt.Fprintf(&b, "Here are %s's recent transactions (Date: Description - Amount):\n", name)
	for _, t := range txs {
		fmt.Fprintf(&b, "- %s: %s - ₹%s (%s, %s)\n",
			t.Date.Format(time.DateOnly), t.Description, t.Amount.StringFixed(2), t.Category, t.Kind)
	}
	b.WriteString("\nTASK:\n")
	b.WriteString("1. Identify one spending habit that is draining money, based on how often it appears.\n")
	b.WriteString("2. Project what this habit costs per year if unchecked.\n")
	b.WriteString("3. Give one actionable step to optimize it.\n\n")
	b.WriteString("CONSTRAINTS:\n")
	b.WriteString("- Maximum 3 bullet points.\n")
	b.WriteString("- Use Indian Rupees (₹).\n")
	b.WriteString("- No fluff. Go straight to the data.\n")
	return b.String()
}
