package goal

import (
	"time"

	"github.com/debug-create/new-money-pal/internal/engine"
	"github.com/debug-create/new-money-pal/internal/service"
)

// Goal is the API response model for a savings goal.
type Goal struct {
	ID           string    `json:"id" doc:"Goal UUID"`
	Title        string    `json:"title"`
	TargetAmount string    `json:"targetAmount"`
	Deadline     *string   `json:"deadline,omitempty" doc:"Optional deadline, YYYY-MM-DD"`
	CreatedAt    string    `json:"createdAt"`
	Progress     *Progress `json:"progress,omitempty" doc:"Progress against the current balance, omitted on create"`
}

// Progress is how far the current balance is towards a goal.
type Progress struct {
	Percent   string `json:"percent" doc:"0 to 100"`
	Remaining string `json:"remaining" doc:"Amount still missing, never negative"`
	Achieved  bool   `json:"achieved"`
	Active    bool   `json:"active" doc:"True for the goal shown on the dashboard"`
}

func fromEngine(g engine.Goal) Goal {
	out := Goal{
		ID:           g.ID.String(),
		Title:        g.Title,
		TargetAmount: g.TargetAmount.StringFixed(2),
		CreatedAt:    g.CreatedAt.Format(time.RFC3339),
	}
	if g.Deadline != nil {
		deadline := g.Deadline.Format(time.DateOnly)
		out.Deadline = &deadline
	}
	return out
}

// FromStatus converts a goal with progress. The dashboard reuses it.
func FromStatus(s service.GoalStatus) Goal {
	out := fromEngine(s.Goal)
	out.Progress = &Progress{
		Percent:   s.Progress.Percent.StringFixed(1),
		Remaining: s.Progress.Remaining.StringFixed(2),
		Achieved:  s.Progress.Achieved,
		Active:    s.Active,
	}
	return out
}
