package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/debug-create/new-money-pal/internal/assistant"
	"github.com/debug-create/new-money-pal/internal/cache"
	"github.com/debug-create/new-money-pal/internal/engine"
	"github.com/debug-create/new-money-pal/internal/events"
	"github.com/debug-create/new-money-pal/internal/operator/actions"
	"github.com/debug-create/new-money-pal/internal/storage"
)

// Processor applies a mutation inside a database transaction.
type Processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

type Publisher interface {
	Publish(ctx context.Context, event events.LedgerEvent) error
}

// Advisor is the AI assistant. Its answers are never trusted as-is.
type Advisor interface {
	MagicParse(ctx context.Context, text string) (assistant.Suggestion, error)
	Chat(ctx context.Context, req assistant.ChatRequest) (assistant.Reply, error)
	Audit(ctx context.Context, req assistant.AuditRequest) (string, error)
	Categorize(ctx context.Context, text string) (engine.Categorization, error)
}

// Dependencies wires the services. Cache, Publisher and Advisor are optional.
type Dependencies struct {
	Storage   *storage.Storage
	Operator  Processor
	Cache     *cache.UserCache[*Snapshot]
	Publisher Publisher
	Advisor   Advisor
	Logger    *logrus.Logger
}

// Service holds all business logic services.
type Service struct {
	Ledger    *LedgerService
	Budget    *BudgetService
	Goals     *GoalService
	Dashboard *DashboardService
	Assistant *AssistantService
}

func NewService(deps Dependencies) *Service {
	c := &core{
		storage:   deps.Storage,
		operator:  deps.Operator,
		cache:     deps.Cache,
		publisher: deps.Publisher,
		logger:    deps.Logger,
		now:       time.Now,
	}
	if c.logger == nil {
		c.logger = logrus.StandardLogger()
	}

	ledger := &LedgerService{core: c, categorizer: deps.Advisor}
	goals := &GoalService{core: c}
	return &Service{
		Ledger:    ledger,
		Budget:    &BudgetService{core: c},
		Goals:     goals,
		Dashboard: &DashboardService{core: c},
		Assistant: &AssistantService{core: c, advisor: deps.Advisor, ledger: ledger, goals: goals},
	}
}

// core is shared by every service: snapshot reads on one side, serialized
// writes followed by invalidation on the other.
type core struct {
	storage   *storage.Storage
	operator  Processor
	cache     *cache.UserCache[*Snapshot]
	publisher Publisher
	logger    *logrus.Logger
	now       func() time.Time
}

// committed runs after a mutation commits. Publishing failures are logged and
// never reach the caller.
func (c *core) committed(ctx context.Context, userID uuid.UUID, entity events.Entity, action events.Action, entityID uuid.UUID) {
	if c.cache != nil {
		c.cache.Invalidate(userID)
	}
	if c.publisher == nil {
		return
	}

	if err := c.publisher.Publish(ctx, events.NewLedgerEvent(userID, entity, action, entityID)); err != nil {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"userID": userID.String(),
			"entity": entity,
			"action": action,
		}).Warn("Service.committed.publish")
	}
}
