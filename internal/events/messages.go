package events

import (
	"encoding/json"
	"time"

	"github.com/gofrs/uuid/v5"
)

type Entity string

const (
	EntityTransaction Entity = "transaction"
	EntityGoal        Entity = "goal"
	EntityBudget      Entity = "budget"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionDeleted Action = "deleted"
	ActionUpdated Action = "updated"
)

// LedgerEvent announces a committed change to a user's financial state.
type LedgerEvent struct {
	UserID     uuid.UUID `json:"user_id"`
	Entity     Entity    `json:"entity"`
	Action     Action    `json:"action"`
	EntityID   uuid.UUID `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewLedgerEvent(userID uuid.UUID, entity Entity, action Action, entityID uuid.UUID) LedgerEvent {
	return LedgerEvent{
		UserID:     userID,
		Entity:     entity,
		Action:     action,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
}

func (e LedgerEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
