package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/debug-create/new-money-pal/internal/logging"
)

type mockChannel struct {
	mock.Mock
}

func (m *mockChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error {
	return m.Called(name, kind, durable, autoDelete, internal, noWait, args).Error(0)
}

func (m *mockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func (m *mockChannel) Close() error {
	return m.Called().Error(0)
}

func TestPublisher_Publish(t *testing.T) {
	ch := new(mockChannel)
	ch.On("ExchangeDeclare", "moneypal", "direct", true, false, false, false, amqp091.Table(nil)).Return(nil)

	event := NewLedgerEvent(uuid.Must(uuid.NewV4()), EntityTransaction, ActionCreated, uuid.Must(uuid.NewV4()))
	ch.On("PublishWithContext", mock.Anything, "moneypal", "ledger.changed", false, false,
		mock.MatchedBy(func(msg amqp091.Publishing) bool {
			var decoded LedgerEvent
			if err := json.Unmarshal(msg.Body, &decoded); err != nil {
				return false
			}
			return msg.DeliveryMode == amqp091.Persistent &&
				msg.ContentType == "application/json" &&
				msg.Type == "transaction.created" &&
				decoded.EntityID == event.EntityID
		})).Return(nil)

	publisher, err := newPublisher(ch, "moneypal", "ledger.changed", logging.SetupLogging("error"))
	require.NoError(t, err)

	assert.NoError(t, publisher.Publish(context.Background(), event))
	ch.AssertExpectations(t)
}

func TestPublisher_DeclareFailureClosesChannel(t *testing.T) {
	ch := new(mockChannel)
	ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("access refused"))
	ch.On("Close").Return(nil)

	_, err := newPublisher(ch, "moneypal", "ledger.changed", logging.SetupLogging("error"))

	assert.ErrorContains(t, err, "declare exchange")
	ch.AssertExpectations(t)
}

func TestPublisher_PublishError(t *testing.T) {
	ch := new(mockChannel)
	ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("channel closed"))

	publisher, err := newPublisher(ch, "moneypal", "ledger.changed", logging.SetupLogging("error"))
	require.NoError(t, err)

	err = publisher.Publish(context.Background(), NewLedgerEvent(uuid.Nil, EntityGoal, ActionDeleted, uuid.Nil))
	assert.ErrorContains(t, err, "publish event")
}
