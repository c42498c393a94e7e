package rabbitmq_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"dispatch/internal/adapters/out/rabbitmq"
	"dispatch/internal/core/domain/model/notification"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockChannel struct{ mock.Mock }

func (m *MockChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	return m.Called(name, kind, durable, autoDelete, internal, noWait, args).Error(0)
}

func (m *MockChannel) PublishWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp.Publishing,
) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func (m *MockChannel) Close() error {
	return m.Called().Error(0)
}

func logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewPublisher_DeclaresDurableFanout(t *testing.T) {
	ch := new(MockChannel)
	ch.On("ExchangeDeclare", rabbitmq.DefaultExchange, "fanout", true, false, false, false, amqp.Table(nil)).
		Return(nil).Once()

	_, err := rabbitmq.NewPublisher(ch, "", logger())

	require.NoError(t, err)
	ch.AssertExpectations(t)
}

func TestNewPublisher_DeclareError(t *testing.T) {
	ch := new(MockChannel)
	ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return(errors.New("access refused"))

	_, err := rabbitmq.NewPublisher(ch, "events", logger())

	require.ErrorContains(t, err, "access refused")
}

func TestPublisher_Publish_CarriesRoleAndType(t *testing.T) {
	ch := new(MockChannel)
	ch.On("ExchangeDeclare", "events", "fanout", true, false, false, false, amqp.Table(nil)).Return(nil)

	var sent amqp.Publishing
	ch.On("PublishWithContext", mock.Anything, "events", "", false, false, mock.AnythingOfType("amqp091.Publishing")).
		Run(func(args mock.Arguments) { sent = args.Get(5).(amqp.Publishing) }).
		Return(nil).Once()

	p, err := rabbitmq.NewPublisher(ch, "events", logger())
	require.NoError(t, err)

	err = p.Publish(t.Context(), notification.Rider,
		notification.NewEvent(notification.OrderAssigned, "riderId", "R1"))

	require.NoError(t, err)
	assert.Equal(t, "order_assigned", sent.Type)
	assert.Equal(t, "application/json", sent.ContentType)
	assert.Equal(t, "rider", sent.Headers["role"])
	var body map[string]any
	require.NoError(t, json.Unmarshal(sent.Body, &body))
	assert.Equal(t, "R1", body["riderId"])
	ch.AssertExpectations(t)
}

func TestPublisher_Broadcast_SwallowsErrors(t *testing.T) {
	ch := new(MockChannel)
	ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return(nil)
	ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything).Return(amqp.ErrClosed)

	p, err := rabbitmq.NewPublisher(ch, "events", logger())
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		p.Broadcast(notification.Admin, notification.NewEvent(notification.NewOrder))
	})
	ch.AssertNumberOfCalls(t, "PublishWithContext", 1)
}
