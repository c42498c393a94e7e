// Package rabbitmq mirrors hub events to a RabbitMQ fanout exchange so other
// services can follow the dispatch feed without holding a WebSocket.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"dispatch/internal/core/domain/model/notification"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultExchange is used when no exchange name is configured.
const DefaultExchange = "dispatch_events_fanout"

// Channel is the part of *amqp.Channel the publisher needs.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher implements ports.Broadcaster on top of a fanout exchange.
// Each event is published once per role it is broadcast to; the role travels
// in the "role" header and the event type in the message type.
type Publisher struct {
	exchange string
	timeout  time.Duration
	logger   *slog.Logger

	mu sync.Mutex
	ch Channel
}

// NewPublisher declares the durable fanout exchange and returns a publisher on it.
func NewPublisher(ch Channel, exchange string, logger *slog.Logger) (*Publisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &Publisher{
		exchange: exchange,
		timeout:  5 * time.Second,
		logger:   logger.With("component", "event_mirror"),
		ch:       ch,
	}, nil
}

// Broadcast publishes event. Failures are logged, never returned.
func (p *Publisher) Broadcast(role notification.Role, event notification.Event) {
	if err := p.Publish(context.Background(), role, event); err != nil {
		p.logger.Warn("failed to mirror event", "role", role, "type", event.Type, "error", err)
	}
}

// Publish sends one event and reports the outcome.
func (p *Publisher) Publish(ctx context.Context, role notification.Role, event notification.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Type:        string(event.Type),
		Timestamp:   time.Now().UTC(),
		Headers:     amqp.Table{"role": role.String()},
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// Close closes the underlying channel.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.Close()
}
