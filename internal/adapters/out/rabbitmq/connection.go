package rabbitmq

import (
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Connection owns the broker connection and the channel handed to the publisher.
type Connection struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// Connect dials url and opens one channel.
func Connect(url string) (*Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	return &Connection{conn: conn, ch: ch}, nil
}

func (c *Connection) Channel() Channel {
	return c.ch
}

// Close closes the channel and then the connection.
func (c *Connection) Close() error {
	var chErr error
	if !c.ch.IsClosed() {
		chErr = c.ch.Close()
	}
	var connErr error
	if !c.conn.IsClosed() {
		connErr = c.conn.Close()
	}
	return errors.Join(chErr, connErr)
}
