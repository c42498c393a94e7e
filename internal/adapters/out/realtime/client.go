package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"dispatch/internal/core/domain/model/notification"

	"github.com/gorilla/websocket"
)

// Client is one live connection.
type Client struct {
	conn   *websocket.Conn
	logger *slog.Logger

	mu      sync.Mutex
	send    chan []byte
	dropped int
	closed  bool

	done      chan struct{}
	closeOnce sync.Once
}

func newClient(conn *websocket.Conn, queue int, logger *slog.Logger) *Client {
	if queue < 1 {
		queue = 1
	}
	return &Client{
		conn:   conn,
		logger: logger,
		send:   make(chan []byte, queue),
		done:   make(chan struct{}),
	}
}

// Enqueue queues msg for the writer, dropping the oldest queued message when
// the queue is full. Returns false once the client is closed.
func (c *Client) Enqueue(msg []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}

	select {
	case c.send <- msg:
		return true
	default:
	}

	select {
	case <-c.send:
		c.dropped++
	default:
	}

	select {
	case c.send <- msg:
		return true
	default:
		c.dropped++
		return false
	}
}

// Dropped returns how many messages were discarded for a full queue.
func (c *Client) Dropped() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dropped
}

// Close stops the writer and closes the connection. Safe to call repeatedly.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()
		close(c.done)
		if c.conn != nil {
			_ = c.conn.Close()
		}
	})
}

// Done is closed when the client is closed.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

type inbound struct {
	Type string `json:"type"`
	Role string `json:"role"`
}

// readPump handles subscribe requests until the peer goes away.
func (c *Client) readPump(h *Hub) {
	defer h.disconnect(c)

	c.conn.SetReadLimit(h.cfg.MaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(h.cfg.PongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("websocket read failed", "error", err)
			}
			return
		}

		var msg inbound
		if err = json.Unmarshal(data, &msg); err != nil {
			continue
		}
		if msg.Type != "subscribe" {
			continue
		}
		role, err := notification.ParseRole(msg.Role)
		if err != nil {
			continue
		}
		if h.channels[role].Subscribe(c) {
			c.logger.Debug("client subscribed", "role", role)
		}
	}
}

// writePump drains the send queue and keeps the peer alive with pings.
func (c *Client) writePump(h *Hub) {
	ticker := time.NewTicker(h.cfg.PingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case <-c.done:
			return
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				c.logger.Debug("websocket write failed", "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
