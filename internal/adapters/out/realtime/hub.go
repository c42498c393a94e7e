package realtime

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"dispatch/internal/core/domain/model/notification"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// Config tunes connection handling. Zero fields take the defaults of DefaultConfig.
type Config struct {
	SendQueue      int
	WriteWait      time.Duration
	PongWait       time.Duration
	PingPeriod     time.Duration
	MaxMessageSize int64
}

func DefaultConfig() Config {
	return Config{
		SendQueue:      64,
		WriteWait:      10 * time.Second,
		PongWait:       60 * time.Second,
		PingPeriod:     54 * time.Second,
		MaxMessageSize: 4096,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.SendQueue <= 0 {
		c.SendQueue = d.SendQueue
	}
	if c.WriteWait <= 0 {
		c.WriteWait = d.WriteWait
	}
	if c.PongWait <= 0 {
		c.PongWait = d.PongWait
	}
	if c.PingPeriod <= 0 || c.PingPeriod >= c.PongWait {
		c.PingPeriod = c.PongWait * 9 / 10
	}
	if c.MaxMessageSize <= 0 {
		c.MaxMessageSize = d.MaxMessageSize
	}
	return c
}

// Hub fans events out to the connections of each role.
// It implements ports.Broadcaster.
type Hub struct {
	cfg      Config
	channels map[notification.Role]*Channel
	upgrader websocket.Upgrader
	logger   *slog.Logger

	mu      sync.Mutex
	clients map[*Client]struct{}
	closed  bool
	wg      sync.WaitGroup
}

func NewHub(cfg Config, logger *slog.Logger) *Hub {
	channels := make(map[notification.Role]*Channel, len(notification.Roles()))
	for _, role := range notification.Roles() {
		channels[role] = NewChannel(role)
	}

	return &Hub{
		cfg:      cfg.withDefaults(),
		channels: channels,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Authentication happens in front of the service.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger:  logger.With("component", "notification_hub"),
		clients: make(map[*Client]struct{}),
	}
}

// Broadcast sends event to every connection subscribed to role.
// Failures are logged and never reported to the caller.
func (h *Hub) Broadcast(role notification.Role, event notification.Event) {
	ch, ok := h.channels[role]
	if !ok {
		h.logger.Warn("broadcast to unknown role", "role", role, "type", event.Type)
		return
	}

	msg, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to encode event", "type", event.Type, "error", err)
		return
	}

	n := ch.Publish(msg)
	h.logger.Debug("event broadcast", "role", role, "type", event.Type, "receivers", n)
}

// Subscribers returns the number of connections subscribed to role.
func (h *Hub) Subscribers(role notification.Role) int {
	ch, ok := h.channels[role]
	if !ok {
		return 0
	}
	return ch.Len()
}

// ServeWS upgrades the request and serves the connection until it closes.
// Once Close has started, new connections are refused with 503.
func (h *Hub) ServeWS(c echo.Context) error {
	if h.isClosed() {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "notification hub is shutting down")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already answered the request.
		h.logger.Debug("websocket upgrade failed", "error", err)
		return nil
	}

	client := newClient(conn, h.cfg.SendQueue, h.logger.With("remote", conn.RemoteAddr().String()))
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		client.Close()
		return nil
	}
	h.clients[client] = struct{}{}
	// Added under mu so Close never waits while a registration is in flight.
	h.wg.Add(2)
	h.mu.Unlock()

	go func() {
		defer h.wg.Done()
		client.writePump(h)
	}()
	go func() {
		defer h.wg.Done()
		client.readPump(h)
	}()
	return nil
}

func (h *Hub) disconnect(c *Client) {
	for _, ch := range h.channels {
		ch.Unsubscribe(c)
	}
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	c.Close()
}

func (h *Hub) isClosed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}

// Close refuses new connections, disconnects every client and waits for
// their goroutines.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		c.Close()
	}
	h.wg.Wait()
}
