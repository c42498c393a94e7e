package realtime

import (
	"sync"

	"dispatch/internal/core/domain/model/notification"
)

// Channel is the set of connections subscribed to one role.
type Channel struct {
	role notification.Role

	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewChannel(role notification.Role) *Channel {
	return &Channel{
		role:    role,
		clients: make(map[*Client]struct{}),
	}
}

func (ch *Channel) Role() notification.Role {
	return ch.role
}

// Subscribe adds c. Returns false when c was already subscribed.
func (ch *Channel) Subscribe(c *Client) bool {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if _, ok := ch.clients[c]; ok {
		return false
	}
	ch.clients[c] = struct{}{}
	return true
}

func (ch *Channel) Unsubscribe(c *Client) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	delete(ch.clients, c)
}

// Publish queues msg on every subscriber and returns how many accepted it.
// The subscriber list is copied first so no lock is held while queueing.
func (ch *Channel) Publish(msg []byte) int {
	ch.mu.RLock()
	clients := make([]*Client, 0, len(ch.clients))
	for c := range ch.clients {
		clients = append(clients, c)
	}
	ch.mu.RUnlock()

	delivered := 0
	for _, c := range clients {
		if c.Enqueue(msg) {
			delivered++
		}
	}
	return delivered
}

// Len returns the number of subscribers.
func (ch *Channel) Len() int {
	ch.mu.RLock()
	defer ch.mu.RUnlock()
	return len(ch.clients)
}
