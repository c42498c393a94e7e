package realtime

import (
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/ports"
)

// Fanout hands every broadcast to each of its broadcasters in order, e.g. the
// hub followed by the broker mirror.
type Fanout []ports.Broadcaster

func (f Fanout) Broadcast(role notification.Role, event notification.Event) {
	for _, b := range f {
		b.Broadcast(role, event)
	}
}
