package notification

import (
	"encoding/json"
	"maps"
)

// EventType names a realtime event.
type EventType string

const (
	NewOrder           EventType = "new_order"
	OrderUpdated       EventType = "order_updated"
	OrderAssigned      EventType = "order_assigned"
	BatchCreated       EventType = "batch_created"
	BatchUpdated       EventType = "batch_updated"
	BatchDeleted       EventType = "batch_deleted"
	RiderStatusUpdated EventType = "rider_status_updated"
)

// Event is one message pushed to subscribers. On the wire the payload keys
// sit next to "type": {"type":"order_assigned","order":{...},"riderId":"R1"}.
type Event struct {
	Type    EventType
	Payload map[string]any
}

// NewEvent builds an event from alternating key/value pairs.
// A trailing key without value is dropped.
func NewEvent(t EventType, kv ...any) Event {
	payload := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		payload[key] = kv[i+1]
	}
	return Event{Type: t, Payload: payload}
}

// MarshalJSON flattens the payload into the envelope. A "type" key in the
// payload never overrides the event type.
func (e Event) MarshalJSON() ([]byte, error) {
	envelope := make(map[string]any, len(e.Payload)+1)
	maps.Copy(envelope, e.Payload)
	envelope["type"] = e.Type
	return json.Marshal(envelope)
}
