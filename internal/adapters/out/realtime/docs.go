// Package realtime implements the notification hub: role-scoped sets of live
// WebSocket connections that receive every event broadcast to their role.
//
// # Protocol
//
// A client connects to the upgrade endpoint and joins roles by sending
//
//	{"type":"subscribe","role":"admin"}
//
// Unknown roles and unknown message types are ignored. A connection may join
// several roles and leaves all of them when it disconnects. Events arrive as
// flat JSON objects:
//
//	{"type":"order_assigned","order":{...},"riderId":"R1"}
//
// # Delivery
//
// Broadcast serializes an event once and hands the bytes to every subscriber
// of the role. Each connection owns a bounded send queue drained by its own
// writer goroutine; when the queue is full the oldest message is dropped, so
// a slow peer never holds up the others. Delivery is best effort: closed
// connections are skipped and write errors only close that connection.
package realtime
