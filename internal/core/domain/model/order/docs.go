// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: identity, items with recorded prices, computed total, status and rider link
//   - Item: one order line (menu reference, quantity, unit price)
//   - Status: the ladder pending → confirmed → preparing → ready → assigned →
//     out_for_delivery → delivered, with cancellation from any non-terminal state
//   - Snapshot: the flat form used for storage, responses and events
//
// Key business rules:
//   - An order needs a customer and at least one item
//   - Status never moves backwards; delivered and cancelled are terminal
//   - Re-applying the current status is a no-op, not an error
//   - Assignment moves the status forward to assigned and records the rider
package order
