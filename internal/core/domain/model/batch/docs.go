// Package batch provides the Batch aggregate: a delivery run grouping several
// orders, optionally handed to one rider.
//
// Key business rules:
//   - A batch is created with at least one order; duplicate order ids collapse
//   - Status moves pending → in_progress → completed, or to cancelled while open
//   - A batch's rider decides which rider-scoped subscribers see its events
package batch
