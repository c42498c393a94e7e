// Package services provides domain services that coordinate several aggregates
// of the dispatch domain.
//
// The package includes:
//   - OrderDispatcher: hands an order to a rider by placing it into one of the
//     rider's batches
//
// Domain services hold no state; the application layer loads the aggregates,
// calls the service and persists whatever it changed.
package services
