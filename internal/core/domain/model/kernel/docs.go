// Package kernel provides the value objects shared by every aggregate of the
// dispatch domain.
//
// The package includes:
//   - ID: an opaque identifier for orders, riders and batches
//   - Location: a validated latitude/longitude pair
//
// Both are immutable and their zero values fail validation, so an aggregate
// can always tell a missing value from a constructed one.
package kernel
