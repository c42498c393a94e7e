// Package rider provides the Rider aggregate: identity, contact details,
// availability status and last known location of a delivery agent.
//
// Any status may follow any other; keeping riders with open batches out of
// the available pool is the job of the availability reconciliation, not of
// the aggregate.
package rider
