// Package notification defines what the realtime channel carries: the
// audience roles and the typed events broadcast to them.
package notification
