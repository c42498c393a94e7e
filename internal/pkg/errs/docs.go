// Package errs provides the typed errors shared by the dispatch core.
//
// Every error type wraps one sentinel so callers can classify failures with
// errors.Is without knowing the concrete type:
//   - ErrObjectNotFound: an entity id does not resolve
//   - ErrObjectAlreadyExists: an explicit id is already registered
//   - ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange: malformed input
//
// The HTTP adapter maps these to 404, 409 and 400 respectively; anything else
// is reported as an internal error.
package errs
