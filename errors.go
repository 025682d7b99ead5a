package agenda

import "errors"

// Every failure in the system maps to one of these sentinels, wrapped with
// context. All three are recoverable at the call site.
var (
	// ErrStorageUnavailable reports that the underlying medium is
	// inaccessible, full or corrupt. The failing operation left prior
	// state unchanged. Not automatically retried: the root cause is
	// usually not transient.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrMalformedSnapshot reports a backup document that cannot be
	// parsed or declares a format version newer than this build
	// understands. The store is left untouched.
	ErrMalformedSnapshot = errors.New("malformed snapshot")

	// ErrInvalidRecord reports a record violating a data-model invariant.
	// It is rejected before any write is attempted.
	ErrInvalidRecord = errors.New("invalid record")
)
