package service

import (
	"errors"
	"fmt"
)

// --- Error Definitions ---
var (
	// ErrMalformedRequest: client input failed a shape, type or required-field check.
	ErrMalformedRequest = errors.New("malformed request")
	// ErrUserNotFound: the referenced user id does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrStoreUnavailable: a persistence operation failed. Never retried.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrExportDisabled: log export was requested but no object storage is configured.
	ErrExportDisabled = errors.New("log export is not configured")
)

// storeUnavailable wraps a persistence failure so callers can match
// ErrStoreUnavailable while the cause stays available for logging.
func storeUnavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
}

// malformed wraps ErrMalformedRequest with the offending field.
func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedRequest, fmt.Sprintf(format, args...))
}
