package domain

import "errors"

// Sentinel errors for cross-transport error classification.
// Backends should wrap these so the CLI can handle error categories
// uniformly without knowing which transport produced them.
//
//	return fmt.Errorf("failed to delete forward: %w", domain.ErrNotFound)
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates the request was rejected due to
	// invalid, expired, or missing credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates the provider throttled the request.
	ErrRateLimited = errors.New("rate limited")

	// ErrConflict indicates a state or uniqueness conflict, such as
	// an already existing forward or mailbox.
	ErrConflict = errors.New("conflict")

	// ErrResourceUnavailable indicates the provider reported a domain as
	// not available for registration.
	ErrResourceUnavailable = errors.New("resource unavailable")

	// ErrUnknownIdentifier indicates an identifier could not be resolved
	// to a usable numeric id.
	ErrUnknownIdentifier = errors.New("unknown identifier")

	// ErrUnsupported indicates the active transport has no equivalent for
	// the requested operation.
	ErrUnsupported = errors.New("operation not supported by transport")

	// ErrOperationFailed indicates an asynchronous operation ended in the
	// ERROR or CANCEL step.
	ErrOperationFailed = errors.New("operation failed")
)
