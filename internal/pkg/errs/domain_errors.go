package errs

import "errors"

// Sentinel categories attached with Mark and matched with errors.Is in handlers
var (
	// Local rule violations that never reach the backend
	ErrValidation = errors.New("validation error")

	// Backend or network failures
	ErrTransport = errors.New("backend request failed")

	// Access control
	ErrUnauthenticated = errors.New("authentication required")
	ErrAuthorization   = errors.New("not allowed")

	// Lifecycle actions sent without explicit confirmation
	ErrConfirmationRequired = errors.New("confirmation required")

	// Lookups
	ErrNotFound = errors.New("not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrSessionStoreFailed      = errors.New("session store operation failed")
)
