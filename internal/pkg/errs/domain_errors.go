package errs

import "errors"

// Error categories shared by every use case. Use cases mark their errors with one of
// these (see Categorize) so the HTTP layer can pick a status without knowing every
// package's error list.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Store errors are never shown verbatim to the caller.
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
