package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an operator with the same login
	// already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrAdminNotFound is returned when no operator matches the lookup.
	ErrAdminNotFound = errors.New("admin was not found")

	// ErrAuditEntryNotSaved is returned when an INSERT into the audit log
	// affects no rows.
	ErrAuditEntryNotSaved = errors.New("audit entry was not saved")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning rows of a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
