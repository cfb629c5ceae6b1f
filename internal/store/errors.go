package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user matches the lookup key or an
	// update targets a user that does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrAPIKeyAlreadyExists is returned when a generated API key collides
	// with a key stored for another user.
	ErrAPIKeyAlreadyExists = errors.New("api key already exists")

	// ErrStorageUnavailable wraps transient driver errors (connection loss,
	// serialization failure, locked database) that may succeed on retry.
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrUnsupportedDriver is returned by [NewStorages] for an unknown driver.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")

	// ErrNilDB is returned when a nil connection is handed to the store.
	ErrNilDB = errors.New("db is nil")
)
