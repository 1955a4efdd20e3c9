package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUnsupportedEntity is returned when an ownership or timestamp probe
	// is asked about an entity type it does not track.
	ErrUnsupportedEntity = errors.New("unsupported entity type")

	// ErrDocumentConflict is returned when a document store gives up after
	// repeated concurrent modifications of the same namespace.
	ErrDocumentConflict = errors.New("remote document modified concurrently")

	// ErrUnknownDriver is returned for an unknown remote document driver.
	ErrUnknownDriver = errors.New("unknown remote document driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrObjectStorage is returned when an object storage call fails.
	ErrObjectStorage = errors.New("object storage error")
)
