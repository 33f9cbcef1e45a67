package store

import "errors"

// Sentinel errors returned by repository and file storage methods to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrArtifactNotFound is returned when no artifact record exists for the
	// requested team.
	ErrArtifactNotFound = errors.New("artifact was not found")

	// ErrArchiveNotFound is returned when an artifact record exists but its
	// zip archive is missing from disk.
	ErrArchiveNotFound = errors.New("artifact archive was not found")

	// ErrUnsupportedDSN is returned when the configured DSN selects neither
	// PostgreSQL nor SQLite.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan artifact row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan artifact rows")
)
