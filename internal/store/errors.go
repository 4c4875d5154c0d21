package store

import "errors"

// Low-level database operation errors. These are returned (or wrapped) by
// map methods when a SQL-level operation fails. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning the value of a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan record row")

	// ErrScanningRows is returned when scanning during multi-row iteration
	// fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan record rows")
)

// Record encoding errors.
var (
	// ErrEncodingRecord is returned when a record cannot be serialized
	// before it is written.
	ErrEncodingRecord = errors.New("failed to encode record")

	// ErrDecodingRecord is returned when a stored value cannot be
	// deserialized into its record type.
	ErrDecodingRecord = errors.New("failed to decode record")
)

// ErrUnknownTable is returned when a SQL map is requested for a table the
// migrations do not create.
var ErrUnknownTable = errors.New("unknown table")
