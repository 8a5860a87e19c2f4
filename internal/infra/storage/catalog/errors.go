package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when no catalog service exists for the id.
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrCleanerNotFound is returned when no cleaner exists for the id.
	ErrCleanerNotFound = errors.New("catalog.repository: cleaner not found")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails.
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
