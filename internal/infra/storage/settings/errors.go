package settings

import "errors"

var (
	// ErrSettingsNotFound is returned when no settings row has been saved yet.
	ErrSettingsNotFound = errors.New("settings.repository: settings not found")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails.
	ErrScanRow = errors.New("settings.repository: failed to scan row")
)
