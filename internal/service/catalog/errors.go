package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when the catalog service does not exist.
	ErrServiceNotFound = errors.New("service not found")

	// ErrCleanerNotFound is returned when the cleaner does not exist.
	ErrCleanerNotFound = errors.New("cleaner not found")

	// ErrInvalidInput is returned on malformed create/update fields.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on storage or internal failures.
	ErrInternal = errors.New("service: internal error")
)
