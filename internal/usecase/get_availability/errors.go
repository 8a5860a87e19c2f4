package get_availability

import "errors"

var (
	// ErrInternal is returned on storage or internal failures.
	ErrInternal = errors.New("usecase: internal error")
)
