package sitesettings

import "errors"

var (
	// ErrInternal is returned on storage or internal failures.
	ErrInternal = errors.New("service: internal error")
)
