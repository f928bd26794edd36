package listing

import "errors"

// Domain errors
var (
	ErrSessionNotFound  = errors.New("listing: session not found")
	ErrUnknownEntity    = errors.New("listing: unknown entity")
	ErrInvalidFilter    = errors.New("listing: invalid filter")
	ErrInvalidPage      = errors.New("listing: invalid page")
	ErrUnexpectedFormat = errors.New("listing: unexpected response format")
)
