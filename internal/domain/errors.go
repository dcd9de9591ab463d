package domain

import "errors"

var (
	// ErrNotFound signals a missing search result.
	ErrNotFound = errors.New("not found")
	// ErrInvalidResult signals a search result that cannot be stored.
	ErrInvalidResult = errors.New("invalid result")
	// ErrInvalidFilter signals a malformed filter in a request.
	ErrInvalidFilter = errors.New("invalid filter")
)
