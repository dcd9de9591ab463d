package kwfilter

import "github.com/kailas-cloud/kwfilter/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound      = domain.ErrNotFound
	ErrInvalidResult = domain.ErrInvalidResult
	ErrInvalidFilter = domain.ErrInvalidFilter
)
