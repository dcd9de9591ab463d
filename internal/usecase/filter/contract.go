package filter

import (
	"context"

	"github.com/kailas-cloud/kwfilter/internal/domain/search/keyword"
	"github.com/kailas-cloud/kwfilter/internal/domain/search/result"
)

// Catalog lists the candidate results a search runs against.
type Catalog interface {
	List(ctx context.Context) ([]result.Result, error)
}

// Annotator assigns features to parsed filters.
type Annotator interface {
	Annotate(filters []keyword.Filter) []keyword.Filter
}
