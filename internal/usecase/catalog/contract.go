package catalog

import (
	"context"

	"github.com/kailas-cloud/kwfilter/internal/domain/search/result"
)

// Repository defines the storage contract for candidate results.
type Repository interface {
	Save(ctx context.Context, r *result.Result) (bool, error)
	SaveBatch(ctx context.Context, results []result.Result) ([]bool, error)
	Get(ctx context.Context, id string) (result.Result, error)
	Delete(ctx context.Context, id string) error
}
