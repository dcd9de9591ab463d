package kwfilter

import (
	"context"
	"fmt"
	"time"
)

// ResultService manages the stored candidate results.
type ResultService struct {
	svc catalogUseCase
	obs *observer
}

// Put creates or replaces a result. Returns true if created.
func (s *ResultService) Put(ctx context.Context, r Result) (created bool, err error) {
	start := time.Now()
	defer func() { s.obs.observe("put", start, err) }()

	ir := toInternalResult(r)
	created, err = s.svc.Put(ctx, &ir)
	if err != nil {
		return false, fmt.Errorf("put: %w", err)
	}
	return created, nil
}

// PutBatch stores many results, reporting an outcome per item.
func (s *ResultService) PutBatch(ctx context.Context, rs []Result) []BatchItem {
	start := time.Now()
	items := fromInternalBatch(s.svc.PutBatch(ctx, toInternalResults(rs)))

	var firstErr error
	for _, it := range items {
		if it.Err != nil {
			firstErr = it.Err
			break
		}
	}
	s.obs.observe("put_batch", start, firstErr)
	return items
}

// Get retrieves a result by ID.
func (s *ResultService) Get(ctx context.Context, id string) (Result, error) {
	r, err := s.svc.Get(ctx, id)
	if err != nil {
		return Result{}, fmt.Errorf("get result: %w", err)
	}
	return fromInternalResult(&r), nil
}

// Delete removes a result by ID.
func (s *ResultService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("delete", start, err) }()

	if err = s.svc.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete result: %w", err)
	}
	return nil
}
