package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/kailas-cloud/kwfilter/internal/domain"
	"github.com/kailas-cloud/kwfilter/internal/domain/batch"
	"github.com/kailas-cloud/kwfilter/internal/domain/search/result"
)

// maxIDLength bounds result IDs used as storage keys.
const maxIDLength = 256

// MaxBatchSize is the default maximum number of results per batch.
const MaxBatchSize = 100

// Service manages the stored candidate results.
type Service struct {
	repo         Repository
	maxBatchSize int
}

// New creates a catalog service.
func New(repo Repository) *Service {
	return &Service{repo: repo, maxBatchSize: MaxBatchSize}
}

// WithMaxBatchSize configures the maximum batch size.
func (s *Service) WithMaxBatchSize(size int) *Service {
	if size > 0 {
		s.maxBatchSize = size
	}
	return s
}

// Put validates and stores a result. Returns true if it was created.
func (s *Service) Put(ctx context.Context, r *result.Result) (bool, error) {
	if err := validate(r); err != nil {
		return false, err
	}
	created, err := s.repo.Save(ctx, r)
	if err != nil {
		return false, fmt.Errorf("save result: %w", err)
	}
	return created, nil
}

// PutBatch validates and stores results, reporting an outcome per item.
// Invalid items are skipped; valid ones are written together.
func (s *Service) PutBatch(ctx context.Context, items []result.Result) []batch.Result {
	out := make([]batch.Result, len(items))

	if len(items) > s.maxBatchSize {
		for i := range items {
			out[i] = batch.NewError(items[i].ID(),
				fmt.Errorf("%w: batch size exceeds %d", domain.ErrInvalidResult, s.maxBatchSize))
		}
		return out
	}

	valid := make([]result.Result, 0, len(items))
	validIdx := make([]int, 0, len(items))
	seen := make(map[string]int, len(items))
	for i := range items {
		if err := validate(&items[i]); err != nil {
			out[i] = batch.NewError(items[i].ID(), err)
			continue
		}
		if j, dup := seen[items[i].ID()]; dup {
			out[i] = batch.NewError(items[i].ID(),
				fmt.Errorf("%w: duplicate id, first at index %d", domain.ErrInvalidResult, j))
			continue
		}
		seen[items[i].ID()] = i
		valid = append(valid, items[i])
		validIdx = append(validIdx, i)
	}
	if len(valid) == 0 {
		return out
	}

	created, err := s.repo.SaveBatch(ctx, valid)
	if err != nil {
		for _, i := range validIdx {
			out[i] = batch.NewError(items[i].ID(), fmt.Errorf("save batch: %w", err))
		}
		return out
	}
	for k, i := range validIdx {
		out[i] = batch.NewStored(items[i].ID(), created[k])
	}
	return out
}

// Get returns a stored result.
func (s *Service) Get(ctx context.Context, id string) (result.Result, error) {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return result.Result{}, fmt.Errorf("get result: %w", err)
	}
	return r, nil
}

// Delete removes a stored result.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete result: %w", err)
	}
	return nil
}

func validate(r *result.Result) error {
	switch {
	case r.ID() == "":
		return fmt.Errorf("%w: id is required", domain.ErrInvalidResult)
	case len(r.ID()) > maxIDLength:
		return fmt.Errorf("%w: id exceeds %d bytes", domain.ErrInvalidResult, maxIDLength)
	case strings.ContainsAny(r.ID(), "*?[]"):
		return fmt.Errorf("%w: id must not contain glob characters", domain.ErrInvalidResult)
	case strings.TrimSpace(r.DisplayName()) == "":
		return fmt.Errorf("%w: display name is required", domain.ErrInvalidResult)
	}
	return nil
}
