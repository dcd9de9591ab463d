package kwfilter

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/kwfilter/internal/domain/search/keyword"
)

// FilterService parses queries and runs filter pipelines.
type FilterService struct {
	svc filterUseCase
	obs *observer
}

// Parse extracts the filters embedded in query and the remaining terms.
func (s *FilterService) Parse(query string) Query {
	return fromInternalQuery(s.svc.Parse(query))
}

// Clean removes the forms of filters from query and trims the rest.
func (s *FilterService) Clean(query string, filters []Filter) (string, error) {
	ff, err := toInternalFilters(filters)
	if err != nil {
		return "", fmt.Errorf("clean: %w", err)
	}
	return keyword.Clean(query, ff), nil
}

// Toggle flips the polarity of a filter.
func (s *FilterService) Toggle(f Filter) (Filter, error) {
	kf, err := toInternalFilter(f)
	if err != nil {
		return Filter{}, fmt.Errorf("toggle: %w", err)
	}
	return fromInternalFilter(s.svc.Toggle(kf)), nil
}

// Apply evaluates filters against candidates, keeping input order.
func (s *FilterService) Apply(ctx context.Context, filters []Filter, candidates []Result) (out Outcome, err error) {
	start := time.Now()
	defer func() { s.obs.observe("apply", start, err) }()

	ff, err := toInternalFilters(filters)
	if err != nil {
		return Outcome{}, fmt.Errorf("apply: %w", err)
	}
	return fromInternalOutcome(s.svc.Apply(ctx, ff, toInternalResults(candidates))), nil
}

// Search runs the filters in query over the stored results and returns at
// most limit accepted results (0 selects the default).
func (s *FilterService) Search(ctx context.Context, query string, limit int) (q Query, out Outcome, err error) {
	start := time.Now()
	defer func() { s.obs.observe("search", start, err) }()

	iq, iout, err := s.svc.Search(ctx, query, limit)
	if err != nil {
		return Query{}, Outcome{}, fmt.Errorf("search: %w", err)
	}
	return fromInternalQuery(iq), fromInternalOutcome(iout), nil
}
