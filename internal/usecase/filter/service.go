package filter

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/kwfilter/internal/domain/search/keyword"
	"github.com/kailas-cloud/kwfilter/internal/domain/search/result"
	"github.com/kailas-cloud/kwfilter/internal/logger"
	"github.com/kailas-cloud/kwfilter/internal/metrics"
)

// Query is a free-text query split into its filters and remaining terms.
type Query struct {
	Raw     string
	Terms   string
	Filters []keyword.Filter
}

// FilterCount is the number of candidates a single filter accepted.
type FilterCount struct {
	Filter keyword.Filter
	Count  int
}

// Outcome is the result of running a pipeline over a batch of candidates.
type Outcome struct {
	Accepted []result.Result
	Rejected int
	Counts   []FilterCount
}

// Service applies keyword filter pipelines to search results.
type Service struct {
	catalog      Catalog
	annotator    Annotator
	defaultLimit int
	maxLimit     int
}

// New creates a filter service. annotator can be nil.
func New(catalog Catalog, annotator Annotator) *Service {
	return &Service{catalog: catalog, annotator: annotator, defaultLimit: 20, maxLimit: 100}
}

// WithLimits sets the default and maximum number of results Search returns.
func (s *Service) WithLimits(defaultLimit, maxLimit int) *Service {
	if defaultLimit > 0 {
		s.defaultLimit = defaultLimit
	}
	if maxLimit > 0 {
		s.maxLimit = maxLimit
	}
	return s
}

// Parse extracts filters from raw and strips them from the query text.
func (s *Service) Parse(raw string) Query {
	filters := keyword.Parse(raw)
	terms := keyword.Clean(raw, filters)
	if s.annotator != nil {
		filters = s.annotator.Annotate(filters)
	}
	metrics.ParsedFiltersTotal.Add(float64(len(filters)))
	return Query{Raw: raw, Terms: terms, Filters: filters}
}

// Apply evaluates filters against each candidate, keeping input order.
func (s *Service) Apply(ctx context.Context, filters []keyword.Filter, candidates []result.Result) Outcome {
	out := Outcome{
		Accepted: make([]result.Result, 0, len(candidates)),
		Counts:   make([]FilterCount, len(filters)),
	}
	for i, f := range filters {
		out.Counts[i].Filter = f
	}

	for i := range candidates {
		c := &candidates[i]
		if len(filters) == 0 {
			out.Accepted = append(out.Accepted, *c)
			metrics.FilterEvaluationsTotal.WithLabelValues(metrics.OutcomeAccepted).Inc()
			continue
		}

		haystack := keyword.Haystack(ctx, c)
		for j, f := range filters {
			if f.Accept(haystack) {
				out.Counts[j].Count++
			}
		}
		if keyword.Evaluate(haystack, filters) {
			out.Accepted = append(out.Accepted, *c)
			metrics.FilterEvaluationsTotal.WithLabelValues(metrics.OutcomeAccepted).Inc()
		} else {
			out.Rejected++
			metrics.FilterEvaluationsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		}
	}

	logger.FromContext(ctx).Debug("filter pipeline applied",
		zap.Int("filters", len(filters)),
		zap.Int("candidates", len(candidates)),
		zap.Int("accepted", len(out.Accepted)),
	)
	return out
}

// Search parses raw, runs the pipeline over the catalog and truncates the
// accepted results to limit (0 selects the default limit).
func (s *Service) Search(ctx context.Context, raw string, limit int) (Query, Outcome, error) {
	q := s.Parse(raw)
	ctx = logger.WithFields(ctx, zap.String("terms", q.Terms))

	candidates, err := s.catalog.List(ctx)
	if err != nil {
		return Query{}, Outcome{}, fmt.Errorf("list catalog: %w", err)
	}

	out := s.Apply(ctx, q.Filters, candidates)
	if n := s.clampLimit(limit); len(out.Accepted) > n {
		out.Accepted = out.Accepted[:n]
	}
	return q, out, nil
}

func (s *Service) clampLimit(limit int) int {
	if limit <= 0 {
		return s.defaultLimit
	}
	if limit > s.maxLimit {
		return s.maxLimit
	}
	return limit
}

// Toggle flips the polarity of f.
func (s *Service) Toggle(f keyword.Filter) keyword.Filter {
	return f.Toggled()
}
