package kwfilter

import (
	"context"

	dombatch "github.com/kailas-cloud/kwfilter/internal/domain/batch"
	"github.com/kailas-cloud/kwfilter/internal/domain/search/keyword"
	"github.com/kailas-cloud/kwfilter/internal/domain/search/result"
	filteruc "github.com/kailas-cloud/kwfilter/internal/usecase/filter"
	healthuc "github.com/kailas-cloud/kwfilter/internal/usecase/health"
)

// --- filterUseCase mock ---

type mockFilterUC struct {
	searchFn func(ctx context.Context, raw string, limit int) (filteruc.Query, filteruc.Outcome, error)
	applied  [][]keyword.Filter
}

func (m *mockFilterUC) Parse(raw string) filteruc.Query {
	filters := keyword.Parse(raw)
	return filteruc.Query{Raw: raw, Terms: keyword.Clean(raw, filters), Filters: filters}
}

func (m *mockFilterUC) Apply(
	_ context.Context, filters []keyword.Filter, candidates []result.Result,
) filteruc.Outcome {
	m.applied = append(m.applied, filters)
	out := filteruc.Outcome{}
	for _, c := range candidates {
		if keyword.Evaluate(keyword.Haystack(context.Background(), &c), filters) {
			out.Accepted = append(out.Accepted, c)
		} else {
			out.Rejected++
		}
	}
	return out
}

func (m *mockFilterUC) Search(ctx context.Context, raw string, limit int) (filteruc.Query, filteruc.Outcome, error) {
	return m.searchFn(ctx, raw, limit)
}

func (m *mockFilterUC) Toggle(f keyword.Filter) keyword.Filter { return f.Toggled() }

// --- catalogUseCase mock ---

type mockCatalogUC struct {
	putFn      func(ctx context.Context, r *result.Result) (bool, error)
	putBatchFn func(ctx context.Context, items []result.Result) []dombatch.Result
	getFn      func(ctx context.Context, id string) (result.Result, error)
	deleteFn   func(ctx context.Context, id string) error
}

func (m *mockCatalogUC) Put(ctx context.Context, r *result.Result) (bool, error) {
	return m.putFn(ctx, r)
}

func (m *mockCatalogUC) PutBatch(ctx context.Context, items []result.Result) []dombatch.Result {
	return m.putBatchFn(ctx, items)
}

func (m *mockCatalogUC) Get(ctx context.Context, id string) (result.Result, error) {
	return m.getFn(ctx, id)
}

func (m *mockCatalogUC) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(context.Context) healthuc.Report { return m.report }
