package kwfilter

import (
	"fmt"

	"github.com/kailas-cloud/kwfilter/internal/domain"
	dombatch "github.com/kailas-cloud/kwfilter/internal/domain/batch"
	"github.com/kailas-cloud/kwfilter/internal/domain/license"
	"github.com/kailas-cloud/kwfilter/internal/domain/search/keyword"
	"github.com/kailas-cloud/kwfilter/internal/domain/search/result"
	filteruc "github.com/kailas-cloud/kwfilter/internal/usecase/filter"
)

func toInternalFilter(f Filter) (keyword.Filter, error) {
	if f.Keyword == "" {
		return keyword.Filter{}, fmt.Errorf("%w: filter keyword is required", domain.ErrInvalidFilter)
	}
	if !keyword.ValidKeyword(f.Keyword) {
		return keyword.Filter{}, fmt.Errorf("%w: keyword %q must not contain whitespace or \"-\"",
			domain.ErrInvalidFilter, f.Keyword)
	}
	feature := keyword.Feature(f.Feature)
	if f.Form == "" {
		return keyword.New(f.Inclusive, f.Keyword, feature), nil
	}
	return keyword.NewWithForm(f.Inclusive, f.Keyword, f.Form).WithFeature(feature), nil
}

func toInternalFilters(ff []Filter) ([]keyword.Filter, error) {
	out := make([]keyword.Filter, len(ff))
	for i, f := range ff {
		kf, err := toInternalFilter(f)
		if err != nil {
			return nil, fmt.Errorf("filters[%d]: %w", i, err)
		}
		out[i] = kf
	}
	return out, nil
}

func fromInternalFilter(f keyword.Filter) Filter {
	return Filter{
		Inclusive: f.Inclusive(),
		Keyword:   f.Keyword(),
		Feature:   Feature(f.Feature()),
		Form:      f.String(),
	}
}

func fromInternalFilters(ff []keyword.Filter) []Filter {
	out := make([]Filter, len(ff))
	for i, f := range ff {
		out[i] = fromInternalFilter(f)
	}
	return out
}

func toInternalResult(r Result) result.Result {
	var opts []result.Option
	if r.Source != nil {
		opts = append(opts, result.WithSource(*r.Source))
	}
	if r.Filename != nil {
		opts = append(opts, result.WithFilename(*r.Filename))
	}
	opts = append(opts, result.WithLicense(license.Lookup(r.License)))
	return result.New(r.ID, r.DisplayName, r.DetailsURL, r.ThumbnailURL, opts...)
}

func toInternalResults(rs []Result) []result.Result {
	out := make([]result.Result, len(rs))
	for i, r := range rs {
		out[i] = toInternalResult(r)
	}
	return out
}

func fromInternalResult(r *result.Result) Result {
	out := Result{
		ID:           r.ID(),
		DisplayName:  r.DisplayName(),
		DetailsURL:   r.DetailsURL(),
		ThumbnailURL: r.ThumbnailURL(),
	}
	if src, ok := r.Source(); ok {
		out.Source = &src
	}
	if name, ok := r.Filename(); ok {
		out.Filename = &name
	}
	if l := r.License(); !l.IsUnknown() {
		out.License = l.ID()
	}
	return out
}

func fromInternalQuery(q filteruc.Query) Query {
	return Query{Raw: q.Raw, Terms: q.Terms, Filters: fromInternalFilters(q.Filters)}
}

func fromInternalOutcome(o filteruc.Outcome) Outcome {
	out := Outcome{
		Accepted: make([]Result, len(o.Accepted)),
		Rejected: o.Rejected,
		Counts:   make([]FilterCount, len(o.Counts)),
	}
	for i := range o.Accepted {
		out.Accepted[i] = fromInternalResult(&o.Accepted[i])
	}
	for i, c := range o.Counts {
		out.Counts[i] = FilterCount{Filter: fromInternalFilter(c.Filter), Count: c.Count}
	}
	return out
}

func fromInternalBatch(rs []dombatch.Result) []BatchItem {
	out := make([]BatchItem, len(rs))
	for i, r := range rs {
		out[i] = BatchItem{ID: r.ID(), Status: string(r.Status()), Err: r.Err()}
	}
	return out
}
