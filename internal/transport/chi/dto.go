package chi

import (
	"fmt"

	"github.com/kailas-cloud/kwfilter/internal/domain"
	"github.com/kailas-cloud/kwfilter/internal/domain/batch"
	"github.com/kailas-cloud/kwfilter/internal/domain/license"
	"github.com/kailas-cloud/kwfilter/internal/domain/search/keyword"
	"github.com/kailas-cloud/kwfilter/internal/domain/search/result"
	filteruc "github.com/kailas-cloud/kwfilter/internal/usecase/filter"
	healthuc "github.com/kailas-cloud/kwfilter/internal/usecase/health"
)

// ErrorCode is a machine-readable error identifier.
type ErrorCode string

// Error codes returned by the API.
const (
	ErrorCodeBadRequest       ErrorCode = "bad_request"
	ErrorCodeUnauthorized     ErrorCode = "unauthorized"
	ErrorCodeValidationFailed ErrorCode = "validation_failed"
	ErrorCodeNotFound         ErrorCode = "not_found"
	ErrorCodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Filter is the wire form of a keyword filter.
type Filter struct {
	Inclusive bool   `json:"inclusive"`
	Keyword   string `json:"keyword"`
	Feature   string `json:"feature,omitempty"`
	Form      string `json:"form,omitempty"`
}

// FilterCount is a filter with the number of results it accepted.
type FilterCount struct {
	Filter
	Count int `json:"count"`
}

// Result is the wire form of a search result.
type Result struct {
	ID           string  `json:"id"`
	DisplayName  string  `json:"display_name"`
	Source       *string `json:"source,omitempty"`
	Filename     *string `json:"filename,omitempty"`
	DetailsURL   string  `json:"details_url"`
	ThumbnailURL string  `json:"thumbnail_url"`
	License      string  `json:"license,omitempty"`
}

// ParseRequest is the body of POST /filters/parse.
type ParseRequest struct {
	Query string `json:"query"`
}

// ParseResponse splits a query into terms and filters.
type ParseResponse struct {
	Terms   string   `json:"terms"`
	Filters []Filter `json:"filters"`
}

// ApplyRequest is the body of POST /filters/apply. When Filters is absent
// they are parsed from Query.
type ApplyRequest struct {
	Query   string    `json:"query"`
	Filters *[]Filter `json:"filters,omitempty"`
	Results []Result  `json:"results"`
}

// FilteredResponse is returned by apply and search.
type FilteredResponse struct {
	Terms    string        `json:"terms"`
	Filters  []FilterCount `json:"filters"`
	Results  []Result      `json:"results"`
	Rejected int           `json:"rejected"`
}

// SearchParams are the query parameters of GET /search.
type SearchParams struct {
	Q     *string `form:"q" json:"q,omitempty"`
	Limit *int    `form:"limit" json:"limit,omitempty"`
}

// BatchRequest is the body of POST /results.
type BatchRequest struct {
	Results []Result `json:"results"`
}

// BatchItem is the outcome of one batch item.
type BatchItem struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// BatchResponse reports per-item outcomes of POST /results.
type BatchResponse struct {
	Items     []BatchItem `json:"items"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
}

// HealthResponse reports component health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func filterToDTO(f keyword.Filter) Filter {
	return Filter{
		Inclusive: f.Inclusive(),
		Keyword:   f.Keyword(),
		Feature:   f.Feature().String(),
		Form:      f.String(),
	}
}

func filtersToDTO(ff []keyword.Filter) []Filter {
	out := make([]Filter, len(ff))
	for i, f := range ff {
		out[i] = filterToDTO(f)
	}
	return out
}

func filterFromDTO(d Filter) (keyword.Filter, error) {
	if d.Keyword == "" {
		return keyword.Filter{}, fmt.Errorf("%w: filter keyword is required", domain.ErrInvalidFilter)
	}
	if !keyword.ValidKeyword(d.Keyword) {
		return keyword.Filter{}, fmt.Errorf("%w: keyword %q must not contain whitespace or \"-\"",
			domain.ErrInvalidFilter, d.Keyword)
	}
	feature := keyword.Feature(d.Feature)
	if d.Form == "" {
		return keyword.New(d.Inclusive, d.Keyword, feature), nil
	}
	return keyword.NewWithForm(d.Inclusive, d.Keyword, d.Form).WithFeature(feature), nil
}

func filtersFromDTO(dd []Filter) ([]keyword.Filter, error) {
	out := make([]keyword.Filter, len(dd))
	for i, d := range dd {
		f, err := filterFromDTO(d)
		if err != nil {
			return nil, fmt.Errorf("filters[%d]: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}

func resultToDTO(r *result.Result) Result {
	d := Result{
		ID:           r.ID(),
		DisplayName:  r.DisplayName(),
		DetailsURL:   r.DetailsURL(),
		ThumbnailURL: r.ThumbnailURL(),
	}
	if src, ok := r.Source(); ok {
		d.Source = &src
	}
	if name, ok := r.Filename(); ok {
		d.Filename = &name
	}
	if l := r.License(); !l.IsUnknown() {
		d.License = l.ID()
	}
	return d
}

func resultsToDTO(rs []result.Result) []Result {
	out := make([]Result, len(rs))
	for i := range rs {
		out[i] = resultToDTO(&rs[i])
	}
	return out
}

func resultFromDTO(id string, d Result) result.Result {
	var opts []result.Option
	if d.Source != nil {
		opts = append(opts, result.WithSource(*d.Source))
	}
	if d.Filename != nil {
		opts = append(opts, result.WithFilename(*d.Filename))
	}
	opts = append(opts, result.WithLicense(license.Lookup(d.License)))
	return result.New(id, d.DisplayName, d.DetailsURL, d.ThumbnailURL, opts...)
}

func resultsFromDTO(dd []Result) []result.Result {
	out := make([]result.Result, len(dd))
	for i, d := range dd {
		out[i] = resultFromDTO(d.ID, d)
	}
	return out
}

func filteredToDTO(terms string, out filteruc.Outcome) FilteredResponse {
	counts := make([]FilterCount, len(out.Counts))
	for i, c := range out.Counts {
		counts[i] = FilterCount{Filter: filterToDTO(c.Filter), Count: c.Count}
	}
	return FilteredResponse{
		Terms:    terms,
		Filters:  counts,
		Results:  resultsToDTO(out.Accepted),
		Rejected: out.Rejected,
	}
}

func batchToDTO(rs []batch.Result) BatchResponse {
	resp := BatchResponse{Items: make([]BatchItem, len(rs))}
	for i, r := range rs {
		item := BatchItem{ID: r.ID(), Status: string(r.Status())}
		if r.OK() {
			resp.Succeeded++
		} else {
			resp.Failed++
			item.Error = r.Err().Error()
		}
		resp.Items[i] = item
	}
	return resp
}

func healthToDTO(r healthuc.Report) HealthResponse {
	checks := make(map[string]string, len(r.Checks))
	for k, v := range r.Checks {
		checks[k] = string(v)
	}
	return HealthResponse{Status: string(r.Status), Checks: checks}
}
