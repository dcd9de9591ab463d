package result

import "github.com/kailas-cloud/kwfilter/internal/domain/license"

// Result is a single search hit as seen by the keyword filter pipeline.
type Result struct {
	id           string
	displayName  string
	source       string
	hasSource    bool
	filename     string
	isFile       bool
	detailsURL   string
	thumbnailURL string
	license      license.License
}

// Option sets an optional Result field.
type Option func(*Result)

// WithSource sets the label of the engine that produced the result.
func WithSource(source string) Option {
	return func(r *Result) {
		r.source = source
		r.hasSource = true
	}
}

// WithFilename marks the result as a file and sets its filename.
func WithFilename(filename string) Option {
	return func(r *Result) {
		r.filename = filename
		r.isFile = true
	}
}

// WithLicense sets the license; results default to license.Unknown.
func WithLicense(l license.License) Option {
	return func(r *Result) { r.license = l }
}

// New creates a search result.
func New(id, displayName, detailsURL, thumbnailURL string, opts ...Option) Result {
	r := Result{
		id:           id,
		displayName:  displayName,
		detailsURL:   detailsURL,
		thumbnailURL: thumbnailURL,
		license:      license.Unknown,
	}
	for _, o := range opts {
		o(&r)
	}
	return r
}

// ID returns the result identifier.
func (r *Result) ID() string { return r.id }

// DisplayName returns the human-readable title.
func (r *Result) DisplayName() string { return r.displayName }

// Source returns the source label and whether it is set.
func (r *Result) Source() (string, bool) { return r.source, r.hasSource }

// Filename returns the filename and whether the result is a file.
func (r *Result) Filename() (string, bool) { return r.filename, r.isFile }

// DetailsURL returns the page describing the result.
func (r *Result) DetailsURL() string { return r.detailsURL }

// ThumbnailURL returns the preview image location.
func (r *Result) ThumbnailURL() string { return r.thumbnailURL }

// License returns the content license.
func (r *Result) License() license.License { return r.license }
