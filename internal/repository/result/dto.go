package result

import (
	"github.com/kailas-cloud/kwfilter/internal/domain/license"
	domresult "github.com/kailas-cloud/kwfilter/internal/domain/search/result"
)

const (
	fieldDisplayName  = "display_name"
	fieldSource       = "source"
	fieldFilename     = "filename"
	fieldDetailsURL   = "details_url"
	fieldThumbnailURL = "thumbnail_url"
	fieldLicense      = "license"
)

// buildHashFields flattens a Result for HSET. Optional fields are written
// only when set so that absence survives a round-trip.
func buildHashFields(r *domresult.Result) map[string]string {
	m := map[string]string{
		fieldDisplayName:  r.DisplayName(),
		fieldDetailsURL:   r.DetailsURL(),
		fieldThumbnailURL: r.ThumbnailURL(),
		fieldLicense:      r.License().ID(),
	}
	if src, ok := r.Source(); ok {
		m[fieldSource] = src
	}
	if name, ok := r.Filename(); ok {
		m[fieldFilename] = name
	}
	return m
}

// parseHashFields rebuilds a Result from HGETALL output.
func parseHashFields(id string, m map[string]string) domresult.Result {
	var opts []domresult.Option
	if src, ok := m[fieldSource]; ok {
		opts = append(opts, domresult.WithSource(src))
	}
	if name, ok := m[fieldFilename]; ok {
		opts = append(opts, domresult.WithFilename(name))
	}
	opts = append(opts, domresult.WithLicense(license.Lookup(m[fieldLicense])))
	return domresult.New(id, m[fieldDisplayName], m[fieldDetailsURL], m[fieldThumbnailURL], opts...)
}
