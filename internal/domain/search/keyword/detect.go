package keyword

import (
	"path"
	"strings"
)

// Detector assigns features to keywords using configured vocabularies.
type Detector struct {
	sources    map[string]struct{}
	extensions map[string]struct{}
}

// NewDetector creates a detector. Extensions may be given with or without
// the leading dot; all entries are matched case-insensitively.
func NewDetector(sources, extensions []string) *Detector {
	d := &Detector{
		sources:    make(map[string]struct{}, len(sources)),
		extensions: make(map[string]struct{}, len(extensions)),
	}
	for _, s := range sources {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			d.sources[s] = struct{}{}
		}
	}
	for _, e := range extensions {
		if e = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(e)), "."); e != "" {
			d.extensions[e] = struct{}{}
		}
	}
	return d
}

// Detect returns the feature of keyword, or NoFeature.
func (d *Detector) Detect(keyword string) Feature {
	kw := strings.ToLower(keyword)
	if _, ok := d.sources[kw]; ok {
		return SearchSource
	}
	if _, ok := d.extensions[strings.TrimPrefix(kw, ".")]; ok {
		return FileExtension
	}
	if ext := path.Ext(kw); len(ext) > 1 && len(ext) < len(kw) {
		if _, ok := d.extensions[ext[1:]]; ok {
			return FileName
		}
	}
	return NoFeature
}

// Annotate returns a copy of filters where untagged filters carry the
// detected feature. Filters that already have a feature are kept as is.
func (d *Detector) Annotate(filters []Filter) []Filter {
	if len(filters) == 0 {
		return filters
	}
	out := make([]Filter, len(filters))
	for i, f := range filters {
		if f.Feature() == NoFeature {
			f = f.WithFeature(d.Detect(f.Keyword()))
		}
		out[i] = f
	}
	return out
}
