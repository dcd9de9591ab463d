package keyword

// Feature is an opaque grouping key for filters. Filters sharing a feature
// are alternatives; filters with different features are all required.
type Feature string

// NoFeature groups filters that carry no feature tag.
const NoFeature Feature = ""

// Known features assigned by Detector.
const (
	SearchSource  Feature = "search_source"
	FileExtension Feature = "file_extension"
	FileName      Feature = "file_name"
)

// String returns the feature name.
func (f Feature) String() string { return string(f) }
