package kwfilter

// Feature groups filters: filters sharing a feature are alternatives.
type Feature string

// Feature values assigned by detection. NoFeature is an ordinary group.
const (
	NoFeature            Feature = ""
	FeatureSearchSource  Feature = "search_source"
	FeatureFileExtension Feature = "file_extension"
	FeatureFileName      Feature = "file_name"
)

// Filter is a keyword inclusion (Inclusive) or exclusion filter.
// An empty Form is synthesized from the other fields.
type Filter struct {
	Inclusive bool
	Keyword   string
	Feature   Feature
	Form      string
}

// Result is a search result candidate.
// Source and Filename are nil when absent. License is a license id
// such as "cc-by"; unknown ids are ignored.
type Result struct {
	ID           string
	DisplayName  string
	Source       *string
	Filename     *string
	DetailsURL   string
	ThumbnailURL string
	License      string
}

// Query is a parsed query: the filters it carries and the remaining terms.
type Query struct {
	Raw     string
	Terms   string
	Filters []Filter
}

// FilterCount is the number of candidates a single filter accepted.
type FilterCount struct {
	Filter Filter
	Count  int
}

// Outcome is the result of running filters over a batch of candidates.
type Outcome struct {
	Accepted []Result
	Rejected int
	Counts   []FilterCount
}

// BatchItem is the outcome of one item in a batch write.
type BatchItem struct {
	ID     string
	Status string // "created", "updated" or "error"
	Err    error
}
