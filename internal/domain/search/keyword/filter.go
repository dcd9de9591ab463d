// Package keyword implements the keyword filter pipeline: filter values,
// the ":keyword:" token parser, query cleaning and grouped evaluation.
package keyword

import (
	"hash/fnv"
	"strings"
)

// Tag is the literal token marker of a keyword filter.
const Tag = ":keyword:"

// Filter is an immutable keyword constraint.
type Filter struct {
	inclusive bool
	keyword   string
	feature   Feature
	form      string
}

// New creates a filter with a synthesized canonical form
// ("+:keyword:<kw>" or "-:keyword:<kw>").
func New(inclusive bool, keyword string, feature Feature) Filter {
	kw := strings.ToLower(keyword)
	return Filter{
		inclusive: inclusive,
		keyword:   kw,
		feature:   feature,
		form:      synthesizeForm(inclusive, kw),
	}
}

// NewWithForm creates a filter whose canonical form is the substring it was
// parsed from. The form is not validated against inclusive and keyword.
func NewWithForm(inclusive bool, keyword, form string) Filter {
	return Filter{
		inclusive: inclusive,
		keyword:   strings.ToLower(keyword),
		feature:   NoFeature,
		form:      form,
	}
}

func synthesizeForm(inclusive bool, kw string) string {
	if inclusive {
		return "+" + Tag + kw
	}
	return "-" + Tag + kw
}

// Inclusive reports whether the keyword must be present.
func (f Filter) Inclusive() bool { return f.inclusive }

// Keyword returns the lower-cased keyword.
func (f Filter) Keyword() string { return f.keyword }

// Feature returns the grouping feature.
func (f Filter) Feature() Feature { return f.feature }

// String returns the canonical form.
func (f Filter) String() string { return f.form }

// Accept reports whether a lower-cased haystack satisfies the filter.
func (f Filter) Accept(haystack string) bool {
	found := strings.Contains(haystack, f.keyword)
	return f.inclusive == found
}

// Toggled returns a copy with the polarity flipped and a synthesized form.
func (f Filter) Toggled() Filter {
	return New(!f.inclusive, f.keyword, f.feature)
}

// WithFeature returns a copy tagged with feature.
func (f Filter) WithFeature(feature Feature) Filter {
	f.feature = feature
	return f
}

// Key is a comparable identity of a filter: polarity and keyword.
type Key struct {
	Inclusive bool
	Keyword   string
}

// Key returns the identity used by Equal.
func (f Filter) Key() Key { return Key{Inclusive: f.inclusive, Keyword: f.keyword} }

// Equal reports whether both filters have the same polarity and keyword.
// Feature and canonical form are ignored.
func (f Filter) Equal(other Filter) bool { return f.Key() == other.Key() }

// Hash is consistent with Equal: the keyword hash, negated for exclusive
// filters.
func (f Filter) Hash() int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(f.keyword))
	v := int64(h.Sum64() >> 1)
	if !f.inclusive {
		return -v
	}
	return v
}
