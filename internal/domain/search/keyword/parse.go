package keyword

import (
	"regexp"
	"strings"
)

// tokenPattern matches [+|-]:keyword:<kw> where <kw> excludes whitespace and "-".
var tokenPattern = regexp.MustCompile(`(?i)([+-])?:keyword:([^\s-]*)`)

var keywordPattern = regexp.MustCompile(`^[^\s-]+$`)

// ValidKeyword reports whether kw survives a String/Parse round-trip:
// non-empty, with no whitespace and no "-".
func ValidKeyword(kw string) bool {
	return keywordPattern.MatchString(kw)
}

// Parse extracts keyword filters from a free-text query, left to right.
// Text that does not form a token is ignored. Each filter keeps the exact
// substring it was parsed from as its canonical form.
func Parse(query string) []Filter {
	matches := tokenPattern.FindAllStringSubmatch(query, -1)
	if len(matches) == 0 {
		return nil
	}
	filters := make([]Filter, 0, len(matches))
	for _, m := range matches {
		if m[2] == "" {
			continue
		}
		filters = append(filters, NewWithForm(m[1] != "-", m[2], m[0]))
	}
	return filters
}

// Clean removes the first occurrence of each filter's canonical form from
// query, in order, and trims the result.
func Clean(query string, filters []Filter) string {
	for _, f := range filters {
		query = strings.Replace(query, f.String(), "", 1)
	}
	return strings.TrimSpace(query)
}
