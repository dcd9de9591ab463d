package keyword

// Group is the set of filters sharing one feature.
type Group struct {
	Feature Feature
	Filters []Filter
}

// GroupByFeature partitions filters by feature, keeping first-seen order of
// features and the original order within each group.
func GroupByFeature(filters []Filter) []Group {
	index := make(map[Feature]int)
	var groups []Group
	for _, f := range filters {
		i, ok := index[f.Feature()]
		if !ok {
			i = len(groups)
			index[f.Feature()] = i
			groups = append(groups, Group{Feature: f.Feature()})
		}
		groups[i].Filters = append(groups[i].Filters, f)
	}
	return groups
}

// Accept reports whether any filter in the group accepts the haystack.
// An empty group accepts nothing.
func (g Group) Accept(haystack string) bool {
	for _, f := range g.Filters {
		if f.Accept(haystack) {
			return true
		}
	}
	return false
}

// Evaluate runs the pipeline against a lower-cased haystack: OR within each
// feature group, AND across groups. An empty pipeline accepts everything.
func Evaluate(haystack string, filters []Filter) bool {
	for _, g := range GroupByFeature(filters) {
		if !g.Accept(haystack) {
			return false
		}
	}
	return true
}
