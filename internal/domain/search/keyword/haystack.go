package keyword

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/kwfilter/internal/domain/search/result"
	"github.com/kailas-cloud/kwfilter/internal/logger"
)

// Haystack builds the lower-cased text a result is matched against:
// source, display name, filename, details URL, thumbnail URL and license
// name, space separated. Absent optional fields are skipped.
func Haystack(ctx context.Context, r *result.Result) string {
	parts := make([]string, 0, 6)
	if src, ok := r.Source(); ok {
		parts = append(parts, src)
	} else {
		logger.FromContext(ctx).Warn("search result has no source",
			zap.String("result_id", r.ID()),
		)
	}
	parts = append(parts, r.DisplayName())
	if name, ok := r.Filename(); ok {
		parts = append(parts, name)
	}
	parts = append(parts, r.DetailsURL(), r.ThumbnailURL())
	if l := r.License(); !l.IsUnknown() {
		parts = append(parts, l.Name())
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// Passes reports whether r passes the filter pipeline. An empty pipeline
// accepts every result without building a haystack.
func Passes(ctx context.Context, r *result.Result, filters []Filter) bool {
	if len(filters) == 0 {
		return true
	}
	return Evaluate(Haystack(ctx, r), filters)
}
