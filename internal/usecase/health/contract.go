package health

import "context"

// Checker reports whether a dependency is available.
type Checker interface {
	Ping(ctx context.Context) error
}
