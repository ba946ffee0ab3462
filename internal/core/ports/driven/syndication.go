package driven

import "context"

// FeedRebuilder refreshes dependent syndication output (RSS and friends)
// after a batch materialises new records. A rebuild failure is logged by the
// orchestrator but never flips an already-succeeded item to failed.
type FeedRebuilder interface {
	Rebuild(ctx context.Context) error
}
