package visualsearch

import "context"

// Repo stores visual search analytics records.
type Repo interface {
	Insert(ctx context.Context, entry LogEntry) error
}
