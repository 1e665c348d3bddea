package jobs

import "context"

// Source provides job postings for a query. Implementations may be remote
// APIs or in-process catalogs; callers own deduplication of the combined
// results.
type Source interface {
	Search(ctx context.Context, query, location string, keywords []string) (*Jobs, error)
}
