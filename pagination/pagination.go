// Package pagination chains cursor-based contract queries. Each sorted listing
// exposes a strict total order; a page query returns entries strictly after
// (ascending) or strictly before (descending) the supplied boundary cursor, so
// chaining pages with the last entry's cursor visits every entry exactly once.
package pagination

import "context"

// FetchFunc returns one page of entries. A nil cursor requests the first page.
type FetchFunc[T any, C any] func(ctx context.Context, cursor *C) ([]T, error)

// CursorFunc builds the boundary cursor from a page's last entry.
type CursorFunc[T any, C any] func(last T) C

// Collect walks a listing until exhaustion. A page shorter than pageSize
// signals end-of-listing; no further request is issued after a short page.
func Collect[T any, C any](ctx context.Context, pageSize int, fetch FetchFunc[T, C], cursor CursorFunc[T, C]) ([]T, error) {
	var out []T
	var boundary *C
	for {
		page, err := fetch(ctx, boundary)
		if err != nil {
			return nil, err
		}
		out = append(out, page...)
		if len(page) < pageSize {
			return out, nil
		}
		c := cursor(page[len(page)-1])
		boundary = &c
	}
}
