package pagination

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectChainsUntilShortPage(t *testing.T) {
	entries := []int{1, 2, 3, 4, 5, 6, 7}
	var fetches int

	out, err := Collect(context.Background(), 3,
		func(ctx context.Context, cursor *int) ([]int, error) {
			fetches++
			start := 0
			if cursor != nil {
				for i, e := range entries {
					if e > *cursor {
						start = i
						break
					}
					start = len(entries)
				}
			}
			end := start + 3
			if end > len(entries) {
				end = len(entries)
			}
			return entries[start:end], nil
		},
		func(last int) int { return last })
	require.NoError(t, err)
	require.Equal(t, entries, out)
	// Third page is short (one entry), so no fourth request goes out.
	require.Equal(t, 3, fetches)
}

func TestCollectStopsOnExactlyEmptyListing(t *testing.T) {
	var fetches int
	out, err := Collect(context.Background(), 10,
		func(ctx context.Context, cursor *string) ([]string, error) {
			fetches++
			return nil, nil
		},
		func(last string) string { return last })
	require.NoError(t, err)
	require.Empty(t, out)
	require.Equal(t, 1, fetches)
}

func TestCollectPropagatesFetchError(t *testing.T) {
	boom := context.DeadlineExceeded
	_, err := Collect(context.Background(), 2,
		func(ctx context.Context, cursor *int) ([]int, error) {
			return nil, boom
		},
		func(last int) int { return last })
	require.ErrorIs(t, err, boom)
}
