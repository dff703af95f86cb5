package v2

import (
	"context"

	"github.com/public-awesome/marketplace/pagination"
)

// Exhaustive listing helpers. Each walks its sorted index page by page until
// the contract returns a short page.

func (c *QueryClient) AllAsks(ctx context.Context, collection string, includeInactive *bool, pageSize uint32) ([]Ask, error) {
	return pagination.Collect(ctx, int(pageSize),
		func(ctx context.Context, cursor *uint32) ([]Ask, error) {
			return c.Asks(ctx, AsksQuery{
				Collection:      collection,
				IncludeInactive: includeInactive,
				StartAfter:      cursor,
				Limit:           &pageSize,
			})
		},
		func(last Ask) uint32 { return last.TokenID })
}

func (c *QueryClient) AllAsksSortedByPrice(ctx context.Context, collection string, includeInactive *bool, pageSize uint32) ([]Ask, error) {
	return pagination.Collect(ctx, int(pageSize),
		func(ctx context.Context, cursor *AskOffset) ([]Ask, error) {
			return c.AsksSortedByPrice(ctx, AsksSortedByPriceQuery{
				Collection:      collection,
				IncludeInactive: includeInactive,
				StartAfter:      cursor,
				Limit:           &pageSize,
			})
		},
		AskOffsetOf)
}

func (c *QueryClient) AllAsksBySeller(ctx context.Context, seller string, includeInactive *bool, pageSize uint32) ([]Ask, error) {
	return pagination.Collect(ctx, int(pageSize),
		func(ctx context.Context, cursor *CollectionOffset) ([]Ask, error) {
			return c.AsksBySeller(ctx, AsksBySellerQuery{
				Seller:          seller,
				IncludeInactive: includeInactive,
				StartAfter:      cursor,
				Limit:           &pageSize,
			})
		},
		func(last Ask) CollectionOffset {
			return CollectionOffset{Collection: last.Collection, TokenID: last.TokenID}
		})
}

func (c *QueryClient) AllCollections(ctx context.Context, pageSize uint32) ([]string, error) {
	return pagination.Collect(ctx, int(pageSize),
		func(ctx context.Context, cursor *string) ([]string, error) {
			return c.Collections(ctx, cursor, &pageSize)
		},
		func(last string) string { return last })
}

func (c *QueryClient) AllBidsSortedByPrice(ctx context.Context, collection string, pageSize uint32) ([]Bid, error) {
	return pagination.Collect(ctx, int(pageSize),
		func(ctx context.Context, cursor *BidOffset) ([]Bid, error) {
			return c.BidsSortedByPrice(ctx, BidsSortedByPriceQuery{
				Collection: collection,
				StartAfter: cursor,
				Limit:      &pageSize,
			})
		},
		BidOffsetOf)
}

func (c *QueryClient) AllCollectionBidsSortedByPrice(ctx context.Context, collection string, pageSize uint32) ([]CollectionBid, error) {
	return pagination.Collect(ctx, int(pageSize),
		func(ctx context.Context, cursor *CollectionBidOffset) ([]CollectionBid, error) {
			return c.CollectionBidsSortedByPrice(ctx, CollectionBidsSortedByPriceQuery{
				Collection: collection,
				StartAfter: cursor,
				Limit:      &pageSize,
			})
		},
		CollectionBidOffsetOf)
}
