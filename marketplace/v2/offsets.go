package v2

import "github.com/public-awesome/marketplace/types"

// Cursor types for the sorted listings. Each cursor carries the sort key's
// component values at the boundary row; a cursor built for one sort dimension
// is meaningless for another, so every listing gets its own type.

// AskOffset bounds price-sorted ask listings: primary key price, tie-break
// token id ascending.
type AskOffset struct {
	Price   types.Uint128 `json:"price"`
	TokenID uint32        `json:"token_id"`
}

// AskOffsetOf builds the cursor for the entry itself, for requesting the page
// strictly after (or before) it.
func AskOffsetOf(a Ask) AskOffset {
	return AskOffset{Price: a.Price, TokenID: a.TokenID}
}

// BidOffset bounds price-sorted bid listings: price, then token id, then
// bidder.
type BidOffset struct {
	Bidder  string        `json:"bidder"`
	Price   types.Uint128 `json:"price"`
	TokenID uint32        `json:"token_id"`
}

func BidOffsetOf(b Bid) BidOffset {
	return BidOffset{Bidder: b.Bidder, Price: b.Price, TokenID: b.TokenID}
}

// CollectionBidOffset bounds price-sorted collection bid listings.
type CollectionBidOffset struct {
	Bidder     string        `json:"bidder"`
	Collection string        `json:"collection"`
	Price      types.Uint128 `json:"price"`
}

func CollectionBidOffsetOf(b CollectionBid) CollectionBidOffset {
	return CollectionBidOffset{Bidder: b.Bidder, Collection: b.Collection, Price: b.Price}
}

// CollectionOffset bounds owner-scoped listings ordered by (collection,
// token id).
type CollectionOffset struct {
	Collection string `json:"collection"`
	TokenID    uint32 `json:"token_id"`
}

func CollectionOffsetOf(collection string, tokenID uint32) CollectionOffset {
	return CollectionOffset{Collection: collection, TokenID: tokenID}
}
