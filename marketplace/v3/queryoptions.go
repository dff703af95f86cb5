package v3

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/public-awesome/marketplace/types"
)

// QueryOptions is the shared pagination envelope of this schema family.
// Descending flips traversal direction; StartAfter is exclusive in whichever
// direction applies; an absent Limit defers to the contract default.
type QueryOptions[T any] struct {
	Descending *bool   `json:"descending,omitempty"`
	StartAfter *T      `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

// Cursors below serialize as wire tuples (JSON arrays) in index-key order.
// Prices travel as bare JSON numbers inside cursors, unlike the quoted
// decimal strings used in coin amounts.

func marshalTuple(elems ...interface{}) ([]byte, error) {
	parts := make([]json.RawMessage, 0, len(elems))
	for _, e := range elems {
		b, err := json.Marshal(e)
		if err != nil {
			return nil, err
		}
		parts = append(parts, b)
	}
	return json.Marshal(parts)
}

func rawPrice(price types.Uint128) (json.RawMessage, error) {
	if err := price.Validate(); err != nil {
		return nil, errors.Wrap(err, "cursor price")
	}
	return json.RawMessage(price.String()), nil
}

// PriceTokenCursor bounds price-sorted ask listings: (price, token_id).
type PriceTokenCursor struct {
	Price   types.Uint128
	TokenID TokenID
}

func (c PriceTokenCursor) MarshalJSON() ([]byte, error) {
	p, err := rawPrice(c.Price)
	if err != nil {
		return nil, err
	}
	return marshalTuple(p, c.TokenID)
}

// CollectionTokenCursor bounds seller-scoped ask listings: (collection, token_id).
type CollectionTokenCursor struct {
	Collection string
	TokenID    TokenID
}

func (c CollectionTokenCursor) MarshalJSON() ([]byte, error) {
	return marshalTuple(c.Collection, c.TokenID)
}

// AskExpirationCursor bounds expiration-sorted ask listings:
// (expires_at seconds, collection, token_id).
type AskExpirationCursor struct {
	ExpiresAt  uint64
	Collection string
	TokenID    TokenID
}

func (c AskExpirationCursor) MarshalJSON() ([]byte, error) {
	return marshalTuple(c.ExpiresAt, c.Collection, c.TokenID)
}

// TokenBidderCursor bounds collection-scoped offer listings: (token_id, bidder).
type TokenBidderCursor struct {
	TokenID TokenID
	Bidder  string
}

func (c TokenBidderCursor) MarshalJSON() ([]byte, error) {
	return marshalTuple(c.TokenID, c.Bidder)
}

// PriceBidderCursor bounds price-sorted offer listings: (price, bidder).
type PriceBidderCursor struct {
	Price  types.Uint128
	Bidder string
}

func (c PriceBidderCursor) MarshalJSON() ([]byte, error) {
	p, err := rawPrice(c.Price)
	if err != nil {
		return nil, err
	}
	return marshalTuple(p, c.Bidder)
}

// OfferExpirationCursor bounds expiration-sorted offer listings:
// (expires_at seconds, collection, token_id, bidder).
type OfferExpirationCursor struct {
	ExpiresAt  uint64
	Collection string
	TokenID    TokenID
	Bidder     string
}

func (c OfferExpirationCursor) MarshalJSON() ([]byte, error) {
	return marshalTuple(c.ExpiresAt, c.Collection, c.TokenID, c.Bidder)
}

// CollectionOfferExpirationCursor bounds expiration-sorted collection offer
// listings: (expires_at seconds, collection, bidder).
type CollectionOfferExpirationCursor struct {
	ExpiresAt  uint64
	Collection string
	Bidder     string
}

func (c CollectionOfferExpirationCursor) MarshalJSON() ([]byte, error) {
	return marshalTuple(c.ExpiresAt, c.Collection, c.Bidder)
}
