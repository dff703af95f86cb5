// Package v3 holds the third-generation marketplace schema family. Token ids
// are strings, prices carry an explicit denom, listings paginate through
// QueryOptions with tuple cursors, and fees are expressed in basis points.
package v3

import (
	"github.com/pkg/errors"

	"github.com/public-awesome/marketplace/types"
)

// TokenID widened to a string in this generation. Earlier families used a
// numeric id; the two are not interchangeable.
type TokenID = string

// Denom names a coin denomination accepted by the contract.
type Denom = string

// ExpiryRange bounds an order lifetime in seconds. This replaced the flat
// [min, max] tuple of earlier families with a named object.
type ExpiryRange struct {
	Min uint64 `json:"min"`
	Max uint64 `json:"max"`
}

func (r ExpiryRange) Validate() error {
	if r.Min > r.Max {
		return errors.Errorf("expiry range min %d exceeds max %d", r.Min, r.Max)
	}
	return nil
}

// PriceRange bounds valid order prices for one denom.
type PriceRange struct {
	Min types.Uint128 `json:"min"`
	Max types.Uint128 `json:"max"`
}

// Ask is a listing for a single token.
type Ask struct {
	Collection     string           `json:"collection"`
	TokenID        TokenID          `json:"token_id"`
	Seller         string           `json:"seller"`
	Price          types.Coin       `json:"price"`
	AssetRecipient *string          `json:"asset_recipient"`
	ReserveFor     *string          `json:"reserve_for"`
	FindersFeeBps  *uint64          `json:"finders_fee_bps"`
	ExpiresAt      *types.Timestamp `json:"expires_at"`
	PaidRemovalFee *types.Coin      `json:"paid_removal_fee"`
}

func (a *Ask) Validate() error {
	if a.Collection == "" {
		return errors.New("ask missing collection")
	}
	if a.TokenID == "" {
		return errors.New("ask missing token id")
	}
	if err := a.Price.Validate(); err != nil {
		return errors.Wrap(err, "ask price")
	}
	if a.FindersFeeBps != nil && *a.FindersFeeBps > 10000 {
		return errors.Errorf("ask finders fee %d exceeds 10000 bps", *a.FindersFeeBps)
	}
	return nil
}

// Offer is a buy order on one specific token.
type Offer struct {
	Collection     string           `json:"collection"`
	TokenID        TokenID          `json:"token_id"`
	Bidder         string           `json:"bidder"`
	Price          types.Coin       `json:"price"`
	AssetRecipient *string          `json:"asset_recipient"`
	FindersFeeBps  *uint64          `json:"finders_fee_bps"`
	ExpiresAt      *types.Timestamp `json:"expires_at"`
}

func (o *Offer) Validate() error {
	if o.Collection == "" || o.TokenID == "" || o.Bidder == "" {
		return errors.New("offer missing key fields")
	}
	if err := o.Price.Validate(); err != nil {
		return errors.Wrap(err, "offer price")
	}
	return nil
}

// CollectionOffer is a buy order on any token of a collection.
type CollectionOffer struct {
	Collection     string           `json:"collection"`
	Bidder         string           `json:"bidder"`
	Price          types.Coin       `json:"price"`
	AssetRecipient *string          `json:"asset_recipient"`
	FindersFeeBps  *uint64          `json:"finders_fee_bps"`
	ExpiresAt      *types.Timestamp `json:"expires_at"`
}

func (o *CollectionOffer) Validate() error {
	if o.Collection == "" || o.Bidder == "" {
		return errors.New("collection offer missing key fields")
	}
	if err := o.Price.Validate(); err != nil {
		return errors.Wrap(err, "collection offer price")
	}
	return nil
}

// SudoParams mirrors the governed contract configuration. The trading fee is
// basis points here; the percent and decimal-string forms belong to the
// earlier families.
type SudoParams struct {
	FairBurn                           string      `json:"fair_burn"`
	ListingFee                         types.Coin  `json:"listing_fee"`
	AskExpiry                          ExpiryRange `json:"ask_expiry"`
	OfferExpiry                        ExpiryRange `json:"offer_expiry"`
	Operators                          []string    `json:"operators"`
	MaxAsksRemovedPerBlock             uint32      `json:"max_asks_removed_per_block"`
	MaxOffersRemovedPerBlock           uint32      `json:"max_offers_removed_per_block"`
	MaxCollectionOffersRemovedPerBlock uint32      `json:"max_collection_offers_removed_per_block"`
	TradingFeeBps                      uint64      `json:"trading_fee_bps"`
	MaxFindersFeeBps                   uint64      `json:"max_finders_fee_bps"`
	RemovalRewardBps                   uint64      `json:"removal_reward_bps"`
}
