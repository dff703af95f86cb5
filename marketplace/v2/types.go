// Package v2 is the client for the second generation of the marketplace
// contract: sale types, active flags, basis-point fees carried as decimal
// strings, and price/expiration-sorted listings with structured cursors and
// symmetric forward/reverse traversal.
package v2

import (
	"github.com/pkg/errors"

	"github.com/public-awesome/marketplace/types"
)

type SaleType string

const (
	SaleTypeFixedPrice SaleType = "fixed_price"
	SaleTypeAuction    SaleType = "auction"
)

func (s SaleType) Validate() error {
	switch s {
	case SaleTypeFixedPrice, SaleTypeAuction:
		return nil
	}
	return errors.Errorf("unknown sale type %q", string(s))
}

// TradingFeeBasisPoints is the V2 fee representation: basis points carried as
// a fixed-point decimal string. Distinct from V1's percent-as-number and V3's
// bps-as-integer.
type TradingFeeBasisPoints types.Decimal

// ExpiryBounds is the V2 [min, max] seconds tuple.
type ExpiryBounds [2]uint64

// Ask is a seller's standing offer to sell one token at a price.
type Ask struct {
	SaleType       SaleType        `json:"sale_type"`
	Collection     string          `json:"collection"`
	TokenID        uint32          `json:"token_id"`
	Seller         string          `json:"seller"`
	Price          types.Uint128   `json:"price"`
	FundsRecipient *string         `json:"funds_recipient,omitempty"`
	ReserveFor     *string         `json:"reserve_for,omitempty"`
	FindersFeeBps  *uint64         `json:"finders_fee_bps,omitempty"`
	Expires        types.Timestamp `json:"expires"`
	IsActive       bool            `json:"is_active"`
}

func (a *Ask) Validate() error {
	if a.Collection == "" {
		return errors.New("missing collection")
	}
	if a.Seller == "" {
		return errors.New("missing seller")
	}
	if err := a.SaleType.Validate(); err != nil {
		return err
	}
	if err := a.Price.Validate(); err != nil {
		return err
	}
	if a.FindersFeeBps != nil && *a.FindersFeeBps > 10000 {
		return errors.Errorf("finders fee %d exceeds 10000 bps", *a.FindersFeeBps)
	}
	return a.Expires.Validate()
}

// Bid is a buyer's standing offer on one specific token. One bid exists per
// (bidder, collection, token).
type Bid struct {
	Collection    string          `json:"collection"`
	TokenID       uint32          `json:"token_id"`
	Bidder        string          `json:"bidder"`
	Price         types.Uint128   `json:"price"`
	FindersFeeBps *uint64         `json:"finders_fee_bps,omitempty"`
	Expires       types.Timestamp `json:"expires"`
}

func (b *Bid) Validate() error {
	if b.Collection == "" {
		return errors.New("missing collection")
	}
	if b.Bidder == "" {
		return errors.New("missing bidder")
	}
	if err := b.Price.Validate(); err != nil {
		return err
	}
	return b.Expires.Validate()
}

// CollectionBid is a buyer's standing offer on any token of a collection. One
// exists per (bidder, collection).
type CollectionBid struct {
	Collection    string          `json:"collection"`
	Bidder        string          `json:"bidder"`
	Price         types.Uint128   `json:"price"`
	FindersFeeBps *uint64         `json:"finders_fee_bps,omitempty"`
	Expires       types.Timestamp `json:"expires"`
}

func (b *CollectionBid) Validate() error {
	if b.Collection == "" {
		return errors.New("missing collection")
	}
	if b.Bidder == "" {
		return errors.New("missing bidder")
	}
	if err := b.Price.Validate(); err != nil {
		return err
	}
	return b.Expires.Validate()
}

// SudoParams is the V2 contract configuration.
type SudoParams struct {
	AskExpiry             ExpiryBounds          `json:"ask_expiry"`
	BidExpiry             ExpiryBounds          `json:"bid_expiry"`
	Operators             []string              `json:"operators"`
	TradingFeeBasisPoints TradingFeeBasisPoints `json:"trading_fee_basis_points"`
}

type AskResponse struct {
	Ask *Ask `json:"ask"`
}

type AsksResponse struct {
	Asks []Ask `json:"asks"`
}

type AskCountResponse struct {
	Count uint64 `json:"count"`
}

type BidResponse struct {
	Bid *Bid `json:"bid"`
}

type BidsResponse struct {
	Bids []Bid `json:"bids"`
}

type CollectionBidResponse struct {
	Bid *CollectionBid `json:"bid"`
}

type CollectionBidsResponse struct {
	Bids []CollectionBid `json:"bids"`
}

type CollectionsResponse struct {
	Collections []string `json:"collections"`
}

type HooksResponse struct {
	Hooks []string `json:"hooks"`
}

type ParamsResponse struct {
	Params SudoParams `json:"params"`
}
