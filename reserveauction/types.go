// Package reserveauction is the typed client for the reserve auction
// contract: timed auctions seeded with a reserve-price bid, extended on late
// bids, settled by the chain's cron hooks.
package reserveauction

import (
	"github.com/pkg/errors"

	"github.com/public-awesome/marketplace/types"
)

// Config is the contract-wide auction configuration. Durations are seconds.
type Config struct {
	FairBurn                     string     `json:"fair_burn"`
	Marketplace                  string     `json:"marketplace"`
	MinBidIncrementBps           uint64     `json:"min_bid_increment_bps"`
	MinDuration                  uint64     `json:"min_duration"`
	MaxDuration                  uint64     `json:"max_duration"`
	ExtendDuration               uint64     `json:"extend_duration"`
	CreateAuctionFee             types.Coin `json:"create_auction_fee"`
	MaxAuctionsToSettlePerBlock  uint64     `json:"max_auctions_to_settle_per_block"`
	HaltDurationThreshold        uint64     `json:"halt_duration_threshold"`
	HaltBufferDuration           uint64     `json:"halt_buffer_duration"`
	HaltPostponeDuration         uint64     `json:"halt_postpone_duration"`
}

// HaltInfo records one detected chain halt window.
type HaltInfo struct {
	StartTime types.Timestamp `json:"start_time"`
	EndTime   types.Timestamp `json:"end_time"`
}

// HaltManager tracks chain halts so auctions ending inside a halt window get
// postponed instead of settled.
type HaltManager struct {
	PrevBlockTime types.Timestamp `json:"prev_block_time"`
	HaltInfos     []HaltInfo      `json:"halt_infos"`
}

type HighBid struct {
	Coin   types.Coin `json:"coin"`
	Bidder string     `json:"bidder"`
}

// Auction is a live or settleable auction for one token.
type Auction struct {
	Collection           string           `json:"collection"`
	TokenID              string           `json:"token_id"`
	Seller               string           `json:"seller"`
	ReservePrice         types.Coin       `json:"reserve_price"`
	StartTime            types.Timestamp  `json:"start_time"`
	EndTime              types.Timestamp  `json:"end_time"`
	SellerFundsRecipient *string          `json:"seller_funds_recipient"`
	HighBid              *HighBid         `json:"high_bid"`
	FirstBidTime         *types.Timestamp `json:"first_bid_time"`
}

func (a *Auction) Validate() error {
	if a.Collection == "" || a.TokenID == "" {
		return errors.New("auction missing collection or token id")
	}
	if err := a.ReservePrice.Validate(); err != nil {
		return errors.Wrap(err, "auction reserve price")
	}
	return nil
}

// QueryOptions paginates auction contract listings. Same envelope convention
// as the V3 marketplace family but owned by this contract's schema.
type QueryOptions[T any] struct {
	Descending *bool   `json:"descending,omitempty"`
	StartAfter *T      `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

type configResponse struct {
	Config Config `json:"config"`
}

type haltManagerResponse struct {
	HaltManager HaltManager `json:"halt_manager"`
}

type coinsResponse struct {
	Coins []types.Coin `json:"coins"`
}

type auctionResponse struct {
	Auction Auction `json:"auction"`
}

type auctionsResponse struct {
	Auctions []Auction `json:"auctions"`
}
