package reserveauction

import (
	"encoding/json"

	"github.com/public-awesome/marketplace/types"
)

// Execute payloads.

type CreateAuctionMsg struct {
	Collection           string     `json:"collection"`
	TokenID              string     `json:"token_id"`
	ReservePrice         types.Coin `json:"reserve_price"`
	Duration             uint64     `json:"duration"`
	SellerFundsRecipient *string    `json:"seller_funds_recipient,omitempty"`
}

type UpdateReservePriceMsg struct {
	Collection   string     `json:"collection"`
	TokenID      string     `json:"token_id"`
	ReservePrice types.Coin `json:"reserve_price"`
}

type CancelAuctionMsg struct {
	Collection string `json:"collection"`
	TokenID    string `json:"token_id"`
}

// PlaceBidMsg carries no price field; the bid amount rides in the attached
// funds of the transaction.
type PlaceBidMsg struct {
	Collection string `json:"collection"`
	TokenID    string `json:"token_id"`
}

type SettleAuctionMsg struct {
	Collection string `json:"collection"`
	TokenID    string `json:"token_id"`
}

// Query payloads.

type configQuery struct{}

type haltManagerQuery struct{}

type minReservePricesQuery struct {
	QueryOptions *QueryOptions[string] `json:"query_options,omitempty"`
}

type auctionQuery struct {
	Collection string `json:"collection"`
	TokenID    string `json:"token_id"`
}

// SellerTokenCursor bounds auction listings keyed by (collection, token_id).
// Serializes as the wire tuple ["collection", "token"].
type SellerTokenCursor struct {
	Collection string
	TokenID    string
}

func (c SellerTokenCursor) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{c.Collection, c.TokenID})
}

type auctionsBySellerQuery struct {
	Seller       string                           `json:"seller"`
	QueryOptions *QueryOptions[SellerTokenCursor] `json:"query_options,omitempty"`
}

type auctionsByEndTimeQuery struct {
	EndTime      uint64                           `json:"end_time"`
	QueryOptions *QueryOptions[SellerTokenCursor] `json:"query_options,omitempty"`
}

// Sudo payloads.

// UpdateParamsMsg is a patch; omitted fields keep their on-chain value.
type UpdateParamsMsg struct {
	FairBurn                    types.Optional[string]
	Marketplace                 types.Optional[string]
	MinDuration                 types.Optional[uint64]
	MinBidIncrementBps          types.Optional[uint64]
	ExtendDuration              types.Optional[uint64]
	CreateAuctionFee            types.Optional[types.Coin]
	MaxAuctionsToSettlePerBlock types.Optional[uint64]
	HaltDurationThreshold       types.Optional[uint64]
	HaltBufferDuration          types.Optional[uint64]
	HaltPostponeDuration        types.Optional[uint64]
}

func (m UpdateParamsMsg) MarshalJSON() ([]byte, error) {
	obj := map[string]json.RawMessage{}
	fields := []struct {
		key    string
		append func(map[string]json.RawMessage, string) error
	}{
		{"fair_burn", m.FairBurn.AppendTo},
		{"marketplace", m.Marketplace.AppendTo},
		{"min_duration", m.MinDuration.AppendTo},
		{"min_bid_increment_bps", m.MinBidIncrementBps.AppendTo},
		{"extend_duration", m.ExtendDuration.AppendTo},
		{"create_auction_fee", m.CreateAuctionFee.AppendTo},
		{"max_auctions_to_settle_per_block", m.MaxAuctionsToSettlePerBlock.AppendTo},
		{"halt_duration_threshold", m.HaltDurationThreshold.AppendTo},
		{"halt_buffer_duration", m.HaltBufferDuration.AppendTo},
		{"halt_postpone_duration", m.HaltPostponeDuration.AppendTo},
	}
	for _, f := range fields {
		if err := f.append(obj, f.key); err != nil {
			return nil, err
		}
	}
	return json.Marshal(obj)
}

type SetMinReservePricesMsg struct {
	MinReservePrices []types.Coin `json:"min_reserve_prices"`
}

type UnsetMinReservePricesMsg struct {
	Denoms []string `json:"denoms"`
}
