package v3

import (
	"encoding/json"

	"github.com/public-awesome/marketplace/types"
)

// Execute payloads.

type SetAskMsg struct {
	Collection     string           `json:"collection"`
	TokenID        TokenID          `json:"token_id"`
	Price          types.Coin       `json:"price"`
	AssetRecipient *string          `json:"asset_recipient,omitempty"`
	ReserveFor     *string          `json:"reserve_for,omitempty"`
	FindersFeeBps  *uint64          `json:"finders_fee_bps,omitempty"`
	Expires        *types.Timestamp `json:"expires,omitempty"`
}

type UpdateAskPriceMsg struct {
	Collection string     `json:"collection"`
	TokenID    TokenID    `json:"token_id"`
	Price      types.Coin `json:"price"`
}

type RemoveAskMsg struct {
	Collection string  `json:"collection"`
	TokenID    TokenID `json:"token_id"`
}

type RemoveStaleAskMsg struct {
	Collection string  `json:"collection"`
	TokenID    TokenID `json:"token_id"`
}

type MigrateAsksMsg struct {
	Limit uint64 `json:"limit"`
}

type SetOfferMsg struct {
	Collection     string           `json:"collection"`
	TokenID        TokenID          `json:"token_id"`
	AssetRecipient *string          `json:"asset_recipient,omitempty"`
	Finder         *string          `json:"finder,omitempty"`
	FindersFeeBps  *uint64          `json:"finders_fee_bps,omitempty"`
	Expires        *types.Timestamp `json:"expires,omitempty"`
}

type BuyNowMsg struct {
	Collection     string  `json:"collection"`
	TokenID        TokenID `json:"token_id"`
	AssetRecipient *string `json:"asset_recipient,omitempty"`
	Finder         *string `json:"finder,omitempty"`
}

type AcceptOfferMsg struct {
	Collection     string  `json:"collection"`
	TokenID        TokenID `json:"token_id"`
	Bidder         string  `json:"bidder"`
	AssetRecipient *string `json:"asset_recipient,omitempty"`
	Finder         *string `json:"finder,omitempty"`
}

type RemoveOfferMsg struct {
	Collection string  `json:"collection"`
	TokenID    TokenID `json:"token_id"`
}

type RejectOfferMsg struct {
	Collection string  `json:"collection"`
	TokenID    TokenID `json:"token_id"`
	Bidder     string  `json:"bidder"`
}

type RemoveStaleOfferMsg struct {
	Collection string  `json:"collection"`
	TokenID    TokenID `json:"token_id"`
	Bidder     string  `json:"bidder"`
}

type MigrateOffersMsg struct {
	Limit uint64 `json:"limit"`
}

type SetCollectionOfferMsg struct {
	Collection     string           `json:"collection"`
	AssetRecipient *string          `json:"asset_recipient,omitempty"`
	FindersFeeBps  *uint64          `json:"finders_fee_bps,omitempty"`
	Expires        *types.Timestamp `json:"expires,omitempty"`
}

type AcceptCollectionOfferMsg struct {
	Collection     string  `json:"collection"`
	TokenID        TokenID `json:"token_id"`
	Bidder         string  `json:"bidder"`
	AssetRecipient *string `json:"asset_recipient,omitempty"`
	Finder         *string `json:"finder,omitempty"`
}

type RemoveCollectionOfferMsg struct {
	Collection string `json:"collection"`
}

type RemoveStaleCollectionOfferMsg struct {
	Collection string `json:"collection"`
	Bidder     string `json:"bidder"`
}

type MigrateCollectionOffersMsg struct {
	Limit uint64 `json:"limit"`
}

// Query payloads. Point lookups carry their key; listings carry QueryOptions.

type sudoParamsQuery struct{}

type askQuery struct {
	Collection string  `json:"collection"`
	TokenID    TokenID `json:"token_id"`
}

type asksQuery struct {
	Collection   string                 `json:"collection"`
	QueryOptions *QueryOptions[TokenID] `json:"query_options,omitempty"`
}

type asksByPriceQuery struct {
	Collection   string                          `json:"collection"`
	Denom        Denom                           `json:"denom"`
	QueryOptions *QueryOptions[PriceTokenCursor] `json:"query_options,omitempty"`
}

type asksBySellerQuery struct {
	Seller       string                               `json:"seller"`
	QueryOptions *QueryOptions[CollectionTokenCursor] `json:"query_options,omitempty"`
}

type asksByExpirationQuery struct {
	QueryOptions *QueryOptions[AskExpirationCursor] `json:"query_options,omitempty"`
}

type offerQuery struct {
	Collection string  `json:"collection"`
	TokenID    TokenID `json:"token_id"`
	Bidder     string  `json:"bidder"`
}

type offersByCollectionQuery struct {
	Collection   string                          `json:"collection"`
	QueryOptions *QueryOptions[TokenBidderCursor] `json:"query_options,omitempty"`
}

type offersByTokenPriceQuery struct {
	Collection   string                           `json:"collection"`
	TokenID      TokenID                          `json:"token_id"`
	Denom        Denom                            `json:"denom"`
	QueryOptions *QueryOptions[PriceBidderCursor] `json:"query_options,omitempty"`
}

type offersByBidderQuery struct {
	Bidder       string                               `json:"bidder"`
	QueryOptions *QueryOptions[CollectionTokenCursor] `json:"query_options,omitempty"`
}

type offersByExpirationQuery struct {
	QueryOptions *QueryOptions[OfferExpirationCursor] `json:"query_options,omitempty"`
}

type collectionOfferQuery struct {
	Collection string `json:"collection"`
	Bidder     string `json:"bidder"`
}

type collectionOffersByPriceQuery struct {
	Collection   string                           `json:"collection"`
	Denom        Denom                            `json:"denom"`
	QueryOptions *QueryOptions[PriceBidderCursor] `json:"query_options,omitempty"`
}

type collectionOffersByBidderQuery struct {
	Bidder       string                `json:"bidder"`
	QueryOptions *QueryOptions[string] `json:"query_options,omitempty"`
}

type collectionOffersByExpirationQuery struct {
	QueryOptions *QueryOptions[CollectionOfferExpirationCursor] `json:"query_options,omitempty"`
}

type emptyQuery struct{}

// Sudo payloads.

// UpdateParamsMsg is a patch: omitted fields keep their on-chain value. The
// hand-built object keeps omitted keys out of the wire JSON entirely.
type UpdateParamsMsg struct {
	FairBurn                           types.Optional[string]
	ListingFee                         types.Optional[types.Coin]
	AskExpiry                          types.Optional[ExpiryRange]
	OfferExpiry                        types.Optional[ExpiryRange]
	Operators                          types.Optional[[]string]
	MaxAsksRemovedPerBlock             types.Optional[uint32]
	MaxOffersRemovedPerBlock           types.Optional[uint32]
	MaxCollectionOffersRemovedPerBlock types.Optional[uint32]
	TradingFeeBps                      types.Optional[uint64]
	MaxFindersFeeBps                   types.Optional[uint64]
	RemovalRewardBps                   types.Optional[uint64]
}

func (m UpdateParamsMsg) MarshalJSON() ([]byte, error) {
	obj := map[string]json.RawMessage{}
	fields := []struct {
		key    string
		append func(map[string]json.RawMessage, string) error
	}{
		{"fair_burn", m.FairBurn.AppendTo},
		{"listing_fee", m.ListingFee.AppendTo},
		{"ask_expiry", m.AskExpiry.AppendTo},
		{"offer_expiry", m.OfferExpiry.AppendTo},
		{"operators", m.Operators.AppendTo},
		{"max_asks_removed_per_block", m.MaxAsksRemovedPerBlock.AppendTo},
		{"max_offers_removed_per_block", m.MaxOffersRemovedPerBlock.AppendTo},
		{"max_collection_offers_removed_per_block", m.MaxCollectionOffersRemovedPerBlock.AppendTo},
		{"trading_fee_bps", m.TradingFeeBps.AppendTo},
		{"max_finders_fee_bps", m.MaxFindersFeeBps.AppendTo},
		{"removal_reward_bps", m.RemovalRewardBps.AppendTo},
	}
	for _, f := range fields {
		if err := f.append(obj, f.key); err != nil {
			return nil, err
		}
	}
	return json.Marshal(obj)
}

// DenomPriceRange serializes as the wire tuple [denom, {min, max}].
type DenomPriceRange struct {
	Denom      Denom
	PriceRange PriceRange
}

func (d DenomPriceRange) MarshalJSON() ([]byte, error) {
	return marshalTuple(d.Denom, d.PriceRange)
}

type AddDenomsMsg struct {
	PriceRanges []DenomPriceRange `json:"price_ranges"`
}

type RemoveDenomsMsg struct {
	Denoms []Denom `json:"denoms"`
}

type HookMsg struct {
	Hook string `json:"hook"`
}
