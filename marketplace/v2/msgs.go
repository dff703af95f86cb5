package v2

import (
	"encoding/json"

	"github.com/public-awesome/marketplace/types"
)

// Execute payloads.

type SetAskMsg struct {
	SaleType       SaleType        `json:"sale_type"`
	Collection     string          `json:"collection"`
	TokenID        uint32          `json:"token_id"`
	Price          types.Coin      `json:"price"`
	FundsRecipient *string         `json:"funds_recipient,omitempty"`
	ReserveFor     *string         `json:"reserve_for,omitempty"`
	FindersFeeBps  *uint64         `json:"finders_fee_bps,omitempty"`
	Expires        types.Timestamp `json:"expires"`
}

type RemoveAskMsg struct {
	Collection string `json:"collection"`
	TokenID    uint32 `json:"token_id"`
}

type UpdateAskPriceMsg struct {
	Collection string     `json:"collection"`
	TokenID    uint32     `json:"token_id"`
	Price      types.Coin `json:"price"`
}

type SetBidMsg struct {
	SaleType      SaleType        `json:"sale_type"`
	Collection    string          `json:"collection"`
	TokenID       uint32          `json:"token_id"`
	Finder        *string         `json:"finder,omitempty"`
	FindersFeeBps *uint64         `json:"finders_fee_bps,omitempty"`
	Expires       types.Timestamp `json:"expires"`
}

type RemoveBidMsg struct {
	Collection string `json:"collection"`
	TokenID    uint32 `json:"token_id"`
}

type AcceptBidMsg struct {
	Collection string  `json:"collection"`
	TokenID    uint32  `json:"token_id"`
	Bidder     string  `json:"bidder"`
	Finder     *string `json:"finder,omitempty"`
}

type SetCollectionBidMsg struct {
	Collection    string          `json:"collection"`
	FindersFeeBps *uint64         `json:"finders_fee_bps,omitempty"`
	Expires       types.Timestamp `json:"expires"`
}

type RemoveCollectionBidMsg struct {
	Collection string `json:"collection"`
}

type AcceptCollectionBidMsg struct {
	Collection string  `json:"collection"`
	TokenID    uint32  `json:"token_id"`
	Bidder     string  `json:"bidder"`
	Finder     *string `json:"finder,omitempty"`
}

// SyncAskMsg asks an operator to reconcile an ask's active state with actual
// NFT ownership.
type SyncAskMsg struct {
	Collection string `json:"collection"`
	TokenID    uint32 `json:"token_id"`
}

type RemoveStaleAskMsg struct {
	Collection string `json:"collection"`
	TokenID    uint32 `json:"token_id"`
}

type RemoveStaleBidMsg struct {
	Collection string `json:"collection"`
	TokenID    uint32 `json:"token_id"`
	Bidder     string `json:"bidder"`
}

type RemoveStaleCollectionBidMsg struct {
	Collection string `json:"collection"`
	Bidder     string `json:"bidder"`
}

// Query payloads. Limits are omitted when the caller does not set one; the
// contract applies its own default and maximum page size.

type askQuery struct {
	Collection string `json:"collection"`
	TokenID    uint32 `json:"token_id"`
}

type asksQuery struct {
	Collection      string  `json:"collection"`
	IncludeInactive *bool   `json:"include_inactive,omitempty"`
	StartAfter      *uint32 `json:"start_after,omitempty"`
	Limit           *uint32 `json:"limit,omitempty"`
}

type reverseAsksQuery struct {
	Collection      string  `json:"collection"`
	IncludeInactive *bool   `json:"include_inactive,omitempty"`
	StartBefore     *uint32 `json:"start_before,omitempty"`
	Limit           *uint32 `json:"limit,omitempty"`
}

type asksSortedByPriceQuery struct {
	Collection      string     `json:"collection"`
	IncludeInactive *bool      `json:"include_inactive,omitempty"`
	StartAfter      *AskOffset `json:"start_after,omitempty"`
	Limit           *uint32    `json:"limit,omitempty"`
}

type reverseAsksSortedByPriceQuery struct {
	Collection      string     `json:"collection"`
	IncludeInactive *bool      `json:"include_inactive,omitempty"`
	StartBefore     *AskOffset `json:"start_before,omitempty"`
	Limit           *uint32    `json:"limit,omitempty"`
}

type askCountQuery struct {
	Collection string `json:"collection"`
}

type asksBySellerQuery struct {
	Seller          string            `json:"seller"`
	IncludeInactive *bool             `json:"include_inactive,omitempty"`
	StartAfter      *CollectionOffset `json:"start_after,omitempty"`
	Limit           *uint32           `json:"limit,omitempty"`
}

type collectionsQuery struct {
	StartAfter *string `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

type bidQuery struct {
	Collection string `json:"collection"`
	TokenID    uint32 `json:"token_id"`
	Bidder     string `json:"bidder"`
}

type bidsQuery struct {
	Collection string  `json:"collection"`
	TokenID    uint32  `json:"token_id"`
	StartAfter *string `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

type bidsByBidderQuery struct {
	Bidder     string            `json:"bidder"`
	StartAfter *CollectionOffset `json:"start_after,omitempty"`
	Limit      *uint32           `json:"limit,omitempty"`
}

type bidsByBidderSortedByExpirationQuery struct {
	Bidder     string            `json:"bidder"`
	StartAfter *CollectionOffset `json:"start_after,omitempty"`
	Limit      *uint32           `json:"limit,omitempty"`
}

type bidsSortedByPriceQuery struct {
	Collection string     `json:"collection"`
	StartAfter *BidOffset `json:"start_after,omitempty"`
	Limit      *uint32    `json:"limit,omitempty"`
}

type reverseBidsSortedByPriceQuery struct {
	Collection  string     `json:"collection"`
	StartBefore *BidOffset `json:"start_before,omitempty"`
	Limit       *uint32    `json:"limit,omitempty"`
}

type collectionBidQuery struct {
	Collection string `json:"collection"`
	Bidder     string `json:"bidder"`
}

type collectionBidsByBidderQuery struct {
	Bidder     string            `json:"bidder"`
	StartAfter *CollectionOffset `json:"start_after,omitempty"`
	Limit      *uint32           `json:"limit,omitempty"`
}

type collectionBidsByBidderSortedByExpirationQuery struct {
	Bidder     string               `json:"bidder"`
	StartAfter *CollectionBidOffset `json:"start_after,omitempty"`
	Limit      *uint32              `json:"limit,omitempty"`
}

type collectionBidsSortedByPriceQuery struct {
	Collection string               `json:"collection"`
	StartAfter *CollectionBidOffset `json:"start_after,omitempty"`
	Limit      *uint32              `json:"limit,omitempty"`
}

type reverseCollectionBidsSortedByPriceQuery struct {
	Collection  string               `json:"collection"`
	StartBefore *CollectionBidOffset `json:"start_before,omitempty"`
	Limit       *uint32              `json:"limit,omitempty"`
}

type emptyQuery struct{}

// UpdateParamsMsg is the V2 privileged patch message. Omitted fields never
// appear as JSON keys; explicit nulls are sent as null.
type UpdateParamsMsg struct {
	AskExpiry             types.Optional[ExpiryBounds]  `json:"-"`
	BidExpiry             types.Optional[ExpiryBounds]  `json:"-"`
	Operators             types.Optional[[]string]      `json:"-"`
	TradingFeeBasisPoints types.Optional[types.Decimal] `json:"-"`
}

func (m UpdateParamsMsg) MarshalJSON() ([]byte, error) {
	obj := map[string]json.RawMessage{}
	if err := m.AskExpiry.AppendTo(obj, "ask_expiry"); err != nil {
		return nil, err
	}
	if err := m.BidExpiry.AppendTo(obj, "bid_expiry"); err != nil {
		return nil, err
	}
	if err := m.Operators.AppendTo(obj, "operators"); err != nil {
		return nil, err
	}
	if err := m.TradingFeeBasisPoints.AppendTo(obj, "trading_fee_basis_points"); err != nil {
		return nil, err
	}
	return json.Marshal(obj)
}

type HookMsg struct {
	Hook string `json:"hook"`
}
