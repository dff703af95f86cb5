package v1

import (
	"encoding/json"

	"github.com/public-awesome/marketplace/types"
)

// Execute payloads. Each maps to one {"<op>": {...}} envelope.

type SetAskMsg struct {
	Collection     string     `json:"collection"`
	TokenID        uint32     `json:"token_id"`
	Price          types.Coin `json:"price"`
	FundsRecipient *string    `json:"funds_recipient,omitempty"`
}

type RemoveAskMsg struct {
	Collection string `json:"collection"`
	TokenID    uint32 `json:"token_id"`
}

type SetBidMsg struct {
	Collection string `json:"collection"`
	TokenID    uint32 `json:"token_id"`
}

type RemoveBidMsg struct {
	Collection string `json:"collection"`
	TokenID    uint32 `json:"token_id"`
}

type AcceptBidMsg struct {
	Collection string `json:"collection"`
	TokenID    uint32 `json:"token_id"`
	Bidder     string `json:"bidder"`
}

// Query payloads.

type currentAskQuery struct {
	Collection string `json:"collection"`
	TokenID    uint32 `json:"token_id"`
}

type asksQuery struct {
	Collection string  `json:"collection"`
	StartAfter *uint32 `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

type askCountQuery struct {
	Collection string `json:"collection"`
}

type asksBySellerQuery struct {
	Seller string `json:"seller"`
}

type listedCollectionsQuery struct {
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
	Bidder string `json:"bidder"`
}

type paramsQuery struct{}

// UpdateParamsMsg is the V1 privileged patch message. Fields the caller does
// not set are omitted from the wire object so the contract leaves them
// untouched; explicit nulls clear nothing here but are preserved as sent.
type UpdateParamsMsg struct {
	AskExpiry  types.Optional[ExpiryBounds] `json:"-"`
	BidExpiry  types.Optional[ExpiryBounds] `json:"-"`
	Operators  types.Optional[[]string]     `json:"-"`
	TradingFee types.Optional[TradingFeePercent] `json:"-"`
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
	if err := m.TradingFee.AppendTo(obj, "trading_fee"); err != nil {
		return nil, err
	}
	return json.Marshal(obj)
}

type HookMsg struct {
	Hook string `json:"hook"`
}
