// Package v1 is the client for the first generation of the marketplace
// contract. Its wire schema differs from later generations: the trading fee is
// a percent carried as a JSON number, expiry bounds are flat [min, max]
// tuples, and listing queries paginate on single-dimension keys.
package v1

import (
	"github.com/pkg/errors"

	"github.com/public-awesome/marketplace/types"
)

// TradingFeePercent is the V1 fee representation: a percentage as a wire
// number. Later generations moved to basis points; the type identity keeps the
// two from being confused.
type TradingFeePercent float64

// ExpiryBounds is the V1 [min, max] seconds tuple.
type ExpiryBounds [2]uint64

// Ask is the V1 listing record.
type Ask struct {
	Seller         string        `json:"seller"`
	Price          types.Uint128 `json:"price"`
	FundsRecipient *string       `json:"funds_recipient,omitempty"`
}

func (a *Ask) Validate() error {
	if a.Seller == "" {
		return errors.New("missing seller")
	}
	return a.Price.Validate()
}

// AskInfo is the per-token projection returned by the asks listing.
type AskInfo struct {
	TokenID        uint32     `json:"token_id"`
	Price          types.Coin `json:"price"`
	FundsRecipient *string    `json:"funds_recipient,omitempty"`
}

// BidInfo is the per-token projection returned by the bids listing.
type BidInfo struct {
	TokenID uint32     `json:"token_id"`
	Price   types.Coin `json:"price"`
}

// SudoParams is the V1 contract configuration.
type SudoParams struct {
	AskExpiry         ExpiryBounds      `json:"ask_expiry"`
	BidExpiry         ExpiryBounds      `json:"bid_expiry"`
	Operators         []string          `json:"operators"`
	TradingFeePercent TradingFeePercent `json:"trading_fee_percent"`
}

type CurrentAskResponse struct {
	Ask *Ask `json:"ask"`
}

type AsksResponse struct {
	Asks []AskInfo `json:"asks"`
}

type AskCountResponse struct {
	Count uint64 `json:"count"`
}

type BidsResponse struct {
	Bids []BidInfo `json:"bids"`
}

type CollectionsResponse struct {
	Collections []string `json:"collections"`
}

type ParamResponse struct {
	Params SudoParams `json:"params"`
}
