package reserveauction

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/public-awesome/marketplace/cosmos"
	"github.com/public-awesome/marketplace/types"
)

func TestUpdateParamsPatch(t *testing.T) {
	fee, err := types.NewCoin("1000000", "ustars")
	require.NoError(t, err)
	msg := UpdateParamsMsg{
		CreateAuctionFee:   types.Some(fee),
		MinBidIncrementBps: types.Some(uint64(100)),
		FairBurn:           types.Null[string](),
	}
	out, err := json.Marshal(cosmos.WasmMsg{Op: "update_params", Payload: msg})
	require.NoError(t, err)

	var envelope map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &envelope))
	patch := envelope["update_params"]

	require.JSONEq(t, `{"amount":"1000000","denom":"ustars"}`, string(patch["create_auction_fee"]))
	require.JSONEq(t, `100`, string(patch["min_bid_increment_bps"]))
	require.Equal(t, json.RawMessage("null"), patch["fair_burn"])
	require.NotContains(t, patch, "marketplace")
	require.NotContains(t, patch, "halt_buffer_duration")
}

func TestSellerTokenCursorTuple(t *testing.T) {
	out, err := json.Marshal(SellerTokenCursor{Collection: "stars1col", TokenID: "42"})
	require.NoError(t, err)
	require.Equal(t, `["stars1col","42"]`, string(out))
}

func TestCreateAuctionWire(t *testing.T) {
	price, err := types.NewCoin("5000000", "ustars")
	require.NoError(t, err)
	out, err := json.Marshal(cosmos.WasmMsg{Op: "create_auction", Payload: CreateAuctionMsg{
		Collection:   "stars1col",
		TokenID:      "42",
		ReservePrice: price,
		Duration:     86400,
	}})
	require.NoError(t, err)
	require.JSONEq(t, `{"create_auction":{
		"collection":"stars1col",
		"token_id":"42",
		"reserve_price":{"amount":"5000000","denom":"ustars"},
		"duration":86400
	}}`, string(out))
}

func TestAuctionDecode(t *testing.T) {
	raw := `{
		"collection":"stars1col","token_id":"42","seller":"stars1seller",
		"reserve_price":{"amount":"5000000","denom":"ustars"},
		"start_time":"1756380000000000000","end_time":"1756466400000000000",
		"seller_funds_recipient":null,
		"high_bid":{"coin":{"amount":"6000000","denom":"ustars"},"bidder":"stars1bidder"},
		"first_bid_time":"1756380005000000000"
	}`
	var a Auction
	require.NoError(t, json.Unmarshal([]byte(raw), &a))
	require.NoError(t, a.Validate())
	require.Nil(t, a.SellerFundsRecipient)
	require.NotNil(t, a.HighBid)
	require.Equal(t, "stars1bidder", a.HighBid.Bidder)
}
