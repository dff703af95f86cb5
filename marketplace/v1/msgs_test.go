package v1

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/public-awesome/marketplace/cosmos"
	"github.com/public-awesome/marketplace/types"
)

func TestUpdateParamsOmitVsNull(t *testing.T) {
	msg := UpdateParamsMsg{
		AskExpiry:  types.Some(ExpiryBounds{86400, 15552000}),
		TradingFee: types.Null[TradingFeePercent](),
		// BidExpiry and Operators unset.
	}
	out, err := json.Marshal(cosmos.WasmMsg{Op: "update_params", Payload: msg})
	require.NoError(t, err)

	var envelope map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &envelope))
	patch := envelope["update_params"]

	require.JSONEq(t, `[86400,15552000]`, string(patch["ask_expiry"]))
	require.Equal(t, json.RawMessage("null"), patch["trading_fee"])
	require.NotContains(t, patch, "bid_expiry")
	require.NotContains(t, patch, "operators")
}

func TestTradingFeeIsNumberOnTheWire(t *testing.T) {
	// The first-generation fee is a plain number, unlike the later decimal
	// string and integer basis point forms.
	params := SudoParams{TradingFeePercent: 2.5}
	out, err := json.Marshal(params)
	require.NoError(t, err)
	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.JSONEq(t, `2.5`, string(decoded["trading_fee_percent"]))
}

func TestSetAskWire(t *testing.T) {
	price, err := types.NewCoin("100000000", "ustars")
	require.NoError(t, err)
	out, err := json.Marshal(cosmos.WasmMsg{Op: "set_ask", Payload: SetAskMsg{
		Collection: "stars1col",
		TokenID:    42,
		Price:      price,
	}})
	require.NoError(t, err)
	require.JSONEq(t, `{"set_ask":{
		"collection":"stars1col",
		"token_id":42,
		"price":{"amount":"100000000","denom":"ustars"}
	}}`, string(out))
}
