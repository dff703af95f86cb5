package cosmos

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/public-awesome/marketplace/types"
)

func TestWasmMsgEnvelope(t *testing.T) {
	msg := WasmMsg{Op: "set_ask", Payload: map[string]interface{}{"token_id": 42}}
	out, err := json.Marshal(msg)
	require.NoError(t, err)
	require.JSONEq(t, `{"set_ask":{"token_id":42}}`, string(out))
}

func TestFeeMarshal(t *testing.T) {
	out, err := json.Marshal(AutoFee())
	require.NoError(t, err)
	require.JSONEq(t, `"auto"`, string(out))

	out, err = json.Marshal(GasPriceFee("0.025ustars"))
	require.NoError(t, err)
	require.JSONEq(t, `{"gas_price":"0.025ustars"}`, string(out))

	coin, err := types.NewCoin("5000", "ustars")
	require.NoError(t, err)
	out, err = json.Marshal(FixedFee(200000, coin))
	require.NoError(t, err)
	require.JSONEq(t, `{"amount":[{"amount":"5000","denom":"ustars"}],"gas":"200000"}`, string(out))
}

func TestExecuteResultFirstAttribute(t *testing.T) {
	res := &ExecuteResult{
		TxHash: "ABC",
		Events: []Event{
			{Type: "message", Attributes: []EventAttribute{{Key: "action", Value: "execute"}}},
			{Type: "wasm", Attributes: []EventAttribute{
				{Key: "token_id", Value: "42"},
				{Key: "seller", Value: "stars1seller"},
			}},
		},
	}
	v, ok := res.FirstAttribute("wasm", "token_id")
	require.True(t, ok)
	require.Equal(t, "42", v)

	_, ok = res.FirstAttribute("wasm", "missing")
	require.False(t, ok)
	_, ok = res.FirstAttribute("transfer", "token_id")
	require.False(t, ok)
}
