package v3

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/public-awesome/marketplace/cosmos"
	"github.com/public-awesome/marketplace/types"
)

func TestCursorTuples(t *testing.T) {
	out, err := json.Marshal(PriceTokenCursor{Price: "1000000000000000000000", TokenID: "42"})
	require.NoError(t, err)
	// Price travels as a bare JSON number inside cursor tuples.
	require.Equal(t, `[1000000000000000000000,"42"]`, string(out))

	out, err = json.Marshal(CollectionTokenCursor{Collection: "stars1col", TokenID: "42"})
	require.NoError(t, err)
	require.Equal(t, `["stars1col","42"]`, string(out))

	out, err = json.Marshal(AskExpirationCursor{ExpiresAt: 1790000000, Collection: "stars1col", TokenID: "42"})
	require.NoError(t, err)
	require.Equal(t, `[1790000000,"stars1col","42"]`, string(out))

	out, err = json.Marshal(OfferExpirationCursor{
		ExpiresAt: 1790000000, Collection: "stars1col", TokenID: "42", Bidder: "stars1bidder",
	})
	require.NoError(t, err)
	require.Equal(t, `[1790000000,"stars1col","42","stars1bidder"]`, string(out))

	out, err = json.Marshal(PriceBidderCursor{Price: "500", Bidder: "stars1bidder"})
	require.NoError(t, err)
	require.Equal(t, `[500,"stars1bidder"]`, string(out))

	_, err = json.Marshal(PriceTokenCursor{Price: "1.5", TokenID: "42"})
	require.Error(t, err, "non-integer price must not reach the wire")
}

func TestQueryOptionsOmitsUnsetFields(t *testing.T) {
	out, err := json.Marshal(asksByPriceQuery{Collection: "stars1col", Denom: "ustars"})
	require.NoError(t, err)
	require.JSONEq(t, `{"collection":"stars1col","denom":"ustars"}`, string(out))

	desc := true
	limit := uint32(5)
	cursor := PriceTokenCursor{Price: "100", TokenID: "7"}
	out, err = json.Marshal(asksByPriceQuery{
		Collection: "stars1col",
		Denom:      "ustars",
		QueryOptions: &QueryOptions[PriceTokenCursor]{
			Descending: &desc,
			StartAfter: &cursor,
			Limit:      &limit,
		},
	})
	require.NoError(t, err)
	require.JSONEq(t, `{
		"collection":"stars1col","denom":"ustars",
		"query_options":{"descending":true,"start_after":[100,"7"],"limit":5}
	}`, string(out))
}

func TestUpdateParamsPatch(t *testing.T) {
	fee, err := types.NewCoin("500000", "ustars")
	require.NoError(t, err)
	msg := UpdateParamsMsg{
		ListingFee:    types.Some(fee),
		TradingFeeBps: types.Some(uint64(200)),
		Operators:     types.Null[[]string](),
	}
	out, err := json.Marshal(cosmos.WasmMsg{Op: "update_params", Payload: msg})
	require.NoError(t, err)

	var envelope map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &envelope))
	patch := envelope["update_params"]

	require.JSONEq(t, `{"amount":"500000","denom":"ustars"}`, string(patch["listing_fee"]))
	require.JSONEq(t, `200`, string(patch["trading_fee_bps"]))
	require.Equal(t, json.RawMessage("null"), patch["operators"])
	require.NotContains(t, patch, "fair_burn")
	require.NotContains(t, patch, "ask_expiry")
	require.NotContains(t, patch, "max_finders_fee_bps")
}

func TestDenomPriceRangeTuple(t *testing.T) {
	msg := AddDenomsMsg{PriceRanges: []DenomPriceRange{{
		Denom:      "ustars",
		PriceRange: PriceRange{Min: "5000000", Max: "10000000000000"},
	}}}
	out, err := json.Marshal(msg)
	require.NoError(t, err)
	require.JSONEq(t, `{"price_ranges":[["ustars",{"min":"5000000","max":"10000000000000"}]]}`, string(out))
}

func TestExpiryRangeValidate(t *testing.T) {
	require.NoError(t, ExpiryRange{Min: 60, Max: 3600}.Validate())
	require.Error(t, ExpiryRange{Min: 3600, Max: 60}.Validate())
}

func TestSetAskMsgOptionalExpiry(t *testing.T) {
	price, err := types.NewCoin("100000000", "ustars")
	require.NoError(t, err)
	out, err := json.Marshal(SetAskMsg{Collection: "stars1col", TokenID: "42", Price: price})
	require.NoError(t, err)
	var obj map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &obj))
	require.NotContains(t, obj, "expires")
	require.NotContains(t, obj, "reserve_for")
}
