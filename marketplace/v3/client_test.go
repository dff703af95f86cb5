package v3

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/public-awesome/marketplace/cosmos"
	"github.com/public-awesome/marketplace/types"
)

// fakeContract answers V3 queries: point lookups respond null on absence,
// listings respond bare JSON arrays. It also records the last query_options
// envelope it received.
type fakeContract struct {
	asks     []Ask
	offers   []Offer
	lastOpts json.RawMessage
}

func (f *fakeContract) GetBalance(ctx context.Context, address, denom string) (types.Coin, error) {
	return types.Coin{Amount: "0", Denom: denom}, nil
}

func (f *fakeContract) ChainID(ctx context.Context) (string, error) { return "testing-1", nil }

func (f *fakeContract) QueryContractSmart(ctx context.Context, contractAddr string, queryMsg interface{}, result interface{}) error {
	raw, err := json.Marshal(queryMsg)
	if err != nil {
		return err
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return err
	}
	for op, payload := range envelope {
		var probe struct {
			QueryOptions json.RawMessage `json:"query_options"`
		}
		if err := json.Unmarshal(payload, &probe); err == nil {
			f.lastOpts = probe.QueryOptions
		}
		switch op {
		case "ask":
			var q askQuery
			if err := json.Unmarshal(payload, &q); err != nil {
				return err
			}
			for i := range f.asks {
				if f.asks[i].Collection == q.Collection && f.asks[i].TokenID == q.TokenID {
					return respond(result, &f.asks[i])
				}
			}
			return nil // null response, pointer stays nil
		case "asks":
			return respond(result, f.asks)
		case "offers_by_token_price":
			return respond(result, f.offers)
		default:
			return &cosmos.RemoteRejection{Code: 2, Message: "unknown query: " + op}
		}
	}
	return nil
}

func respond(result, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, result)
}

func validAsk(tokenID TokenID) Ask {
	return Ask{
		Collection: "stars1col",
		TokenID:    tokenID,
		Seller:     "stars1seller",
		Price:      types.Coin{Amount: "1000000", Denom: "ustars"},
	}
}

func TestAskNotFoundIsNil(t *testing.T) {
	contract := &fakeContract{asks: []Ask{validAsk("1")}}
	client := NewQueryClient(contract, "stars1mkt")

	ask, err := client.Ask(context.Background(), "stars1col", "1")
	require.NoError(t, err)
	require.NotNil(t, ask)
	require.Equal(t, TokenID("1"), ask.TokenID)

	missing, err := client.Ask(context.Background(), "stars1col", "999")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestAsksDecodesBareArray(t *testing.T) {
	contract := &fakeContract{asks: []Ask{validAsk("1"), validAsk("2")}}
	client := NewQueryClient(contract, "stars1mkt")

	asks, err := client.Asks(context.Background(), "stars1col", nil)
	require.NoError(t, err)
	require.Len(t, asks, 2)
	require.Nil(t, contract.lastOpts, "omitted query options must not appear on the wire")
}

func TestAsksQueryOptionsOnTheWire(t *testing.T) {
	contract := &fakeContract{}
	client := NewQueryClient(contract, "stars1mkt")

	desc := true
	limit := uint32(5)
	cursor := TokenID("7")
	_, err := client.Asks(context.Background(), "stars1col", &QueryOptions[TokenID]{
		Descending: &desc,
		StartAfter: &cursor,
		Limit:      &limit,
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"descending":true,"start_after":"7","limit":5}`, string(contract.lastOpts))
}

func TestOffersByTokenPriceCursorEncoding(t *testing.T) {
	contract := &fakeContract{}
	client := NewQueryClient(contract, "stars1mkt")

	_, err := client.OffersByTokenPrice(context.Background(), "stars1col", "42", "ustars",
		&QueryOptions[PriceBidderCursor]{
			StartAfter: &PriceBidderCursor{Price: types.Uint128("1000000000000000000000"), Bidder: "stars1bidder"},
		})
	require.NoError(t, err)
	// The price element rides as a bare JSON number even past float precision.
	require.JSONEq(t, `{"start_after":[1000000000000000000000,"stars1bidder"]}`, string(contract.lastOpts))
}

func TestAskPageValidationFailure(t *testing.T) {
	bad := validAsk("1")
	bad.Price.Amount = "" // fails Uint128 validation
	contract := &fakeContract{asks: []Ask{bad}}
	client := NewQueryClient(contract, "stars1mkt")

	_, err := client.Asks(context.Background(), "stars1col", nil)
	var mismatch *cosmos.SchemaMismatch
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, "asks", mismatch.Op)
}
