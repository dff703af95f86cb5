package cosmos

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/public-awesome/marketplace/types"
)

func TestNewHTTPClientRejectsBadEndpoint(t *testing.T) {
	for _, bad := range []string{"", "not-a-url", "ftp://host", "http://"} {
		_, err := NewHTTPClient(bad)
		var inputErr *InputError
		require.ErrorAs(t, err, &inputErr, bad)
	}
}

func TestQueryContractSmart(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"data":{"count":7}}`))
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL)
	require.NoError(t, err)

	var resp struct {
		Count int `json:"count"`
	}
	err = client.QueryContractSmart(context.Background(), "stars1contract",
		WasmMsg{Op: "ask_count", Payload: map[string]string{"collection": "stars1col"}}, &resp)
	require.NoError(t, err)
	require.Equal(t, 7, resp.Count)

	// The query message rides base64url-encoded in the path.
	parts := strings.Split(gotPath, "/")
	encoded := parts[len(parts)-1]
	decoded, err := base64.URLEncoding.DecodeString(encoded)
	require.NoError(t, err)
	require.JSONEq(t, `{"ask_count":{"collection":"stars1col"}}`, string(decoded))
}

func TestQueryContractSmartNullLeavesPointerNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":null}`))
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL)
	require.NoError(t, err)

	var ask *struct{ Seller string }
	err = client.QueryContractSmart(context.Background(), "stars1contract", WasmMsg{Op: "ask"}, &ask)
	require.NoError(t, err)
	require.Nil(t, ask)
}

func TestQueryContractSmartRemoteRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":3,"message":"ask expired: execute wasm contract failed"}`))
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL)
	require.NoError(t, err)

	err = client.QueryContractSmart(context.Background(), "stars1contract", WasmMsg{Op: "ask"}, nil)
	var rejection *RemoteRejection
	require.ErrorAs(t, err, &rejection)
	// The contract's message text survives verbatim.
	require.Equal(t, "ask expired: execute wasm contract failed", rejection.Message)
	require.Equal(t, 3, rejection.Code)
}

func TestGetBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "ustars", r.URL.Query().Get("denom"))
		w.Write([]byte(`{"balance":{"amount":"1500000","denom":"ustars"}}`))
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL)
	require.NoError(t, err)

	coin, err := client.GetBalance(context.Background(), "stars1addr", "ustars")
	require.NoError(t, err)
	require.Equal(t, types.Uint128("1500000"), coin.Amount)
}

func TestGetBalanceUnknownDenomIsZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"balance":{"amount":"","denom":""}}`))
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL)
	require.NoError(t, err)

	coin, err := client.GetBalance(context.Background(), "stars1addr", "ustars")
	require.NoError(t, err)
	require.Equal(t, types.Coin{Amount: "0", Denom: "ustars"}, coin)
}

func TestExecutePostsEnvelope(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.True(t, strings.HasSuffix(r.URL.Path, "/txs"))
		buf, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		gotBody = buf
		w.Write([]byte(`{"tx_hash":"ABC123","height":100,"events":[{"type":"wasm","attributes":[{"key":"token_id","value":"42"}]}]}`))
	}))
	defer srv.Close()

	queries, err := NewHTTPClient(srv.URL)
	require.NoError(t, err)
	client, err := NewHTTPSigningClient(queries, srv.URL, "stars1sender")
	require.NoError(t, err)

	funds, err := types.NewCoin("100000000", "ustars")
	require.NoError(t, err)
	res, err := client.Execute(context.Background(), "stars1contract",
		WasmMsg{Op: "place_bid", Payload: map[string]string{"collection": "stars1col", "token_id": "42"}},
		ExecOptions{Fee: AutoFee(), Memo: "place-bid", Funds: []types.Coin{funds}})
	require.NoError(t, err)
	require.Equal(t, "ABC123", res.TxHash)

	tokenID, ok := res.FirstAttribute("wasm", "token_id")
	require.True(t, ok)
	require.Equal(t, "42", tokenID)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(gotBody, &envelope))
	require.JSONEq(t, `"stars1sender"`, string(envelope["sender"]))
	require.JSONEq(t, `"stars1contract"`, string(envelope["contract"]))
	require.JSONEq(t, `"auto"`, string(envelope["fee"]))
	require.JSONEq(t, `"place-bid"`, string(envelope["memo"]))
	require.JSONEq(t, `[{"amount":"100000000","denom":"ustars"}]`, string(envelope["funds"]))
	require.JSONEq(t, `{"place_bid":{"collection":"stars1col","token_id":"42"}}`, string(envelope["msg"]))
}

func TestExecuteTimeoutIsIndeterminateAndNotRetried(t *testing.T) {
	var calls int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	queries, err := NewHTTPClient(srv.URL, WithTimeout(20*time.Millisecond))
	require.NoError(t, err)
	client, err := NewHTTPSigningClient(queries, srv.URL, "stars1sender")
	require.NoError(t, err)

	_, err = client.Execute(context.Background(), "stars1contract",
		WasmMsg{Op: "place_bid"}, ExecOptions{Fee: AutoFee()})
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	require.True(t, transportErr.Indeterminate)
	require.Equal(t, int64(1), atomic.LoadInt64(&calls))
}

func TestExecuteRejectionSurfacesContractMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"code":5,"message":"bid expired"}`))
	}))
	defer srv.Close()

	queries, err := NewHTTPClient(srv.URL)
	require.NoError(t, err)
	client, err := NewHTTPSigningClient(queries, srv.URL, "stars1sender")
	require.NoError(t, err)

	_, err = client.Execute(context.Background(), "stars1contract",
		WasmMsg{Op: "accept_bid"}, ExecOptions{Fee: AutoFee()})
	var rejection *RemoteRejection
	require.ErrorAs(t, err, &rejection)
	require.Equal(t, "bid expired", rejection.Message)
}

func TestExecuteMissingTxHashIsSchemaMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	queries, err := NewHTTPClient(srv.URL)
	require.NoError(t, err)
	client, err := NewHTTPSigningClient(queries, srv.URL, "stars1sender")
	require.NoError(t, err)

	_, err = client.Execute(context.Background(), "stars1contract",
		WasmMsg{Op: "set_ask"}, ExecOptions{Fee: AutoFee()})
	var mismatch *SchemaMismatch
	require.ErrorAs(t, err, &mismatch)
}
