package cosmos

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/public-awesome/marketplace/types"
)

const defaultRequestTimeout = 15 * time.Second

// HTTPClient talks to a node's REST endpoint for read-only queries.
type HTTPClient struct {
	base string
	http *http.Client
}

func NewHTTPClient(endpoint string, options ...HTTPOption) (*HTTPClient, error) {
	u, err := url.Parse(endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, NewInputError("invalid node endpoint %q", endpoint)
	}
	c := &HTTPClient{
		base: strings.TrimRight(endpoint, "/"),
		http: &http.Client{Timeout: defaultRequestTimeout},
	}
	for _, opt := range options {
		opt(c)
	}
	return c, nil
}

type HTTPOption func(*HTTPClient)

func WithTimeout(d time.Duration) HTTPOption {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

func WithHTTPClient(hc *http.Client) HTTPOption {
	return func(c *HTTPClient) { c.http = hc }
}

func (c *HTTPClient) QueryContractSmart(ctx context.Context, contractAddr string, queryMsg interface{}, result interface{}) error {
	raw, err := json.Marshal(queryMsg)
	if err != nil {
		return errors.Wrap(err, "failed on encode query msg")
	}
	path := fmt.Sprintf("%s/cosmwasm/wasm/v1/contract/%s/smart/%s",
		c.base, url.PathEscape(contractAddr), base64.URLEncoding.EncodeToString(raw))

	body, err := c.get(ctx, path)
	if err != nil {
		return err
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &SchemaMismatch{Op: "query", Err: err}
	}
	if result == nil || len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, result); err != nil {
		return &SchemaMismatch{Op: "query", Err: err}
	}
	return nil
}

func (c *HTTPClient) GetBalance(ctx context.Context, address, denom string) (types.Coin, error) {
	path := fmt.Sprintf("%s/cosmos/bank/v1beta1/balances/%s/by_denom?denom=%s",
		c.base, url.PathEscape(address), url.QueryEscape(denom))
	body, err := c.get(ctx, path)
	if err != nil {
		return types.Coin{}, err
	}
	var envelope struct {
		Balance types.Coin `json:"balance"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return types.Coin{}, &SchemaMismatch{Op: "balance", Err: err}
	}
	if envelope.Balance.Denom == "" {
		// bank returns a zero coin for unknown denoms
		return types.Coin{Amount: "0", Denom: denom}, nil
	}
	return envelope.Balance, nil
}

func (c *HTTPClient) ChainID(ctx context.Context) (string, error) {
	body, err := c.get(ctx, c.base+"/cosmos/base/tendermint/v1beta1/node_info")
	if err != nil {
		return "", err
	}
	var envelope struct {
		DefaultNodeInfo struct {
			Network string `json:"network"`
		} `json:"default_node_info"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", &SchemaMismatch{Op: "node_info", Err: err}
	}
	return envelope.DefaultNodeInfo.Network, nil
}

func (c *HTTPClient) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed on build request")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, remoteError(resp.StatusCode, body)
	}
	return body, nil
}

// remoteError maps a non-200 node response to a typed error. The node wraps
// contract failures as {"code": N, "message": "..."} with the contract's
// message text intact.
func remoteError(status int, body []byte) error {
	var nodeErr struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &nodeErr); err == nil && nodeErr.Message != "" {
		return &RemoteRejection{Code: nodeErr.Code, Message: nodeErr.Message}
	}
	return &RemoteRejection{Code: status, Message: strings.TrimSpace(string(body))}
}

// HTTPSigningClient submits execute envelopes to a transaction broadcast
// gateway that owns key custody and signing. The gateway receives the wrapped
// request {sender, contract, msg, funds, fee, memo} and returns the tx hash
// and emitted events.
type HTTPSigningClient struct {
	*HTTPClient
	broadcastURL string
	sender       string
}

func NewHTTPSigningClient(queries *HTTPClient, broadcastEndpoint, sender string) (*HTTPSigningClient, error) {
	u, err := url.Parse(broadcastEndpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, NewInputError("invalid broadcast endpoint %q", broadcastEndpoint)
	}
	if sender == "" {
		return nil, NewInputError("empty sender address")
	}
	return &HTTPSigningClient{
		HTTPClient:   queries,
		broadcastURL: strings.TrimRight(broadcastEndpoint, "/") + "/txs",
		sender:       sender,
	}, nil
}

func (c *HTTPSigningClient) Sender() string { return c.sender }

// Execute submits one state-changing transaction. A timeout here is surfaced
// as an indeterminate transport error: the transaction may have been accepted,
// so it is never resubmitted by this client.
func (c *HTTPSigningClient) Execute(ctx context.Context, contractAddr string, execMsg interface{}, opts ExecOptions) (*ExecuteResult, error) {
	payload := map[string]interface{}{
		"sender":   c.sender,
		"contract": contractAddr,
		"msg":      execMsg,
		"fee":      opts.Fee,
	}
	if opts.Memo != "" {
		payload["memo"] = opts.Memo
	}
	if len(opts.Funds) > 0 {
		payload["funds"] = opts.Funds
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed on encode execute msg")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.broadcastURL, bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrap(err, "failed on build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Indeterminate: true, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Indeterminate: true, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, remoteError(resp.StatusCode, body)
	}

	var result ExecuteResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &SchemaMismatch{Op: "execute", Err: err}
	}
	if result.TxHash == "" {
		return nil, &SchemaMismatch{Op: "execute", Err: errors.New("missing tx_hash")}
	}
	return &result, nil
}
