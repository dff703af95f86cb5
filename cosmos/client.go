// Package cosmos defines the boundary to the remote ledger: a read-only
// smart-contract query client and a mutating execute client. Transaction
// signing and broadcast internals live behind these interfaces; this package
// only shapes requests and decodes responses.
package cosmos

import (
	"context"
	"encoding/json"

	"github.com/public-awesome/marketplace/types"
)

// QueryClient reads contract and bank state. All queries are idempotent.
type QueryClient interface {
	// QueryContractSmart sends {"<op>": payload} to the contract's smart
	// query endpoint and decodes the response into result. A null response
	// leaves a pointer result nil.
	QueryContractSmart(ctx context.Context, contractAddr string, queryMsg interface{}, result interface{}) error
	GetBalance(ctx context.Context, address, denom string) (types.Coin, error)
	ChainID(ctx context.Context) (string, error)
}

// SigningClient additionally submits state-changing transactions on behalf of
// a fixed sender. Implementations must never retry a submission whose outcome
// is unknown.
type SigningClient interface {
	QueryClient
	Sender() string
	Execute(ctx context.Context, contractAddr string, execMsg interface{}, opts ExecOptions) (*ExecuteResult, error)
}

// WasmMsg wraps a named operation payload into the single-key envelope the
// contracts expect: {"<op>": {...}}.
type WasmMsg struct {
	Op      string
	Payload interface{}
}

func (m WasmMsg) MarshalJSON() ([]byte, error) {
	payload, err := json.Marshal(m.Payload)
	if err != nil {
		return nil, err
	}
	obj := map[string]json.RawMessage{m.Op: payload}
	return json.Marshal(obj)
}

// ExecOptions carries the transport-level concerns of an execute call. They
// are passed through verbatim, never interpreted here.
type ExecOptions struct {
	Fee   Fee
	Memo  string
	Funds []types.Coin
}

// ExecuteResult is the decoded outcome of a broadcast transaction.
type ExecuteResult struct {
	TxHash string  `json:"tx_hash"`
	Height int64   `json:"height"`
	Events []Event `json:"events"`
}

type Event struct {
	Type       string           `json:"type"`
	Attributes []EventAttribute `json:"attributes"`
}

type EventAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// FirstAttribute returns the first attribute value for (eventType, key).
// Workflows use this to pull keys such as "token_id" out of wasm events.
func (r *ExecuteResult) FirstAttribute(eventType, key string) (string, bool) {
	for _, ev := range r.Events {
		if ev.Type != eventType {
			continue
		}
		for _, attr := range ev.Attributes {
			if attr.Key == key {
				return attr.Value, true
			}
		}
	}
	return "", false
}
