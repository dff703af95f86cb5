package v1

import (
	"context"

	"github.com/public-awesome/marketplace/cosmos"
)

// QueryClient is the read-only façade over one deployed V1 marketplace
// contract. Constructing it binds the caller to the V1 wire schema.
type QueryClient struct {
	wasm     cosmos.QueryClient
	contract string
}

func NewQueryClient(wasm cosmos.QueryClient, contractAddr string) *QueryClient {
	return &QueryClient{wasm: wasm, contract: contractAddr}
}

func (c *QueryClient) query(ctx context.Context, op string, payload, result interface{}) error {
	return c.wasm.QueryContractSmart(ctx, c.contract, cosmos.WasmMsg{Op: op, Payload: payload}, result)
}

// CurrentAsk returns the ask for a token, or nil when none exists.
func (c *QueryClient) CurrentAsk(ctx context.Context, collection string, tokenID uint32) (*Ask, error) {
	var resp CurrentAskResponse
	if err := c.query(ctx, "current_ask", currentAskQuery{Collection: collection, TokenID: tokenID}, &resp); err != nil {
		return nil, err
	}
	if resp.Ask == nil {
		return nil, nil
	}
	if err := resp.Ask.Validate(); err != nil {
		return nil, &cosmos.SchemaMismatch{Op: "current_ask", Err: err}
	}
	return resp.Ask, nil
}

func (c *QueryClient) Asks(ctx context.Context, collection string, startAfter *uint32, limit *uint32) ([]AskInfo, error) {
	var resp AsksResponse
	err := c.query(ctx, "asks", asksQuery{Collection: collection, StartAfter: startAfter, Limit: limit}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Asks, nil
}

func (c *QueryClient) AskCount(ctx context.Context, collection string) (uint64, error) {
	var resp AskCountResponse
	if err := c.query(ctx, "ask_count", askCountQuery{Collection: collection}, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (c *QueryClient) AsksBySeller(ctx context.Context, seller string) ([]AskInfo, error) {
	var resp AsksResponse
	if err := c.query(ctx, "asks_by_seller", asksBySellerQuery{Seller: seller}, &resp); err != nil {
		return nil, err
	}
	return resp.Asks, nil
}

func (c *QueryClient) ListedCollections(ctx context.Context, startAfter *string, limit *uint32) ([]string, error) {
	var resp CollectionsResponse
	err := c.query(ctx, "listed_collections", listedCollectionsQuery{StartAfter: startAfter, Limit: limit}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Collections, nil
}

// Bid returns the bid for (collection, token, bidder), or nil when none
// exists.
func (c *QueryClient) Bid(ctx context.Context, collection string, tokenID uint32, bidder string) (*BidInfo, error) {
	var resp struct {
		Bid *BidInfo `json:"bid"`
	}
	if err := c.query(ctx, "bid", bidQuery{Collection: collection, TokenID: tokenID, Bidder: bidder}, &resp); err != nil {
		return nil, err
	}
	return resp.Bid, nil
}

func (c *QueryClient) Bids(ctx context.Context, collection string, tokenID uint32, startAfter *string, limit *uint32) ([]BidInfo, error) {
	var resp BidsResponse
	err := c.query(ctx, "bids", bidsQuery{Collection: collection, TokenID: tokenID, StartAfter: startAfter, Limit: limit}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Bids, nil
}

func (c *QueryClient) BidsByBidder(ctx context.Context, bidder string) ([]BidInfo, error) {
	var resp BidsResponse
	if err := c.query(ctx, "bids_by_bidder", bidsByBidderQuery{Bidder: bidder}, &resp); err != nil {
		return nil, err
	}
	return resp.Bids, nil
}

func (c *QueryClient) Params(ctx context.Context) (*SudoParams, error) {
	var resp ParamResponse
	if err := c.query(ctx, "params", paramsQuery{}, &resp); err != nil {
		return nil, err
	}
	return &resp.Params, nil
}

// Client adds the mutating execute surface on top of the V1 queries.
type Client struct {
	*QueryClient
	signer cosmos.SigningClient
}

func NewClient(signer cosmos.SigningClient, contractAddr string) *Client {
	return &Client{
		QueryClient: NewQueryClient(signer, contractAddr),
		signer:      signer,
	}
}

func (c *Client) execute(ctx context.Context, op string, payload interface{}, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.signer.Execute(ctx, c.contract, cosmos.WasmMsg{Op: op, Payload: payload}, opts)
}

func (c *Client) SetAsk(ctx context.Context, msg SetAskMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	if err := msg.Price.Validate(); err != nil {
		return nil, cosmos.NewInputError("set_ask price: %v", err)
	}
	return c.execute(ctx, "set_ask", msg, opts)
}

func (c *Client) RemoveAsk(ctx context.Context, msg RemoveAskMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "remove_ask", msg, opts)
}

func (c *Client) SetBid(ctx context.Context, msg SetBidMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "set_bid", msg, opts)
}

func (c *Client) RemoveBid(ctx context.Context, msg RemoveBidMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "remove_bid", msg, opts)
}

func (c *Client) AcceptBid(ctx context.Context, msg AcceptBidMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "accept_bid", msg, opts)
}

// EncodeSudoUpdateParams encodes the privileged patch message. The client
// never submits sudo messages itself; governance tooling carries the bytes.
func EncodeSudoUpdateParams(msg UpdateParamsMsg) cosmos.WasmMsg {
	return cosmos.WasmMsg{Op: "update_params", Payload: msg}
}

func EncodeSudoAddAskHook(hook string) cosmos.WasmMsg {
	return cosmos.WasmMsg{Op: "add_ask_hook", Payload: HookMsg{Hook: hook}}
}

func EncodeSudoRemoveAskHook(hook string) cosmos.WasmMsg {
	return cosmos.WasmMsg{Op: "remove_ask_hook", Payload: HookMsg{Hook: hook}}
}

func EncodeSudoAddSaleFinalizedHook(hook string) cosmos.WasmMsg {
	return cosmos.WasmMsg{Op: "add_sale_finalized_hook", Payload: HookMsg{Hook: hook}}
}

func EncodeSudoRemoveSaleFinalizedHook(hook string) cosmos.WasmMsg {
	return cosmos.WasmMsg{Op: "remove_sale_finalized_hook", Payload: HookMsg{Hook: hook}}
}
