package v2

import (
	"context"

	"github.com/public-awesome/marketplace/cosmos"
)

// QueryClient is the read-only façade over one deployed V2 marketplace
// contract.
type QueryClient struct {
	wasm     cosmos.QueryClient
	contract string
}

func NewQueryClient(wasm cosmos.QueryClient, contractAddr string) *QueryClient {
	return &QueryClient{wasm: wasm, contract: contractAddr}
}

func (c *QueryClient) ContractAddress() string { return c.contract }

func (c *QueryClient) query(ctx context.Context, op string, payload, result interface{}) error {
	return c.wasm.QueryContractSmart(ctx, c.contract, cosmos.WasmMsg{Op: op, Payload: payload}, result)
}

func validateAsks(op string, asks []Ask) ([]Ask, error) {
	for i := range asks {
		if err := asks[i].Validate(); err != nil {
			return nil, &cosmos.SchemaMismatch{Op: op, Err: err}
		}
	}
	return asks, nil
}

func validateBids(op string, bids []Bid) ([]Bid, error) {
	for i := range bids {
		if err := bids[i].Validate(); err != nil {
			return nil, &cosmos.SchemaMismatch{Op: op, Err: err}
		}
	}
	return bids, nil
}

func validateCollectionBids(op string, bids []CollectionBid) ([]CollectionBid, error) {
	for i := range bids {
		if err := bids[i].Validate(); err != nil {
			return nil, &cosmos.SchemaMismatch{Op: op, Err: err}
		}
	}
	return bids, nil
}

// Ask returns the current ask for a token, or nil when none exists. Absence
// is data, not an error.
func (c *QueryClient) Ask(ctx context.Context, collection string, tokenID uint32) (*Ask, error) {
	var resp AskResponse
	if err := c.query(ctx, "ask", askQuery{Collection: collection, TokenID: tokenID}, &resp); err != nil {
		return nil, err
	}
	if resp.Ask == nil {
		return nil, nil
	}
	if err := resp.Ask.Validate(); err != nil {
		return nil, &cosmos.SchemaMismatch{Op: "ask", Err: err}
	}
	return resp.Ask, nil
}

// AsksQuery lists asks of a collection ordered by token id ascending.
type AsksQuery struct {
	Collection      string
	IncludeInactive *bool
	StartAfter      *uint32
	Limit           *uint32
}

func (c *QueryClient) Asks(ctx context.Context, q AsksQuery) ([]Ask, error) {
	var resp AsksResponse
	err := c.query(ctx, "asks", asksQuery{
		Collection:      q.Collection,
		IncludeInactive: q.IncludeInactive,
		StartAfter:      q.StartAfter,
		Limit:           q.Limit,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return validateAsks("asks", resp.Asks)
}

// ReverseAsksQuery lists asks ordered by token id descending, strictly before
// the cursor.
type ReverseAsksQuery struct {
	Collection      string
	IncludeInactive *bool
	StartBefore     *uint32
	Limit           *uint32
}

func (c *QueryClient) ReverseAsks(ctx context.Context, q ReverseAsksQuery) ([]Ask, error) {
	var resp AsksResponse
	err := c.query(ctx, "reverse_asks", reverseAsksQuery{
		Collection:      q.Collection,
		IncludeInactive: q.IncludeInactive,
		StartBefore:     q.StartBefore,
		Limit:           q.Limit,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return validateAsks("reverse_asks", resp.Asks)
}

// AsksSortedByPriceQuery lists asks ordered by (price, token id) ascending,
// strictly after the cursor.
type AsksSortedByPriceQuery struct {
	Collection      string
	IncludeInactive *bool
	StartAfter      *AskOffset
	Limit           *uint32
}

func (c *QueryClient) AsksSortedByPrice(ctx context.Context, q AsksSortedByPriceQuery) ([]Ask, error) {
	var resp AsksResponse
	err := c.query(ctx, "asks_sorted_by_price", asksSortedByPriceQuery{
		Collection:      q.Collection,
		IncludeInactive: q.IncludeInactive,
		StartAfter:      q.StartAfter,
		Limit:           q.Limit,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return validateAsks("asks_sorted_by_price", resp.Asks)
}

// ReverseAsksSortedByPriceQuery lists asks ordered by (price, token id)
// descending, strictly before the cursor.
type ReverseAsksSortedByPriceQuery struct {
	Collection      string
	IncludeInactive *bool
	StartBefore     *AskOffset
	Limit           *uint32
}

func (c *QueryClient) ReverseAsksSortedByPrice(ctx context.Context, q ReverseAsksSortedByPriceQuery) ([]Ask, error) {
	var resp AsksResponse
	err := c.query(ctx, "reverse_asks_sorted_by_price", reverseAsksSortedByPriceQuery{
		Collection:      q.Collection,
		IncludeInactive: q.IncludeInactive,
		StartBefore:     q.StartBefore,
		Limit:           q.Limit,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return validateAsks("reverse_asks_sorted_by_price", resp.Asks)
}

func (c *QueryClient) AskCount(ctx context.Context, collection string) (uint64, error) {
	var resp AskCountResponse
	if err := c.query(ctx, "ask_count", askCountQuery{Collection: collection}, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// AsksBySellerQuery lists a seller's asks ordered by (collection, token id).
type AsksBySellerQuery struct {
	Seller          string
	IncludeInactive *bool
	StartAfter      *CollectionOffset
	Limit           *uint32
}

func (c *QueryClient) AsksBySeller(ctx context.Context, q AsksBySellerQuery) ([]Ask, error) {
	var resp AsksResponse
	err := c.query(ctx, "asks_by_seller", asksBySellerQuery{
		Seller:          q.Seller,
		IncludeInactive: q.IncludeInactive,
		StartAfter:      q.StartAfter,
		Limit:           q.Limit,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return validateAsks("asks_by_seller", resp.Asks)
}

func (c *QueryClient) Collections(ctx context.Context, startAfter *string, limit *uint32) ([]string, error) {
	var resp CollectionsResponse
	if err := c.query(ctx, "collections", collectionsQuery{StartAfter: startAfter, Limit: limit}, &resp); err != nil {
		return nil, err
	}
	return resp.Collections, nil
}

// Bid returns the bid for (collection, token, bidder), or nil when none
// exists.
func (c *QueryClient) Bid(ctx context.Context, collection string, tokenID uint32, bidder string) (*Bid, error) {
	var resp BidResponse
	if err := c.query(ctx, "bid", bidQuery{Collection: collection, TokenID: tokenID, Bidder: bidder}, &resp); err != nil {
		return nil, err
	}
	if resp.Bid == nil {
		return nil, nil
	}
	if err := resp.Bid.Validate(); err != nil {
		return nil, &cosmos.SchemaMismatch{Op: "bid", Err: err}
	}
	return resp.Bid, nil
}

// BidsQuery lists bids on one token ordered by bidder.
type BidsQuery struct {
	Collection string
	TokenID    uint32
	StartAfter *string
	Limit      *uint32
}

func (c *QueryClient) Bids(ctx context.Context, q BidsQuery) ([]Bid, error) {
	var resp BidsResponse
	err := c.query(ctx, "bids", bidsQuery{
		Collection: q.Collection,
		TokenID:    q.TokenID,
		StartAfter: q.StartAfter,
		Limit:      q.Limit,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return validateBids("bids", resp.Bids)
}

type BidsByBidderQuery struct {
	Bidder     string
	StartAfter *CollectionOffset
	Limit      *uint32
}

func (c *QueryClient) BidsByBidder(ctx context.Context, q BidsByBidderQuery) ([]Bid, error) {
	var resp BidsResponse
	err := c.query(ctx, "bids_by_bidder", bidsByBidderQuery{
		Bidder:     q.Bidder,
		StartAfter: q.StartAfter,
		Limit:      q.Limit,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return validateBids("bids_by_bidder", resp.Bids)
}

func (c *QueryClient) BidsByBidderSortedByExpiration(ctx context.Context, q BidsByBidderQuery) ([]Bid, error) {
	var resp BidsResponse
	err := c.query(ctx, "bids_by_bidder_sorted_by_expiration", bidsByBidderSortedByExpirationQuery{
		Bidder:     q.Bidder,
		StartAfter: q.StartAfter,
		Limit:      q.Limit,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return validateBids("bids_by_bidder_sorted_by_expiration", resp.Bids)
}

// BidsSortedByPriceQuery lists bids on a collection ordered by (price,
// token id, bidder) ascending, strictly after the cursor.
type BidsSortedByPriceQuery struct {
	Collection string
	StartAfter *BidOffset
	Limit      *uint32
}

func (c *QueryClient) BidsSortedByPrice(ctx context.Context, q BidsSortedByPriceQuery) ([]Bid, error) {
	var resp BidsResponse
	err := c.query(ctx, "bids_sorted_by_price", bidsSortedByPriceQuery{
		Collection: q.Collection,
		StartAfter: q.StartAfter,
		Limit:      q.Limit,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return validateBids("bids_sorted_by_price", resp.Bids)
}

type ReverseBidsSortedByPriceQuery struct {
	Collection  string
	StartBefore *BidOffset
	Limit       *uint32
}

func (c *QueryClient) ReverseBidsSortedByPrice(ctx context.Context, q ReverseBidsSortedByPriceQuery) ([]Bid, error) {
	var resp BidsResponse
	err := c.query(ctx, "reverse_bids_sorted_by_price", reverseBidsSortedByPriceQuery{
		Collection:  q.Collection,
		StartBefore: q.StartBefore,
		Limit:       q.Limit,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return validateBids("reverse_bids_sorted_by_price", resp.Bids)
}

// CollectionBid returns the collection bid for (collection, bidder), or nil
// when none exists.
func (c *QueryClient) CollectionBid(ctx context.Context, collection, bidder string) (*CollectionBid, error) {
	var resp CollectionBidResponse
	if err := c.query(ctx, "collection_bid", collectionBidQuery{Collection: collection, Bidder: bidder}, &resp); err != nil {
		return nil, err
	}
	if resp.Bid == nil {
		return nil, nil
	}
	if err := resp.Bid.Validate(); err != nil {
		return nil, &cosmos.SchemaMismatch{Op: "collection_bid", Err: err}
	}
	return resp.Bid, nil
}

type CollectionBidsByBidderQuery struct {
	Bidder     string
	StartAfter *CollectionOffset
	Limit      *uint32
}

func (c *QueryClient) CollectionBidsByBidder(ctx context.Context, q CollectionBidsByBidderQuery) ([]CollectionBid, error) {
	var resp CollectionBidsResponse
	err := c.query(ctx, "collection_bids_by_bidder", collectionBidsByBidderQuery{
		Bidder:     q.Bidder,
		StartAfter: q.StartAfter,
		Limit:      q.Limit,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return validateCollectionBids("collection_bids_by_bidder", resp.Bids)
}

type CollectionBidsByBidderSortedByExpirationQuery struct {
	Bidder     string
	StartAfter *CollectionBidOffset
	Limit      *uint32
}

func (c *QueryClient) CollectionBidsByBidderSortedByExpiration(ctx context.Context, q CollectionBidsByBidderSortedByExpirationQuery) ([]CollectionBid, error) {
	var resp CollectionBidsResponse
	err := c.query(ctx, "collection_bids_by_bidder_sorted_by_expiration", collectionBidsByBidderSortedByExpirationQuery{
		Bidder:     q.Bidder,
		StartAfter: q.StartAfter,
		Limit:      q.Limit,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return validateCollectionBids("collection_bids_by_bidder_sorted_by_expiration", resp.Bids)
}

// CollectionBidsSortedByPriceQuery lists collection bids ordered by (price,
// bidder) ascending, strictly after the cursor.
type CollectionBidsSortedByPriceQuery struct {
	Collection string
	StartAfter *CollectionBidOffset
	Limit      *uint32
}

func (c *QueryClient) CollectionBidsSortedByPrice(ctx context.Context, q CollectionBidsSortedByPriceQuery) ([]CollectionBid, error) {
	var resp CollectionBidsResponse
	err := c.query(ctx, "collection_bids_sorted_by_price", collectionBidsSortedByPriceQuery{
		Collection: q.Collection,
		StartAfter: q.StartAfter,
		Limit:      q.Limit,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return validateCollectionBids("collection_bids_sorted_by_price", resp.Bids)
}

type ReverseCollectionBidsSortedByPriceQuery struct {
	Collection  string
	StartBefore *CollectionBidOffset
	Limit       *uint32
}

func (c *QueryClient) ReverseCollectionBidsSortedByPrice(ctx context.Context, q ReverseCollectionBidsSortedByPriceQuery) ([]CollectionBid, error) {
	var resp CollectionBidsResponse
	err := c.query(ctx, "reverse_collection_bids_sorted_by_price", reverseCollectionBidsSortedByPriceQuery{
		Collection:  q.Collection,
		StartBefore: q.StartBefore,
		Limit:       q.Limit,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return validateCollectionBids("reverse_collection_bids_sorted_by_price", resp.Bids)
}

func (c *QueryClient) AskHooks(ctx context.Context) ([]string, error) {
	var resp HooksResponse
	if err := c.query(ctx, "ask_hooks", emptyQuery{}, &resp); err != nil {
		return nil, err
	}
	return resp.Hooks, nil
}

func (c *QueryClient) BidHooks(ctx context.Context) ([]string, error) {
	var resp HooksResponse
	if err := c.query(ctx, "bid_hooks", emptyQuery{}, &resp); err != nil {
		return nil, err
	}
	return resp.Hooks, nil
}

func (c *QueryClient) SaleHooks(ctx context.Context) ([]string, error) {
	var resp HooksResponse
	if err := c.query(ctx, "sale_hooks", emptyQuery{}, &resp); err != nil {
		return nil, err
	}
	return resp.Hooks, nil
}

func (c *QueryClient) Params(ctx context.Context) (*SudoParams, error) {
	var resp ParamsResponse
	if err := c.query(ctx, "params", emptyQuery{}, &resp); err != nil {
		return nil, err
	}
	return &resp.Params, nil
}

// Client adds the mutating execute surface on top of the V2 queries.
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
	if err := msg.SaleType.Validate(); err != nil {
		return nil, cosmos.NewInputError("set_ask: %v", err)
	}
	if err := msg.Price.Validate(); err != nil {
		return nil, cosmos.NewInputError("set_ask price: %v", err)
	}
	if msg.FindersFeeBps != nil && *msg.FindersFeeBps > 10000 {
		return nil, cosmos.NewInputError("set_ask finders fee %d exceeds 10000 bps", *msg.FindersFeeBps)
	}
	return c.execute(ctx, "set_ask", msg, opts)
}

func (c *Client) RemoveAsk(ctx context.Context, msg RemoveAskMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "remove_ask", msg, opts)
}

func (c *Client) UpdateAskPrice(ctx context.Context, msg UpdateAskPriceMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	if err := msg.Price.Validate(); err != nil {
		return nil, cosmos.NewInputError("update_ask_price price: %v", err)
	}
	return c.execute(ctx, "update_ask_price", msg, opts)
}

func (c *Client) SetBid(ctx context.Context, msg SetBidMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	if err := msg.SaleType.Validate(); err != nil {
		return nil, cosmos.NewInputError("set_bid: %v", err)
	}
	return c.execute(ctx, "set_bid", msg, opts)
}

func (c *Client) RemoveBid(ctx context.Context, msg RemoveBidMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "remove_bid", msg, opts)
}

func (c *Client) AcceptBid(ctx context.Context, msg AcceptBidMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "accept_bid", msg, opts)
}

func (c *Client) SetCollectionBid(ctx context.Context, msg SetCollectionBidMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "set_collection_bid", msg, opts)
}

func (c *Client) RemoveCollectionBid(ctx context.Context, msg RemoveCollectionBidMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "remove_collection_bid", msg, opts)
}

func (c *Client) AcceptCollectionBid(ctx context.Context, msg AcceptCollectionBidMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "accept_collection_bid", msg, opts)
}

func (c *Client) SyncAsk(ctx context.Context, msg SyncAskMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "sync_ask", msg, opts)
}

func (c *Client) RemoveStaleAsk(ctx context.Context, msg RemoveStaleAskMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "remove_stale_ask", msg, opts)
}

func (c *Client) RemoveStaleBid(ctx context.Context, msg RemoveStaleBidMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "remove_stale_bid", msg, opts)
}

func (c *Client) RemoveStaleCollectionBid(ctx context.Context, msg RemoveStaleCollectionBidMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "remove_stale_collection_bid", msg, opts)
}

// Sudo message encoders. Governance tooling submits these; the client only
// shapes the bytes.

func EncodeSudoUpdateParams(msg UpdateParamsMsg) cosmos.WasmMsg {
	return cosmos.WasmMsg{Op: "update_params", Payload: msg}
}

func EncodeSudoAddHook(kind string, hook string) cosmos.WasmMsg {
	return cosmos.WasmMsg{Op: "add_" + kind + "_hook", Payload: HookMsg{Hook: hook}}
}

func EncodeSudoRemoveHook(kind string, hook string) cosmos.WasmMsg {
	return cosmos.WasmMsg{Op: "remove_" + kind + "_hook", Payload: HookMsg{Hook: hook}}
}
