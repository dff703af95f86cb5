package reserveauction

import (
	"context"

	"github.com/public-awesome/marketplace/cosmos"
	"github.com/public-awesome/marketplace/pagination"
	"github.com/public-awesome/marketplace/types"
)

// QueryClient is the read-only façade over one deployed reserve auction
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

func (c *QueryClient) Config(ctx context.Context) (*Config, error) {
	var resp configResponse
	if err := c.query(ctx, "config", configQuery{}, &resp); err != nil {
		return nil, err
	}
	return &resp.Config, nil
}

func (c *QueryClient) HaltManager(ctx context.Context) (*HaltManager, error) {
	var resp haltManagerResponse
	if err := c.query(ctx, "halt_manager", haltManagerQuery{}, &resp); err != nil {
		return nil, err
	}
	return &resp.HaltManager, nil
}

func (c *QueryClient) MinReservePrices(ctx context.Context, opts *QueryOptions[string]) ([]types.Coin, error) {
	var resp coinsResponse
	if err := c.query(ctx, "min_reserve_prices", minReservePricesQuery{QueryOptions: opts}, &resp); err != nil {
		return nil, err
	}
	return resp.Coins, nil
}

// Auction looks up a single auction. The contract rejects the query when no
// auction exists for the key, so absence surfaces as a RemoteRejection;
// callers that need existence checks should list by seller instead.
func (c *QueryClient) Auction(ctx context.Context, collection, tokenID string) (*Auction, error) {
	var resp auctionResponse
	if err := c.query(ctx, "auction", auctionQuery{Collection: collection, TokenID: tokenID}, &resp); err != nil {
		return nil, err
	}
	if err := resp.Auction.Validate(); err != nil {
		return nil, &cosmos.SchemaMismatch{Op: "auction", Err: err}
	}
	return &resp.Auction, nil
}

func validateAuctions(op string, auctions []Auction) ([]Auction, error) {
	for i := range auctions {
		if err := auctions[i].Validate(); err != nil {
			return nil, &cosmos.SchemaMismatch{Op: op, Err: err}
		}
	}
	return auctions, nil
}

func (c *QueryClient) AuctionsBySeller(ctx context.Context, seller string, opts *QueryOptions[SellerTokenCursor]) ([]Auction, error) {
	var resp auctionsResponse
	err := c.query(ctx, "auctions_by_seller", auctionsBySellerQuery{Seller: seller, QueryOptions: opts}, &resp)
	if err != nil {
		return nil, err
	}
	return validateAuctions("auctions_by_seller", resp.Auctions)
}

func (c *QueryClient) AuctionsByEndTime(ctx context.Context, endTime uint64, opts *QueryOptions[SellerTokenCursor]) ([]Auction, error) {
	var resp auctionsResponse
	err := c.query(ctx, "auctions_by_end_time", auctionsByEndTimeQuery{EndTime: endTime, QueryOptions: opts}, &resp)
	if err != nil {
		return nil, err
	}
	return validateAuctions("auctions_by_end_time", resp.Auctions)
}

// AllAuctionsBySeller pages through every auction a seller has open.
func (c *QueryClient) AllAuctionsBySeller(ctx context.Context, seller string, pageSize uint32) ([]Auction, error) {
	return pagination.Collect(ctx, int(pageSize),
		func(ctx context.Context, cursor *SellerTokenCursor) ([]Auction, error) {
			return c.AuctionsBySeller(ctx, seller, &QueryOptions[SellerTokenCursor]{
				StartAfter: cursor,
				Limit:      &pageSize,
			})
		},
		func(last Auction) SellerTokenCursor {
			return SellerTokenCursor{Collection: last.Collection, TokenID: last.TokenID}
		})
}

// Client adds the mutating execute surface on top of the auction queries.
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

func (c *Client) CreateAuction(ctx context.Context, msg CreateAuctionMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	if err := msg.ReservePrice.Validate(); err != nil {
		return nil, cosmos.NewInputError("create_auction reserve price: %v", err)
	}
	if msg.Duration == 0 {
		return nil, cosmos.NewInputError("create_auction duration must be positive")
	}
	return c.execute(ctx, "create_auction", msg, opts)
}

func (c *Client) UpdateReservePrice(ctx context.Context, msg UpdateReservePriceMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	if err := msg.ReservePrice.Validate(); err != nil {
		return nil, cosmos.NewInputError("update_reserve_price reserve price: %v", err)
	}
	return c.execute(ctx, "update_reserve_price", msg, opts)
}

func (c *Client) CancelAuction(ctx context.Context, msg CancelAuctionMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "cancel_auction", msg, opts)
}

// PlaceBid submits a bid; the bid amount must ride in opts.Funds.
func (c *Client) PlaceBid(ctx context.Context, msg PlaceBidMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	if len(opts.Funds) == 0 {
		return nil, cosmos.NewInputError("place_bid requires attached funds")
	}
	return c.execute(ctx, "place_bid", msg, opts)
}

func (c *Client) SettleAuction(ctx context.Context, msg SettleAuctionMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "settle_auction", msg, opts)
}

// Sudo message encoders.

func EncodeSudoUpdateParams(msg UpdateParamsMsg) cosmos.WasmMsg {
	return cosmos.WasmMsg{Op: "update_params", Payload: msg}
}

func EncodeSudoSetMinReservePrices(msg SetMinReservePricesMsg) cosmos.WasmMsg {
	return cosmos.WasmMsg{Op: "set_min_reserve_prices", Payload: msg}
}

func EncodeSudoUnsetMinReservePrices(msg UnsetMinReservePricesMsg) cosmos.WasmMsg {
	return cosmos.WasmMsg{Op: "unset_min_reserve_prices", Payload: msg}
}

func EncodeSudoBeginBlock() cosmos.WasmMsg {
	return cosmos.WasmMsg{Op: "begin_block", Payload: struct{}{}}
}

func EncodeSudoEndBlock() cosmos.WasmMsg {
	return cosmos.WasmMsg{Op: "end_block", Payload: struct{}{}}
}
