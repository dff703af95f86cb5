package v3

import (
	"context"

	"github.com/public-awesome/marketplace/cosmos"
)

// QueryClient is the read-only façade over one deployed V3 marketplace
// contract. Listing responses decode as bare arrays; point lookups decode to
// nil when the entity does not exist.
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

func (c *QueryClient) SudoParams(ctx context.Context) (*SudoParams, error) {
	var params SudoParams
	if err := c.query(ctx, "sudo_params", sudoParamsQuery{}, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

func (c *QueryClient) Ask(ctx context.Context, collection string, tokenID TokenID) (*Ask, error) {
	var ask *Ask
	if err := c.query(ctx, "ask", askQuery{Collection: collection, TokenID: tokenID}, &ask); err != nil {
		return nil, err
	}
	if ask == nil {
		return nil, nil
	}
	if err := ask.Validate(); err != nil {
		return nil, &cosmos.SchemaMismatch{Op: "ask", Err: err}
	}
	return ask, nil
}

func (c *QueryClient) validateAskPage(op string, asks []Ask, err error) ([]Ask, error) {
	if err != nil {
		return nil, err
	}
	for i := range asks {
		if err := asks[i].Validate(); err != nil {
			return nil, &cosmos.SchemaMismatch{Op: op, Err: err}
		}
	}
	return asks, nil
}

func (c *QueryClient) Asks(ctx context.Context, collection string, opts *QueryOptions[TokenID]) ([]Ask, error) {
	var asks []Ask
	err := c.query(ctx, "asks", asksQuery{Collection: collection, QueryOptions: opts}, &asks)
	return c.validateAskPage("asks", asks, err)
}

func (c *QueryClient) AsksByPrice(ctx context.Context, collection string, denom Denom, opts *QueryOptions[PriceTokenCursor]) ([]Ask, error) {
	var asks []Ask
	err := c.query(ctx, "asks_by_price", asksByPriceQuery{Collection: collection, Denom: denom, QueryOptions: opts}, &asks)
	return c.validateAskPage("asks_by_price", asks, err)
}

func (c *QueryClient) AsksBySeller(ctx context.Context, seller string, opts *QueryOptions[CollectionTokenCursor]) ([]Ask, error) {
	var asks []Ask
	err := c.query(ctx, "asks_by_seller", asksBySellerQuery{Seller: seller, QueryOptions: opts}, &asks)
	return c.validateAskPage("asks_by_seller", asks, err)
}

func (c *QueryClient) AsksByExpiration(ctx context.Context, opts *QueryOptions[AskExpirationCursor]) ([]Ask, error) {
	var asks []Ask
	err := c.query(ctx, "asks_by_expiration", asksByExpirationQuery{QueryOptions: opts}, &asks)
	return c.validateAskPage("asks_by_expiration", asks, err)
}

func (c *QueryClient) Offer(ctx context.Context, collection string, tokenID TokenID, bidder string) (*Offer, error) {
	var offer *Offer
	err := c.query(ctx, "offer", offerQuery{Collection: collection, TokenID: tokenID, Bidder: bidder}, &offer)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, nil
	}
	if err := offer.Validate(); err != nil {
		return nil, &cosmos.SchemaMismatch{Op: "offer", Err: err}
	}
	return offer, nil
}

func (c *QueryClient) validateOfferPage(op string, offers []Offer, err error) ([]Offer, error) {
	if err != nil {
		return nil, err
	}
	for i := range offers {
		if err := offers[i].Validate(); err != nil {
			return nil, &cosmos.SchemaMismatch{Op: op, Err: err}
		}
	}
	return offers, nil
}

func (c *QueryClient) OffersByCollection(ctx context.Context, collection string, opts *QueryOptions[TokenBidderCursor]) ([]Offer, error) {
	var offers []Offer
	err := c.query(ctx, "offers_by_collection", offersByCollectionQuery{Collection: collection, QueryOptions: opts}, &offers)
	return c.validateOfferPage("offers_by_collection", offers, err)
}

func (c *QueryClient) OffersByTokenPrice(ctx context.Context, collection string, tokenID TokenID, denom Denom, opts *QueryOptions[PriceBidderCursor]) ([]Offer, error) {
	var offers []Offer
	err := c.query(ctx, "offers_by_token_price", offersByTokenPriceQuery{
		Collection:   collection,
		TokenID:      tokenID,
		Denom:        denom,
		QueryOptions: opts,
	}, &offers)
	return c.validateOfferPage("offers_by_token_price", offers, err)
}

func (c *QueryClient) OffersByBidder(ctx context.Context, bidder string, opts *QueryOptions[CollectionTokenCursor]) ([]Offer, error) {
	var offers []Offer
	err := c.query(ctx, "offers_by_bidder", offersByBidderQuery{Bidder: bidder, QueryOptions: opts}, &offers)
	return c.validateOfferPage("offers_by_bidder", offers, err)
}

func (c *QueryClient) OffersByExpiration(ctx context.Context, opts *QueryOptions[OfferExpirationCursor]) ([]Offer, error) {
	var offers []Offer
	err := c.query(ctx, "offers_by_expiration", offersByExpirationQuery{QueryOptions: opts}, &offers)
	return c.validateOfferPage("offers_by_expiration", offers, err)
}

func (c *QueryClient) CollectionOffer(ctx context.Context, collection, bidder string) (*CollectionOffer, error) {
	var offer *CollectionOffer
	err := c.query(ctx, "collection_offer", collectionOfferQuery{Collection: collection, Bidder: bidder}, &offer)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, nil
	}
	if err := offer.Validate(); err != nil {
		return nil, &cosmos.SchemaMismatch{Op: "collection_offer", Err: err}
	}
	return offer, nil
}

func (c *QueryClient) validateCollectionOfferPage(op string, offers []CollectionOffer, err error) ([]CollectionOffer, error) {
	if err != nil {
		return nil, err
	}
	for i := range offers {
		if err := offers[i].Validate(); err != nil {
			return nil, &cosmos.SchemaMismatch{Op: op, Err: err}
		}
	}
	return offers, nil
}

func (c *QueryClient) CollectionOffersByPrice(ctx context.Context, collection string, denom Denom, opts *QueryOptions[PriceBidderCursor]) ([]CollectionOffer, error) {
	var offers []CollectionOffer
	err := c.query(ctx, "collection_offers_by_price", collectionOffersByPriceQuery{
		Collection:   collection,
		Denom:        denom,
		QueryOptions: opts,
	}, &offers)
	return c.validateCollectionOfferPage("collection_offers_by_price", offers, err)
}

func (c *QueryClient) CollectionOffersByBidder(ctx context.Context, bidder string, opts *QueryOptions[string]) ([]CollectionOffer, error) {
	var offers []CollectionOffer
	err := c.query(ctx, "collection_offers_by_bidder", collectionOffersByBidderQuery{Bidder: bidder, QueryOptions: opts}, &offers)
	return c.validateCollectionOfferPage("collection_offers_by_bidder", offers, err)
}

func (c *QueryClient) CollectionOffersByExpiration(ctx context.Context, opts *QueryOptions[CollectionOfferExpirationCursor]) ([]CollectionOffer, error) {
	var offers []CollectionOffer
	err := c.query(ctx, "collection_offers_by_expiration", collectionOffersByExpirationQuery{QueryOptions: opts}, &offers)
	return c.validateCollectionOfferPage("collection_offers_by_expiration", offers, err)
}

func (c *QueryClient) AskHooks(ctx context.Context) ([]string, error) {
	var hooks []string
	if err := c.query(ctx, "ask_hooks", emptyQuery{}, &hooks); err != nil {
		return nil, err
	}
	return hooks, nil
}

func (c *QueryClient) OfferHooks(ctx context.Context) ([]string, error) {
	var hooks []string
	if err := c.query(ctx, "offer_hooks", emptyQuery{}, &hooks); err != nil {
		return nil, err
	}
	return hooks, nil
}

func (c *QueryClient) SaleHooks(ctx context.Context) ([]string, error) {
	var hooks []string
	if err := c.query(ctx, "sale_hooks", emptyQuery{}, &hooks); err != nil {
		return nil, err
	}
	return hooks, nil
}

// Client adds the mutating execute surface on top of the V3 queries.
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
	if msg.FindersFeeBps != nil && *msg.FindersFeeBps > 10000 {
		return nil, cosmos.NewInputError("set_ask finders fee %d exceeds 10000 bps", *msg.FindersFeeBps)
	}
	return c.execute(ctx, "set_ask", msg, opts)
}

func (c *Client) UpdateAskPrice(ctx context.Context, msg UpdateAskPriceMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	if err := msg.Price.Validate(); err != nil {
		return nil, cosmos.NewInputError("update_ask_price price: %v", err)
	}
	return c.execute(ctx, "update_ask_price", msg, opts)
}

func (c *Client) RemoveAsk(ctx context.Context, msg RemoveAskMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "remove_ask", msg, opts)
}

func (c *Client) RemoveStaleAsk(ctx context.Context, msg RemoveStaleAskMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "remove_stale_ask", msg, opts)
}

func (c *Client) MigrateAsks(ctx context.Context, msg MigrateAsksMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "migrate_asks", msg, opts)
}

func (c *Client) SetOffer(ctx context.Context, msg SetOfferMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "set_offer", msg, opts)
}

func (c *Client) BuyNow(ctx context.Context, msg BuyNowMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "buy_now", msg, opts)
}

func (c *Client) AcceptOffer(ctx context.Context, msg AcceptOfferMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "accept_offer", msg, opts)
}

func (c *Client) RemoveOffer(ctx context.Context, msg RemoveOfferMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "remove_offer", msg, opts)
}

func (c *Client) RejectOffer(ctx context.Context, msg RejectOfferMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "reject_offer", msg, opts)
}

func (c *Client) RemoveStaleOffer(ctx context.Context, msg RemoveStaleOfferMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "remove_stale_offer", msg, opts)
}

func (c *Client) MigrateOffers(ctx context.Context, msg MigrateOffersMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "migrate_offers", msg, opts)
}

func (c *Client) SetCollectionOffer(ctx context.Context, msg SetCollectionOfferMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "set_collection_offer", msg, opts)
}

func (c *Client) AcceptCollectionOffer(ctx context.Context, msg AcceptCollectionOfferMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "accept_collection_offer", msg, opts)
}

func (c *Client) RemoveCollectionOffer(ctx context.Context, msg RemoveCollectionOfferMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "remove_collection_offer", msg, opts)
}

func (c *Client) RemoveStaleCollectionOffer(ctx context.Context, msg RemoveStaleCollectionOfferMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "remove_stale_collection_offer", msg, opts)
}

func (c *Client) MigrateCollectionOffers(ctx context.Context, msg MigrateCollectionOffersMsg, opts cosmos.ExecOptions) (*cosmos.ExecuteResult, error) {
	return c.execute(ctx, "migrate_collection_offers", msg, opts)
}

// Sudo message encoders.

func EncodeSudoUpdateParams(msg UpdateParamsMsg) cosmos.WasmMsg {
	return cosmos.WasmMsg{Op: "update_params", Payload: msg}
}

func EncodeSudoAddDenoms(msg AddDenomsMsg) cosmos.WasmMsg {
	return cosmos.WasmMsg{Op: "add_denoms", Payload: msg}
}

func EncodeSudoRemoveDenoms(msg RemoveDenomsMsg) cosmos.WasmMsg {
	return cosmos.WasmMsg{Op: "remove_denoms", Payload: msg}
}

func EncodeSudoBeginBlock() cosmos.WasmMsg {
	return cosmos.WasmMsg{Op: "begin_block", Payload: struct{}{}}
}

func EncodeSudoEndBlock() cosmos.WasmMsg {
	return cosmos.WasmMsg{Op: "end_block", Payload: struct{}{}}
}

// EncodeSudoAddHook registers a subscriber for one of the hook kinds: "ask",
// "offer" or "sale".
func EncodeSudoAddHook(kind string, hook string) cosmos.WasmMsg {
	return cosmos.WasmMsg{Op: "add_" + kind + "_hook", Payload: HookMsg{Hook: hook}}
}

func EncodeSudoRemoveHook(kind string, hook string) cosmos.WasmMsg {
	return cosmos.WasmMsg{Op: "remove_" + kind + "_hook", Payload: HookMsg{Hook: hook}}
}
