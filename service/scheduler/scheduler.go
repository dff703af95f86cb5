// Package scheduler drives the multi-step "schedule end of auction" workflow:
// for each requested token, approve the auction contract as NFT operator,
// create the auction so it ends at the requested time, then seed it with a
// reserve-price bid. Steps for one token run strictly sequentially; tokens
// fail independently and nothing is rolled back.
package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/public-awesome/marketplace/cosmos"
	"github.com/public-awesome/marketplace/logger/xzap"
	"github.com/public-awesome/marketplace/reserveauction"
	"github.com/public-awesome/marketplace/types"
)

type Outcome string

const (
	// OutcomeSkipped: the token already has an open auction.
	OutcomeSkipped Outcome = "skipped"
	// OutcomePlanned: dry run; the token would have been processed.
	OutcomePlanned Outcome = "planned"
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
)

// TokenResult is the per-token outcome of one scheduling run.
type TokenResult struct {
	TokenID  string   `json:"token_id"`
	Outcome  Outcome  `json:"outcome"`
	TxHashes []string `json:"tx_hashes,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// Request describes one scheduling run.
type Request struct {
	Collection   string
	TokenIDs     []string
	EndTime      time.Time
	ReservePrice types.Coin
	Fee          cosmos.Fee
	DryRun       bool
}

const defaultPageSize = 100

type Scheduler struct {
	signer   cosmos.SigningClient
	auctions *reserveauction.Client
}

func New(signer cosmos.SigningClient, auctions *reserveauction.Client) *Scheduler {
	return &Scheduler{signer: signer, auctions: auctions}
}

// Run executes the workflow. Validation failures abort the whole run before
// any network call; on-chain failures abort only the failing token's
// remaining steps. The returned slice has one entry per requested token, in
// request order.
func (s *Scheduler) Run(ctx context.Context, req Request) ([]TokenResult, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	cfg, err := s.auctions.Config(ctx)
	if err != nil {
		return nil, err
	}
	duration := uint64(time.Until(req.EndTime) / time.Second)
	if duration < cfg.MinDuration || duration > cfg.MaxDuration {
		return nil, cosmos.NewInputError(
			"auction duration %ds outside contract bounds [%d, %d]",
			duration, cfg.MinDuration, cfg.MaxDuration)
	}

	open, err := s.openAuctions(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]TokenResult, 0, len(req.TokenIDs))
	for _, tokenID := range req.TokenIDs {
		results = append(results, s.scheduleToken(ctx, req, cfg, duration, open, tokenID))
	}
	return results, nil
}

func (s *Scheduler) validate(req Request) error {
	if req.Collection == "" {
		return cosmos.NewInputError("collection address is required")
	}
	if len(req.TokenIDs) == 0 {
		return cosmos.NewInputError("at least one token id is required")
	}
	if !req.EndTime.After(time.Now()) {
		return cosmos.NewInputError("end time %s is not in the future", req.EndTime.Format(time.RFC3339))
	}
	if err := req.ReservePrice.Validate(); err != nil {
		return cosmos.NewInputError("reserve price: %v", err)
	}
	return nil
}

func (s *Scheduler) openAuctions(ctx context.Context) (map[string]struct{}, error) {
	auctions, err := s.auctions.AllAuctionsBySeller(ctx, s.signer.Sender(), defaultPageSize)
	if err != nil {
		return nil, err
	}
	open := make(map[string]struct{}, len(auctions))
	for _, a := range auctions {
		open[a.Collection+"/"+a.TokenID] = struct{}{}
	}
	return open, nil
}

func (s *Scheduler) scheduleToken(
	ctx context.Context,
	req Request,
	cfg *reserveauction.Config,
	duration uint64,
	open map[string]struct{},
	tokenID string,
) TokenResult {
	log := xzap.WithContext(ctx)
	res := TokenResult{TokenID: tokenID}

	if _, exists := open[req.Collection+"/"+tokenID]; exists {
		log.Info("auction already open, skipping",
			zap.String("collection", req.Collection), zap.String("tokenId", tokenID))
		res.Outcome = OutcomeSkipped
		return res
	}
	if req.DryRun {
		res.Outcome = OutcomePlanned
		return res
	}

	steps := []struct {
		name string
		run  func() (*cosmos.ExecuteResult, error)
	}{
		{"approve", func() (*cosmos.ExecuteResult, error) {
			return s.approve(ctx, req, tokenID)
		}},
		{"create-auction", func() (*cosmos.ExecuteResult, error) {
			return s.auctions.CreateAuction(ctx, reserveauction.CreateAuctionMsg{
				Collection:   req.Collection,
				TokenID:      tokenID,
				ReservePrice: req.ReservePrice,
				Duration:     duration,
			}, cosmos.ExecOptions{
				Fee:   req.Fee,
				Memo:  "create-auction",
				Funds: []types.Coin{cfg.CreateAuctionFee},
			})
		}},
		{"place-bid", func() (*cosmos.ExecuteResult, error) {
			return s.auctions.PlaceBid(ctx, reserveauction.PlaceBidMsg{
				Collection: req.Collection,
				TokenID:    tokenID,
			}, cosmos.ExecOptions{
				Fee:   req.Fee,
				Memo:  "place-bid",
				Funds: []types.Coin{req.ReservePrice},
			})
		}},
	}

	for _, step := range steps {
		result, err := step.run()
		if err != nil {
			// An indeterminate timeout may have landed on chain; never
			// resubmit, report and move to the next token.
			log.Error("scheduling step failed",
				zap.String("step", step.name),
				zap.String("tokenId", tokenID),
				zap.Error(err))
			res.Outcome = OutcomeFailed
			res.Error = step.name + ": " + err.Error()
			return res
		}
		res.TxHashes = append(res.TxHashes, result.TxHash)
		log.Info("scheduling step confirmed",
			zap.String("step", step.name),
			zap.String("tokenId", tokenID),
			zap.String("txHash", result.TxHash))
	}
	res.Outcome = OutcomeSucceeded
	return res
}

// approve grants the auction contract transfer rights over one token,
// executed against the NFT collection contract itself.
func (s *Scheduler) approve(ctx context.Context, req Request, tokenID string) (*cosmos.ExecuteResult, error) {
	payload := struct {
		Spender string `json:"spender"`
		TokenID string `json:"token_id"`
	}{
		Spender: s.auctions.ContractAddress(),
		TokenID: tokenID,
	}
	return s.signer.Execute(ctx, req.Collection, cosmos.WasmMsg{Op: "approve", Payload: payload}, cosmos.ExecOptions{
		Fee:  req.Fee,
		Memo: "approve-auction-contract",
	})
}

// Failed reports whether any token in the run failed outright.
func Failed(results []TokenResult) bool {
	for _, r := range results {
		if r.Outcome == OutcomeFailed {
			return true
		}
	}
	return false
}
