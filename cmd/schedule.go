package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/public-awesome/marketplace/cosmos"
	"github.com/public-awesome/marketplace/reserveauction"
	"github.com/public-awesome/marketplace/service/scheduler"
	"github.com/public-awesome/marketplace/types"
)

var (
	scheduleCollection   string
	scheduleTokenIDs     []string
	scheduleEndTime      string
	scheduleReservePrice string
	scheduleAccount      string
	scheduleDryRun       bool
)

var scheduleEndAuctionCmd = &cobra.Command{
	Use:   "schedule-end-auction",
	Short: "create auctions for a batch of tokens ending at a given time",
	Long: `For each token id without an open auction: approve the auction contract as
NFT operator, create an auction ending at --end-time, and place the initial
reserve-price bid. Tokens already under auction are skipped; a failing token
does not stop the rest. Exits non-zero if any token failed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		endTime, err := types.ParseISOTime(scheduleEndTime)
		if err != nil {
			return cosmos.NewInputError("end time: %v", err)
		}
		reservePrice, err := types.NewCoin(scheduleReservePrice, cfg.Chain.Denom)
		if err != nil {
			return cosmos.NewInputError("reserve price: %v", err)
		}

		ks, err := openKeystore(cfg)
		if err != nil {
			return err
		}
		defer ks.Close()
		signer, err := newSigningClient(cfg, ks, scheduleAccount)
		if err != nil {
			return err
		}
		auctions := reserveauction.NewClient(signer, cfg.Contracts.ReserveAuction)

		results, err := scheduler.New(signer, auctions).Run(cmd.Context(), scheduler.Request{
			Collection:   scheduleCollection,
			TokenIDs:     scheduleTokenIDs,
			EndTime:      endTime,
			ReservePrice: reservePrice,
			Fee:          feeFromConfig(cfg),
			DryRun:       scheduleDryRun,
		})
		if err != nil {
			return err
		}
		if err := printJSON(results); err != nil {
			return err
		}
		if scheduler.Failed(results) {
			return errors.New("one or more tokens failed to schedule")
		}
		return nil
	},
}

func init() {
	f := scheduleEndAuctionCmd.Flags()
	f.StringVar(&scheduleCollection, "collection", "", "NFT collection contract address")
	f.StringArrayVar(&scheduleTokenIDs, "token-id", nil, "token id to schedule (repeatable)")
	f.StringVar(&scheduleEndTime, "end-time", "", "auction end time, ISO-8601 (e.g. 2026-09-01T18:00:00Z)")
	f.StringVar(&scheduleReservePrice, "reserve-price", "", "reserve price in base units")
	f.StringVar(&scheduleAccount, "account", "", "keystore account namespace (default account when omitted)")
	f.BoolVar(&scheduleDryRun, "dry-run", false, "preview without submitting transactions")
	scheduleEndAuctionCmd.MarkFlagRequired("collection")
	scheduleEndAuctionCmd.MarkFlagRequired("token-id")
	scheduleEndAuctionCmd.MarkFlagRequired("end-time")
	scheduleEndAuctionCmd.MarkFlagRequired("reserve-price")

	rootCmd.AddCommand(scheduleEndAuctionCmd)
}
