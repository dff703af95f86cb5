package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/public-awesome/marketplace/config"
	"github.com/public-awesome/marketplace/cosmos"
	v1 "github.com/public-awesome/marketplace/marketplace/v1"
	v2 "github.com/public-awesome/marketplace/marketplace/v2"
	v3 "github.com/public-awesome/marketplace/marketplace/v3"
	"github.com/public-awesome/marketplace/reserveauction"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "read-only contract queries",
}

func marketplaceVersion(cfg *config.Config) string {
	if cfg.Contracts.MarketplaceVersion == "" {
		return "v2"
	}
	return cfg.Contracts.MarketplaceVersion
}

func numericTokenID(raw string) (uint32, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, cosmos.NewInputError("token id %q is not a number", raw)
	}
	return uint32(id), nil
}

var queryParamsCmd = &cobra.Command{
	Use:   "params",
	Short: "show the marketplace contract parameters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, err := newQueryClient(cfg)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		addr := cfg.Contracts.Marketplace
		switch marketplaceVersion(cfg) {
		case "v1":
			params, err := v1.NewQueryClient(client, addr).Params(ctx)
			if err != nil {
				return err
			}
			return printJSON(params)
		case "v2":
			params, err := v2.NewQueryClient(client, addr).Params(ctx)
			if err != nil {
				return err
			}
			return printJSON(params)
		default:
			params, err := v3.NewQueryClient(client, addr).SudoParams(ctx)
			if err != nil {
				return err
			}
			return printJSON(params)
		}
	},
}

var (
	askCollection string
	askTokenID    string
)

var queryAskCmd = &cobra.Command{
	Use:   "ask",
	Short: "show the current ask for one token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, err := newQueryClient(cfg)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		addr := cfg.Contracts.Marketplace
		switch marketplaceVersion(cfg) {
		case "v1":
			id, err := numericTokenID(askTokenID)
			if err != nil {
				return err
			}
			ask, err := v1.NewQueryClient(client, addr).CurrentAsk(ctx, askCollection, id)
			if err != nil {
				return err
			}
			return printJSON(ask)
		case "v2":
			id, err := numericTokenID(askTokenID)
			if err != nil {
				return err
			}
			ask, err := v2.NewQueryClient(client, addr).Ask(ctx, askCollection, id)
			if err != nil {
				return err
			}
			return printJSON(ask)
		default:
			ask, err := v3.NewQueryClient(client, addr).Ask(ctx, askCollection, askTokenID)
			if err != nil {
				return err
			}
			return printJSON(ask)
		}
	},
}

var (
	asksCollection string
	asksLimit      uint32
	asksStartAfter string
)

var queryAsksCmd = &cobra.Command{
	Use:   "asks",
	Short: "list asks for a collection ordered by token id",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, err := newQueryClient(cfg)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		addr := cfg.Contracts.Marketplace

		var limit *uint32
		if asksLimit > 0 {
			limit = &asksLimit
		}
		switch marketplaceVersion(cfg) {
		case "v1":
			var startAfter *uint32
			if asksStartAfter != "" {
				id, err := numericTokenID(asksStartAfter)
				if err != nil {
					return err
				}
				startAfter = &id
			}
			asks, err := v1.NewQueryClient(client, addr).Asks(ctx, asksCollection, startAfter, limit)
			if err != nil {
				return err
			}
			return printJSON(asks)
		case "v2":
			var startAfter *uint32
			if asksStartAfter != "" {
				id, err := numericTokenID(asksStartAfter)
				if err != nil {
					return err
				}
				startAfter = &id
			}
			asks, err := v2.NewQueryClient(client, addr).Asks(ctx, v2.AsksQuery{
				Collection: asksCollection,
				StartAfter: startAfter,
				Limit:      limit,
			})
			if err != nil {
				return err
			}
			return printJSON(asks)
		default:
			opts := &v3.QueryOptions[v3.TokenID]{Limit: limit}
			if asksStartAfter != "" {
				cursor := asksStartAfter
				opts.StartAfter = &cursor
			}
			asks, err := v3.NewQueryClient(client, addr).Asks(ctx, asksCollection, opts)
			if err != nil {
				return err
			}
			return printJSON(asks)
		}
	},
}

var auctionsSeller string

var queryAuctionsCmd = &cobra.Command{
	Use:   "auctions",
	Short: "list a seller's open auctions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, err := newQueryClient(cfg)
		if err != nil {
			return err
		}
		auctions, err := reserveauction.NewQueryClient(client, cfg.Contracts.ReserveAuction).
			AllAuctionsBySeller(cmd.Context(), auctionsSeller, 100)
		if err != nil {
			return err
		}
		return printJSON(auctions)
	},
}

var queryAuctionConfigCmd = &cobra.Command{
	Use:   "auction-config",
	Short: "show the reserve auction contract configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, err := newQueryClient(cfg)
		if err != nil {
			return err
		}
		auctionCfg, err := reserveauction.NewQueryClient(client, cfg.Contracts.ReserveAuction).
			Config(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(auctionCfg)
	},
}

func init() {
	queryAskCmd.Flags().StringVar(&askCollection, "collection", "", "collection contract address")
	queryAskCmd.Flags().StringVar(&askTokenID, "token-id", "", "token id")
	queryAskCmd.MarkFlagRequired("collection")
	queryAskCmd.MarkFlagRequired("token-id")

	queryAsksCmd.Flags().StringVar(&asksCollection, "collection", "", "collection contract address")
	queryAsksCmd.Flags().Uint32Var(&asksLimit, "limit", 0, "page size (contract default when omitted)")
	queryAsksCmd.Flags().StringVar(&asksStartAfter, "start-after", "", "token id cursor, exclusive")
	queryAsksCmd.MarkFlagRequired("collection")

	queryAuctionsCmd.Flags().StringVar(&auctionsSeller, "seller", "", "seller address")
	queryAuctionsCmd.MarkFlagRequired("seller")

	queryCmd.AddCommand(queryParamsCmd, queryAskCmd, queryAsksCmd, queryAuctionsCmd, queryAuctionConfigCmd)
	rootCmd.AddCommand(queryCmd)
}
