package cmd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/zeromicro/go-zero/core/mr"

	"github.com/public-awesome/marketplace/config"
	"github.com/public-awesome/marketplace/cosmos"
	"github.com/public-awesome/marketplace/keystore"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "manage local accounts",
}

var keysGenerateCmd = &cobra.Command{
	Use:   "generate <namespace>",
	Short: "generate a mnemonic and store it under an account namespace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ks, err := openKeystore(cfg)
		if err != nil {
			return err
		}
		defer ks.Close()

		namespace := args[0]
		if _, exists, err := ks.Mnemonic(namespace); err != nil {
			return err
		} else if exists {
			return errors.Errorf("account namespace %q already exists", namespace)
		}
		mnemonic, err := keystore.GenerateMnemonic()
		if err != nil {
			return err
		}
		if err := ks.SetMnemonic(namespace, mnemonic); err != nil {
			return err
		}
		address, err := keystore.DeriveAddress(mnemonic, cfg.Chain.Bech32Prefix)
		if err != nil {
			return err
		}
		return printJSON(map[string]string{
			"namespace": namespace,
			"address":   address,
			"mnemonic":  mnemonic,
		})
	},
}

var keysSetCmd = &cobra.Command{
	Use:   "set <namespace> <mnemonic...>",
	Short: "import an existing mnemonic under an account namespace",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ks, err := openKeystore(cfg)
		if err != nil {
			return err
		}
		defer ks.Close()

		namespace := args[0]
		mnemonic := ""
		for i, w := range args[1:] {
			if i > 0 {
				mnemonic += " "
			}
			mnemonic += w
		}
		address, err := keystore.DeriveAddress(mnemonic, cfg.Chain.Bech32Prefix)
		if err != nil {
			return err
		}
		if err := ks.SetMnemonic(namespace, mnemonic); err != nil {
			return err
		}
		return printJSON(map[string]string{"namespace": namespace, "address": address})
	},
}

var keysSetDefaultCmd = &cobra.Command{
	Use:   "set-default <namespace>",
	Short: "select the default account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ks, err := openKeystore(cfg)
		if err != nil {
			return err
		}
		defer ks.Close()
		return ks.SetDefault(args[0])
	},
}

type accountRow struct {
	Namespace string `json:"namespace"`
	Address   string `json:"address"`
	Default   bool   `json:"default"`
	Balance   string `json:"balance"`
}

var keysListCmd = &cobra.Command{
	Use:   "list",
	Short: "list accounts with their current balances",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ks, err := openKeystore(cfg)
		if err != nil {
			return err
		}
		defer ks.Close()

		namespaces, err := ks.Namespaces()
		if err != nil {
			return err
		}
		def, _, err := ks.Default()
		if err != nil {
			return err
		}
		client, err := newQueryClient(cfg)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		// Balance lookups are independent queries, fan them out.
		rows, err := mr.MapReduce(func(source chan<- string) {
			for _, ns := range namespaces {
				source <- ns
			}
		}, func(ns string, writer mr.Writer[accountRow], cancel func(error)) {
			row, err := balanceRow(ctx, cfg, ks, client, ns, def)
			if err != nil {
				cancel(err)
				return
			}
			writer.Write(row)
		}, func(pipe <-chan accountRow, writer mr.Writer[[]accountRow], cancel func(error)) {
			var out []accountRow
			for row := range pipe {
				out = append(out, row)
			}
			writer.Write(out)
		})
		if err != nil {
			return err
		}
		return printJSON(rows)
	},
}

func balanceRow(ctx context.Context, cfg *config.Config, ks *keystore.Keystore, client cosmos.QueryClient, namespace, def string) (accountRow, error) {
	mnemonic, _, err := ks.Mnemonic(namespace)
	if err != nil {
		return accountRow{}, err
	}
	address, err := keystore.DeriveAddress(mnemonic, cfg.Chain.Bech32Prefix)
	if err != nil {
		return accountRow{}, err
	}
	coin, err := client.GetBalance(ctx, address, cfg.Chain.Denom)
	if err != nil {
		return accountRow{}, err
	}
	display := coin.ToDisplay(cfg.Chain.DisplayExponent)
	return accountRow{
		Namespace: namespace,
		Address:   address,
		Default:   namespace == def,
		Balance:   display.String() + " " + displayDenom(cfg.Chain.Denom),
	}, nil
}

var keysGetBalanceCmd = &cobra.Command{
	Use:   "get-balance [namespace]",
	Short: "show one account's balance in display units",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ks, err := openKeystore(cfg)
		if err != nil {
			return err
		}
		defer ks.Close()

		namespace := ""
		if len(args) == 1 {
			namespace = args[0]
		} else {
			def, ok, err := ks.Default()
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("no default account, run `keys generate` first")
			}
			namespace = def
		}
		client, err := newQueryClient(cfg)
		if err != nil {
			return err
		}
		def, _, err := ks.Default()
		if err != nil {
			return err
		}
		row, err := balanceRow(cmd.Context(), cfg, ks, client, namespace, def)
		if err != nil {
			return err
		}
		return printJSON(row)
	},
}

func init() {
	keysCmd.AddCommand(keysGenerateCmd, keysSetCmd, keysSetDefaultCmd, keysListCmd, keysGetBalanceCmd)
	rootCmd.AddCommand(keysCmd)
}
