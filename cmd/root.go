package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/public-awesome/marketplace/config"
	"github.com/public-awesome/marketplace/cosmos"
	"github.com/public-awesome/marketplace/keystore"
	"github.com/public-awesome/marketplace/logger/xzap"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:           "marketplace",
	Short:         "typed client and CLI for the marketplace and reserve auction contracts",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.toml", "path to the TOML config file")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.UnmarshalConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	if _, err := xzap.SetUp(cfg.Log); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openKeystore(cfg *config.Config) (*keystore.Keystore, error) {
	path := cfg.Keystore.Path
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "failed on resolve home dir")
		}
		path = home + "/.marketplace/keystore"
	}
	return keystore.Open(path)
}

func newQueryClient(cfg *config.Config) (*cosmos.HTTPClient, error) {
	opts := []cosmos.HTTPOption{}
	if cfg.Chain.TimeoutSeconds > 0 {
		opts = append(opts, cosmos.WithTimeout(time.Duration(cfg.Chain.TimeoutSeconds)*time.Second))
	}
	return cosmos.NewHTTPClient(cfg.Chain.Node, opts...)
}

// newSigningClient binds the broadcast gateway to the default (or named)
// keystore account's derived address.
func newSigningClient(cfg *config.Config, ks *keystore.Keystore, namespace string) (*cosmos.HTTPSigningClient, error) {
	if namespace == "" {
		def, ok, err := ks.Default()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.New("no default account, run `keys generate` first")
		}
		namespace = def
	}
	mnemonic, ok, err := ks.Mnemonic(namespace)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Errorf("unknown account namespace %q", namespace)
	}
	sender, err := keystore.DeriveAddress(mnemonic, cfg.Chain.Bech32Prefix)
	if err != nil {
		return nil, err
	}
	queries, err := newQueryClient(cfg)
	if err != nil {
		return nil, err
	}
	broadcast := cfg.Chain.Broadcast
	if broadcast == "" {
		broadcast = cfg.Chain.Node
	}
	return cosmos.NewHTTPSigningClient(queries, broadcast, sender)
}

func feeFromConfig(cfg *config.Config) cosmos.Fee {
	if cfg.Chain.GasPrice != "" {
		return cosmos.GasPriceFee(cfg.Chain.GasPrice)
	}
	return cosmos.AutoFee()
}

// displayDenom renders a base denom in its display form, e.g. ustars → STARS.
func displayDenom(denom string) string {
	if len(denom) > 1 && denom[0] == 'u' {
		return strings.ToUpper(denom[1:])
	}
	return strings.ToUpper(denom)
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
