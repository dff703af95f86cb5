package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestUnmarshalConfig(t *testing.T) {
	path := writeConfig(t, `
[log]
mode = "console"
level = "debug"

[chain]
node = "https://rest.stargaze-apis.com"
gas_price = "1.1ustars"
timeout_seconds = 30

[contracts]
marketplace = "stars1mkt"
reserve_auction = "stars1auction"
marketplace_version = "v2"

[keystore]
path = "/tmp/keystore"
`)

	cfg, err := UnmarshalConfig(path)
	require.NoError(t, err)
	require.Equal(t, "https://rest.stargaze-apis.com", cfg.Chain.Node)
	require.Equal(t, "1.1ustars", cfg.Chain.GasPrice)
	require.Equal(t, int64(30), cfg.Chain.TimeoutSeconds)
	require.Equal(t, "stars1mkt", cfg.Contracts.Marketplace)
	require.Equal(t, "v2", cfg.Contracts.MarketplaceVersion)
	require.Equal(t, "debug", cfg.Log.Level)

	// Chain defaults fill in when omitted.
	require.Equal(t, "ustars", cfg.Chain.Denom)
	require.Equal(t, "stars", cfg.Chain.Bech32Prefix)
	require.Equal(t, int32(6), cfg.Chain.DisplayExponent)
}

func TestUnmarshalConfigMissingNode(t *testing.T) {
	path := writeConfig(t, `
[contracts]
marketplace = "stars1mkt"
`)
	_, err := UnmarshalConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "chain.node")
}

func TestValidateMarketplaceVersion(t *testing.T) {
	for _, v := range []string{"", "v1", "v2", "v3"} {
		c := &Config{}
		c.Chain.Node = "http://localhost:1317"
		c.Contracts.MarketplaceVersion = v
		require.NoError(t, c.Validate())
	}

	c := &Config{}
	c.Chain.Node = "http://localhost:1317"
	c.Contracts.MarketplaceVersion = "v4"
	require.Error(t, c.Validate())
}
