package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/public-awesome/marketplace/logger/xzap"
)

// Config is the application-wide configuration.
type Config struct {
	Log       xzap.LogConf `toml:"log" mapstructure:"log" json:"log"`
	Chain     ChainCfg     `toml:"chain" mapstructure:"chain" json:"chain"`
	Contracts ContractCfg  `toml:"contracts" mapstructure:"contracts" json:"contracts"`
	Keystore  KeystoreCfg  `toml:"keystore" mapstructure:"keystore" json:"keystore"`
}

// ChainCfg points the clients at one chain deployment.
type ChainCfg struct {
	Node            string `toml:"node" mapstructure:"node" json:"node"`                                        // LCD query endpoint
	Broadcast       string `toml:"broadcast" mapstructure:"broadcast" json:"broadcast"`                         // tx broadcast gateway
	Bech32Prefix    string `toml:"bech32_prefix" mapstructure:"bech32_prefix" json:"bech32_prefix"`             // account address prefix
	Denom           string `toml:"denom" mapstructure:"denom" json:"denom"`                                     // base denom, e.g. ustars
	DisplayExponent int32  `toml:"display_exponent" mapstructure:"display_exponent" json:"display_exponent"`    // micro → display shift
	GasPrice        string `toml:"gas_price" mapstructure:"gas_price" json:"gas_price"`                         // e.g. 0.025ustars
	TimeoutSeconds  int64  `toml:"timeout_seconds" mapstructure:"timeout_seconds" json:"timeout_seconds"`
}

// ContractCfg holds the deployed contract addresses.
type ContractCfg struct {
	Marketplace    string `toml:"marketplace" mapstructure:"marketplace" json:"marketplace"`
	ReserveAuction string `toml:"reserve_auction" mapstructure:"reserve_auction" json:"reserve_auction"`
	// Which marketplace schema family the deployed contract speaks: v1, v2 or v3.
	MarketplaceVersion string `toml:"marketplace_version" mapstructure:"marketplace_version" json:"marketplace_version"`
}

type KeystoreCfg struct {
	Path string `toml:"path" mapstructure:"path" json:"path"`
}

// UnmarshalConfig loads and parses the TOML config at the given path.
// Environment variables prefixed with MKTP override file values, with dots
// replaced by underscores (MKTP_CHAIN_NODE for chain.node).
func UnmarshalConfig(configFilePath string) (*Config, error) {
	viper.SetConfigFile(configFilePath)
	viper.SetConfigType("toml")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("MKTP")
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	if err := viper.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "failed on read config")
	}

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "failed on unmarshal config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c.Chain.Node == "" {
		return errors.New("chain.node is required")
	}
	if c.Chain.Denom == "" {
		c.Chain.Denom = "ustars"
	}
	if c.Chain.Bech32Prefix == "" {
		c.Chain.Bech32Prefix = "stars"
	}
	if c.Chain.DisplayExponent == 0 {
		c.Chain.DisplayExponent = 6
	}
	switch c.Contracts.MarketplaceVersion {
	case "", "v1", "v2", "v3":
	default:
		return errors.Errorf("unknown marketplace_version %q", c.Contracts.MarketplaceVersion)
	}
	return nil
}
