package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewCoin(t *testing.T) {
	c, err := NewCoin("100000000", "ustars")
	require.NoError(t, err)
	require.Equal(t, "100000000ustars", c.String())

	_, err = NewCoin("100.5", "ustars")
	require.Error(t, err)

	_, err = NewCoin("100", "")
	require.Error(t, err)
}

func TestCoinDisplayConversion(t *testing.T) {
	c, err := NewCoin("1500000", "ustars")
	require.NoError(t, err)
	require.Equal(t, "1.5", c.ToDisplay(6).String())

	raw := FromDisplay(decimal.RequireFromString("1.5"), 6)
	require.Equal(t, Uint128("1500000"), raw)

	// Fractions below one base unit truncate.
	raw = FromDisplay(decimal.RequireFromString("0.0000001"), 6)
	require.Equal(t, Uint128("0"), raw)
}
