package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint128Validate(t *testing.T) {
	for _, ok := range []string{"0", "1", "100000000", "340282366920938463463374607431768211455"} {
		require.NoError(t, Uint128(ok).Validate(), ok)
	}
	for _, bad := range []string{"", "-1", "1.5", "1e6", "0x10", " 1", "abc"} {
		require.Error(t, Uint128(bad).Validate(), bad)
	}
}

func TestUint128CompareArbitraryPrecision(t *testing.T) {
	big := Uint128("1000000000000000000000")
	small := Uint128("999999999999999999999")
	// A float parse would see these as equal.
	require.True(t, big.GT(small))
	require.True(t, small.LT(big))
	require.Equal(t, 0, big.Cmp(big))
}

func TestNewUint128(t *testing.T) {
	u, err := NewUint128("42")
	require.NoError(t, err)
	require.Equal(t, "42", u.String())

	_, err = NewUint128("4.2")
	require.Error(t, err)
}

func TestDecimalValidate(t *testing.T) {
	require.NoError(t, Decimal("2.5").Validate())
	require.NoError(t, Decimal("250").Validate())
	require.Error(t, Decimal("two").Validate())
}
