package keystore

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon " +
	"abandon abandon abandon abandon abandon abandon abandon abandon " +
	"abandon abandon abandon abandon abandon abandon abandon art"

func openTestStore(t *testing.T) *Keystore {
	t.Helper()
	ks, err := Open(filepath.Join(t.TempDir(), "keystore"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, ks.Close()) })
	return ks
}

func TestMnemonicRoundTrip(t *testing.T) {
	ks := openTestStore(t)

	_, ok, err := ks.Mnemonic("main")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, ks.SetMnemonic("main", testMnemonic))
	got, ok, err := ks.Mnemonic("main")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, testMnemonic, got)

	require.Error(t, ks.SetMnemonic("", testMnemonic))
}

func TestFirstAccountBecomesDefault(t *testing.T) {
	ks := openTestStore(t)

	_, ok, err := ks.Default()
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, ks.SetMnemonic("first", testMnemonic))
	require.NoError(t, ks.SetMnemonic("second", testMnemonic))

	def, ok, err := ks.Default()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "first", def)

	require.NoError(t, ks.SetDefault("second"))
	def, _, err = ks.Default()
	require.NoError(t, err)
	require.Equal(t, "second", def)
}

func TestSetDefaultRejectsUnknownNamespace(t *testing.T) {
	ks := openTestStore(t)
	require.NoError(t, ks.SetMnemonic("main", testMnemonic))
	require.Error(t, ks.SetDefault("ghost"))
}

func TestNamespacesLexicalOrder(t *testing.T) {
	ks := openTestStore(t)

	for _, ns := range []string{"charlie", "alice", "bob"} {
		require.NoError(t, ks.SetMnemonic(ns, testMnemonic))
	}
	// Settings and the default marker share the store but must not leak
	// into the namespace listing.
	require.NoError(t, ks.SetSetting("node", "http://localhost:1317"))

	namespaces, err := ks.Namespaces()
	require.NoError(t, err)
	require.Equal(t, []string{"alice", "bob", "charlie"}, namespaces)
}

func TestSettings(t *testing.T) {
	ks := openTestStore(t)

	_, ok, err := ks.Setting(SettingNode)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, ks.SetSetting(SettingNode, "http://localhost:1317"))
	require.NoError(t, ks.SetSetting(SettingGasPrice, "1.1ustars"))

	node, ok, err := ks.Setting(SettingNode)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "http://localhost:1317", node)
}

func TestGenerateMnemonic(t *testing.T) {
	mnemonic, err := GenerateMnemonic()
	require.NoError(t, err)
	require.Len(t, strings.Fields(mnemonic), 24)

	addr, err := DeriveAddress(mnemonic, "stars")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(addr, "stars1"))

	other, err := GenerateMnemonic()
	require.NoError(t, err)
	require.NotEqual(t, mnemonic, other)
}

func TestDeriveAddress(t *testing.T) {
	addr, err := DeriveAddress(testMnemonic, "stars")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(addr, "stars1"))

	// Deterministic for the same mnemonic, distinct per prefix.
	again, err := DeriveAddress(testMnemonic, "stars")
	require.NoError(t, err)
	require.Equal(t, addr, again)

	cosmosAddr, err := DeriveAddress(testMnemonic, "cosmos")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(cosmosAddr, "cosmos1"))

	_, err = DeriveAddress("not a mnemonic", "stars")
	require.Error(t, err)
}
