package keystore

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/ripemd160"
)

// GenerateMnemonic produces a fresh 24-word mnemonic.
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", errors.Wrap(err, "failed on entropy generation")
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errors.Wrap(err, "failed on mnemonic generation")
	}
	return mnemonic, nil
}

// DeriveAddress renders the bech32 account address for a stored mnemonic.
// Hashing follows the sha256-then-ripemd160 account address convention.
func DeriveAddress(mnemonic, hrp string) (string, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return "", errors.New("invalid mnemonic")
	}
	seed := bip39.NewSeed(mnemonic, "")
	sum := sha256.Sum256(seed)
	r := ripemd160.New()
	r.Write(sum[:])
	hash := r.Sum(nil)

	converted, err := bech32.ConvertBits(hash, 8, 5, true)
	if err != nil {
		return "", errors.Wrap(err, "failed on bech32 conversion")
	}
	addr, err := bech32.Encode(hrp, converted)
	if err != nil {
		return "", errors.Wrap(err, "failed on bech32 encoding")
	}
	return addr, nil
}
