// Package keystore is the CLI's local credential store: account namespaces
// mapped to mnemonics, a default-account pointer, and node/gas settings.
// Backed by a pebble database under the user's config directory. The contract
// clients never touch this store.
package keystore

import (
	"github.com/cockroachdb/pebble"
	"github.com/pkg/errors"
)

// keys: m:<namespace>, s:<setting>, d (default-account pointer)
func kMnemonic(namespace string) []byte { return append([]byte("m:"), namespace...) }
func kSetting(name string) []byte       { return append([]byte("s:"), name...) }
func kDefault() []byte                  { return []byte("d") }

const (
	SettingNode     = "node"
	SettingGasPrice = "gas-price"
)

type Keystore struct {
	db *pebble.DB
}

func Open(path string) (*Keystore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrap(err, "failed on open keystore")
	}
	return &Keystore{db: db}, nil
}

func (k *Keystore) Close() error { return k.db.Close() }

func (k *Keystore) get(key []byte) (string, bool, error) {
	val, closer, err := k.db.Get(key)
	if err == pebble.ErrNotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "failed on keystore read")
	}
	out := string(val)
	if err := closer.Close(); err != nil {
		return "", false, err
	}
	return out, true, nil
}

func (k *Keystore) set(key []byte, value string) error {
	if err := k.db.Set(key, []byte(value), pebble.Sync); err != nil {
		return errors.Wrap(err, "failed on keystore write")
	}
	return nil
}

// SetMnemonic stores the mnemonic for an account namespace, overwriting any
// existing entry. The first namespace stored becomes the default account.
func (k *Keystore) SetMnemonic(namespace, mnemonic string) error {
	if namespace == "" {
		return errors.New("empty account namespace")
	}
	if err := k.set(kMnemonic(namespace), mnemonic); err != nil {
		return err
	}
	if _, ok, err := k.Default(); err != nil {
		return err
	} else if !ok {
		return k.SetDefault(namespace)
	}
	return nil
}

func (k *Keystore) Mnemonic(namespace string) (string, bool, error) {
	return k.get(kMnemonic(namespace))
}

// Namespaces lists every stored account namespace in lexical order.
func (k *Keystore) Namespaces() ([]string, error) {
	prefix := []byte("m:")
	upper := []byte("m;")
	iter, err := k.db.NewIter(&pebble.IterOptions{LowerBound: prefix, UpperBound: upper})
	if err != nil {
		return nil, errors.Wrap(err, "failed on keystore scan")
	}
	var out []string
	for iter.First(); iter.Valid(); iter.Next() {
		out = append(out, string(iter.Key()[len(prefix):]))
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return out, nil
}

func (k *Keystore) SetDefault(namespace string) error {
	if _, ok, err := k.Mnemonic(namespace); err != nil {
		return err
	} else if !ok {
		return errors.Errorf("unknown account namespace %q", namespace)
	}
	return k.set(kDefault(), namespace)
}

func (k *Keystore) Default() (string, bool, error) {
	return k.get(kDefault())
}

func (k *Keystore) SetSetting(name, value string) error {
	return k.set(kSetting(name), value)
}

func (k *Keystore) Setting(name string) (string, bool, error) {
	return k.get(kSetting(name))
}
