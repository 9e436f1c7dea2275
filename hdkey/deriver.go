package hdkey

import (
	"github.com/pkg/errors"
)

// Deriver derives raw secp256k1 private keys from wallet seeds.  It satisfies
// the key derivation interface expected by the Stark key functions.
type Deriver struct{}

// DerivePrivateKey returns the 32-byte private key at path below the master
// node of seed
func (Deriver) DerivePrivateKey(seed []byte, path string) ([]byte, error) {
	master, err := FromBitcoinSeed(seed)
	if err != nil {
		return nil, errors.Wrap(err, "master key")
	}
	child, err := master.DerivePath(path)
	if err != nil {
		return nil, err
	}
	return child.PrivateKey()
}
