package stark

import (
	"fmt"
	"math/big"
	"strings"

	"stark.mleku.dev/hdkey"
)

// maxGrindIterations bounds the grinding loop.  About one draw in 32 lands at
// or above the limit, so reaching the bound means the hash is broken.
const maxGrindIterations = 1 << 20

// ForeignKeyDeriver derives a raw secp256k1 private key at a BIP32 path from a
// wallet seed
type ForeignKeyDeriver interface {
	DerivePrivateKey(seed []byte, path string) ([]byte, error)
}

// AccountPath builds the derivation path m/2645'/L'/A'/a1'/a2'/index.  L and A
// are the low 31 bits of SHA-256 over the layer and application names; a1 and
// a2 are the low and next 31-bit windows of the Ethereum address.
func AccountPath(layer, application, ethAddress, index string) (string, error) {
	addr, ok := parseHexInt(ethAddress)
	if !ok {
		str := fmt.Sprintf("invalid address: %q is not hex", ethAddress)
		return "", makeError(ErrInvalidInput, str)
	}
	if strings.TrimSpace(index) == "" {
		return "", makeError(ErrInvalidInput, "empty path index")
	}

	layerInt := low31(sha256Sum([]byte(layer)))
	appInt := low31(sha256Sum([]byte(application)))

	mask := big.NewInt(1<<31 - 1)
	a1 := new(big.Int).And(addr, mask)
	a2 := new(big.Int).Rsh(addr, 31)
	a2.And(a2, mask)

	return fmt.Sprintf("m/2645'/%d'/%d'/%d'/%d'/%s",
		layerInt, appInt, a1.Uint64(), a2.Uint64(), index), nil
}

// low31 returns the least significant 31 bits of a big-endian digest
func low31(digest [32]byte) uint32 {
	return uint32(readBE64(digest[24:32]) & (1<<31 - 1))
}

// GrindKey maps a raw secp256k1 private key into the Stark scalar field
// without modulo bias.  It hashes the key with a counter until the digest is
// below the largest multiple of n that fits under the secp256k1 order, then
// reduces modulo n.
func GrindKey(raw []byte) (*big.Int, error) {
	limit := new(big.Int).Mod(secpOrderBig, groupOrderBig)
	limit.Sub(secpOrderBig, limit)

	h := new(big.Int)
	for i := 0; i < maxGrindIterations; i++ {
		digest := sha256Sum(raw, grindCounter(i))
		h.SetBytes(digest[:])
		if h.Cmp(limit) < 0 {
			return h.Mod(h, groupOrderBig), nil
		}
	}
	return nil, makeError(ErrGrindExhausted, "no digest below the grinding limit")
}

// grindCounter encodes i as minimal big-endian bytes, with zero as one byte
func grindCounter(i int) []byte {
	b := big.NewInt(int64(i)).Bytes()
	if len(b) == 0 {
		return []byte{0}
	}
	return b
}

// KeyPairFromSeedAndPath derives the raw key at path with d and grinds it into
// a Stark key pair
func KeyPairFromSeedAndPath(d ForeignKeyDeriver, seed []byte, path string) (*KeyPair, error) {
	raw, err := d.DerivePrivateKey(seed, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", makeError(ErrDerivation, "derive "+path), err)
	}
	priv, err := GrindKey(raw)
	clear(raw)
	if err != nil {
		return nil, err
	}
	return KeyPairFromPrivate(priv)
}

// KeyPairFromMnemonic derives a key pair from a BIP39 mnemonic, without
// passphrase, at the given path using BIP32 on secp256k1
func KeyPairFromMnemonic(mnemonic, path string) (*KeyPair, error) {
	seed := hdkey.NewSeed(mnemonic, "")
	defer clear(seed)
	return KeyPairFromSeedAndPath(hdkey.Deriver{}, seed, path)
}
