package stark

import (
	"crypto/rand"
	"math/big"
)

// KeyPair is a Stark private scalar with its public point, or a public point
// alone.  A public-only key pair can verify but not sign.  Key pairs are
// immutable once built.
type KeyPair struct {
	priv    Scalar
	hasPriv bool
	pub     PublicKey
}

// KeyPairFromPrivate builds a key pair from a private scalar, reducing it
// modulo the group order.  A scalar that reduces to zero is rejected.
func KeyPairFromPrivate(d *big.Int) (*KeyPair, error) {
	if d == nil {
		return nil, makeError(ErrInvalidPrivateKey, "private key is nil")
	}
	kp := &KeyPair{hasPriv: true}
	kp.priv.setBig(d)
	if kp.priv.isZero() {
		return nil, makeError(ErrInvalidPrivateKey, "private key is zero modulo the group order")
	}
	kp.pub.point = baseMulAffine(&kp.priv)
	return kp, nil
}

// KeyPairFromPrivateHex builds a key pair from a hex private key, with or
// without prefix
func KeyPairFromPrivateHex(s string) (*KeyPair, error) {
	d, ok := parseHexInt(s)
	if !ok {
		return nil, makeError(ErrInvalidPrivateKey, "private key is not hex")
	}
	return KeyPairFromPrivate(d)
}

// KeyPairFromPublic builds a verify-only key pair from a compressed or
// uncompressed hex public key
func KeyPairFromPublic(s string) (*KeyPair, error) {
	pub, err := parsePublicKeyHex(s)
	if err != nil {
		return nil, err
	}
	return &KeyPair{pub: *pub}, nil
}

// KeyPairGenerate creates a key pair from 32 bytes of system entropy ground
// into the scalar field
func KeyPairGenerate() (*KeyPair, error) {
	var seed [32]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, err
	}
	d, err := GrindKey(seed[:])
	clear(seed[:])
	if err != nil {
		return nil, err
	}
	return KeyPairFromPrivate(d)
}

// HasPrivate reports whether the key pair can sign
func (kp *KeyPair) HasPrivate() bool {
	return kp.hasPriv
}

// Private returns the private scalar as even-length hex without prefix, or
// the empty string for a public-only key pair
func (kp *KeyPair) Private() string {
	if !kp.hasPriv {
		return ""
	}
	return sanitizeBytes(bigToHex(kp.priv.toBig()), 2)
}

// PrivateScalar returns a copy of the private scalar, or nil
func (kp *KeyPair) PrivateScalar() *big.Int {
	if !kp.hasPriv {
		return nil
	}
	return kp.priv.toBig()
}

// PublicKey returns the public point
func (kp *KeyPair) PublicKey() *PublicKey {
	pub := kp.pub
	return &pub
}

// Public returns the public key as hex without prefix: 04||x||y, or
// 02/03||x when compressed
func (kp *KeyPair) Public(compressed bool) string {
	return kp.pub.Hex(compressed)
}

// StarkPublicKey returns the compressed public key
func (kp *KeyPair) StarkPublicKey() string {
	return kp.Public(true)
}

// Compress converts a hex public key in either encoding to compressed form
func Compress(pub string) (string, error) {
	p, err := parsePublicKeyHex(pub)
	if err != nil {
		return "", err
	}
	return p.Hex(true), nil
}

// Decompress converts a hex public key in either encoding to uncompressed
// form
func Decompress(pub string) (string, error) {
	p, err := parsePublicKeyHex(pub)
	if err != nil {
		return "", err
	}
	return p.Hex(false), nil
}

// XCoordinate returns the x coordinate of a hex public key as even-length hex
// without prefix
func XCoordinate(pub string) (string, error) {
	p, err := parsePublicKeyHex(pub)
	if err != nil {
		return "", err
	}
	return sanitizeBytes(bigToHex(p.X()), 2), nil
}

// YCoordinate returns the y coordinate of a hex public key as even-length hex
// without prefix
func YCoordinate(pub string) (string, error) {
	p, err := parsePublicKeyHex(pub)
	if err != nil {
		return "", err
	}
	return sanitizeBytes(bigToHex(p.Y()), 2), nil
}

// StarkKey returns the 0x prefixed x coordinate of a hex public key, the form
// used to identify accounts on the exchange
func StarkKey(pub string) (string, error) {
	x, err := XCoordinate(pub)
	if err != nil {
		return "", err
	}
	return addHexPrefix(x), nil
}

// Negate returns the key pair for n - d, whose public point is the negation
// of kp's.  The x coordinate is unchanged and the y parity flips.
func (kp *KeyPair) Negate() (*KeyPair, error) {
	if !kp.hasPriv {
		return nil, makeError(ErrMissingPrivateKey, "key pair has no private key")
	}
	out := &KeyPair{hasPriv: true}
	out.priv.negate(&kp.priv)
	out.pub.point.negate(&kp.pub.point)
	return out, nil
}

// PublicKeyFromX returns the point with x coordinate x and the requested y
// parity
func PublicKeyFromX(x *big.Int, odd bool) (*PublicKey, error) {
	pub, ok := publicKeyFromX(x, odd)
	if !ok {
		return nil, makeError(ErrInvalidPublicKey, "x coordinate is not on the curve")
	}
	return pub, nil
}
