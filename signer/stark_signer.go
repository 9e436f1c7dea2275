package signer

import (
	"encoding/hex"
	"errors"
	"math/big"

	"stark.mleku.dev"
)

// StarkSigner implements the I interface over the Stark curve.  Public keys
// are 32-byte x coordinates (Stark keys) and signatures are 65-byte
// r || s || v.  Message hashes must be field elements.
type StarkSigner struct {
	keypair   *stark.KeyPair
	xonlyPub  []byte
	hasSecret bool
}

// NewStarkSigner creates a new StarkSigner instance
func NewStarkSigner() *StarkSigner {
	return &StarkSigner{}
}

// evenKeyPair negates kp if its public key has an odd y coordinate, so that
// ECDH against a bare x coordinate agrees on both sides
func evenKeyPair(kp *stark.KeyPair) (*stark.KeyPair, error) {
	if kp.PublicKey().Y().Bit(0) == 0 {
		return kp, nil
	}
	return kp.Negate()
}

func (s *StarkSigner) setKeyPair(kp *stark.KeyPair) error {
	kp, err := evenKeyPair(kp)
	if err != nil {
		return err
	}
	s.keypair = kp
	s.xonlyPub = make([]byte, 32)
	kp.PublicKey().X().FillBytes(s.xonlyPub)
	s.hasSecret = true
	return nil
}

// Generate creates a fresh key pair from system entropy with an even y
// coordinate
func (s *StarkSigner) Generate() error {
	kp, err := stark.KeyPairGenerate()
	if err != nil {
		return err
	}
	return s.setKeyPair(kp)
}

// InitSec initialises the secret key from 32 raw bytes, reduced modulo the
// group order, and derives the public key
func (s *StarkSigner) InitSec(sec []byte) error {
	if len(sec) != 32 {
		return errors.New("secret key must be 32 bytes")
	}
	kp, err := stark.KeyPairFromPrivate(new(big.Int).SetBytes(sec))
	if err != nil {
		return err
	}
	return s.setKeyPair(kp)
}

// InitPub initialises a verify-only signer from a 32-byte Stark key
func (s *StarkSigner) InitPub(pub []byte) error {
	if len(pub) != 32 {
		return errors.New("public key must be 32 bytes")
	}
	if _, err := stark.PublicKeyFromX(new(big.Int).SetBytes(pub), false); err != nil {
		return err
	}
	s.keypair = nil
	s.xonlyPub = append([]byte(nil), pub...)
	s.hasSecret = false
	return nil
}

// Sec returns the secret key bytes
func (s *StarkSigner) Sec() []byte {
	if !s.hasSecret || s.keypair == nil {
		return nil
	}
	out := make([]byte, 32)
	s.keypair.PrivateScalar().FillBytes(out)
	return out
}

// Pub returns the 32-byte Stark key
func (s *StarkSigner) Pub() []byte {
	if s.xonlyPub == nil {
		return nil
	}
	return append([]byte(nil), s.xonlyPub...)
}

// messageHex checks a 32-byte message hash is a field element and returns it
// as hex
func messageHex(msg []byte) (string, error) {
	if len(msg) != 32 {
		return "", errors.New("message must be 32 bytes")
	}
	if new(big.Int).SetBytes(msg).Cmp(stark.FieldPrime()) >= 0 {
		return "", errors.New("message must be below the field prime")
	}
	return hex.EncodeToString(msg), nil
}

// Sign creates a 65-byte r || s || v signature with the stored secret key
func (s *StarkSigner) Sign(msg []byte) (sig []byte, err error) {
	if !s.hasSecret || s.keypair == nil {
		return nil, errors.New("no secret key available for signing")
	}
	m, err := messageHex(msg)
	if err != nil {
		return nil, err
	}
	signature, err := stark.Sign(s.keypair, m)
	if err != nil {
		return nil, err
	}
	return signature.Bytes(), nil
}

// Verify checks a message hash and a 64-byte r || s or 65-byte r || s || v
// signature against the stored Stark key
func (s *StarkSigner) Verify(msg, sig []byte) (valid bool, err error) {
	if s.xonlyPub == nil {
		return false, errors.New("no public key available for verification")
	}
	m, err := messageHex(msg)
	if err != nil {
		return false, err
	}

	var signature *stark.Signature
	switch len(sig) {
	case 64:
		signature = &stark.Signature{
			R: new(big.Int).SetBytes(sig[:32]),
			S: new(big.Int).SetBytes(sig[32:64]),
		}
	case 65:
		if signature, err = stark.ParseSignatureBytes(sig); err != nil {
			return false, err
		}
	default:
		return false, errors.New("signature must be 64 or 65 bytes")
	}
	return stark.VerifyStarkKey(hex.EncodeToString(s.xonlyPub), m, signature), nil
}

// Zero wipes the secret key
func (s *StarkSigner) Zero() {
	s.keypair = nil
	s.hasSecret = false
	s.xonlyPub = nil
}

// ECDH returns the SHA-256 hashed shared point between the secret key and a
// 32-byte Stark key, taken with an even y coordinate
func (s *StarkSigner) ECDH(pub []byte) (secret []byte, err error) {
	if !s.hasSecret || s.keypair == nil {
		return nil, errors.New("no secret key available for ECDH")
	}
	if len(pub) != 32 {
		return nil, errors.New("public key must be 32 bytes")
	}
	pubkey, err := stark.PublicKeyFromX(new(big.Int).SetBytes(pub), false)
	if err != nil {
		return nil, err
	}
	var shared [32]byte
	if err := stark.ECDH(shared[:], pubkey, s.keypair, nil); err != nil {
		return nil, err
	}
	return shared[:], nil
}

// StarkGen implements the Gen interface, searching for keys by their
// compressed public key
type StarkGen struct {
	keypair *stark.KeyPair
}

// NewStarkGen creates a new StarkGen instance
func NewStarkGen() *StarkGen {
	return &StarkGen{}
}

// Generate creates a key pair and returns its 33-byte compressed public key
func (g *StarkGen) Generate() (pubBytes []byte, err error) {
	kp, err := stark.KeyPairGenerate()
	if err != nil {
		return nil, err
	}
	g.keypair = kp
	return hex.DecodeString(kp.Public(true))
}

// Negate flips the public key y coordinate between odd and even
func (g *StarkGen) Negate() {
	if g.keypair == nil {
		return
	}
	if kp, err := g.keypair.Negate(); err == nil {
		g.keypair = kp
	}
}

// KeyPairBytes returns the 32-byte secret and the 32-byte Stark key
func (g *StarkGen) KeyPairBytes() (secBytes, cmprPubBytes []byte) {
	if g.keypair == nil {
		return nil, nil
	}
	secBytes = make([]byte, 32)
	g.keypair.PrivateScalar().FillBytes(secBytes)
	cmprPubBytes = make([]byte, 32)
	g.keypair.PublicKey().X().FillBytes(cmprPubBytes)
	return secBytes, cmprPubBytes
}
