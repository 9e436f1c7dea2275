package stark

import (
	"encoding/hex"
	"math/big"
)

// PublicKey is a point on the Stark curve other than infinity
type PublicKey struct {
	point GroupElementAffine
}

// Compression flags for public key serialization
const (
	ECCompressed   = 0x02
	ECUncompressed = 0x04
)

// ECPubkeyParse parses a public key in the 33-byte compressed or 65-byte
// uncompressed encoding
func ECPubkeyParse(pubkey *PublicKey, input []byte) error {
	var point GroupElementAffine

	switch len(input) {
	case 33:
		if input[0] != 0x02 && input[0] != 0x03 {
			return makeError(ErrInvalidPublicKey, "invalid compressed public key prefix")
		}
		var x FieldElement
		if err := x.setB32(input[1:33]); err != nil {
			return makeError(ErrInvalidPublicKey, "public key x coordinate "+err.Error())
		}
		if !point.setXOVar(&x, input[0] == 0x03) {
			return makeError(ErrInvalidPublicKey, "public key x coordinate is not on the curve")
		}

	case 65:
		if input[0] != 0x04 {
			return makeError(ErrInvalidPublicKey, "invalid uncompressed public key prefix")
		}
		if err := point.fromBytes(input[1:65]); err != nil {
			return makeError(ErrInvalidPublicKey, "public key coordinate "+err.Error())
		}

	default:
		return makeError(ErrInvalidPublicKey, "invalid public key length")
	}

	if !point.isValid() {
		return makeError(ErrInvalidPublicKey, "public key not on curve")
	}
	pubkey.point = point
	return nil
}

// ECPubkeySerialize returns the compressed or uncompressed encoding of pubkey
func ECPubkeySerialize(pubkey *PublicKey, flags uint) []byte {
	switch flags {
	case ECCompressed:
		out := make([]byte, 33)
		out[0] = 0x02
		if pubkey.point.y.isOdd() {
			out[0] = 0x03
		}
		pubkey.point.x.getB32(out[1:33])
		return out
	case ECUncompressed:
		out := make([]byte, 65)
		out[0] = 0x04
		pubkey.point.toBytes(out[1:65])
		return out
	default:
		panic("invalid serialization flags")
	}
}

// parsePublicKeyHex parses a hex encoded public key, with or without prefix
func parsePublicKeyHex(s string) (*PublicKey, error) {
	b, err := hex.DecodeString(sanitizeBytes(removeHexPrefix(s), 2))
	if err != nil {
		return nil, makeError(ErrInvalidPublicKey, "public key is not hex")
	}
	pub := &PublicKey{}
	if err := ECPubkeyParse(pub, b); err != nil {
		return nil, err
	}
	return pub, nil
}

// publicKeyFromX builds a public key from a bare x coordinate with the given
// y parity
func publicKeyFromX(x *big.Int, odd bool) (*PublicKey, bool) {
	var fx FieldElement
	if x == nil || fx.setBig(x) != nil {
		return nil, false
	}
	pub := &PublicKey{}
	if !pub.point.setXOVar(&fx, odd) {
		return nil, false
	}
	return pub, true
}

// X returns the x coordinate
func (p *PublicKey) X() *big.Int {
	return p.point.x.toBig()
}

// Y returns the y coordinate
func (p *PublicKey) Y() *big.Int {
	return p.point.y.toBig()
}

// Hex returns the public key as hex without prefix
func (p *PublicKey) Hex(compressed bool) string {
	flags := uint(ECUncompressed)
	if compressed {
		flags = ECCompressed
	}
	return hex.EncodeToString(ECPubkeySerialize(p, flags))
}
