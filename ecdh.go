package stark

import (
	"io"

	sha256simd "github.com/minio/sha256-simd"
	"golang.org/x/crypto/hkdf"
)

// ECDHHashFunction hashes the coordinates of a shared point into output
type ECDHHashFunction func(output []byte, x32 []byte, y32 []byte) bool

// ecdhHashFunctionSHA256 hashes the compressed encoding of the shared point
func ecdhHashFunctionSHA256(output []byte, x32 []byte, y32 []byte) bool {
	if len(output) != 32 || len(x32) != 32 || len(y32) != 32 {
		return false
	}
	version := (y32[31] & 0x01) | 0x02

	sha := NewSHA256()
	sha.Write([]byte{version})
	sha.Write(x32)
	sha.Finalize(output)
	sha.Clear()
	return true
}

// ECDH computes a Diffie-Hellman shared secret between kp's private key and
// pubkey.  hashfp may be nil for the default SHA-256 hash.
func ECDH(output []byte, pubkey *PublicKey, kp *KeyPair, hashfp ECDHHashFunction) error {
	if len(output) != 32 {
		return makeError(ErrInvalidInput, "output must be 32 bytes")
	}
	if pubkey == nil || pubkey.point.isInfinity() {
		return makeError(ErrInvalidPublicKey, "invalid public key")
	}
	if kp == nil || !kp.hasPriv {
		return makeError(ErrMissingPrivateKey, "key pair has no private key")
	}
	if hashfp == nil {
		hashfp = ecdhHashFunctionSHA256
	}

	shared := scalarMulAffine(&kp.priv, &pubkey.point)
	if shared.isInfinity() {
		return makeError(ErrInvalidPublicKey, "shared point is infinity")
	}

	var x, y [32]byte
	shared.x.getB32(x[:])
	shared.y.getB32(y[:])
	ok := hashfp(output, x[:], y[:])
	clear(x[:])
	clear(y[:])
	shared.clear()

	if !ok {
		return makeError(ErrInvalidInput, "hash function failed")
	}
	return nil
}

// ECDHWithHKDF derives len(output) bytes of key material from the ECDH
// shared secret with HKDF-SHA256
func ECDHWithHKDF(output []byte, pubkey *PublicKey, kp *KeyPair, salt, info []byte) error {
	var secret [32]byte
	if err := ECDH(secret[:], pubkey, kp, nil); err != nil {
		return err
	}
	defer clear(secret[:])

	r := hkdf.New(sha256simd.New, secret[:], salt, info)
	if _, err := io.ReadFull(r, output); err != nil {
		return makeError(ErrInvalidInput, "hkdf: "+err.Error())
	}
	return nil
}
