package stark

import (
	"crypto/hmac"
	"hash"

	sha256simd "github.com/minio/sha256-simd"
)

// SHA256 represents a SHA-256 hash context
type SHA256 struct {
	hasher hash.Hash
}

// NewSHA256 creates a new SHA-256 hash context
func NewSHA256() *SHA256 {
	return &SHA256{hasher: sha256simd.New()}
}

// Write writes data to the hash
func (h *SHA256) Write(data []byte) {
	h.hasher.Write(data)
}

// Finalize writes the digest to out32 (must be 32 bytes)
func (h *SHA256) Finalize(out32 []byte) {
	if len(out32) != 32 {
		panic("output buffer must be 32 bytes")
	}
	copy(out32, h.hasher.Sum(nil))
}

// Clear resets the hash context
func (h *SHA256) Clear() {
	h.hasher.Reset()
}

// sha256Sum returns the SHA-256 digest of the concatenated inputs
func sha256Sum(data ...[]byte) [32]byte {
	h := sha256simd.New()
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	h.Sum(out[:0])
	return out
}

// HMACSHA256 represents an HMAC-SHA256 context
type HMACSHA256 struct {
	mac hash.Hash
}

// NewHMACSHA256 creates a new HMAC-SHA256 context with the given key
func NewHMACSHA256(key []byte) *HMACSHA256 {
	return &HMACSHA256{mac: hmac.New(sha256simd.New, key)}
}

// Write writes data to the inner hash
func (h *HMACSHA256) Write(data []byte) {
	h.mac.Write(data)
}

// Finalize writes the MAC to out32 (must be 32 bytes)
func (h *HMACSHA256) Finalize(out32 []byte) {
	if len(out32) != 32 {
		panic("output buffer must be 32 bytes")
	}
	copy(out32, h.mac.Sum(nil))
}

// Clear resets the HMAC context
func (h *HMACSHA256) Clear() {
	h.mac.Reset()
}

// hmacInto sets out = HMAC_key(parts...)
func hmacInto(out, key []byte, parts ...[]byte) {
	h := NewHMACSHA256(key)
	for _, p := range parts {
		h.Write(p)
	}
	h.Finalize(out)
}

// RFC6979HMACSHA256 implements the RFC 6979 HMAC-DRBG over SHA-256
type RFC6979HMACSHA256 struct {
	v     [32]byte
	k     [32]byte
	retry bool
}

// NewRFC6979HMACSHA256 seeds a generator with key, normally the private key
// followed by the message, each as 32 bytes
func NewRFC6979HMACSHA256(key []byte) *RFC6979HMACSHA256 {
	rng := &RFC6979HMACSHA256{}
	for i := range rng.v {
		rng.v[i] = 0x01
	}

	// K = HMAC_K(V || 0x00 || key); V = HMAC_K(V)
	hmacInto(rng.k[:], rng.k[:], rng.v[:], []byte{0x00}, key)
	hmacInto(rng.v[:], rng.k[:], rng.v[:])

	// K = HMAC_K(V || 0x01 || key); V = HMAC_K(V)
	hmacInto(rng.k[:], rng.k[:], rng.v[:], []byte{0x01}, key)
	hmacInto(rng.v[:], rng.k[:], rng.v[:])

	return rng
}

// Generate fills out with the next DRBG output
func (rng *RFC6979HMACSHA256) Generate(out []byte) {
	if rng.retry {
		hmacInto(rng.k[:], rng.k[:], rng.v[:], []byte{0x00})
		hmacInto(rng.v[:], rng.k[:], rng.v[:])
	}

	for len(out) > 0 {
		hmacInto(rng.v[:], rng.k[:], rng.v[:])
		n := copy(out, rng.v[:])
		out = out[n:]
	}

	rng.retry = true
}

// Clear wipes the generator state
func (rng *RFC6979HMACSHA256) Clear() {
	clear(rng.v[:])
	clear(rng.k[:])
	rng.retry = false
}
