package stark

import (
	"encoding/hex"
	"fmt"
	"math/big"
)

// maxNonceAttempts bounds the number of nonce candidates tried per signature
const maxNonceAttempts = 1000

// Signature is an ECDSA signature over the Stark curve.  R and S are kept as
// decoded so that out of range values are rejected by verification rather
// than silently reduced.
type Signature struct {
	R, S          *big.Int
	RecoveryParam byte
}

// NonceFunction returns the nonce candidate for the given attempt.  msg32 is
// the truncated message and key32 the private scalar, both big-endian.
type NonceFunction func(msg32, key32 []byte, attempt int) ([]byte, error)

// NonceRFC6979 draws candidates from an HMAC-DRBG seeded with key32 || msg32
func NonceRFC6979(msg32, key32 []byte, attempt int) ([]byte, error) {
	seed := make([]byte, 0, 64)
	seed = append(seed, key32...)
	seed = append(seed, msg32...)
	rng := NewRFC6979HMACSHA256(seed)
	clear(seed)
	defer rng.Clear()

	out := make([]byte, 32)
	for i := 0; i <= attempt; i++ {
		rng.Generate(out)
	}
	return out, nil
}

// FixMessage prepares a message hash for signing.  Hashes of 63 hex digits
// get a trailing zero digit, which the truncation applied during signing
// shifts back out; shorter hashes are unchanged.  Leading zeros are dropped.
func FixMessage(msg string) (string, error) {
	v, ok := parseHexInt(msg)
	if !ok {
		str := fmt.Sprintf("message %q is not hex", msg)
		return "", makeError(ErrMalformedMessage, str)
	}
	h := bigToHex(v)
	switch {
	case len(h) <= 62:
		return h, nil
	case len(h) == 63:
		return h + "0", nil
	default:
		str := fmt.Sprintf("message has %d hex digits, want at most 63", len(h))
		return "", makeError(ErrMalformedMessage, str)
	}
}

// truncateToN drops the low bits of v that do not fit in the bit length of
// the group order, measured against v's byte length.  Unless truncOnly is
// set, a result not below n is reduced once.
func truncateToN(v *big.Int, truncOnly bool) *big.Int {
	r := new(big.Int).Set(v)
	if delta := byteLen(r)*8 - groupOrderBig.BitLen(); delta > 0 {
		r.Rsh(r, uint(delta))
	}
	if !truncOnly && r.Cmp(groupOrderBig) >= 0 {
		r.Sub(r, groupOrderBig)
	}
	return r
}

// signingMessage fixes and truncates msg into the integer that is signed
func signingMessage(msg string) (*big.Int, error) {
	fixed, err := FixMessage(msg)
	if err != nil {
		return nil, err
	}
	m, _ := parseHexInt(fixed)
	return truncateToN(m, false), nil
}

// Sign signs a message hash with deterministic RFC 6979 nonces
func Sign(kp *KeyPair, msg string) (*Signature, error) {
	return SignWithNonce(kp, msg, NonceRFC6979)
}

// SignWithNonce signs a message hash using nonces from nonceFn.  Candidates
// are truncated to the order width and must lie in [2, n-2].  S is not
// normalized to the lower half of the order.
func SignWithNonce(kp *KeyPair, msg string, nonceFn NonceFunction) (*Signature, error) {
	if !kp.hasPriv {
		return nil, makeError(ErrMissingPrivateKey, "key pair has no private key")
	}
	m, err := signingMessage(msg)
	if err != nil {
		return nil, err
	}

	var msg32, key32 [32]byte
	m.FillBytes(msg32[:])
	kp.priv.getB32(key32[:])
	defer clear(key32[:])

	var e Scalar
	e.setBig(m)

	nMinus1 := new(big.Int).Sub(groupOrderBig, big.NewInt(1))
	for attempt := 0; attempt < maxNonceAttempts; attempt++ {
		kb, err := nonceFn(msg32[:], key32[:], attempt)
		if err != nil {
			return nil, err
		}
		k := truncateToN(new(big.Int).SetBytes(kb), true)
		clear(kb)
		if k.Cmp(big.NewInt(1)) <= 0 || k.Cmp(nMinus1) >= 0 {
			continue
		}

		var nonce Scalar
		nonce.setBig(k)
		point := baseMulAffine(&nonce)
		if point.isInfinity() {
			continue
		}

		var r, s, kinv Scalar
		px := point.x.toBig()
		r.setBig(px)
		if r.isZero() {
			continue
		}

		// s = k^-1 * (m + r*d)
		s.mul(&r, &kp.priv)
		s.add(&s, &e)
		kinv.inverse(&nonce)
		s.mul(&s, &kinv)
		nonce.clear()
		kinv.clear()
		if s.isZero() {
			continue
		}

		rec := byte(0)
		if point.y.isOdd() {
			rec |= 1
		}
		if px.Cmp(r.toBig()) != 0 {
			rec |= 2
		}
		return &Signature{R: r.toBig(), S: s.toBig(), RecoveryParam: rec}, nil
	}
	return nil, makeError(ErrSigningFailed, "no valid nonce found")
}

// Verify reports whether sig is a valid signature of msg under kp's public
// key.  Malformed messages and out of range signature values verify false.
func Verify(kp *KeyPair, msg string, sig *Signature) bool {
	if kp == nil {
		return false
	}
	return verifyPoint(&kp.pub.point, msg, sig)
}

// verifyPoint checks x(u1*G + u2*Q) mod n == r
func verifyPoint(q *GroupElementAffine, msg string, sig *Signature) bool {
	if sig == nil || !inScalarRange(sig.R) || !inScalarRange(sig.S) {
		return false
	}
	m, err := signingMessage(msg)
	if err != nil {
		return false
	}

	var r, s, e, sinv, u1, u2 Scalar
	r.setBig(sig.R)
	s.setBig(sig.S)
	e.setBig(m)
	sinv.inverse(&s)
	u1.mul(&e, &sinv)
	u2.mul(&r, &sinv)

	var rj GroupElementJacobian
	var ra GroupElementAffine
	Ecmult(&rj, &u1, &u2, q)
	if rj.isInfinity() {
		return false
	}
	ra.setGEJ(&rj)

	var x Scalar
	x.setBig(ra.x.toBig())
	return x.equal(&r)
}

// inScalarRange reports whether v is in [1, n)
func inScalarRange(v *big.Int) bool {
	return v != nil && v.Sign() > 0 && v.Cmp(groupOrderBig) < 0
}

// VerifyStarkPublicKey verifies a signature against a compressed or
// uncompressed hex public key
func VerifyStarkPublicKey(pub, msg string, sig *Signature) bool {
	kp, err := KeyPairFromPublic(pub)
	if err != nil {
		return false
	}
	return Verify(kp, msg, sig)
}

// VerifyStarkKey verifies a signature against a bare x coordinate Stark key.
// Both points with that x coordinate are tried.
func VerifyStarkKey(starkKey, msg string, sig *Signature) bool {
	x, ok := parseHexInt(starkKey)
	if !ok {
		return false
	}
	for _, odd := range []bool{false, true} {
		pub, ok := publicKeyFromX(x, odd)
		if !ok {
			return false
		}
		if verifyPoint(&pub.point, msg, sig) {
			return true
		}
	}
	return false
}

// RecoverPublicKey recovers the signing public key from a message hash and a
// signature carrying its recovery parameter
func RecoverPublicKey(msg string, sig *Signature) (*PublicKey, error) {
	if sig == nil || !inScalarRange(sig.R) || !inScalarRange(sig.S) {
		return nil, makeError(ErrMalformedSignature, "signature values out of range")
	}
	if sig.RecoveryParam > 3 {
		return nil, makeError(ErrMalformedSignature, "recovery parameter out of range")
	}
	m, err := signingMessage(msg)
	if err != nil {
		return nil, err
	}

	rx := new(big.Int).Set(sig.R)
	if sig.RecoveryParam&2 != 0 {
		rx.Add(rx, groupOrderBig)
	}
	rpub, ok := publicKeyFromX(rx, sig.RecoveryParam&1 == 1)
	if !ok {
		return nil, makeError(ErrInvalidPublicKey, "signature r is not a curve x coordinate")
	}

	// Q = r^-1 * (s*R - e*G)
	var r, s, e, rinv, u1, u2 Scalar
	r.setBig(sig.R)
	s.setBig(sig.S)
	e.setBig(m)
	rinv.inverse(&r)
	u1.negate(&e)
	u1.mul(&u1, &rinv)
	u2.mul(&s, &rinv)

	var qj GroupElementJacobian
	Ecmult(&qj, &u1, &u2, &rpub.point)
	if qj.isInfinity() {
		return nil, makeError(ErrInvalidPublicKey, "recovered point is infinity")
	}
	pub := &PublicKey{}
	pub.point.setGEJ(&qj)
	return pub, nil
}

// ExportRecoveryParam converts a recovery parameter to its wire byte
func ExportRecoveryParam(rec byte) byte {
	return rec + 27
}

// ImportRecoveryParam converts a wire byte in 27..30 to a recovery parameter
func ImportRecoveryParam(v byte) (byte, error) {
	if v < 27 || v > 30 {
		str := fmt.Sprintf("recovery byte %d outside 27..30", v)
		return 0, makeError(ErrMalformedSignature, str)
	}
	return v - 27, nil
}

// Bytes returns the 65-byte r || s || v encoding
func (sig *Signature) Bytes() []byte {
	out := make([]byte, 65)
	sig.R.FillBytes(out[0:32])
	sig.S.FillBytes(out[32:64])
	out[64] = ExportRecoveryParam(sig.RecoveryParam)
	return out
}

// Serialize returns 0x followed by the 130 hex digit r || s || v encoding
func (sig *Signature) Serialize() string {
	return "0x" + hex.EncodeToString(sig.Bytes())
}

// ParseSignatureBytes decodes the 65-byte r || s || v encoding
func ParseSignatureBytes(b []byte) (*Signature, error) {
	if len(b) != 65 {
		str := fmt.Sprintf("signature is %d bytes, want 65", len(b))
		return nil, makeError(ErrMalformedSignature, str)
	}
	rec, err := ImportRecoveryParam(b[64])
	if err != nil {
		return nil, err
	}
	return &Signature{
		R:             new(big.Int).SetBytes(b[0:32]),
		S:             new(big.Int).SetBytes(b[32:64]),
		RecoveryParam: rec,
	}, nil
}

// DeserializeSignature decodes a hex signature, with or without prefix.  It
// must be exactly 130 hex digits.
func DeserializeSignature(s string) (*Signature, error) {
	h := removeHexPrefix(s)
	if len(h) != 130 {
		str := fmt.Sprintf("signature has %d hex digits, want 130", len(h))
		return nil, makeError(ErrMalformedSignature, str)
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return nil, makeError(ErrMalformedSignature, "signature is not hex")
	}
	return ParseSignatureBytes(b)
}
