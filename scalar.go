package stark

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fr"
)

// Scalar represents a scalar modulo the order n of the Stark curve group.
// Like FieldElement it wraps a Montgomery-form element and is always reduced.
type Scalar struct {
	n fr.Element
}

var (
	// groupOrderBig is n as a big.Int.  Never mutated.
	groupOrderBig = fr.Modulus()
)

// Scalar constants
var (
	// ScalarZero represents the scalar 0
	ScalarZero = Scalar{}

	// ScalarOne represents the scalar 1
	ScalarOne = Scalar{n: fr.One()}
)

// NewScalar creates a new scalar from a 32-byte big-endian array, reducing it
// modulo the group order
func NewScalar(b32 []byte) *Scalar {
	if len(b32) != 32 {
		panic("input must be 32 bytes")
	}
	s := &Scalar{}
	s.setB32(b32)
	return s
}

// setB32 sets a scalar from a 32-byte big-endian array, reducing modulo the
// group order, and reports whether the input was not below n.
func (r *Scalar) setB32(bin []byte) (overflow bool) {
	if err := r.n.SetBytesCanonical(bin); err == nil {
		return false
	}
	r.n.SetBytes(bin)
	return true
}

// setB32Seckey sets a scalar from a 32-byte array and returns true if it is a
// valid secret key, that is in [1, n)
func (r *Scalar) setB32Seckey(bin []byte) bool {
	overflow := r.setB32(bin)
	return !overflow && !r.isZero()
}

// getB32 converts a scalar to a 32-byte big-endian array
func (r *Scalar) getB32(bin []byte) {
	if len(bin) != 32 {
		panic("scalar byte array must be 32 bytes")
	}
	out := r.n.Bytes()
	copy(bin, out[:])
}

// setBig sets the scalar to v mod n.
func (r *Scalar) setBig(v *big.Int) {
	r.n.SetBigInt(v)
}

// toBig returns the scalar as a new big.Int
func (r *Scalar) toBig() *big.Int {
	return r.n.BigInt(new(big.Int))
}

// setInt sets a scalar to an unsigned integer value
func (r *Scalar) setInt(v uint) {
	r.n.SetUint64(uint64(v))
}

// add sets r = a + b modulo n
func (r *Scalar) add(a, b *Scalar) {
	r.n.Add(&a.n, &b.n)
}

// sub sets r = a - b modulo n
func (r *Scalar) sub(a, b *Scalar) {
	r.n.Sub(&a.n, &b.n)
}

// mul sets r = a * b modulo n
func (r *Scalar) mul(a, b *Scalar) {
	r.n.Mul(&a.n, &b.n)
}

// negate sets r = -a modulo n
func (r *Scalar) negate(a *Scalar) {
	r.n.Neg(&a.n)
}

// inverse sets r = a^-1 modulo n.  The inverse of zero is zero.
func (r *Scalar) inverse(a *Scalar) {
	r.n.Inverse(&a.n)
}

// isZero returns true if the scalar is zero
func (r *Scalar) isZero() bool {
	return r.n.IsZero()
}

// isOne returns true if the scalar is one
func (r *Scalar) isOne() bool {
	return r.n.IsOne()
}

// equal returns true if two scalars are equal
func (r *Scalar) equal(a *Scalar) bool {
	return r.n.Equal(&a.n)
}

// bits returns the canonical value as little-endian limbs
func (r *Scalar) bits() [4]uint64 {
	return r.n.Bits()
}

// getBits extracts count bits starting at offset.  count must be at most 32
// and the window must not cross a limb boundary.
func (r *Scalar) getBits(offset, count uint) uint32 {
	if count == 0 || count > 32 {
		panic("count must be 1-32")
	}
	if offset+count > 256 {
		panic("offset + count must be <= 256")
	}
	limb := offset / 64
	shift := offset % 64
	if shift+count > 64 {
		panic("bit window crosses limb boundary")
	}
	d := r.bits()
	return uint32((d[limb] >> shift) & ((1 << count) - 1))
}

// clear clears a scalar to prevent leaking sensitive information
func (r *Scalar) clear() {
	r.n.SetZero()
}
