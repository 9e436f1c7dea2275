package stark

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

// FieldElement represents a field element modulo the Stark field prime
// P = 2^251 + 17*2^192 + 1.  It wraps a Montgomery-form fp.Element, so
// elements can be copied by assignment and are always fully reduced.
type FieldElement struct {
	n fp.Element
}

var (
	// fieldPrimeBig is P as a big.Int.  Never mutated.
	fieldPrimeBig = fp.Modulus()
)

// Field element constants
var (
	// FieldElementZero represents the field element 0
	FieldElementZero = FieldElement{}

	// FieldElementOne represents the field element 1
	FieldElementOne = FieldElement{n: fp.One()}
)

// NewFieldElement creates a new field element set to zero
func NewFieldElement() *FieldElement {
	return &FieldElement{}
}

// setB32 sets a field element from a 32-byte big-endian array.  Values not
// below the prime are rejected rather than reduced.
func (r *FieldElement) setB32(b []byte) error {
	if len(b) != 32 {
		return errors.New("field element byte array must be 32 bytes")
	}
	if err := r.n.SetBytesCanonical(b); err != nil {
		return errors.New("field element overflows the prime")
	}
	return nil
}

// getB32 converts a field element to a 32-byte big-endian array
func (r *FieldElement) getB32(b []byte) {
	if len(b) != 32 {
		panic("field element byte array must be 32 bytes")
	}
	out := r.n.Bytes()
	copy(b, out[:])
}

// setBig sets a field element from a big.Int in [0, P)
func (r *FieldElement) setBig(v *big.Int) error {
	if v.Sign() < 0 || v.Cmp(fieldPrimeBig) >= 0 {
		return errors.New("value is not a field element")
	}
	r.n.SetBigInt(v)
	return nil
}

// setBigReduce sets a field element from any big.Int, reducing modulo P
func (r *FieldElement) setBigReduce(v *big.Int) {
	r.n.SetBigInt(v)
}

// toBig returns the field element as a new big.Int
func (r *FieldElement) toBig() *big.Int {
	return r.n.BigInt(new(big.Int))
}

// bits returns the canonical value as little-endian limbs
func (r *FieldElement) bits() [4]uint64 {
	return r.n.Bits()
}

// setInt sets a field element to a small integer value
func (r *FieldElement) setInt(a int) {
	if a < 0 {
		panic("setInt requires a non-negative value")
	}
	r.n.SetUint64(uint64(a))
}

// isZero returns true if the field element is zero
func (r *FieldElement) isZero() bool {
	return r.n.IsZero()
}

// isOdd returns true if the field element is odd
func (r *FieldElement) isOdd() bool {
	return r.n.Bits()[0]&1 == 1
}

// equal returns true if two field elements are equal
func (r *FieldElement) equal(a *FieldElement) bool {
	return r.n.Equal(&a.n)
}

// add sets r = r + a
func (r *FieldElement) add(a *FieldElement) {
	r.n.Add(&r.n, &a.n)
}

// sub sets r = r - a
func (r *FieldElement) sub(a *FieldElement) {
	r.n.Sub(&r.n, &a.n)
}

// negate sets r = -a
func (r *FieldElement) negate(a *FieldElement) {
	r.n.Neg(&a.n)
}

// mulInt sets r = r * a for a small non-negative integer
func (r *FieldElement) mulInt(a int) {
	var t FieldElement
	t.setInt(a)
	r.mul(r, &t)
}

// mul sets r = a * b
func (r *FieldElement) mul(a, b *FieldElement) {
	r.n.Mul(&a.n, &b.n)
}

// sqr sets r = a^2
func (r *FieldElement) sqr(a *FieldElement) {
	r.n.Square(&a.n)
}

// inv sets r = a^-1.  The inverse of zero is zero.
func (r *FieldElement) inv(a *FieldElement) {
	r.n.Inverse(&a.n)
}

// sqrt sets r to a square root of a and returns whether one exists.  The
// root returned is not normalized to either parity.  r is unchanged when a is
// a non-residue.
func (r *FieldElement) sqrt(a *FieldElement) bool {
	var t fp.Element
	if t.Sqrt(&a.n) == nil {
		return false
	}
	r.n = t
	return true
}

// clear clears a field element to prevent leaking sensitive information
func (r *FieldElement) clear() {
	r.n.SetZero()
}
