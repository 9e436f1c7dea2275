package stark

import (
	"math/big"
)

// GroupElementAffine represents a point on the Stark curve y^2 = x^3 + x + beta
// in affine coordinates (x, y)
type GroupElementAffine struct {
	x, y     FieldElement
	infinity bool
}

// GroupElementJacobian represents a point on the Stark curve in Jacobian
// coordinates (x, y, z) where the affine coordinates are (x/z^2, y/z^3)
type GroupElementJacobian struct {
	x, y, z  FieldElement
	infinity bool
}

// Curve constants
var (
	// curveBeta is the constant coefficient of the curve equation.  The linear
	// coefficient alpha is 1.
	curveBeta FieldElement

	// Generator point G of the Stark curve
	GeneratorX FieldElement
	GeneratorY FieldElement
	Generator  GroupElementAffine

	// secpOrderBig is the order of the secp256k1 group, used by key grinding.
	secpOrderBig = mustParseHex("0xfffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
)

func init() {
	curveBeta.setBigReduce(mustParseHex("0x06f21413efbe40de150e596d72f7a8c5609ad26c15c915c1f4cdfcb99cee9e89"))
	GeneratorX.setBigReduce(mustParseHex("0x01ef15c18599971b7beced415a40f0c7deacfd9b0d1819e03d723d8bc943cfca"))
	GeneratorY.setBigReduce(mustParseHex("0x005668060aa49730b7be4801df46ec62de53ecd11abe43a32873000c36e8dc1f"))
	Generator.setXY(&GeneratorX, &GeneratorY)
}

// FieldPrime returns the prime P = 2^251 + 17*2^192 + 1 of the base field
func FieldPrime() *big.Int { return new(big.Int).Set(fieldPrimeBig) }

// GroupOrder returns the order n of the curve group
func GroupOrder() *big.Int { return new(big.Int).Set(groupOrderBig) }

// CurveAlpha returns the linear coefficient of the curve equation
func CurveAlpha() *big.Int { return big.NewInt(1) }

// CurveBeta returns the constant coefficient of the curve equation
func CurveBeta() *big.Int { return curveBeta.toBig() }

// SecpOrder returns the secp256k1 group order, the range raw keys are drawn
// from before grinding
func SecpOrder() *big.Int { return new(big.Int).Set(secpOrderBig) }

// NewGroupElementAffine creates a new affine group element at infinity
func NewGroupElementAffine() *GroupElementAffine {
	return &GroupElementAffine{infinity: true}
}

// NewGroupElementJacobian creates a new Jacobian group element at infinity
func NewGroupElementJacobian() *GroupElementJacobian {
	return &GroupElementJacobian{infinity: true}
}

// setXY sets a group element to the point with given coordinates
func (r *GroupElementAffine) setXY(x, y *FieldElement) {
	r.x = *x
	r.y = *y
	r.infinity = false
}

// curveRHS sets r = x^3 + x + beta
func curveRHS(r, x *FieldElement) {
	var x3 FieldElement
	x3.sqr(x)
	x3.mul(&x3, x)
	x3.add(x)
	x3.add(&curveBeta)
	*r = x3
}

// setXOVar sets a group element to the point with given X coordinate and Y
// oddness.  It returns false if x is not the abscissa of a curve point.
func (r *GroupElementAffine) setXOVar(x *FieldElement, odd bool) bool {
	var y2, y FieldElement
	curveRHS(&y2, x)
	if !y.sqrt(&y2) {
		return false
	}
	if y.isOdd() != odd {
		y.negate(&y)
	}
	r.setXY(x, &y)
	return true
}

// isInfinity returns true if the group element is the point at infinity
func (r *GroupElementAffine) isInfinity() bool {
	return r.infinity
}

// isValid checks if the group element satisfies the curve equation
func (r *GroupElementAffine) isValid() bool {
	if r.infinity {
		return true
	}
	var lhs, rhs FieldElement
	lhs.sqr(&r.y)
	curveRHS(&rhs, &r.x)
	return lhs.equal(&rhs)
}

// negate sets r to the negation of a
func (r *GroupElementAffine) negate(a *GroupElementAffine) {
	if a.infinity {
		r.setInfinity()
		return
	}
	r.x = a.x
	r.y.negate(&a.y)
	r.infinity = false
}

// setInfinity sets the group element to the point at infinity
func (r *GroupElementAffine) setInfinity() {
	r.x = FieldElementZero
	r.y = FieldElementZero
	r.infinity = true
}

// equal returns true if two affine points are the same
func (r *GroupElementAffine) equal(a *GroupElementAffine) bool {
	if r.infinity || a.infinity {
		return r.infinity == a.infinity
	}
	return r.x.equal(&a.x) && r.y.equal(&a.y)
}

// add sets r = a + b using the affine chord rule.  Points sharing an x
// coordinate are rejected: doubling and cancellation never occur on the hash
// path, so seeing one means the inputs or the constant table are bad.
func (r *GroupElementAffine) add(a, b *GroupElementAffine) error {
	if a.infinity {
		*r = *b
		return nil
	}
	if b.infinity {
		*r = *a
		return nil
	}
	if a.x.equal(&b.x) {
		return makeError(ErrPointCollision, "points share an x coordinate")
	}

	var num, den, lambda, x3, y3 FieldElement
	num = b.y
	num.sub(&a.y)
	den = b.x
	den.sub(&a.x)
	den.inv(&den)
	lambda.mul(&num, &den)

	x3.sqr(&lambda)
	x3.sub(&a.x)
	x3.sub(&b.x)

	y3 = a.x
	y3.sub(&x3)
	y3.mul(&y3, &lambda)
	y3.sub(&a.y)

	r.setXY(&x3, &y3)
	return nil
}

// Jacobian coordinate operations

// setInfinity sets the Jacobian group element to the point at infinity
func (r *GroupElementJacobian) setInfinity() {
	r.x = FieldElementZero
	r.y = FieldElementOne
	r.z = FieldElementZero
	r.infinity = true
}

// isInfinity returns true if the Jacobian group element is the point at infinity
func (r *GroupElementJacobian) isInfinity() bool {
	return r.infinity
}

// setGE sets a Jacobian element from an affine element
func (r *GroupElementJacobian) setGE(a *GroupElementAffine) {
	if a.infinity {
		r.setInfinity()
		return
	}
	r.x = a.x
	r.y = a.y
	r.z = FieldElementOne
	r.infinity = false
}

// setGEJ sets an affine element from a Jacobian element
func (r *GroupElementAffine) setGEJ(a *GroupElementJacobian) {
	if a.infinity {
		r.setInfinity()
		return
	}
	var zi, zi2, zi3, x, y FieldElement
	zi.inv(&a.z)
	zi2.sqr(&zi)
	zi3.mul(&zi2, &zi)
	x.mul(&a.x, &zi2)
	y.mul(&a.y, &zi3)
	r.setXY(&x, &y)
}

// negate sets r to the negation of a Jacobian point
func (r *GroupElementJacobian) negate(a *GroupElementJacobian) {
	if a.infinity {
		r.setInfinity()
		return
	}
	r.x = a.x
	r.y.negate(&a.y)
	r.z = a.z
	r.infinity = false
}

// double sets r = 2*a.  The curve has alpha = 1, so the slope numerator
// carries an extra Z^4 term compared to an a = 0 curve.
func (r *GroupElementJacobian) double(a *GroupElementJacobian) {
	if a.infinity || a.y.isZero() {
		r.setInfinity()
		return
	}

	var xx, yy, yyyy, zz, s, m, t, x3, y3, z3 FieldElement
	xx.sqr(&a.x)
	yy.sqr(&a.y)
	yyyy.sqr(&yy)
	zz.sqr(&a.z)

	// S = 4*X*Y^2
	s.mul(&a.x, &yy)
	s.mulInt(4)

	// M = 3*X^2 + Z^4
	m = xx
	m.mulInt(3)
	t.sqr(&zz)
	m.add(&t)

	// X3 = M^2 - 2*S
	x3.sqr(&m)
	x3.sub(&s)
	x3.sub(&s)

	// Y3 = M*(S - X3) - 8*Y^4
	y3 = s
	y3.sub(&x3)
	y3.mul(&y3, &m)
	yyyy.mulInt(8)
	y3.sub(&yyyy)

	// Z3 = 2*Y*Z
	z3.mul(&a.y, &a.z)
	z3.add(&z3)

	r.x = x3
	r.y = y3
	r.z = z3
	r.infinity = false
}

// addVar sets r = a + b for two Jacobian points
func (r *GroupElementJacobian) addVar(a, b *GroupElementJacobian) {
	if a.infinity {
		*r = *b
		return
	}
	if b.infinity {
		*r = *a
		return
	}

	var z1z1, z2z2, u1, u2, s1, s2, h, rr FieldElement
	z1z1.sqr(&a.z)
	z2z2.sqr(&b.z)
	u1.mul(&a.x, &z2z2)
	u2.mul(&b.x, &z1z1)
	s1.mul(&a.y, &b.z)
	s1.mul(&s1, &z2z2)
	s2.mul(&b.y, &a.z)
	s2.mul(&s2, &z1z1)

	h = u2
	h.sub(&u1)
	rr = s2
	rr.sub(&s1)

	if h.isZero() {
		if rr.isZero() {
			r.double(a)
		} else {
			r.setInfinity()
		}
		return
	}

	var z3 FieldElement
	z3.mul(&a.z, &b.z)
	z3.mul(&z3, &h)
	r.finishAdd(&u1, &s1, &h, &rr, &z3)
}

// addGE sets r = a + b where b is an affine point
func (r *GroupElementJacobian) addGE(a *GroupElementJacobian, b *GroupElementAffine) {
	if a.infinity {
		r.setGE(b)
		return
	}
	if b.infinity {
		*r = *a
		return
	}

	var z1z1, u2, s2, h, rr FieldElement
	z1z1.sqr(&a.z)
	u2.mul(&b.x, &z1z1)
	s2.mul(&b.y, &a.z)
	s2.mul(&s2, &z1z1)

	h = u2
	h.sub(&a.x)
	rr = s2
	rr.sub(&a.y)

	if h.isZero() {
		if rr.isZero() {
			r.double(a)
		} else {
			r.setInfinity()
		}
		return
	}

	var u1, s1, z3 FieldElement
	u1 = a.x
	s1 = a.y
	z3.mul(&a.z, &h)
	r.finishAdd(&u1, &s1, &h, &rr, &z3)
}

// finishAdd completes a Jacobian addition from U1, S1, H = U2 - U1,
// R = S2 - S1 and the output Z
func (r *GroupElementJacobian) finishAdd(u1, s1, h, rr, z3 *FieldElement) {
	var hh, hhh, v, x3, y3, t FieldElement
	hh.sqr(h)
	hhh.mul(&hh, h)
	v.mul(u1, &hh)

	// X3 = R^2 - H^3 - 2*V
	x3.sqr(rr)
	x3.sub(&hhh)
	x3.sub(&v)
	x3.sub(&v)

	// Y3 = R*(V - X3) - S1*H^3
	y3 = v
	y3.sub(&x3)
	y3.mul(&y3, rr)
	t.mul(s1, &hhh)
	y3.sub(&t)

	r.x = x3
	r.y = y3
	r.z = *z3
	r.infinity = false
}

// clear clears an affine group element
func (r *GroupElementAffine) clear() {
	r.x.clear()
	r.y.clear()
	r.infinity = true
}

// clear clears a Jacobian group element
func (r *GroupElementJacobian) clear() {
	r.x.clear()
	r.y.clear()
	r.z.clear()
	r.infinity = true
}

// toBytes writes x and y as a 64-byte big-endian buffer
func (r *GroupElementAffine) toBytes(buf []byte) {
	if len(buf) != 64 {
		panic("buffer must be 64 bytes")
	}
	r.x.getB32(buf[0:32])
	r.y.getB32(buf[32:64])
}

// fromBytes reads x and y from a 64-byte big-endian buffer
func (r *GroupElementAffine) fromBytes(buf []byte) error {
	if len(buf) != 64 {
		panic("buffer must be 64 bytes")
	}
	var x, y FieldElement
	if err := x.setB32(buf[0:32]); err != nil {
		return err
	}
	if err := y.setB32(buf[32:64]); err != nil {
		return err
	}
	r.setXY(&x, &y)
	return nil
}
