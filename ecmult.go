package stark

// scalarBits is the bit length of the group order; reduced scalars never have
// a higher bit set
const scalarBits = 252

// EcmultSimple performs variable-base scalar multiplication r = k*P by
// double-and-add from the most significant bit
func EcmultSimple(r *GroupElementJacobian, k *Scalar, p *GroupElementAffine) {
	r.setInfinity()
	if k.isZero() || p.infinity {
		return
	}
	d := k.bits()
	for i := scalarBits - 1; i >= 0; i-- {
		r.double(r)
		if d[i/64]>>(i%64)&1 != 0 {
			r.addGE(r, p)
		}
	}
}

// Ecmult computes r = a*G + b*P
func Ecmult(r *GroupElementJacobian, a *Scalar, b *Scalar, p *GroupElementAffine) {
	var aG, bP GroupElementJacobian
	EcmultGen(&aG, a)
	EcmultSimple(&bP, b, p)
	r.addVar(&aG, &bP)
}

// scalarMulAffine returns k*P in affine coordinates
func scalarMulAffine(k *Scalar, p *GroupElementAffine) GroupElementAffine {
	var rj GroupElementJacobian
	var ra GroupElementAffine
	EcmultSimple(&rj, k, p)
	ra.setGEJ(&rj)
	return ra
}

// baseMulAffine returns k*G in affine coordinates
func baseMulAffine(k *Scalar) GroupElementAffine {
	var rj GroupElementJacobian
	var ra GroupElementAffine
	EcmultGen(&rj, k)
	ra.setGEJ(&rj)
	return ra
}
