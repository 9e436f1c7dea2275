package stark

import (
	"math/big"
	"testing"
)

func fieldFromBig(t *testing.T, v *big.Int) FieldElement {
	t.Helper()
	var fe FieldElement
	if err := fe.setBig(v); err != nil {
		t.Fatalf("setBig(%x): %v", v, err)
	}
	return fe
}

func TestFieldElementBasics(t *testing.T) {
	var zero FieldElement
	zero.setInt(0)
	if !zero.isZero() {
		t.Error("zero field element should be zero")
	}

	var one FieldElement
	one.setInt(1)
	if one.isZero() {
		t.Error("one should not be zero")
	}
	if !one.equal(&FieldElementOne) {
		t.Error("setInt(1) should equal FieldElementOne")
	}
	if !one.isOdd() {
		t.Error("one should be odd")
	}
}

func TestFieldElementSetB32(t *testing.T) {
	pMinus1 := new(big.Int).Sub(FieldPrime(), big.NewInt(1))

	testCases := []struct {
		name    string
		value   *big.Int
		wantErr bool
	}{
		{"zero", big.NewInt(0), false},
		{"one", big.NewInt(1), false},
		{"p_minus_1", pMinus1, false},
		{"p", FieldPrime(), true},
		{"max_256", new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var in [32]byte
			tc.value.FillBytes(in[:])

			var fe FieldElement
			err := fe.setB32(in[:])
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected overflow error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var out [32]byte
			fe.getB32(out[:])
			if out != in {
				t.Errorf("round trip mismatch: got %x, want %x", out, in)
			}
		})
	}
}

func TestFieldElementArithmetic(t *testing.T) {
	p := FieldPrime()
	values := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(7),
		mustParseHex("0x01ef15c18599971b7beced415a40f0c7deacfd9b0d1819e03d723d8bc943cfca"),
		mustParseHex("0x07ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
		new(big.Int).Sub(p, big.NewInt(1)),
	}

	for _, av := range values {
		for _, bv := range values {
			a := fieldFromBig(t, av)
			b := fieldFromBig(t, bv)

			sum := a
			sum.add(&b)
			want := new(big.Int).Add(av, bv)
			want.Mod(want, p)
			if sum.toBig().Cmp(want) != 0 {
				t.Errorf("%x + %x = %x, want %x", av, bv, sum.toBig(), want)
			}

			diff := a
			diff.sub(&b)
			want = new(big.Int).Sub(av, bv)
			want.Mod(want, p)
			if diff.toBig().Cmp(want) != 0 {
				t.Errorf("%x - %x = %x, want %x", av, bv, diff.toBig(), want)
			}

			var prod FieldElement
			prod.mul(&a, &b)
			want = new(big.Int).Mul(av, bv)
			want.Mod(want, p)
			if prod.toBig().Cmp(want) != 0 {
				t.Errorf("%x * %x = %x, want %x", av, bv, prod.toBig(), want)
			}
		}
	}
}

func TestFieldElementNegate(t *testing.T) {
	var a, neg, sum FieldElement
	a.setInt(12345)
	neg.negate(&a)
	sum = a
	sum.add(&neg)
	if !sum.isZero() {
		t.Error("a + (-a) should be zero")
	}

	var zero FieldElement
	neg.negate(&zero)
	if !neg.isZero() {
		t.Error("-0 should be zero")
	}
}

func TestFieldElementInverse(t *testing.T) {
	var a, inv, prod FieldElement
	a = fieldFromBig(t, mustParseHex("0x0759ca09377679ecd535a81e83039658bf40959283187c654c5416f439403cf5"))
	inv.inv(&a)
	prod.mul(&a, &inv)
	if !prod.equal(&FieldElementOne) {
		t.Error("a * a^-1 should be one")
	}

	var zero FieldElement
	inv.inv(&zero)
	if !inv.isZero() {
		t.Error("inverse of zero should be zero")
	}
}

func TestFieldElementSqrt(t *testing.T) {
	var a, r, check FieldElement
	a.setInt(4)
	if !r.sqrt(&a) {
		t.Fatal("4 should have a square root")
	}
	check.sqr(&r)
	if !check.equal(&a) {
		t.Error("sqrt(4)^2 should equal 4")
	}

	// 3 is the smallest quadratic non-residue modulo P
	a.setInt(3)
	if r.sqrt(&a) {
		t.Error("3 should not have a square root")
	}
}

func BenchmarkFieldElementMul(b *testing.B) {
	var x, y FieldElement
	x.setBigReduce(mustParseHex("0x0759ca09377679ecd535a81e83039658bf40959283187c654c5416f439403cf5"))
	y.setBigReduce(mustParseHex("0x06f524a3400e7708d5c01a28598ad272e7455aa88778b19f93b562d7a9646c41"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.mul(&x, &y)
	}
}

func BenchmarkFieldElementAdd(b *testing.B) {
	var x, y FieldElement
	x.setInt(1)
	y.setBigReduce(mustParseHex("0x06f524a3400e7708d5c01a28598ad272e7455aa88778b19f93b562d7a9646c41"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.add(&y)
	}
}

func TestNewFieldElement(t *testing.T) {
	fe := NewFieldElement()
	if !fe.isZero() {
		t.Error("new field element should be zero")
	}
}
