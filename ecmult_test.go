package stark

import (
	"math/big"
	"testing"
)

func TestEcmultGenMatchesSimple(t *testing.T) {
	n := GroupOrder()
	values := []*big.Int{
		big.NewInt(1),
		big.NewInt(2),
		big.NewInt(7),
		big.NewInt(0xffff),
		mustParseHex("0x05c8c8683596c732541a59e03007b2d30dbbbb873556fe65b5fb63c16688f941"),
		new(big.Int).Sub(n, big.NewInt(2)),
	}

	for _, v := range values {
		var k Scalar
		k.setBig(v)

		gen := baseMulAffine(&k)
		simple := scalarMulAffine(&k, &Generator)
		if !gen.equal(&simple) {
			t.Errorf("EcmultGen and EcmultSimple differ for %x", v)
		}
		if !gen.isValid() {
			t.Errorf("%x*G is not on the curve", v)
		}
	}
}

func TestEcmultGenKnownMultiples(t *testing.T) {
	testCases := []struct {
		k    uint
		x, y string
	}{
		{2, twoGX, twoGY},
		{3, threeGX, threeGY},
		{7, sevenGX, sevenGY},
	}
	for _, tc := range testCases {
		var k Scalar
		k.setInt(tc.k)
		got := baseMulAffine(&k)
		want := affineFromHex(t, tc.x, tc.y)
		if !got.equal(&want) {
			t.Errorf("%d*G mismatch", tc.k)
		}
	}
}

func TestEcmultEdgeCases(t *testing.T) {
	var zero Scalar
	var r GroupElementJacobian
	EcmultGen(&r, &zero)
	if !r.isInfinity() {
		t.Error("0*G should be infinity")
	}

	// (n-1)*G = -G
	var k Scalar
	k.setBig(new(big.Int).Sub(GroupOrder(), big.NewInt(1)))
	got := baseMulAffine(&k)
	var neg GroupElementAffine
	neg.negate(&Generator)
	if !got.equal(&neg) {
		t.Error("(n-1)*G should equal -G")
	}
}

func TestEcmultGenContext(t *testing.T) {
	ctx := NewEcmultGenContext()
	k := NewScalar(mustParseHex("0x" + testPrivateKey).FillBytes(make([]byte, 32)))

	var a, b GroupElementJacobian
	ctx.ecmultGen(&a, k)
	EcmultGen(&b, k)
	var pa, pb GroupElementAffine
	pa.setGEJ(&a)
	pb.setGEJ(&b)
	if !pa.equal(&pb) {
		t.Error("fresh and shared generator tables disagree")
	}
}

func TestEcmultCombined(t *testing.T) {
	// 2*G + 5*G = 7*G
	var a, b Scalar
	a.setInt(2)
	b.setInt(5)
	var r GroupElementJacobian
	Ecmult(&r, &a, &b, &Generator)
	var got GroupElementAffine
	got.setGEJ(&r)
	want := affineFromHex(t, sevenGX, sevenGY)
	if !got.equal(&want) {
		t.Error("2*G + 5*G should equal 7*G")
	}
}

func BenchmarkEcmultGen(b *testing.B) {
	var k Scalar
	k.setBig(mustParseHex("0x05c8c8683596c732541a59e03007b2d30dbbbb873556fe65b5fb63c16688f941"))
	getGlobalGenContext()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var r GroupElementJacobian
		EcmultGen(&r, &k)
	}
}

func BenchmarkEcmultSimple(b *testing.B) {
	var k Scalar
	k.setBig(mustParseHex("0x05c8c8683596c732541a59e03007b2d30dbbbb873556fe65b5fb63c16688f941"))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var r GroupElementJacobian
		EcmultSimple(&r, &k, &Generator)
	}
}
