package stark

import (
	"errors"
	"math/big"
	"strings"
	"testing"
)

func TestKeyPairFromPrivate(t *testing.T) {
	kp, err := KeyPairFromPrivateHex("0x" + testPrivateKey)
	if err != nil {
		t.Fatalf("KeyPairFromPrivateHex: %v", err)
	}
	if !kp.HasPrivate() {
		t.Error("key pair should have a private key")
	}
	if kp.Private() != testPrivateKey {
		t.Errorf("Private() = %s, want %s", kp.Private(), testPrivateKey)
	}
	if kp.Public(false) != testPublicKey {
		t.Errorf("Public(false) = %s, want %s", kp.Public(false), testPublicKey)
	}
	if kp.StarkPublicKey() != testCompressedKey {
		t.Errorf("StarkPublicKey() = %s, want %s", kp.StarkPublicKey(), testCompressedKey)
	}
	if kp.PrivateScalar().Cmp(mustParseHex(testPrivateKey)) != 0 {
		t.Error("PrivateScalar mismatch")
	}
}

func TestKeyPairFromPrivateReduces(t *testing.T) {
	d := mustParseHex(testPrivateKey)
	dn := new(big.Int).Add(d, GroupOrder())

	kp, err := KeyPairFromPrivate(dn)
	if err != nil {
		t.Fatal(err)
	}
	if kp.Private() != testPrivateKey {
		t.Errorf("d + n should reduce to d, got %s", kp.Private())
	}
}

func TestKeyPairFromPrivateErrors(t *testing.T) {
	testCases := []struct {
		name string
		d    *big.Int
	}{
		{"nil", nil},
		{"zero", big.NewInt(0)},
		{"order", GroupOrder()},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := KeyPairFromPrivate(tc.d)
			if !errors.Is(err, ErrInvalidPrivateKey) {
				t.Errorf("expected ErrInvalidPrivateKey, got %v", err)
			}
		})
	}

	if _, err := KeyPairFromPrivateHex("0xnothex"); !errors.Is(err, ErrInvalidPrivateKey) {
		t.Errorf("non-hex key: expected ErrInvalidPrivateKey, got %v", err)
	}
}

func TestKeyPairFromPublic(t *testing.T) {
	for _, pub := range []string{testPublicKey, testCompressedKey, "0x" + testCompressedKey} {
		kp, err := KeyPairFromPublic(pub)
		if err != nil {
			t.Fatalf("KeyPairFromPublic(%s): %v", pub, err)
		}
		if kp.HasPrivate() {
			t.Error("public-only key pair should not have a private key")
		}
		if kp.Private() != "" || kp.PrivateScalar() != nil {
			t.Error("public-only key pair should expose no private key")
		}
		if kp.Public(false) != testPublicKey {
			t.Errorf("Public(false) = %s, want %s", kp.Public(false), testPublicKey)
		}
	}
}

func TestKeyPairFromPublicErrors(t *testing.T) {
	testCases := []struct {
		name, pub string
	}{
		{"not_hex", "zz"},
		{"bad_length", "02abcd"},
		{"bad_prefix", "05" + testCompressedKey[2:]},
		{"off_curve", testPublicKey[:len(testPublicKey)-2] + "00"},
		{"x_not_on_curve", "02" + strings.Repeat("0", 64)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := KeyPairFromPublic(tc.pub)
			if !errors.Is(err, ErrInvalidPublicKey) {
				t.Errorf("expected ErrInvalidPublicKey, got %v", err)
			}
		})
	}
}

func TestCompressDecompress(t *testing.T) {
	c, err := Compress(testPublicKey)
	if err != nil {
		t.Fatal(err)
	}
	if c != testCompressedKey {
		t.Errorf("Compress = %s, want %s", c, testCompressedKey)
	}

	u, err := Decompress(testCompressedKey)
	if err != nil {
		t.Fatal(err)
	}
	if u != testPublicKey {
		t.Errorf("Decompress = %s, want %s", u, testPublicKey)
	}
}

func TestCoordinates(t *testing.T) {
	x, err := XCoordinate(testPublicKey)
	if err != nil {
		t.Fatal(err)
	}
	if x != testCompressedKey[2:] {
		t.Errorf("XCoordinate = %s, want %s", x, testCompressedKey[2:])
	}

	y, err := YCoordinate(testCompressedKey)
	if err != nil {
		t.Fatal(err)
	}
	if y != testPublicKey[66:] {
		t.Errorf("YCoordinate = %s, want %s", y, testPublicKey[66:])
	}

	sk, err := StarkKey(testCompressedKey)
	if err != nil {
		t.Fatal(err)
	}
	if sk != "0x"+testCompressedKey[2:] {
		t.Errorf("StarkKey = %s", sk)
	}
}

func TestKeyPairNegate(t *testing.T) {
	kp, err := KeyPairFromPrivateHex(testPrivateKey)
	if err != nil {
		t.Fatal(err)
	}
	neg, err := kp.Negate()
	if err != nil {
		t.Fatal(err)
	}

	want := new(big.Int).Sub(GroupOrder(), mustParseHex(testPrivateKey))
	if neg.PrivateScalar().Cmp(want) != 0 {
		t.Error("negated scalar should be n - d")
	}
	if neg.StarkPublicKey() != "03"+testCompressedKey[2:] {
		t.Errorf("negated key = %s, want odd parity with the same x", neg.StarkPublicKey())
	}

	// the negated pair must agree with deriving from n - d directly
	direct, err := KeyPairFromPrivate(want)
	if err != nil {
		t.Fatal(err)
	}
	if direct.Public(false) != neg.Public(false) {
		t.Error("negated public key mismatch")
	}

	pubOnly, _ := KeyPairFromPublic(testPublicKey)
	if _, err := pubOnly.Negate(); !errors.Is(err, ErrMissingPrivateKey) {
		t.Errorf("expected ErrMissingPrivateKey, got %v", err)
	}
}

func TestPublicKeyFromX(t *testing.T) {
	x := mustParseHex(testCompressedKey[2:])
	even, err := PublicKeyFromX(x, false)
	if err != nil {
		t.Fatal(err)
	}
	if even.Hex(false) != testPublicKey {
		t.Error("even parity point mismatch")
	}

	odd, err := PublicKeyFromX(x, true)
	if err != nil {
		t.Fatal(err)
	}
	if odd.Y().Bit(0) != 1 {
		t.Error("odd parity point should have odd y")
	}

	if _, err := PublicKeyFromX(big.NewInt(0), false); !errors.Is(err, ErrInvalidPublicKey) {
		t.Errorf("x = 0: expected ErrInvalidPublicKey, got %v", err)
	}
	if _, err := PublicKeyFromX(FieldPrime(), false); !errors.Is(err, ErrInvalidPublicKey) {
		t.Errorf("x = P: expected ErrInvalidPublicKey, got %v", err)
	}
}

func TestKeyPairGenerate(t *testing.T) {
	a, err := KeyPairGenerate()
	if err != nil {
		t.Fatal(err)
	}
	b, err := KeyPairGenerate()
	if err != nil {
		t.Fatal(err)
	}
	if a.Private() == b.Private() {
		t.Error("generated keys should differ")
	}
	if !a.PublicKey().point.isValid() {
		t.Error("generated public key should be on the curve")
	}
}
