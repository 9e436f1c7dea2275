package stark

import (
	"bytes"
	"errors"
	"math/big"
	"testing"
)

func TestECDH(t *testing.T) {
	alice, err := KeyPairFromPrivate(big.NewInt(0x1111))
	if err != nil {
		t.Fatal(err)
	}
	bob := testKeyPair(t)

	var s1, s2 [32]byte
	if err := ECDH(s1[:], bob.PublicKey(), alice, nil); err != nil {
		t.Fatalf("ECDH: %v", err)
	}
	if err := ECDH(s2[:], alice.PublicKey(), bob, nil); err != nil {
		t.Fatalf("ECDH: %v", err)
	}
	if s1 != s2 {
		t.Error("shared secrets should match")
	}

	var s3 [32]byte
	carol, _ := KeyPairFromPrivate(big.NewInt(0x2222))
	if err := ECDH(s3[:], carol.PublicKey(), alice, nil); err != nil {
		t.Fatal(err)
	}
	if s3 == s1 {
		t.Error("different peers should give different secrets")
	}
}

func TestECDHCustomHash(t *testing.T) {
	alice, _ := KeyPairFromPrivate(big.NewInt(3))
	bob, _ := KeyPairFromPrivate(big.NewInt(5))

	// the raw x coordinate of the shared point
	xOnly := func(output, x32, y32 []byte) bool {
		copy(output, x32)
		return true
	}
	var out [32]byte
	if err := ECDH(out[:], bob.PublicKey(), alice, xOnly); err != nil {
		t.Fatal(err)
	}

	var fifteen Scalar
	fifteen.setInt(15)
	shared := baseMulAffine(&fifteen)
	var want [32]byte
	shared.x.getB32(want[:])
	if out != want {
		t.Error("shared point should be (3*5)*G")
	}

	failing := func(output, x32, y32 []byte) bool { return false }
	if err := ECDH(out[:], bob.PublicKey(), alice, failing); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestECDHErrors(t *testing.T) {
	alice := testKeyPair(t)
	pubOnly, _ := KeyPairFromPublic(testPublicKey)

	var out [32]byte
	if err := ECDH(out[:31], alice.PublicKey(), alice, nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("short output: expected ErrInvalidInput, got %v", err)
	}
	if err := ECDH(out[:], nil, alice, nil); !errors.Is(err, ErrInvalidPublicKey) {
		t.Errorf("nil key: expected ErrInvalidPublicKey, got %v", err)
	}
	if err := ECDH(out[:], alice.PublicKey(), pubOnly, nil); !errors.Is(err, ErrMissingPrivateKey) {
		t.Errorf("public-only: expected ErrMissingPrivateKey, got %v", err)
	}
}

func TestECDHWithHKDF(t *testing.T) {
	alice, _ := KeyPairFromPrivate(big.NewInt(0x1111))
	bob := testKeyPair(t)
	salt := []byte("salt")
	info := []byte("stark ecdh")

	k1 := make([]byte, 64)
	k2 := make([]byte, 64)
	if err := ECDHWithHKDF(k1, bob.PublicKey(), alice, salt, info); err != nil {
		t.Fatal(err)
	}
	if err := ECDHWithHKDF(k2, alice.PublicKey(), bob, salt, info); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(k1, k2) {
		t.Error("derived keys should match")
	}

	k3 := make([]byte, 64)
	if err := ECDHWithHKDF(k3, alice.PublicKey(), bob, salt, []byte("other")); err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(k1, k3) {
		t.Error("different info should give different keys")
	}

	tooLong := make([]byte, 255*32+1)
	if err := ECDHWithHKDF(tooLong, alice.PublicKey(), bob, salt, info); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("oversized output: expected ErrInvalidInput, got %v", err)
	}
}
