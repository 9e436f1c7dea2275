package hdkey

import (
	"encoding/hex"
	"testing"
)

func TestNewSeed(t *testing.T) {
	mnemonic := "abandon abandon abandon abandon abandon abandon " +
		"abandon abandon abandon abandon abandon about"
	want := "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e5349553" +
		"1f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04"

	seed := NewSeed(mnemonic, "TREZOR")
	if hex.EncodeToString(seed) != want {
		t.Errorf("seed = %x, want %s", seed, want)
	}
	if len(NewSeed(mnemonic, "")) != 64 {
		t.Error("seed should be 64 bytes")
	}
}
