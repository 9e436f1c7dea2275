package hdkey

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	sha256simd "github.com/minio/sha256-simd"
	"golang.org/x/crypto/ripemd160"
)

func doubleSha256(in []byte) []byte {
	return chainhash.DoubleHashB(in)
}

// rmd160sha256 is RIPEMD160(SHA256(in)), the BIP32 key identifier
func rmd160sha256(in []byte) []byte {
	a := sha256simd.Sum256(in)
	rmd := ripemd160.New()
	rmd.Write(a[:])
	return rmd.Sum(nil)
}
