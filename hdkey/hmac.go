package hdkey

import (
	"crypto/hmac"
	"crypto/sha512"

	"github.com/btcsuite/btcd/btcec/v2"
)

// hmacCKD splits HMAC-SHA512(salt, seed) into a key and a chain code.  The
// key is rejected when it is zero or not below the curve order.
func hmacCKD(seed, salt []byte) (key, chainCode []byte, err error) {
	mac := hmac.New(sha512.New, salt)
	mac.Write(seed)
	sum := mac.Sum(nil)

	key = sum[:32]
	chainCode = sum[32:]

	var k btcec.ModNScalar
	if overflow := k.SetByteSlice(key); overflow || k.IsZero() {
		err = ErrShaKeyInvalid
	}
	return
}
