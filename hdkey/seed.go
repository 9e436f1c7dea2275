package hdkey

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// NewSeed converts a BIP39 mnemonic and optional passphrase into a 64-byte
// wallet seed.  The mnemonic is not checked against a word list.
func NewSeed(mnemonic, passphrase string) []byte {
	password := []byte(norm.NFKD.String(mnemonic))
	salt := []byte("mnemonic" + norm.NFKD.String(passphrase))
	return pbkdf2.Key(password, salt, 2048, 64, sha512.New)
}
